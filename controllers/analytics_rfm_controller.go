package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/analytics"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetRFMAnalysis returns the recency/frequency/monetary segmentation of
// every customer
func GetRFMAnalysis(c *gin.Context) {
	utils.LogInfo("GetRFMAnalysis called")

	var customers []models.Customer
	if err := config.DB.Preload("Orders").Find(&customers).Error; err != nil {
		utils.LogError("Failed to fetch customers with orders: %v", err)
		utils.InternalServerError(c, "Failed to calculate RFM")
		return
	}
	utils.LogDebug("Retrieved %d customers for RFM analysis", len(customers))

	utils.OK(c, analytics.RFMSegments(customers, time.Now()))
}
