package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/analytics"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetAgeDistribution returns the five-bucket customer age histogram
func GetAgeDistribution(c *gin.Context) {
	utils.LogInfo("GetAgeDistribution called")

	var customers []models.Customer
	if err := config.DB.Select("date_of_birth").Find(&customers).Error; err != nil {
		utils.LogError("Failed to fetch customer birth dates: %v", err)
		utils.InternalServerError(c, "Failed to fetch age distribution")
		return
	}
	utils.LogDebug("Retrieved %d customers for age bucketing", len(customers))

	utils.OK(c, analytics.AgeDistribution(customers, time.Now()))
}
