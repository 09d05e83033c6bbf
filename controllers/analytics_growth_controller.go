package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/analytics"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetCustomerGrowth returns monthly registration counts, oldest month first
func GetCustomerGrowth(c *gin.Context) {
	utils.LogInfo("GetCustomerGrowth called")

	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		utils.LogError("Failed to fetch customers: %v", err)
		utils.InternalServerError(c, "Failed to get customer growth")
		return
	}
	utils.LogDebug("Retrieved %d customers for growth bucketing", len(customers))

	utils.OK(c, analytics.CustomerGrowth(customers))
}
