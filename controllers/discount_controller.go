package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetDiscounts handles listing all discounts
func GetDiscounts(c *gin.Context) {
	utils.LogInfo("GetDiscounts called")

	var discounts []models.Discount
	if err := config.DB.Find(&discounts).Error; err != nil {
		utils.LogError("Failed to fetch discounts: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d discounts", len(discounts))

	utils.OK(c, discounts)
}
