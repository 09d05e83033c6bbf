package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/analytics"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetTopDiscounts returns discount usage stats ranked by total sales
func GetTopDiscounts(c *gin.Context) {
	utils.LogInfo("GetTopDiscounts called")

	var discounts []models.Discount
	if err := config.DB.Preload("Orders").Find(&discounts).Error; err != nil {
		utils.LogError("Failed to fetch discounts with orders: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d discounts for ranking", len(discounts))

	utils.OK(c, analytics.TopDiscounts(discounts))
}
