package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetOrders handles listing all orders
func GetOrders(c *gin.Context) {
	utils.LogInfo("GetOrders called")

	var orders []models.Order
	if err := config.DB.Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders", len(orders))

	utils.OK(c, orders)
}
