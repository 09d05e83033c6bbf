package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetCustomers handles listing all customers
func GetCustomers(c *gin.Context) {
	utils.LogInfo("GetCustomers called")

	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		utils.LogError("Failed to fetch customers: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d customers", len(customers))

	utils.OK(c, customers)
}
