package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetProducts handles listing all products with prices as numbers
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d products", len(products))

	utils.OK(c, products)
}
