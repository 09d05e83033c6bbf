package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/analytics"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetPopularProducts returns the top products by total ordered quantity
func GetPopularProducts(c *gin.Context) {
	utils.LogInfo("GetPopularProducts called")

	var details []models.OrderDetail
	if err := config.DB.Find(&details).Error; err != nil {
		utils.LogError("Failed to fetch order details: %v", err)
		utils.InternalServerError(c, "Failed to forecast popular products")
		return
	}
	utils.LogDebug("Retrieved %d order details for ranking", len(details))

	ranked := analytics.RankProductUsage(details)

	var products []models.Product
	if len(ranked) > 0 {
		if err := config.DB.Where("id IN ?", analytics.ProductIDs(ranked)).Find(&products).Error; err != nil {
			utils.LogError("Failed to fetch ranked products: %v", err)
			utils.InternalServerError(c, "Failed to forecast popular products")
			return
		}
	}
	utils.LogDebug("Resolved %d of %d ranked products", len(products), len(ranked))

	utils.OK(c, analytics.ResolveProducts(ranked, products))
}
