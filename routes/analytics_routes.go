package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/controllers"
)

// initAnalyticsRoutes registers the aggregate metric routes
func initAnalyticsRoutes(router *gin.Engine) {
	analytics := router.Group("/analytics")
	{
		analytics.GET("/top-discounts", controllers.GetTopDiscounts)
		analytics.GET("/popular-products", controllers.GetPopularProducts)
		analytics.GET("/rfm-analysis", controllers.GetRFMAnalysis)
		analytics.GET("/customer-growth", controllers.GetCustomerGrowth)
		analytics.GET("/age-distribution", controllers.GetAgeDistribution)
		analytics.GET("/marketing-campaigns", controllers.GetCampaignAnalytics)
		analytics.GET("/recommendations", controllers.GetRecommendationAnalytics)
	}
}
