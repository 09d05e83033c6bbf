package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/controllers"
)

// initEntityRoutes registers the entity listing, detail, export and create
// routes
func initEntityRoutes(router *gin.Engine) {
	router.GET("/customers", controllers.GetCustomers)
	router.GET("/products", controllers.GetProducts)
	router.GET("/orders", controllers.GetOrders)
	router.GET("/discounts", controllers.GetDiscounts)
	router.GET("/order_details", controllers.GetOrderDetails)
	router.GET("/business_clients", controllers.GetBusinessClients)
	router.GET("/campaigns", controllers.GetCampaigns)
	router.GET("/engagements", controllers.GetEngagements)
	router.GET("/recommendations", controllers.GetRecommendations)
	router.GET("/users", controllers.GetUsers)

	router.GET("/orders/:id/details", controllers.GetOrderLineItems)

	router.GET("/products/export/csv", controllers.ExportProductsCSV)
	router.GET("/products/export/excel", controllers.ExportProductsExcel)
	router.GET("/products/export/pdf", controllers.ExportProductsPDF)

	router.POST("/discounts", controllers.CreateDiscount)
	router.POST("/campaigns", controllers.CreateCampaign)
}
