package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	initEntityRoutes(router)
	initAnalyticsRoutes(router)

	return router
}
