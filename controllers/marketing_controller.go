package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetBusinessClients handles listing all business clients
func GetBusinessClients(c *gin.Context) {
	utils.LogInfo("GetBusinessClients called")

	var clients []models.BusinessClient
	if err := config.DB.Find(&clients).Error; err != nil {
		utils.LogError("Failed to fetch business clients: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d business clients", len(clients))

	utils.OK(c, clients)
}

// GetEngagements handles listing all customer engagements
func GetEngagements(c *gin.Context) {
	utils.LogInfo("GetEngagements called")

	var engagements []models.CustomerEngagement
	if err := config.DB.Find(&engagements).Error; err != nil {
		utils.LogError("Failed to fetch engagements: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d engagements", len(engagements))

	utils.OK(c, engagements)
}

// GetRecommendations handles listing all product recommendations
func GetRecommendations(c *gin.Context) {
	utils.LogInfo("GetRecommendations called")

	var recommendations []models.Recommendation
	if err := config.DB.Find(&recommendations).Error; err != nil {
		utils.LogError("Failed to fetch recommendations: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d recommendations", len(recommendations))

	utils.OK(c, recommendations)
}

// GetUsers handles listing all users
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d users", len(users))

	utils.OK(c, users)
}
