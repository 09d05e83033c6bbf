package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetCampaignAnalytics lists campaigns under the analytics surface
func GetCampaignAnalytics(c *gin.Context) {
	utils.LogInfo("GetCampaignAnalytics called")

	var campaigns []models.MarketingCampaign
	if err := config.DB.Find(&campaigns).Error; err != nil {
		utils.LogError("Failed to fetch campaigns: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d campaigns", len(campaigns))

	utils.OK(c, campaigns)
}

// GetRecommendationAnalytics lists recommendations under the analytics
// surface
func GetRecommendationAnalytics(c *gin.Context) {
	utils.LogInfo("GetRecommendationAnalytics called")

	var recommendations []models.Recommendation
	if err := config.DB.Find(&recommendations).Error; err != nil {
		utils.LogError("Failed to fetch recommendations: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d recommendations", len(recommendations))

	utils.OK(c, recommendations)
}
