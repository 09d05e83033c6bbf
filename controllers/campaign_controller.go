package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// GetCampaigns handles listing all marketing campaigns
func GetCampaigns(c *gin.Context) {
	utils.LogInfo("GetCampaigns called")

	var campaigns []models.MarketingCampaign
	if err := config.DB.Find(&campaigns).Error; err != nil {
		utils.LogError("Failed to fetch campaigns: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d campaigns", len(campaigns))

	utils.OK(c, campaigns)
}
