package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// CreateCampaignRequest represents the request body for creating a
// marketing campaign. Clients send camelCase keys; budget is accepted as a
// number or a numeric string.
type CreateCampaignRequest struct {
	BusinessClientID uint        `json:"businessClientId"`
	CampaignName     string      `json:"campaignName"`
	StartDate        string      `json:"startDate"`
	EndDate          string      `json:"endDate"`
	Budget           interface{} `json:"budget"`
	Channel          string      `json:"channel"`
}

// CreateCampaign creates a new marketing campaign from a JSON body
func CreateCampaign(c *gin.Context) {
	utils.LogInfo("CreateCampaign called")

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid campaign payload: %v", err)
		utils.InternalServerError(c, "Failed to create campaign")
		return
	}

	budget, err := utils.ParseFloat(req.Budget)
	if err != nil {
		utils.LogError("Failed to coerce budget: %v", err)
		utils.InternalServerError(c, "Failed to create campaign")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.LogError("Failed to coerce startDate: %v", err)
		utils.InternalServerError(c, "Failed to create campaign")
		return
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.LogError("Failed to coerce endDate: %v", err)
		utils.InternalServerError(c, "Failed to create campaign")
		return
	}

	campaign := models.MarketingCampaign{
		BusinessClientID: req.BusinessClientID,
		CampaignName:     req.CampaignName,
		StartDate:        startDate,
		EndDate:          endDate,
		Budget:           models.NullMoneyFromFloat(budget),
		Channel:          req.Channel,
	}

	if err := config.DB.Create(&campaign).Error; err != nil {
		utils.LogError("Failed to create campaign: %v", err)
		utils.InternalServerError(c, "Failed to create campaign")
		return
	}

	utils.LogInfo("Created campaign %q with ID %d", campaign.CampaignName, campaign.ID)
	utils.Created(c, campaign)
}
