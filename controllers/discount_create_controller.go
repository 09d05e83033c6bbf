package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// CreateDiscountRequest represents the request body for creating a discount.
// DiscountRate is accepted as a number or a numeric string and coerced.
type CreateDiscountRequest struct {
	Name         string      `json:"name"`
	DiscountRate interface{} `json:"discount_rate"`
	ValidFrom    string      `json:"valid_from"`
	ValidUntil   string      `json:"valid_until"`
}

// CreateDiscount creates a new discount from a JSON body
func CreateDiscount(c *gin.Context) {
	utils.LogInfo("CreateDiscount called")

	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid discount payload: %v", err)
		utils.InternalServerError(c, "Failed to create discount")
		return
	}

	rate, err := utils.ParseFloat(req.DiscountRate)
	if err != nil {
		utils.LogError("Failed to coerce discount_rate: %v", err)
		utils.InternalServerError(c, "Failed to create discount")
		return
	}

	validFrom, err := utils.ParseDate(req.ValidFrom)
	if err != nil {
		utils.LogError("Failed to coerce valid_from: %v", err)
		utils.InternalServerError(c, "Failed to create discount")
		return
	}

	validUntil, err := utils.ParseDate(req.ValidUntil)
	if err != nil {
		utils.LogError("Failed to coerce valid_until: %v", err)
		utils.InternalServerError(c, "Failed to create discount")
		return
	}

	discount := models.Discount{
		Name:         req.Name,
		DiscountRate: models.MoneyFromFloat(rate),
		ValidFrom:    validFrom,
		ValidUntil:   validUntil,
	}

	if err := config.DB.Create(&discount).Error; err != nil {
		utils.LogError("Failed to create discount: %v", err)
		utils.InternalServerError(c, "Failed to create discount")
		return
	}

	utils.LogInfo("Created discount %q with ID %d", discount.Name, discount.ID)
	utils.Created(c, discount)
}
