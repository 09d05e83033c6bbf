package controllers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// OrderLineItem is a line item of one order with its computed total
type OrderLineItem struct {
	ID          int     `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// GetOrderDetails handles listing all order details
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")

	var details []models.OrderDetail
	if err := config.DB.Find(&details).Error; err != nil {
		utils.LogError("Failed to fetch order details: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.LogDebug("Retrieved %d order details", len(details))

	utils.OK(c, details)
}

// GetOrderLineItems returns the line items of one order with per-line
// totals (quantity times unit price, rounded to 2 decimals)
func GetOrderLineItems(c *gin.Context) {
	utils.LogInfo("GetOrderLineItems called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order id %q: %v", c.Param("id"), err)
		utils.InternalServerError(c, "Failed to fetch order details")
		return
	}

	var details []models.OrderDetail
	if err := config.DB.Where("order_id = ?", orderID).Preload("Product").Find(&details).Error; err != nil {
		utils.LogError("Failed to fetch details for order %d: %v", orderID, err)
		utils.InternalServerError(c, "Failed to fetch order details")
		return
	}
	utils.LogDebug("Retrieved %d line items for order %d", len(details), orderID)

	items := make([]OrderLineItem, 0, len(details))
	for i, detail := range details {
		productName := ""
		if detail.Product != nil {
			productName = detail.Product.Name
		}
		unitPrice := detail.UnitPrice.InexactFloat64()
		total := math.Round(float64(detail.Quantity)*unitPrice*100) / 100
		items = append(items, OrderLineItem{
			ID:          i + 1,
			ProductName: productName,
			Quantity:    detail.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  total,
		})
	}

	utils.OK(c, items)
}
