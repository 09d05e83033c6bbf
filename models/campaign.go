package models

import (
	"time"
)

// MarketingCampaign represents a campaign run by a business client
type MarketingCampaign struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	BusinessClientID uint      `json:"business_client_id"`
	CampaignName     string    `json:"campaign_name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Budget           NullMoney `gorm:"type:numeric(12,2)" json:"budget"`
	Channel          string    `json:"channel"`
}

// CustomerEngagement records a customer interaction with a campaign
type CustomerEngagement struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerID     uint      `json:"customer_id"`
	CampaignID     uint      `json:"campaign_id"`
	EngagementType string    `json:"engagement_type"`
	EngagementDate time.Time `json:"engagement_date"`
}

// Recommendation is a suggested product for a customer
type Recommendation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `json:"customer_id"`
	ProductID  uint      `json:"product_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
