package models

import (
	"time"
)

// Discount represents a promotional discount with a validity window
type Discount struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	DiscountRate Money     `gorm:"type:numeric(5,2)" json:"discount_rate"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidUntil   time.Time `json:"valid_until"`
	Orders       []Order   `json:"orders,omitempty" gorm:"foreignKey:DiscountID"`
}
