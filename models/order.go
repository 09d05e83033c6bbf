package models

import (
	"time"
)

// Order represents a customer purchase. TotalAmount is nullable in the
// store; aggregation treats a null amount as zero.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `json:"customer_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount NullMoney `gorm:"type:numeric(12,2)" json:"total_amount"`
	DiscountID  *uint     `json:"discount_id"`
}
