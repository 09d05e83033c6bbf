package models

import (
	"time"
)

// Customer represents a shopper in the system
type Customer struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	RegisteredAt time.Time  `json:"registered_at"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Orders       []Order    `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

// Product represents a catalog item
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     Money     `gorm:"type:numeric(12,2)" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderDetail is a single line item joining an order to a product. The
// Product association only serializes when it was preloaded; plain
// listings return flat rows.
type OrderDetail struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `json:"order_id"`
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice Money    `gorm:"type:numeric(12,2)" json:"unit_price"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// BusinessClient represents a B2B account that runs marketing campaigns
type BusinessClient struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyName  string    `json:"company_name"`
	ContactEmail string    `json:"contact_email"`
	Industry     string    `json:"industry"`
	CreatedAt    time.Time `json:"created_at"`
}

// User represents an API user account
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
