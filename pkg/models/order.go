package models

import (
	"time"
)

// OrderStatusPending is the status every new order starts in. Later
// transitions (paid, shipped, ...) are driven by back-office tooling,
// not this API.
const OrderStatusPending = "pending"

// DefaultCustomerName is the placeholder stored on orders placed through
// the storefront, which collects a phone number but no name.
const DefaultCustomerName = "Клиент"

type Order struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CustomerName    string     `gorm:"type:varchar(100)" json:"customer_name"`
	CustomerPhone   string     `gorm:"type:varchar(20);index;not null" json:"customer_phone"`
	CustomerEmail   string     `gorm:"type:varchar(100)" json:"customer_email"`
	TotalAmount     float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	DiscountPercent float64    `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	IsPreorder      bool       `gorm:"not null;default:false" json:"is_preorder"`
	CreatedAt       *time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
