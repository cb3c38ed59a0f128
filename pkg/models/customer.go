package models

import (
	"time"
)

// MaxDiscountTier caps the loyalty tier regardless of lifetime order count.
const MaxDiscountTier = 3

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Email        string    `gorm:"type:varchar(100)" json:"email"`
	TotalOrders  int       `gorm:"not null;default:0" json:"total_orders"`
	DiscountTier int       `gorm:"not null;default:0" json:"discount_tier"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// DiscountTierFor derives the loyalty tier from a lifetime order count:
// one tier per two orders, capped at MaxDiscountTier.
func DiscountTierFor(totalOrders int) int {
	tier := totalOrders / 2
	if tier > MaxDiscountTier {
		return MaxDiscountTier
	}
	return tier
}
