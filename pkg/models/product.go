package models

import (
	"time"
)

type Product struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Category    string     `gorm:"type:varchar(100);index" json:"category"`
	Condition   string     `gorm:"type:varchar(20)" json:"condition"` // "new" or "used"
	Price       float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `gorm:"type:varchar(512)" json:"image_url"`
	Stock       int        `gorm:"not null;default:0" json:"stock"`
	CreatedAt   *time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
