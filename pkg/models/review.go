package models

import (
	"time"
)

type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerName string     `gorm:"type:varchar(100)" json:"customer_name"`
	Rating       int        `gorm:"not null" json:"rating"`
	Comment      string     `gorm:"type:text" json:"comment"`
	Source       string     `gorm:"type:varchar(100)" json:"source"`
	CreatedAt    *time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
