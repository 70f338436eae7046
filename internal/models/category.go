package models

import "time"

// Category groups products.
type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CategoryName string    `json:"category_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Status       bool      `json:"status" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
