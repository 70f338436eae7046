package models

import "time"

// Review is a rating plus free text a buyer leaves for a product.
// At most one review exists per (user, product) pair; repeat submissions
// update the existing row.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID  uint      `json:"product_id" gorm:"index:idx_reviews_user_product,unique"`
	UserID     uint      `json:"user_id" gorm:"index:idx_reviews_user_product,unique"`
	Rating     float64   `json:"rating"`
	ReviewText string    `json:"review_text" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
