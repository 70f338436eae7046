package models

import "time"

// Product represents a catalog item. Rating holds the mean of all reviews,
// rounded to two decimals, recomputed after every review write.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Description   string    `json:"description" gorm:"type:text"`
	StockQuantity int       `json:"stock_quantity" gorm:"default:0" validate:"gte=0"`
	Price         float64   `json:"price" validate:"required,gt=0"`
	CategoryID    *uint     `json:"category_id"`
	ProductURL    string    `json:"product_url" gorm:"type:varchar(255)"`
	Discount      *int      `json:"discount"` // percentage 0-100
	Rating        *float64  `json:"rating"`
	IsAvailable   bool      `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductImage is an additional image attached to a product.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"index"`
	ImageURL  string    `json:"image_url" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductSummary is the compact shape returned by catalog listings.
type ProductSummary struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Discount   *int     `json:"discount"`
	CategoryID *uint    `json:"category_id"`
	Rating     *float64 `json:"rating"`
}
