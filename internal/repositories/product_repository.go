package repositories

import "seabasket/internal/models"

// ProductFilter narrows and orders a catalog listing.
type ProductFilter struct {
	CategoryID  *uint
	Name        string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	MinDiscount *int
	SortBy      string // price_low, price_high, name
	Page        int
	PageSize    int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.ProductSummary, error)
	Trending(limit int) ([]models.ProductSummary, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	UpdateRating(productID uint, rating float64) error
	HasOrderDetails(productID uint) (bool, error)
	Images(productID uint) ([]models.ProductImage, error)
	AddImage(image *models.ProductImage) error
	DeleteImage(id uint) error
}
