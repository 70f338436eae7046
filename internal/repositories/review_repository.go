package repositories

import "seabasket/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	ListByProduct(productID uint) ([]models.Review, error)
	GetByUserAndProduct(userID, productID uint) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	AverageByProduct(productID uint) (float64, int64, error)
}
