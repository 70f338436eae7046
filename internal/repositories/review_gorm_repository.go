package repositories

import (
	"fmt"

	"seabasket/internal/models"

	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// ListByProduct retrieves all reviews of a product.
func (r *GORMReviewRepository) ListByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// GetByUserAndProduct retrieves the user's review of a product, if any.
func (r *GORMReviewRepository) GetByUserAndProduct(userID, productID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		return nil, fmt.Errorf("review by user %d for product %d: %w", userID, productID, err)
	}
	return &review, nil
}

// Create adds a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update persists all fields of an existing review.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	res := r.db.Save(review)
	if res.Error != nil {
		return fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %d: %w", review.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// AverageByProduct returns the mean rating over all reviews of a product
// together with the review count.
func (r *GORMReviewRepository) AverageByProduct(productID uint) (float64, int64, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}
	var avg float64
	err := r.db.Model(&models.Review{}).Where("product_id = ?", productID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to average reviews: %w", err)
	}
	return avg, count, nil
}
