package services

import (
	"errors"
	"fmt"
	"math"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"gorm.io/gorm"
)

// ReviewService handles review submission and keeps product ratings equal
// to the rounded mean of their reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// ListByProduct returns all reviews of a product.
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(productID)
}

// Submit upserts the user's review of a product. Only buyers may review,
// ratings are clamped to [1,5] with one decimal place, and the product's
// average rating is recomputed after the write. Returns true when an
// existing review was updated.
func (s *ReviewService) Submit(userID, productID uint, rating float64, text string) (bool, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, E(KindNotFound, "product_not_found")
		}
		return false, err
	}

	purchased, err := s.orderRepo.UserPurchased(userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	if !purchased {
		return false, E(KindValidation, "not_allowed_for_review")
	}

	if rating < 1 || rating > 5 {
		return false, E(KindUnprocessable, "rating_valid_range_error")
	}
	rating = math.Round(rating*10) / 10 // one decimal place

	var updated bool
	existing, err := s.reviewRepo.GetByUserAndProduct(userID, productID)
	switch {
	case err == nil:
		existing.Rating = rating
		existing.ReviewText = text
		if err := s.reviewRepo.Update(existing); err != nil {
			return false, fmt.Errorf("failed to update review: %w", err)
		}
		updated = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		review := &models.Review{ProductID: productID, UserID: userID, Rating: rating, ReviewText: text}
		if err := s.reviewRepo.Create(review); err != nil {
			return false, fmt.Errorf("failed to create review: %w", err)
		}
	default:
		return false, err
	}

	if err := s.refreshRating(productID); err != nil {
		return updated, err
	}
	return updated, nil
}

// refreshRating recomputes and persists the product's mean rating, rounded
// to two decimals.
func (s *ReviewService) refreshRating(productID uint) error {
	avg, count, err := s.reviewRepo.AverageByProduct(productID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	rounded := math.Round(avg*100) / 100
	if err := s.productRepo.UpdateRating(productID, rounded); err != nil {
		return fmt.Errorf("failed to persist rating: %w", err)
	}
	return nil
}
