package services

import (
	"errors"
	"fmt"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"gorm.io/gorm"
)

// CartService handles shopping cart business logic.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Items returns the user's cart lines joined with product name and price.
// An empty cart is a not-found condition.
func (s *CartService) Items(userID uint) ([]models.CartItem, error) {
	items, err := s.cartRepo.ItemsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, E(KindNotFound, "cart_empty")
	}
	return items, nil
}

// AddProduct puts one unit of a product into the user's cart. An existing
// line for the product has its quantity incremented instead.
func (s *CartService) AddProduct(userID, productID uint) (*models.Cart, bool, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, E(KindNotFound, "product_not_found")
		}
		return nil, false, err
	}
	if !product.IsAvailable {
		return nil, false, E(KindNotFound, "product_not_found")
	}

	line, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	switch {
	case err == nil:
		line.Quantity++
		if err := s.cartRepo.UpdateQuantity(line.ID, line.Quantity); err != nil {
			return nil, false, fmt.Errorf("failed to update cart: %w", err)
		}
		return line, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = &models.Cart{UserID: userID, ProductID: productID, Quantity: 1}
		if err := s.cartRepo.Create(line); err != nil {
			return nil, false, fmt.Errorf("failed to add to cart: %w", err)
		}
		return line, true, nil
	default:
		return nil, false, err
	}
}

// Remove deletes a cart line owned by the user.
func (s *CartService) Remove(userID, cartID uint) error {
	line, err := s.ownedLine(userID, cartID)
	if err != nil {
		return err
	}
	if err := s.cartRepo.Delete(line.ID); err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	return nil
}

// DecreaseQuantity lowers a cart line's quantity by one; a line that would
// drop below one is deleted. Returns the line, or nil when it was deleted.
func (s *CartService) DecreaseQuantity(userID, cartID uint) (*models.Cart, error) {
	line, err := s.ownedLine(userID, cartID)
	if err != nil {
		return nil, err
	}
	if line.Quantity-1 < 1 {
		if err := s.cartRepo.Delete(line.ID); err != nil {
			return nil, fmt.Errorf("failed to remove from cart: %w", err)
		}
		return nil, nil
	}
	line.Quantity--
	if err := s.cartRepo.UpdateQuantity(line.ID, line.Quantity); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	return line, nil
}

func (s *CartService) ownedLine(userID, cartID uint) (*models.Cart, error) {
	line, err := s.cartRepo.GetByID(cartID)
	if err != nil || line.UserID != userID {
		return nil, E(KindNotFound, "product_not_found_in_cart")
	}
	return line, nil
}
