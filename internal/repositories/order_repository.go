package repositories

import (
	"errors"

	"seabasket/internal/models"
)

// ErrInsufficientStock is returned by Confirm when a product's stock dropped
// below a requested quantity between validation and commit.
var ErrInsufficientStock = errors.New("insufficient stock")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Confirm atomically creates the order with its detail lines, decrements
	// each product's stock, and clears the user's cart. On any failure
	// nothing is persisted.
	Confirm(order *models.Order, details []models.OrderDetail) error
	GetByID(id uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	List(page, pageSize int) ([]models.Order, error)
	DetailsWithNames(orderID uint) ([]models.OrderDetailItem, error)
	UpdateStatus(id uint, status string) error
	UpdatePayment(id uint, status string) error
	UserPurchased(userID, productID uint) (bool, error)
}
