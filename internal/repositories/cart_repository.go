package repositories

import "seabasket/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	ItemsByUser(userID uint) ([]models.CartItem, error)
	LinesByUser(userID uint) ([]models.Cart, error)
	GetByID(id uint) (*models.Cart, error)
	GetByUserAndProduct(userID, productID uint) (*models.Cart, error)
	Create(line *models.Cart) error
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
}
