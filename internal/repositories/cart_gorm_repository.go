package repositories

import (
	"fmt"

	"seabasket/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// ItemsByUser retrieves a user's cart lines joined with product name and price.
func (r *GORMCartRepository) ItemsByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Model(&models.Cart{}).
		Select("carts.id", "carts.user_id", "carts.product_id", "products.name",
			"carts.quantity", "products.price", "carts.created_at", "carts.updated_at").
		Joins("JOIN products ON products.id = carts.product_id").
		Where("carts.user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return items, nil
}

// LinesByUser retrieves a user's raw cart lines.
func (r *GORMCartRepository) LinesByUser(userID uint) ([]models.Cart, error) {
	var lines []models.Cart
	if err := r.db.Find(&lines, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart lines: %w", err)
	}
	return lines, nil
}

// GetByID retrieves a single cart line.
func (r *GORMCartRepository) GetByID(id uint) (*models.Cart, error) {
	var line models.Cart
	if err := r.db.First(&line, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("cart line %d: %w", id, err)
	}
	return &line, nil
}

// GetByUserAndProduct retrieves the user's cart line for a product, if any.
func (r *GORMCartRepository) GetByUserAndProduct(userID, productID uint) (*models.Cart, error) {
	var line models.Cart
	if err := r.db.First(&line, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		return nil, fmt.Errorf("cart line for user %d product %d: %w", userID, productID, err)
	}
	return &line, nil
}

// Create adds a new cart line.
func (r *GORMCartRepository) Create(line *models.Cart) error {
	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to create cart line: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of a cart line.
func (r *GORMCartRepository) UpdateQuantity(id uint, quantity int) error {
	res := r.db.Model(&models.Cart{}).Where("id = ?", id).
		UpdateColumn("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a cart line.
func (r *GORMCartRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Cart{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart line: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
