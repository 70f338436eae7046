package repositories

import (
	"fmt"

	"seabasket/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Confirm runs the whole checkout write set in one transaction: the order
// row, its detail lines, the stock decrements, and the cart cleanup. Stock
// is decremented with a stock_quantity >= quantity guard so two concurrent
// checkouts cannot oversell; a failed guard aborts the transaction.
func (r *GORMOrderRepository) Confirm(order *models.Order, details []models.OrderDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range details {
			details[i].OrderID = order.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("failed to create order details: %w", err)
		}

		for _, d := range details {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", d.ProductID, d.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", d.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %d: %w", d.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %d: %w", d.ProductID, ErrInsufficientStock)
			}
		}

		if err := tx.Delete(&models.Cart{}, "user_id = ?", order.UserID).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("order %d: %w", id, err)
	}
	return &order, nil
}

// ListByUser retrieves all orders belonging to a user.
func (r *GORMOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// List returns one page of all orders, newest first.
func (r *GORMOrderRepository) List(page, pageSize int) ([]models.Order, error) {
	var orders []models.Order
	offset := (page - 1) * pageSize
	if err := r.db.Order("id DESC").Offset(offset).Limit(pageSize).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// DetailsWithNames retrieves an order's detail lines joined with product names.
func (r *GORMOrderRepository) DetailsWithNames(orderID uint) ([]models.OrderDetailItem, error) {
	var items []models.OrderDetailItem
	err := r.db.Model(&models.OrderDetail{}).
		Select("order_details.id", "order_details.order_id", "order_details.product_id",
			"products.name", "order_details.quantity", "order_details.price",
			"order_details.discount", "order_details.created_at", "order_details.updated_at").
		Joins("JOIN products ON products.id = order_details.product_id").
		Where("order_details.order_id = ?", orderID).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order details: %w", err)
	}
	return items, nil
}

// UpdateStatus sets the order status.
func (r *GORMOrderRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		UpdateColumn("order_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// UpdatePayment sets the payment status.
func (r *GORMOrderRepository) UpdatePayment(id uint, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		UpdateColumn("payment_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// UserPurchased reports whether the user has an order detail line for the
// product, i.e. has ever bought it.
func (r *GORMOrderRepository) UserPurchased(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderDetail{}).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("orders.user_id = ? AND order_details.product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return count > 0, nil
}
