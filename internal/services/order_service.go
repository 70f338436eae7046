package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"gorm.io/gorm"
)

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService handles the cart-to-order confirmation flow and order
// lifecycle updates.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	events      EventPublisher // may be nil
}

// NewOrderService creates a new OrderService. events may be nil, in which
// case no broker messages are published.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		events:      events,
	}
}

// Confirm converts the user's cart into a persisted order. Prices and
// discounts are frozen per line, the total accumulates discounted
// subtotals, stock is decremented, and the cart is cleared. The write set
// commits as a single transaction.
func (s *OrderService) Confirm(userID uint, shippingAddress string) (*models.Order, error) {
	lines, err := s.cartRepo.LinesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, E(KindValidation, "cart_empty")
	}

	var totalAmount float64
	details := make([]models.OrderDetail, 0, len(lines))

	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, E(KindValidation, "product_not_found")
			}
			return nil, fmt.Errorf("failed to load product %d: %w", line.ProductID, err)
		}
		if product.StockQuantity < line.Quantity {
			return nil, E(KindValidation, "insufficient_stock", product.Name)
		}

		subtotal := product.Price * float64(line.Quantity)
		var discountAmount float64
		if product.Discount != nil && *product.Discount > 0 {
			discountAmount = round2(subtotal * float64(*product.Discount) / 100)
		}
		totalAmount += subtotal - discountAmount

		details = append(details, models.OrderDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Discount:  discountAmount,
		})
	}

	order := &models.Order{
		UserID:          userID,
		Status:          true,
		TotalAmount:     round2(totalAmount),
		OrderStatus:     models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: shippingAddress,
	}

	if err := s.orderRepo.Confirm(order, details); err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, E(KindConflict, "stock_changed")
		}
		return nil, fmt.Errorf("failed to confirm order: %w", err)
	}

	s.publish("order.confirmed", order)
	return order, nil
}

// Orders returns the caller's orders.
func (s *OrderService) Orders(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// AllOrders returns one page of every order, for admin listings.
func (s *OrderService) AllOrders(page, pageSize int) ([]models.Order, error) {
	return s.orderRepo.List(page, pageSize)
}

// Get returns a single order; only the owner or an admin may read it.
func (s *OrderService) Get(user Claims, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(KindNotFound, "order_not_found")
		}
		return nil, err
	}
	if order.UserID != user.UserID && !user.IsAdmin() {
		return nil, E(KindForbidden, "not_authorized")
	}
	return order, nil
}

// Details returns an order's detail lines joined with product names; only
// the owner or an admin may read them.
func (s *OrderService) Details(user Claims, orderID uint) ([]models.OrderDetailItem, error) {
	if _, err := s.Get(user, orderID); err != nil {
		return nil, err
	}
	return s.orderRepo.DetailsWithNames(orderID)
}

// UpdateStatus changes the order status. Only the owner or an admin may act;
// shipped and delivered transitions are restricted to admins.
func (s *OrderService) UpdateStatus(user Claims, orderID uint, status string) error {
	order, err := s.getForUpdate(user, orderID)
	if err != nil {
		return err
	}
	if !models.ValidOrderStatus(status) {
		return E(KindValidation, "invalid_order_status")
	}
	if (status == models.OrderStatusShipped || status == models.OrderStatusDelivered) && !user.IsAdmin() {
		return E(KindForbidden, "not_authorized")
	}
	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	s.publish("order.status_changed", order)
	return nil
}

// UpdatePayment changes the payment status. Only the owner or an admin may act.
func (s *OrderService) UpdatePayment(user Claims, orderID uint, status string) error {
	order, err := s.getForUpdate(user, orderID)
	if err != nil {
		return err
	}
	if !models.ValidPaymentStatus(status) {
		return E(KindValidation, "invalid_payment_status")
	}
	if err := s.orderRepo.UpdatePayment(order.ID, status); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return nil
}

func (s *OrderService) getForUpdate(user Claims, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(KindNotFound, "order_not_found")
		}
		return nil, err
	}
	if order.UserID != user.UserID && !user.IsAdmin() {
		return nil, E(KindForbidden, "not_authorized")
	}
	return order, nil
}

// publish sends an order event to the broker, best effort.
func (s *OrderService) publish(routingKey string, order *models.Order) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"order_id":       order.ID,
		"user_id":        order.UserID,
		"total_amount":   order.TotalAmount,
		"order_status":   order.OrderStatus,
		"payment_status": order.PaymentStatus,
	})
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}
	if err := s.events.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %d: %v", routingKey, order.ID, err)
	}
}

// round2 rounds to two decimal places, the precision of the money columns.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
