package services_test

import (
	"errors"
	"testing"

	"seabasket/internal/models"
	"seabasket/internal/repositories"
	"seabasket/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Confirm(order *models.Order, details []models.OrderDetail) error {
	args := m.Called(order, details)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(page, pageSize int) ([]models.Order, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) DetailsWithNames(orderID uint) ([]models.OrderDetailItem, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderDetailItem), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePayment(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UserPurchased(userID, productID uint) (bool, error) {
	args := m.Called(userID, productID)
	return args.Bool(0), args.Error(1)
}

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ItemsByUser(userID uint) ([]models.CartItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) LinesByUser(userID uint) ([]models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByID(id uint) (*models.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByUserAndProduct(userID, productID uint) (*models.Cart, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) Create(line *models.Cart) error {
	args := m.Called(line)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(id uint, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductFilter) ([]models.ProductSummary, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSummary), args.Error(1)
}

func (m *MockProductRepository) Trending(limit int) ([]models.ProductSummary, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSummary), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateRating(productID uint, rating float64) error {
	args := m.Called(productID, rating)
	return args.Error(0)
}

func (m *MockProductRepository) HasOrderDetails(productID uint) (bool, error) {
	args := m.Called(productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Images(productID uint) ([]models.ProductImage, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductImage), args.Error(1)
}

func (m *MockProductRepository) AddImage(image *models.ProductImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteImage(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher records broker events published by the order flow.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func TestOrderService_Confirm(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	orderService := services.NewOrderService(mockOrders, mockCarts, mockProducts, mockEvents)

	// Two units of a 100.00 product with a 10% discount come to 180.00,
	// with 20.00 recorded as the frozen line discount.
	mockCarts.On("LinesByUser", uint(1)).Return([]models.Cart{
		{ID: 11, UserID: 1, ProductID: 5, Quantity: 2},
	}, nil).Once()
	mockProducts.On("GetByID", uint(5)).Return(&models.Product{
		ID: 5, Name: "Wireless Mouse", Price: 100.00, StockQuantity: 10, Discount: intPtr(10),
	}, nil).Once()
	mockOrders.On("Confirm", mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderDetail")).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*models.Order)
			details := args.Get(1).([]models.OrderDetail)
			assert.Equal(t, 180.00, order.TotalAmount)
			assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
			assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
			assert.Len(t, details, 1)
			assert.Equal(t, 100.00, details[0].Price)
			assert.Equal(t, 20.00, details[0].Discount)
			assert.Equal(t, 2, details[0].Quantity)
		}).Return(nil).Once()
	mockEvents.On("Publish", "order.confirmed", mock.Anything).Return(nil).Once()

	order, err := orderService.Confirm(1, "12 Harbour Lane, Kochi 682001")
	assert.NoError(t, err)
	assert.Equal(t, 180.00, order.TotalAmount)
	mockOrders.AssertExpectations(t)
	mockCarts.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestOrderService_Confirm_EmptyCart(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrders, mockCarts, mockProducts, nil)

	mockCarts.On("LinesByUser", uint(1)).Return([]models.Cart{}, nil).Once()

	_, err := orderService.Confirm(1, "12 Harbour Lane, Kochi 682001")
	var svcErr *services.Error
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindValidation, svcErr.Kind)
	assert.Equal(t, "cart_empty", svcErr.Key)
	mockCarts.AssertExpectations(t)
}

func TestOrderService_Confirm_InsufficientStock(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrders, mockCarts, mockProducts, nil)

	// Validation catches stock below the requested quantity up front.
	mockCarts.On("LinesByUser", uint(1)).Return([]models.Cart{
		{ID: 11, UserID: 1, ProductID: 5, Quantity: 3},
	}, nil).Once()
	mockProducts.On("GetByID", uint(5)).Return(&models.Product{
		ID: 5, Name: "Wireless Mouse", Price: 100.00, StockQuantity: 2,
	}, nil).Once()

	_, err := orderService.Confirm(1, "12 Harbour Lane, Kochi 682001")
	var svcErr *services.Error
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindValidation, svcErr.Kind)
	assert.Equal(t, "insufficient_stock", svcErr.Key)

	// A concurrent decrement surfacing at commit time becomes a conflict.
	mockCarts.On("LinesByUser", uint(1)).Return([]models.Cart{
		{ID: 11, UserID: 1, ProductID: 5, Quantity: 2},
	}, nil).Once()
	mockProducts.On("GetByID", uint(5)).Return(&models.Product{
		ID: 5, Name: "Wireless Mouse", Price: 100.00, StockQuantity: 10,
	}, nil).Once()
	mockOrders.On("Confirm", mock.Anything, mock.Anything).
		Return(repositories.ErrInsufficientStock).Once()

	_, err = orderService.Confirm(1, "12 Harbour Lane, Kochi 682001")
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindConflict, svcErr.Kind)
	assert.Equal(t, "stock_changed", svcErr.Key)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_Get_Authorization(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrders, mockCarts, mockProducts, nil)

	order := &models.Order{ID: 3, UserID: 1}
	mockOrders.On("GetByID", uint(3)).Return(order, nil)

	// Owner can read
	got, err := orderService.Get(services.Claims{UserID: 1, Role: models.RoleCustomer}, 3)
	assert.NoError(t, err)
	assert.Equal(t, order, got)

	// Admin can read
	_, err = orderService.Get(services.Claims{UserID: 99, Role: models.RoleAdmin}, 3)
	assert.NoError(t, err)

	// Another customer cannot
	_, err = orderService.Get(services.Claims{UserID: 2, Role: models.RoleCustomer}, 3)
	var svcErr *services.Error
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindForbidden, svcErr.Kind)

	// Missing order
	mockOrders.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)
	_, err = orderService.Get(services.Claims{UserID: 1}, 404)
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindNotFound, svcErr.Kind)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrders, mockCarts, mockProducts, nil)

	owner := services.Claims{UserID: 1, Role: models.RoleCustomer}
	admin := services.Claims{UserID: 99, Role: models.RoleAdmin}
	mockOrders.On("GetByID", uint(3)).Return(&models.Order{ID: 3, UserID: 1}, nil)

	// Owner can cancel
	mockOrders.On("UpdateStatus", uint(3), models.OrderStatusCancelled).Return(nil).Once()
	assert.NoError(t, orderService.UpdateStatus(owner, 3, models.OrderStatusCancelled))

	// Shipped is admin only
	err := orderService.UpdateStatus(owner, 3, models.OrderStatusShipped)
	var svcErr *services.Error
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindForbidden, svcErr.Kind)

	mockOrders.On("UpdateStatus", uint(3), models.OrderStatusShipped).Return(nil).Once()
	assert.NoError(t, orderService.UpdateStatus(admin, 3, models.OrderStatusShipped))

	// Unknown status is rejected before any write
	err = orderService.UpdateStatus(owner, 3, "teleported")
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, services.KindValidation, svcErr.Kind)
	mockOrders.AssertExpectations(t)
}
