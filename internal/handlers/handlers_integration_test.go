package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"seabasket/internal/handlers"
	"seabasket/internal/middleware"
	"seabasket/internal/models"
	"seabasket/internal/repositories"
	"seabasket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

// setupApp builds a Fiber app backed by a fresh in-memory SQLite database
// with every route registered, mirroring the production wiring.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:itest%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Review{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	resetRepo := repositories.NewGORMPasswordResetRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	userService := services.NewUserService(userRepo, resetRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, nil)
	reviewService := services.NewReviewService(reviewRepo, orderRepo, productRepo)

	app := fiber.New()
	app.Use(middleware.Locale())

	auth := middleware.AuthRequired(authService)
	admin := middleware.AdminRequired()

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app, auth)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(app, auth, admin)
	handlers.NewProductHandler(productService).RegisterRoutes(app, auth, admin)
	handlers.NewCartHandler(cartService).RegisterRoutes(app, auth)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app, auth)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(app, auth)
	handlers.NewAdminHandler(userService, orderService, productService).RegisterRoutes(app, auth, admin)

	return app, db
}

// doJSON performs a request with an optional body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin creates an account through the API and returns its token.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"identifier": email,
		"password":   "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["access_token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "bearer", body["token_type"])
	return token
}

// seedProduct inserts a product directly, bypassing the admin API.
func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, discount *int) uint {
	t.Helper()
	product := models.Product{
		Name:          name,
		Description:   "integration fixture",
		Price:         price,
		StockQuantity: stock,
		Discount:      discount,
		IsAvailable:   true,
	}
	assert.NoError(t, db.Create(&product).Error)
	return product.ID
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, _ := setupApp(t)

	token := registerAndLogin(t, app, "Asha", "asha@example.com", "")

	// Duplicate email is a conflict
	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Wrong password is unauthorized
	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"identifier": "asha@example.com",
		"password":   "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Short password fails validation with a field map
	resp = doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The token opens the profile route
	resp = doJSON(t, app, http.MethodGet, "/users/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decodeBody(t, resp)
	assert.Equal(t, "asha@example.com", profile["email"])
	_, hasPassword := profile["password"]
	assert.False(t, hasPassword)

	// No token, no profile
	resp = doJSON(t, app, http.MethodGet, "/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminGate(t *testing.T) {
	app, db := setupApp(t)

	customerToken := registerAndLogin(t, app, "Asha", "asha@example.com", "")
	adminToken := registerAndLogin(t, app, "Root", "root@example.com", "admin")

	// A customer hitting an admin write is forbidden and nothing is stored
	resp := doJSON(t, app, http.MethodPost, "/categories/", customerToken, map[string]interface{}{
		"category_name": "Electronics",
		"status":        true,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The admin succeeds
	resp = doJSON(t, app, http.MethodPost, "/categories/", adminToken, map[string]interface{}{
		"category_name": "Electronics",
		"status":        true,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Reads stay public
	resp = doJSON(t, app, http.MethodGet, "/categories/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Admin listings reject customers too
	resp = doJSON(t, app, http.MethodGet, "/admin/users", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCartToOrderFlow(t *testing.T) {
	app, db := setupApp(t)

	token := registerAndLogin(t, app, "Asha", "asha@example.com", "")
	ten := 10
	productID := seedProduct(t, db, "Wireless Mouse", 100.00, 10, &ten)

	// Empty cart reads as not found
	resp := doJSON(t, app, http.MethodGet, "/cart/", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Two adds accumulate onto one line
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/cart/add/%d", productID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/cart/add/%d", productID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var line models.Cart
	assert.NoError(t, db.Where("product_id = ?", productID).First(&line).Error)
	assert.Equal(t, 2, line.Quantity)

	// Confirm freezes prices: 2 x 100.00 minus the 10% discount is 180.00
	resp = doJSON(t, app, http.MethodPost, "/orders/confirm", token, map[string]string{
		"shipping_address": "12 Harbour Lane, Kochi 682001",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decodeBody(t, resp)
	assert.Equal(t, 180.00, order["total_amount"])
	assert.Equal(t, models.OrderStatusPending, order["order_status"])

	// Stock went down and the cart is empty
	var product models.Product
	assert.NoError(t, db.First(&product, productID).Error)
	assert.Equal(t, 8, product.StockQuantity)

	resp = doJSON(t, app, http.MethodGet, "/cart/", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The order shows up with its detail lines
	resp = doJSON(t, app, http.MethodGet, "/orders/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	orderID := uint(order["id"].(float64))
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/orders/%d/details", orderID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var details []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&details))
	assert.Len(t, details, 1)
	assert.Equal(t, "Wireless Mouse", details[0]["name"])
	assert.Equal(t, 20.00, details[0]["discount"])
}

func TestConfirmInsufficientStock(t *testing.T) {
	app, db := setupApp(t)

	token := registerAndLogin(t, app, "Asha", "asha@example.com", "")
	productID := seedProduct(t, db, "Last Unit", 50.00, 1, nil)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/cart/add/%d", productID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/cart/add/%d", productID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/orders/confirm", token, map[string]string{
		"shipping_address": "12 Harbour Lane, Kochi 682001",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Nothing moved: stock intact, cart intact, no order rows
	var product models.Product
	assert.NoError(t, db.First(&product, productID).Error)
	assert.Equal(t, 1, product.StockQuantity)

	var cartCount, orderCount int64
	db.Model(&models.Cart{}).Count(&cartCount)
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), cartCount)
	assert.Equal(t, int64(0), orderCount)
}

func TestReviewFlow(t *testing.T) {
	app, db := setupApp(t)

	buyerToken := registerAndLogin(t, app, "Asha", "asha@example.com", "")
	strangerToken := registerAndLogin(t, app, "Noor", "noor@example.com", "")
	productID := seedProduct(t, db, "Wireless Mouse", 100.00, 10, nil)

	// Reviews require a purchase
	resp := doJSON(t, app, http.MethodPost, "/review_ratings/", strangerToken, map[string]interface{}{
		"product_id":  productID,
		"rating":      5,
		"review_text": "never even bought it",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Buy the product
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/cart/add/%d", productID), buyerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/orders/confirm", buyerToken, map[string]string{
		"shipping_address": "12 Harbour Lane, Kochi 682001",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Out-of-range rating is unprocessable
	resp = doJSON(t, app, http.MethodPost, "/review_ratings/", buyerToken, map[string]interface{}{
		"product_id": productID,
		"rating":     6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// First review lands and sets the product rating
	resp = doJSON(t, app, http.MethodPost, "/review_ratings/", buyerToken, map[string]interface{}{
		"product_id":  productID,
		"rating":      4.0,
		"review_text": "Works well",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var product models.Product
	assert.NoError(t, db.First(&product, productID).Error)
	if assert.NotNil(t, product.Rating) {
		assert.Equal(t, 4.0, *product.Rating)
	}

	// A second submission replaces the first instead of adding a row
	resp = doJSON(t, app, http.MethodPost, "/review_ratings/", buyerToken, map[string]interface{}{
		"product_id":  productID,
		"rating":      5.0,
		"review_text": "Even better after a week",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var reviewCount int64
	db.Model(&models.Review{}).Count(&reviewCount)
	assert.Equal(t, int64(1), reviewCount)

	assert.NoError(t, db.First(&product, productID).Error)
	if assert.NotNil(t, product.Rating) {
		assert.Equal(t, 5.0, *product.Rating)
	}

	// Reviews read publicly
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/review_ratings/%d", productID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLocalizedErrors(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "Asha", "asha@example.com", "")

	// Default locale
	req := httptest.NewRequest(http.MethodGet, "/cart/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "No Items are available in cart.", body["message"])

	// Hindi via Accept-Language
	req = httptest.NewRequest(http.MethodGet, "/cart/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "hi-IN,hi;q=0.9")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "कार्ट में कोई आइटम उपलब्ध नहीं है।", body["message"])
}
