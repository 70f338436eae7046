package handlers

import (
	"strconv"

	"seabasket/internal/models"
	"seabasket/internal/repositories"
	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Write operations sit behind
// the provided auth and admin gates.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/trending", h.HandleTrending)
	productRoutes.Get("/:id", h.HandleGet)
	productRoutes.Get("/:id/images", h.HandleImages)
	productRoutes.Post("/", auth, admin, h.HandleCreate)
	productRoutes.Put("/:id", auth, admin, h.HandleUpdate)
	productRoutes.Delete("/:id", auth, admin, h.HandleDelete)
}

// HandleList returns available products matching the query filters.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Name:   c.Query("name"),
		SortBy: c.Query("sort_by"),
	}
	filter.Page, filter.PageSize = pagination(c)

	if v := c.Query("category"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			cid := uint(id)
			filter.CategoryID = &cid
		}
	}
	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}
	if v := c.Query("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &f
		}
	}
	if v := c.Query("discount"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			filter.MinDiscount = &d
		}
	}

	products, err := h.service.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleTrending returns the highest-rated available products.
func (h *ProductHandler) HandleTrending(c *fiber.Ctx) error {
	products, err := h.service.Trending()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleGet returns a single product.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found"))
	}
	product, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// HandleImages returns all images of a product.
func (h *ProductHandler) HandleImages(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found"))
	}
	images, err := h.service.Images(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(images)
}

// ProductCreateRequest is the request body for creating a product.
type ProductCreateRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	CategoryID    *uint   `json:"category_id"`
	ProductURL    string  `json:"product_url"`
	Discount      *int    `json:"discount" validate:"omitempty,gte=0,lte=100"`
	IsAvailable   *bool   `json:"is_available"`
}

// HandleCreate adds a new product to the catalog. Admin only.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		ProductURL:    req.ProductURL,
		Discount:      req.Discount,
		IsAvailable:   true,
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := h.service.Create(product); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": localized(c, "product_added"),
		"product": product,
	})
}

// ProductUpdateRequest is the request body for updating a product. Absent
// fields are left untouched.
type ProductUpdateRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=255"`
	Description   *string  `json:"description"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	CategoryID    *uint    `json:"category_id"`
	ProductURL    *string  `json:"product_url"`
	Discount      *int     `json:"discount" validate:"omitempty,gte=0,lte=100"`
	IsAvailable   *bool    `json:"is_available"`
}

// HandleUpdate applies a partial update to a product. Admin only.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found"))
	}

	var req ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	product, err := h.service.Update(id, services.ProductUpdate{
		Name:          req.Name,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		ProductURL:    req.ProductURL,
		Discount:      req.Discount,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": localized(c, "product_updated"),
		"product": product,
	})
}

// HandleDelete removes a product. Admin only; refused while order details
// still reference it.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found"))
	}
	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "product_deleted")
}
