package handlers

import (
	"strconv"

	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin-only management surface.
type AdminHandler struct {
	userService    *services.UserService
	orderService   *services.OrderService
	productService *services.ProductService
	validate       *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService *services.UserService, orderService *services.OrderService,
	productService *services.ProductService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		orderService:   orderService,
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the admin routes behind both gates.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	adminRoutes := router.Group("/admin", auth, admin)
	adminRoutes.Get("/users", h.HandleUsers)
	adminRoutes.Put("/users/:id", h.HandleUpdateUser)
	adminRoutes.Get("/orders", h.HandleOrders)
	adminRoutes.Post("/product_images", h.HandleAddProductImage)
	adminRoutes.Delete("/product_images/:id", h.HandleDeleteProductImage)
}

// HandleUsers returns one page of accounts, newest first, or a single
// account when user_id is given.
func (h *AdminHandler) HandleUsers(c *fiber.Ctx) error {
	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fail(c, services.E(services.KindNotFound, "user_not_found"))
		}
		user, err := h.userService.User(uint(id))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON([]interface{}{user})
	}

	page, pageSize := pagination(c)
	users, err := h.userService.Users(page, pageSize)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// AdminUserUpdateRequest is the request body for an admin user update.
type AdminUserUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=13"`
	ProfilePic  *string `json:"profile_pic" validate:"omitempty,max=255"`
	Status      *bool   `json:"status"`
}

// HandleUpdateUser applies a partial update to any account, including the
// active flag.
func (h *AdminHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "user_not_found"))
	}

	var req AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user, err := h.userService.UpdateProfile(id, services.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ProfilePic:  req.ProfilePic,
		Status:      req.Status,
	}, true)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// HandleOrders returns one page of all orders, newest first, or a single
// order when order_id is given.
func (h *AdminHandler) HandleOrders(c *fiber.Ctx) error {
	if v := c.Query("order_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fail(c, services.E(services.KindNotFound, "order_not_found"))
		}
		order, err := h.orderService.Get(claims(c), uint(id))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(order)
	}

	page, pageSize := pagination(c)
	orders, err := h.orderService.AllOrders(page, pageSize)
	if err != nil {
		return fail(c, err)
	}
	if len(orders) == 0 {
		return fail(c, services.E(services.KindNotFound, "order_not_found"))
	}
	return c.JSON(orders)
}

// ProductImageRequest is the request body for attaching a product image.
type ProductImageRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	ImageURL  string `json:"image_url" validate:"required,min=5,max=255"`
}

// HandleAddProductImage attaches an image to a product.
func (h *AdminHandler) HandleAddProductImage(c *fiber.Ctx) error {
	var req ProductImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	image, err := h.productService.AddImage(req.ProductID, req.ImageURL)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": localized(c, "product_image_add_success"),
		"image":   image,
	})
}

// HandleDeleteProductImage removes a product image.
func (h *AdminHandler) HandleDeleteProductImage(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_images_not_found"))
	}
	if err := h.productService.DeleteImage(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
