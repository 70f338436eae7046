package handlers

import (
	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes behind the auth gate.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Get("/", h.HandleList)
	orderRoutes.Get("/:id", h.HandleGet)
	orderRoutes.Get("/:id/details", h.HandleDetails)
	orderRoutes.Post("/confirm", h.HandleConfirm)
	orderRoutes.Put("/:id/status", h.HandleUpdateStatus)
	orderRoutes.Put("/:id/payment", h.HandleUpdatePayment)
}

// HandleList returns the caller's orders.
func (h *OrderHandler) HandleList(c *fiber.Ctx) error {
	orders, err := h.service.Orders(claims(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	if len(orders) == 0 {
		return fail(c, services.E(services.KindNotFound, "order_not_found"))
	}
	return c.JSON(orders)
}

// HandleGet returns a single order for its owner or an admin.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "order_not_found"))
	}
	order, err := h.service.Get(claims(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

// HandleDetails returns an order's detail lines with product names.
func (h *OrderHandler) HandleDetails(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "order_not_found"))
	}
	details, err := h.service.Details(claims(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(details)
}

// OrderConfirmRequest is the request body for confirming an order.
type OrderConfirmRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required,min=5,max=500"`
}

// HandleConfirm converts the caller's cart into a confirmed order.
func (h *OrderHandler) HandleConfirm(c *fiber.Ctx) error {
	var req OrderConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, err := h.service.Confirm(claims(c).UserID, req.ShippingAddress)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// StatusUpdateRequest is the request body for status transitions.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateStatus changes an order's status. Shipped and delivered
// transitions are restricted to admins.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "order_not_found"))
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.UpdateStatus(claims(c), id, req.Status); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "order_status_update_success")
}

// HandleUpdatePayment changes an order's payment status.
func (h *OrderHandler) HandleUpdatePayment(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "order_not_found"))
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.UpdatePayment(claims(c), id, req.Status); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "payment_status_update_success")
}
