package handlers

import (
	"seabasket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart routes behind the auth gate.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart", auth)
	cartRoutes.Get("/", h.HandleGet)
	cartRoutes.Post("/add/:product_id", h.HandleAdd)
	cartRoutes.Delete("/remove/:cart_id", h.HandleRemove)
	cartRoutes.Put("/decrease/:cart_id", h.HandleDecrease)
}

// HandleGet returns the caller's cart lines with product names and prices.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	items, err := h.service.Items(claims(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// HandleAdd puts one unit of a product into the caller's cart, creating or
// incrementing the line.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	productID, err := paramUint(c, "product_id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found"))
	}

	line, created, err := h.service.AddProduct(claims(c).UserID, productID)
	if err != nil {
		return fail(c, err)
	}

	key := "cart_updated"
	if created {
		key = "added_to_cart"
	}
	return c.JSON(fiber.Map{
		"message":   localized(c, key),
		"cart_item": line,
	})
}

// HandleRemove deletes one of the caller's cart lines.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	cartID, err := paramUint(c, "cart_id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found_in_cart"))
	}
	if err := h.service.Remove(claims(c).UserID, cartID); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "removed_from_cart")
}

// HandleDecrease lowers a cart line's quantity by one, deleting the line
// when it would drop below one.
func (h *CartHandler) HandleDecrease(c *fiber.Ctx) error {
	cartID, err := paramUint(c, "cart_id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found_in_cart"))
	}

	line, err := h.service.DecreaseQuantity(claims(c).UserID, cartID)
	if err != nil {
		return fail(c, err)
	}
	if line == nil {
		return message(c, fiber.StatusOK, "removed_from_cart")
	}
	return c.JSON(fiber.Map{
		"message": localized(c, "decreased_cart_quantity"),
		"item":    line,
	})
}
