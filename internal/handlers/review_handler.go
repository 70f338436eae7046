package handlers

import (
	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews and ratings.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes. Reading is public;
// submission sits behind the auth gate.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	reviewRoutes := router.Group("/review_ratings")
	reviewRoutes.Get("/:product_id", h.HandleListByProduct)
	reviewRoutes.Post("/", auth, h.HandleSubmit)
}

// HandleListByProduct returns all reviews of a product.
func (h *ReviewHandler) HandleListByProduct(c *fiber.Ctx) error {
	productID, err := paramUint(c, "product_id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "product_not_found"))
	}
	reviews, err := h.service.ListByProduct(productID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reviews)
}

// ReviewRequest is the request body for submitting a review.
type ReviewRequest struct {
	ProductID  uint    `json:"product_id" validate:"required"`
	Rating     float64 `json:"rating" validate:"required"`
	ReviewText string  `json:"review_text"`
}

// HandleSubmit upserts the caller's review of a product.
func (h *ReviewHandler) HandleSubmit(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	updated, err := h.service.Submit(claims(c).UserID, req.ProductID, req.Rating, req.ReviewText)
	if err != nil {
		return fail(c, err)
	}

	key := "review_rating_add_success"
	if updated {
		key = "review_rating_updated_success"
	}
	return message(c, fiber.StatusOK, key)
}
