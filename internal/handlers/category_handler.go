package handlers

import (
	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Write operations sit
// behind the provided auth and admin gates.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetAll)
	categoryRoutes.Get("/:id", h.HandleGet)
	categoryRoutes.Post("/", auth, admin, h.HandleCreate)
	categoryRoutes.Put("/:id", auth, admin, h.HandleUpdate)
	categoryRoutes.Delete("/:id", auth, admin, h.HandleDelete)
}

// HandleGetAll returns every category.
func (h *CategoryHandler) HandleGetAll(c *fiber.Ctx) error {
	categories, err := h.service.All()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// HandleGet returns a single category.
func (h *CategoryHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "category_not_found"))
	}
	category, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(category)
}

// CategoryCreateRequest is the request body for creating a category.
type CategoryCreateRequest struct {
	CategoryName string `json:"category_name" validate:"required,max=100"`
	Status       *bool  `json:"status"`
}

// HandleCreate adds a new category. Admin only.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}
	category, err := h.service.Create(req.CategoryName, status)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  localized(c, "category_added"),
		"category": category,
	})
}

// CategoryUpdateRequest is the request body for updating a category.
type CategoryUpdateRequest struct {
	CategoryName *string `json:"category_name" validate:"omitempty,max=100"`
	Status       *bool   `json:"status"`
}

// HandleUpdate applies a partial update to a category. Admin only.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "category_not_found"))
	}

	var req CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	category, err := h.service.Update(id, req.CategoryName, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  localized(c, "category_updated"),
		"category": category,
	})
}

// HandleDelete removes a category. Admin only.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fail(c, services.E(services.KindNotFound, "category_not_found"))
	}
	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "category_deleted")
}
