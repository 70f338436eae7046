package handlers

import (
	"log"

	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for profile and password management.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes. The forgot/reset pair is
// public; everything else sits behind the auth gate.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/profile", auth, h.HandleProfile)
	userRoutes.Put("/profile", auth, h.HandleUpdateProfile)
	userRoutes.Put("/password", auth, h.HandleChangePassword)
	userRoutes.Post("/forgot_password", h.HandleForgotPassword)
	userRoutes.Post("/reset_password", h.HandleResetPassword)
}

// HandleProfile returns the caller's account record.
func (h *UserHandler) HandleProfile(c *fiber.Ctx) error {
	user, err := h.service.Profile(claims(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// ProfileUpdateRequest is the request body for updating the caller's profile.
type ProfileUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=13"`
	ProfilePic  *string `json:"profile_pic" validate:"omitempty,max=255"`
}

// HandleUpdateProfile applies a partial update to the caller's account.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user, err := h.service.UpdateProfile(claims(c).UserID, services.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ProfilePic:  req.ProfilePic,
	}, false)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": localized(c, "profile_updated"),
		"user":    user,
	})
}

// ChangePasswordRequest is the request body for changing the password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// HandleChangePassword replaces the caller's password.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.ChangePassword(claims(c).UserID, req.OldPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "password_updated")
}

// ForgotPasswordRequest is the request body for requesting a reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleForgotPassword issues a persisted reset token. Delivery is left to
// the mail collaborator; the token is only logged here.
func (h *UserHandler) HandleForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	token, err := h.service.ForgotPassword(req.Email)
	if err != nil {
		return fail(c, err)
	}
	log.Printf("Password reset token issued for %s: %s", req.Email, token)
	return message(c, fiber.StatusOK, "password_reset_sent")
}

// ResetPasswordRequest is the request body for consuming a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// HandleResetPassword consumes a reset token and sets a new password.
func (h *UserHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.ResetPassword(req.Token, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return message(c, fiber.StatusOK, "password_reset_success")
}
