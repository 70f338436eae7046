package middleware

import (
	"strings"

	"seabasket/internal/services"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// AuthRequired validates the bearer token and stores the embedded identity
// in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": Localizer(c).Get("authorization_required"),
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": Localizer(c).Get("invalid_or_expired_token"),
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": Localizer(c).Get("invalid_or_expired_token"),
			})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// AdminRequired rejects requests whose identity lacks the admin role. Must
// run after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(claimsKey).(services.Claims)
		if !ok || !claims.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": Localizer(c).Get("admin_required"),
			})
		}
		return c.Next()
	}
}

// ClaimsFrom returns the identity stored by AuthRequired.
func ClaimsFrom(c *fiber.Ctx) (services.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(services.Claims)
	return claims, ok
}
