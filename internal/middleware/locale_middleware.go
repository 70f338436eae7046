package middleware

import (
	"seabasket/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

const localizerKey = "localizer"

// Locale resolves the request's message catalog from the Accept-Language
// header and stores a Localizer in the request context.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := i18n.MatchLocale(c.Get("Accept-Language"))
		c.Locals(localizerKey, i18n.NewLocalizer(locale))
		return c.Next()
	}
}

// Localizer returns the request's Localizer, falling back to the default
// locale when the Locale middleware did not run.
func Localizer(c *fiber.Ctx) *i18n.Localizer {
	if loc, ok := c.Locals(localizerKey).(*i18n.Localizer); ok {
		return loc
	}
	return i18n.NewLocalizer(i18n.DefaultLocale)
}
