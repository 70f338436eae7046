package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"seabasket/internal/middleware"
	"seabasket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusOf maps a service error kind to an HTTP status code.
func statusOf(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindUnprocessable:
		return fiber.StatusUnprocessableEntity
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindUnauthorized:
		return fiber.StatusUnauthorized
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes a service error as a localized JSON message. Unclassified
// errors become 500s with the raw error text.
func fail(c *fiber.Ctx, err error) error {
	var se *services.Error
	if errors.As(err, &se) {
		return c.Status(statusOf(se.Kind)).JSON(fiber.Map{
			"message": middleware.Localizer(c).Get(se.Key, se.Args...),
		})
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// message writes a localized JSON message with the given status.
func message(c *fiber.Ctx, status int, key string, args ...interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"message": middleware.Localizer(c).Get(key, args...),
	})
}

// badBody writes the standard malformed-body response.
func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": middleware.Localizer(c).Get("invalid_request_body"),
		"error":   err.Error(),
	})
}

// failValidation writes per-field validation errors.
func failValidation(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return badBody(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": middleware.Localizer(c).Get("validation_failed"),
		"errors":  errorMessages,
	})
}

// localized resolves a message key for the request locale.
func localized(c *fiber.Ctx, key string, args ...interface{}) string {
	return middleware.Localizer(c).Get(key, args...)
}

// claims returns the identity stored by the auth middleware.
func claims(c *fiber.Ctx) services.Claims {
	identity, _ := middleware.ClaimsFrom(c)
	return identity
}

// paramUint parses a numeric path parameter.
func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// pagination reads page/page_size query parameters with sane defaults.
func pagination(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("page_size", 10)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
