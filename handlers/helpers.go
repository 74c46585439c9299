package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"budgetbook/services"
)

// apiError maps service errors to HTTP responses. Validation problems
// surface their message with a 400; ownership misses are plain 404s;
// anything store-level is logged and hidden behind a generic 500.
func apiError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMessage,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong",
	})
}
