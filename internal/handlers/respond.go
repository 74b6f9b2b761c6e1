package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cookmaster/internal/models"
)

// writeError maps a known API failure to its status and message; anything
// outside the closed set becomes a generic 500.
func writeError(c *fiber.Ctx, err error) error {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(apiErr)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}
