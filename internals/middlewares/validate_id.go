package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ValidateEntityID rejects requests whose :id path parameter is not a
// well-formed store identifier, before any handler or store call runs.
func ValidateEntityID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := uuid.Parse(c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid object id")
		}
		return c.Next()
	}
}
