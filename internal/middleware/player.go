package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EnsurePlayerID requires every request to carry a client identity,
// either in the X-Player-ID header or a playerId query parameter.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		c.Locals("playerID", playerID)
		return c.Next()
	}
}
