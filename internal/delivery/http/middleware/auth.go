package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireBearer rejects requests without a bearer token. The stub does not
// verify signatures; any non-empty token passes.
func RequireBearer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":      "Token manquant ou invalide",
				"error_code": "NOT_AUTHENTICATED",
			})
		}
		return c.Next()
	}
}
