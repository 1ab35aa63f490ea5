package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"vitrine_backend/pkg/utils/jwt"
)

// AuthMiddleware gates the admin console: requests without a valid bearer
// token never reach the handlers.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := ClaimsFromRequest(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid authorization token",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// ClaimsFromRequest extracts and validates the bearer token, if any.
func ClaimsFromRequest(c *fiber.Ctx) (*jwt.Claims, error) {
	header := c.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return nil, fiber.ErrUnauthorized
	}

	return jwt.ValidateToken(token)
}
