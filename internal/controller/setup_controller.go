package controller

import (
	"github.com/gofiber/fiber/v2"
)

// ServiceNotConfigured answers every admin API call while the backing store
// is missing its credentials. This is a recognized terminal state with its
// own instructions, not a failure.
func ServiceNotConfigured(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"configured": false,
		"message": "The admin console is disabled until the backing services are configured. " +
			"Set DATABASE_URL plus ADMIN_EMAIL and ADMIN_PASSWORD to enable it, and " +
			"STORAGE_ENDPOINT, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY, STORAGE_BUCKET " +
			"and STORAGE_PUBLIC_URL to enable image uploads.",
	})
}
