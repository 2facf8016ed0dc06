package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleHealthCheck dùng cho liveness probe, nằm ngoài /api nên không có trong swagger
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "ok",
		"app_name": c.App().Config().AppName,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
