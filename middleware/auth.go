package middleware

import (
	"strings"

	"github.com/biosecret/go-tasks/metrics"
	"github.com/biosecret/go-tasks/utils"
	"github.com/gofiber/fiber/v2"
)

// MockAuth chỉ kiểm tra header Authorization có tồn tại và token dài đúng 60 ký tự.
// Token không được đối chiếu với token đã cấp.
func MockAuth(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return reject(c, "missing")
	}

	// Tách từ "Bearer <token>"
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")
	if len(accessToken) != utils.AccessTokenLength {
		return reject(c, "length")
	}

	return c.Next()
}

func reject(c *fiber.Ctx, reason string) error {
	metrics.Get().AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
}
