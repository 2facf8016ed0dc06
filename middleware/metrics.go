package middleware

import (
	"strconv"
	"time"

	"github.com/biosecret/go-tasks/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics ghi số request và thời gian xử lý cho Prometheus
func Metrics() fiber.Handler {
	m := metrics.Get()

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// route pattern thay vì path để không sinh label theo id
		route := c.Route().Path
		code := c.Response().StatusCode()
		if err != nil {
			code, _ = errorMessage(err)
		}
		status := strconv.Itoa(code)
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), route, status).Observe(time.Since(start).Seconds())

		return err
	}
}
