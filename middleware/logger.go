package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ZapLogger ghi log mỗi request bằng zap
func ZapLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Method()),
			zap.String("path", path),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
			zap.Duration("latency", time.Since(start)),
		}
		if requestID, ok := c.Locals("requestid").(string); ok {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error("http request", fields...)
			return nil
		}

		logger.Info("http request", fields...)
		return nil
	}
}

// errorMessage lấy thông điệp hiển thị cho client từ lỗi của fiber
func errorMessage(err error) (int, string) {
	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code, e.Message
	}
	return fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message
}

// ErrorHandler trả lỗi dạng {"message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := errorMessage(err)
	if code >= fiber.StatusInternalServerError {
		zap.L().Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}
