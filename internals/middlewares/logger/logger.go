package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "schooladmin_backend/internals/helpers"
)

// LoggerMiddleware writes one line per request.
func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		log.Info("request",
			zap.String("request_id", helper.RequestID(c)),
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
