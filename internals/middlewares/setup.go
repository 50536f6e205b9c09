package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/middlewares/logger"
	"schooladmin_backend/internals/observability/metrics"
)

// SetupMiddlewares installs the global chain, outermost first.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	app.Use(requestid.New())
	app.Use(RecoveryMiddleware(log))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(logger.LoggerMiddleware(log))
	app.Use(metrics.Middleware())
	app.Use(RequestTimeout(cfg.DBStatementTimeout + 2*time.Second))
}

// RequestTimeout bounds the user context handed to gorm, a bit above statement_timeout.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
