// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// AuthJWT verifies the bearer token and stores the caller in the request locals.
func AuthJWT(secret string, log *zap.Logger) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		if len(key) == 0 {
			log.Error("JWT secret is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "missing jwt secret")
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized - "+err.Error())
		}

		claims, err := parseToken(tokenString, key)
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized - invalid token")
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized - "+err.Error())
		}
		helperAuth.WithActor(c, actor)
		return c.Next()
	}
}
