package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// OnlyRoles must be mounted after AuthJWT.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := helperAuth.ActorFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized: missing caller")
		}
		if !actor.HasRole(roles...) {
			return fiber.NewError(fiber.StatusForbidden, "forbidden: you are not allowed to access this resource")
		}
		return c.Next()
	}
}
