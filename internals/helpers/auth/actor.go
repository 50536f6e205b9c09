// file: internals/helpers/auth/actor.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleTeacher    = "teacher"
)

const actorLocalsKey = "actor"

// Actor is the authenticated caller of one request. It lives in the request locals
// and is never cached across requests.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

func (a Actor) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

func WithActor(c *fiber.Ctx, a Actor) {
	c.Locals(actorLocalsKey, a)
}

// ActorFrom returns the caller set by the auth middleware.
func ActorFrom(c *fiber.Ctx) (Actor, bool) {
	a, ok := c.Locals(actorLocalsKey).(Actor)
	return a, ok
}

// MustActor is ActorFrom for handlers mounted behind AuthJWT.
func MustActor(c *fiber.Ctx) (Actor, error) {
	a, ok := ActorFrom(c)
	if !ok || a.UserID == uuid.Nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return a, nil
}
