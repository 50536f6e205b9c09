package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a path param as uuid; a bad value is a validation error on that param.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, FieldError(name, "must be a valid uuid")
	}
	return id, nil
}

// ParseUUIDQuery is ParseUUIDParam for query strings; empty means absent.
func ParseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, FieldError(name, "must be a valid uuid")
	}
	return &id, nil
}

// ParseUUIDList parses a comma separated id list ("a,b , c").
func ParseUUIDList(field, raw string) ([]uuid.UUID, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	out := make([]uuid.UUID, 0, len(parts))
	seen := make(map[uuid.UUID]struct{}, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, FieldError(field, "contains an invalid uuid: "+p)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, FieldError(field, "is required")
	}
	return out, nil
}

// UUIDStrings is used with pq arrays (`= ANY(?::uuid[])`).
func UUIDStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// BodyParse parses JSON into dst; a malformed body is a BadRequest.
func BodyParse(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return BadRequest("invalid json body", err)
	}
	return nil
}
