package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes we translate.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNumericOverflow     = "22003"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsForeignKeyViolation(err error) bool { return pgCode(err) == pgForeignKeyViolation }
func IsUniqueViolation(err error) bool     { return pgCode(err) == pgUniqueViolation }
func IsCheckViolation(err error) bool      { return pgCode(err) == pgCheckViolation }
func IsNumericOverflow(err error) bool     { return pgCode(err) == pgNumericOverflow }

// MapWriteError translates store errors raised by inserts/updates.
// A dangling reference becomes BadRequest, a duplicate becomes Conflict.
func MapWriteError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("%s not found", entity)
	case IsForeignKeyViolation(err):
		return BadRequest("referenced record does not exist, check provided data", err)
	case IsUniqueViolation(err):
		return Conflict(entity+" already exists", err)
	case IsCheckViolation(err), IsNumericOverflow(err):
		return BadRequest("value out of allowed range, check provided data", err)
	default:
		return Internal(err)
	}
}

// MapDeleteError translates store errors raised by deletes.
// A row still referenced elsewhere is a Conflict, never silently ignored.
func MapDeleteError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case IsForeignKeyViolation(err):
		return Conflict(entity+" is still referenced and cannot be deleted", err)
	default:
		return MapWriteError(err, entity)
	}
}

// MapReadError turns a missing row into NotFound and everything else into Internal.
func MapReadError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("%s not found", entity)
	default:
		return Internal(err)
	}
}
