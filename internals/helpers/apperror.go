// file: internals/helpers/apperror.go
package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindBadRequest ErrorKind = "bad_request"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

// AppError is what services return; controllers turn it into the JSON envelope.
// Message is user facing. Err carries the cause and is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindNotFound:
		return fiber.StatusNotFound
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func NewValidationError(fields map[string][]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// FieldError is a single-field validation failure.
func FieldError(field, msg string) *AppError {
	return NewValidationError(map[string][]string{field: {msg}})
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(msg string, cause error) *AppError {
	return &AppError{Kind: KindBadRequest, Message: msg, Err: cause}
}

func Conflict(msg string, cause error) *AppError {
	return &AppError{Kind: KindConflict, Message: msg, Err: cause}
}

// Internal never exposes the cause to the caller.
func Internal(cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: cause}
}

// AsAppError classifies any error; unknown errors become internal.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
