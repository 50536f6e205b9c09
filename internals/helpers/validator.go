package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator. decimal.Decimal fields are validated as
// float64 so numeric tags (gte, lte, ...) apply to money.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("scale2", hasScale2)
		validate = v
	})
	return validate
}

// hasScale2 rejects amounts with more than two decimal places. The raw decimal is read
// from the parent struct since the custom type func hands tags a float64.
func hasScale2(fl validator.FieldLevel) bool {
	raw := fl.Parent()
	if raw.Kind() == reflect.Ptr {
		raw = raw.Elem()
	}
	if raw.Kind() == reflect.Struct {
		f := raw.FieldByName(fl.StructFieldName())
		if f.IsValid() && f.Kind() == reflect.Ptr {
			if f.IsNil() {
				return true
			}
			f = f.Elem()
		}
		if f.IsValid() && f.CanInterface() {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				return d.Equal(d.Truncate(2))
			}
		}
	}
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		d := decimal.NewFromFloat(fl.Field().Float())
		return d.Equal(d.Truncate(2))
	default:
		return true
	}
}

// ValidateStruct runs the shared validator and returns a Validation AppError.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Internal(err)
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return NewValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email"
	case "uuid", "uuid4":
		return "must be a valid uuid"
	case "scale2":
		return "must have at most 2 decimal places"
	case "gtefield":
		return "must not be before " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
