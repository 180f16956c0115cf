// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"nudge/internal/domain/entity"
	"nudge/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagClock validates zero-padded 24h "HH:MM" strings.
const TagClock = "hhmm"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator with the project's custom tags registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = validate.RegisterValidation(TagClock, func(fl validator.FieldLevel) bool {
		return entity.IsClock(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i) //nolint:wrapcheck
}

// FieldErrors flattens validation errors into field -> message pairs.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldPath(fieldErr.Namespace())] = message(fieldErr)
	}

	return fields
}

// fieldPath drops the root struct name from a namespace like "createNudgeRequest.activeTime.start".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case TagClock:
		return "must be a time in HH:MM format"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}
}
