package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// FieldError describes the first field that failed validation
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStruct validates v against its `validate` struct tags.
// The first failure is returned as a *FieldError.
func ValidateStruct(v any) error {
	if v == nil {
		return errors.New("value to validate cannot be nil")
	}

	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		fe := &FieldError{
			Field: e.Field(),
			Tag:   e.Tag(),
			Param: e.Param(),
		}

		switch fe.Tag {
		case "required":
			fe.Message = "field is required"
		case "gt":
			fe.Message = fmt.Sprintf("must be greater than %s, got %v", fe.Param, e.Value())
		case "gte", "min":
			fe.Message = fmt.Sprintf("must be at least %s, got %v", fe.Param, e.Value())
		case "lte", "max":
			fe.Message = fmt.Sprintf("must not exceed %s, got %v", fe.Param, e.Value())
		case "oneof":
			fe.Message = fmt.Sprintf("must be one of [%s], got %q", fe.Param, e.Value())
		default:
			fe.Message = fmt.Sprintf("validation failed (%s)", fe.Tag)
		}
		return fe
	}

	return err
}
