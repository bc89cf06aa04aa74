package validation

import (
	"fmt"
	"math"
)

// ConfigValidator provides a fluent interface for cross-field checks that
// struct tags cannot express. It collects all validation errors rather than
// failing on the first one.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{
		name:   configName,
		errors: make([]error, 0),
	}
}

func (cv *ConfigValidator) fail(field, tag, msg string) {
	cv.errors = append(cv.errors, &FieldError{
		Field:   cv.name + "." + field,
		Tag:     tag,
		Message: msg,
	})
}

// Finite validates that a float field is neither NaN nor infinite.
func (cv *ConfigValidator) Finite(field string, value float64) *ConfigValidator {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		cv.fail(field, "finite", fmt.Sprintf("value %v must be finite", value))
	}
	return cv
}

// Less validates that value is strictly below limit.
func (cv *ConfigValidator) Less(field string, value, limit float64, limitName string) *ConfigValidator {
	if !(value < limit) {
		cv.fail(field, "ltfield", fmt.Sprintf("value %g must be less than %s (%g)", value, limitName, limit))
	}
	return cv
}

// AtMost validates that value does not exceed limit.
func (cv *ConfigValidator) AtMost(field string, value, limit float64) *ConfigValidator {
	if !(value <= limit) {
		cv.fail(field, "max", fmt.Sprintf("value %g must be at most %g", value, limit))
	}
	return cv
}

// Custom applies a custom validation function.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.fail(field, "custom", err.Error())
	}
	return cv
}

// When conditionally applies validations if the condition is true.
func (cv *ConfigValidator) When(condition bool, validations func(*ConfigValidator)) *ConfigValidator {
	if condition {
		validations(cv)
	}
	return cv
}

// HasErrors returns true if any validation errors occurred.
func (cv *ConfigValidator) HasErrors() bool {
	return len(cv.errors) > 0
}

// Errors returns all validation errors.
func (cv *ConfigValidator) Errors() []error {
	return cv.errors
}

// Validate returns the first error if any validations failed.
func (cv *ConfigValidator) Validate() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return cv.errors[0]
}

// DefaultOr returns the value if it's non-zero, otherwise returns the default.
func DefaultOr[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
