package visualization

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions matches every *ConfigError via errors.Is
var ErrInvalidOptions = errors.New("invalid layout options")

// ConfigError reports malformed LayoutOptions. It is the only error Layout returns.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidOptions, e.Err)
}

// Unwrap exposes both the sentinel and the underlying field error
func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidOptions, e.Err}
}
