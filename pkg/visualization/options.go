package visualization

import (
	"fmt"

	"github.com/dd0wney/cluso-layout/pkg/validation"
)

// Defaults applied by DefaultLayoutOptions and, for zero values, by Layout
const (
	DefaultWidth            = 1200.0
	DefaultHeight           = 800.0
	DefaultPadding          = 50.0
	DefaultIterations       = 300
	DefaultMinSpacing       = 150.0
	DefaultRelaxationPasses = 100
	DefaultAggressivePasses = 50

	// MaxExtent bounds Width, Height and MinSpacing. Ring radii grow with
	// n·MinSpacing and must stay finite for any realistic node count.
	MaxExtent = 1e6
)

// LayoutOptions configures a single layout call
type LayoutOptions struct {
	Width      float64   `validate:"gt=0"`
	Height     float64   `validate:"gt=0"`
	Padding    float64   `validate:"gte=0"`
	Algorithm  Algorithm `validate:"omitempty,oneof=auto force hierarchical circular grid community"`
	Iterations int       `validate:"gt=0,lte=100000"`
	MinSpacing float64   `validate:"gte=0"` // 0 selects DefaultMinSpacing
	Seed       uint64    // Seeds initial force-layout placement
	Workers    int       `validate:"gte=0,lte=256"`
}

// DefaultLayoutOptions returns options for a 1200x800 canvas with automatic
// algorithm selection
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Padding:    DefaultPadding,
		Algorithm:  AlgorithmAuto,
		Iterations: DefaultIterations,
		MinSpacing: DefaultMinSpacing,
		Seed:       1,
		Workers:    1,
	}
}

// ParseAlgorithm converts a name into an Algorithm. The empty string means auto.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case "":
		return AlgorithmAuto, nil
	case AlgorithmAuto, AlgorithmForce, AlgorithmHierarchical, AlgorithmCircular, AlgorithmGrid, AlgorithmCommunity:
		return a, nil
	default:
		return "", &ConfigError{Err: fmt.Errorf("unknown algorithm %q", s)}
	}
}

// withDefaults fills optional zero values. Required values are left for Validate.
func (o LayoutOptions) withDefaults() LayoutOptions {
	o.Algorithm = validation.DefaultOr(o.Algorithm, AlgorithmAuto)
	o.MinSpacing = validation.DefaultOr(o.MinSpacing, DefaultMinSpacing)
	return o
}

// Validate checks the options and returns a *ConfigError on failure
func (o LayoutOptions) Validate() error {
	if err := validation.ValidateStruct(&o); err != nil {
		return &ConfigError{Err: err}
	}

	cv := validation.NewConfigValidator("LayoutOptions")
	cv.Finite("Width", o.Width).
		Finite("Height", o.Height).
		Finite("Padding", o.Padding).
		Finite("MinSpacing", o.MinSpacing)
	cv.When(!cv.HasErrors(), func(v *validation.ConfigValidator) {
		v.AtMost("Width", o.Width, MaxExtent).
			AtMost("Height", o.Height, MaxExtent).
			AtMost("MinSpacing", o.MinSpacing, MaxExtent)
	})
	cv.When(!cv.HasErrors(), func(v *validation.ConfigValidator) {
		v.Less("Padding", 2*o.Padding, o.Width, "Width").
			Less("Padding", 2*o.Padding, o.Height, "Height")
	})

	if err := cv.Validate(); err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}

// layoutConfig converts validated options into strategy configuration
func (o LayoutOptions) layoutConfig() *LayoutConfig {
	return &LayoutConfig{
		Width:            o.Width,
		Height:           o.Height,
		Iterations:       o.Iterations,
		Padding:          o.Padding,
		MinSpacing:       o.MinSpacing,
		Workers:          o.Workers,
		RelaxationPasses: DefaultRelaxationPasses,
		AggressivePasses: DefaultAggressivePasses,
	}
}
