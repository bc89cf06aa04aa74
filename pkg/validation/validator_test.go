package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type canvasRequest struct {
	Width     float64 `validate:"gt=0"`
	Padding   float64 `validate:"gte=0"`
	Steps     int     `validate:"gt=0,lte=10"`
	Algorithm string  `validate:"omitempty,oneof=force grid"`
}

// TestValidateStruct tests tag-based validation and error formatting
func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		req        canvasRequest
		expectErr  bool
		errorField string
		errorTag   string
	}{
		{
			name: "Valid request",
			req:  canvasRequest{Width: 100, Padding: 0, Steps: 5, Algorithm: "grid"},
		},
		{
			name: "Empty algorithm is allowed",
			req:  canvasRequest{Width: 100, Steps: 1},
		},
		{
			name:       "Zero width - invalid",
			req:        canvasRequest{Width: 0, Steps: 1},
			expectErr:  true,
			errorField: "Width",
			errorTag:   "gt",
		},
		{
			name:       "Negative padding - invalid",
			req:        canvasRequest{Width: 10, Padding: -1, Steps: 1},
			expectErr:  true,
			errorField: "Padding",
			errorTag:   "gte",
		},
		{
			name:       "Too many steps - invalid",
			req:        canvasRequest{Width: 10, Steps: 11},
			expectErr:  true,
			errorField: "Steps",
			errorTag:   "lte",
		},
		{
			name:       "Unknown algorithm - invalid",
			req:        canvasRequest{Width: 10, Steps: 1, Algorithm: "spiral"},
			expectErr:  true,
			errorField: "Algorithm",
			errorTag:   "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)

			if !tt.expectErr {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
				return
			}

			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected *FieldError, got %T (%v)", err, err)
			}
			if fe.Field != tt.errorField {
				t.Errorf("Expected field %s, got %s", tt.errorField, fe.Field)
			}
			if fe.Tag != tt.errorTag {
				t.Errorf("Expected tag %s, got %s", tt.errorTag, fe.Tag)
			}
			if !strings.HasPrefix(err.Error(), tt.errorField+":") {
				t.Errorf("Error message should start with the field name: %v", err)
			}
		})
	}
}

// TestValidateStruct_Nil tests nil input handling
func TestValidateStruct_Nil(t *testing.T) {
	if err := ValidateStruct(nil); err == nil {
		t.Error("Expected error for nil value")
	}
}

func TestConfigValidator_Finite(t *testing.T) {
	cv := NewConfigValidator("LayoutOptions")
	cv.Finite("Width", math.Inf(1)).Finite("Height", math.NaN())

	if len(cv.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(cv.Errors()))
	}

	cv2 := NewConfigValidator("LayoutOptions")
	cv2.Finite("Width", 800)
	if cv2.HasErrors() {
		t.Error("Expected no error for a finite value")
	}
}

func TestConfigValidator_Less(t *testing.T) {
	cv := NewConfigValidator("LayoutOptions")
	cv.Less("Padding", 400, 400, "half width")

	err := cv.Validate()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FieldError, got %v", err)
	}
	if fe.Field != "LayoutOptions.Padding" {
		t.Errorf("Unexpected field %q", fe.Field)
	}

	cv2 := NewConfigValidator("LayoutOptions")
	cv2.Less("Padding", 10, 400, "half width")
	if cv2.Validate() != nil {
		t.Error("Expected no error when value is below limit")
	}
}

func TestConfigValidator_AtMost(t *testing.T) {
	cv := NewConfigValidator("LayoutOptions")
	cv.AtMost("MinSpacing", 1e306, 1e6).AtMost("Width", math.NaN(), 1e6)

	if len(cv.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(cv.Errors()))
	}
	var fe *FieldError
	if !errors.As(cv.Validate(), &fe) || fe.Tag != "max" {
		t.Errorf("Expected max FieldError, got %v", cv.Validate())
	}

	cv2 := NewConfigValidator("LayoutOptions")
	cv2.AtMost("MinSpacing", 1e6, 1e6)
	if cv2.HasErrors() {
		t.Error("Expected no error at the limit")
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return errors.New("custom failure") })

	if !cv.HasErrors() {
		t.Error("Expected error from custom validator")
	}
	if !strings.Contains(cv.Validate().Error(), "custom failure") {
		t.Errorf("Unexpected message: %v", cv.Validate())
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Finite("Skipped", math.NaN())
	})
	if cv.HasErrors() {
		t.Error("Validations inside When(false) should not run")
	}

	cv.When(true, func(v *ConfigValidator) {
		v.Finite("Checked", math.NaN())
	})
	if !cv.HasErrors() {
		t.Error("Validations inside When(true) should run")
	}
}

func TestDefaultOr(t *testing.T) {
	if DefaultOr(0.0, 150.0) != 150.0 {
		t.Error("Expected default for zero value")
	}
	if DefaultOr("grid", "auto") != "grid" {
		t.Error("Expected value when non-zero")
	}
}
