package validation_test

import (
	"testing"

	"github.com/smartretail/product-api/internal/platform/validation"
)

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type input struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"max=5"`
	}

	validator := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name      string
		input     input
		wantField string
	}{
		{
			name:  "valid input returns nil",
			input: input{Name: "grinder", Description: "burr"},
		},
		{
			name:      "missing required field is reported under its json name",
			input:     input{Description: "burr"},
			wantField: "name",
		},
		{
			name:      "max violation is reported",
			input:     input{Name: "grinder", Description: "way too long"},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := validator.ValidateStruct(tt.input)

			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("ValidateStruct(input) = %v, want nil", errs)
				}
				return
			}

			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("ValidateStruct(input) = %v, want a message for field %q", errs, tt.wantField)
			}
		})
	}
}
