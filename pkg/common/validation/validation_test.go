package validation

import (
	"testing"

	"github.com/gostreamlab/pulse/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantError bool
	}{
		{"positive value", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("executor", "QueueSize", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	if err := ValidateNotNil("source", "Client", nil); err == nil {
		t.Error("expected error for nil value")
	}
	if err := ValidateNotNil("source", "Client", struct{}{}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("source", "Channel", ""); err == nil {
		t.Error("expected error for empty string")
	}
	if err := ValidateNotEmpty("source", "Channel", "events"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
