package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportErrorWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewTransportError("http://example.com/users", 0, cause)

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("message should carry the cause, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
	if !IsTransport(err) {
		t.Error("IsTransport should match")
	}
	if IsDecode(err) {
		t.Error("IsDecode should not match a transport error")
	}
}

func TestTransportErrorStatus(t *testing.T) {
	err := NewTransportError("http://example.com/users", 503, nil)

	if !strings.Contains(err.Error(), "503") {
		t.Errorf("message should carry the status, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("status-only transport error has no cause")
	}
}

func TestDecodeError(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := NewDecodeError(cause)

	if !IsDecode(err) {
		t.Error("IsDecode should match")
	}
	if IsTransport(err) {
		t.Error("IsTransport should not match a decode error")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestWrappedDetection(t *testing.T) {
	inner := NewDecodeError(stderrors.New("bad field"))
	wrapped := fmt.Errorf("pipeline failed: %w", inner)

	if !IsDecode(wrapped) {
		t.Error("IsDecode should match through wrapping")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("executor", "QueueSize", -1, "must be positive").
		WithHint("value must be greater than 0")

	if !IsValidationError(err) {
		t.Error("IsValidationError should match")
	}
	for _, want := range []string{"executor", "QueueSize", "-1", "must be positive", "greater than 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("message missing %q: %q", want, err.Error())
		}
	}
}
