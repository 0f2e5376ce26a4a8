package errors

import (
	"errors"
	"fmt"
)

// Common error values used across the pulse library

var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrQueueFull indicates that an executor queue rejected a task
	ErrQueueFull = errors.New("executor queue is full")
)

// TransportError reports a failure in the HTTP transport collaborator.
// A non-2xx response carries the status code with a nil cause.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

// NewTransportError creates a TransportError for the given request.
func NewTransportError(url string, statusCode int, err error) *TransportError {
	return &TransportError{URL: url, StatusCode: statusCode, Err: err}
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("transport: %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a failure in the decode collaborator. The first
// decode failure terminates its pipeline.
type DecodeError struct {
	Err error
}

// NewDecodeError wraps a decoding failure.
func NewDecodeError(err error) *DecodeError {
	return &DecodeError{Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError reports an invalid configuration parameter.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for a configuration field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Module: module, Field: field, Value: value, Reason: reason}
}

// WithHint attaches a remediation hint to the error.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s (%v): %s", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// IsTransport returns true if err is or wraps a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode returns true if err is or wraps a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
