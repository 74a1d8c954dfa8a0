package pin

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeInvalidConfiguration indicates the widget was constructed with
	// values it cannot work with (e.g. zero digits)
	ErrTypeInvalidConfiguration ErrorType = iota
)

// ErrInvalidConfiguration is matched by errors.Is for every configuration
// error returned by this package and by the packages built on it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidConfiguration:
		return "Invalid Configuration"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ConfigError describes a rejected construction parameter
type ConfigError struct {
	Type    ErrorType // Category of error
	Field   string    // Offending parameter (e.g. "count")
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's type
func (e *ConfigError) Is(target error) bool {
	return e.Type == ErrTypeInvalidConfiguration && target == ErrInvalidConfiguration
}

// NewConfigError creates an invalid-configuration error for a field
func NewConfigError(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeInvalidConfiguration,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidConfiguration checks if an error is a configuration error
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

// ValidateCount checks a digit count
func ValidateCount(n int) error {
	if n <= 0 {
		return NewConfigError("count", "must be greater than zero, got %d", n)
	}
	return nil
}

// ValidateIndex checks that i addresses one of n slots
func ValidateIndex(field string, i, n int) error {
	if i < 0 || i >= n {
		return NewConfigError(field, "index %d out of range [0, %d)", i, n)
	}
	return nil
}
