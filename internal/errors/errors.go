package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Category sentinels for errors.Is matching. Every structured error in this
// package reports membership in exactly one category, so callers can branch
// on the class of failure without naming the concrete type.
var (
	// ErrInvalidArgument matches any error caused by an out-of-range or
	// missing required value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState matches any error caused by an operation attempted
	// outside its allowed state.
	ErrInvalidState = errors.New("invalid state")
)

// InvalidArgumentError reports an out-of-range or missing required value,
// such as a non-positive step total or a nil observer callback.
type InvalidArgumentError struct {
	// Field is the name of the offending argument.
	Field string
	// Reason explains why the value was rejected.
	Reason string
}

// Error returns a formatted message describing the rejected argument.
//
// Returns:
//   - string: The error message string.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// Is reports membership in the ErrInvalidArgument category.
func (e InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument creates an InvalidArgumentError with a formatted reason.
//
// Parameters:
//   - field: The name of the offending argument.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InvalidArgumentError instance.
func NewInvalidArgument(field, format string, a ...any) error {
	return InvalidArgumentError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

// InvalidStateError reports an operation attempted outside its allowed state,
// such as registering an observer after progress has started.
type InvalidStateError struct {
	// Op is the name of the rejected operation.
	Op string
	// Reason explains which state requirement was violated.
	Reason string
}

// Error returns a formatted message describing the rejected operation.
//
// Returns:
//   - string: The error message string.
func (e InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state for %s: %s", e.Op, e.Reason)
}

// Is reports membership in the ErrInvalidState category.
func (e InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// NewInvalidState creates an InvalidStateError with a formatted reason.
//
// Parameters:
//   - op: The name of the rejected operation.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InvalidStateError instance.
func NewInvalidState(op, format string, a ...any) error {
	return InvalidStateError{Op: op, Reason: fmt.Sprintf(format, a...)}
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeForError maps an error to the application exit code that should be
// reported to the OS. Context cancellation maps to ExitErrorCanceled,
// configuration and argument errors to ExitErrorConfig, and everything else
// to ExitErrorGeneric.
//
// Parameters:
//   - err: The error to classify.
//
// Returns:
//   - int: The corresponding exit code, ExitSuccess when err is nil.
func ExitCodeForError(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.Is(err, ErrInvalidArgument), errors.As(err, &cfgErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
