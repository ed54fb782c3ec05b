// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns formatted message",
			err:      InvalidArgumentError{Field: "totalSteps", Reason: "must be positive"},
			expected: `invalid argument "totalSteps": must be positive`,
		},
		{
			name:     "NewInvalidArgument creates formatted error",
			err:      NewInvalidArgument("steps", "got %d, want >= 0", -3),
			expected: `invalid argument "steps": got -3, want >= 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Error("expected error to match ErrInvalidArgument")
			}
			if errors.Is(tt.err, ErrInvalidState) {
				t.Error("expected error not to match ErrInvalidState")
			}
			var argErr InvalidArgumentError
			if !errors.As(tt.err, &argErr) {
				t.Error("expected error to be InvalidArgumentError type")
			}
		})
	}
}

func TestInvalidStateError(t *testing.T) {
	t.Parallel()
	err := NewInvalidState("Observe", "process already advanced to step %d", 7)
	expected := "invalid state for Observe: process already advanced to step 7"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("expected error to match ErrInvalidState")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("expected error not to match ErrInvalidArgument")
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--width"),
			expected: "invalid value 42 for flag --width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var configErr ConfigError
			if !errors.As(tt.err, &configErr) {
				t.Error("expected error to be ConfigError type")
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		base := NewInvalidArgument("width", "must be positive")
		wrapped := WrapError(base, "parsing flag %s", "--width")
		expected := `parsing flag --width: invalid argument "width": must be positive`
		if wrapped.Error() != expected {
			t.Errorf("expected %q, got %q", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, ErrInvalidArgument) {
			t.Error("wrapped error should still match ErrInvalidArgument")
		}
	})

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("expected nil for nil input")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"other error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"invalid argument", NewInvalidArgument("steps", "negative"), ExitErrorConfig},
		{"config error", NewConfigError("bad flag"), ExitErrorConfig},
		{"invalid state", NewInvalidState("Observe", "already started"), ExitErrorGeneric},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeForError(tt.err); got != tt.expected {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
