// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (invalid
// argument, invalid state, configuration) and for carrying context.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Category membership is reported through Is methods so that callers can use
// errors.Is with the ErrInvalidArgument and ErrInvalidState sentinels.
package apperrors
