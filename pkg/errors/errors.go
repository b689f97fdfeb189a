// Package errors provides structured error types for pubplot.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the registry and figure factory
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The taxonomy is small and maps one-to-one onto the failure modes of the
// library:
//   - NOT_FOUND: unknown journal identifier
//   - CONFLICT: duplicate registration without overwrite
//   - INVALID_CONFIG: bad column selection, malformed dimensions, missing style file
//   - INVALID_FORMAT: unsupported output format
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "journal %q not found", id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing journal
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "read style file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeNotFound indicates an unknown journal identifier.
	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeConflict indicates a duplicate registration without overwrite.
	ErrCodeConflict Code = "CONFLICT"

	// ErrCodeInvalidConfig indicates an invalid column selection, malformed
	// dimensions, or a missing required style file.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeInvalidFormat indicates an unsupported output format.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
