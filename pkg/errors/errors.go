// Package errors provides structured error types for neuroplot.
//
// Error codes give the CLI, the figure server, and plotting backends a
// shared, machine-readable vocabulary:
//   - INVALID_*: Input validation failures (grids, axes, scales, targets)
//   - *_NOT_FOUND: A render target or stored visual does not exist
//   - BACKEND_ERROR: The plotting backend failed (I/O, network, storage)
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "grid must have at least one row, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidGrid) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeBackend, origErr, "store figure %s", target)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidGrid     Code = "INVALID_GRID"
	ErrCodeInvalidAxis     Code = "INVALID_AXIS"
	ErrCodeInvalidScale    Code = "INVALID_SCALE"
	ErrCodeInvalidTarget   Code = "INVALID_TARGET"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"

	// Resource not found errors
	ErrCodeTargetNotFound Code = "TARGET_NOT_FOUND"
	ErrCodeVisualNotFound Code = "VISUAL_NOT_FOUND"

	// Backend errors
	ErrCodeBackend Code = "BACKEND_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// It walks the whole chain, so a backend error wrapped by the figure layer
// still matches its original code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
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

// IsNotFound reports whether err means the target or its visual is missing.
func IsNotFound(err error) bool {
	return Is(err, ErrCodeTargetNotFound) || Is(err, ErrCodeVisualNotFound)
}
