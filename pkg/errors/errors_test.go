package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "bad grid: %dx%d", 0, 2)

	if err.Code != ErrCodeInvalidGrid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGrid)
	}

	if err.Message != "bad grid: 0x2" {
		t.Errorf("Message = %v, want %v", err.Message, "bad grid: 0x2")
	}

	expected := "INVALID_GRID: bad grid: 0x2"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeBackend, cause, "store figure")

	if err.Code != ErrCodeBackend {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeBackend)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidAxis, "test"),
			code:     ErrCodeInvalidAxis,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidAxis, "test"),
			code:     ErrCodeBackend,
			expected: false,
		},
		{
			name:     "outer code",
			err:      Wrap(ErrCodeBackend, New(ErrCodeTargetNotFound, "inner"), "outer"),
			code:     ErrCodeBackend,
			expected: true,
		},
		{
			name:     "inner code",
			err:      Wrap(ErrCodeBackend, New(ErrCodeTargetNotFound, "inner"), "outer"),
			code:     ErrCodeTargetNotFound,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("render: %w", New(ErrCodeTargetNotFound, "inner")),
			code:     ErrCodeTargetNotFound,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidScale, "test"),
			expected: ErrCodeInvalidScale,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(ErrCodeTargetNotFound, "x")) {
		t.Error("target not found should match")
	}
	if !IsNotFound(fmt.Errorf("load: %w", New(ErrCodeVisualNotFound, "x"))) {
		t.Error("wrapped visual not found should match")
	}
	if IsNotFound(New(ErrCodeBackend, "x")) {
		t.Error("backend error should not match")
	}
}
