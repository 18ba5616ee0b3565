package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedRequirement, "test message: %s", "value")

	if err.Code != ErrCodeMalformedRequirement {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedRequirement)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "MALFORMED_REQUIREMENT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidInput, cause, "line 3")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_INPUT: line 3: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
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
			err:      New(ErrCodeMalformedExtras, "test"),
			code:     ErrCodeMalformedExtras,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMalformedExtras, "test"),
			code:     ErrCodeMalformedRequirement,
			expected: false,
		},
		{
			name:     "outer code",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeMalformedExtras, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "inner code",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeMalformedExtras, "inner"), "outer"),
			code:     ErrCodeMalformedExtras,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("scan: %w", New(ErrCodeMalformedRequirement, "inner")),
			code:     ErrCodeMalformedRequirement,
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
	if got := GetCode(New(ErrCodeMalformedExtras, "x")); got != ErrCodeMalformedExtras {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeMalformedExtras)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeMalformedRequirement, "bad line %q", "x y")); got != `bad line "x y"` {
		t.Errorf("UserMessage() = %v", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %v, want plain", got)
	}
}
