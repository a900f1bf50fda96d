package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeMisuse     ErrorType = "misuse"
	ErrorTypeEncoding   ErrorType = "encoding"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// ExpectError is a structured error type with context.
//
// It is used for everything below the assertion-failure boundary: programmer
// misuse, encoding fallbacks, configuration and CLI input problems. Assertion
// failures themselves are reported through chain.AssertionFailure.
type ExpectError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Suggestions []string
}

// Error implements the error interface.
func (e *ExpectError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	if len(e.Suggestions) > 0 {
		result += fmt.Sprintf(" (did you mean %s?)", quoteJoin(e.Suggestions))
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ExpectError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ExpectError) Is(target error) bool {
	var t *ExpectError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ExpectError) WithContext(key string, value interface{}) *ExpectError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithSuggestions attaches "did you mean" candidates.
func (e *ExpectError) WithSuggestions(suggestions ...string) *ExpectError {
	e.Suggestions = append(e.Suggestions, suggestions...)

	return e
}

// Error creation functions

// NewMisuseError creates an error describing incorrect use of the library by
// the calling code, such as reading a reserved proxy key.
func NewMisuseError(code, message string) *ExpectError {
	return &ExpectError{
		Type:    ErrorTypeMisuse,
		Code:    code,
		Message: message,
	}
}

// NewEncodingError creates an error for a value that could not be encoded.
func NewEncodingError(message string, cause error) *ExpectError {
	return &ExpectError{
		Type:    ErrorTypeEncoding,
		Code:    "ERR_ENCODE",
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ExpectError {
	return &ExpectError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ExpectError {
	return &ExpectError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ExpectError {
	return &ExpectError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ExpectError {
	return &ExpectError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsMisuse checks if an error reports misuse of the library.
func IsMisuse(err error) bool {
	return HasErrorType(err, ErrorTypeMisuse)
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}

	return strings.Join(quoted, " or ")
}
