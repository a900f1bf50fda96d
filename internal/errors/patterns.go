package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Pattern Guidelines:
// 1. Use ExpectError for structured errors with context
// 2. Misuse errors are programmer errors and are raised by panicking
// 3. Include meaningful error codes for programmatic handling
// 4. Wrap existing errors to preserve the error chain

// UnknownNameError reports a method or chain word that is not registered.
func UnknownNameError(kind, name string, registered []string) *ExpectError {
	return NewMisuseError(
		"ERR_UNKNOWN_"+upper(kind),
		fmt.Sprintf("no %s named '%s' is registered", kind, name),
	).WithContext(kind, name).WithSuggestions(ClosestMatches(name, registered, 2)...)
}

// ReservedKeyError reports an attempt to read proxy bookkeeping through
// normal navigation.
func ReservedKeyError(key string) *ExpectError {
	return NewMisuseError(
		"ERR_PROXY_RESERVED_KEY",
		fmt.Sprintf("you can't access '%s' directly; use one of the helper functions like proxy.Value instead", key),
	).WithContext("key", key)
}

// FileOperationError creates file operation errors.
func FileOperationError(operation, filePath, message string, cause error) *ExpectError {
	code := fmt.Sprintf("ERR_FILE_%s", upper(operation))
	return NewIOError(code, fmt.Sprintf("%s failed for %s: %s", operation, filePath, message), cause).
		WithContext("file_path", filePath)
}

// ConfigurationError creates configuration-related errors.
func ConfigurationError(setting, message string, value interface{}) *ExpectError {
	return NewConfigError(
		"ERR_CONFIG_INVALID",
		fmt.Sprintf("invalid configuration for %s: %s", setting, message),
	).WithContext("setting", setting).WithContext("value", value)
}

// ValidationFailure creates validation errors with optional suggestions.
func ValidationFailure(field, message string, value interface{}, suggestions ...string) *ExpectError {
	return NewValidationError(
		"ERR_VALIDATION_"+upper(field),
		fmt.Sprintf("%s %s", field, message),
	).WithContext("field", field).WithContext("value", value).WithSuggestions(suggestions...)
}

// HasErrorCode checks if an error has a specific error code.
func HasErrorCode(err error, code string) bool {
	var ee *ExpectError
	if errors.As(err, &ee) {
		return ee.Code == code
	}

	return false
}

// HasErrorType checks if an error is of a specific type.
func HasErrorType(err error, errType ErrorType) bool {
	var ee *ExpectError
	if errors.As(err, &ee) {
		return ee.Type == errType
	}

	return false
}

var codeReplacer = strings.NewReplacer("-", "_", " ", "_", ".", "_")

func upper(s string) string {
	return strings.ToUpper(codeReplacer.Replace(s))
}
