package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context, creating an ExpectError if the
// input is not already one.
func Wrap(err error, errType ErrorType, code, message string) *ExpectError {
	if err == nil {
		return nil
	}

	var ee *ExpectError
	if errors.As(err, &ee) {
		return &ExpectError{
			Type:    errType,
			Code:    code,
			Message: message,
			Cause:   ee,
			Context: ee.Context,
		}
	}

	return &ExpectError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// CollectErrors helper for common error collection patterns
func CollectErrors(errs ...error) []error {
	var collected []error
	for _, err := range errs {
		if err != nil {
			collected = append(collected, err)
		}
	}
	return collected
}

// CombineErrors combines multiple errors into a single error with context
func CombineErrors(errs ...error) error {
	nonNilErrs := CollectErrors(errs...)
	if len(nonNilErrs) == 0 {
		return nil
	}
	if len(nonNilErrs) == 1 {
		return nonNilErrs[0]
	}

	var messages []string
	for _, err := range nonNilErrs {
		messages = append(messages, err.Error())
	}

	return &ExpectError{
		Type:    ErrorTypeInternal,
		Code:    "ERR_MULTIPLE_ERRORS",
		Message: fmt.Sprintf("multiple errors occurred: %d errors", len(nonNilErrs)),
		Context: map[string]interface{}{
			"error_count": len(nonNilErrs),
			"errors":      messages,
		},
	}
}
