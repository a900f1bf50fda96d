package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/conneroisu/expect/internal/errors"
)

// ValidateFormatWithSuggestion accepts value when it is one of valid and
// otherwise suggests the closest valid value.
func ValidateFormatWithSuggestion(value string, valid []string) error {
	if slices.Contains(valid, strings.ToLower(value)) {
		return nil
	}

	return errors.ValidationFailure(
		"format",
		fmt.Sprintf("'%s' is not supported (supported: %s)", value, strings.Join(valid, ", ")),
		value,
		errors.ClosestMatches(strings.ToLower(value), valid, 1)...,
	)
}

// validateTargets checks that every explicit target exists.
func validateTargets(targets []string) error {
	var errs []error
	for _, target := range targets {
		if err := validateTarget(target); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.CombineErrors(errs...)
}

func validateTarget(target string) error {
	if _, err := os.Stat(target); err != nil {
		return errors.FileOperationError("stat", target, "cannot access scenario target", err)
	}
	return nil
}
