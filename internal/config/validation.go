package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/internal/logging"
)

// Accepted values for the enumerated settings.
var (
	OutputFormats = []string{"text", "json", "yaml"}
	LogFormats    = []string{"text", "json"}
	LogLevels     = []string{"debug", "info", "warn", "error", "fatal"}
)

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors   []*errors.ExpectError
	Warnings []*errors.ExpectError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// Err combines the errors into one, or returns nil.
func (vr *ValidationResult) Err() error {
	errs := make([]error, 0, len(vr.Errors))
	for _, err := range vr.Errors {
		errs = append(errs, err)
	}
	return errors.CombineErrors(errs...)
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		writeIssues(&builder, vr.Errors)
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		writeIssues(&builder, vr.Warnings)
	}

	return builder.String()
}

func writeIssues(builder *strings.Builder, issues []*errors.ExpectError) {
	for _, issue := range issues {
		builder.WriteString(fmt.Sprintf("  • %s\n", issue.Message))
		for _, suggestion := range issue.Suggestions {
			builder.WriteString(fmt.Sprintf("    💡 did you mean '%s'?\n", suggestion))
		}
	}
}

// Validate checks every section and collects errors and warnings. Missing
// scenario directories are warnings, since check may be given explicit
// files instead.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{}

	if config.Expect.CollapseLength < 0 {
		result.Errors = append(result.Errors, errors.ValidationFailure(
			"expect.collapse_length",
			fmt.Sprintf("must not be negative, got %d", config.Expect.CollapseLength),
			config.Expect.CollapseLength,
			"use 0 for the default of 20",
		))
	}

	validateChoice(result, "output.format", config.Output.Format, OutputFormats)
	validateChoice(result, "log.format", config.Log.Format, LogFormats)
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		validateChoice(result, "log.level", config.Log.Level, LogLevels)
	}

	for _, path := range config.Scenarios.Paths {
		if err := validatePath(path); err != nil {
			result.Errors = append(result.Errors, errors.ValidationFailure(
				"scenarios.paths",
				fmt.Sprintf("has an invalid entry '%s': %v", path, err),
				path,
			))
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, errors.ValidationFailure(
				"scenarios.paths",
				fmt.Sprintf("entry '%s' does not exist", path),
				path,
				"create the directory or pass scenario files as arguments",
			))
		}
	}

	for _, pattern := range slices.Concat(config.Scenarios.Patterns, config.Scenarios.Exclude) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, errors.ValidationFailure(
				"scenarios.patterns",
				fmt.Sprintf("has a malformed glob '%s'", pattern),
				pattern,
			))
		}
	}

	if config.Watch.Debounce < 0 {
		result.Errors = append(result.Errors, errors.ValidationFailure(
			"watch.debounce",
			fmt.Sprintf("must not be negative, got %s", config.Watch.Debounce),
			config.Watch.Debounce,
		))
	}

	return result
}

func validateChoice(result *ValidationResult, field, value string, choices []string) {
	if slices.Contains(choices, value) {
		return
	}

	result.Errors = append(result.Errors, errors.ValidationFailure(
		field,
		fmt.Sprintf("has unknown value '%s' (valid values: %s)", value, strings.Join(choices, ", ")),
		value,
		errors.ClosestMatches(value, choices, 1)...,
	))
}

// validateConfig returns the first validation error, ignoring warnings.
func validateConfig(config *Config) error {
	result := Validate(config)
	if result.HasErrors() {
		return result.Errors[0]
	}
	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
