// Package config holds the process-wide settings read by the message
// builder at render time.
//
// Every lookup goes through Get, so a Set takes effect on the very next
// assertion. Values are never cached by callers.
package config

import (
	"fmt"
	"sync/atomic"

	"github.com/conneroisu/expect/internal/errors"
)

// DefaultCollapseLength is the baseline collapse length.
const DefaultCollapseLength = 20

// ExpectConfig configures how failure messages are rendered.
type ExpectConfig struct {
	// CollapseLength is the encoded length after which a value is shown in its
	// collapsed form ("[...]", "{...}", "\"...\"" or "...") in the primary
	// message line.
	CollapseLength int `yaml:"collapse_length" json:"collapse_length" mapstructure:"collapse_length"`
}

var baseline = ExpectConfig{
	CollapseLength: DefaultCollapseLength,
}

var current atomic.Pointer[ExpectConfig]

func init() {
	Reset()
}

// Baseline returns the configuration used after Reset.
func Baseline() ExpectConfig {
	return baseline
}

// Get returns a copy of the active configuration.
func Get() ExpectConfig {
	return *current.Load()
}

// Set replaces the active configuration. Zero fields fall back to the
// baseline rather than to the previously active value.
func Set(cfg ExpectConfig) error {
	if cfg.CollapseLength < 0 {
		return errors.ConfigurationError("collapse_length",
			fmt.Sprintf("must not be negative, got %d", cfg.CollapseLength),
			cfg.CollapseLength)
	}

	merged := baseline
	if cfg.CollapseLength != 0 {
		merged.CollapseLength = cfg.CollapseLength
	}

	current.Store(&merged)

	return nil
}

// Reset restores the baseline configuration.
func Reset() {
	cfg := baseline
	current.Store(&cfg)
}
