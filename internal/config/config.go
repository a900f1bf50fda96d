// Package config loads the expectctl configuration using Viper, from a
// YAML file, environment variables and command-line flags.
//
// The configuration covers message rendering (the collapse length pushed
// into pkg/config), the output format of the CLI, logging, where scenario
// files live, and the debounce used by check --watch. Environment variables
// use the EXPECTCTL_ prefix, e.g. EXPECTCTL_EXPECT_COLLAPSE_LENGTH=40.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/expect/internal/logging"
	expectconfig "github.com/conneroisu/expect/pkg/config"
)

type Config struct {
	Expect      ExpectConfig    `yaml:"expect" mapstructure:"expect"`
	Output      OutputConfig    `yaml:"output" mapstructure:"output"`
	Log         LogConfig       `yaml:"log" mapstructure:"log"`
	Scenarios   ScenariosConfig `yaml:"scenarios" mapstructure:"scenarios"`
	Watch       WatchConfig     `yaml:"watch" mapstructure:"watch"`
	TargetFiles []string        `yaml:"-" mapstructure:"-"` // CLI arguments, not from config file
}

type ExpectConfig struct {
	CollapseLength int `yaml:"collapse_length" mapstructure:"collapse_length"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type ScenariosConfig struct {
	Paths    []string `yaml:"paths" mapstructure:"paths"`
	Patterns []string `yaml:"patterns" mapstructure:"patterns"`
	Exclude  []string `yaml:"exclude" mapstructure:"exclude"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Defaults applied by Load for unset values.
const (
	DefaultOutputFormat = "text"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultDebounce     = 300 * time.Millisecond
)

var (
	defaultScenarioPaths    = []string{"./scenarios"}
	defaultScenarioPatterns = []string{"*.yml", "*.yaml"}
	defaultScenarioExclude  = []string{"*.bak"}
)

// EnvPrefix prefixes every environment variable read by BindEnvironment.
const EnvPrefix = "EXPECTCTL"

// Keys lists every configuration key.
var Keys = []string{
	"expect.collapse_length",
	"output.format",
	"log.level",
	"log.format",
	"scenarios.paths",
	"scenarios.patterns",
	"scenarios.exclude",
	"watch.debounce",
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// BindEnvironment makes v read EXPECTCTL_<SECTION>_<OPTION> variables.
// Keys are bound explicitly because Unmarshal ignores automatic env
// lookups for keys viper has not seen.
func BindEnvironment(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	for _, key := range Keys {
		_ = v.BindEnv(key)
	}
}

// Load reads the configuration from the global viper instance, applies
// defaults and validates the result.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load for an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle slices set via viper (workaround for viper slice handling of
	// comma separated environment values)
	if v.IsSet("scenarios.paths") && len(config.Scenarios.Paths) == 0 {
		config.Scenarios.Paths = v.GetStringSlice("scenarios.paths")
	}
	if v.IsSet("scenarios.patterns") && len(config.Scenarios.Patterns) == 0 {
		config.Scenarios.Patterns = v.GetStringSlice("scenarios.patterns")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = DefaultOutputFormat
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
	if len(config.Scenarios.Paths) == 0 {
		config.Scenarios.Paths = append([]string(nil), defaultScenarioPaths...)
	}
	if len(config.Scenarios.Patterns) == 0 {
		config.Scenarios.Patterns = append([]string(nil), defaultScenarioPatterns...)
	}
	if config.Scenarios.Exclude == nil {
		config.Scenarios.Exclude = append([]string(nil), defaultScenarioExclude...)
	}
	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = DefaultDebounce
	}
}

// Apply pushes the rendering settings into pkg/config and installs the
// configured logger as the process default.
func (c *Config) Apply(w io.Writer) error {
	if err := expectconfig.Set(expectconfig.ExpectConfig{
		CollapseLength: c.Expect.CollapseLength,
	}); err != nil {
		return err
	}

	logger, err := c.Logger(w)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	return nil
}

// Logger builds the logger described by the log section.
func (c *Config) Logger(w io.Writer) (*logging.ExpectLogger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    c.Log.Format,
		Output:    w,
		Component: "expectctl",
	}), nil
}
