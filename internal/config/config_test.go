package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/internal/logging"
	expectconfig "github.com/conneroisu/expect/pkg/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(v *viper.Viper)
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			setup: func(v *viper.Viper) {},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Expect.CollapseLength)
				assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
				assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
				assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
				assert.Equal(t, []string{"./scenarios"}, cfg.Scenarios.Paths)
				assert.Equal(t, []string{"*.yml", "*.yaml"}, cfg.Scenarios.Patterns)
				assert.Equal(t, []string{"*.bak"}, cfg.Scenarios.Exclude)
				assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
			},
		},
		{
			name: "explicit values",
			setup: func(v *viper.Viper) {
				v.Set("expect.collapse_length", 40)
				v.Set("output.format", "json")
				v.Set("log.level", "debug")
				v.Set("scenarios.paths", []string{"./a", "./b"})
				v.Set("watch.debounce", "1s")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 40, cfg.Expect.CollapseLength)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, []string{"./a", "./b"}, cfg.Scenarios.Paths)
				assert.Equal(t, time.Second, cfg.Watch.Debounce)
			},
		},
		{
			name: "unknown output format",
			setup: func(v *viper.Viper) {
				v.Set("output.format", "xml")
			},
			expectError: true,
		},
		{
			name: "negative collapse length",
			setup: func(v *viper.Viper) {
				v.Set("expect.collapse_length", -1)
			},
			expectError: true,
		},
		{
			name: "path traversal",
			setup: func(v *viper.Viper) {
				v.Set("scenarios.paths", []string{"../outside"})
			},
			expectError: true,
		},
		{
			name: "invalid type",
			setup: func(v *viper.Viper) {
				v.Set("expect.collapse_length", "many")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			tt.setup(v)

			cfg, err := LoadFrom(v)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_GlobalViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log.format", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".expectctl.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
expect:
  collapse_length: 8
output:
  format: yaml
scenarios:
  patterns: ["*.scenario.yml"]
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Expect.CollapseLength)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, []string{"*.scenario.yml"}, cfg.Scenarios.Patterns)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("EXPECTCTL_OUTPUT_FORMAT", "json")

	t.Setenv("EXPECTCTL_EXPECT_COLLAPSE_LENGTH", "12")

	v := viper.New()
	BindEnvironment(v)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 12, cfg.Expect.CollapseLength)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Expect:    ExpectConfig{CollapseLength: -2},
		Output:    OutputConfig{Format: "jsn"},
		Log:       LogConfig{Level: "loud", Format: "text"},
		Scenarios: ScenariosConfig{Paths: []string{t.TempDir(), "./definitely-missing"}, Patterns: []string{"[*.yml"}},
		Watch:     WatchConfig{Debounce: -time.Second},
	}

	result := Validate(cfg)

	require.True(t, result.HasErrors())
	codes := make([]string, 0, len(result.Errors))
	for _, err := range result.Errors {
		codes = append(codes, err.Code)
	}
	assert.ElementsMatch(t, []string{
		"ERR_VALIDATION_EXPECT_COLLAPSE_LENGTH",
		"ERR_VALIDATION_OUTPUT_FORMAT",
		"ERR_VALIDATION_LOG_LEVEL",
		"ERR_VALIDATION_SCENARIOS_PATTERNS",
		"ERR_VALIDATION_WATCH_DEBOUNCE",
	}, codes)

	require.True(t, result.HasWarnings())
	assert.Contains(t, result.Warnings[0].Message, "definitely-missing")

	out := result.String()
	assert.Contains(t, out, "Validation Errors")
	assert.Contains(t, out, "did you mean 'json'?")
	assert.Contains(t, out, "Validation Warnings")

	err := result.Err()
	require.Error(t, err)
	assert.True(t, errors.HasErrorType(err, errors.ErrorTypeValidation))
}

func TestValidate_Clean(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Scenarios.Paths = []string{t.TempDir()}

	result := Validate(cfg)
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
	assert.NoError(t, result.Err())
	assert.Empty(t, result.String())
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"./scenarios", false},
		{"scenarios/nested", false},
		{"", true},
		{"../scenarios", true},
		{"scenarios/../../etc", true},
		{"scenarios;rm", true},
		{"$(pwd)", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(expectconfig.Reset)
	t.Cleanup(func() { logging.SetDefault(nil) })

	var buf bytes.Buffer
	cfg := &Config{
		Expect: ExpectConfig{CollapseLength: 7},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
	require.NoError(t, cfg.Apply(&buf))

	assert.Equal(t, 7, expectconfig.Get().CollapseLength)

	logging.Default().Info(t.Context(), "applied")
	assert.Contains(t, buf.String(), `"msg":"applied"`)
	assert.Contains(t, buf.String(), `"component":"expectctl"`)
}

func TestApply_RejectsBadLevel(t *testing.T) {
	t.Cleanup(expectconfig.Reset)

	cfg := &Config{Log: LogConfig{Level: "loud"}}
	assert.Error(t, cfg.Apply(&bytes.Buffer{}))
}
