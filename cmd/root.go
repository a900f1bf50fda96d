// Configuration System:
//
//	Settings are resolved with this precedence:
//	1. Command-line flags (--output, --log-level, --collapse-length)
//	2. EXPECTCTL_CONFIG_FILE environment variable, a custom config file path
//	3. Individual environment variables (EXPECTCTL_OUTPUT_FORMAT, etc.)
//	4. Configuration file (.expectctl.yml)
//
// Environment Variables:
//
//	EXPECTCTL_CONFIG_FILE: Path to custom configuration file
//	EXPECTCTL_EXPECT_COLLAPSE_LENGTH: Values longer than this collapse in messages
//	EXPECTCTL_OUTPUT_FORMAT: text, json or yaml
//	EXPECTCTL_LOG_LEVEL, EXPECTCTL_LOG_FORMAT: Logging
//	And the rest follow the EXPECTCTL_<SECTION>_<OPTION> pattern

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/expect/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "expectctl",
	Short: "Companion tooling for the expect assertion library",
	Long: `expectctl works with the expect assertion library from the command line.

Key Features:
  • List the registered checks, negation words and no-op words
  • Preview failure messages described in YAML templates
  • Run assertion scenarios written in YAML through the real dispatcher
  • Re-run scenarios on every change with --watch

Quick Start:
  expectctl methods               List every registered name
  expectctl render messages.yml   Render message templates
  expectctl check scenarios/      Run scenario files
  expectctl check --watch         Re-run scenarios on change

Documentation: https://github.com/conneroisu/expect`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .expectctl.yml, can also use EXPECTCTL_CONFIG_FILE env var)")
	flags.StringP("log-level", "l", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringP("output", "o", config.DefaultOutputFormat, "output format (text, json, yaml)")
	flags.Int("collapse-length", 0, "collapse rendered values longer than this")

	bindFlags()

	AddFlagValidation(rootCmd, "output", func(format string) error {
		return ValidateFormatWithSuggestion(format, config.OutputFormats)
	})
	AddFlagValidation(rootCmd, "log-level", func(level string) error {
		return ValidateFormatWithSuggestion(level, config.LogLevels)
	})
}

// bindFlags lets the persistent flags override their configuration keys.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("output.format", flags.Lookup("output"))
	_ = viper.BindPFlag("expect.collapse_length", flags.Lookup("collapse-length"))
}

// initConfig picks the configuration file and binds the environment.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag
//  2. EXPECTCTL_CONFIG_FILE environment variable
//  3. .expectctl.yml in the current directory
//
// A missing default file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("EXPECTCTL_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".expectctl")
	}

	config.BindEnvironment(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads and applies the configuration for a command run.
func loadConfig(cmd *cobra.Command, targets []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.TargetFiles = targets

	if err := cfg.Apply(cmd.ErrOrStderr()); err != nil {
		return nil, fmt.Errorf("failed to apply configuration: %w", err)
	}
	return cfg, nil
}
