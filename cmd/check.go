package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/expect/internal/config"
	"github.com/conneroisu/expect/internal/logging"
	"github.com/conneroisu/expect/internal/scenario"
	"github.com/conneroisu/expect/internal/watcher"
)

var checkCmd = &cobra.Command{
	Use:     "check [path]...",
	Aliases: []string{"c"},
	Short:   "Run assertion scenarios written in YAML",
	Long: `Run scenario files through the real dispatcher and report which
scenarios behaved as declared. Without arguments the configured scenario
paths are searched.

Examples:
  expectctl check                        # Run the configured scenario paths
  expectctl check scenarios/equal.yml    # Run one file
  expectctl check -o json                # Output as JSON
  expectctl check --watch                # Re-run on every change`,
	RunE: runCheck,
}

var (
	checkWatch   bool
	checkVerbose bool
)

// checkRun is the outcome of one pass over the scenario files.
type checkRun struct {
	Reports []*scenario.Report `json:"reports" yaml:"reports"`
	Summary scenario.Summary   `json:"summary" yaml:"summary"`
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-run scenarios when files change")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "List passing scenarios too")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validateTargets(args); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	if !checkWatch {
		runner := scenario.NewRunner(logging.Default())
		run, err := checkOnce(cmd.Context(), runner, cfg)
		if err != nil {
			return err
		}
		if err := outputCheck(cmd.OutOrStdout(), cfg.Output.Format, run); err != nil {
			return err
		}
		if !run.Summary.OK() {
			return fmt.Errorf("%d of %d scenarios did not pass", run.Summary.Failed+run.Summary.Errors, run.Summary.Total())
		}
		return nil
	}

	return watchCheck(cmd, cfg)
}

// checkRoots returns the paths to search: the command arguments, or the
// configured scenario paths.
func checkRoots(cfg *config.Config) []string {
	if len(cfg.TargetFiles) > 0 {
		return cfg.TargetFiles
	}
	return cfg.Scenarios.Paths
}

func checkOnce(ctx context.Context, runner *scenario.Runner, cfg *config.Config) (*checkRun, error) {
	files, err := scenario.Discover(checkRoots(cfg), cfg.Scenarios.Patterns, cfg.Scenarios.Exclude)
	if err != nil {
		return nil, err
	}

	run := &checkRun{}
	for _, path := range files {
		file, err := scenario.LoadFile(path)
		if err != nil {
			return nil, err
		}

		report, err := runner.Run(ctx, file)
		if report != nil {
			run.Reports = append(run.Reports, report)
			run.Summary.Add(report)
		}
		if err != nil {
			return run, err
		}
	}
	return run, nil
}

func outputCheck(w io.Writer, format string, run *checkRun) error {
	if format != "text" {
		return writeStructured(w, format, run)
	}

	for _, report := range run.Reports {
		for _, res := range report.Results {
			if res.Status == scenario.StatusPassed && !checkVerbose {
				continue
			}
			fmt.Fprintf(w, "%s %s › %s\n", statusIcon(res.Status), report.Name, res.Scenario)
			if res.Problem != "" {
				fmt.Fprintf(w, "   %s\n", res.Problem)
			}
			if res.Message != "" && res.Status == scenario.StatusFailed {
				fmt.Fprintf(w, "   got: %q\n", res.Message)
			}
		}
	}

	s := run.Summary
	fmt.Fprintf(w, "%d passed, %d failed, %d errors (%d files)\n", s.Passed, s.Failed, s.Errors, len(run.Reports))
	return nil
}

func statusIcon(status scenario.Status) string {
	switch status {
	case scenario.StatusPassed:
		return "✅"
	case scenario.StatusFailed:
		return "❌"
	default:
		return "💥"
	}
}

// watchCheck runs the scenarios, then re-runs them after every batch of
// changes until interrupted.
func watchCheck(cmd *cobra.Command, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	previous := logging.Default()
	watchLogger := newWatchLogger(previous, out, cfg.Log.Format)
	logging.SetDefault(watchLogger)
	defer logging.SetDefault(previous)

	logger := watchLogger.WithComponent("check")
	runner := scenario.NewRunner(watchLogger)

	rerun := func(ctx context.Context) error {
		run, err := checkOnce(ctx, runner, cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Check failed: %v\n", err)
			return nil
		}
		return outputCheck(out, cfg.Output.Format, run)
	}

	fileWatcher, err := watcher.NewFileWatcher(cfg.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	fileWatcher.AddFilter(watcher.GlobFilter(cfg.Scenarios.Patterns...))
	fileWatcher.AddFilter(watcher.ExcludeFilter(cfg.Scenarios.Exclude...))
	fileWatcher.AddFilter(watcher.NoHiddenFilter)
	fileWatcher.AddFilter(watcher.NoGitFilter)

	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		logger.Info(ctx, "📁 scenario files changed", "count", len(events))
		return rerun(ctx)
	})

	for _, root := range checkRoots(cfg) {
		if err := addWatchRoot(fileWatcher, root); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to watch path %s: %v\n", root, err)
		}
	}

	if err := rerun(ctx); err != nil {
		return err
	}

	if err := fileWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	fmt.Fprintln(out, "👀 Watching for changes... (Press Ctrl+C to stop)")

	<-ctx.Done()
	fmt.Fprintln(out, "🛑 Stopping file watcher...")
	return nil
}

// newWatchLogger logs to base as configured and also writes info-level
// activity into the watch transcript on w.
func newWatchLogger(base logging.Logger, w io.Writer, format string) logging.Logger {
	transcript := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LevelInfo,
		Format:    format,
		Output:    w,
		Component: "expectctl",
	})
	return logging.NewMultiLogger(base, transcript)
}

// addWatchRoot watches a directory tree, or the directory holding a file
// so that editors replacing the file are still seen.
func addWatchRoot(fw *watcher.FileWatcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fw.AddRecursive(root)
	}
	return fw.AddPath(filepath.Dir(root))
}
