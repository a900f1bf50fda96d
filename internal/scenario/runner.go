package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/internal/logging"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/extensions"
	"github.com/conneroisu/expect/pkg/proxy"
)

// Status classifies a scenario run.
type Status string

const (
	// StatusPassed means the chain behaved as the scenario declared.
	StatusPassed Status = "passed"
	// StatusFailed means the chain passed when it should have failed, or
	// the other way around, or the failure message did not match.
	StatusFailed Status = "failed"
	// StatusError means the chain could not run, e.g. an unknown method.
	StatusError Status = "error"
)

// Result is the outcome of one scenario.
type Result struct {
	Scenario string        `json:"scenario" yaml:"scenario"`
	Status   Status        `json:"status" yaml:"status"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Problem  string        `json:"problem,omitempty" yaml:"problem,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report collects the results of one file.
type Report struct {
	File    string   `json:"file" yaml:"file"`
	Name    string   `json:"name" yaml:"name"`
	Results []Result `json:"results" yaml:"results"`
}

// Summary counts results by status.
type Summary struct {
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
	Errors int `json:"errors" yaml:"errors"`
}

// Total is the number of scenarios run.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Errors
}

// OK reports whether every scenario passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errors == 0
}

// Add accumulates the results of r.
func (s *Summary) Add(r *Report) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		default:
			s.Errors++
		}
	}
}

// Runner executes scenarios against the registered checks.
type Runner struct {
	logger logging.Logger
}

// NewRunner registers the built-in checks and returns a runner logging to
// logger, or to the package default when nil.
func NewRunner(logger logging.Logger) *Runner {
	extensions.Register()

	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{logger: logger.WithComponent("scenario")}
}

// Run executes every scenario of file in order. It stops early, returning
// the partial report and the context error, when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, file *File) (*Report, error) {
	report := &Report{File: file.Source, Name: file.Name}

	for i, s := range file.Scenarios {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		perf := logging.StartOperation(r.logger.With("file", file.Source, "scenario", name), "scenario")
		res, err := r.runScenario(s)
		res.Scenario = name
		res.Duration = perf.Elapsed()

		if err != nil {
			perf.EndWithError(ctx, err)
		} else {
			perf.End(ctx)
		}
		report.Results = append(report.Results, res)
	}

	return report, nil
}

// runScenario classifies the chain's outcome. The error is set only when
// the chain could not run.
func (r *Runner) runScenario(s Scenario) (Result, error) {
	failure, err := execute(s)
	if err != nil {
		return Result{Status: StatusError, Problem: err.Error()}, err
	}

	res := Result{Status: StatusPassed}
	if failure != nil {
		res.Message = failure.Message
	}

	switch {
	case s.Expected() == OutcomePass && failure != nil:
		res.Status = StatusFailed
		res.Problem = "expected the chain to pass, but it failed"
	case s.Expected() == OutcomeFail && failure == nil:
		res.Status = StatusFailed
		res.Problem = "expected the chain to fail, but it passed"
	case failure != nil && s.Message != "" && failure.Message != s.Message:
		res.Status = StatusFailed
		res.Problem = fmt.Sprintf("expected the message %q", s.Message)
	case failure != nil:
		for _, want := range s.Contains {
			if !strings.Contains(failure.Message, want) {
				res.Status = StatusFailed
				res.Problem = fmt.Sprintf("expected the message to contain %q", want)
				break
			}
		}
	}
	return res, nil
}

// execute runs the chain, returning the assertion failure it raised or the
// error that stopped it from running.
func execute(s Scenario) (failure *chain.AssertionFailure, err error) {
	defer func() {
		switch v := recover().(type) {
		case nil:
		case *chain.AssertionFailure:
			failure = v
		case error:
			err = v
		default:
			err = errors.NewInternalError("ERR_SCENARIO_PANIC", fmt.Sprintf("the chain panicked: %v", v), nil)
		}
	}()

	var subject any = s.Value
	if len(s.Path) > 0 {
		node := proxy.New(s.Value, nil)
		for _, key := range s.Path {
			node = node.Get(key)
		}
		subject = node
	}

	var opts []chain.Option
	if s.DisplayName != "" {
		opts = append(opts, chain.WithName(s.DisplayName))
	}

	a := chain.New(subject, opts...)
	for _, step := range s.Steps {
		if !step.Call && isWord(step.Name) {
			a.Word(step.Name)
			continue
		}
		a.Invoke(step.Name, step.Args...)
	}
	return nil, nil
}

func isWord(name string) bool {
	return chain.NegationExtensions().Has(name) || chain.NOPExtensions().Has(name)
}
