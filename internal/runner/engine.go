// Package runner executes a test suite: it runs the pre-build commands,
// spawns every test command with its resolved build mode and compares the
// output against the expectation.
//
// The engine keeps no state between runs. Any infrastructure failure aborts
// the whole run and no partial results are returned; an output mismatch is
// only ever recorded in the result.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yamori/internal/config"
	"yamori/internal/diff"
	"yamori/internal/process"
	"yamori/internal/template"
	"yamori/pkg/logging"
)

const subsystem = "Runner"

// Executor spawns processes on behalf of the engine.
type Executor interface {
	Run(ctx context.Context, spec process.Spec) (*process.Result, error)
	Shell(ctx context.Context, command string) (*process.Result, error)
}

// Engine runs test suites.
type Engine struct {
	executor Executor
	observer Observer
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithExecutor replaces the process orchestrator.
func WithExecutor(ex Executor) Option {
	return func(e *Engine) { e.executor = ex }
}

// WithObserver registers a progress observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// New creates an Engine backed by the process orchestrator.
func New(opts ...Option) *Engine {
	e := &Engine{
		executor: process.New(),
		observer: NopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes cfg with a default Engine.
func Run(ctx context.Context, cfg config.TestConfig) ([]TestResult, error) {
	return New().Run(ctx, cfg)
}

// Run executes every test of cfg in order and returns one result per test.
func (e *Engine) Run(ctx context.Context, cfg config.TestConfig) ([]TestResult, error) {
	e.observer.ReportStart(cfg)
	logging.Info(subsystem, "Running %d tests (release=%v)", len(cfg.Tests), cfg.Release())

	if cfg.Build != nil {
		commands := template.RenderAll(cfg.Build.PreBuildCommands, cfg.Build.Release)
		if err := e.preBuild(ctx, commands, ""); err != nil {
			return nil, err
		}
	}

	results := make([]TestResult, 0, len(cfg.Tests))
	for i, tc := range cfg.Tests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before test %q: %w", tc.Name, err)
		}
		res, err := e.runTest(ctx, i, tc, cfg.Build)
		if err != nil {
			logging.Error(subsystem, err, "Aborting run at test %q", tc.Name)
			return nil, err
		}
		e.observer.ReportTestResult(i, res)
		results = append(results, res)
	}

	s := Summarize(results)
	logging.Info(subsystem, "Run finished: %s passed", s)
	e.observer.ReportRunResult(results)
	return results, nil
}

func (e *Engine) runTest(ctx context.Context, index int, tc config.TestCase, global *config.BuildConfig) (TestResult, error) {
	var buildCommands []string
	if tc.Build != nil {
		buildCommands = template.RenderAll(tc.Build.PreBuildCommands, tc.Build.Release)
		if err := e.preBuild(ctx, buildCommands, tc.Name); err != nil {
			return TestResult{}, err
		}
	}

	release := tc.EffectiveRelease(global)
	command := template.Render(tc.Command, release)
	args := template.RenderAll(tc.Args, release)
	if command != tc.Command {
		logging.Debug(subsystem, "Resolved command for %q: %s", tc.Name, command)
	}

	e.observer.ReportTestStart(index, tc)

	timeout := tc.Timeout()
	start := e.now()
	out, err := e.executor.Run(ctx, process.Spec{
		Name:    command,
		Args:    args,
		Input:   tc.Input,
		Timeout: &timeout,
	})
	elapsed := e.now().Sub(start)
	if err != nil {
		if errors.Is(err, process.ErrTimedOut) {
			return TestResult{}, &TimeoutError{Test: tc.Name, Timeout: timeout}
		}
		return TestResult{}, fmt.Errorf("test %q: %w", tc.Name, err)
	}

	res := TestResult{
		Name:          tc.Name,
		Success:       diff.Compare(tc.ExpectedOutput, out.Stdout),
		ActualOutput:  out.Stdout,
		Command:       command,
		Args:          args,
		Input:         tc.Input,
		ExecutionTime: elapsed,
		IsRelease:     release,
		BuildCommands: buildCommands,
	}
	if !res.Success {
		res.Diff = diff.Lines(tc.ExpectedOutput, out.Stdout)
		if res.Diff == nil {
			res.Diff = []diff.Line{}
		}
		logging.Debug(subsystem, "Test %q failed: %s", tc.Name, diff.Stats(res.Diff))
	}
	return res.Clone(), nil
}

func (e *Engine) preBuild(ctx context.Context, commands []string, test string) error {
	for _, command := range commands {
		e.observer.ReportPreBuild(command, test)
		logging.Debug(subsystem, "Running pre-build command: %s", command)

		_, err := e.executor.Shell(ctx, command)
		if err == nil {
			continue
		}

		pbErr := &PreBuildError{Command: command, Test: test, ExitCode: -1, Err: err}
		var perr *process.Error
		if errors.As(err, &perr) {
			pbErr.ExitCode = perr.ExitCode
			pbErr.Output = perr.Output
		}
		return pbErr
	}
	return nil
}
