package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"yamori/internal/color"
	"yamori/internal/reporting"
	"yamori/internal/runner"
	"yamori/internal/tui/controller"
	"yamori/internal/tui/model"
	"yamori/pkg/logging"
)

// ErrTestsFailed is returned by CLI mode when at least one test failed.
var ErrTestsFailed = errors.New("some tests failed")

const progressBufferSize = 64

// For mocking in tests
var isTerminal = isatty.IsTerminal

// colorOutput reports whether out is a terminal that can show colours.
func colorOutput(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isTerminal(f.Fd())
}

// runCLIMode runs the suite once and prints the results
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	out := config.out()
	printer := reporting.NewPrinter(out)
	printer.Header(config.ConfigPath)

	results, err := services.Engine.Run(ctx, *config.Suite)
	if err != nil {
		logging.Debug("CLI", "Test run failed: %v", err)
		return err
	}

	printer.Results(results)
	fmt.Fprintln(out, reporting.SummaryTable(results, colorOutput(out)))

	if config.ReportDir != "" {
		path, err := reporting.SaveReport(config.ReportDir, reporting.NewReport(config.ConfigPath, config.Suite.Release(), results))
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(out, "Report written to %s\n", path)
	}

	if !runner.AllPassed(results) {
		return ErrTestsFailed
	}
	return nil
}

// runTUIMode runs the suite once and then hands the results to the dashboard
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	results, err := services.Engine.Run(ctx, *config.Suite)
	if err != nil {
		return err
	}

	if config.ReportDir != "" {
		if _, err := reporting.SaveReport(config.ReportDir, reporting.NewReport(config.ConfigPath, config.Suite.Release(), results)); err != nil {
			logging.Warn("TUI-Lifecycle", "Failed to write report: %v", err)
		}
	}

	color.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	progress := make(chan tea.Msg, progressBufferSize)

	p := controller.NewProgram(model.Config{
		ConfigPath:      config.ConfigPath,
		Suite:           *config.Suite,
		Runner:          services.DashboardEngine(progress),
		Results:         results,
		ReleaseMode:     config.Suite.Release(),
		ReportDir:       config.ReportDir,
		DebugMode:       config.Debug,
		LogChannel:      logChan,
		ProgressChannel: progress,
	})

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
