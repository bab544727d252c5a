package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/process"
	"yamori/internal/reporting"
	"yamori/internal/runner"
)

// Services holds the engine pieces shared by both modes.
type Services struct {
	Orchestrator *process.Orchestrator
	Engine       *runner.Engine
}

// InitializeServices wires the process orchestrator into the test engine.
// In verbose CLI mode the engine reports progress as it goes.
func InitializeServices(cfg *Config) *Services {
	orch := process.New()

	opts := []runner.Option{runner.WithExecutor(orch)}
	if cfg.CLI && cfg.Verbose {
		opts = append(opts, runner.WithObserver(reporting.NewProgress(cfg.out())))
	}

	return &Services{
		Orchestrator: orch,
		Engine:       runner.New(opts...),
	}
}

// DashboardEngine returns an engine sharing the orchestrator that streams
// per-test progress to updates for the dashboard status bar.
func (s *Services) DashboardEngine(updates chan<- tea.Msg) *runner.Engine {
	return runner.New(
		runner.WithExecutor(s.Orchestrator),
		runner.WithObserver(reporting.NewTUIReporter(updates)),
	)
}
