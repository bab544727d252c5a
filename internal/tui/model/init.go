package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/history"
)

// InitialModel constructs the dashboard state from the results of the
// initial run. Those results become the seed entry of the history.
func InitialModel(cfg Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(color.Primary)

	p := progress.New(progress.WithGradient(string(color.Error.Dark), string(color.Success.Dark)))

	var opts []history.Option
	if cfg.HistoryClock != nil {
		opts = append(opts, history.WithClock(cfg.HistoryClock))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		ConfigPath:      cfg.ConfigPath,
		Suite:           cfg.Suite,
		Runner:          cfg.Runner,
		ReportDir:       cfg.ReportDir,
		DebugMode:       cfg.DebugMode,
		Results:         cfg.Results,
		ReleaseMode:     cfg.ReleaseMode,
		RunRelease:      cfg.ReleaseMode,
		History:         history.New(cfg.Results, opts...),
		CurrentTab:      TabResults,
		Popup:           PopupNone,
		RunCtx:          ctx,
		RunCancel:       cancel,
		LogChannel:      cfg.LogChannel,
		ProgressChannel: cfg.ProgressChannel,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		Spinner:         s,
		Progress:        p,
		LogViewport:     viewport.New(0, 0),
		DiffViewport:    viewport.New(0, 0),
	}
}

// Init starts the spinner and the log and progress listeners.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, ListenForLogEntriesCmd(m.LogChannel), ListenForProgressCmd(m.ProgressChannel))
}
