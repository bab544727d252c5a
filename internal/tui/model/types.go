package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/config"
	"yamori/internal/history"
	"yamori/internal/runner"
	"yamori/pkg/logging"
)

// Tab identifies one of the dashboard views.
type Tab int

const (
	TabResults Tab = iota
	TabStats
	TabDiff
	TabCommands
	TabHistory

	tabCount = 5
)

// String provides a human-readable representation of the Tab.
func (t Tab) String() string {
	switch t {
	case TabResults:
		return "Results"
	case TabStats:
		return "Stats"
	case TabDiff:
		return "Diff"
	case TabCommands:
		return "Commands"
	case TabHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabResults, TabStats, TabDiff, TabCommands, TabHistory}
}

// PopupType is the confirmation dialog currently shown.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupRunTests
	PopupRunRelease
	PopupBuildToggle
)

// String provides a human-readable representation of the PopupType.
func (p PopupType) String() string {
	switch p {
	case PopupRunTests:
		return "RunTests"
	case PopupRunRelease:
		return "RunRelease"
	case PopupBuildToggle:
		return "BuildToggle"
	default:
		return "None"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines  = 1000
	NotificationDuration = 3 * time.Second
	StatusMessageTimeout = 5 * time.Second
)

// TestRunner executes a suite. *runner.Engine satisfies it.
type TestRunner interface {
	Run(ctx context.Context, cfg config.TestConfig) ([]runner.TestResult, error)
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Run         key.Binding
	RunRelease  key.Binding
	ToggleBuild key.Binding
	History     key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Copy        key.Binding
	ToggleLog   key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// Config carries everything the dashboard needs at start-up.
type Config struct {
	ConfigPath      string
	Suite           config.TestConfig
	Runner          TestRunner
	Results         []runner.TestResult
	ReleaseMode     bool
	ReportDir       string
	DebugMode       bool
	LogChannel      <-chan logging.LogEntry
	ProgressChannel <-chan tea.Msg
	HistoryClock    func() time.Time
}

// Model is the dashboard state. It is only touched from the bubbletea
// update loop.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Suite and engine
	ConfigPath string
	Suite      config.TestConfig
	Runner     TestRunner
	ReportDir  string
	DebugMode  bool

	// Displayed run
	Results      []runner.TestResult
	ReleaseMode  bool
	RunRelease   bool
	SelectedTest int
	History      *history.Log

	// View state
	CurrentTab Tab
	ShowHelp   bool
	ShowLog    bool
	Popup      PopupType
	QuitApp    bool

	// Result notification
	NotificationMessage string
	NotificationVisible bool
	NotificationCancel  chan struct{}

	// Background run
	Running         bool
	RunProgress     string
	RunCtx          context.Context
	RunCancel       context.CancelFunc
	ProgressChannel <-chan tea.Msg

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Activity log
	ActivityLog      []string
	ActivityLogDirty bool
	LogChannel       <-chan logging.LogEntry

	// Components
	Keys         KeyMap
	Help         help.Model
	Spinner      spinner.Model
	Progress     progress.Model
	LogViewport  viewport.Model
	DiffViewport viewport.Model
}

// SuiteRun pairs a suite with the kind of run that requested it.
type SuiteRun struct {
	Kind  PopupType
	Suite config.TestConfig
}
