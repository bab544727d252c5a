package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamori/internal/config"
	"yamori/internal/diff"
	"yamori/internal/reporting"
	"yamori/internal/runner"
	"yamori/internal/tui/model"
	"yamori/pkg/logging"
)

type fakeRunner struct {
	results []runner.TestResult
	err     error
	calls   []config.TestConfig
}

func (f *fakeRunner) Run(_ context.Context, cfg config.TestConfig) ([]runner.TestResult, error) {
	f.calls = append(f.calls, cfg)
	return f.results, f.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func seedResults() []runner.TestResult {
	return []runner.TestResult{
		{Name: "one", Success: true, ActualOutput: "1\n"},
		{Name: "two", Success: false, ActualOutput: "bye\n", Diff: []diff.Line{{Tag: diff.Delete, Content: "hi"}, {Tag: diff.Insert, Content: "bye"}}},
	}
}

func newModel(r model.TestRunner) *model.Model {
	m := model.InitialModel(model.Config{
		Suite:        config.TestConfig{Tests: []config.TestCase{{Name: "one", Command: "echo"}}},
		Runner:       r,
		Results:      seedResults(),
		HistoryClock: func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
	m.Width, m.Height = 120, 40
	return m
}

func press(m *model.Model, msgs ...tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = Update(msg, m)
	}
	return m, cmd
}

func TestKeyHandling(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(m *model.Model)
		keys   []tea.Msg
		assert func(t *testing.T, m *model.Model)
	}{
		{
			name: "q quits",
			keys: []tea.Msg{runes("q")},
			assert: func(t *testing.T, m *model.Model) {
				assert.True(t, m.QuitApp)
			},
		},
		{
			name:  "q ignored while popup is open",
			setup: func(m *model.Model) { m.Popup = model.PopupRunTests },
			keys:  []tea.Msg{runes("q")},
			assert: func(t *testing.T, m *model.Model) {
				assert.False(t, m.QuitApp)
			},
		},
		{
			name:  "ctrl+c always quits",
			setup: func(m *model.Model) { m.Popup = model.PopupRunTests },
			keys:  []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}},
			assert: func(t *testing.T, m *model.Model) {
				assert.True(t, m.QuitApp)
				assert.Error(t, m.RunCtx.Err(), "background run is cancelled")
			},
		},
		{
			name: "help toggles",
			keys: []tea.Msg{runes("?")},
			assert: func(t *testing.T, m *model.Model) {
				assert.True(t, m.ShowHelp)
			},
		},
		{
			name:  "help ignored while popup is open",
			setup: func(m *model.Model) { m.Popup = model.PopupBuildToggle },
			keys:  []tea.Msg{runes("?")},
			assert: func(t *testing.T, m *model.Model) {
				assert.False(t, m.ShowHelp)
			},
		},
		{
			name: "tabs wrap",
			keys: []tea.Msg{runes("h")},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, model.TabHistory, m.CurrentTab)
			},
		},
		{
			name:  "navigation ignored while help is shown",
			setup: func(m *model.Model) { m.ShowHelp = true },
			keys:  []tea.Msg{runes("l"), runes("j"), runes("r")},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, model.TabResults, m.CurrentTab)
				assert.Equal(t, 0, m.SelectedTest)
				assert.Equal(t, model.PopupNone, m.Popup)
			},
		},
		{
			name: "j and k move the test cursor",
			keys: []tea.Msg{runes("j"), runes("j"), runes("k")},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, 1, m.SelectedTest)
			},
		},
		{
			name: "popups open",
			keys: []tea.Msg{runes("b")},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, model.PopupBuildToggle, m.Popup)
			},
		},
		{
			name: "esc closes popup before help",
			setup: func(m *model.Model) {
				m.ShowHelp = true
				m.Popup = model.PopupRunRelease
			},
			keys: []tea.Msg{esc},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, model.PopupNone, m.Popup)
				assert.True(t, m.ShowHelp)
			},
		},
		{
			name: "esc closes help before notification",
			setup: func(m *model.Model) {
				m.ShowHelp = true
				m.ShowNotification("x")
			},
			keys: []tea.Msg{esc},
			assert: func(t *testing.T, m *model.Model) {
				assert.False(t, m.ShowHelp)
				assert.True(t, m.NotificationVisible)
			},
		},
		{
			name:  "esc dismisses the notification",
			setup: func(m *model.Model) { m.ShowNotification("x") },
			keys:  []tea.Msg{esc},
			assert: func(t *testing.T, m *model.Model) {
				assert.False(t, m.NotificationVisible)
			},
		},
		{
			name:  "build toggle confirmed",
			setup: func(m *model.Model) { m.Popup = model.PopupBuildToggle },
			keys:  []tea.Msg{enter},
			assert: func(t *testing.T, m *model.Model) {
				assert.True(t, m.RunRelease)
				assert.True(t, m.ReleaseMode)
				assert.Equal(t, model.PopupNone, m.Popup)
				assert.Equal(t, "Build mode changed to: RELEASE", m.NotificationMessage)
			},
		},
		{
			name: "H jumps to the latest history entry",
			keys: []tea.Msg{runes("H")},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, model.TabHistory, m.CurrentTab)
				assert.Equal(t, m.History.Len()-1, m.History.SelectedIndex())
			},
		},
		{
			name: "enter on history loads the entry",
			keys: []tea.Msg{runes("H"), enter},
			assert: func(t *testing.T, m *model.Model) {
				assert.Equal(t, model.TabResults, m.CurrentTab)
				assert.Equal(t, "Loaded history entry #1\nTimestamp: 2024-01-02 03:04:05", m.NotificationMessage)
			},
		},
		{
			name: "enter elsewhere does nothing",
			keys: []tea.Msg{enter},
			assert: func(t *testing.T, m *model.Model) {
				assert.False(t, m.NotificationVisible)
			},
		},
		{
			name: "L opens the log overlay and esc closes it",
			keys: []tea.Msg{runes("L")},
			assert: func(t *testing.T, m *model.Model) {
				assert.True(t, m.ShowLog)
				m, _ = Update(esc, m)
				assert.False(t, m.ShowLog)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(nil)
			if tt.setup != nil {
				tt.setup(m)
			}
			m, _ = press(m, tt.keys...)
			tt.assert(t, m)
		})
	}
}

func TestHistoryNavigationShowsEntry(t *testing.T) {
	m := newModel(nil)
	m.ApplyRun(model.TestsFinishedMsg{
		Results: []runner.TestResult{{Name: "solo", Success: true}},
		Release: true,
		Kind:    model.PopupRunRelease,
	})
	m.CurrentTab = model.TabHistory

	m, _ = press(m, runes("j"))
	assert.Equal(t, 0, m.History.SelectedIndex())
	assert.Len(t, m.Results, 2)
	assert.False(t, m.ReleaseMode)

	m, _ = press(m, runes("k"))
	assert.Equal(t, 1, m.History.SelectedIndex())
	assert.Len(t, m.Results, 1)
	assert.True(t, m.ReleaseMode)
	assert.False(t, m.RunRelease, "browsing history does not change the next run")
}

func TestRunFlow(t *testing.T) {
	tests := []struct {
		name        string
		popupKey    string
		runner      *fakeRunner
		wantRelease bool
		wantText    string
		wantEntries int
	}{
		{
			name:        "run tests",
			popupKey:    "r",
			runner:      &fakeRunner{results: []runner.TestResult{{Name: "a", Success: true}}},
			wantText:    "Tests completed!\n\nPassed: 1/1 (100.0%)",
			wantEntries: 2,
		},
		{
			name:        "run release",
			popupKey:    "R",
			runner:      &fakeRunner{results: []runner.TestResult{{Name: "a"}, {Name: "b", Success: true}}},
			wantRelease: true,
			wantText:    "Release tests completed!\n\nPassed: 1/2 (50.0%)",
			wantEntries: 2,
		},
		{
			name:        "run error",
			popupKey:    "r",
			runner:      &fakeRunner{err: errors.New("pre-build command failed: make")},
			wantText:    "Error running tests:\npre-build command failed: make",
			wantEntries: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(tt.runner)
			m, _ = press(m, runes(tt.popupKey))
			m, cmd := press(m, enter)
			require.NotNil(t, cmd)
			assert.True(t, m.Running)
			assert.Equal(t, model.PopupNone, m.Popup)

			run := m.RunSuite(map[string]model.PopupType{"r": model.PopupRunTests, "R": model.PopupRunRelease}[tt.popupKey])
			msg := model.RunTestsCmd(context.Background(), tt.runner, run.Suite, run.Kind, "", "")()
			m, _ = press(m, msg)

			assert.False(t, m.Running)
			assert.Equal(t, tt.wantText, m.NotificationMessage)
			assert.True(t, m.NotificationVisible)
			assert.Equal(t, tt.wantEntries, m.History.Len())
			require.NotEmpty(t, tt.runner.calls)
			assert.Equal(t, tt.wantRelease, tt.runner.calls[0].Release())
		})
	}
}

func TestSecondRunRejectedWhileRunning(t *testing.T) {
	m := newModel(&fakeRunner{})
	m.Running = true
	m.Popup = model.PopupRunTests

	m, cmd := press(m, enter)
	assert.NotNil(t, cmd)
	assert.Equal(t, "A test run is already in progress", m.StatusBarMessage)
}

func TestCopy(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}

	m := newModel(nil)
	m, _ = press(m, runes("j"), runes("y"))
	assert.Equal(t, "bye\n", copied)
	assert.Equal(t, `Copied output of "two" to clipboard`, m.StatusBarMessage)

	m.CurrentTab = model.TabDiff
	m, _ = press(m, runes("y"))
	assert.Equal(t, "- hi\n+ bye\n", copied)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	m, _ = press(m, runes("y"))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestMessages(t *testing.T) {
	m := newModel(nil)
	m.SetStatusMessage("hi", model.StatusBarSuccess, time.Second)
	m, _ = press(m, model.ClearStatusBarMsg{})
	assert.Empty(t, m.StatusBarMessage)

	m.ShowNotification("x")
	m, _ = press(m, model.ClearNotificationMsg{})
	assert.False(t, m.NotificationVisible)

	ch := make(chan logging.LogEntry)
	m.LogChannel = ch
	m, cmd := press(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelDebug, Subsystem: "Runner", Message: "hidden"}})
	assert.Empty(t, m.ActivityLog)
	assert.NotNil(t, cmd)

	m, _ = press(m, model.NewLogEntryMsg{Entry: logging.LogEntry{
		Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Level:     logging.LevelError,
		Subsystem: "Runner",
		Message:   "broke",
		Err:       errors.New("boom"),
	}})
	require.Len(t, m.ActivityLog, 1)
	assert.Equal(t, "10:00:00.000 [ERROR] [Runner] broke -- Error: boom", m.ActivityLog[0])

	m, _ = press(m, model.LogChannelClosedMsg{})
	assert.Nil(t, m.LogChannel)
}

func TestProgressMessages(t *testing.T) {
	m := newModel(&fakeRunner{})
	ch := make(chan tea.Msg, 1)
	m.ProgressChannel = ch
	m.Running = true

	m, cmd := press(m, reporting.TestProgressMsg{Index: 0, Total: 2, Name: "one"})
	assert.Equal(t, "[1/2] one", m.RunProgress)
	assert.NotNil(t, cmd)

	m, _ = press(m, model.TestsFinishedMsg{Results: seedResults()})
	assert.Empty(t, m.RunProgress)
	assert.False(t, m.Running)
}

func TestAppModel(t *testing.T) {
	app := NewAppModel(newModel(nil))

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	a := updated.(AppModel)
	assert.Equal(t, 90, a.Model().Width)
	assert.Contains(t, a.View(), "Test Results")

	updated, cmd := a.Update(runes("q"))
	assert.True(t, updated.(AppModel).Model().QuitApp)
	assert.NotNil(t, cmd)
}
