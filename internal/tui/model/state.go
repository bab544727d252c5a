package model

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/history"
	"yamori/internal/reporting"
	"yamori/internal/runner"
)

// SetStatusMessage shows message in the status bar and returns a command
// that clears it after clearAfter. A newer message cancels the pending clear
// of the previous one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ShowNotification displays the result notification and returns the
// command that dismisses it after NotificationDuration.
func (m *Model) ShowNotification(message string) tea.Cmd {
	m.NotificationMessage = message
	m.NotificationVisible = true

	if m.NotificationCancel != nil {
		close(m.NotificationCancel)
	}
	m.NotificationCancel = make(chan struct{})
	captured := m.NotificationCancel

	return tea.Tick(NotificationDuration, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearNotificationMsg{}
		}
	})
}

// HideNotification dismisses the notification and stops its timer.
func (m *Model) HideNotification() {
	m.NotificationVisible = false
	m.NotificationMessage = ""
	if m.NotificationCancel != nil {
		close(m.NotificationCancel)
		m.NotificationCancel = nil
	}
}

// NextTab moves to the following tab, wrapping after the last one.
func (m *Model) NextTab() {
	m.CurrentTab = (m.CurrentTab + 1) % tabCount
}

// PrevTab moves to the preceding tab, wrapping before the first one.
func (m *Model) PrevTab() {
	m.CurrentTab = (m.CurrentTab + tabCount - 1) % tabCount
}

// SelectNextTest moves the test cursor down, wrapping at the end.
func (m *Model) SelectNextTest() {
	if len(m.Results) == 0 {
		return
	}
	m.SelectedTest = (m.SelectedTest + 1) % len(m.Results)
}

// SelectPrevTest moves the test cursor up, wrapping at the start.
func (m *Model) SelectPrevTest() {
	if len(m.Results) == 0 {
		return
	}
	m.SelectedTest = (m.SelectedTest + len(m.Results) - 1) % len(m.Results)
}

// SelectedResult returns the result under the cursor.
func (m *Model) SelectedResult() (runner.TestResult, bool) {
	if m.SelectedTest < 0 || m.SelectedTest >= len(m.Results) {
		return runner.TestResult{}, false
	}
	return m.Results[m.SelectedTest], true
}

// ShowEntry displays the results of a history entry together with its
// build mode. The build mode of the next run is left alone.
func (m *Model) ShowEntry(e history.Entry) {
	m.Results = e.Results
	m.ReleaseMode = e.Release
	m.clampSelection()
}

// LoadSelectedEntry shows the selected history entry on the results tab and
// returns the notification text announcing it.
func (m *Model) LoadSelectedEntry() string {
	e := m.History.Selected()
	m.ShowEntry(e)
	m.CurrentTab = TabResults
	return fmt.Sprintf("Loaded history entry #%d\nTimestamp: %s",
		m.History.SelectedIndex()+1, e.Timestamp.UTC().Format("2006-01-02 15:04:05"))
}

// JumpToHistory switches to the history tab with the latest entry selected.
func (m *Model) JumpToHistory() {
	m.CurrentTab = TabHistory
	m.History.Select(m.History.Len() - 1)
	m.ShowEntry(m.History.Selected())
}

// ApplyRun records a finished run and resets the view to its results. It
// returns the notification text for the run.
func (m *Model) ApplyRun(msg TestsFinishedMsg) string {
	m.Running = false
	m.RunProgress = ""
	if msg.Err != nil {
		if msg.Kind == PopupRunRelease {
			return fmt.Sprintf("Error running release tests:\n%v", msg.Err)
		}
		return fmt.Sprintf("Error running tests:\n%v", msg.Err)
	}

	m.History.Append(msg.Results, msg.Release)
	m.Results = msg.Results
	m.ReleaseMode = msg.Release
	m.clampSelection()
	m.CurrentTab = TabResults

	s := runner.Summarize(msg.Results)
	if msg.Kind == PopupRunRelease {
		return fmt.Sprintf("Release tests completed!\n\nPassed: %s", s)
	}
	return fmt.Sprintf("Tests completed!\n\nPassed: %s", s)
}

// ToggleBuildMode flips the build mode used by the next run and returns the
// notification text.
func (m *Model) ToggleBuildMode() string {
	m.RunRelease = !m.RunRelease
	m.ReleaseMode = m.RunRelease
	return fmt.Sprintf("Build mode changed to: %s", BuildModeName(m.RunRelease))
}

// BuildModeName is the upper-case label of a build mode.
func BuildModeName(release bool) string {
	if release {
		return "RELEASE"
	}
	return "DEBUG"
}

func (m *Model) clampSelection() {
	switch {
	case len(m.Results) == 0:
		m.SelectedTest = 0
	case m.SelectedTest >= len(m.Results):
		m.SelectedTest = len(m.Results) - 1
	case m.SelectedTest < 0:
		m.SelectedTest = 0
	}
}

// RunSuite is the suite a run of the given kind executes: the loaded suite
// in the current build mode, or forced to release for a release run.
func (m *Model) RunSuite(kind PopupType) SuiteRun {
	release := m.RunRelease
	if kind == PopupRunRelease {
		release = true
	}
	return SuiteRun{Kind: kind, Suite: m.Suite.WithRelease(release)}
}

// StartRun marks a run as in progress and returns the command executing it.
// It returns nil while another run is still going.
func (m *Model) StartRun(kind PopupType) tea.Cmd {
	if m.Running || m.Runner == nil {
		return nil
	}
	m.Running = true
	m.RunProgress = ""
	run := m.RunSuite(kind)
	return tea.Batch(
		m.Spinner.Tick,
		RunTestsCmd(m.RunCtx, m.Runner, run.Suite, run.Kind, m.ConfigPath, m.ReportDir),
	)
}

// SetRunProgress records the test the running suite is on. Progress that
// arrives after the run finished is ignored.
func (m *Model) SetRunProgress(p reporting.TestProgressMsg) {
	if !m.Running {
		return
	}
	if p.Finished {
		m.RunProgress = fmt.Sprintf("[%d/%d] %s %s", p.Index+1, p.Total, p.Name, passMark(p.Success))
		return
	}
	m.RunProgress = fmt.Sprintf("[%d/%d] %s", p.Index+1, p.Total, p.Name)
}

func passMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
