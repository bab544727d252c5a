package controller

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/diff"
	"yamori/internal/tui/model"
	"yamori/pkg/logging"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	keys := m.Keys

	if key.Matches(msg, keys.ForceQuit) {
		quit(m)
		return m, nil
	}

	if m.ShowLog {
		return handleLogOverlayKey(m, msg)
	}

	popupOpen := m.Popup != model.PopupNone
	blocked := popupOpen || m.ShowHelp

	switch {
	case key.Matches(msg, keys.Quit):
		if !popupOpen {
			quit(m)
		}
		return m, nil

	case key.Matches(msg, keys.Help):
		if !popupOpen {
			m.ShowHelp = !m.ShowHelp
		}
		return m, nil

	case key.Matches(msg, keys.Esc):
		switch {
		case popupOpen:
			m.Popup = model.PopupNone
		case m.ShowHelp:
			m.ShowHelp = false
		case m.NotificationVisible:
			m.HideNotification()
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		return handleEnter(m)
	}

	if blocked {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Down):
		if m.CurrentTab == model.TabHistory {
			m.ShowEntry(m.History.Next())
		} else {
			m.SelectNextTest()
		}
	case key.Matches(msg, keys.Up):
		if m.CurrentTab == model.TabHistory {
			m.ShowEntry(m.History.Previous())
		} else {
			m.SelectPrevTest()
		}
	case key.Matches(msg, keys.NextTab):
		m.NextTab()
	case key.Matches(msg, keys.PrevTab):
		m.PrevTab()
	case key.Matches(msg, keys.Run):
		m.Popup = model.PopupRunTests
	case key.Matches(msg, keys.RunRelease):
		m.Popup = model.PopupRunRelease
	case key.Matches(msg, keys.ToggleBuild):
		m.Popup = model.PopupBuildToggle
	case key.Matches(msg, keys.History):
		m.JumpToHistory()
	case key.Matches(msg, keys.ToggleLog):
		m.ShowLog = true
		m.ActivityLogDirty = true
	case key.Matches(msg, keys.Copy):
		return copySelection(m)
	}
	return m, nil
}

func handleEnter(m *model.Model) (*model.Model, tea.Cmd) {
	switch m.Popup {
	case model.PopupRunTests, model.PopupRunRelease:
		kind := m.Popup
		m.Popup = model.PopupNone
		cmd := m.StartRun(kind)
		if cmd == nil {
			return m, m.SetStatusMessage("A test run is already in progress", model.StatusBarWarning, model.StatusMessageTimeout)
		}
		return m, cmd

	case model.PopupBuildToggle:
		m.Popup = model.PopupNone
		return m, m.ShowNotification(m.ToggleBuildMode())
	}

	if m.CurrentTab != model.TabHistory {
		return m, nil
	}
	return m, m.ShowNotification(m.LoadSelectedEntry())
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Esc), key.Matches(msg, m.Keys.ToggleLog):
		m.ShowLog = false
		return m, nil
	case key.Matches(msg, m.Keys.Copy):
		return copyText(m, strings.Join(m.ActivityLog, "\n"), "activity log")
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return m, cmd
}

// copySelection copies the diff on the diff tab and the actual output
// everywhere else.
func copySelection(m *model.Model) (*model.Model, tea.Cmd) {
	r, ok := m.SelectedResult()
	if !ok {
		return m, m.SetStatusMessage("Nothing to copy", model.StatusBarWarning, model.StatusMessageTimeout)
	}
	if m.CurrentTab == model.TabDiff {
		return copyText(m, diff.Format(r.Diff, true), fmt.Sprintf("diff of %q", r.Name))
	}
	return copyText(m, r.ActualOutput, fmt.Sprintf("output of %q", r.Name))
}

func copyText(m *model.Model, text, what string) (*model.Model, tea.Cmd) {
	if err := clipboardWriteAll(text); err != nil {
		logging.Error("TUI", err, "Failed to copy %s", what)
		return m, m.SetStatusMessage("Failed to copy to clipboard", model.StatusBarError, model.StatusMessageTimeout)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Copied %s to clipboard", what), model.StatusBarSuccess, model.StatusMessageTimeout)
}

func quit(m *model.Model) {
	if m.RunCancel != nil {
		m.RunCancel()
	}
	m.QuitApp = true
}
