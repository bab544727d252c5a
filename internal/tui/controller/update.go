package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/reporting"
	"yamori/internal/tui/model"
	"yamori/pkg/logging"
)

// Update is the main update function for the TUI.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case model.TestsFinishedMsg:
		return handleTestsFinished(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo
		m.StatusBarClearCancel = nil
		return m, nil

	case model.ClearNotificationMsg:
		m.NotificationVisible = false
		m.NotificationMessage = ""
		m.NotificationCancel = nil
		return m, nil

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case reporting.TestProgressMsg:
		m.SetRunProgress(msg)
		return m, model.ListenForProgressCmd(m.ProgressChannel)

	case model.LogChannelClosedMsg:
		m.LogChannel = nil
		return m, nil

	case spinner.TickMsg:
		if !m.Running {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func handleTestsFinished(m *model.Model, msg model.TestsFinishedMsg) (*model.Model, tea.Cmd) {
	text := m.ApplyRun(msg)
	cmds := []tea.Cmd{m.ShowNotification(text)}

	switch {
	case msg.Err != nil:
		logging.Error("TUI", msg.Err, "Test run failed")
		cmds = append(cmds, m.SetStatusMessage("Test run failed", model.StatusBarError, model.StatusMessageTimeout))
	case msg.ReportPath != "":
		cmds = append(cmds, m.SetStatusMessage(fmt.Sprintf("Report written to %s", msg.ReportPath), model.StatusBarSuccess, model.StatusMessageTimeout))
	}
	return m, tea.Batch(cmds...)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
