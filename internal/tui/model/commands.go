package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/config"
	"yamori/internal/reporting"
	"yamori/pkg/logging"
)

// RunTestsCmd runs the suite in the background and reports the outcome as a
// TestsFinishedMsg. When reportDir is set the results are also written as a
// JSON report.
func RunTestsCmd(ctx context.Context, r TestRunner, suite config.TestConfig, kind PopupType, configPath, reportDir string) tea.Cmd {
	return func() tea.Msg {
		logging.Info("TUI", "Running %d tests (%s)", len(suite.Tests), kind)
		results, err := r.Run(ctx, suite)
		msg := TestsFinishedMsg{
			Results: results,
			Release: suite.Release(),
			Kind:    kind,
			Err:     err,
		}
		if err != nil || reportDir == "" {
			return msg
		}

		path, rerr := reporting.SaveReport(reportDir, reporting.NewReport(configPath, suite.Release(), results))
		if rerr != nil {
			logging.Error("TUI", rerr, "Failed to write report")
			return msg
		}
		msg.ReportPath = path
		return msg
	}
}

// ListenForLogEntriesCmd waits for the next log entry on logChan.
func ListenForLogEntriesCmd(logChan <-chan logging.LogEntry) tea.Cmd {
	if logChan == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-logChan
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForProgressCmd waits for the next runner progress message. A closed
// channel stops the listener.
func ListenForProgressCmd(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
