package model

import (
	"yamori/internal/runner"
	"yamori/pkg/logging"
)

// TestsFinishedMsg carries the outcome of a background run.
type TestsFinishedMsg struct {
	Results    []runner.TestResult
	Release    bool
	Kind       PopupType
	ReportPath string
	Err        error
}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}

// ClearNotificationMsg hides the result notification.
type ClearNotificationMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel is closed.
type LogChannelClosedMsg struct{}
