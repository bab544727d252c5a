package reporting

import (
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/config"
	"yamori/internal/runner"
	"yamori/pkg/logging"
)

// TestProgressMsg tells the dashboard that a test started or finished.
type TestProgressMsg struct {
	Index    int
	Total    int
	Name     string
	Finished bool
	Success  bool
}

// TUIReporter is a runner.Observer that sends progress to a channel for the
// TUI to process. Updates are dropped while the channel is full.
type TUIReporter struct {
	runner.NopObserver
	updateChan chan<- tea.Msg
	total      int
}

// NewTUIReporter creates a new TUIReporter that sends updates to the provided TUI message channel.
func NewTUIReporter(updateChan chan<- tea.Msg) *TUIReporter {
	if updateChan == nil {
		logging.Error("TUIReporter", nil, "NewTUIReporter called with nil updateChan. Using a dummy channel.")
		dummyChan := make(chan tea.Msg)
		go func() {
			for range dummyChan {
			}
		}()
		return &TUIReporter{updateChan: dummyChan}
	}
	return &TUIReporter{updateChan: updateChan}
}

func (t *TUIReporter) ReportStart(cfg config.TestConfig) {
	t.total = len(cfg.Tests)
}

func (t *TUIReporter) ReportTestStart(index int, tc config.TestCase) {
	t.send(TestProgressMsg{Index: index, Total: t.total, Name: tc.Name})
}

func (t *TUIReporter) ReportTestResult(index int, result runner.TestResult) {
	t.send(TestProgressMsg{
		Index:    index,
		Total:    t.total,
		Name:     result.Name,
		Finished: true,
		Success:  result.Success,
	})
}

func (t *TUIReporter) send(msg TestProgressMsg) {
	select {
	case t.updateChan <- msg:
	default:
		logging.Debug("TUIReporter", "TUI channel full, dropping progress for %s", msg.Name)
	}
}
