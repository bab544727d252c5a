package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"yamori/internal/runner"
)

// SummaryTable renders the results as an ASCII table with a totals footer.
// The table is coloured when colored is set.
func SummaryTable(results []runner.TestResult, colored bool) string {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.SetTitle("Summary")

	t.AppendHeader(table.Row{"#", "Test", "Status", "Duration", "Mode"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Test", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})

	var total time.Duration
	for i, r := range results {
		total += r.ExecutionTime
		t.AppendRow(table.Row{
			i + 1,
			r.Name,
			statusString(r.Success),
			formatDuration(r.ExecutionTime),
			modeString(r.IsRelease),
		})
	}

	s := runner.Summarize(results)
	overall := statusString(s.Passed == s.Total)

	switch {
	case !colored:
		t.SetStyle(table.StyleDefault)
	case s.Passed == s.Total:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}

	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("TOTAL %s", s),
		overall,
		formatDuration(total),
		"",
	})

	t.Render()
	return buf.String()
}

func statusString(success bool) string {
	if success {
		return "PASS"
	}
	return "FAIL"
}

func modeString(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
