package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/tui/model"
)

func renderHistoryTab(m *model.Model, width int) string {
	nav := panel("History Navigation", width, color.SubtleStyle.Render(
		"Use ↑/k and ↓/j to navigate history. Press Enter to load selected history."))

	header := fmt.Sprintf("  %-4s %-20s %-13s %-10s %s", "#", "Timestamp", "Passed/Total", "Pass Rate", "Build Mode")
	lines := []string{color.TitleStyle.Render(header)}

	for i, st := range m.History.Stats() {
		rate := 0.0
		if st.Total > 0 {
			rate = float64(st.Passed) / float64(st.Total) * 100
		}
		mode := "Debug"
		if st.Release {
			mode = "Release"
		}
		row := fmt.Sprintf("%-4d %-20s %-13s %-10s %s",
			i+1,
			st.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d/%d", st.Passed, st.Total),
			fmt.Sprintf("%.1f%%", rate),
			mode)
		row = truncate(row, width-6)
		if i == m.History.SelectedIndex() {
			lines = append(lines, color.SelectedItemStyle.Render("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, nav, panel("Test History", width, strings.Join(lines, "\n")))
}
