package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/runner"
	"yamori/internal/tui/model"
)

func renderStatsTab(m *model.Model, width int) string {
	s := runner.Summarize(m.Results)

	rateStyle := color.SuccessStyle
	switch {
	case s.Rate < 50:
		rateStyle = color.ErrorStyle
	case s.Rate < 100:
		rateStyle = color.WarningStyle
	}

	rows := []string{
		fmt.Sprintf("%-14s %s", "Total Tests", fmt.Sprint(s.Total)),
		fmt.Sprintf("%-14s %s", "Passed Tests", color.SuccessStyle.Render(fmt.Sprint(s.Passed))),
		fmt.Sprintf("%-14s %s", "Failed Tests", color.ErrorStyle.Render(fmt.Sprint(s.Failed()))),
		fmt.Sprintf("%-14s %s", "Pass Rate", rateStyle.Render(fmt.Sprintf("%.1f%%", s.Rate))),
	}
	stats := panel("Test Statistics", width, strings.Join(rows, "\n"))

	m.Progress.Width = max(width-8, 10)
	bar := panel("Pass Rate", width, m.Progress.ViewAs(s.Rate/100))

	return lipgloss.JoinVertical(lipgloss.Left, stats, bar, panel("Runs", width, renderRunTrend(m)))
}

// renderRunTrend lists the pass count of every recorded run, oldest first.
func renderRunTrend(m *model.Model) string {
	var lines []string
	for i, st := range m.History.Stats() {
		lines = append(lines, fmt.Sprintf("#%-3d %s  %d/%d  %s",
			i+1, st.Timestamp.UTC().Format("15:04:05"), st.Passed, st.Total, model.BuildModeName(st.Release)))
	}
	return strings.Join(lines, "\n")
}
