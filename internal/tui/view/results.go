package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/diff"
	"yamori/internal/runner"
	"yamori/internal/tui/model"
)

func renderTestList(m *model.Model, width int) string {
	if len(m.Results) == 0 {
		return color.SubtleStyle.Render("No test results available")
	}
	var lines []string
	for i, r := range m.Results {
		symbol := color.SuccessStyle.Render("✓")
		if !r.Success {
			symbol = color.ErrorStyle.Render("✗")
		}
		label := fmt.Sprintf("Test %02d  %s", i+1, r.Name)
		if i == m.SelectedTest {
			label = color.SelectedItemStyle.Render("> " + truncate(label, width-6))
		} else {
			label = "  " + truncate(label, width-6)
		}
		lines = append(lines, symbol+" "+label)
	}
	return strings.Join(lines, "\n")
}

func renderResultsTab(m *model.Model, width, height int) string {
	listWidth := width / 3
	detailWidth := width - listWidth

	list := panel("Tests", listWidth, renderTestList(m, listWidth-4))

	r, ok := m.SelectedResult()
	if !ok {
		return lipgloss.JoinHorizontal(lipgloss.Top, list, panel("Details", detailWidth, color.SubtleStyle.Render("No test results available")))
	}

	expected, actual := sides(r)
	mark := "≠"
	if r.Success {
		mark = "✓"
	}
	half := max((height-2)/2, 3)
	exp := panel("Expected Output "+mark, detailWidth, clip(expected, half-3))
	act := panel("Actual Output "+mark, detailWidth, clip(actual, half-3))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, lipgloss.JoinVertical(lipgloss.Left, exp, act))
}

// sides rebuilds the expected and actual text of a result from its diff,
// colouring the lines that differ.
func sides(r runner.TestResult) (expected, actual string) {
	if r.Success || len(r.Diff) == 0 {
		return r.ActualOutput, r.ActualOutput
	}
	var exp, act []string
	for _, l := range r.Diff {
		switch l.Tag {
		case diff.Delete:
			exp = append(exp, color.ErrorStyle.Render(l.Content))
		case diff.Insert:
			act = append(act, color.SuccessStyle.Render(l.Content))
		default:
			exp = append(exp, l.Content)
			act = append(act, l.Content)
		}
	}
	return strings.Join(exp, "\n"), strings.Join(act, "\n")
}

// clip keeps at most n lines of s.
func clip(s string, n int) string {
	if n < 1 {
		n = 1
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n" + color.SubtleStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-n))
}
