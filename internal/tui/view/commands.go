package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/tui/model"
)

func renderCommandsTab(m *model.Model, width int) string {
	listWidth := width / 3
	detailWidth := width - listWidth
	list := panel("Tests", listWidth, renderTestList(m, listWidth-4))

	r, ok := m.SelectedResult()
	if !ok {
		return lipgloss.JoinHorizontal(lipgloss.Top, list,
			panel("Command Details", detailWidth, color.SubtleStyle.Render("No command details available")))
	}

	mode := "Debug"
	if r.IsRelease {
		mode = "Release"
	}
	rows := []string{
		fmt.Sprintf("%-16s %s", "Command:", color.InfoStyle.Render(r.CommandLine())),
		fmt.Sprintf("%-16s %s", "Execution Time:", color.WarningStyle.Render(fmt.Sprintf("%d ms", r.ExecutionTime.Milliseconds()))),
		fmt.Sprintf("%-16s %s", "Build Mode:", mode),
	}
	if len(r.BuildCommands) > 0 {
		rows = append(rows, fmt.Sprintf("%-16s %s", "Build Commands:", color.SuccessStyle.Render(strings.Join(r.BuildCommands, "; "))))
	}
	details := panel("Command Details", detailWidth, strings.Join(rows, "\n"))

	if r.Input != nil {
		details = lipgloss.JoinVertical(lipgloss.Left, details, panel("Input", detailWidth, *r.Input))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, details)
}
