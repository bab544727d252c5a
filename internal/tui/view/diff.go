package view

import (
	"strings"

	"yamori/internal/color"
	"yamori/internal/diff"
	"yamori/internal/tui/model"
)

const diffRule = "───────────────────────────────────────"

// diffContent is the text shown on the diff tab for the selected test.
func diffContent(m *model.Model) string {
	r, ok := m.SelectedResult()
	if !ok {
		return color.SubtleStyle.Render("No test selected")
	}

	var b strings.Builder
	b.WriteString("Diff for test: ")
	b.WriteString(color.WarningStyle.Bold(true).Render(r.Name))
	b.WriteString("\n" + diffRule + "\n")

	switch {
	case r.Success:
		b.WriteString(color.SuccessStyle.Render("✓ Test passed - no differences to display"))
	case len(r.Diff) == 0:
		b.WriteString(color.SubtleStyle.Render("No diff information available"))
	default:
		for _, l := range r.Diff {
			line := l.String()
			switch l.Tag {
			case diff.Delete:
				line = color.ErrorStyle.Render(line)
			case diff.Insert:
				line = color.SuccessStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func renderDiffTab(m *model.Model, width, height int) string {
	m.DiffViewport.Width = max(width-4, 0)
	m.DiffViewport.Height = max(height-3, 1)
	m.DiffViewport.SetContent(diffContent(m))
	return panel("Unified Diff View", width, m.DiffViewport.View())
}
