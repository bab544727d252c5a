package view

import (
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"

	"yamori/internal/color"
)

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// firstLine returns s up to its first newline, control sequences removed.
func firstLine(s string) string {
	s = stripansi.Strip(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func panel(title string, width int, body string) string {
	style := color.PanelStyle.Width(max(width-color.PanelStyle.GetHorizontalFrameSize(), 0))
	return style.Render(color.TitleStyle.Render(title) + "\n" + body)
}
