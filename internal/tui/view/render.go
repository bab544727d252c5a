package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/tui/model"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return color.SubtleStyle.Render("Initializing... (waiting for window size)")
	}

	headerView := renderHeader(m)
	tabsView := renderTabs(m)
	statusView := renderStatusBar(m)

	bodyHeight := m.Height - lipgloss.Height(headerView) - lipgloss.Height(tabsView) - lipgloss.Height(statusView)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	body := renderBody(m, m.Width, bodyHeight)

	screen := lipgloss.JoinVertical(lipgloss.Left, headerView, tabsView, body, statusView)

	// Overlays replace the screen; at most one is shown, the most specific first.
	switch {
	case m.Popup != model.PopupNone:
		return renderPopup(m)
	case m.ShowHelp:
		return renderHelpOverlay(m)
	case m.ShowLog:
		return renderLogOverlay(m)
	case m.NotificationVisible:
		return renderNotification(m)
	}
	return screen
}

func renderHeader(m *model.Model) string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Bold(true).Foreground(color.Warning).Render("YA"),
		lipgloss.NewStyle().Bold(true).Foreground(color.Info).Render("MO"),
		lipgloss.NewStyle().Bold(true).Foreground(color.Success).Render("RI"),
		color.SubtleStyle.Render(" - "),
		lipgloss.NewStyle().Italic(true).Foreground(color.Primary).Render("YAML Test Observer & Runner Interface"),
	)

	mode := color.InfoStyle.Render("[" + model.BuildModeName(m.ReleaseMode) + "]")
	hint := color.SubtleStyle.Render("Press ? for help")
	right := lipgloss.JoinHorizontal(lipgloss.Top, mode, " ", hint)

	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

var tabTitles = map[model.Tab]string{
	model.TabResults:  "Test Results",
	model.TabStats:    "Statistics",
	model.TabDiff:     "Diff View",
	model.TabCommands: "Commands",
	model.TabHistory:  "History",
}

func renderTabs(m *model.Model) string {
	var parts []string
	for i, tab := range model.Tabs() {
		if i > 0 {
			parts = append(parts, color.SubtleStyle.Render("|"))
		}
		style := color.InactiveTabStyle
		if tab == m.CurrentTab {
			style = color.ActiveTabStyle
		}
		parts = append(parts, style.Render(tabTitles[tab]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderBody(m *model.Model, width, height int) string {
	var content string
	switch m.CurrentTab {
	case model.TabResults:
		content = renderResultsTab(m, width, height)
	case model.TabStats:
		content = renderStatsTab(m, width)
	case model.TabDiff:
		content = renderDiffTab(m, width, height)
	case model.TabCommands:
		content = renderCommandsTab(m, width)
	case model.TabHistory:
		content = renderHistoryTab(m, width)
	}
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

func renderStatusBar(m *model.Model) string {
	style := color.StatusBarStyle
	switch m.StatusBarMessageType {
	case model.StatusBarError:
		style = color.StatusBarErrorStyle
	case model.StatusBarSuccess:
		style = color.StatusBarSuccessStyle
	}

	text := m.StatusBarMessage
	if m.Running {
		text = m.Spinner.View() + " Running tests..."
		if m.RunProgress != "" {
			text += " " + m.RunProgress
		}
	}
	if text == "" {
		text = m.Help.ShortHelpView(m.Keys.ShortHelp())
	}
	return style.Width(m.Width).Render(truncate(firstLine(text), m.Width-style.GetHorizontalFrameSize()))
}
