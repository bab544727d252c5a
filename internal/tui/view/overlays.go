package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yamori/internal/color"
	"yamori/internal/tui/model"
)

var confirmHint = color.SubtleStyle.Render("Press ") +
	color.SuccessStyle.Bold(true).Render("Enter") +
	color.SubtleStyle.Render(" to confirm or ") +
	color.ErrorStyle.Bold(true).Render("Esc") +
	color.SubtleStyle.Render(" to cancel")

func popupContent(m *model.Model) (title string, lines []string) {
	switch m.Popup {
	case model.PopupRunTests:
		return "Run Tests", []string{
			color.WarningStyle.Bold(true).Render("Are you sure you want to run the tests?"),
			"",
			"This will execute all tests defined in your configuration.",
			"Current results will be saved to history.",
		}
	case model.PopupRunRelease:
		return "Run Tests in Release Mode", []string{
			color.WarningStyle.Bold(true).Render("Run tests in RELEASE mode?"),
			"",
			"This will compile in release mode and then run all tests.",
			"This may take longer but will test optimized code.",
			"Current results will be saved to history.",
		}
	case model.PopupBuildToggle:
		target, next := "RELEASE", "release"
		if m.RunRelease {
			target, next = "DEBUG", "debug"
		}
		return "Toggle Build Mode", []string{
			color.WarningStyle.Bold(true).Render("Switch to " + target + " mode?"),
			"",
			"This will switch to " + next + " mode for the next test run.",
			"",
			color.SubtleStyle.Render("Current mode: ") + color.InfoStyle.Bold(true).Render(model.BuildModeName(m.RunRelease)),
		}
	}
	return "", nil
}

func renderPopup(m *model.Model) string {
	title, lines := popupContent(m)
	body := color.TitleStyle.Render(title) + "\n\n" + strings.Join(lines, "\n") + "\n\n" + confirmHint
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, color.PopupStyle.Render(body))
}

func renderNotification(m *model.Model) string {
	body := color.TitleStyle.Render("Test Results") + "\n\n" + m.NotificationMessage + "\n\n" +
		color.SubtleStyle.Render("Press Esc to close this message")
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, color.NotificationStyle.Render(body))
}

func renderHelpOverlay(m *model.Model) string {
	titleView := color.TitleStyle.Render("YAMORI Help")
	m.Help.ShowAll = true
	content := m.Help.View(m.Keys)
	container := color.OverlayStyle.Render(titleView + "\n\n" + content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model) string {
	titleView := color.TitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayWidth := int(float64(m.Width) * 0.8)
	overlayHeight := int(float64(m.Height) * 0.7)

	m.LogViewport.Width = max(overlayWidth-color.OverlayStyle.GetHorizontalFrameSize(), 0)
	m.LogViewport.Height = max(overlayHeight-color.OverlayStyle.GetVerticalFrameSize()-titleHeight, 0)

	if m.ActivityLogDirty {
		m.LogViewport.SetContent(strings.Join(m.ActivityLog, "\n"))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	container := color.OverlayStyle.Render(titleView + "\n" + m.LogViewport.View())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}
