package color

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Success = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	Error   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	Warning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	Info    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	Border  = lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"}
	Text    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	Surface = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#262626"}
	Inverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F0F0F"}
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)

	PassLabelStyle = lipgloss.NewStyle().Foreground(Success).Bold(true)
	FailLabelStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Inverse).
			Background(Primary).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Subtle).
				Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)

	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Warning).
			Padding(1, 2)

	NotificationStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Info).
				Padding(1, 2)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface).
			Padding(0, 1)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(Inverse).
				Background(Error)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(Inverse).
				Background(Success)
)

// Initialize sets whether the terminal background is dark.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Status renders the PASS or FAIL label.
func Status(success bool) string {
	if success {
		return PassLabelStyle.Render("PASS")
	}
	return FailLabelStyle.Render("FAIL")
}
