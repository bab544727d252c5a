package model

import "github.com/charmbracelet/bubbles/key"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous test / history entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next test / history entry"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous tab"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run tests"),
		),
		RunRelease: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "run in release mode"),
		),
		ToggleBuild: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle build mode"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "show history"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm / load entry"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy output"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab, k.History},
		{k.Run, k.RunRelease, k.ToggleBuild, k.Enter, k.Esc},
		{k.Copy, k.ToggleLog, k.Help, k.Quit, k.ForceQuit},
	}
}

// ShortHelp returns a minimal set of bindings, often used for a status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.NextTab, k.Help, k.Quit}
}
