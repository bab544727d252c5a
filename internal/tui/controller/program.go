package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/tui/model"
)

// NewProgram creates the dashboard program for the results of the initial run.
func NewProgram(cfg model.Config) *tea.Program {
	m := model.InitialModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
