package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"yamori/internal/tui/model"
	"yamori/internal/tui/view"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Model exposes the wrapped state.
func (a AppModel) Model() *model.Model {
	return a.model
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a, nil
	}

	updatedModel, cmd := Update(msg, a.model)
	a.model = updatedModel
	if a.model.QuitApp {
		return a, tea.Batch(cmd, tea.Quit)
	}
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
