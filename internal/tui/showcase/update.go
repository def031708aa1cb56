package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = max(msg.Width-listWidth-2, 10)
		m.detail.Height = max(msg.Height-4, 3)
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case toggleThemeMsg:
		m.theme = m.theme.Toggle()
		m.refreshDetail()
		theme := string(m.theme.Name)
		return m, func() tea.Msg { return ThemeToggledMsg{Theme: theme} }
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.Theme):
		return m.Update(toggleThemeMsg{})

	case key.Matches(msg, keys.PageUp):
		m.detail.SetYOffset(m.detail.YOffset - m.detail.Height/2)
		return m, nil

	case key.Matches(msg, keys.PageDown):
		m.detail.SetYOffset(m.detail.YOffset + m.detail.Height/2)
		return m, nil
	}
	return m, nil
}
