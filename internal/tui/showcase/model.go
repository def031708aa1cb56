package showcase

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylebox/internal/ui/components"
)

const (
	listWidth     = 28
	minWidth      = 60
	minHeight     = 16
	defaultWidth  = 100
	defaultHeight = 30
)

// Model is the showcase's bubbletea model.
type Model struct {
	demos  []Demo
	cursor int
	theme  components.Theme

	detail viewport.Model

	width  int
	height int
}

// NewModel creates a showcase over demos rendered with theme.
func NewModel(demos []Demo, theme components.Theme) Model {
	m := Model{
		demos:  demos,
		theme:  theme,
		detail: viewport.New(defaultWidth-listWidth, defaultHeight-4),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refreshDetail()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the demo under the cursor.
func (m Model) Selected() (Demo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.demos) {
		return Demo{}, false
	}
	return m.demos[m.cursor], true
}

// Theme returns the theme demos are rendered with.
func (m Model) Theme() components.Theme {
	return m.theme
}

// Cursor returns the index of the selected demo.
func (m Model) Cursor() int {
	return m.cursor
}

func (m *Model) moveCursor(delta int) {
	if len(m.demos) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.demos) {
		return
	}
	m.cursor = next
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	m.detail.SetContent(m.renderDetail())
	m.detail.GotoTop()
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(m.detail.Width - 2))
}

// Run starts the showcase program on the terminal.
func Run(demos []Demo, theme components.Theme) error {
	_, err := tea.NewProgram(NewModel(demos, theme), tea.WithAltScreen()).Run()
	return err
}
