package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
	"github.com/alexisbeaulieu97/stylebox/internal/ui/components"
)

func newTestModel() Model {
	return NewModel(DefaultDemos(), components.DefaultTheme())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewModelSelectsFirstDemo(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	demo, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Text", demo.Name)
	assert.Nil(t, m.Init())
}

func TestUpdate_CursorMovement(t *testing.T) {
	t.Parallel()

	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the top")

	for range len(DefaultDemos()) + 3 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(DefaultDemos())-1, m.Cursor(), "cursor stops at the bottom")
}

func TestUpdate_ToggleTheme(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})

	assert.Equal(t, tokens.ThemeDark, m.Theme().Name)
	require.NotNil(t, cmd)
	assert.Equal(t, ThemeToggledMsg{Theme: "dark"}, cmd())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, tokens.ThemeLight, m.Theme().Name)
}

func TestUpdate_Quit(t *testing.T) {
	t.Parallel()

	_, cmd := update(t, newTestModel(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()

	m, _ := update(t, newTestModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120-listWidth-2, m.detail.Width)
	assert.Equal(t, 36, m.detail.Height)
}

func TestEmptyModel(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, components.DefaultTheme())
	_, ok := m.Selected()
	assert.False(t, ok)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "No demos")
}

func TestDemoPropsWithoutComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, style.Props{}, Demo{Name: "empty"}.Props())
}
