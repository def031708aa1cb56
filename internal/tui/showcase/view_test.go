package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

func TestView_ListsDemos(t *testing.T) {
	t.Parallel()

	view := newTestModel().View()
	for _, demo := range DefaultDemos() {
		assert.Contains(t, view, demo.Name)
	}
	assert.Contains(t, view, "light theme")
	assert.Contains(t, view, "t theme")
}

func TestView_TooSmall(t *testing.T) {
	t.Parallel()

	m, _ := update(t, newTestModel(), tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestRenderDetail_ShowsPropsAndResolvedStyle(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	detail := m.renderDetail()

	assert.Contains(t, detail, "The quick brown fox")
	assert.Contains(t, detail, `"color": "text"`)
	assert.Contains(t, detail, `"color": "#334155"`)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Contains(t, m.renderDetail(), `"color": "#f1f5f9"`)
}

func TestRenderDetail_FollowsSelection(t *testing.T) {
	t.Parallel()

	m, _ := update(t, newTestModel(), tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	detail := m.renderDetail()
	assert.Contains(t, detail, "Save changes")
	assert.Contains(t, detail, `"backgroundColor": "#a855f7"`)
	assert.Contains(t, detail, `"&:hover, &:focus, &:focus-within"`)
}

func TestPropsPairsSkipsUnsetAndNests(t *testing.T) {
	t.Parallel()

	pairs := propsPairs(style.Props{
		"zIndex":       "low",
		"color":        style.Unset,
		"propsOnHover": style.Props{"color": "primary", "opacity": style.Unset},
	})

	got := style.Of(pairs...)
	assert.Equal(t, []string{"propsOnHover", "zIndex"}, got.Keys())
	nested, ok := got.Nested("propsOnHover")
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"color": "primary"}, nested.ToMap())
}
