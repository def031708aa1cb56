package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

func TestTerminalMapsDeclarations(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"color", "#ff0000",
		"backgroundColor", "rgba(168, 85, 247, 0.5)",
		"padding", "16px",
		"marginLeft", "8px",
		"fontWeight", "700",
		"borderStyle", "solid",
		"borderWidth", "1px",
		"borderColor", "#000000",
		"textAlign", "center",
		"textDecoration", "underline",
		"width", "160px",
	)

	got := Terminal(s, State{})
	assert.Equal(t, lipgloss.Color("#ff0000"), got.GetForeground())
	assert.Equal(t, lipgloss.Color("#a855f7"), got.GetBackground())
	assert.Equal(t, 1, got.GetPaddingTop())
	assert.Equal(t, 2, got.GetPaddingLeft())
	assert.Equal(t, 1, got.GetMarginLeft())
	assert.True(t, got.GetBold())
	assert.True(t, got.GetUnderline())
	assert.Equal(t, lipgloss.NormalBorder(), got.GetBorderStyle())
	assert.True(t, got.GetBorderTop())
	assert.True(t, got.GetBorderLeft())
	assert.Equal(t, lipgloss.Color("#000000"), got.GetBorderTopForeground())
	assert.Equal(t, lipgloss.Center, got.GetAlign())
	assert.Equal(t, 20, got.GetWidth())
}

func TestTerminalAppliesState(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"color", "#000000",
		"&:hover, &:focus, &:focus-within", style.Of("color", "#ffffff"),
		"@media (min-width: 640px)", style.Of("fontStyle", "italic"),
	)

	idle := Terminal(s, State{})
	assert.Equal(t, lipgloss.Color("#000000"), idle.GetForeground())
	assert.False(t, idle.GetItalic())

	hovered := Terminal(s, State{Hover: true, Width: 100})
	assert.Equal(t, lipgloss.Color("#ffffff"), hovered.GetForeground())
	assert.True(t, hovered.GetItalic())

	narrow := Terminal(s, State{Focus: true, Width: 40})
	assert.Equal(t, lipgloss.Color("#ffffff"), narrow.GetForeground())
	assert.False(t, narrow.GetItalic())
}

func TestTerminalEdgeBorders(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"borderTopStyle", "solid",
		"borderTopWidth", "2px",
		"borderTopColor", "#ff0000",
		"borderBottomStyle", "none",
	)

	got := Terminal(s, State{})
	assert.Equal(t, lipgloss.ThickBorder(), got.GetBorderStyle())
	assert.True(t, got.GetBorderTop())
	assert.False(t, got.GetBorderBottom())
	assert.Equal(t, lipgloss.Color("#ff0000"), got.GetBorderTopForeground())
}

func TestTerminalRoundedBorderAndUnknownColours(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"borderStyle", "solid",
		"borderWidth", "1px",
		"borderRadius", "8px",
		"color", "bordr",
	)

	got := Terminal(s, State{})
	assert.Equal(t, lipgloss.RoundedBorder(), got.GetBorderStyle())
	assert.Equal(t, lipgloss.NoColor{}, got.GetForeground())
}

func TestFlattenDropsUnmatchedBlocks(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"padding", "8px",
		"&:after", style.Of("content", `""`),
		"& > p", style.Of("margin", 0),
	)
	assert.Equal(t, map[string]any{"padding": "8px"}, Flatten(s, State{Hover: true, Focus: true}).ToMap())
}
