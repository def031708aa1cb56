package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

func TestCompileNestedBlocks(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"position", "relative",
		"display", "flex",
		"alignItems", "center",
		"zIndex", 1,
		"&:hover, &:focus, &:focus-within", style.Of("color", "#ffffff"),
		"@media (min-width: 640px)", style.Of("padding", "24px"),
	)

	want := `.x {
  position: relative;
  display: flex;
  align-items: center;
  z-index: 1;
}
.x:hover, .x:focus, .x:focus-within {
  color: #ffffff;
}
@media (min-width: 640px) {
  .x {
    padding: 24px;
  }
}
`
	assert.Equal(t, want, Compile(".x", s))
}

func TestCompileSelectorExpansion(t *testing.T) {
	t.Parallel()

	s := style.Of(
		"& > p", style.Of("margin", 0),
		"span", style.Of("fontWeight", 700),
		"@media (min-width: 640px)", style.Of("&:hover", style.Of("opacity", 0.5)),
	)

	got := Compile(".a", s)
	assert.Contains(t, got, ".a > p {\n  margin: 0;\n}\n")
	assert.Contains(t, got, ".a span {\n  font-weight: 700;\n}\n")
	assert.Contains(t, got, "@media (min-width: 640px) {\n  .a:hover {\n    opacity: 0.5;\n  }\n}\n")
	assert.Equal(t, ".a:hover, .b:hover", expandSelector("&:hover", ".a, .b"))
}

func TestCompileNumericTransitionDuration(t *testing.T) {
	t.Parallel()

	got := Compile(".x", style.Resolve(style.Props{"transitionDuration": 300}))
	assert.Contains(t, got, "  transition-duration: 300ms;\n")
	assert.NotContains(t, got, "300px")
}

func TestCompileSkipsEmptyBlocks(t *testing.T) {
	t.Parallel()

	s := style.Of("display", nil, "@media (min-width: 1px)", style.NewStyle())
	assert.Empty(t, Compile(".x", s))
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prop  string
		value any
		want  string
		ok    bool
	}{
		{"width", 120, "120px", true},
		{"zIndex", 10, "10", true},
		{"margin", 0, "0", true},
		{"lineHeight", 1.5, "1.5", true},
		{"top", float64(4), "4px", true},
		{"gridTemplateColumns", []string{"1fr", "2fr"}, "1fr 2fr", true},
		{"color", "#000000", "#000000", true},
		{"display", nil, "", false},
		{"display", true, "", false},
	}

	for _, tc := range cases {
		got, ok := FormatValue(tc.prop, tc.value)
		assert.Equal(t, tc.ok, ok, tc.prop)
		assert.Equal(t, tc.want, got, tc.prop)
	}
}

func TestKebab(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "border-top-left-radius", Kebab("borderTopLeftRadius"))
	assert.Equal(t, "color", Kebab("color"))
	assert.Equal(t, "z-index", Kebab("zIndex"))
}

func TestSheetDeduplicatesByContent(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	first := sheet.Add(style.Of("display", "flex"))
	second := sheet.Add(style.Of("display", "flex"))
	third := sheet.Add(style.Of("display", "grid"))

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, third)
	assert.True(t, strings.HasPrefix(first, "sb-"))
	assert.Equal(t, 2, sheet.Len())

	rule, ok := sheet.Rule(first)
	require.True(t, ok)
	assert.Equal(t, "."+first+" {\n  display: flex;\n}\n", rule)

	css := sheet.CSS()
	assert.Less(t, strings.Index(css, first), strings.Index(css, third))
	assert.Len(t, sheet.Classes(), 2)
}

func TestSheetConcurrentAdd(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sheet.Add(style.Of("order", i%4))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, sheet.Len())
}
