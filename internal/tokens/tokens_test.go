package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

func TestDefaultTables(t *testing.T) {
	t.Parallel()

	tables := Default()
	assert.Same(t, tables, Default(), "defaults are built once")

	hex, ok := tables.Hex("purple", 500)
	require.True(t, ok)
	assert.Equal(t, "#a855f7", hex)

	_, ok = tables.Hex("purple", 800)
	assert.False(t, ok)

	assert.True(t, tables.IsUtility("white"))
	assert.False(t, tables.IsUtility("purple"))

	swatch, ok := tables.ThemeAlias(ThemeLight, "border")
	require.True(t, ok)
	assert.Equal(t, "gray--200", swatch)

	swatch, ok = tables.ThemeAlias(ThemeDark, "border")
	require.True(t, ok)
	assert.Equal(t, "purple--300--20", swatch)

	assert.Equal(t, []ThemeName{ThemeDark, ThemeLight}, tables.ThemeNames())
}

func TestSortedBreakpointsAndMediaQuery(t *testing.T) {
	t.Parallel()

	tables := Default().Clone()
	tables.Breakpoints = []Breakpoint{{Name: "large", MinWidth: 1024}, {Name: "small", MinWidth: 640}}

	sorted := tables.SortedBreakpoints()
	require.Len(t, sorted, 2)
	assert.Equal(t, "small", sorted[0].Name)
	assert.Equal(t, "@media (min-width: 640px)", sorted[0].MediaQuery())
	assert.Equal(t, "large", tables.Breakpoints[0].Name, "sorting must not reorder the source")
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	clone := Default().Clone()
	clone.Spacing["tight"] = "6px"
	clone.Palette["purple"]["500"] = "#000000"
	clone.Themes[ThemeLight]["border"] = "red--500"

	assert.Equal(t, "8px", Default().Spacing["tight"])
	hex, _ := Default().Hex("purple", 500)
	assert.Equal(t, "#a855f7", hex)
	swatch, _ := Default().ThemeAlias(ThemeLight, "border")
	assert.Equal(t, "gray--200", swatch)
}

func TestLoadYAMLOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.yaml")
	doc := `
spacing:
  tight: 6px
  huge: 128px
palette:
  orange:
    "400": "#fb923c"
themes:
  light:
    border: orange--400
breakpoints:
  - name: tablet
    min_width: 700
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "6px", tables.Spacing["tight"])
	assert.Equal(t, "128px", tables.Spacing["huge"])
	assert.Equal(t, "16px", tables.Spacing["normal"], "untouched defaults survive")
	assert.True(t, tables.HasCore("orange"))
	swatch, _ := tables.ThemeAlias(ThemeLight, "border")
	assert.Equal(t, "orange--400", swatch)
	require.Len(t, tables.Breakpoints, 1)
	assert.Equal(t, "tablet", tables.Breakpoints[0].Name)

	assert.Equal(t, "8px", Default().Spacing["tight"], "defaults are not mutated by merging")
}

func TestLoadTOMLOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.toml")
	doc := `
[radii]
pill = "999px"

[durations]
glacial = "2s"

[z_indices]
banner = 500
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "999px", tables.Radii["pill"])
	assert.Equal(t, "2s", tables.Durations["glacial"])
	assert.Equal(t, 500, tables.ZIndices["banner"])
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	tables, err := Load("  ")
	require.NoError(t, err)
	assert.Same(t, Default(), tables)
}

func TestValidationRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
	}{
		{name: "spacing not a length", doc: "spacing:\n  tight: wide\n"},
		{name: "palette step out of range", doc: "palette:\n  orange:\n    \"800\": \"#000000\"\n"},
		{name: "palette not hex", doc: "palette:\n  orange:\n    \"400\": orange\n"},
		{name: "theme alias not a swatch", doc: "themes:\n  light:\n    border: \"gray 200\"\n"},
		{name: "duration without unit", doc: "durations:\n  slow: \"400\"\n"},
		{name: "duplicate breakpoint", doc: "breakpoints:\n  - name: small\n    min_width: 1\n  - name: small\n    min_width: 2\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "tokens.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.doc), 0o644))

			_, err := LoadOverrides(path)
			var validationErr *styleboxerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestParseErrorCarriesPathAndLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spacing:\n  tight: [\n"), 0o644))

	_, err := LoadOverrides(path)
	var parseErr *styleboxerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	t.Parallel()

	_, err := DecodeOverrides([]byte("colours:\n  red: \"#f00\"\n"), ".yaml")
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *styleboxerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
