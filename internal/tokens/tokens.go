package tokens

import (
	"sort"
	"strconv"
)

// ThemeName selects one of the semantic colour alias tables.
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// Breakpoint is a named min-width media query boundary.
type Breakpoint struct {
	Name     string `yaml:"name" toml:"name" validate:"required,alpha"`
	MinWidth int    `yaml:"min_width" toml:"min_width" validate:"min=0"`
}

// MediaQuery returns the media query string used as a nested selector key.
func (b Breakpoint) MediaQuery() string {
	return "@media (min-width: " + strconv.Itoa(b.MinWidth) + "px)"
}

// BorderStyle pairs a CSS border-style with its width.
type BorderStyle struct {
	Style string `yaml:"style" toml:"style" validate:"required,oneof=none solid dashed dotted double"`
	Width string `yaml:"width" toml:"width" validate:"required,css_length"`
}

// FontSize pairs a font size with the line height it is designed for.
type FontSize struct {
	Size       string `yaml:"size" toml:"size" validate:"required,css_length"`
	LineHeight string `yaml:"line_height" toml:"line_height" validate:"required"`
}

// Shades maps a lightness step ("100".."700") to a hex colour.
type Shades map[string]string

// Tables holds every token table the style compiler consumes. A Tables value
// is treated as read-only once handed to a registry.
type Tables struct {
	Breakpoints  []Breakpoint
	Palette      map[string]Shades
	Utility      map[string]string
	Themes       map[ThemeName]map[string]string
	Spacing      map[string]string
	Radii        map[string]string
	Borders      map[string]BorderStyle
	Shadows      map[string]string
	ZIndices     map[string]int
	FontSizes    map[string]FontSize
	LineHeights  map[string]string
	FontWeights  map[string]string
	FontFamilies map[string]string
	Durations    map[string]string
	Easings      map[string]string
	Animations   map[string]string
	Sizes        map[string]string
	FlexKeywords map[string]string
}

// IsUtility reports whether name is an adjustment-inert utility colour.
func (t *Tables) IsUtility(name string) bool {
	_, ok := t.Utility[name]
	return ok
}

// HasCore reports whether the palette defines the core colour.
func (t *Tables) HasCore(core string) bool {
	_, ok := t.Palette[core]
	return ok
}

// Hex returns the palette colour for a core name and lightness step.
func (t *Tables) Hex(core string, lightness int) (string, bool) {
	shades, ok := t.Palette[core]
	if !ok {
		return "", false
	}
	hex, ok := shades[strconv.Itoa(lightness)]
	return hex, ok
}

// ThemeAlias resolves a semantic colour alias for the theme.
func (t *Tables) ThemeAlias(theme ThemeName, alias string) (string, bool) {
	aliases, ok := t.Themes[theme]
	if !ok {
		return "", false
	}
	swatch, ok := aliases[alias]
	return swatch, ok
}

// ThemeNames lists the configured themes in a stable order.
func (t *Tables) ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(t.Themes))
	for name := range t.Themes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// SortedBreakpoints returns the breakpoints ordered by ascending width.
func (t *Tables) SortedBreakpoints() []Breakpoint {
	out := append([]Breakpoint(nil), t.Breakpoints...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinWidth < out[j].MinWidth })
	return out
}

// Clone returns a deep copy that can be modified without touching t.
func (t *Tables) Clone() *Tables {
	clone := &Tables{
		Breakpoints:  append([]Breakpoint(nil), t.Breakpoints...),
		Palette:      make(map[string]Shades, len(t.Palette)),
		Utility:      copyStrings(t.Utility),
		Themes:       make(map[ThemeName]map[string]string, len(t.Themes)),
		Spacing:      copyStrings(t.Spacing),
		Radii:        copyStrings(t.Radii),
		Borders:      make(map[string]BorderStyle, len(t.Borders)),
		Shadows:      copyStrings(t.Shadows),
		ZIndices:     make(map[string]int, len(t.ZIndices)),
		FontSizes:    make(map[string]FontSize, len(t.FontSizes)),
		LineHeights:  copyStrings(t.LineHeights),
		FontWeights:  copyStrings(t.FontWeights),
		FontFamilies: copyStrings(t.FontFamilies),
		Durations:    copyStrings(t.Durations),
		Easings:      copyStrings(t.Easings),
		Animations:   copyStrings(t.Animations),
		Sizes:        copyStrings(t.Sizes),
		FlexKeywords: copyStrings(t.FlexKeywords),
	}
	for core, shades := range t.Palette {
		clone.Palette[core] = Shades(copyStrings(shades))
	}
	for theme, aliases := range t.Themes {
		clone.Themes[theme] = copyStrings(aliases)
	}
	for k, v := range t.Borders {
		clone.Borders[k] = v
	}
	for k, v := range t.ZIndices {
		clone.ZIndices[k] = v
	}
	for k, v := range t.FontSizes {
		clone.FontSizes[k] = v
	}
	return clone
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
