// Package color implements the swatch adjustment language: theme alias
// resolution followed by clamped lightness and opacity arithmetic.
package color

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
)

// Adjuster computes concrete swatches against one set of token tables.
// It holds no mutable state and is safe for concurrent use.
type Adjuster struct {
	tables *tokens.Tables
}

// New returns an Adjuster backed by tables.
func New(tables *tokens.Tables) *Adjuster {
	if tables == nil {
		tables = tokens.Default()
	}
	return &Adjuster{tables: tables}
}

var defaultAdjuster = New(nil)

// Adjust applies the adjustments using the built-in token tables.
func Adjust(token string, lightness, opacity Adjustment, theme tokens.ThemeName) string {
	return defaultAdjuster.Adjust(token, lightness, opacity, theme)
}

// Adjust returns the swatch name for token after applying the lightness and
// opacity adjustments. Utility colours are returned untouched; theme aliases
// are resolved first. Tokens that cannot be parsed are returned unchanged.
func (a *Adjuster) Adjust(token string, lightness, opacity Adjustment, theme tokens.ThemeName) string {
	if a.tables.IsUtility(token) {
		return token
	}

	resolved := token
	if swatch, ok := a.tables.ThemeAlias(theme, token); ok {
		resolved = swatch
	}
	if a.tables.IsUtility(resolved) {
		return resolved
	}

	sw, ok := ParseSwatch(resolved)
	if !ok || !a.tables.HasCore(sw.Core) {
		return token
	}
	if !lightness.IsSet() && !opacity.IsSet() {
		return resolved
	}

	sw.Lightness = lightness.apply(sw.Lightness, MinLightness, MaxLightness, LightnessStep)
	sw.Opacity = opacity.apply(sw.Opacity, MinOpacity, MaxOpacity, OpacityStep)
	return sw.String()
}

// Known reports whether token names a utility colour, a theme alias or a
// swatch of a palette core.
func (a *Adjuster) Known(token string, theme tokens.ThemeName) bool {
	_, ok := a.CSSValue(token, theme)
	return ok
}

// CSSValue converts a token into a CSS colour value: a hex string for opaque
// swatches, rgba() for translucent ones and the literal value for utilities.
func (a *Adjuster) CSSValue(token string, theme tokens.ThemeName) (string, bool) {
	if value, ok := a.tables.Utility[token]; ok {
		return value, true
	}
	if swatch, ok := a.tables.ThemeAlias(theme, token); ok {
		if value, ok := a.tables.Utility[swatch]; ok {
			return value, true
		}
		token = swatch
	}

	sw, ok := ParseSwatch(token)
	if !ok {
		return "", false
	}
	hex, ok := a.tables.Hex(sw.Core, sw.Lightness)
	if !ok {
		return "", false
	}
	if sw.Opacity == MaxOpacity {
		return hex, true
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}
	r, g, b := c.RGB255()
	alpha := strconv.FormatFloat(float64(sw.Opacity)/100, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha), true
}
