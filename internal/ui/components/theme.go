package components

import (
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
)

// Variant selects a semantic colour alias for buttons, badges and alerts.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantAccent
	VariantSuccess
	VariantWarning
	VariantDanger
	VariantInfo
	VariantMuted
)

var variantAliases = map[Variant]string{
	VariantPrimary: "primary",
	VariantAccent:  "accent",
	VariantSuccess: "success",
	VariantWarning: "warning",
	VariantDanger:  "danger",
	VariantInfo:    "info",
	VariantMuted:   "textSubtle",
}

var variantIcons = map[Variant]string{
	VariantPrimary: "●",
	VariantAccent:  "◆",
	VariantSuccess: "✓",
	VariantWarning: "⚠",
	VariantDanger:  "✗",
	VariantInfo:    "ℹ",
	VariantMuted:   "·",
}

// Colour returns the theme alias the variant paints with.
func (v Variant) Colour() string {
	if alias, ok := variantAliases[v]; ok {
		return alias
	}
	return variantAliases[VariantPrimary]
}

// Icon returns the glyph alerts show for the variant.
func (v Variant) Icon() string {
	return variantIcons[v]
}

// String returns the variant's alias name.
func (v Variant) String() string {
	return v.Colour()
}

// ParseVariant maps an alias name back to its variant.
func ParseVariant(name string) (Variant, bool) {
	for v, alias := range variantAliases {
		if alias == name {
			return v, true
		}
	}
	return VariantPrimary, false
}

// Theme binds a theme name to the resolver that compiles component props.
// Themes are immutable values; ForName returns a new one.
type Theme struct {
	Name     tokens.ThemeName
	resolver *style.Resolver
}

// NewTheme wraps resolver, using the resolver's theme as the name.
func NewTheme(resolver *style.Resolver) Theme {
	if resolver == nil {
		resolver = style.NewResolver()
	}
	return Theme{Name: resolver.Theme(), resolver: resolver}
}

// DefaultTheme returns the light theme over the default tokens.
func DefaultTheme() Theme {
	return NewTheme(style.NewResolver(style.WithTheme(tokens.ThemeLight)))
}

// DarkTheme returns the dark theme over the default tokens.
func DarkTheme() Theme {
	return NewTheme(style.NewResolver(style.WithTheme(tokens.ThemeDark)))
}

// ForName returns the same theme bound to another theme name.
func (t Theme) ForName(name tokens.ThemeName) Theme {
	return Theme{Name: name, resolver: t.Resolver().ForTheme(name)}
}

// Toggle switches between the light and dark themes.
func (t Theme) Toggle() Theme {
	if t.Name == tokens.ThemeDark {
		return t.ForName(tokens.ThemeLight)
	}
	return t.ForName(tokens.ThemeDark)
}

// Resolver returns the resolver, falling back to the default one for a
// zero Theme.
func (t Theme) Resolver() *style.Resolver {
	if t.resolver == nil {
		return style.NewResolver(style.WithTheme(t.themeName()))
	}
	return t.resolver
}

// Resolve compiles props for this theme.
func (t Theme) Resolve(props style.Props) *style.Style {
	return t.Resolver().Resolve(props)
}

func (t Theme) themeName() tokens.ThemeName {
	if t.Name == "" {
		return tokens.ThemeLight
	}
	return t.Name
}
