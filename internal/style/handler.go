package style

import (
	"github.com/alexisbeaulieu97/stylebox/internal/color"
	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
)

// Options is how a handler turns a prop value into style output. It is one
// of TableLookup or ComputedResolver.
type Options interface {
	isOptions()
}

// TableLookup maps token names to CSS values. A miss falls back to the
// literal value.
type TableLookup map[string]any

// ComputedResolver computes the style contributed by one prop.
type ComputedResolver func(in Input) *Style

func (TableLookup) isOptions()      {}
func (ComputedResolver) isOptions() {}

// Kind names the options variant for listings.
func Kind(o Options) string {
	switch o.(type) {
	case TableLookup:
		return "table"
	case ComputedResolver:
		return "computed"
	default:
		return "unknown"
	}
}

// Handler is one registry entry. Name and each alias dispatch to the same
// Options; Defaults are merged under everything else when the prop is set.
// Reads lists the sibling props a computed resolver may consult for the
// prop being resolved; nothing else is visible to it.
type Handler struct {
	Name     string
	Aliases  []string
	Defaults *Style
	Options  Options
	Reads    func(prop string) []string
}

// Names returns the canonical name followed by the aliases.
func (h Handler) Names() []string {
	return append([]string{h.Name}, h.Aliases...)
}

// SiblingsFor returns the declared sibling props for prop.
func (h Handler) SiblingsFor(prop string) []string {
	if h.Reads == nil {
		return nil
	}
	return h.Reads(prop)
}

// Input is what a computed resolver receives.
type Input struct {
	Prop  string
	Value any
	Theme tokens.ThemeName

	siblings Props
	resolver *Resolver
}

// Sibling returns a declared sibling prop if it is set.
func (in Input) Sibling(name string) (any, bool) {
	return in.siblings.Get(name)
}

// Tables returns the token tables of the active registry.
func (in Input) Tables() *tokens.Tables {
	return in.resolver.registry.Tables()
}

// Resolve resolves a nested or synthetic props object with the same
// resolver settings.
func (in Input) Resolve(props Props) *Style {
	return in.resolver.Resolve(props)
}

// Color adjusts token with the given lightness and opacity prop values and
// converts the swatch into a CSS colour. Unknown tokens come back verbatim
// with ok set to false.
func (in Input) Color(token string, lightness, opacity any) (string, bool) {
	l, _ := color.ParseAdjustment(lightness)
	o, _ := color.ParseAdjustment(opacity)
	adjuster := in.resolver.adjuster
	swatch := adjuster.Adjust(token, l, o, in.Theme)
	if value, ok := adjuster.CSSValue(swatch, in.Theme); ok {
		return value, true
	}
	return swatch, false
}

// Warn reports a problem when diagnostics are enabled.
func (in Input) Warn(msg string, fields map[string]any) {
	in.resolver.diagnose(msg, fields)
}
