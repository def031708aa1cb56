package components

import "github.com/alexisbeaulieu97/stylebox/internal/style"

// Badge is a small status label painted with a variant colour.
type Badge struct {
	BaseComponent
	text    string
	variant Variant
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(nil),
		text:          text,
		variant:       VariantPrimary,
	}
	b.SetDerived(b.variantProps)
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.TerminalStyle(ctx).Render(b.text)
}

func (b *Badge) variantProps() style.Props {
	return style.Props{
		"color":                  b.variant.Colour(),
		"colorLightness":         "+100",
		"backgroundColor":        b.variant.Colour(),
		"backgroundColorOpacity": 20,
		"paddingX":               "tight",
		"borderRadius":           "round",
		"fontSize":               "small",
		"fontWeight":             "bold",
		"textTransform":          "uppercase",
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant Variant) *Badge {
	b.variant = variant
	return b
}

// WithProps merges style props onto the badge.
func (b *Badge) WithProps(props style.Props) *Badge {
	b.SetProps(props)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SetText updates the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantWarning)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantDanger)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantInfo)
}
