package components

import "github.com/alexisbeaulieu97/stylebox/internal/style"

// Button represents an interactive button component (visual only).
type Button struct {
	BaseComponent
	label    string
	variant  Variant
	disabled bool
	active   bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	b := &Button{
		BaseComponent: NewBaseComponent(nil),
		label:         label,
		variant:       VariantPrimary,
	}
	b.SetDerived(b.variantProps)
	return b
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context. An
// active button renders in its hover state.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	ctx.Hover = ctx.Hover || b.active
	return b.TerminalStyle(ctx).Render(b.label)
}

func (b *Button) variantProps() style.Props {
	colour := b.variant.Colour()
	props := style.Props{
		"color":              "background",
		"backgroundColor":    colour,
		"paddingX":           "tight",
		"borderRadius":       "normal",
		"fontWeight":         "bold",
		"cursor":             "pointer",
		"transitionProperty": []string{"background-color", "color"},
		"propsOnHover": style.Props{
			"backgroundColor":          colour,
			"backgroundColorLightness": "+100",
		},
	}
	if b.disabled {
		props["opacity"] = 0.5
		props["cursor"] = "not-allowed"
		props["propsOnHover"] = style.Unset
	}
	if b.active {
		props["textDecoration"] = "underline"
	}
	return props
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.variant = variant
	return b
}

// WithProps merges style props onto the button.
func (b *Button) WithProps(props style.Props) *Button {
	b.SetProps(props)
	return b
}

// Disabled marks the button as disabled.
func (b *Button) Disabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Active marks the button as active (pressed or selected).
func (b *Button) Active(active bool) *Button {
	b.active = active
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(VariantPrimary)
}

// DangerButton creates a destructive action button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant(VariantDanger)
}
