package components

import (
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui"
)

// Alert is a composite component for displaying notifications and messages.
type Alert struct {
	BaseComponent
	message string
	icon    string
	variant Variant
	title   string
}

// NewAlert creates a new alert with the given message.
func NewAlert(message string) *Alert {
	a := &Alert{
		BaseComponent: NewBaseComponent(nil),
		message:       message,
		variant:       VariantInfo,
	}
	a.SetDerived(a.variantProps)
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	icon := a.icon
	if icon == "" {
		icon = a.variant.Icon()
	}

	var children []ui.Renderable
	if a.title != "" {
		children = append(children, BoldText(a.title).WithProps(style.Props{"color": a.variant.Colour()}))
	}
	children = append(children, NewText(icon+" "+a.message))

	return NewBox(children...).WithProps(a.Props()).ViewWithContext(ctx)
}

func (a *Alert) variantProps() style.Props {
	colour := a.variant.Colour()
	return style.Props{
		"flexDirection":          "column",
		"border":                 "normal",
		"borderColor":            colour,
		"borderLeft":             "thick",
		"borderLeftColor":        colour,
		"backgroundColor":        colour,
		"backgroundColorOpacity": 10,
		"borderRadius":           "normal",
		"paddingX":               "tight",
	}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant Variant) *Alert {
	a.variant = variant
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithProps merges style props onto the alert box.
func (a *Alert) WithProps(props style.Props) *Alert {
	a.SetProps(props)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SetMessage updates the alert message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(VariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(VariantWarning)
}

// DangerAlert creates an error alert.
func DangerAlert(message string) *Alert {
	return NewAlert(message).WithVariant(VariantDanger)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(VariantInfo)
}
