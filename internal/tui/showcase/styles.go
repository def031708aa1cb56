package showcase

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylebox/internal/render"
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui/components"
)

// styles holds the showcase chrome, resolved through the same props the
// demos use so the frame follows the theme.
type styles struct {
	title        lipgloss.Style
	item         lipgloss.Style
	selectedItem lipgloss.Style
	description  lipgloss.Style
	label        lipgloss.Style
	code         lipgloss.Style
	list         lipgloss.Style
	footer       lipgloss.Style
	errorBanner  lipgloss.Style
}

var (
	titleProps = style.Props{
		"color":      "primary",
		"fontWeight": "bold",
		"paddingX":   "tight",
	}
	itemProps = style.Props{
		"color":    "text",
		"paddingX": "tight",
	}
	selectedItemProps = style.Props{
		"color":           "accent",
		"fontWeight":      "bold",
		"paddingRight":    "tight",
		"paddingLeft":     "tight",
		"borderLeft":      "normal",
		"borderLeftColor": "primary",
	}
	descriptionProps = style.Props{"color": "textSubtle", "fontStyle": "italic"}
	labelProps       = style.Props{"color": "textSubtle", "fontWeight": "bold", "textTransform": "uppercase"}
	codeProps        = style.Props{"color": "text", "fontFamily": "mono"}
	listProps        = style.Props{"borderRight": "normal", "borderRightColor": "border"}
	footerProps      = style.Props{"color": "textSubtle", "borderTop": "normal", "borderTopColor": "border"}
	errorProps       = style.Props{"color": "danger", "fontWeight": "bold"}
)

func newStyles(theme components.Theme) styles {
	resolve := func(props style.Props) lipgloss.Style {
		return render.Terminal(theme.Resolve(props), render.State{})
	}
	return styles{
		title:        resolve(titleProps),
		item:         resolve(itemProps),
		selectedItem: resolve(selectedItemProps),
		description:  resolve(descriptionProps),
		label:        resolve(labelProps),
		code:         resolve(codeProps),
		list:         resolve(listProps).Width(listWidth),
		footer:       resolve(footerProps),
		errorBanner:  resolve(errorProps),
	}
}
