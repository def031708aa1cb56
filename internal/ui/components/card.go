package components

import (
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui"
)

// Card is a Box with surface colours, a rounded border and padding.
type Card struct {
	*Box
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	box := NewBox(children...).WithProps(style.Props{
		"flexDirection":   "column",
		"gap":             "normal",
		"border":          "normal",
		"borderRadius":    "loose",
		"backgroundColor": "surface",
		"color":           "text",
		"padding":         "normal",
		"boxShadow":       "low",
	})
	return &Card{Box: box}
}

// WithTitle prepends a title to the card.
func (c *Card) WithTitle(title string) *Card {
	all := make([]ui.Renderable, 0, len(c.Children())+1)
	all = append(all, TitleText(title))
	all = append(all, c.Children()...)
	c.SetChildren(all)
	return c
}

// WithFooter appends a divider and a footer.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(HorizontalDivider(), footer)
	return c
}

// WithProps merges style props onto the card.
func (c *Card) WithProps(props style.Props) *Card {
	c.SetProps(props)
	return c
}
