package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylebox/internal/render"
	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

const defaultDividerWidth = 40

// Divider renders a separator line in the border colour.
type Divider struct {
	BaseComponent
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(style.Props{"border": "normal"}),
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider (convenience constructor).
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithDirection(DirectionVertical)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	resolved := d.ComputeStyle(ctx)
	border := borderGlyphs(resolved)

	var content string
	if d.direction == DirectionHorizontal {
		content = strings.Repeat(border.Top, width)
	} else {
		lines := make([]string, width)
		for i := range lines {
			lines[i] = border.Left
		}
		content = strings.Join(lines, "\n")
	}

	out := lipgloss.NewStyle()
	if value, ok := resolved.Get("borderColor"); ok {
		if text, ok := value.(string); ok {
			if c, ok := render.Color(text); ok {
				out = out.Foreground(c)
			}
		}
	}
	return out.Render(content)
}

// borderGlyphs picks line characters matching the resolved border.
func borderGlyphs(resolved *style.Style) lipgloss.Border {
	styleName, _ := resolved.Get("borderStyle")
	width, _ := resolved.Get("borderWidth")
	switch {
	case styleName == "double":
		return lipgloss.DoubleBorder()
	case styleName == "dashed", styleName == "dotted":
		return lipgloss.Border{Top: "╌", Left: "╎"}
	case width != "1px" && width != nil && width != "0":
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithProps merges style props onto the divider ("border", "borderColor", ...).
func (d *Divider) WithProps(props style.Props) *Divider {
	d.SetProps(props)
	return d
}

// Width returns the divider width.
func (d *Divider) Width() int {
	return d.width
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithProps(style.Props{"border": "dashed"})
}

// DoubleDivider creates a double-line divider.
func DoubleDivider() *Divider {
	return NewDivider().WithProps(style.Props{"border": "double"})
}

// ThickDivider creates a thick divider.
func ThickDivider() *Divider {
	return NewDivider().WithProps(style.Props{"border": "thick"})
}
