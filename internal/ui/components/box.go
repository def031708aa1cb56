package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylebox/internal/render"
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui"
)

// Box is the styled primitive every other component is built on. Its props
// go through the style resolver and the result paints the children.
type Box struct {
	BaseComponent
	children []ui.Renderable
}

// NewBox creates a box around children.
func NewBox(children ...ui.Renderable) *Box {
	return &Box{
		BaseComponent: NewBaseComponent(nil),
		children:      children,
	}
}

// View renders the box and its children.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box with layout context.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	resolved := b.ComputeStyle(ctx)
	flat := render.Flatten(resolved, ctx.State())
	content := joinChildren(b.children, ctx, flat)
	return render.Terminal(resolved, ctx.State()).Render(content)
}

// WithProps merges style props onto the box.
func (b *Box) WithProps(props style.Props) *Box {
	b.SetProps(props)
	return b
}

// Add appends children to the box.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.children = append(b.children, children...)
	return b
}

// Children returns the child renderables.
func (b *Box) Children() []ui.Renderable {
	return b.children
}

// SetChildren replaces all children in the box.
func (b *Box) SetChildren(children []ui.Renderable) *Box {
	b.children = children
	return b
}

// joinChildren lays children out following the resolved flex direction,
// gap and cross-axis alignment.
func joinChildren(children []ui.Renderable, ctx RenderContext, flat *style.Style) string {
	views := make([]string, 0, len(children))
	for _, child := range children {
		if view := viewChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	horizontal := false
	if direction, ok := flat.Get("flexDirection"); ok {
		horizontal = direction == "row" || direction == "row-reverse"
	}

	gap := 0
	if value, ok := flat.Get("gap"); ok {
		if text, ok := render.FormatValue("gap", value); ok {
			gap, _ = render.Cells(text, horizontal)
		}
	}

	position := lipgloss.Left
	if align, ok := flat.Get("alignItems"); ok {
		switch align {
		case "center":
			position = lipgloss.Center
		case "flex-end", "end":
			position = lipgloss.Right
		}
	}

	if gap > 0 {
		spacer := strings.Repeat(" ", gap)
		if !horizontal {
			spacer = strings.Repeat("\n", gap-1)
		}
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}

	if horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(position, views...)
}
