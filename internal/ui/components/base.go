package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylebox/internal/render"
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui"
)

// BaseComponent holds the style props every component is built from.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	props  style.Props
	derive func() style.Props
}

// NewBaseComponent creates a base component with the given default props.
func NewBaseComponent(defaults style.Props) BaseComponent {
	props := make(style.Props, len(defaults))
	for k, v := range defaults {
		props[k] = v
	}
	return BaseComponent{props: props}
}

// SetDerived installs a function producing state-dependent props (variant,
// disabled, ...). Props set through SetProps win over derived ones.
func (b *BaseComponent) SetDerived(derive func() style.Props) {
	b.derive = derive
}

// SetProps merges props over the current ones. A style.Unset value removes
// an inherited default.
func (b *BaseComponent) SetProps(props style.Props) {
	if b.props == nil {
		b.props = style.Props{}
	}
	for k, v := range props {
		b.props[k] = v
	}
}

// Props returns the derived props overlaid with the component's own props.
func (b *BaseComponent) Props() style.Props {
	out := style.Props{}
	if b.derive != nil {
		for k, v := range b.derive() {
			out[k] = v
		}
	}
	for k, v := range b.props {
		out[k] = v
	}
	return out
}

// ComputeStyle resolves the component's props for the context's theme.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) *style.Style {
	return ctx.Theme.Resolve(b.Props())
}

// TerminalStyle resolves the props and converts them for the terminal.
func (b *BaseComponent) TerminalStyle(ctx RenderContext) lipgloss.Style {
	return render.Terminal(b.ComputeStyle(ctx), ctx.State())
}

// Class registers the component's style with sheet and returns its class.
func (b *BaseComponent) Class(sheet *render.Sheet, ctx RenderContext) string {
	return sheet.Add(b.ComputeStyle(ctx))
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme, layout limits and interaction state
// down the component tree.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
	Hover       bool
	Focus       bool
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithWidth returns a new context for a parent of the given width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// State converts the context into the terminal renderer's state.
func (r RenderContext) State() render.State {
	width := r.ParentWidth
	if width <= 0 && r.Constraints.MaxWidth > 0 {
		width = r.Constraints.MaxWidth
	}
	return render.State{Hover: r.Hover, Focus: r.Focus, Width: width}
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Styled is a component whose resolved style can be inspected.
type Styled interface {
	ContextualRenderable
	ComputeStyle(ctx RenderContext) *style.Style
	Props() style.Props
}

func viewChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
