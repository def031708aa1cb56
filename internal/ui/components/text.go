package components

import "github.com/alexisbeaulieu97/stylebox/internal/style"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(style.Props{"color": "text"}),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.TerminalStyle(ctx).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithProps merges style props onto the text.
func (t *Text) WithProps(props style.Props) *Text {
	t.SetProps(props)
	return t
}

// Bold sets a bold font weight.
func (t *Text) Bold() *Text {
	return t.WithProps(style.Props{"fontWeight": "bold"})
}

// BoldText creates bold text.
func BoldText(content string) *Text {
	return NewText(content).Bold()
}

// EmphasisText creates italic, primary coloured text.
func EmphasisText(content string) *Text {
	return NewText(content).WithProps(style.Props{"fontStyle": "italic", "color": "primary"})
}

// CodeText creates monospace text on a surface background.
func CodeText(content string) *Text {
	return NewText(content).WithProps(style.Props{
		"fontFamily":      "mono",
		"backgroundColor": "surface",
		"paddingX":        "tight",
	})
}

// TitleText creates a large bold heading.
func TitleText(content string) *Text {
	return NewText(content).WithProps(style.Props{"fontSize": "xlarge", "fontWeight": "bold"})
}

// SubtitleText creates subdued secondary text.
func SubtitleText(content string) *Text {
	return NewText(content).WithProps(style.Props{"color": "textSubtle"})
}
