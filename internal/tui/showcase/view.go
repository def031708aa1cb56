package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

// View renders the current model state.
func (m Model) View() string {
	st := newStyles(m.theme)
	if m.width < minWidth || m.height < minHeight {
		return st.errorBanner.Render(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight))
	}

	header := st.title.Render(fmt.Sprintf("stylebox showcase · %s theme", m.theme.Name))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		st.list.Render(m.renderList(st)),
		" ",
		m.detail.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter(st))
}

func (m Model) renderList(st styles) string {
	if len(m.demos) == 0 {
		return st.description.Render("No demos")
	}
	lines := make([]string, 0, len(m.demos))
	for i, demo := range m.demos {
		if i == m.cursor {
			lines = append(lines, st.selectedItem.Render(demo.Name))
			continue
		}
		lines = append(lines, st.item.Render(demo.Name))
	}
	return strings.Join(lines, "\n")
}

// renderDetail builds the viewport content for the selected demo.
func (m Model) renderDetail() string {
	demo, ok := m.Selected()
	if !ok {
		return ""
	}
	st := newStyles(m.theme)
	ctx := m.context()

	var b strings.Builder
	b.WriteString(st.title.Render(demo.Name))
	b.WriteString("\n")
	b.WriteString(st.description.Render(demo.Description))
	b.WriteString("\n\n")

	b.WriteString(st.label.Render("preview"))
	b.WriteString("\n")
	b.WriteString(demo.Component.ViewWithContext(ctx))
	b.WriteString("\n\n")

	b.WriteString(st.label.Render("props"))
	b.WriteString("\n")
	b.WriteString(st.code.Render(encode(style.Of(propsPairs(demo.Props())...))))
	b.WriteString("\n\n")

	b.WriteString(st.label.Render("resolved"))
	b.WriteString("\n")
	b.WriteString(st.code.Render(encode(demo.Component.ComputeStyle(ctx))))
	return b.String()
}

func (m Model) renderFooter(st styles) string {
	parts := make([]string, 0, len(keys.help()))
	for _, binding := range keys.help() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return st.footer.Render(strings.Join(parts, " • "))
}

func encode(s *style.Style) string {
	var b strings.Builder
	if err := s.EncodeJSON(&b, "  "); err != nil {
		return err.Error()
	}
	return strings.TrimRight(b.String(), "\n")
}

// propsPairs flattens props into sorted key/value pairs, dropping unset
// entries and recursing into nested prop objects.
func propsPairs(props style.Props) []any {
	names := props.Keys()
	out := make([]any, 0, len(names)*2)
	for _, k := range names {
		v, _ := props.Get(k)
		if nested, ok := v.(style.Props); ok {
			v = style.Of(propsPairs(nested)...)
		}
		out = append(out, k, v)
	}
	return out
}
