package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// State selects which nested blocks apply when rendering to a terminal.
// Width is the available width in cells and enables matching media queries.
type State struct {
	Hover bool
	Focus bool
	Width int
}

// Flatten merges the nested blocks that apply to state onto the top level
// declarations and drops the rest.
func Flatten(s *style.Style, state State) *style.Style {
	out := style.NewStyle()
	var applicable []*style.Style
	for _, key := range s.Keys() {
		value, _ := s.Get(key)
		block, ok := value.(*style.Style)
		if !ok {
			out.Set(key, value)
			continue
		}
		if applies(key, state) {
			applicable = append(applicable, Flatten(block, state))
		}
	}
	for _, block := range applicable {
		out.Merge(block)
	}
	return out
}

func applies(selector string, state State) bool {
	if strings.HasPrefix(selector, "@media") {
		minWidth, ok := mediaMinWidth(selector)
		return ok && state.Width > 0 && state.Width*cellWidthPx >= minWidth
	}
	for _, part := range splitSelectors(selector) {
		switch part {
		case "&:hover":
			if state.Hover {
				return true
			}
		case "&:focus", "&:focus-within":
			if state.Focus {
				return true
			}
		}
	}
	return false
}

func mediaMinWidth(query string) (int, bool) {
	var px int
	if _, err := fmt.Sscanf(query, "@media (min-width: %dpx)", &px); err != nil {
		return 0, false
	}
	return px, true
}

// Terminal converts a resolved style into a lipgloss style. Lengths are
// mapped to cells at 8px per column and 16px per row; translucent colours
// lose their alpha.
func Terminal(s *style.Style, state State) lipgloss.Style {
	flat := Flatten(s, state)
	get := func(key string) (string, bool) {
		value, ok := flat.Get(key)
		if !ok {
			return "", false
		}
		text, ok := FormatValue(key, value)
		return text, ok
	}

	out := lipgloss.NewStyle()

	if c, ok := terminalColor(get("color")); ok {
		out = out.Foreground(c)
	}
	if c, ok := terminalColor(get("backgroundColor")); ok {
		out = out.Background(c)
	}

	out = applyBox(out, get, "padding", lipgloss.Style.Padding, lipgloss.Style.PaddingTop, lipgloss.Style.PaddingRight, lipgloss.Style.PaddingBottom, lipgloss.Style.PaddingLeft)
	out = applyBox(out, get, "margin", lipgloss.Style.Margin, lipgloss.Style.MarginTop, lipgloss.Style.MarginRight, lipgloss.Style.MarginBottom, lipgloss.Style.MarginLeft)
	out = applyBorder(out, flat, get)

	if weight, ok := get("fontWeight"); ok && (weight == "bold" || atLeast(weight, 600)) {
		out = out.Bold(true)
	}
	if v, ok := get("fontStyle"); ok && v == "italic" {
		out = out.Italic(true)
	}
	if v, ok := get("textDecoration"); ok {
		out = out.Underline(strings.Contains(v, "underline")).Strikethrough(strings.Contains(v, "line-through"))
	}
	if v, ok := get("opacity"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f < 1 {
			out = out.Faint(true)
		}
	}
	if v, ok := get("width"); ok {
		if cells, ok := cellsFor(v, cellWidthPx); ok {
			out = out.Width(cells)
		}
	}
	if v, ok := get("textAlign"); ok {
		switch v {
		case "center":
			out = out.Align(lipgloss.Center)
		case "right", "end":
			out = out.Align(lipgloss.Right)
		}
	}
	return out
}

func applyBox(
	out lipgloss.Style,
	get func(string) (string, bool),
	prop string,
	all func(lipgloss.Style, ...int) lipgloss.Style,
	top, right, bottom, left func(lipgloss.Style, int) lipgloss.Style,
) lipgloss.Style {
	if v, ok := get(prop); ok {
		h, hok := cellsFor(v, cellWidthPx)
		vert, vok := cellsFor(v, cellHeightPx)
		if hok && vok {
			out = all(out, vert, h)
		}
	}
	edges := []struct {
		suffix string
		per    int
		set    func(lipgloss.Style, int) lipgloss.Style
	}{
		{"Top", cellHeightPx, top},
		{"Right", cellWidthPx, right},
		{"Bottom", cellHeightPx, bottom},
		{"Left", cellWidthPx, left},
	}
	for _, edge := range edges {
		if v, ok := get(prop + edge.suffix); ok {
			if cells, ok := cellsFor(v, edge.per); ok {
				out = edge.set(out, cells)
			}
		}
	}
	return out
}

func applyBorder(out lipgloss.Style, flat *style.Style, get func(string) (string, bool)) lipgloss.Style {
	rounded := false
	for _, corner := range []string{"borderRadius", "borderTopLeftRadius", "borderTopRightRadius", "borderBottomLeftRadius", "borderBottomRightRadius"} {
		if v, ok := get(corner); ok && v != "0" {
			rounded = true
		}
	}

	if styleName, ok := get("borderStyle"); ok {
		width, _ := get("borderWidth")
		if border, ok := lipglossBorder(styleName, width, rounded); ok {
			out = out.BorderStyle(border).BorderTop(true).BorderRight(true).BorderBottom(true).BorderLeft(true)
		}
		if c, ok := terminalColor(get("borderColor")); ok {
			out = out.BorderForeground(c)
		}
	}

	edges := []struct {
		name string
		set  func(lipgloss.Style, bool) lipgloss.Style
		fg   func(lipgloss.Style, lipgloss.TerminalColor) lipgloss.Style
	}{
		{"borderTop", lipgloss.Style.BorderTop, lipgloss.Style.BorderTopForeground},
		{"borderRight", lipgloss.Style.BorderRight, lipgloss.Style.BorderRightForeground},
		{"borderBottom", lipgloss.Style.BorderBottom, lipgloss.Style.BorderBottomForeground},
		{"borderLeft", lipgloss.Style.BorderLeft, lipgloss.Style.BorderLeftForeground},
	}
	for _, edge := range edges {
		styleName, ok := get(edge.name + "Style")
		if !ok {
			continue
		}
		width, _ := get(edge.name + "Width")
		border, visible := lipglossBorder(styleName, width, rounded)
		if !visible {
			out = edge.set(out, false)
			continue
		}
		if _, hasAll := flat.Get("borderStyle"); !hasAll {
			out = out.BorderStyle(border)
		}
		out = edge.set(out, true)
		if c, ok := terminalColor(get(edge.name + "Color")); ok {
			out = edge.fg(out, c)
		}
	}
	return out
}

func lipglossBorder(styleName, width string, rounded bool) (lipgloss.Border, bool) {
	switch styleName {
	case "none", "hidden":
		return lipgloss.Border{}, false
	case "double":
		return lipgloss.DoubleBorder(), true
	case "dashed", "dotted":
		return lipgloss.ASCIIBorder(), true
	}
	if px, ok := pixels(width); ok && px >= 2 {
		return lipgloss.ThickBorder(), true
	}
	if rounded {
		return lipgloss.RoundedBorder(), true
	}
	return lipgloss.NormalBorder(), true
}

// terminalColor converts a CSS colour into a lipgloss colour.
func terminalColor(value string, ok bool) (lipgloss.TerminalColor, bool) {
	if !ok || value == "" {
		return nil, false
	}
	if strings.HasPrefix(value, "#") {
		if _, err := colorful.Hex(value); err != nil {
			return nil, false
		}
		return lipgloss.Color(value), true
	}
	if strings.HasPrefix(value, "rgba(") || strings.HasPrefix(value, "rgb(") {
		var r, g, b int
		var a float64
		body := value[strings.Index(value, "(")+1 : len(value)-1]
		n, _ := fmt.Sscanf(body, "%d, %d, %d, %g", &r, &g, &b, &a)
		if n < 3 {
			return nil, false
		}
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		return lipgloss.Color(c.Clamped().Hex()), true
	}
	return nil, false
}

func pixels(value string) (float64, bool) {
	if value == "0" {
		return 0, true
	}
	number := strings.TrimSuffix(value, "px")
	if number == value {
		return 0, false
	}
	f, err := strconv.ParseFloat(number, 64)
	return f, err == nil
}

func cellsFor(value string, per int) (int, bool) {
	px, ok := pixels(value)
	if !ok {
		return 0, false
	}
	return int(math.Round(px / float64(per))), true
}

func atLeast(value string, n int) bool {
	v, err := strconv.Atoi(value)
	return err == nil && v >= n
}

// Cells converts a CSS length into terminal cells along one axis.
func Cells(value string, horizontal bool) (int, bool) {
	if horizontal {
		return cellsFor(value, cellWidthPx)
	}
	return cellsFor(value, cellHeightPx)
}

// Color converts a resolved CSS colour into a lipgloss colour.
func Color(value string) (lipgloss.TerminalColor, bool) {
	return terminalColor(value, true)
}
