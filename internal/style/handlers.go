package style

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
)

// maxGridTracks bounds the number of 1fr tracks a numeric columns or rows value expands to.
const maxGridTracks = 1000

var (
	flexProps    = []string{"justifyContent", "alignContent", "justifyItems", "flexDirection", "flexWrap"}
	edgeProps    = []string{"borderTop", "borderRight", "borderBottom", "borderLeft"}
	cornerProps  = []string{"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius"}
	colourProps  = []string{"backgroundColor", "borderColor", "borderTopColor", "borderRightColor", "borderBottomColor", "borderLeftColor", "outlineColor", "fill", "stroke", "caretColor"}
	axisProps    = []string{"marginY", "paddingX", "paddingY", "borderX", "borderY", "borderXColor", "borderYColor"}
	sizeProps    = []string{"height", "minWidth", "maxWidth", "minHeight", "maxHeight"}
	pseudoAlias  = []string{"propsOnFocus", "propsOnFirstChild", "propsOnLastChild", "propsOnAfter", "propsOnBefore"}
	axisPattern  = regexp.MustCompile(`^(margin|padding|border)([XY])(.*)$`)
	tokenPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*(--[0-9]+){0,2}$`)
)

var pseudoSelectors = map[string]string{
	"propsOnHover":      "&:hover, &:focus, &:focus-within",
	"propsOnFocus":      "&:focus, &:focus-within",
	"propsOnFirstChild": "&:first-child",
	"propsOnLastChild":  "&:last-child",
	"propsOnAfter":      "&:after",
	"propsOnBefore":     "&:before",
}

// Builtin returns the standard handler entries, in processing order, over
// the given token tables.
func Builtin(tables *tokens.Tables) []Handler {
	spacing := stringTable(tables.Spacing)

	handlers := []Handler{
		{Name: "alignItems", Aliases: flexProps, Defaults: Of("display", "flex"), Options: stringTable(tables.FlexKeywords)},
		{Name: "columns", Aliases: []string{"rows"}, Defaults: Of("display", "grid"), Options: ComputedResolver(resolveGridTemplate)},
		{Name: "gap", Aliases: []string{"rowGap", "columnGap"}, Options: spacing},
		{Name: "padding", Aliases: []string{"paddingTop", "paddingRight", "paddingBottom", "paddingLeft"}, Options: spacing},
		{Name: "margin", Aliases: []string{"marginTop", "marginRight", "marginBottom", "marginLeft"}, Options: spacing},
		{Name: "marginX", Aliases: axisProps, Options: ComputedResolver(resolveAxis), Reads: axisReads},
		{Name: "border", Aliases: edgeProps, Options: ComputedResolver(resolveBorder), Reads: suffixed("Color", "ColorLightness", "ColorOpacity")},
		{Name: "borderRadius", Aliases: cornerProps, Options: stringTable(tables.Radii)},
		{Name: "borderBottomRadius", Aliases: []string{"borderTopRadius", "borderLeftRadius", "borderRightRadius"}, Options: ComputedResolver(resolveEdgeRadius)},
		{Name: "color", Aliases: colourProps, Options: ComputedResolver(resolveColor), Reads: suffixed("Lightness", "Opacity")},
		{Name: "boxShadow", Options: stringTable(tables.Shadows)},
		{Name: "zIndex", Defaults: Of("position", "relative"), Options: intTable(tables.ZIndices)},
		{Name: "fontSize", Options: ComputedResolver(resolveFontSize), Reads: fixed("lineHeight")},
		{Name: "lineHeight", Options: stringTable(tables.LineHeights)},
		{Name: "fontWeight", Options: stringTable(tables.FontWeights)},
		{Name: "fontFamily", Options: stringTable(tables.FontFamilies)},
		{Name: "width", Aliases: sizeProps, Options: stringTable(tables.Sizes)},
		{
			Name:    "transitionDuration",
			Aliases: []string{"transitionProperty", "transitionTimingFunction"},
			Options: ComputedResolver(resolveTransition),
			Reads:   fixed("transitionDuration", "transitionProperty", "transitionTimingFunction"),
		},
		{Name: "animationName", Options: stringTable(tables.Animations)},
		{Name: "propsOnHover", Aliases: pseudoAlias, Options: ComputedResolver(resolvePseudo)},
	}

	for _, bp := range tables.SortedBreakpoints() {
		handlers = append(handlers, Handler{
			Name:    BreakpointProp(bp.Name),
			Options: ComputedResolver(mediaResolver(bp.MediaQuery())),
		})
	}

	return append(handlers, Handler{Name: "customSelectors", Options: ComputedResolver(resolveCustomSelectors)})
}

// BreakpointProp returns the nested prop name for a breakpoint.
func BreakpointProp(name string) string {
	return "propsAt" + upperFirst(name)
}

func stringTable(m map[string]string) TableLookup {
	table := make(TableLookup, len(m))
	for k, v := range m {
		table[k] = v
	}
	return table
}

func intTable(m map[string]int) TableLookup {
	table := make(TableLookup, len(m))
	for k, v := range m {
		table[k] = v
	}
	return table
}

func fixed(names ...string) func(string) []string {
	return func(string) []string {
		return names
	}
}

func suffixed(suffixes ...string) func(string) []string {
	return func(prop string) []string {
		out := make([]string, 0, len(suffixes))
		for _, s := range suffixes {
			out = append(out, prop+s)
		}
		return out
	}
}

func resolveGridTemplate(in Input) *Style {
	key := "gridTemplateColumns"
	if in.Prop == "rows" {
		key = "gridTemplateRows"
	}
	if n, ok := asInt(in.Value); ok && n > 0 {
		if n > maxGridTracks {
			in.Warn("grid track count too large", map[string]any{"prop": in.Prop, "value": n, "max": maxGridTracks})
			return Of(key, in.Value)
		}
		return Of(key, strings.TrimSuffix(strings.Repeat("1fr ", n), " "))
	}
	if parts, ok := asStrings(in.Value); ok {
		return Of(key, strings.Join(parts, " "))
	}
	return Of(key, in.Value)
}

func axisSuffixes(prop string) []string {
	m := axisPattern.FindStringSubmatch(prop)
	if m == nil {
		return nil
	}
	switch {
	case m[3] == "Color":
		return []string{"Lightness", "Opacity"}
	case m[1] == "border" && m[3] == "":
		return []string{"Color", "ColorLightness", "ColorOpacity"}
	default:
		return nil
	}
}

func axisReads(prop string) []string {
	return suffixed(axisSuffixes(prop)...)(prop)
}

// resolveAxis expands an X/Y shorthand into its two physical props and
// resolves those through the registry.
func resolveAxis(in Input) *Style {
	m := axisPattern.FindStringSubmatch(in.Prop)
	if m == nil {
		return Of(in.Prop, in.Value)
	}
	sides := []string{"Left", "Right"}
	if m[2] == "Y" {
		sides = []string{"Top", "Bottom"}
	}

	synthetic := Props{}
	for _, side := range sides {
		physical := m[1] + side + m[3]
		synthetic[physical] = in.Value
		for _, suffix := range axisSuffixes(in.Prop) {
			if v, ok := in.Sibling(in.Prop + suffix); ok {
				synthetic[physical+suffix] = v
			}
		}
	}
	return in.Resolve(synthetic)
}

func resolveBorder(in Input) *Style {
	edge := in.Prop
	key, ok := borderKey(in.Value)
	if !ok {
		return Of(edge, in.Value)
	}
	bs, found := in.Tables().Borders[key]
	if !found {
		return Of(edge, in.Value)
	}

	token := "border"
	if v, ok := in.Sibling(edge + "Color"); ok {
		if s, isString := v.(string); isString && s != "" {
			token = s
		}
	}
	lightness, _ := in.Sibling(edge + "ColorLightness")
	opacity, _ := in.Sibling(edge + "ColorOpacity")
	value, known := in.Color(token, lightness, opacity)
	if !known && tokenPattern.MatchString(token) {
		in.Warn("unknown border colour token", map[string]any{"prop": edge + "Color", "value": token})
	}

	return Of(edge+"Style", bs.Style, edge+"Width", bs.Width, edge+"Color", value)
}

func borderKey(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "normal", true
	case bool:
		if value {
			return "normal", true
		}
		return "none", true
	case string:
		if value == "" {
			return "normal", true
		}
		return value, true
	default:
		return "", false
	}
}

// resolveEdgeRadius derives the two corner props of a logical edge.
func resolveEdgeRadius(in Input) *Style {
	var corners []string
	switch {
	case strings.HasPrefix(in.Prop, "borderTop"), strings.HasPrefix(in.Prop, "borderBottom"):
		corners = []string{
			strings.Replace(in.Prop, "Radius", "LeftRadius", 1),
			strings.Replace(in.Prop, "Radius", "RightRadius", 1),
		}
	case strings.HasPrefix(in.Prop, "borderLeft"), strings.HasPrefix(in.Prop, "borderRight"):
		corners = []string{
			strings.Replace(in.Prop, "border", "borderTop", 1),
			strings.Replace(in.Prop, "border", "borderBottom", 1),
		}
	default:
		return Of(in.Prop, in.Value)
	}

	synthetic := Props{}
	for _, corner := range corners {
		synthetic[corner] = in.Value
	}
	return in.Resolve(synthetic)
}

func resolveColor(in Input) *Style {
	token, ok := in.Value.(string)
	if !ok || token == "" {
		return Of(in.Prop, in.Value)
	}
	lightness, _ := in.Sibling(in.Prop + "Lightness")
	opacity, _ := in.Sibling(in.Prop + "Opacity")
	value, known := in.Color(token, lightness, opacity)
	if !known && tokenPattern.MatchString(token) {
		in.Warn("unknown colour token", map[string]any{"prop": in.Prop, "value": token})
	}
	return Of(in.Prop, value)
}

func resolveFontSize(in Input) *Style {
	key, ok := tableKey(in.Value)
	if !ok {
		return Of("fontSize", in.Value)
	}
	size, found := in.Tables().FontSizes[key]
	if !found {
		return Of("fontSize", in.Value)
	}
	out := Of("fontSize", size.Size)
	if _, set := in.Sibling("lineHeight"); !set {
		out.Set("lineHeight", size.LineHeight)
	}
	return out
}

// resolveTransition reads all three transition props whichever one
// triggered it, so each missing part gets its default.
// durationMillis renders bare numbers as milliseconds.
func durationMillis(v any) any {
	switch value := v.(type) {
	case int:
		return strconv.Itoa(value) + "ms"
	case int64:
		return strconv.FormatInt(value, 10) + "ms"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64) + "ms"
	default:
		return v
	}
}

func resolveTransition(in Input) *Style {
	tables := in.Tables()

	duration := any("normal")
	if v, ok := in.Sibling("transitionDuration"); ok {
		duration = v
	}
	if key, ok := tableKey(duration); ok {
		if value, found := tables.Durations[key]; found {
			duration = value
		}
	}
	duration = durationMillis(duration)

	property := any("all")
	if v, ok := in.Sibling("transitionProperty"); ok {
		property = v
		if parts, isList := asStrings(v); isList {
			property = strings.Join(parts, ", ")
		}
	}

	timing := any("ease")
	if v, ok := in.Sibling("transitionTimingFunction"); ok {
		timing = v
	}
	if key, ok := tableKey(timing); ok {
		if value, found := tables.Easings[key]; found {
			timing = value
		}
	}

	return Of(
		"transitionDuration", duration,
		"transitionProperty", property,
		"transitionTimingFunction", timing,
	)
}
