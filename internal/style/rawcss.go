package style

// rawCSSProps are CSS properties without a handler that pass through
// untouched. Their position here is their processing order.
var rawCSSProps = []string{
	"display",
	"position",
	"top",
	"right",
	"bottom",
	"left",
	"inset",
	"overflow",
	"overflowX",
	"overflowY",
	"cursor",
	"content",
	"opacity",
	"visibility",
	"pointerEvents",
	"userSelect",
	"boxSizing",
	"flex",
	"flexGrow",
	"flexShrink",
	"flexBasis",
	"order",
	"alignSelf",
	"justifySelf",
	"gridColumn",
	"gridRow",
	"gridArea",
	"gridAutoFlow",
	"gridTemplateAreas",
	"aspectRatio",
	"objectFit",
	"textAlign",
	"textDecoration",
	"textTransform",
	"textOverflow",
	"whiteSpace",
	"wordBreak",
	"letterSpacing",
	"verticalAlign",
	"fontStyle",
	"listStyle",
	"outline",
	"outlineOffset",
	"transform",
	"transformOrigin",
	"filter",
	"backdropFilter",
	"mixBlendMode",
	"willChange",
	"animationDelay",
	"animationIterationCount",
	"animationFillMode",
	"appearance",
	"resize",
}

var rawCSSOrder = func() map[string]int {
	order := make(map[string]int, len(rawCSSProps))
	for i, name := range rawCSSProps {
		order[name] = i
	}
	return order
}()

// IsRawCSS reports whether name passes through unchanged.
func IsRawCSS(name string) bool {
	_, ok := rawCSSOrder[name]
	return ok
}

// RawCSSProps lists the pass-through properties in processing order.
func RawCSSProps() []string {
	return append([]string(nil), rawCSSProps...)
}
