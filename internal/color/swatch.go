package color

import (
	"strconv"
	"strings"
)

const (
	MinLightness     = 100
	MaxLightness     = 700
	LightnessStep    = 100
	DefaultLightness = 400

	MinOpacity     = 10
	MaxOpacity     = 100
	OpacityStep    = 10
	DefaultOpacity = 100
)

const separator = "--"

// Swatch is a parsed palette colour: a core name plus lightness and opacity.
type Swatch struct {
	Core      string
	Lightness int
	Opacity   int
}

// ParseSwatch parses "core", "core--lightness" or "core--lightness--opacity".
// Components outside their valid step grid make the token malformed.
func ParseSwatch(token string) (Swatch, bool) {
	parts := strings.Split(token, separator)
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return Swatch{}, false
	}

	sw := Swatch{Core: parts[0], Lightness: DefaultLightness, Opacity: DefaultOpacity}
	if len(parts) > 1 {
		l, ok := parseStep(parts[1], MinLightness, MaxLightness, LightnessStep)
		if !ok {
			return Swatch{}, false
		}
		sw.Lightness = l
	}
	if len(parts) > 2 {
		o, ok := parseStep(parts[2], MinOpacity, MaxOpacity, OpacityStep)
		if !ok {
			return Swatch{}, false
		}
		sw.Opacity = o
	}
	return sw, true
}

func parseStep(s string, lo, hi, step int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi || n%step != 0 {
		return 0, false
	}
	return n, true
}

// String serialises the swatch with all three segments.
func (s Swatch) String() string {
	return s.Core + separator + strconv.Itoa(s.Lightness) + separator + strconv.Itoa(s.Opacity)
}
