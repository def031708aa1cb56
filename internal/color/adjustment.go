package color

import (
	"math"
	"strconv"
	"strings"
)

// Adjustment is an optional lightness or opacity change. The zero value
// means "no adjustment".
type Adjustment struct {
	value    int
	relative bool
	set      bool
}

// Absolute replaces the current component with n.
func Absolute(n int) Adjustment {
	return Adjustment{value: n, set: true}
}

// Relative adds delta to the current component.
func Relative(delta int) Adjustment {
	return Adjustment{value: delta, relative: true, set: true}
}

// IsSet reports whether the adjustment changes anything.
func (a Adjustment) IsSet() bool {
	return a.set
}

func (a Adjustment) String() string {
	switch {
	case !a.set:
		return ""
	case a.relative && a.value >= 0:
		return "+" + strconv.Itoa(a.value)
	default:
		return strconv.Itoa(a.value)
	}
}

// ParseAdjustment accepts the forms a style prop may carry: integers and
// floats are absolute, strings starting with "+" or "-" are relative and
// other numeric strings are absolute. Anything else yields no adjustment.
func ParseAdjustment(v any) (Adjustment, bool) {
	switch value := v.(type) {
	case nil:
		return Adjustment{}, false
	case Adjustment:
		return value, value.set
	case int:
		return Absolute(value), true
	case int64:
		return Absolute(int(value)), true
	case float64:
		return Absolute(int(math.Round(value))), true
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return Adjustment{}, false
		}
		relative := s[0] == '+' || s[0] == '-'
		n, err := strconv.Atoi(s)
		if err != nil {
			return Adjustment{}, false
		}
		if relative {
			return Relative(n), true
		}
		return Absolute(n), true
	default:
		return Adjustment{}, false
	}
}

// apply computes the new component value, pinned to [lo, hi] and snapped to
// the nearest multiple of step.
func (a Adjustment) apply(current, lo, hi, step int) int {
	if !a.set {
		return current
	}
	next := a.value
	if a.relative {
		next = current + clamp(a.value, lo-hi, hi-lo)
	}
	return snap(clamp(next, lo, hi), step)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func snap(v, step int) int {
	return int(math.Round(float64(v)/float64(step))) * step
}
