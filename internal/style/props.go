package style

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Props is a bag of semantic style props. Values are primitives, slices or
// nested Props (map[string]any is accepted wherever Props is).
type Props map[string]any

type unset struct{}

// Unset marks a prop as not set. It behaves exactly like an absent key;
// nil, false, 0 and "" are real values and are resolved.
var Unset = unset{}

func isUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// Get returns the value of a set prop.
func (p Props) Get(name string) (any, bool) {
	v, ok := p[name]
	if !ok || isUnset(v) {
		return nil, false
	}
	return v, true
}

// Keys returns the names of set props in lexical order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if isUnset(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asProps(v any) (Props, bool) {
	switch value := v.(type) {
	case Props:
		return value, true
	case map[string]any:
		return Props(value), true
	default:
		return nil, false
	}
}

func asInt(v any) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		if value != math.Trunc(value) || value >= math.MaxInt64 || value < math.MinInt64 {
			return 0, false
		}
		return int(value), true
	default:
		return 0, false
	}
}

func asStrings(v any) ([]string, bool) {
	switch value := v.(type) {
	case []string:
		return value, true
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			out = append(out, fmt.Sprint(item))
		}
		return out, true
	default:
		return nil, false
	}
}

// tableKey converts a prop value into a token table key.
func tableKey(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case bool:
		if value {
			return "true", true
		}
		return "false", true
	case int, int64:
		return fmt.Sprint(value), true
	case float64:
		if n, ok := asInt(value); ok {
			return fmt.Sprint(n), true
		}
		return "", false
	default:
		return "", false
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
