// Package render turns resolved styles into output a runtime can use: CSS
// rules in a Sheet, or lipgloss styles for terminal rendering.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/cespare/xxhash/v2"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

const classPrefix = "sb-"

// unitless lists properties whose numeric values carry no unit.
var unitless = map[string]bool{
	"zIndex":                  true,
	"opacity":                 true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"order":                   true,
	"fontWeight":              true,
	"lineHeight":              true,
	"animationIterationCount": true,
	"aspectRatio":             true,
}

// Sheet collects compiled rules keyed by class name. It is safe for
// concurrent use; each distinct style is compiled once.
type Sheet struct {
	mu    sync.RWMutex
	rules map[string]string
	order []string
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{rules: map[string]string{}}
}

// ClassName derives a stable class name from the style's content.
func ClassName(s *style.Style) string {
	var buf bytes.Buffer
	if err := s.EncodeJSON(&buf, ""); err != nil {
		buf.WriteString(fmt.Sprint(s.ToMap()))
	}
	return classPrefix + strconv.FormatUint(xxhash.Sum64(buf.Bytes()), 36)
}

// Add compiles s under its class name and returns the class.
func (sh *Sheet) Add(s *style.Style) string {
	class := ClassName(s)

	sh.mu.RLock()
	_, exists := sh.rules[class]
	sh.mu.RUnlock()
	if exists {
		return class
	}

	css := Compile("."+class, s)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, exists := sh.rules[class]; !exists {
		sh.rules[class] = css
		sh.order = append(sh.order, class)
	}
	return class
}

// Rule returns the compiled CSS for a class.
func (sh *Sheet) Rule(class string) (string, bool) {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	css, ok := sh.rules[class]
	return css, ok
}

// Len returns the number of compiled classes.
func (sh *Sheet) Len() int {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return len(sh.order)
}

// CSS returns every rule in the order classes were added.
func (sh *Sheet) CSS() string {
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	var b strings.Builder
	for _, class := range sh.order {
		b.WriteString(sh.rules[class])
	}
	return b.String()
}

// Compile renders s as CSS rules for selector. Nested selector keys replace
// '&' with the parent selector; at-rules wrap the parent selector.
func Compile(selector string, s *style.Style) string {
	var b strings.Builder
	writeRules(&b, selector, s, "")
	return b.String()
}

func writeRules(b *strings.Builder, selector string, s *style.Style, indent string) {
	var decls []string
	var nested []string
	for _, key := range s.Keys() {
		value, _ := s.Get(key)
		if _, ok := value.(*style.Style); ok {
			nested = append(nested, key)
			continue
		}
		if text, ok := FormatValue(key, value); ok {
			decls = append(decls, Kebab(key)+": "+text+";")
		}
	}

	if len(decls) > 0 {
		fmt.Fprintf(b, "%s%s {\n", indent, selector)
		for _, decl := range decls {
			fmt.Fprintf(b, "%s  %s\n", indent, decl)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	}

	for _, key := range nested {
		block, _ := s.Nested(key)
		if strings.HasPrefix(key, "@") {
			var inner strings.Builder
			writeRules(&inner, selector, block, indent+"  ")
			if inner.Len() == 0 {
				continue
			}
			fmt.Fprintf(b, "%s%s {\n%s%s}\n", indent, key, inner.String(), indent)
			continue
		}
		writeRules(b, expandSelector(key, selector), block, indent)
	}
}

func expandSelector(key, parent string) string {
	parents := splitSelectors(parent)
	var out []string
	for _, part := range splitSelectors(key) {
		for _, p := range parents {
			if strings.Contains(part, "&") {
				out = append(out, strings.ReplaceAll(part, "&", p))
			} else {
				out = append(out, p+" "+part)
			}
		}
	}
	return strings.Join(out, ", ")
}

func splitSelectors(selector string) []string {
	parts := strings.Split(selector, ",")
	out := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// FormatValue renders a declaration value. Numbers get px unless the
// property is unitless or the value is zero; nil and booleans are skipped.
func FormatValue(prop string, value any) (string, bool) {
	switch v := value.(type) {
	case nil, bool:
		return "", false
	case string:
		return v, true
	case int:
		return withUnit(prop, strconv.Itoa(v), v == 0), true
	case int64:
		return withUnit(prop, strconv.FormatInt(v, 10), v == 0), true
	case float64:
		return withUnit(prop, strconv.FormatFloat(v, 'f', -1, 64), v == 0), true
	case []string:
		return strings.Join(v, " "), true
	default:
		return fmt.Sprint(v), true
	}
}

func withUnit(prop, number string, zero bool) string {
	if zero || unitless[prop] {
		return number
	}
	return number + "px"
}

// Kebab converts a camelCase property name to its CSS spelling.
func Kebab(prop string) string {
	var b strings.Builder
	for i, r := range prop {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Classes returns the class names in the sheet, sorted.
func (sh *Sheet) Classes() []string {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	out := append([]string(nil), sh.order...)
	sort.Strings(out)
	return out
}
