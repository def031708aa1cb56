package style

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Style is the compiled output: CSS property names (camelCase) mapped to
// string or numeric values, plus nested *Style blocks keyed by selector or
// media query. Keys keep the position of their first insertion.
type Style struct {
	keys   []string
	values map[string]any
}

// NewStyle returns an empty style.
func NewStyle() *Style {
	return &Style{values: map[string]any{}}
}

// Of builds a style from alternating key/value arguments.
func Of(kv ...any) *Style {
	s := NewStyle()
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		s.Set(key, kv[i+1])
	}
	return s
}

// Set assigns key, keeping its original position if already present.
func (s *Style) Set(key string, value any) {
	if s.values == nil {
		s.values = map[string]any{}
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key.
func (s *Style) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Nested returns the nested block stored under a selector key.
func (s *Style) Nested(selector string) (*Style, bool) {
	v, ok := s.Get(selector)
	if !ok {
		return nil, false
	}
	nested, ok := v.(*Style)
	return nested, ok
}

// Keys returns the keys in insertion order.
func (s *Style) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Len returns the number of keys.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Merge copies every entry of other onto s, overriding shared keys.
func (s *Style) Merge(other *Style) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		s.Set(key, other.values[key])
	}
}

// Clone returns a shallow copy; nested blocks are shared.
func (s *Style) Clone() *Style {
	out := NewStyle()
	out.Merge(s)
	return out
}

// ToMap converts the style, including nested blocks, into plain maps.
func (s *Style) ToMap() map[string]any {
	out := make(map[string]any, s.Len())
	if s == nil {
		return out
	}
	for _, key := range s.keys {
		if nested, ok := s.values[key].(*Style); ok {
			out[key] = nested.ToMap()
			continue
		}
		out[key] = s.values[key]
	}
	return out
}

// MarshalJSON writes keys in insertion order. Selector characters such as
// '&' and '>' are written verbatim.
func (s *Style) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, s.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeJSON writes the style as indented JSON without HTML escaping.
func (s *Style) EncodeJSON(w io.Writer, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc.Encode(s)
}

func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// MarshalYAML emits an ordered mapping node.
func (s *Style) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range s.Keys() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(s.values[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
