package style

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStyleKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := Of("display", "flex", "alignItems", "center")
	s.Set("display", "grid")
	s.Set("gap", "8px")

	assert.Equal(t, []string{"display", "alignItems", "gap"}, s.Keys())
	value, _ := s.Get("display")
	assert.Equal(t, "grid", value)
}

func TestStyleMergeOverrides(t *testing.T) {
	t.Parallel()

	base := Of("display", "flex", "color", "#000000")
	base.Merge(Of("color", "#ffffff", "gap", "4px"))
	base.Merge(nil)

	assert.Equal(t, map[string]any{"display": "flex", "color": "#ffffff", "gap": "4px"}, base.ToMap())

	clone := base.Clone()
	clone.Set("display", "block")
	value, _ := base.Get("display")
	assert.Equal(t, "flex", value)
}

func TestStyleMarshalJSONIsOrdered(t *testing.T) {
	t.Parallel()

	s := Of("zIndex", 10, "color", "#000000", "&:hover", Of("color", "#ffffff"))

	var buf bytes.Buffer
	require.NoError(t, s.EncodeJSON(&buf, ""))
	assert.Equal(t, `{"zIndex":10,"color":"#000000","&:hover":{"color":"#ffffff"}}`+"\n", buf.String())

	data, err := json.Marshal(NewStyle())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var decoded map[string]any
	data, err = json.Marshal(s)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{"color": "#ffffff"}, decoded["&:hover"])
}

func TestStyleMarshalYAMLIsOrdered(t *testing.T) {
	t.Parallel()

	s := Of("padding", "16px", "@media (min-width: 640px)", Of("padding", "24px"), "color", "#000000")
	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	root := doc.Content[0]
	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	assert.Equal(t, []string{"padding", "@media (min-width: 640px)", "color"}, keys)
	assert.Equal(t, "24px", root.Content[3].Content[1].Value)
}

func TestNilStyleAccessors(t *testing.T) {
	t.Parallel()

	var s *Style
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Keys())
	assert.Empty(t, s.ToMap())
	_, ok := s.Get("color")
	assert.False(t, ok)
}

func TestPropsKeysSkipUnset(t *testing.T) {
	t.Parallel()

	p := Props{"b": 1, "a": nil, "c": Unset}
	assert.Equal(t, []string{"a", "b"}, p.Keys())

	_, ok := p.Get("c")
	assert.False(t, ok)
	value, ok := p.Get("a")
	assert.True(t, ok)
	assert.Nil(t, value)
}
