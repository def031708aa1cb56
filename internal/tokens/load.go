package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Overrides is the on-disk shape of a token file. Every table is optional;
// entries replace or extend the built-in defaults. Breakpoints, when given,
// replace the default list wholesale.
type Overrides struct {
	Breakpoints  []Breakpoint                 `yaml:"breakpoints,omitempty" toml:"breakpoints,omitempty" validate:"omitempty,dive"`
	Palette      map[string]Shades            `yaml:"palette,omitempty" toml:"palette,omitempty" validate:"omitempty,dive,keys,alpha,endkeys,dive,keys,oneof=100 200 300 400 500 600 700,endkeys,hexcolor"`
	Utility      map[string]string            `yaml:"utility,omitempty" toml:"utility,omitempty" validate:"omitempty,dive,keys,alpha,endkeys,required"`
	Themes       map[string]map[string]string `yaml:"themes,omitempty" toml:"themes,omitempty" validate:"omitempty,dive,keys,alpha,endkeys,dive,keys,required,endkeys,swatch"`
	Spacing      map[string]string            `yaml:"spacing,omitempty" toml:"spacing,omitempty" validate:"omitempty,dive,keys,required,endkeys,css_length"`
	Radii        map[string]string            `yaml:"radii,omitempty" toml:"radii,omitempty" validate:"omitempty,dive,keys,required,endkeys,css_length"`
	Borders      map[string]BorderStyle       `yaml:"borders,omitempty" toml:"borders,omitempty" validate:"omitempty,dive"`
	Shadows      map[string]string            `yaml:"shadows,omitempty" toml:"shadows,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`
	ZIndices     map[string]int               `yaml:"z_indices,omitempty" toml:"z_indices,omitempty"`
	FontSizes    map[string]FontSize          `yaml:"font_sizes,omitempty" toml:"font_sizes,omitempty" validate:"omitempty,dive"`
	LineHeights  map[string]string            `yaml:"line_heights,omitempty" toml:"line_heights,omitempty" validate:"omitempty,dive,required"`
	FontWeights  map[string]string            `yaml:"font_weights,omitempty" toml:"font_weights,omitempty" validate:"omitempty,dive,numeric"`
	FontFamilies map[string]string            `yaml:"font_families,omitempty" toml:"font_families,omitempty" validate:"omitempty,dive,required"`
	Durations    map[string]string            `yaml:"durations,omitempty" toml:"durations,omitempty" validate:"omitempty,dive,css_time"`
	Easings      map[string]string            `yaml:"easings,omitempty" toml:"easings,omitempty" validate:"omitempty,dive,required"`
	Animations   map[string]string            `yaml:"animations,omitempty" toml:"animations,omitempty" validate:"omitempty,dive,required"`
	Sizes        map[string]string            `yaml:"sizes,omitempty" toml:"sizes,omitempty" validate:"omitempty,dive,css_length"`
}

// LoadOverrides reads a YAML or TOML token file and validates it.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, styleboxerrors.NewParseError(path, 0, err)
	}

	overrides, err := DecodeOverrides(data, filepath.Ext(path))
	if err != nil {
		var parseErr *styleboxerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}

	if err := Validate(overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

// DecodeOverrides decodes token overrides; ext selects the format (".toml"
// for TOML, anything else is read as YAML).
func DecodeOverrides(data []byte, ext string) (*Overrides, error) {
	var o Overrides
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&o); err != nil {
			return nil, styleboxerrors.NewParseError("tokens", tomlLine(err), err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil {
			return nil, styleboxerrors.NewParseError("tokens", yamlLine(err), err)
		}
	}
	return &o, nil
}

// Load returns the default tables with the overrides file at path applied.
// An empty path yields the defaults.
func Load(path string) (*Tables, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return Default().Merge(overrides), nil
}

// Merge returns a copy of t with the overrides applied.
func (t *Tables) Merge(o *Overrides) *Tables {
	out := t.Clone()
	if o == nil {
		return out
	}

	if len(o.Breakpoints) > 0 {
		out.Breakpoints = append([]Breakpoint(nil), o.Breakpoints...)
	}
	for core, s := range o.Palette {
		existing, ok := out.Palette[core]
		if !ok {
			existing = Shades{}
			out.Palette[core] = existing
		}
		for step, hex := range s {
			existing[step] = hex
		}
	}
	for theme, aliases := range o.Themes {
		name := ThemeName(theme)
		existing, ok := out.Themes[name]
		if !ok {
			existing = map[string]string{}
			out.Themes[name] = existing
		}
		for alias, swatch := range aliases {
			existing[alias] = swatch
		}
	}
	mergeStrings(out.Utility, o.Utility)
	mergeStrings(out.Spacing, o.Spacing)
	mergeStrings(out.Radii, o.Radii)
	mergeStrings(out.Shadows, o.Shadows)
	mergeStrings(out.LineHeights, o.LineHeights)
	mergeStrings(out.FontWeights, o.FontWeights)
	mergeStrings(out.FontFamilies, o.FontFamilies)
	mergeStrings(out.Durations, o.Durations)
	mergeStrings(out.Easings, o.Easings)
	mergeStrings(out.Animations, o.Animations)
	mergeStrings(out.Sizes, o.Sizes)
	for k, v := range o.Borders {
		out.Borders[k] = v
	}
	for k, v := range o.ZIndices {
		out.ZIndices[k] = v
	}
	for k, v := range o.FontSizes {
		out.FontSizes[k] = v
	}
	return out
}

func mergeStrings(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
