package main

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// readProps reads a props document from path, or from stdin when path is
// empty or "-". JSON documents are accepted as YAML.
func readProps(path string, stdin io.Reader) (style.Props, error) {
	name := path
	var data []byte
	var err error
	if path == "" || path == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, styleboxerrors.NewParseError(name, 0, err)
	}
	return decodeProps(name, data)
}

func decodeProps(name string, data []byte) (style.Props, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return style.Props{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, styleboxerrors.NewParseError(name, extractLine(err), err)
	}
	return toProps(raw), nil
}

// toProps converts decoded maps into Props so nested prop objects are
// recognised at every depth.
func toProps(raw map[string]any) style.Props {
	props := make(style.Props, len(raw))
	for k, v := range raw {
		if nested, ok := v.(map[string]any); ok {
			props[k] = toProps(nested)
			continue
		}
		props[k] = v
	}
	return props
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
