package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylebox/internal/render"
	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSS  = "css"
)

// formatStyle encodes a resolved style. CSS output uses selector, or the
// style's generated class name when selector is empty.
func formatStyle(s *style.Style, format, selector string) (string, error) {
	switch format {
	case formatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case formatCSS:
		if selector == "" {
			sheet := render.NewSheet()
			sheet.Add(s)
			return sheet.CSS(), nil
		}
		return render.Compile(selector, s), nil
	default:
		var b strings.Builder
		if err := s.EncodeJSON(&b, "  "); err != nil {
			return "", err
		}
		return b.String(), nil
	}
}

// writeOutput writes text, highlighted for format when w is a terminal.
func writeOutput(w io.Writer, text, format string, noColor bool) error {
	if !noColor && isTerminal(w) {
		if err := quick.Highlight(w, text, format, "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err := io.WriteString(w, text)
	return err
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
