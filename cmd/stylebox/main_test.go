package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

const buttonProps = `padding: tight
color: primary
propsOnHover:
  color: primary
  colorLightness: "+100"
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolveJSONFromFile(t *testing.T) {
	path := writeFile(t, "button.yaml", buttonProps)

	out, _, err := execute(t, "", "resolve", path)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"padding": "8px",
		"color": "#a855f7",
		"&:hover, &:focus, &:focus-within": {"color": "#9333ea"}
	}`, out)
	assert.Less(t, strings.Index(out, `"padding"`), strings.Index(out, `"color"`))
}

func TestResolveReadsStdinAsJSON(t *testing.T) {
	out, _, err := execute(t, `{"color": "text"}`, "resolve", "--theme", "dark")
	require.NoError(t, err)
	assert.JSONEq(t, `{"color": "#f1f5f9"}`, out)
}

func TestResolveYAMLAndCSS(t *testing.T) {
	path := writeFile(t, "button.yaml", buttonProps)

	out, _, err := execute(t, "", "resolve", path, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "padding: 8px\n")
	assert.Contains(t, out, "&:hover, &:focus, &:focus-within")

	out, _, err = execute(t, "", "resolve", path, "--format", "css", "--selector", ".btn")
	require.NoError(t, err)
	assert.Contains(t, out, ".btn {\n  padding: 8px;\n  color: #a855f7;\n}\n")
	assert.Contains(t, out, ".btn:hover, .btn:focus, .btn:focus-within {\n  color: #9333ea;\n}\n")

	out, _, err = execute(t, "", "resolve", path, "--format", "css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ".sb-"))
}

func TestResolveParseError(t *testing.T) {
	path := writeFile(t, "broken.yaml", "padding: tight\ncolor: [primary\n")

	_, _, err := execute(t, "", "resolve", path)
	require.Error(t, err)

	var parseErr *styleboxerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestResolveRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "{}", "resolve", "--format", "xml")
	require.Error(t, err)

	var validationErr *styleboxerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "format", validationErr.Field)
}

func TestResolveWithTokenOverrides(t *testing.T) {
	tokensPath := writeFile(t, "tokens.yaml", "spacing:\n  tight: 6px\n")

	out, _, err := execute(t, "padding: tight\n", "resolve", "--tokens", tokensPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"padding": "6px"}`, out)
}

func TestResolveDiagnosticsWarnsAboutDroppedProps(t *testing.T) {
	_, stderr, err := execute(t, "bogusProp: 1\n", "resolve", "--diagnostics", "--human-logs=false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "bogusProp")
}

func TestAdjustCommand(t *testing.T) {
	out, _, err := execute(t, "", "adjust", "primary", "--lightness", "+100")
	require.NoError(t, err)
	assert.Equal(t, "swatch: purple--600--100\ncss:    #9333ea\n", out)

	out, _, err = execute(t, "", "adjust", "primary", "--opacity", "50", "--json")
	require.NoError(t, err)

	var result adjustResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "purple--500--50", result.Swatch)
	assert.Equal(t, "rgba(168, 85, 247, 0.5)", result.CSS)
	assert.True(t, result.Known)
}

func TestAdjustRejectsBadLightness(t *testing.T) {
	_, _, err := execute(t, "", "adjust", "primary", "--lightness", "lighter")
	require.Error(t, err)

	var validationErr *styleboxerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "lightness", validationErr.Field)
}

func TestHandlersCommand(t *testing.T) {
	out, _, err := execute(t, "", "handlers")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "alignItems")
	assert.Contains(t, out, "propsAtMedium")

	out, _, err = execute(t, "", "handlers", "--json")
	require.NoError(t, err)

	var infos []handlerInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.NotEmpty(t, infos)
	assert.Equal(t, "alignItems", infos[0].Name)
	assert.Equal(t, "table", infos[0].Kind)
	assert.Equal(t, map[string]any{"display": "flex"}, infos[0].Defaults)

	for _, info := range infos {
		if info.Name == "color" {
			assert.Equal(t, "computed", info.Kind)
			assert.Contains(t, info.Reads, "colorLightness")
		}
	}
}

func TestInvalidThemeFlag(t *testing.T) {
	cases := []struct {
		name    string
		theme   string
		context string
	}{
		{name: "malformed name", theme: "sepia 2", context: "loading settings"},
		{name: "theme missing from tokens", theme: "sepia", context: "selecting the theme"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, "{}", "resolve", "--theme", tc.theme)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.context)

			var validationErr *styleboxerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "theme", validationErr.Field)
		})
	}
}

func TestThemeDefinedInTokenFile(t *testing.T) {
	tokensPath := writeFile(t, "tokens.yaml", "themes:\n  sepia:\n    text: purple--300\n")

	sepia, _, err := execute(t, "color: text\n", "resolve", "--tokens", tokensPath, "--theme", "sepia")
	require.NoError(t, err)
	light, _, err := execute(t, "color: text\n", "resolve", "--tokens", tokensPath, "--theme", "light")
	require.NoError(t, err)

	assert.Contains(t, sepia, `"color"`)
	assert.NotEqual(t, light, sepia)
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, "stylebox 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2025-10-03")
}
