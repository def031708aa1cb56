package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stylebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("theme", "light", "")
	fs.String("log-level", "info", "")
	fs.Bool("human-logs", true, "")
	fs.String("tokens", "", "")
	fs.String("format", "json", "")
	fs.Bool("diagnostics", false, "")
	return fs
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	settings, err := Load(Options{})
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Theme, settings.Theme)
	assert.Equal(t, want.LogLevel, settings.LogLevel)
	assert.Equal(t, want.Format, settings.Format)
	assert.True(t, settings.HumanLogs)
	assert.False(t, settings.Diagnostics)
}

func TestLoadReadsExplicitFile(t *testing.T) {
	path := writeConfig(t, "theme: dark\nlog_level: debug\nformat: css\ndiagnostics: true\ntokens: ./tokens.yaml\n")

	settings, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "css", settings.Format)
	assert.True(t, settings.Diagnostics)
	assert.Equal(t, "./tokens.yaml", settings.Tokens)
	assert.Equal(t, path, settings.File)
}

func TestLoadFindsFileInWorkingDirectory(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")
	t.Chdir(filepath.Dir(path))

	settings, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "theme: dark\nformat: yaml\nlog_level: warn\n")
	t.Setenv("STYLEBOX_FORMAT", "css")
	t.Setenv("STYLEBOX_LOG_LEVEL", "error")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	settings, err := Load(Options{File: path, Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme, "config file beats defaults and unchanged flags")
	assert.Equal(t, "css", settings.Format, "env beats config file")
	assert.Equal(t, "debug", settings.LogLevel, "changed flag beats env")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "theme: \"sepia 2\"\n")

	_, err := Load(Options{File: path})
	require.Error(t, err)

	var validationErr *styleboxerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "theme", validationErr.Field)
	assert.Contains(t, validationErr.Message, "sepia 2")
}

func TestLoadAcceptsThemesOutsideBuiltins(t *testing.T) {
	path := writeConfig(t, "theme: Sepia\n")

	settings, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "sepia", settings.Theme)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "theme: [dark\n")

	_, err := Load(Options{File: path})
	require.Error(t, err)

	var parseErr *styleboxerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{name: "defaults are valid", mutate: func(*Settings) {}},
		{name: "bad format", mutate: func(s *Settings) { s.Format = "xml" }, field: "format"},
		{name: "bad level", mutate: func(s *Settings) { s.LogLevel = "loud" }, field: "log_level"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := Default()
			tc.mutate(&s)
			err := s.Validate()
			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *styleboxerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}
