package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylebox/internal/config"
	"github.com/alexisbeaulieu97/stylebox/internal/logger"
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

// AppContext bundles the services a command needs, built from the resolved
// settings.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Tables   *tokens.Tables
	Theme    tokens.ThemeName
	Registry *style.Registry
	Resolver *style.Resolver
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	settings, err := config.Load(config.Options{File: flags.configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Check the --config file and STYLEBOX_* environment variables.")
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: settings.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	tables, err := tokens.Load(settings.Tokens)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading token overrides", err, "Fix the token file or drop the --tokens flag.")
	}

	theme, err := selectTheme(tables, settings.Theme)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "selecting the theme", err, "Use a theme defined by the built-in tokens or by the --tokens file.")
	}

	reg, err := style.NewBuiltinRegistry(tables)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "building the handler registry", err, "Custom breakpoint names must not collide with existing props.")
	}

	resolver := style.NewResolver(
		style.WithRegistry(reg),
		style.WithTheme(theme),
		style.WithLogger(log),
		style.WithDiagnostics(settings.Diagnostics),
	)

	log.DebugFields("settings loaded", map[string]any{
		"config": settings.File,
		"theme":  settings.Theme,
		"tokens": settings.Tokens,
	})

	return &AppContext{
		Settings: settings,
		Logger:   log,
		Tables:   tables,
		Theme:    theme,
		Registry: reg,
		Resolver: resolver,
	}, nil
}

// selectTheme matches name case-insensitively against the loaded token themes.
func selectTheme(tables *tokens.Tables, name string) (tokens.ThemeName, error) {
	names := tables.ThemeNames()
	known := make([]string, 0, len(names))
	for _, candidate := range names {
		if strings.EqualFold(string(candidate), name) {
			return candidate, nil
		}
		known = append(known, string(candidate))
	}
	return "", styleboxerrors.NewValidationError("theme",
		fmt.Sprintf("%q is not one of [%s]", name, strings.Join(known, " ")), nil)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
