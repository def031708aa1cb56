// Package config loads stylebox CLI settings from a config file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment override (STYLEBOX_THEME, ...).
	EnvPrefix = "STYLEBOX"
	// FileName is the config file base name searched for when no explicit
	// path is given.
	FileName = "stylebox"
)

// Settings are the resolved CLI settings.
type Settings struct {
	Theme       string `mapstructure:"theme" validate:"required,alpha"`
	LogLevel    string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	HumanLogs   bool   `mapstructure:"human_logs"`
	Tokens      string `mapstructure:"tokens"`
	Format      string `mapstructure:"format" validate:"oneof=json yaml css"`
	Diagnostics bool   `mapstructure:"diagnostics"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config path. When empty, stylebox.yaml is searched
	// for in the working directory and the user config directory.
	File string
	// Flags are bound by name: theme, log-level, human-logs, tokens, format
	// and diagnostics. Only flags changed on the command line take effect.
	Flags *pflag.FlagSet
}

var flagKeys = map[string]string{
	"theme":       "theme",
	"log_level":   "log-level",
	"human_logs":  "human-logs",
	"tokens":      "tokens",
	"format":      "format",
	"diagnostics": "diagnostics",
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Theme:     "light",
		LogLevel:  "info",
		HumanLogs: true,
		Format:    "json",
	}
}

// Load resolves settings from defaults, the config file, STYLEBOX_* env and
// flags.
func Load(opts Options) (*Settings, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("human_logs", defaults.HumanLogs)
	v.SetDefault("tokens", defaults.Tokens)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("diagnostics", defaults.Diagnostics)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if flag := opts.Flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfig(v, opts.File); err != nil {
		return nil, err
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, styleboxerrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}
	settings.Theme = strings.ToLower(strings.TrimSpace(settings.Theme))
	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))
	settings.Format = strings.ToLower(strings.TrimSpace(settings.Format))
	settings.File = v.ConfigFileUsed()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file %s: %w", file, err)
	}
	return styleboxerrors.NewParseError(v.ConfigFileUsed(), 0, err)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks settings values, reporting the first invalid field.
func (s Settings) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return styleboxerrors.NewValidationError("settings", err.Error(), err)
	}

	fe := fieldErrs[0]
	field := settingName(fe.StructField())
	value := fmt.Sprint(fe.Value())
	switch fe.Tag() {
	case "oneof":
		return styleboxerrors.NewValidationError(field, fmt.Sprintf("%q is not one of [%s]", value, fe.Param()), err)
	case "required":
		return styleboxerrors.NewValidationError(field, "value is required", err)
	case "alpha":
		return styleboxerrors.NewValidationError(field, fmt.Sprintf("%q must contain only letters", value), err)
	default:
		return styleboxerrors.NewValidationError(field, fmt.Sprintf("%q failed %s", value, fe.Tag()), err)
	}
}

func settingName(field string) string {
	switch field {
	case "LogLevel":
		return "log_level"
	case "HumanLogs":
		return "human_logs"
	default:
		return strings.ToLower(field)
	}
}
