package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile  string
	theme       string
	tokens      string
	logLevel    string
	verbose     bool
	humanLogs   bool
	diagnostics bool
	noColor     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylebox",
		Short:         "stylebox resolves design-token style props into concrete CSS values",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Path to a stylebox.yaml settings file")
	pf.StringVar(&flags.theme, "theme", "light", "Colour theme (light, dark or one defined in --tokens)")
	pf.StringVar(&flags.tokens, "tokens", "", "YAML or TOML file overriding the built-in token tables")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&flags.humanLogs, "human-logs", true, "Write human readable logs instead of JSON")
	pf.BoolVar(&flags.diagnostics, "diagnostics", false, "Warn about dropped props and unknown colour tokens")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable syntax highlighting")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newAdjustCmd(flags))
	cmd.AddCommand(newHandlersCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
