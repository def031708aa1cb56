package main

import (
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	format   string
	selector string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Resolve a props file into a style",
		Long: `Resolve reads style props from a YAML or JSON file (stdin when no file is
given or the file is "-") and prints the resolved style as JSON, YAML or CSS.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runResolve(cmd, rootFlags, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format (json, yaml, css)")
	cmd.Flags().StringVar(&opts.selector, "selector", "", "CSS selector for css output (defaults to a generated class)")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *resolveOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	props, err := readProps(path, cmd.InOrStdin())
	if err != nil {
		return newCommandError("resolve", "reading props", err, "Props must be a YAML or JSON object.")
	}

	resolved := app.Resolver.Resolve(props)
	app.Logger.DebugFields("props resolved", map[string]any{"props": len(props), "keys": resolved.Len()})

	out, err := formatStyle(resolved, app.Settings.Format, opts.selector)
	if err != nil {
		return newCommandError("resolve", "encoding the style", err, "Try a different --format.")
	}
	return writeOutput(cmd.OutOrStdout(), out, app.Settings.Format, rootFlags.noColor)
}
