package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylebox/internal/tui/showcase"
	"github.com/alexisbeaulieu97/stylebox/internal/ui/components"
)

func newShowcaseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse the component gallery in the terminal",
		Long:  `Launch an interactive gallery of components with their props and resolved styles. Press t to toggle the theme and q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			app.Logger.Debug("launching showcase")
			if err := showcase.Run(showcase.DefaultDemos(), components.NewTheme(app.Resolver)); err != nil {
				return fmt.Errorf("failed to run showcase: %w", err)
			}
			return nil
		},
	}

	return cmd
}
