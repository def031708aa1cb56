package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylebox/internal/watch"
	"github.com/alexisbeaulieu97/stylebox/pkg/diff"
)

type watchOptions struct {
	resolveOptions
	diff bool
}

func newWatchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-resolve a props file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format (json, yaml, css)")
	cmd.Flags().StringVar(&opts.selector, "selector", "", "CSS selector for css output (defaults to a generated class)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "After the first render, print only a diff against the previous output")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, rootFlags *rootFlags, path string, opts *watchOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	events, err := watch.Watch(ctx, path, watch.WithLogger(app.Logger))
	if err != nil {
		return newCommandError("watch", fmt.Sprintf("watching %s", path), err, "Make sure the file's directory exists.")
	}

	var previous string
	rendered := false
	emit := func() {
		props, err := readProps(path, nil)
		if err != nil {
			app.Logger.Error(err, "failed to read props")
			return
		}
		out, err := formatStyle(app.Resolver.Resolve(props), app.Settings.Format, opts.selector)
		if err != nil {
			app.Logger.Error(err, "failed to encode style")
			return
		}

		text, format := out, app.Settings.Format
		if opts.diff && rendered {
			removed, added := diff.Changed(previous, out)
			app.Logger.DebugFields("resolved style changed", map[string]any{"removed": removed, "added": added})
			text, format = diff.Lines(previous, out, "previous", "current"), "diff"
			if text == "" {
				text = "(no changes)\n"
			}
		}
		previous, rendered = out, true

		if err := writeOutput(cmd.OutOrStdout(), text, format, rootFlags.noColor); err != nil {
			app.Logger.Error(err, "failed to write output")
		}
	}

	emit()
	app.Logger.Info(fmt.Sprintf("watching %s", path))

	for ev := range events {
		app.Logger.DebugFields("props file changed", map[string]any{"path": ev.Path, "op": ev.Op.String()})
		fmt.Fprintln(cmd.OutOrStdout(), "---")
		emit()
	}
	return nil
}
