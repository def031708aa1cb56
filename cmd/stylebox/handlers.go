package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylebox/internal/style"
)

type handlersOptions struct {
	jsonOutput bool
}

type handlerInfo struct {
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Aliases  []string       `json:"aliases,omitempty"`
	Defaults map[string]any `json:"defaults,omitempty"`
	Reads    []string       `json:"reads,omitempty"`
}

func newHandlersCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &handlersOptions{}

	cmd := &cobra.Command{
		Use:   "handlers",
		Short: "List the registered style prop handlers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandlers(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runHandlers(cmd *cobra.Command, rootFlags *rootFlags, opts *handlersOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	handlers := app.Registry.Handlers()
	infos := make([]handlerInfo, 0, len(handlers))
	for _, h := range handlers {
		infos = append(infos, describeHandler(h))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tKIND\tALIASES\tDEFAULTS\tREADS")
	for _, info := range infos {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			info.Name,
			info.Kind,
			orDash(strings.Join(info.Aliases, ", ")),
			orDash(formatDefaults(info.Defaults)),
			orDash(strings.Join(info.Reads, ", ")),
		)
	}
	return writer.Flush()
}

func describeHandler(h style.Handler) handlerInfo {
	return handlerInfo{
		Name:     h.Name,
		Kind:     style.Kind(h.Options),
		Aliases:  h.Aliases,
		Defaults: h.Defaults.ToMap(),
		Reads:    h.SiblingsFor(h.Name),
	}
}

func formatDefaults(defaults map[string]any) string {
	if len(defaults) == 0 {
		return ""
	}
	data, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Sprint(defaults)
	}
	return string(data)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
