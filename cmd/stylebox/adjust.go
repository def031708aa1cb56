package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylebox/internal/color"
	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

type adjustOptions struct {
	lightness  string
	opacity    string
	jsonOutput bool
}

type adjustResult struct {
	Token  string `json:"token"`
	Theme  string `json:"theme"`
	Swatch string `json:"swatch"`
	CSS    string `json:"css"`
	Known  bool   `json:"known"`
}

func newAdjustCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &adjustOptions{}

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Apply lightness and opacity adjustments to a colour token",
		Long: `Adjust resolves a colour token (theme alias, swatch or utility colour) and
applies --lightness and --opacity. Values starting with + or - are relative,
bare numbers are absolute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjust(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lightness, "lightness", "l", "", "Lightness adjustment (e.g. +100, -200, 300)")
	cmd.Flags().StringVarP(&opts.opacity, "opacity", "o", "", "Opacity adjustment (e.g. 50, -10)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

func runAdjust(cmd *cobra.Command, rootFlags *rootFlags, token string, opts *adjustOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	lightness, err := parseAdjustmentFlag("lightness", opts.lightness)
	if err != nil {
		return err
	}
	opacity, err := parseAdjustmentFlag("opacity", opts.opacity)
	if err != nil {
		return err
	}

	theme := app.Theme
	adjuster := app.Resolver.Adjuster()
	swatch := adjuster.Adjust(strings.TrimSpace(token), lightness, opacity, theme)
	css, known := adjuster.CSSValue(swatch, theme)
	if !known {
		css = swatch
		app.Logger.WarnFields("unknown colour token", map[string]any{"token": token})
	}

	result := adjustResult{Token: token, Theme: string(theme), Swatch: swatch, CSS: css, Known: known}
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "swatch: %s\ncss:    %s\n", result.Swatch, result.CSS)
	return nil
}

func parseAdjustmentFlag(name, value string) (color.Adjustment, error) {
	if strings.TrimSpace(value) == "" {
		return color.Adjustment{}, nil
	}
	adj, ok := color.ParseAdjustment(value)
	if !ok {
		return color.Adjustment{}, styleboxerrors.NewValidationError(name,
			fmt.Sprintf("%q is not a number or a signed delta", value), nil)
	}
	return adj, nil
}
