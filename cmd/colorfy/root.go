package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"colorfy"
	"colorfy/internal/config"
	"colorfy/internal/ui"
	"colorfy/palette"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "colorfy",
	Short: "Inspect, convert and preview terminal colors",
	Long: `colorfy works with colors in hex and RGBA form: previews them as
truecolor swatches, converts between hex, RGBA, HSL and CSS, blends and
derives colors, and ships named palettes for popular color schemes.

Colors are given as "#RRGGBB", "r,g,b,a" or, where a theme is in scope,
a palette color name.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; in CI and containers plain env vars do the job.
		_ = godotenv.Load()

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := colorfy.EnableVirtualTerminal(); err != nil {
			ui.LogStatus("warning", "could not enable ANSI sequences: "+err.Error())
		}
		return nil
	},
}

// resolveColor parses a color argument, falling back to a palette lookup in
// the default theme when the argument is a bare name.
func resolveColor(arg string) (colorfy.Color, error) {
	c, err := colorfy.Parse(arg)
	if err == nil {
		return c, nil
	}
	if named, lookupErr := palette.Resolve(cfg.DefaultTheme, arg); lookupErr == nil {
		return named, nil
	}
	return colorfy.Color{}, err
}
