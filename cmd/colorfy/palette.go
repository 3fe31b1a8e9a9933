package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"colorfy"
	"colorfy/internal/ui"
	"colorfy/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [theme]",
	Short: "List shipped themes, or the colors of one theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			rows := make([][]string, 0, len(palette.Themes))
			for _, name := range palette.ThemeNames() {
				rows = append(rows, []string{name, strconv.Itoa(len(palette.Themes[name]))})
			}
			fmt.Print(ui.RenderTable(
				[]ui.Column{{Header: "theme"}, {Header: "colors", Align: ui.AlignRight}},
				rows,
			))
			return nil
		}

		name := args[0]
		theme, ok := palette.Themes[name]
		if !ok {
			return fmt.Errorf("unknown theme %q, try `colorfy palette`", name)
		}

		rows := make([][]string, 0, len(theme))
		for _, colorName := range theme.Names() {
			c, err := colorfy.FromHex(theme[colorName])
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				colorName,
				ui.ColorCell(c, cfg.SwatchWidth),
				c.Hex(),
				c.CSS(),
			})
		}
		fmt.Print(ui.RenderTable(
			[]ui.Column{{Header: "name"}, {Header: "swatch"}, {Header: "hex"}, {Header: "css"}},
			rows,
		))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
