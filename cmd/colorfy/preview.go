package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"colorfy/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <color>...",
	Short: "Show swatches and every representation of the given colors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, arg := range args {
			c, err := resolveColor(arg)
			if err != nil {
				return err
			}

			if i > 0 {
				fmt.Println()
			}
			if ui.IsRich() {
				fmt.Println(ui.SwatchLabel(c, " "+c.Hex(), cfg.SwatchWidth+8))
			} else {
				fmt.Println(c.Hex())
			}

			r, g, b, a := c.RGBA()
			h, s, l := c.HSL()
			brightness := "dark"
			if c.IsBright() {
				brightness = "bright"
			}
			grayCell := c.Gray().Hex()
			compCell := c.Complement().Hex()
			if ui.IsRich() {
				grayCell = ui.Swatch(c.Gray(), 4) + " " + grayCell
				compCell = ui.Swatch(c.Complement(), 4) + " " + compCell
			}
			fmt.Println(ui.RenderKeyValues([][2]string{
				{"rgba", fmt.Sprintf("%d, %d, %d, %d", r, g, b, a)},
				{"hsl", fmt.Sprintf("%.1f° %.1f%% %.1f%%", h, s, l)},
				{"css", c.CSS()},
				{"luma", brightness},
				{"gray", grayCell},
				{"complement", compCell},
			}))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
