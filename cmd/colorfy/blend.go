package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"colorfy/internal/ui"
)

var (
	blendRatio float64
	blendSteps int
)

var blendCmd = &cobra.Command{
	Use:   "blend <from> <to>",
	Short: "Blend two colors, or render a gradient between them",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := resolveColor(args[0])
		if err != nil {
			return err
		}
		to, err := resolveColor(args[1])
		if err != nil {
			return err
		}

		if blendSteps > 0 {
			ramp := ui.Gradient(from, to, blendSteps)
			if ui.IsRich() {
				var strip strings.Builder
				for _, c := range ramp {
					strip.WriteString(ui.Swatch(c, 2))
				}
				fmt.Println(strip.String())
				for _, c := range ramp {
					fmt.Printf("  %s %s\n", ui.Swatch(c, 4), c.Hex())
				}
			} else {
				for _, c := range ramp {
					fmt.Println(c.Hex())
				}
			}
			return nil
		}

		blended, err := from.Blend(to, blendRatio)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s %s %s\n",
			ui.ColorCell(blended, cfg.SwatchWidth),
			from.Hex(),
			ui.Muted("+ %s @ %.2f =", to.Hex(), blendRatio),
			ui.Heading("%s", blended.Hex()))
		return nil
	},
}

func init() {
	blendCmd.Flags().Float64Var(&blendRatio, "ratio", 0.5, "blend ratio in [0, 1], weight of the second color")
	blendCmd.Flags().IntVar(&blendSteps, "steps", 0, "render an N-step gradient instead of a single blend")
	rootCmd.AddCommand(blendCmd)
}
