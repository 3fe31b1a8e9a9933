package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"colorfy"
	"colorfy/internal/ui"
)

var randomCount int

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i := 0; i < randomCount; i++ {
			c := colorfy.Rand()
			fmt.Printf("%s  %s  %s\n", ui.ColorCell(c, cfg.SwatchWidth), c.Hex(), ui.Muted("%s", c.CSS()))
		}
		return nil
	},
}

func init() {
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of colors to generate")
	rootCmd.AddCommand(randomCmd)
}
