package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print every representation of a color as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveColor(args[0])
		if err != nil {
			return err
		}

		r, g, b, a := c.RGBA()
		h, s, l := c.HSL()
		out, err := json.MarshalIndent(struct {
			Hex        string  `json:"hex"`
			R          int     `json:"r"`
			G          int     `json:"g"`
			B          int     `json:"b"`
			A          int     `json:"a"`
			H          float64 `json:"h"`
			S          float64 `json:"s"`
			L          float64 `json:"l"`
			CSS        string  `json:"css"`
			Bright     bool    `json:"bright"`
			Gray       string  `json:"gray"`
			Complement string  `json:"complement"`
		}{
			Hex: c.Hex(),
			R:   r, G: g, B: b, A: a,
			H: h, S: s, L: l,
			CSS:        c.CSS(),
			Bright:     c.IsBright(),
			Gray:       c.Gray().Hex(),
			Complement: c.Complement().Hex(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
