package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"colorfy/internal/server"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Hash an API token for COLORFY_API_TOKEN_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := server.HashToken(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashTokenCmd)
}
