package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/words"
)

var escapeCmd = &cobra.Command{
	Use:   "escape <text>",
	Short: "Escape regex metacharacters in text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), words.EscapeRegex(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(escapeCmd)
}
