package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words [text]",
	Short: "Segment text into printing words",
	Long: `Words splits text into the indivisible fragments used for word-level
subtitle timing: boundaries fall after spaces, around newlines, and between
Han characters. Reads stdin when no text argument is given. Each fragment is
printed quoted on its own line so spaces and newlines stay visible.`,
	Args: cobra.ArbitraryArgs,
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	for _, fragment := range words.Segment(text) {
		fmt.Fprintf(cmd.OutOrStdout(), "%q\n", fragment)
	}
	return nil
}
