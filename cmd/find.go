package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/subtitle"
	"github.com/ivorkchan/subtle/internal/timecode"
)

var findCmd = &cobra.Command{
	Use:   "find <term> <input.srt>",
	Short: "List cues whose text matches a search term",
	Long: `Find prints every cue whose text contains the term, case-insensitively.
The term is matched literally unless --regex is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

var findRegex bool

func init() {
	findCmd.Flags().BoolVar(&findRegex, "regex", false, "treat the term as a regular expression")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	term, inputPath := args[0], args[1]

	cues, err := readCues(inputPath)
	if err != nil {
		return err
	}

	matched, err := subtitle.Find(cues, term, !findRegex)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return fmt.Errorf("no cues match %q", term)
	}

	for _, cue := range matched {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s --> %s\t%s\n",
			cue.Index,
			timecode.Format(cue.Start),
			timecode.Format(cue.End),
			cue.Text)
	}
	return nil
}
