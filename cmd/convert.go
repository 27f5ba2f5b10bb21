package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/subtitle"
	"github.com/ivorkchan/subtle/internal/words"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.srt>",
	Short: "Renormalize an SRT file's timecodes and line layout",
	Long: `Convert re-renders an SRT file: cues are renumbered, timecodes rewritten
with the configured fraction width and separator, and cue text optionally
rewrapped to the characters-per-line limits (CJK and Latin limits are picked
per cue by script).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var (
	convertDigits    int
	convertSeparator string
	convertWrap      bool
	convertOutput    string
)

func init() {
	defaults := cfg

	convertCmd.Flags().IntVar(&convertDigits, "digits", defaults.Format.FractionDigits, "fraction digits in timecodes")
	convertCmd.Flags().StringVar(&convertSeparator, "separator", defaults.Format.Separator, "seconds/fraction separator: , or .")
	convertCmd.Flags().BoolVar(&convertWrap, "wrap", false, "rewrap cue text to the configured line limits")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output path (default: overwrite input)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Flags left at their defaults fall back to the settings file, which
	// is loaded after flag registration.
	if !cmd.Flags().Changed("digits") {
		convertDigits = cfg.Format.FractionDigits
	}
	if !cmd.Flags().Changed("separator") {
		convertSeparator = cfg.Format.Separator
	}

	sep := []rune(convertSeparator)
	if len(sep) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", convertSeparator)
	}

	cues, err := readCues(inputPath)
	if err != nil {
		return err
	}

	if convertWrap {
		for i := range cues {
			maxCPL := cfg.Wrap.LatinCharsPerLine
			if words.HasHan(cues[i].Text) {
				maxCPL = cfg.Wrap.CJKCharsPerLine
			}
			cues[i].Text = subtitle.WrapText(cues[i].Text, maxCPL)
		}
	}

	out := subtitle.RenderWith(cues, subtitle.RenderOptions{
		FractionDigits: convertDigits,
		Separator:      sep[0],
	})

	outPath := convertOutput
	if outPath == "" {
		outPath = inputPath
	}
	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !quiet {
		slog.Info("converted", "cues", len(cues), "output", outPath)
	}
	return nil
}
