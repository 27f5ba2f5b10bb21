package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/subtitle"
)

var shiftCmd = &cobra.Command{
	Use:   "shift <input.srt>",
	Short: "Shift all cue timings by an offset in seconds",
	Args:  cobra.ExactArgs(1),
	RunE:  runShift,
}

var (
	shiftBy     float64
	shiftOutput string
)

func init() {
	shiftCmd.Flags().Float64Var(&shiftBy, "by", 0, "offset in seconds, may be negative")
	shiftCmd.Flags().StringVarP(&shiftOutput, "output", "o", "", "output path (default: overwrite input)")
	shiftCmd.MarkFlagRequired("by")

	rootCmd.AddCommand(shiftCmd)
}

func runShift(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cues, err := readCues(inputPath)
	if err != nil {
		return err
	}

	subtitle.Shift(cues, shiftBy)
	slog.Debug("shifted cues", "count", len(cues), "by", shiftBy)

	outPath := shiftOutput
	if outPath == "" {
		outPath = inputPath
	}
	if err := os.WriteFile(outPath, []byte(subtitle.Render(cues)), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !quiet {
		slog.Info("shifted", "cues", len(cues), "by", shiftBy, "output", outPath)
	}
	return nil
}

// readCues loads an SRT file and fails when it contains no usable cues.
func readCues(path string) ([]subtitle.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	cues := subtitle.Parse(string(data))
	if len(cues) == 0 {
		return nil, fmt.Errorf("no subtitle cues found in %s", path)
	}
	return cues, nil
}
