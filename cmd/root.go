package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/config"
	"github.com/ivorkchan/subtle/internal/version"
)

var (
	verbose bool
	quiet   bool

	// cfg holds the loaded settings file, or the defaults when none exists.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:     "subtle",
	Short:   "Subtitle text utilities: retime, reformat and segment SRT files",
	Version: version.String(),
	Long: `Subtle is a toolkit for subtitle text: it parses and renders SRT timecodes,
shifts cue timing, segments text into printing words for word-level
highlighting, and watches directories to renormalize subtitle files on change.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		loadConfig()
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func loadConfig() {
	loaded, err := config.LoadDefault()
	if err != nil {
		slog.Warn("using default settings", "err", err)
		return
	}
	cfg = loaded
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
