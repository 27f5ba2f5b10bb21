package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ivorkchan/subtle/internal/subtitle"
	"github.com/ivorkchan/subtle/internal/timing"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Renormalize SRT files in a directory as they change",
	Long: `Watch monitors a directory and re-renders every SRT file that is created
or modified there: cues are renumbered and timecodes rewritten in the
configured format. Output goes next to the input unless --output names
another directory. Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchOutput string

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output directory (default: in place)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat watch dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	timeout := time.Duration(cfg.Watch.FileTimeoutMS) * time.Millisecond
	semaphore := make(chan struct{}, cfg.Watch.MaxConcurrent)
	var wg sync.WaitGroup

	slog.Info("watching for subtitle changes", "dir", dir, "max_concurrent", cfg.Watch.MaxConcurrent)

	for {
		select {
		case <-ctx.Done():
			slog.Info("waiting for in-flight files")
			wg.Wait()
			slog.Info("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !isSubtitleFile(event.Name) {
				slog.Debug("ignoring non-subtitle file", "path", event.Name)
				continue
			}

			slog.Info("subtitle changed", "path", event.Name)

			select {
			case semaphore <- struct{}{}:
				wg.Add(1)
				go func(path string) {
					defer wg.Done()
					defer func() { <-semaphore }()

					if err := renormalize(ctx, path, debounce, timeout); err != nil {
						slog.Error("failed to process file", "path", path, "err", err)
					}
				}(event.Name)
			case <-ctx.Done():
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			slog.Error("watcher error", "err", err)
		}
	}
}

// renormalize waits out the debounce window (the file may still be
// mid-write), then re-renders it under a per-file deadline.
func renormalize(ctx context.Context, path string, debounce, timeout time.Duration) error {
	if err := timing.Sleep(ctx, debounce); err != nil {
		return err
	}

	return timing.Race(ctx, timeout, func(ctx context.Context) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		cues := subtitle.Parse(string(data))
		if len(cues) == 0 {
			return fmt.Errorf("no subtitle cues found in %s", path)
		}

		out := subtitle.RenderWith(cues, subtitle.RenderOptions{
			FractionDigits: cfg.Format.FractionDigits,
			Separator:      cfg.SeparatorRune(),
		})

		outPath := path
		if watchOutput != "" {
			outPath = filepath.Join(watchOutput, filepath.Base(path))
		}

		// Skipping no-op writes keeps in-place watching from re-triggering
		// itself through the watcher.
		if outPath == path && string(data) == out {
			slog.Debug("already normalized", "path", path)
			return nil
		}

		if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		slog.Info("renormalized", "path", outPath, "cues", len(cues))
		return nil
	})
}

func isSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".srt")
}
