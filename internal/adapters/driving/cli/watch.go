package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/larder/internal/logger"
)

var watchFormat string

// watchDebounce groups the bursts of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-parse a file whenever it changes",
	Long: `Parse every line of a file, then parse it again each time it is saved.
Stop with ctrl+c.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "o", "", "output format: text, json, yaml, table (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireParse(); err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to watch file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return watchLoop(ctx, cmd, watcher, path)
}

func watchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher, path string) error {
	if err := parseFileOnce(ctx, cmd, path); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("watch: %s", event)
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			if err := parseFileOnce(ctx, cmd, path); err != nil {
				cmd.PrintErrf("Error: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// parseFileOnce parses the file and writes the results under a timestamp.
func parseFileOnce(ctx context.Context, cmd *cobra.Command, path string) error {
	lines, err := inputLines(cmd, nil, path)
	if err != nil {
		return err
	}

	results, err := parseService.ParseBatch(ctx, lines)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	r, err := newRenderer(cmd.OutOrStdout(), outputFormat(watchFormat), unitLookup)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "--- %s (%d lines) %s\n", filepath.Base(path), len(lines), time.Now().Format("15:04:05"))
	return r.Render(withPrep(results, nil))
}
