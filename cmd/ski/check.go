package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/games/ski"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
)

var flagCheckWatch bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Decode and validate a level file",
	Long: `Decodes a level file with the configured map size and reports what it
contains: gates, obstacles, characters that were skipped, and structural
problems such as a missing start or a gate without posts.

With --watch the file is checked again every time it is saved.

Examples:
  ski check ./levels/ski_level1.txt
  ski check ./levels/ski_level4.txt --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagCheckWatch, "watch", false, "Check again whenever the file changes")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: flagCheckWatch,
		Prefix:          "ski-check",
	})
	loader := tilemap.NewLoader("", ski.LevelLayout(cfg.Map), logger)

	ok := checkLevel(loader, path)
	if !flagCheckWatch {
		if !ok {
			return fmt.Errorf("%s is not playable", path)
		}
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := tilemap.NewWatcher(filepath.Dir(abs))
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("watching for changes", "file", path)

	for {
		select {
		case changed, open := <-watcher.Events:
			if !open {
				return nil
			}
			if changed != abs {
				continue
			}
			logger.Info("level changed", "file", path)
			checkLevel(loader, path)
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// checkLevel prints the report for one level file and tells whether the
// level can be played.
func checkLevel(loader *tilemap.Loader, path string) bool {
	grid, report, err := loader.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	fmt.Printf("%s: %d lines\n", path, report.Lines)
	fmt.Printf("  gates %d, trees %d, rocks %d, finish tiles %d, opponents %d\n",
		grid.Count(tilemap.TileGate),
		grid.Count(tilemap.TileTree),
		grid.Count(tilemap.TileRock),
		grid.Count(tilemap.TileFinish),
		grid.Count(tilemap.TileOpponent),
	)

	for _, s := range report.Unrecognized {
		fmt.Printf("  skipped %q at line %d col %d\n", s.Char, s.Line, s.Column)
	}
	if n := len(report.Clipped); n > 0 {
		fmt.Printf("  %d characters outside the %dx%d map dropped\n", n, loader.Layout.Columns, loader.Layout.Rows)
	}

	problems := tilemap.Validate(grid)
	for _, p := range problems {
		fmt.Printf("  problem: %s\n", p)
	}
	if len(problems) == 0 {
		fmt.Println("  ok")
	}
	return len(problems) == 0
}
