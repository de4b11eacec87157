package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/games/ski"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
	"github.com/vovakirdan/tui-ski/internal/platform/tui"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

var (
	flagLevel   int
	flagWatch   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level set",
	Long: `Start a ski session at the given level.

Controls:
  Left/A, Right/D   - Steer
  Down/S/Space      - Push off to speed up
  J, L, K           - Player 2 steer left, right, push
  P/Esc             - Pause
  Enter             - Resume, or continue after a finished level
  R                 - Restart the level
  ?                 - Full help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  ski play
  ski play --level 3
  ski play --difficulty hard
  ski play --levels-dir ./levels --watch --log-file ski.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files from --levels-dir when they change")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagWatch && flagLevelsDir == "" {
		return errors.New("--watch needs --levels-dir")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := gameLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := ski.NewSession(ski.Options{
		Config:    cfg,
		LevelsDir: flagLevelsDir,
		Level:     flagLevel,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	}
	if store != nil {
		defer store.Close()
	}

	model := tui.NewModel(session, store, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}).WithLogger(logger)

	if flagWatch {
		watcher, err := tilemap.NewWatcher(flagLevelsDir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", flagLevelsDir, err)
		}
		defer watcher.Close()
		loader := tilemap.NewLoader(flagLevelsDir, ski.LevelLayout(cfg.Map), logger)
		model = model.WithReload(loader, watcher)
	}

	return tui.Run(model)
}

// gameLogger returns a logger writing to path, or a silent one when path is
// empty. The terminal belongs to the game while it runs.
func gameLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ski",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
