package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ski/internal/platform/tui"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

var (
	flagScoresLevel  int
	flagScoresBrowse bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and best runs",
	Long: `Display the top 10 scores, or the best runs of one level.

Examples:
  ski scores
  ski scores --level 2
  ski scores --browse
  ski scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Show the best runs of this level")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse best runs per level interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored score and run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	case flagScoresBrowse:
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, len(cfg.Levels), width, height)
	case flagScoresLevel > 0:
		return printRuns(store, flagScoresLevel)
	default:
		return printScores(store)
	}
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(storage.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Ski")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ski play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(storage.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Levels finished: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRuns(store *storage.Store, level int) error {
	runs, err := store.BestRuns(level, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - Level %d\n", level)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ski play --level %d' to set the first record!\n", level)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-7s  %s\n", "Rank", "Score", "Time", "Gates", "Crashes", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-7s  %s\n", "----", "-----", "----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8.2f  %-7s  %-7d  %s\n",
			i+1,
			r.Score,
			r.Elapsed,
			fmt.Sprintf("%d/%d", r.GatesPassed, r.GatesPassed+r.GatesMissed),
			r.Crashes,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
