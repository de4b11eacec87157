package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/games/ski"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long: `Shows every level of the session with its gate and obstacle counts
and its time limit. Files in --levels-dir replace built-in levels with the
same number.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ski"})
	grids, err := ski.LoadLevels(cfg, flagLevelsDir, logger)
	if err != nil {
		return err
	}

	fmt.Printf("  %-5s  %-5s  %-5s  %-5s  %-9s  %s\n", "Level", "Gates", "Trees", "Rocks", "Opponent", "Limit")
	fmt.Printf("  %-5s  %-5s  %-5s  %-5s  %-9s  %s\n", "-----", "-----", "-----", "-----", "--------", "-----")
	for i, g := range grids {
		opponent := "no"
		if g.Count(tilemap.TileOpponent) > 0 {
			opponent = "yes"
		}
		fmt.Printf("  %-5d  %-5d  %-5d  %-5d  %-9s  %.0fs\n",
			i+1,
			g.Count(tilemap.TileGate),
			g.Count(tilemap.TileTree),
			g.Count(tilemap.TileRock),
			opponent,
			cfg.Levels[i].TimeLimit,
		)
	}

	fmt.Println()
	fmt.Println("Run 'ski play --level <n>' to start at a level.")
	return nil
}
