// ski is a downhill slalom game for the terminal.
//
// Usage:
//
//	ski play               - Play the level set
//	ski levels             - List levels with their gates and time limits
//	ski check <file>       - Decode and validate a level file
//	ski scores             - Show high scores and best runs
//	ski serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--db <path>            - Set database path (default: ~/.ski/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--levels-dir <dir>     - Directory shadowing the built-in levels
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ski",
	Short: "TUI Ski - Downhill slalom in your terminal",
	Long: `TUI Ski is a downhill slalom game. Steer through the gates between
the red posts, avoid trees and rocks, and reach the finish line before
the time limit runs out.

Available commands:
  play     - Play the level set
  levels   - List the levels
  check    - Validate a level file
  scores   - View high scores and best runs
  serve    - Start SSH server for remote play

Examples:
  ski play
  ski play --level 2 --difficulty hard
  ski check ./levels/ski_level1.txt --watch
  ski serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ski/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with ski_level<N>.txt files overriding the built-in levels")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the game config and applies the difficulty preset.
func loadConfig() (config.SkiConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SkiConfig{}, err
	}
	cfg, err := config.LoadSki(flagConfig)
	if err != nil {
		return config.SkiConfig{}, err
	}
	config.ApplySkiPreset(&cfg, preset)
	return cfg, nil
}
