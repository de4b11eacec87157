package config

import "math"

// DifficultyManager scales level time limits and penalties as a session
// progresses through levels or accumulates score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty (0.0 to 1.0) for a level number and score.
func (d *DifficultyManager) Level(levelNumber, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		// Level 1 is the starting point.
		progress = float64(levelNumber-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TimeLimit returns the time limit for a level, shortened with difficulty.
func (d *DifficultyManager) TimeLimit(base float64, levelNumber, score int) float64 {
	level := d.Level(levelNumber, score)
	return base * (1.0 - level*d.cfg.Scaling.TimeLimitReduction)
}

// Penalty returns the missed gate penalty, raised with difficulty.
func (d *DifficultyManager) Penalty(base float64, levelNumber, score int) float64 {
	level := d.Level(levelNumber, score)
	return base * (1.0 + level*d.cfg.Scaling.PenaltyIncrease)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
