// Package config provides YAML-based configuration loading and difficulty
// management for the ski game.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by ParsePreset for an unknown preset name.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// SkiConfig contains every tunable of the ski game.
type SkiConfig struct {
	Player     PlayerSettings     `yaml:"player"`
	Scene      SceneSettings      `yaml:"scene"`
	Gate       GateSettings       `yaml:"gate"`
	Controller ControllerSettings `yaml:"controller"`
	Map        MapSettings        `yaml:"map"`
	Levels     []LevelSettings    `yaml:"levels"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlayerSettings defines skier movement and state timings.
// Downhill speeds are multiples of MovementSpeed.
type PlayerSettings struct {
	MovementSpeed                  float64 `yaml:"movement_speed"`
	DownhillSpeedMin               float64 `yaml:"downhill_speed_min"`
	DownhillSpeedMax               float64 `yaml:"downhill_speed_max"`
	PushAcceleration               float64 `yaml:"push_acceleration"`    // added per tick while pushing
	ReleaseDeceleration            float64 `yaml:"release_deceleration"` // removed per tick otherwise
	CrashSlideDistance             float64 `yaml:"crash_slide_distance"`
	CrashSlideDuration             float64 `yaml:"crash_slide_duration"`
	AppearDuration                 float64 `yaml:"appear_duration"`
	CrashStateDuration             float64 `yaml:"crash_state_duration"`
	ReachedFinishLineStateDuration float64 `yaml:"reached_finish_line_state_duration"`
	FinishBandMin                  float64 `yaml:"finish_band_min"`
	FinishBandMax                  float64 `yaml:"finish_band_max"`
	FinishSteering                 float64 `yaml:"finish_steering"`
	CameraOffset                   float64 `yaml:"camera_offset"`
}

// SceneSettings defines session phase timings and the time bonus.
type SceneSettings struct {
	TimeBonusScore         int     `yaml:"time_bonus_score"`
	InitialDuration        float64 `yaml:"initial_duration"`
	BeforeBonusDuration    float64 `yaml:"before_bonus_duration"`
	MaximumUpdateDeltaTime float64 `yaml:"maximum_update_delta_time"`
}

// GateSettings defines gate scoring.
type GateSettings struct {
	Score                 int     `yaml:"score"`
	MinScoringMultiplier  int     `yaml:"min_scoring_multiplier"`
	MaxScoringMultiplier  int     `yaml:"max_scoring_multiplier"`
	MissedGateTimePenalty float64 `yaml:"missed_gate_time_penalty"`
}

// ControllerSettings shapes analog steering input.
type ControllerSettings struct {
	DeadZone float64 `yaml:"dead_zone"` // 0 = no dead zone
	Numbing  float64 `yaml:"numbing"`   // 1 = not numb, 0 = entirely numb
}

// MapSettings fixes the level grid and tile size.
type MapSettings struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// LevelSettings defines one entry of the level table.
type LevelSettings struct {
	TimeLimit float64 `yaml:"time_limit"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level number or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeLimitReduction float64 `yaml:"time_limit_reduction"` // fraction of the time limit removed at max difficulty
	PenaltyIncrease    float64 `yaml:"penalty_increase"`     // fraction added to the missed gate penalty at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (expected easy, normal, hard or fixed)", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first setting that would make the game unplayable.
func (c SkiConfig) Validate() error {
	switch {
	case c.Map.Columns <= 0 || c.Map.Rows <= 0:
		return fmt.Errorf("config: map size %dx%d must be positive", c.Map.Columns, c.Map.Rows)
	case c.Map.TileWidth <= 0 || c.Map.TileHeight <= 0:
		return fmt.Errorf("config: tile size %vx%v must be positive", c.Map.TileWidth, c.Map.TileHeight)
	case c.Player.DownhillSpeedMin > c.Player.DownhillSpeedMax:
		return fmt.Errorf("config: downhill_speed_min %v exceeds downhill_speed_max %v", c.Player.DownhillSpeedMin, c.Player.DownhillSpeedMax)
	case c.Gate.MinScoringMultiplier > c.Gate.MaxScoringMultiplier:
		return fmt.Errorf("config: min_scoring_multiplier %d exceeds max_scoring_multiplier %d", c.Gate.MinScoringMultiplier, c.Gate.MaxScoringMultiplier)
	case c.Scene.MaximumUpdateDeltaTime <= 0:
		return fmt.Errorf("config: maximum_update_delta_time must be positive")
	case len(c.Levels) == 0:
		return fmt.Errorf("config: level table is empty")
	}
	return nil
}
