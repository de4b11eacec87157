package config

import (
	_ "embed"
)

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// DefaultSkiConfig returns the built-in ski configuration.
// It matches defaults/ski.yaml and is used if the embedded file fails to parse.
func DefaultSkiConfig() SkiConfig {
	return SkiConfig{
		Player: PlayerSettings{
			MovementSpeed:                  60,
			DownhillSpeedMin:               0.4,
			DownhillSpeedMax:               1.6,
			PushAcceleration:               0.01,
			ReleaseDeceleration:            0.1,
			CrashSlideDistance:             48,
			CrashSlideDuration:             1.0,
			AppearDuration:                 3.0,
			CrashStateDuration:             4.0,
			ReachedFinishLineStateDuration: 4.0,
			FinishBandMin:                  127,
			FinishBandMax:                  129,
			FinishSteering:                 0.5,
			CameraOffset:                   40,
		},
		Scene: SceneSettings{
			TimeBonusScore:         1000,
			InitialDuration:        3.0,
			BeforeBonusDuration:    3.0,
			MaximumUpdateDeltaTime: 1.0 / 60.0,
		},
		Gate: GateSettings{
			Score:                 100,
			MinScoringMultiplier:  4,
			MaxScoringMultiplier:  8,
			MissedGateTimePenalty: 5.0,
		},
		Controller: ControllerSettings{
			DeadZone: 0.3,
			Numbing:  0.7,
		},
		Map: MapSettings{
			Columns:    16,
			Rows:       128,
			TileWidth:  16,
			TileHeight: 32,
		},
		Levels: []LevelSettings{
			{TimeLimit: 60},
			{TimeLimit: 55},
			{TimeLimit: 50},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 2,
			},
			Scaling: ScalingConfig{
				TimeLimitReduction: 0.25,
				PenaltyIncrease:    0.6,
			},
		},
	}
}
