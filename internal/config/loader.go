package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const skiConfigFile = "ski.yaml"

// LoadSki loads the ski configuration.
// Search order: customPath -> ~/.ski/configs/ski.yaml -> ./configs/ski.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadSki(customPath string) (SkiConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkiConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSki(data)
		if err != nil {
			return SkiConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(skiConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSki(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", skiConfigFile)); err == nil {
		if cfg, err := parseSki(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSki(defaultSkiYAML)
	if err != nil {
		return DefaultSkiConfig(), nil
	}
	return cfg, nil
}

// parseSki decodes YAML over the built-in defaults and validates the result.
func parseSki(data []byte) (SkiConfig, error) {
	cfg := DefaultSkiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkiConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SkiConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ski", "configs", filename)
}

// ApplySkiPreset modifies the config based on a difficulty preset.
func ApplySkiPreset(cfg *SkiConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
