package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const survivalFile = "survival.yaml"

// LoadSurvival loads Grid Survival configuration.
// Search order: customPath -> ~/.survive/configs/survival.yaml -> ./configs/survival.yaml -> embedded default.
// Files may set only some fields; the rest keep their default values.
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurvivalConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSurvival(data)
		if err != nil {
			return SurvivalConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(survivalFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSurvival(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", survivalFile)); err == nil {
		if cfg, err := parseSurvival(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSurvival(defaultSurvivalYAML)
	if err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSurvival decodes YAML over the defaults and validates the result.
func parseSurvival(data []byte) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SurvivalConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SurvivalConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survive", "configs", filename)
}
