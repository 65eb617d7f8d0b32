package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the built-in Grid Survival configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Grid: GridConfig{
			Size: 15,
		},
		Player: PlayerConfig{
			Name:      "Player",
			StartRow:  2,
			StartCol:  2,
			MaxHealth: 3,
		},
		Spawn: SpawnConfig{
			Obstacles:      15,
			Enemies:        4,
			MedicineChance: 0.1,
		},
		Timing: TimingConfig{
			TickRate: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSurvivalYAML
}
