// Package config provides YAML-based game configuration loading for
// Grid Survival.
package config

import (
	"errors"
	"fmt"
)

// SurvivalConfig contains all configuration for Grid Survival.
type SurvivalConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Player PlayerConfig `yaml:"player"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Timing TimingConfig `yaml:"timing"`
}

// GridConfig defines the play field.
type GridConfig struct {
	Size int `yaml:"size"` // Side length of the square grid
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	Name      string `yaml:"name"`
	StartRow  int    `yaml:"start_row"`
	StartCol  int    `yaml:"start_col"`
	MaxHealth int    `yaml:"max_health"`
}

// SpawnConfig defines how many entities are placed and how often medicine appears.
type SpawnConfig struct {
	Obstacles      int     `yaml:"obstacles"`
	Enemies        int     `yaml:"enemies"`
	MedicineChance float64 `yaml:"medicine_chance"` // Probability per tick, 0.0 to 1.0
}

// TimingConfig defines the driver cadence.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Turns per second
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c SurvivalConfig) Validate() error {
	n := c.Grid.Size
	switch {
	case n <= 0:
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalidConfig, n)
	case c.Player.StartRow < 0 || c.Player.StartRow >= n ||
		c.Player.StartCol < 0 || c.Player.StartCol >= n:
		return fmt.Errorf("%w: player start [%d,%d] is outside the %dx%d grid",
			ErrInvalidConfig, c.Player.StartRow, c.Player.StartCol, n, n)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player.max_health must be positive, got %d", ErrInvalidConfig, c.Player.MaxHealth)
	case c.Spawn.Obstacles < 0 || c.Spawn.Enemies < 0:
		return fmt.Errorf("%w: spawn counts must not be negative", ErrInvalidConfig)
	case c.Spawn.MedicineChance < 0 || c.Spawn.MedicineChance > 1:
		return fmt.Errorf("%w: spawn.medicine_chance must be within [0, 1], got %g", ErrInvalidConfig, c.Spawn.MedicineChance)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	}
	return nil
}
