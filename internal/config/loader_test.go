package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survival.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML SurvivalConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if fromYAML != DefaultSurvivalConfig() {
		t.Errorf("embedded default = %+v, expected %+v", fromYAML, DefaultSurvivalConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultSurvivalConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSurvivalCustomPath(t *testing.T) {
	path := writeConfig(t, `
grid:
  size: 9
spawn:
  enemies: 2
`)

	cfg, err := LoadSurvival(path)
	if err != nil {
		t.Fatalf("LoadSurvival() failed: %v", err)
	}

	if cfg.Grid.Size != 9 {
		t.Errorf("Grid.Size = %d, expected 9", cfg.Grid.Size)
	}
	if cfg.Spawn.Enemies != 2 {
		t.Errorf("Spawn.Enemies = %d, expected 2", cfg.Spawn.Enemies)
	}
	// Unset fields keep defaults
	if cfg.Spawn.Obstacles != 15 {
		t.Errorf("Spawn.Obstacles = %d, expected default 15", cfg.Spawn.Obstacles)
	}
	if cfg.Timing.TickRate != 5 {
		t.Errorf("Timing.TickRate = %d, expected default 5", cfg.Timing.TickRate)
	}
}

func TestLoadSurvivalMissingFile(t *testing.T) {
	_, err := LoadSurvival(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadSurvivalMalformed(t *testing.T) {
	path := writeConfig(t, "grid: [not, a, map")
	if _, err := LoadSurvival(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadSurvivalRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
grid:
  size: 3
player:
  start_row: 5
`)
	_, err := LoadSurvival(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SurvivalConfig)
		valid  bool
	}{
		{"default", func(*SurvivalConfig) {}, true},
		{"zero grid", func(c *SurvivalConfig) { c.Grid.Size = 0 }, false},
		{"start outside", func(c *SurvivalConfig) { c.Player.StartCol = 15 }, false},
		{"negative start", func(c *SurvivalConfig) { c.Player.StartRow = -1 }, false},
		{"zero health", func(c *SurvivalConfig) { c.Player.MaxHealth = 0 }, false},
		{"negative enemies", func(c *SurvivalConfig) { c.Spawn.Enemies = -1 }, false},
		{"no obstacles", func(c *SurvivalConfig) { c.Spawn.Obstacles = 0 }, true},
		{"chance above one", func(c *SurvivalConfig) { c.Spawn.MedicineChance = 1.5 }, false},
		{"chance one", func(c *SurvivalConfig) { c.Spawn.MedicineChance = 1 }, true},
		{"zero tick rate", func(c *SurvivalConfig) { c.Timing.TickRate = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSurvivalConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
