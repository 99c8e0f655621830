package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	// The embedded default and the hardcoded fallback must agree, so
	// spot-check the load against DefaultGameConfig.
	def := DefaultGameConfig()
	if cfg.Rules != def.Rules {
		t.Errorf("loaded rules %+v differ from defaults %+v", cfg.Rules, def.Rules)
	}
	if cfg.Generator != def.Generator {
		t.Errorf("loaded generator %+v differs from defaults %+v", cfg.Generator, def.Generator)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	raw := `
grid:
  cell_size: 0.001
  start_i: 2
  start_j: -3
rules:
  interact_range: 5
  target: 64
generator:
  one: 0.1
  two: 0.2
  four: 0.3
walker:
  interval_ms: 100
  max_step_deg: 0.0002
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Grid.CellSize != 0.001 {
		t.Errorf("cell_size = %v, expected 0.001", cfg.Grid.CellSize)
	}
	if cfg.Grid.StartI != 2 || cfg.Grid.StartJ != -3 {
		t.Errorf("start = (%d,%d), expected (2,-3)", cfg.Grid.StartI, cfg.Grid.StartJ)
	}
	if cfg.Rules.Target != 64 {
		t.Errorf("target = %d, expected 64", cfg.Rules.Target)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidCustomConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	raw := `
grid:
  cell_size: 0
rules:
  interact_range: 3
  target: 32
generator:
  one: 0.25
  two: 0.30
  four: 0.32
walker:
  interval_ms: 700
  max_step_deg: 0.00015
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with zero cell_size should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*GameConfig) {}, wantErr: false},
		{name: "zero cell size", mutate: func(c *GameConfig) { c.Grid.CellSize = 0 }, wantErr: true},
		{name: "zero range", mutate: func(c *GameConfig) { c.Rules.InteractRange = 0 }, wantErr: true},
		{name: "zero target", mutate: func(c *GameConfig) { c.Rules.Target = 0 }, wantErr: true},
		{name: "descending thresholds", mutate: func(c *GameConfig) { c.Generator.Two = 0.1 }, wantErr: true},
		{name: "threshold above one", mutate: func(c *GameConfig) { c.Generator.Four = 1.5 }, wantErr: true},
		{name: "zero walker interval", mutate: func(c *GameConfig) { c.Walker.IntervalMS = 0 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate() should fail")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}
