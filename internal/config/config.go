// Package config provides YAML-based game configuration loading for
// GeoMerge.
package config

import "fmt"

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Rules     RulesConfig     `yaml:"rules"`
	Generator GeneratorConfig `yaml:"generator"`
	Walker    WalkerConfig    `yaml:"walker"`
}

// GridConfig anchors the grid to geographic coordinates.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"` // Cell edge in degrees
	StartI   int     `yaml:"start_i"`   // Fresh-session player cell
	StartJ   int     `yaml:"start_j"`
}

// RulesConfig defines the interaction rules.
type RulesConfig struct {
	InteractRange int `yaml:"interact_range"` // Chebyshev range in cells
	Target        int `yaml:"target"`         // Winning token value
}

// GeneratorConfig defines the cell value distribution. Each field is an
// upper bound on the per-cell random number: below One the cell holds 1,
// below Two it holds 2, below Four it holds 4, otherwise it is empty.
type GeneratorConfig struct {
	One  float64 `yaml:"one"`
	Two  float64 `yaml:"two"`
	Four float64 `yaml:"four"`
}

// WalkerConfig tunes the simulated location feed used by walk mode:
// sample interval in milliseconds and the per-sample drift bound in
// degrees.
type WalkerConfig struct {
	IntervalMS int     `yaml:"interval_ms"`
	MaxStepDeg float64 `yaml:"max_step_deg"`
	StartLat   float64 `yaml:"start_lat"`
	StartLng   float64 `yaml:"start_lng"`
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: grid.cell_size must be positive, got %v", c.Grid.CellSize)
	}
	if c.Rules.InteractRange <= 0 {
		return fmt.Errorf("config: rules.interact_range must be positive, got %d", c.Rules.InteractRange)
	}
	if c.Rules.Target <= 0 {
		return fmt.Errorf("config: rules.target must be positive, got %d", c.Rules.Target)
	}
	if c.Generator.One < 0 || c.Generator.One > c.Generator.Two ||
		c.Generator.Two > c.Generator.Four || c.Generator.Four > 1 {
		return fmt.Errorf("config: generator thresholds must satisfy 0 <= one <= two <= four <= 1")
	}
	if c.Walker.IntervalMS <= 0 {
		return fmt.Errorf("config: walker.interval_ms must be positive, got %d", c.Walker.IntervalMS)
	}
	if c.Walker.MaxStepDeg <= 0 {
		return fmt.Errorf("config: walker.max_step_deg must be positive, got %v", c.Walker.MaxStepDeg)
	}
	return nil
}
