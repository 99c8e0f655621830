package config

import (
	_ "embed"
)

//go:embed defaults/geomerge.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration. Matches the
// embedded defaults/geomerge.yaml; used as the last-resort fallback.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			CellSize: 0.0001,
			StartI:   0,
			StartJ:   0,
		},
		Rules: RulesConfig{
			InteractRange: 3,
			Target:        32,
		},
		Generator: GeneratorConfig{
			One:  0.25,
			Two:  0.30,
			Four: 0.32,
		},
		Walker: WalkerConfig{
			IntervalMS: 700,
			MaxStepDeg: 0.00015,
			StartLat:   0.0,
			StartLng:   0.0,
		},
	}
}
