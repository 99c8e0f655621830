package config

import (
	"testing"

	"github.com/vovakirdan/geomerge/internal/world"
)

func TestDefaultConfigMatchesDefaultRules(t *testing.T) {
	got := DefaultGameConfig().GameRules()
	want := world.DefaultRules()

	if got != want {
		t.Errorf("DefaultGameConfig().GameRules() = %+v, expected %+v", got, want)
	}
}

func TestGameRulesMapsAllFields(t *testing.T) {
	cfg := GameConfig{
		Grid:      GridConfig{CellSize: 0.5, StartI: 3, StartJ: -7},
		Rules:     RulesConfig{InteractRange: 2, Target: 64},
		Generator: GeneratorConfig{One: 0.1, Two: 0.2, Four: 0.3},
	}

	rules := cfg.GameRules()

	if rules.CellSize != 0.5 {
		t.Errorf("CellSize = %v, expected 0.5", rules.CellSize)
	}
	if rules.InteractRange != 2 {
		t.Errorf("InteractRange = %d, expected 2", rules.InteractRange)
	}
	if rules.Target != 64 {
		t.Errorf("Target = %d, expected 64", rules.Target)
	}
	if rules.Start.I != 3 || rules.Start.J != -7 {
		t.Errorf("Start = %v, expected (3,-7)", rules.Start)
	}
	if rules.Thresholds.One != 0.1 || rules.Thresholds.Two != 0.2 || rules.Thresholds.Four != 0.3 {
		t.Errorf("Thresholds = %+v, expected {0.1 0.2 0.3}", rules.Thresholds)
	}
}
