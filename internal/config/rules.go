package config

import (
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/world"
)

// GameRules converts the loaded configuration into game rules.
func (c GameConfig) GameRules() world.Rules {
	return world.Rules{
		CellSize:      c.Grid.CellSize,
		InteractRange: c.Rules.InteractRange,
		Target:        c.Rules.Target,
		Start:         core.C(c.Grid.StartI, c.Grid.StartJ),
		Thresholds: world.Thresholds{
			One:  c.Generator.One,
			Two:  c.Generator.Two,
			Four: c.Generator.Four,
		},
	}
}
