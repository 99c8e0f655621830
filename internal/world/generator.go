// Package world implements the GeoMerge world model: deterministic cell
// generation, the sparse override table, and the pick-up/combine state
// machine. It contains pure logic with no rendering dependencies.
package world

import (
	"hash/fnv"

	"github.com/vovakirdan/geomerge/internal/core"
)

// Thresholds control the value distribution of generated cells.
// A deterministic per-cell number r in [0,1) is bucketed as:
// r < One -> 1, r < Two -> 2, r < Four -> 4, otherwise empty.
type Thresholds struct {
	One  float64
	Two  float64
	Four float64
}

// DefaultThresholds yields ~32% non-empty cells, heavily skewed toward 1.
func DefaultThresholds() Thresholds {
	return Thresholds{One: 0.25, Two: 0.30, Four: 0.32}
}

// Generator deterministically maps a cell coordinate to its base token
// value. It is stateless: the same coordinate yields the same value in
// any process, with no dependency on call order.
type Generator struct {
	thresholds Thresholds
}

// NewGenerator creates a generator with the given thresholds.
func NewGenerator(t Thresholds) Generator {
	return Generator{thresholds: t}
}

// BaseValue returns the generated token value for a cell: 1, 2, 4 or 0
// (empty). Overrides recorded by gameplay take precedence over this;
// consumers should go through Model.CurrentValue.
func (g Generator) BaseValue(c core.Coord) int {
	r := hashToUnit(c.Key())
	switch {
	case r < g.thresholds.One:
		return 1
	case r < g.thresholds.Two:
		return 2
	case r < g.thresholds.Four:
		return 4
	default:
		return 0
	}
}

// hashToUnit maps a coordinate key to a stable pseudo-random float64 in
// [0,1). FNV-1a alone distributes poorly in the low bits for short keys,
// so the result is run through a 64-bit avalanche finisher before
// conversion (same mix constants as splitmix64).
func hashToUnit(key string) float64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	x := h.Sum64()

	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	// Top 53 bits give a uniform float64 in [0,1).
	return float64(x>>11) / (1 << 53)
}
