// Package core provides fundamental types and utilities for the GeoMerge
// world. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord identifies one grid cell. The grid is unbounded in both axes and
// anchored at latitude/longitude (0,0): I indexes latitude, J longitude.
type Coord struct {
	I int
	J int
}

// C is a convenience constructor for Coord.
func C(i, j int) Coord {
	return Coord{I: i, J: j}
}

// FromLatLng maps a geographic position to the grid cell containing it.
// Division is by the fixed cell size with flooring toward negative
// infinity, so negative coordinates behave the same as positive ones.
func FromLatLng(lat, lng, cellSize float64) Coord {
	return Coord{
		I: int(math.Floor(lat / cellSize)),
		J: int(math.Floor(lng / cellSize)),
	}
}

// LatLng returns the geographic position of the cell's center.
func (c Coord) LatLng(cellSize float64) (lat, lng float64) {
	return (float64(c.I) + 0.5) * cellSize, (float64(c.J) + 0.5) * cellSize
}

// Key returns the canonical "i,j" form used for hashing and persistence.
// The comma delimiter is load-bearing: without it (1,23) and (12,3)
// would collide.
func (c Coord) Key() string {
	return strconv.Itoa(c.I) + "," + strconv.Itoa(c.J)
}

// ParseKey inverts Key. It rejects anything that is not exactly two
// comma-separated integers.
func ParseKey(s string) (Coord, error) {
	left, right, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("core: invalid coordinate key %q", s)
	}
	i, err := strconv.Atoi(left)
	if err != nil {
		return Coord{}, fmt.Errorf("core: invalid coordinate key %q: %w", s, err)
	}
	j, err := strconv.Atoi(right)
	if err != nil {
		return Coord{}, fmt.Errorf("core: invalid coordinate key %q: %w", s, err)
	}
	return Coord{I: i, J: j}, nil
}

// String returns a human-readable representation.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// Add returns a new Coord offset by (di, dj).
func (c Coord) Add(di, dj int) Coord {
	return Coord{I: c.I + di, J: c.J + dj}
}

// Equal returns true if two coordinates are the same cell.
func (c Coord) Equal(other Coord) bool {
	return c.I == other.I && c.J == other.J
}

// Chebyshev returns the chessboard distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	return Max(Abs(c.I-other.I), Abs(c.J-other.J))
}

// Within reports whether other is at most r cells away on both axes
// independently.
func (c Coord) Within(other Coord, r int) bool {
	return Abs(c.I-other.I) <= r && Abs(c.J-other.J) <= r
}
