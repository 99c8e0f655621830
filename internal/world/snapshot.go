package world

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vovakirdan/geomerge/internal/core"
)

// snapshot is the decoded persisted session. The wire form is a single
// JSON record:
//
//	{"player":{"i":..,"j":..},"held":int|null,"overrides":[["i,j",v],...]}
//
// The shape is a stable contract; anything that does not validate
// against it is treated as corrupt and discarded.
type snapshot struct {
	Player    core.Coord
	Held      *int
	Overrides map[core.Coord]int
}

type snapshotDTO struct {
	Player    coordDTO       `json:"player"`
	Held      *int           `json:"held"`
	Overrides []overridePair `json:"overrides"`
}

type coordDTO struct {
	I int `json:"i"`
	J int `json:"j"`
}

// overridePair serializes one override entry as a ["i,j", value] pair.
type overridePair struct {
	Key   string
	Value int
}

func (p overridePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Value})
}

func (p *overridePair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("override entry has %d elements, expected 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Key); err != nil {
		return fmt.Errorf("override key: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Value); err != nil {
		return fmt.Errorf("override value: %w", err)
	}
	return nil
}

// encodeSnapshot serializes the full session state. Override entries are
// sorted so the output is stable across runs.
func encodeSnapshot(player core.Coord, held *int, overrides map[core.Coord]int) (string, error) {
	pairs := make([]overridePair, 0, len(overrides))
	for c, v := range overrides {
		pairs = append(pairs, overridePair{Key: c.Key(), Value: v})
	}
	sort.Slice(pairs, func(a, b int) bool {
		return pairs[a].Key < pairs[b].Key
	})

	dto := snapshotDTO{
		Player:    coordDTO{I: player.I, J: player.J},
		Held:      held,
		Overrides: pairs,
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return "", fmt.Errorf("world: cannot encode snapshot: %w", err)
	}
	return string(data), nil
}

// decodeSnapshot parses and validates a stored session. Any schema
// violation is an error; the caller treats that as "corrupt - discard".
func decodeSnapshot(raw string) (snapshot, error) {
	var dto snapshotDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return snapshot{}, fmt.Errorf("world: cannot parse snapshot: %w", err)
	}

	if dto.Held != nil && *dto.Held <= 0 {
		return snapshot{}, fmt.Errorf("world: snapshot held value %d is not positive", *dto.Held)
	}

	overrides := make(map[core.Coord]int, len(dto.Overrides))
	for _, p := range dto.Overrides {
		c, err := core.ParseKey(p.Key)
		if err != nil {
			return snapshot{}, fmt.Errorf("world: snapshot override: %w", err)
		}
		if p.Value < 0 {
			return snapshot{}, fmt.Errorf("world: snapshot override %s has negative value %d", p.Key, p.Value)
		}
		overrides[c] = p.Value
	}

	return snapshot{
		Player:    core.C(dto.Player.I, dto.Player.J),
		Held:      dto.Held,
		Overrides: overrides,
	}, nil
}
