package world

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geomerge/internal/core"
)

// Rules are the fixed parameters of a session.
type Rules struct {
	CellSize      float64    // Geographic size of one cell, in degrees
	InteractRange int        // Chebyshev pick-up/combine range, in cells
	Target        int        // Token value that wins the session
	Start         core.Coord // Player position for a fresh session
	Thresholds    Thresholds // Generator distribution
}

// DefaultRules returns the standard game parameters.
func DefaultRules() Rules {
	return Rules{
		CellSize:      1e-4,
		InteractRange: 3,
		Target:        32,
		Start:         core.C(0, 0),
		Thresholds:    DefaultThresholds(),
	}
}

// Outcome classifies what an Interact call did.
type Outcome int

const (
	OutcomeOutOfRange Outcome = iota // Target cell beyond interaction range
	OutcomePicked                    // Token moved from the cell to the hand
	OutcomeCombined                  // Held token merged into the cell, doubling it
	OutcomeNothing                   // Empty hand on an empty cell
	OutcomeMismatch                  // Held token cannot be placed there
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOutOfRange:
		return "OutOfRange"
	case OutcomePicked:
		return "Picked"
	case OutcomeCombined:
		return "Combined"
	case OutcomeNothing:
		return "Nothing"
	case OutcomeMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// WinKind distinguishes how the target value was reached.
type WinKind string

const (
	WinPickup WinKind = "pickup" // Picked up a token already at the target
	WinCraft  WinKind = "craft"  // Combined two tokens into the target
)

// InteractResult reports the effect of one Interact call. Wins are
// ordinary return values, not errors.
type InteractResult struct {
	Outcome Outcome
	Value   int     // Token picked up, or the combined value
	Win     bool    // Value reached the target
	WinKind WinKind // Set only when Win is true
}

// SnapshotStore is the persistence contract the model relies on: a
// synchronous key-value store with no partial-failure semantics beyond
// "absent or malformed means no session".
type SnapshotStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// DefaultSnapshotKey is the store key for a local single-player session.
// The SSH server keys sessions per user instead.
const DefaultSnapshotKey = "session"

// Model owns the complete game state: player position, the held token,
// and the sparse override table recording cells whose value diverged
// from the generator default. It is the sole source of truth; rendering
// layers only read from it and issue commands into it.
//
// The model is single-threaded: all operations run to completion in
// response to one external event at a time.
type Model struct {
	rules  Rules
	gen    Generator
	store  SnapshotStore
	key    string
	logger *log.Logger

	player    core.Coord
	held      int // Valid only when holding
	holding   bool
	overrides map[core.Coord]int
}

// NewModel creates a model and restores a prior session from the store,
// if one exists. A nil store disables persistence; a nil logger discards
// diagnostics. A malformed stored session is purged and play starts
// fresh - restore never fails.
func NewModel(rules Rules, store SnapshotStore, key string, logger *log.Logger) *Model {
	if key == "" {
		key = DefaultSnapshotKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		rules:  rules,
		gen:    NewGenerator(rules.Thresholds),
		store:  store,
		key:    key,
		logger: logger,
	}
	m.resetState()
	m.restore()
	return m
}

// Rules returns the session parameters.
func (m *Model) Rules() Rules {
	return m.rules
}

// Player returns the player's current cell.
func (m *Model) Player() core.Coord {
	return m.player
}

// Held returns the held token value and whether the hand is full.
func (m *Model) Held() (int, bool) {
	if !m.holding {
		return 0, false
	}
	return m.held, true
}

// OverrideCount returns the number of cells diverged from the generator.
func (m *Model) OverrideCount() int {
	return len(m.overrides)
}

// CurrentValue returns the cell's value: the override if one exists,
// else the generator default. Every consumer must go through this;
// reading the generator directly would resurrect consumed tokens.
func (m *Model) CurrentValue(c core.Coord) int {
	if v, ok := m.overrides[c]; ok {
		return v
	}
	return m.gen.BaseValue(c)
}

// IsNear reports whether the cell is within interaction range of the
// player.
func (m *Model) IsNear(c core.Coord) bool {
	return m.player.Within(c, m.rules.InteractRange)
}

// Move translates the player by (di, dj) cells. The grid is unbounded,
// so there is no bounds check.
func (m *Model) Move(di, dj int) {
	m.player = m.player.Add(di, dj)
	m.persist()
}

// MoveTo repositions the player absolutely.
func (m *Model) MoveTo(c core.Coord) {
	m.player = c
	m.persist()
}

// ApplyLocation converts a geographic sample to a cell and moves the
// player there if it differs from the current cell. Returns true if the
// player moved.
func (m *Model) ApplyLocation(lat, lng float64) bool {
	c := core.FromLatLng(lat, lng, m.rules.CellSize)
	if c.Equal(m.player) {
		return false
	}
	m.MoveTo(c)
	return true
}

// Interact picks up from or combines into the given cell.
//
// With an empty hand, a non-empty cell is emptied and its token moves to
// the hand. With a held token, a cell of equal positive value doubles
// and the hand empties; anything else is a no-op. Reaching the target
// value either way wins and resets the session.
//
// Callers are expected to pre-filter by proximity, but the range is
// re-checked here regardless.
func (m *Model) Interact(c core.Coord) InteractResult {
	if !m.IsNear(c) {
		return InteractResult{Outcome: OutcomeOutOfRange}
	}

	cv := m.CurrentValue(c)

	if !m.holding {
		if cv == 0 {
			return InteractResult{Outcome: OutcomeNothing}
		}
		m.overrides[c] = 0
		m.held = cv
		m.holding = true
		if cv >= m.rules.Target {
			m.winReset()
			return InteractResult{Outcome: OutcomePicked, Value: cv, Win: true, WinKind: WinPickup}
		}
		m.persist()
		return InteractResult{Outcome: OutcomePicked, Value: cv}
	}

	if cv != m.held || cv == 0 {
		// Placement on empty or mismatched cells is rejected, not a swap.
		return InteractResult{Outcome: OutcomeMismatch}
	}

	crafted := 2 * m.held
	m.overrides[c] = crafted
	m.held = 0
	m.holding = false
	if crafted >= m.rules.Target {
		m.winReset()
		return InteractResult{Outcome: OutcomeCombined, Value: crafted, Win: true, WinKind: WinCraft}
	}
	m.persist()
	return InteractResult{Outcome: OutcomeCombined, Value: crafted}
}

// NewGame clears all session state and deletes the persisted snapshot,
// so a later restart does not resurrect the old session.
func (m *Model) NewGame() {
	m.resetState()
	m.deleteSnapshot()
}

// winReset ends the session after any win. Pickup wins and craft wins
// reset identically: one policy, applied in one place.
func (m *Model) winReset() {
	m.resetState()
	m.deleteSnapshot()
}

// resetState returns in-memory state to a fresh session.
func (m *Model) resetState() {
	m.player = m.rules.Start
	m.held = 0
	m.holding = false
	m.overrides = make(map[core.Coord]int)
}

// persist writes the full snapshot to the store, best-effort. A write
// failure is logged and play continues.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	raw, err := encodeSnapshot(m.player, m.heldPtr(), m.overrides)
	if err != nil {
		m.logger.Warn("could not encode session snapshot", "error", err)
		return
	}
	if err := m.store.Set(m.key, raw); err != nil {
		m.logger.Warn("could not persist session", "error", err)
	}
}

// restore loads a prior session. Missing means fresh; malformed means
// purge the record and start fresh.
func (m *Model) restore() {
	if m.store == nil {
		return
	}
	raw, ok, err := m.store.Get(m.key)
	if err != nil {
		m.logger.Warn("could not read saved session", "error", err)
		return
	}
	if !ok {
		return
	}

	snap, err := decodeSnapshot(raw)
	if err != nil {
		m.logger.Warn("discarding corrupt saved session", "error", err)
		m.deleteSnapshot()
		return
	}

	m.player = snap.Player
	if snap.Held != nil {
		m.held = *snap.Held
		m.holding = true
	}
	m.overrides = snap.Overrides
}

func (m *Model) deleteSnapshot() {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(m.key); err != nil {
		m.logger.Warn("could not delete saved session", "error", err)
	}
}

func (m *Model) heldPtr() *int {
	if !m.holding {
		return nil
	}
	v := m.held
	return &v
}
