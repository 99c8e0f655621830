package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/geomerge/internal/core"
)

// memStore is an in-memory SnapshotStore for tests.
type memStore struct {
	data    map[string]string
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	if s.failSet {
		return errors.New("store unavailable")
	}
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func newTestModel(store SnapshotStore) *Model {
	return NewModel(DefaultRules(), store, "", nil)
}

// findTokenNear returns a cell within interaction range holding the
// given value, or any non-empty cell when value is 0.
func findTokenNear(t *testing.T, m *Model, value int) core.Coord {
	t.Helper()
	r := m.Rules().InteractRange
	p := m.Player()
	for di := -r; di <= r; di++ {
		for dj := -r; dj <= r; dj++ {
			c := p.Add(di, dj)
			cv := m.CurrentValue(c)
			if (value == 0 && cv > 0) || (value > 0 && cv == value) {
				return c
			}
		}
	}
	t.Fatalf("no cell with value %d within range of %v", value, p)
	return core.Coord{}
}

func TestPickupClearsSource(t *testing.T) {
	m := newTestModel(newMemStore())

	c := findTokenNear(t, m, 0)
	want := m.CurrentValue(c)

	res := m.Interact(c)
	if res.Outcome != OutcomePicked {
		t.Fatalf("Interact outcome = %v, expected Picked", res.Outcome)
	}
	if res.Value != want {
		t.Errorf("picked value = %d, expected %d", res.Value, want)
	}

	held, holding := m.Held()
	if !holding || held != want {
		t.Errorf("hand = (%d, %v), expected Holding(%d)", held, holding, want)
	}
	if cv := m.CurrentValue(c); cv != 0 {
		t.Errorf("source cell value after pickup = %d, expected 0", cv)
	}
}

func TestPickupFromEmptyCellIsNoop(t *testing.T) {
	m := newTestModel(newMemStore())

	// Find an empty cell in range.
	var empty core.Coord
	found := false
	for di := -3; di <= 3 && !found; di++ {
		for dj := -3; dj <= 3; dj++ {
			c := m.Player().Add(di, dj)
			if m.CurrentValue(c) == 0 {
				empty, found = c, true
				break
			}
		}
	}
	if !found {
		t.Fatal("no empty cell within range")
	}

	res := m.Interact(empty)
	if res.Outcome != OutcomeNothing {
		t.Errorf("Interact on empty cell = %v, expected Nothing", res.Outcome)
	}
	if _, holding := m.Held(); holding {
		t.Error("hand should stay empty")
	}
}

// preload builds a model restored from a handcrafted snapshot.
func preload(t *testing.T, store *memStore, raw string) *Model {
	t.Helper()
	store.data[DefaultSnapshotKey] = raw
	return newTestModel(store)
}

func TestCombineDoublesAndClearsHand(t *testing.T) {
	store := newMemStore()
	m := preload(t, store, `{"player":{"i":0,"j":0},"held":4,"overrides":[["1,2",4]]}`)

	res := m.Interact(core.C(1, 2))
	if res.Outcome != OutcomeCombined {
		t.Fatalf("Interact outcome = %v, expected Combined", res.Outcome)
	}
	if res.Value != 8 {
		t.Errorf("combined value = %d, expected 8", res.Value)
	}
	if _, holding := m.Held(); holding {
		t.Error("hand should be empty after combining")
	}
	if cv := m.CurrentValue(core.C(1, 2)); cv != 8 {
		t.Errorf("cell value after combine = %d, expected 8", cv)
	}
}

func TestCombineRejectsMismatch(t *testing.T) {
	tests := []struct {
		name     string
		snapshot string
		target   core.Coord
	}{
		{
			name:     "mismatched positive value",
			snapshot: `{"player":{"i":0,"j":0},"held":2,"overrides":[["1,1",4]]}`,
			target:   core.C(1, 1),
		},
		{
			name:     "empty target cell",
			snapshot: `{"player":{"i":0,"j":0},"held":2,"overrides":[["1,1",0]]}`,
			target:   core.C(1, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := preload(t, newMemStore(), tc.snapshot)
			before := m.CurrentValue(tc.target)

			res := m.Interact(tc.target)
			if res.Outcome != OutcomeMismatch {
				t.Errorf("Interact outcome = %v, expected Mismatch", res.Outcome)
			}
			if held, holding := m.Held(); !holding || held != 2 {
				t.Errorf("hand = (%d, %v), expected Holding(2)", held, holding)
			}
			if after := m.CurrentValue(tc.target); after != before {
				t.Errorf("target cell changed from %d to %d", before, after)
			}
		})
	}
}

func TestRangeEnforcement(t *testing.T) {
	m := newTestModel(newMemStore())

	if res := m.Interact(core.C(0, 4)); res.Outcome != OutcomeOutOfRange {
		t.Errorf("Interact((0,4)) = %v, expected OutOfRange", res.Outcome)
	}
	// (3,3) is within range 3 on both axes; anything but OutOfRange is fine.
	if res := m.Interact(core.C(3, 3)); res.Outcome == OutcomeOutOfRange {
		t.Error("Interact((3,3)) rejected as out of range, expected it to be permitted")
	}
}

func TestWinByCraftResetsSession(t *testing.T) {
	store := newMemStore()
	m := preload(t, store, `{"player":{"i":0,"j":0},"held":16,"overrides":[["1,1",16]]}`)

	res := m.Interact(core.C(1, 1))
	if res.Outcome != OutcomeCombined || !res.Win {
		t.Fatalf("Interact = %+v, expected winning Combined", res)
	}
	if res.Value != 32 {
		t.Errorf("win value = %d, expected 32", res.Value)
	}
	if res.WinKind != WinCraft {
		t.Errorf("win kind = %q, expected %q", res.WinKind, WinCraft)
	}

	// Any win resets: state fresh, snapshot gone.
	if _, holding := m.Held(); holding {
		t.Error("hand should be empty after win reset")
	}
	if m.OverrideCount() != 0 {
		t.Errorf("override count after win = %d, expected 0", m.OverrideCount())
	}
	if !m.Player().Equal(m.Rules().Start) {
		t.Errorf("player after win = %v, expected %v", m.Player(), m.Rules().Start)
	}
	if _, ok := store.data[DefaultSnapshotKey]; ok {
		t.Error("persisted snapshot should be deleted after win")
	}
}

func TestWinByPickupResetsSession(t *testing.T) {
	store := newMemStore()
	m := preload(t, store, `{"player":{"i":0,"j":0},"held":null,"overrides":[["2,2",32]]}`)

	res := m.Interact(core.C(2, 2))
	if res.Outcome != OutcomePicked || !res.Win {
		t.Fatalf("Interact = %+v, expected winning Picked", res)
	}
	if res.WinKind != WinPickup {
		t.Errorf("win kind = %q, expected %q", res.WinKind, WinPickup)
	}
	if m.OverrideCount() != 0 {
		t.Error("session should be reset after pickup win")
	}
	if _, ok := store.data[DefaultSnapshotKey]; ok {
		t.Error("persisted snapshot should be deleted after win")
	}
}

func TestOverridePrecedenceSurvivesRestart(t *testing.T) {
	store := newMemStore()
	m1 := newTestModel(store)

	c := findTokenNear(t, m1, 0)
	m1.Interact(c) // Empties the cell via an override of 0.

	// Fresh model on the same store simulates a restart.
	m2 := newTestModel(store)
	if cv := m2.CurrentValue(c); cv != 0 {
		t.Errorf("CurrentValue(%v) after restart = %d, expected override 0", c, cv)
	}
	if gen := NewGenerator(DefaultThresholds()).BaseValue(c); gen == 0 {
		t.Errorf("test cell %v should have a non-zero generator default", c)
	}
}

func TestRoundTripPersistence(t *testing.T) {
	store := newMemStore()
	m := preload(t, store, `{"player":{"i":5,"j":5},"held":1,"overrides":[["1,2",8]]}`)

	if !m.Player().Equal(core.C(5, 5)) {
		t.Errorf("player = %v, expected (5,5)", m.Player())
	}
	if held, holding := m.Held(); !holding || held != 1 {
		t.Errorf("hand = (%d, %v), expected Holding(1)", held, holding)
	}
	if cv := m.CurrentValue(core.C(1, 2)); cv != 8 {
		t.Errorf("CurrentValue((1,2)) = %d, expected 8", cv)
	}

	// Mutate, then load into another fresh instance.
	m.Move(1, 0)
	m2 := newTestModel(store)
	if !m2.Player().Equal(core.C(6, 5)) {
		t.Errorf("player after reload = %v, expected (6,5)", m2.Player())
	}
	if cv := m2.CurrentValue(core.C(1, 2)); cv != 8 {
		t.Errorf("override lost on reload: CurrentValue((1,2)) = %d", cv)
	}
}

func TestCorruptStoreResilience(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "}{ definitely not json"},
		{name: "wrong shape", raw: `{"score": 42}`},
		{name: "negative held", raw: `{"player":{"i":0,"j":0},"held":-4,"overrides":[]}`},
		{name: "bad override key", raw: `{"player":{"i":0,"j":0},"held":null,"overrides":[["nokey",1]]}`},
		{name: "negative override value", raw: `{"player":{"i":0,"j":0},"held":null,"overrides":[["1,1",-2]]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			store.data[DefaultSnapshotKey] = tc.raw

			m := newTestModel(store)

			if !m.Player().Equal(m.Rules().Start) {
				t.Errorf("player = %v, expected fresh start %v", m.Player(), m.Rules().Start)
			}
			if _, holding := m.Held(); holding {
				t.Error("hand should be empty after corrupt restore")
			}
			if m.OverrideCount() != 0 {
				t.Error("overrides should be empty after corrupt restore")
			}
			if _, ok := store.data[DefaultSnapshotKey]; ok {
				t.Error("corrupt entry should be purged from the store")
			}
		})
	}
}

func TestMoveIsUnboundedAndPersists(t *testing.T) {
	store := newMemStore()
	m := newTestModel(store)

	m.Move(-1000000, 1)
	if !m.Player().Equal(core.C(-1000000, 1)) {
		t.Errorf("player = %v, expected (-1000000,1)", m.Player())
	}

	m2 := newTestModel(store)
	if !m2.Player().Equal(core.C(-1000000, 1)) {
		t.Errorf("player after reload = %v, expected (-1000000,1)", m2.Player())
	}
}

func TestApplyLocation(t *testing.T) {
	m := newTestModel(newMemStore())

	// Sample inside the current cell: no move.
	if moved := m.ApplyLocation(0.00001, 0.00001); moved {
		t.Error("sample within the current cell should not move the player")
	}

	// Sample in a different cell: absolute reposition.
	if moved := m.ApplyLocation(0.00025, -0.00001); !moved {
		t.Error("sample in a new cell should move the player")
	}
	if !m.Player().Equal(core.C(2, -1)) {
		t.Errorf("player = %v, expected (2,-1)", m.Player())
	}
}

func TestNewGameClearsEverything(t *testing.T) {
	store := newMemStore()
	m := preload(t, store, `{"player":{"i":9,"j":9},"held":2,"overrides":[["1,1",16]]}`)

	m.NewGame()

	if !m.Player().Equal(m.Rules().Start) {
		t.Errorf("player = %v, expected start", m.Player())
	}
	if _, holding := m.Held(); holding {
		t.Error("hand should be empty")
	}
	if m.OverrideCount() != 0 {
		t.Error("overrides should be cleared")
	}
	if _, ok := store.data[DefaultSnapshotKey]; ok {
		t.Error("snapshot should be deleted")
	}
}

func TestPersistFailureDoesNotBreakPlay(t *testing.T) {
	store := newMemStore()
	store.failSet = true
	m := newTestModel(store)

	m.Move(1, 1) // Write fails; movement must still apply.
	if !m.Player().Equal(core.C(1, 1)) {
		t.Errorf("player = %v, expected (1,1)", m.Player())
	}
}
