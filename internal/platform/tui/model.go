package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/location"
	"github.com/vovakirdan/geomerge/internal/storage"
	"github.com/vovakirdan/geomerge/internal/world"
)

// hudRows is the number of terminal rows reserved below the viewport.
const hudRows = 4

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameModel is the Bubble Tea model driving a GeoMerge session.
// It is a pure consumer of the world model: it issues commands and
// renders whatever the model reports back.
type GameModel struct {
	world    *world.Model
	store    *storage.Store // May be nil; wins then go unrecorded
	feed     location.Feed  // May be nil; walk mode then unavailable
	screen   *core.Screen
	keys     *KeyMapper
	logger   *log.Logger
	username string

	// Interaction cursor, relative to the player and clamped to range.
	curDI int
	curDJ int

	// Active location subscription, nil when key movement is active.
	feedCancel context.CancelFunc
	feedCh     <-chan location.Sample
	walking    bool

	status      string
	wins        WinsModel
	showWins    bool
	quitting    bool
	walkOnStart bool
}

// NewGameModel creates the Bubble Tea model for a session.
func NewGameModel(w *world.Model, store *storage.Store, feed location.Feed, cfg core.RuntimeConfig, username string, logger *log.Logger) GameModel {
	return GameModel{
		world:    w,
		store:    store,
		feed:     feed,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-hudRows)),
		keys:     NewKeyMapper(),
		logger:   logger,
		username: username,
	}
}

// WithWalkOnStart returns a copy of the model that enables walk mode
// as soon as the program starts.
func (m GameModel) WithWalkOnStart() GameModel {
	m.walkOnStart = true
	return m
}

// Init implements tea.Model. The game is event-driven: nothing runs
// until input or a feed sample arrives.
func (m GameModel) Init() tea.Cmd {
	if m.walkOnStart {
		return func() tea.Msg { return startWalkMsg{} }
	}
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-hudRows))
		return m, nil

	case sampleMsg:
		return m.handleSample(msg)

	case startWalkMsg:
		if !m.walking {
			return m.toggleWalk()
		}
		return m, nil

	case feedClosedMsg:
		if msg.ch == m.feedCh {
			m.walking = false
			m.feedCh = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showWins {
		switch msg.String() {
		case "ctrl+c", "q":
			m.stopFeed()
			m.quitting = true
			return m, tea.Quit
		}
		var done bool
		m.wins, done = m.wins.Update(msg)
		if done {
			m.showWins = false
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.stopFeed()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMoveUp:
		m.movePlayer(1, 0)
	case core.ActionMoveDown:
		m.movePlayer(-1, 0)
	case core.ActionMoveLeft:
		m.movePlayer(0, -1)
	case core.ActionMoveRight:
		m.movePlayer(0, 1)

	case core.ActionCursorUp:
		m.moveCursor(1, 0)
	case core.ActionCursorDown:
		m.moveCursor(-1, 0)
	case core.ActionCursorLeft:
		m.moveCursor(0, -1)
	case core.ActionCursorRight:
		m.moveCursor(0, 1)

	case core.ActionInteract:
		m.interact()

	case core.ActionNewGame:
		m.world.NewGame()
		m.curDI, m.curDJ = 0, 0
		m.status = "new game"

	case core.ActionToggleWalk:
		return m.toggleWalk()

	case core.ActionWins:
		m.openWins()
	}

	return m, nil
}

// movePlayer translates the player unless the location feed is driving.
func (m *GameModel) movePlayer(di, dj int) {
	if m.walking {
		m.status = "walk mode active - press g for key movement"
		return
	}
	m.world.Move(di, dj)
}

// moveCursor shifts the interaction cursor, clamped to the rules range.
func (m *GameModel) moveCursor(di, dj int) {
	r := m.world.Rules().InteractRange
	m.curDI = core.Clamp(m.curDI+di, -r, r)
	m.curDJ = core.Clamp(m.curDJ+dj, -r, r)
}

// interact runs the pick-up/combine state machine at the cursor and
// translates the result into HUD feedback, recording wins.
func (m *GameModel) interact() {
	target := m.world.Player().Add(m.curDI, m.curDJ)
	res := m.world.Interact(target)

	switch res.Outcome {
	case world.OutcomePicked:
		m.status = fmt.Sprintf("picked up %d", res.Value)
	case world.OutcomeCombined:
		m.status = fmt.Sprintf("crafted %d", res.Value)
	case world.OutcomeNothing:
		m.status = "nothing here"
	case world.OutcomeMismatch:
		m.status = "tokens must match to combine"
	case world.OutcomeOutOfRange:
		m.status = "out of reach"
	}

	if res.Win {
		m.status = fmt.Sprintf("YOU WIN! %s %d - session reset", res.WinKind, res.Value)
		m.curDI, m.curDJ = 0, 0
		m.recordWin(res)
	}
}

// recordWin persists the win, best-effort.
func (m *GameModel) recordWin(res world.InteractResult) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveWin(string(res.WinKind), res.Value, m.username); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not record win", "error", err)
		}
	}
}

// toggleWalk switches between key movement and the location feed.
// The two are mutually exclusive: starting the feed takes over movement,
// stopping it cancels the subscription completely.
func (m GameModel) toggleWalk() (tea.Model, tea.Cmd) {
	if m.walking {
		m.stopFeed()
		m.walking = false
		m.status = "walk mode off"
		return m, nil
	}

	if m.feed == nil {
		m.status = "no location feed available"
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.feed.Watch(ctx)
	if err != nil {
		cancel()
		if m.logger != nil {
			m.logger.Warn("could not start location feed", "error", err)
		}
		m.status = "location feed failed to start"
		return m, nil
	}

	m.feedCancel = cancel
	m.feedCh = ch
	m.walking = true
	m.status = "walk mode on"
	return m, waitForSample(ch)
}

// stopFeed cancels the location subscription if one is active.
func (m *GameModel) stopFeed() {
	if m.feedCancel != nil {
		m.feedCancel()
		m.feedCancel = nil
	}
}

// handleSample applies one location sample and re-arms the listener.
// Samples from a superseded subscription are dropped.
func (m GameModel) handleSample(msg sampleMsg) (tea.Model, tea.Cmd) {
	if !m.walking || msg.ch != m.feedCh {
		return m, nil
	}

	s := msg.sample
	if s.Err != nil {
		// Sensor failure: diagnostic only, movement stalls.
		if m.logger != nil {
			m.logger.Warn("location sample failed", "error", s.Err)
		}
		m.status = "waiting for location..."
		return m, waitForSample(m.feedCh)
	}

	if m.world.ApplyLocation(s.Lat, s.Lng) {
		m.status = fmt.Sprintf("walked to %s", m.world.Player())
	}
	return m, waitForSample(m.feedCh)
}

// openWins loads the win history view.
func (m *GameModel) openWins() {
	var entries []storage.WinEntry
	if m.store != nil {
		var err error
		entries, err = m.store.RecentWins(50)
		if err != nil {
			if m.logger != nil {
				m.logger.Warn("could not load win history", "error", err)
			}
			m.status = "could not load win history"
			return
		}
	}
	m.wins = NewWinsModel(entries, m.screen.Width(), m.screen.Height())
	m.showWins = true
}

// View renders the viewport and HUD.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showWins {
		return m.wins.View()
	}

	RenderWorld(m.screen, m.world, m.curDI, m.curDJ)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(m.hudLine()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows move · wasd cursor · space interact · g walk · n new · t wins · q quit"))
	return b.String()
}

// hudLine summarizes the session for the HUD.
func (m GameModel) hudLine() string {
	hand := "empty hand"
	if v, ok := m.world.Held(); ok {
		hand = fmt.Sprintf("holding %d", v)
	}

	mode := "keys"
	if m.walking {
		mode = "walking"
	}

	p := m.world.Player()
	lat, lng := p.LatLng(m.world.Rules().CellSize)
	return fmt.Sprintf("cell %s (%.5f, %.5f) · %s · goal %d · %s",
		p, lat, lng, hand, m.world.Rules().Target, mode)
}
