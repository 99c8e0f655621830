package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geomerge/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "up":
		return core.ActionMoveUp, false
	case "down":
		return core.ActionMoveDown, false
	case "left":
		return core.ActionMoveLeft, false
	case "right":
		return core.ActionMoveRight, false
	case "w":
		return core.ActionCursorUp, false
	case "s":
		return core.ActionCursorDown, false
	case "a":
		return core.ActionCursorLeft, false
	case "d":
		return core.ActionCursorRight, false
	case " ", "enter":
		return core.ActionInteract, false
	case "n":
		return core.ActionNewGame, false
	case "g":
		return core.ActionToggleWalk, false
	case "t":
		return core.ActionWins, false
	case "esc", "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}
