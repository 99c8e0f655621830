package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game model never sees
// raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // Arrow keys - move the player one cell
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionCursorUp // WASD - move the interaction cursor within range
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight
	ActionInteract   // Space/Enter - pick up or combine at the cursor
	ActionNewGame    // N - start a fresh session
	ActionToggleWalk // G - toggle the location feed on/off
	ActionWins       // T - toggle the win history view
	ActionBack       // Esc - leave the current view
	ActionQuit       // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionInteract:
		return "Interact"
	case ActionNewGame:
		return "NewGame"
	case ActionToggleWalk:
		return "ToggleWalk"
	case ActionWins:
		return "Wins"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
