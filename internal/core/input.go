package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game consumes actions only.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - move left
	ActionRight          // Right arrow, l - move right
	ActionUp             // Up arrow, k - move up
	ActionDown           // Down arrow, j - move down
	ActionConfirm        // Enter - confirm (restart after game over)
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Esc, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is one of the four movement
// requests. Only the most recent directional action before a tick is
// honored; earlier ones in the same tick window are overwritten.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown:
		return true
	}
	return false
}
