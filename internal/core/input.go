package core

// Action represents a semantic game action, abstracted from physical key presses.
// Renderers translate their key events into actions; the game never sees raw keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - move paddle left
	ActionRight        // Right arrow, D - move paddle right
	ActionQuit         // Q, Ctrl+C - abandon the game
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action moves the paddle.
func (a Action) IsDirectional() bool {
	return a == ActionLeft || a == ActionRight
}
