package core

// Action represents a semantic game action, abstracted from physical key presses
// and pointer gestures.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, swipe up
	ActionDown           // S, Down arrow, swipe down
	ActionLeft           // A, Left arrow, swipe left
	ActionRight          // D, Right arrow, swipe right
	ActionPause          // Space, P
	ActionRestart        // R - only honored after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
