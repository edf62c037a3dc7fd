package core

// Action represents a semantic game action, abstracted from physical key presses.
// Each key event is translated into exactly one action and handled on its own.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // H, Left arrow - move paddle left
	ActionRight          // L, Right arrow - move paddle right
	ActionLaunch         // Space - launch the docked ball
	ActionPause          // P - pause/unpause a running game
	ActionRestart        // R - start over from the initial layout
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionLaunch:
		return "Launch"
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
