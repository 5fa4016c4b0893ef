package core

// Action represents a semantic platform action, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionTap               // Space, Up, W, Enter, mouse click - the one game input
	ActionReplay            // R - tap the replay control on the game-over screen
	ActionPause             // P, Escape - pause/unpause
	ActionAutopilot         // A - toggle the autopilot policy
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionReplay:
		return "Replay"
	case ActionPause:
		return "Pause"
	case ActionAutopilot:
		return "Autopilot"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
