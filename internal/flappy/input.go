package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Command is what a tap means in the current state.
type Command int

const (
	CommandNone    Command = iota // Tap ignored
	CommandStart                  // Idle -> Running
	CommandJump                   // Bird jumps
	CommandRestart                // Replay control pressed on the game-over screen
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandStart:
		return "Start"
	case CommandJump:
		return "Jump"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// CommandFor translates a tap at world point (x, y) into a command.
// replay is the replay control's bounds, only consulted on the game-over screen.
func CommandFor(state State, replay core.Rect, x, y float64) Command {
	switch state {
	case StateIdle:
		return CommandStart
	case StateRunning:
		return CommandJump
	case StateGameOver:
		if replay.Contains(x, y) {
			return CommandRestart
		}
	}
	return CommandNone
}
