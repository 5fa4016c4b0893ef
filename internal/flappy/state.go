// Package flappy implements a Flappy Bird-style session.
// A bird auto-advances through pairs of pipes; the player taps to jump.
// The package owns the per-frame update, obstacle generation, collision and
// scoring, and the Idle -> Running -> GameOver -> Idle lifecycle. Rendering,
// input devices and durable storage live elsewhere.
package flappy

// State is the session lifecycle state.
type State int

const (
	StateIdle     State = iota // Waiting for the first tap
	StateRunning               // World scrolls, physics and collisions active
	StatePaused                // Frozen mid-run
	StateGameOver              // Crashed; waiting for a tap on the replay control
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a set of things that happened during one Update.
type Event uint8

const (
	EventJump  Event = 1 << iota // Autopilot made the bird jump
	EventScore                   // At least one score gate was crossed
	EventCrash                   // The bird hit a pipe or left the playfield
)

// Has reports whether e contains all events in other.
func (e Event) Has(other Event) bool {
	return e&other == other
}

// StepResult is returned by Session.Update.
type StepResult struct {
	State  State
	Score  int
	Events Event
}
