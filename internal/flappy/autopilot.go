package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Autopilot is a demo policy that keeps the bird just above the next bottom
// pipe. It is layered on top of manual input; both may jump in one frame.
type Autopilot struct {
	Enabled   bool
	Threshold float64 // Jump when the bird is this close above the pipe top
}

// NewAutopilot creates the policy from config.
func NewAutopilot(cfg config.FlappyAutopilot) Autopilot {
	return Autopilot{Enabled: cfg.Enabled, Threshold: cfg.Threshold}
}

// ShouldJump reports whether the bird should jump now.
func (a Autopilot) ShouldJump(b Bird, field *PipeField) bool {
	if !a.Enabled {
		return false
	}
	p, ok := field.ClosestBottomAhead(b.Pos.X)
	if !ok {
		return false
	}
	return b.Pos.Y <= a.Threshold+p.Bounds.Top()
}
