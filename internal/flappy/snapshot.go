package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares nothing with the session.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	Autopilot bool

	CameraX   float64 // World x at the center of the view
	ViewportW float64
	ViewportH float64

	Bird  core.Rect
	Pipes []Pipe
	Gates []ScoreGate

	Banner core.Rect // Game-over banner
	Replay core.Rect // Replay control, below the banner

	BackgroundOffset float64
}

// Viewport returns the world-to-cell transform for a screen of the given size.
func (s Snapshot) Viewport(screenW, screenH int) core.Viewport {
	return core.Viewport{
		WorldW:  s.ViewportW,
		WorldH:  s.ViewportH,
		ScreenW: screenW,
		ScreenH: screenH,
		CameraX: s.CameraX,
	}
}
