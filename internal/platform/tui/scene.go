package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	CloudChar     = '~'
	GroundChar    = '═'
)

// cloud is the glyph drawn for each cloud.
var cloud = strings.Repeat(string(CloudChar), 3)

// clouds are background decorations: x within one background tile, and
// height as a fraction of the view.
var clouds = []struct{ x, y float64 }{
	{1.5, 0.85},
	{6.0, 0.7},
	{11.5, 0.9},
	{14.0, 0.6},
}

// DrawScene renders a session snapshot onto the screen.
func DrawScene(dst *core.Screen, snap flappy.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := snap.Viewport(dst.Width(), dst.Height())

	drawBackground(dst, v, snap)

	for _, p := range snap.Pipes {
		drawPipe(dst, v, p)
	}

	drawBird(dst, v, snap.Bird)
	drawHUD(dst, snap)

	switch snap.State {
	case flappy.StateIdle:
		drawCenteredMessage(dst, "FLAPPY", "Space or click to start")
	case flappy.StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case flappy.StateGameOver:
		drawGameOver(dst, v, snap)
	}
}

// drawBackground draws parallax clouds and the floor line.
func drawBackground(dst *core.Screen, v core.Viewport, snap flappy.Snapshot) {
	w := snap.ViewportW
	// Clouds live in screen space and scroll with the background offset.
	sky := v
	sky.CameraX = w / 2
	for _, c := range clouds {
		x := math.Mod(c.x-snap.BackgroundOffset+w, w)
		col, row := sky.ToCell(x, c.y*snap.ViewportH)
		dst.DrawText(col, row, cloud, core.ColorGray)
	}
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGreen)
}

// drawPipe renders a single pipe with a cap on its open end.
func drawPipe(dst *core.Screen, v core.Viewport, p flappy.Pipe) {
	r := v.ToCellRect(p.Bounds)
	dst.DrawRect(r, PipeChar, core.ColorGreen)
	if r.H < 2 {
		return
	}
	if p.Top {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorBrightGreen)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawBird renders the bird with its beak in the top-right cell.
func drawBird(dst *core.Screen, v core.Viewport, bounds core.Rect) {
	r := v.ToCellRect(bounds)
	dst.DrawRect(r, BirdChar, core.ColorBrightYellow)
	dst.SetColor(r.Right()-1, r.Y, BirdBeakChar, core.ColorOrange)
}

// drawHUD draws the score and the best score in the top-left corner.
func drawHUD(dst *core.Screen, snap flappy.Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	if snap.Autopilot {
		hud += "[autopilot] "
	}
	dst.DrawText(1, 0, hud, core.ColorWhite)
}

// drawGameOver draws the banner and the replay control where the session
// placed them, so a click on the drawn button hits the session's bounds.
func drawGameOver(dst *core.Screen, v core.Viewport, snap flappy.Snapshot) {
	banner := v.ToCellRect(snap.Banner)
	dst.DrawRect(banner, ' ', core.ColorDefault)
	dst.DrawBox(banner, core.ColorRed)
	drawTextIn(dst, banner, banner.H/2-1, "GAME OVER", core.ColorRed)
	drawTextIn(dst, banner, banner.H/2, fmt.Sprintf("Score: %d  Best: %d", snap.Score, max(snap.Score, snap.HighScore)), core.ColorWhite)

	replay := v.ToCellRect(snap.Replay)
	dst.DrawRect(replay, ' ', core.ColorDefault)
	dst.DrawBox(replay, core.ColorYellow)
	drawTextIn(dst, replay, replay.H/2, "REPLAY", core.ColorBrightYellow)

	dst.DrawTextCentered(replay.Bottom(), "click REPLAY or press R", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewCellRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	drawTextIn(dst, box, 1, title, core.ColorBrightYellow)
	drawTextIn(dst, box, 3, subtitle, core.ColorWhite)
}

// drawTextIn centers text horizontally inside r on the given row of r.
func drawTextIn(dst *core.Screen, r core.CellRect, row int, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawText(x, r.Y+row, text, c)
}
