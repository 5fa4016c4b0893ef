package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Options holds the collaborators of a session.
type Options struct {
	Seed   int64          // Obstacle layout seed
	Store  HighScoreStore // Nil keeps the high score in memory only
	Logger *log.Logger    // Nil discards log output
}

// Session is one player's game: the world, the bird, the score and the
// lifecycle state machine. It is not safe for concurrent use; the frame
// driver calls Tap and Update from one goroutine.
type Session struct {
	cfg     config.FlappyConfig
	state   State
	score   int
	high    int
	cameraX float64

	bird  Bird
	field *PipeField
	bg    Background
	pilot Autopilot

	store  HighScoreStore
	logger *log.Logger
}

// NewSession creates a session in the Idle state and reads the stored high
// score. A failing store is logged and treated as an empty one.
func NewSession(cfg config.FlappyConfig, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:     cfg,
		state:   StateIdle,
		cameraX: cfg.World.ViewportWidth / 2,
		bird:    NewBird(cfg.Avatar, cfg.Physics),
		field:   NewPipeField(cfg.Obstacles, cfg.World.ViewportHeight, opts.Seed),
		bg:      NewBackground(cfg.World.ScrollSpeed*cfg.Background.Parallax, cfg.World.ViewportWidth),
		pilot:   NewAutopilot(cfg.Autopilot),
		store:   opts.Store,
		logger:  logger,
	}

	s.refreshHighScore()
	return s
}

// Update advances the world by dt. It does nothing unless the session is
// Running. dt is clamped to the configured maximum frame step.
func (s *Session) Update(dt time.Duration) StepResult {
	if s.state != StateRunning {
		return s.result(0)
	}

	step := core.ClampF(dt.Seconds(), 0, s.cfg.World.MaxFrameStep)
	dx := step * s.cfg.World.ScrollSpeed
	half := s.cfg.World.ViewportWidth / 2

	s.bird.Update(step)
	s.bird.Advance(dx)
	s.cameraX += dx
	s.bg.Update(step)

	s.field.Spawn(s.cameraX + half)
	if s.cfg.Obstacles.Cull {
		s.field.Cull(s.cameraX - half - s.cfg.Obstacles.CullMargin)
	}

	var events Event
	bounds := s.bird.Bounds()
	crashed := s.outOfBounds() || s.field.Overlaps(bounds)

	if n := s.field.Score(bounds); n > 0 {
		s.score += n
		events |= EventScore
	}

	if crashed {
		s.state = StateGameOver
		events |= EventCrash
		s.logger.Debug("crashed", "score", s.score, "x", s.bird.Pos.X, "y", s.bird.Pos.Y)
	} else if s.pilot.ShouldJump(s.bird, s.field) {
		s.bird.Jump()
		events |= EventJump
	}

	return s.result(events)
}

// outOfBounds reports whether the bird has sunk below the floor or risen
// above the ceiling.
func (s *Session) outOfBounds() bool {
	y := s.bird.Pos.Y
	return y+s.bird.Size.Y/2 < 0 || y > s.cfg.World.ViewportHeight
}

func (s *Session) result(events Event) StepResult {
	return StepResult{State: s.state, Score: s.score, Events: events}
}

// Tap handles a tap at world point (x, y) and returns what it did.
func (s *Session) Tap(x, y float64) Command {
	cmd := CommandFor(s.state, s.ReplayBounds(), x, y)
	switch cmd {
	case CommandStart:
		s.state = StateRunning
		s.logger.Debug("run started")
	case CommandJump:
		s.bird.Jump()
	case CommandRestart:
		s.Restart()
	}
	return cmd
}

// Restart clears the world, saves the high score and returns to Idle.
// Calling it twice in a row leaves the same state as calling it once.
func (s *Session) Restart() {
	s.field.Reset()
	s.bird.Reset()
	s.bg.Reset()
	s.cameraX = s.cfg.World.ViewportWidth / 2
	s.saveHighScore()
	s.score = 0
	s.state = StateIdle
}

// TogglePause switches between Running and Paused. Other states are left
// alone. Returns the resulting state.
func (s *Session) TogglePause() State {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
	return s.state
}

// ToggleAutopilot switches the autopilot policy and reports whether it is on.
func (s *Session) ToggleAutopilot() bool {
	s.pilot.Enabled = !s.pilot.Enabled
	return s.pilot.Enabled
}

// Autopilot reports whether the autopilot policy is on.
func (s *Session) Autopilot() bool {
	return s.pilot.Enabled
}

// Close performs the final high score flush. The session stays usable.
func (s *Session) Close() {
	s.saveHighScore()
}

// saveHighScore raises the best score to the current one and writes it.
// The best score is written even when the current run did not beat it so a
// previously failed write is retried. The stored value is read back since
// other sessions may share the store.
func (s *Session) saveHighScore() {
	if s.score > s.high {
		s.high = s.score
	}
	if s.store == nil {
		return
	}
	if s.high > 0 {
		if err := s.store.SetHighScoreIfGreater(s.high); err != nil {
			s.logger.Warn("cannot save high score", "score", s.high, "error", err)
		}
	}
	s.refreshHighScore()
}

// refreshHighScore raises the best score to the stored one. A failed read is
// logged and leaves the known best alone.
func (s *Session) refreshHighScore() {
	if s.store == nil {
		return
	}
	stored, err := s.store.HighScore()
	if err != nil {
		s.logger.Warn("cannot read high score", "error", err)
		return
	}
	s.high = max(s.high, stored)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int {
	return s.high
}

// Bird returns a copy of the avatar.
func (s *Session) Bird() Bird {
	return s.bird
}

// CameraX returns the world x at the center of the view.
func (s *Session) CameraX() float64 {
	return s.cameraX
}

// BannerBounds returns the game-over banner, centered in the view.
func (s *Session) BannerBounds() core.Rect {
	o := s.cfg.Overlay
	h := o.BannerHeight * s.cfg.World.ViewportHeight
	w := h * o.BannerAspect
	return core.NewRect(s.cameraX-w/2, (s.cfg.World.ViewportHeight-h)/2, w, h)
}

// ReplayBounds returns the replay control, centered below the banner.
func (s *Session) ReplayBounds() core.Rect {
	o := s.cfg.Overlay
	h := o.ReplayHeight * s.cfg.World.ViewportHeight
	w := h * o.ReplayAspect
	banner := s.BannerBounds()
	return core.NewRect(s.cameraX-w/2, banner.Y-h, w, h)
}

// Snapshot copies the state a renderer needs.
func (s *Session) Snapshot() Snapshot {
	pipes := make([]Pipe, len(s.field.Pipes()))
	copy(pipes, s.field.Pipes())
	gates := make([]ScoreGate, len(s.field.Gates()))
	copy(gates, s.field.Gates())

	return Snapshot{
		State:            s.state,
		Score:            s.score,
		HighScore:        s.high,
		Autopilot:        s.pilot.Enabled,
		CameraX:          s.cameraX,
		ViewportW:        s.cfg.World.ViewportWidth,
		ViewportH:        s.cfg.World.ViewportHeight,
		Bird:             s.bird.Bounds(),
		Pipes:            pipes,
		Gates:            gates,
		Banner:           s.BannerBounds(),
		Replay:           s.ReplayBounds(),
		BackgroundOffset: s.bg.Offset,
	}
}
