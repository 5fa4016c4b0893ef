package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options configures a game model.
type Options struct {
	Config     config.FlappyConfig
	Runtime    core.RuntimeConfig
	Difficulty string // Recorded with each run

	Store flappy.HighScoreStore // Nil keeps the high score in memory
	Runs  RunRecorder           // Nil skips the run history
	Sound *audio.Player         // Nil is silent

	Logger        *log.Logger        // Nil discards log output
	Renderer      *lipgloss.Renderer // Nil renders for the local terminal
	ScreenshotDir string             // Empty means ~/.flappy/screenshots
}

// Model is the Bubble Tea model driving one flappy session.
type Model struct {
	session *flappy.Session
	screen  *core.Screen
	palette *Palette
	keys    *KeyMapper
	help    help.Model
	opts    Options
	logger  *log.Logger

	lastTick time.Time     // Timestamp of the previous frame
	runTime  time.Duration // Unpaused time of the current run
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session := flappy.NewSession(opts.Config, flappy.Options{
		Seed:   opts.Runtime.Seed,
		Store:  opts.Store,
		Logger: logger,
	})

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session: session,
		screen:  core.NewScreen(opts.Runtime.ScreenW, sceneHeight(opts.Runtime.ScreenH)),
		palette: NewPalette(opts.Renderer),
		keys:    NewKeyMapper(),
		help:    h,
		opts:    opts,
		logger:  logger,
	}
}

// sceneHeight is the number of rows left for the scene under the help line.
func sceneHeight(termH int) int {
	return max(termH-1, 0)
}

// Session returns the session driven by the model.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quit()
		return m, tea.Quit
	}

	switch action {
	case core.ActionTap:
		// Keys tap the middle of the view, which is never the replay control.
		m.tap(m.session.CameraX(), m.opts.Config.World.ViewportHeight/2)
	case core.ActionReplay:
		if m.session.State() == flappy.StateGameOver {
			c := m.session.ReplayBounds().Center()
			m.tap(c.X, c.Y)
		}
	case core.ActionPause:
		m.session.TogglePause()
	case core.ActionAutopilot:
		on := m.session.ToggleAutopilot()
		m.logger.Debug("autopilot toggled", "enabled", on)
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleMouse turns a click into a tap at the world point under the cursor.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row, ok := m.keys.MapMouse(msg)
	if !ok {
		return m, nil
	}
	v := m.session.Snapshot().Viewport(m.screen.Width(), m.screen.Height())
	x, y := v.ToWorld(col, row)
	m.tap(x, y)
	return m, nil
}

// tap forwards a tap to the session and reacts to its outcome.
func (m *Model) tap(x, y float64) {
	cmd := m.session.Tap(x, y)
	switch cmd {
	case flappy.CommandStart:
		m.runTime = 0
	case flappy.CommandRestart:
		m.logger.Debug("session restarted", "high", m.session.HighScore())
	}
	m.opts.Sound.PlayCommand(cmd)
}

// handleResize processes window resize events. The world keeps its size;
// only the cell mapping changes, so the session is left alone.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by the time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.opts.Runtime.TickRate)
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.session.State() == flappy.StateRunning {
		m.runTime += dt
	}

	res := m.session.Update(dt)
	m.opts.Sound.PlayStep(res)

	if res.Events.Has(flappy.EventCrash) {
		m.recordRun(res.Score)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun stores a finished run in the history. Empty runs are skipped.
func (m *Model) recordRun(score int) {
	m.logger.Info("run over", "score", score, "duration", m.runTime.Round(time.Millisecond))
	if m.opts.Runs == nil || score <= 0 {
		return
	}
	_, err := m.opts.Runs.SaveRun(storage.Run{
		Score:      score,
		Difficulty: m.opts.Difficulty,
		Autopilot:  m.session.Autopilot(),
		Duration:   m.runTime,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "score", score, "error", err)
	}
}

// quit flushes the high score and stops rendering.
func (m *Model) quit() {
	m.session.Close()
	m.quitting = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.session.Snapshot())

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawScene(m.screen, m.session.Snapshot())
	return m.palette.Render(m.screen) + "\n" + m.helpView()
}

// helpView renders the key bindings line below the scene.
func (m Model) helpView() string {
	style := m.palette.plain.Foreground(lipgloss.Color("241"))
	return style.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are taps
	)

	_, err := p.Run()
	// Flush again for exits that bypass handleKey.
	model.session.Close()
	return err
}
