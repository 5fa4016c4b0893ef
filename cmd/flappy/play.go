package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagAutopilot bool
	flagSound     bool
	flagVolume    float64
	flagStore     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing in this terminal.

Controls:
  Space/Up/W/Enter/Click - Flap (and start)
  R or click REPLAY      - Replay (after game over)
  P/Esc                  - Pause
  A                      - Toggle autopilot
  Ctrl+S                 - Screenshot to ~/.flappy/screenshots
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Wide gaps, relaxed spacing
  normal - The default ranges
  hard   - Narrow gaps, tight spacing

High score storage (--store):
  sqlite - The scores database (--db), with run history
  prefs  - A YAML file at ~/.flappy/prefs.yaml, no history
  memory - Nothing is saved

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --autopilot --seed 42
  flappy play --sound --volume 0.5
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Start with the autopilot on")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
	playCmd.Flags().StringVar(&flagStore, "store", "sqlite", "High score storage: sqlite, prefs, memory")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagAutopilot {
		gameCfg.Autopilot.Enabled = true
	}

	// The alternate screen owns the terminal, so logs go to a file.
	logPath := flagLogFile
	if logPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		logPath = filepath.Join(home, ".flappy", "flappy.log")
	}
	logger, closeLog, err := newLogger(logPath, os.Stderr, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: difficultyLabel(),
		Logger:     logger,
	}

	closeStore, err := openHighScores(&opts, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if flagSound {
		player, soundErr := audio.NewPlayer(flagVolume)
		if soundErr != nil {
			logger.Warn("sound disabled", "error", soundErr)
		} else {
			opts.Sound = player
			defer player.Close()
		}
	}

	logger.Info("starting", "difficulty", opts.Difficulty, "seed", flagSeed, "autopilot", gameCfg.Autopilot.Enabled)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openHighScores picks the high score store for --store. When the database
// cannot be opened the game falls back to the prefs file.
func openHighScores(opts *tui.Options, logger *log.Logger) (func(), error) {
	noop := func() {}

	switch flagStore {
	case "memory":
		opts.Store = storage.NewMemory(0)
		return noop, nil
	case "prefs":
		return noop, usePrefs(opts)
	case "sqlite":
	default:
		return noop, fmt.Errorf("unknown store %q (want sqlite, prefs or memory)", flagStore)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, using prefs file", "error", err)
		if prefsErr := usePrefs(opts); prefsErr != nil {
			logger.Warn("could not open prefs file, high score will not be saved", "error", prefsErr)
			opts.Store = storage.NewMemory(0)
		}
		return noop, nil
	}

	opts.Store = store
	opts.Runs = store
	return func() {
		if err := store.Close(); err != nil {
			logger.Warn("cannot close scores database", "error", err)
		}
	}, nil
}

// usePrefs keeps the high score in ~/.flappy/prefs.yaml.
func usePrefs(opts *tui.Options) error {
	prefs, err := storage.OpenPrefs("~/.flappy/prefs.yaml")
	if err != nil {
		return err
	}
	opts.Store = prefs
	return nil
}
