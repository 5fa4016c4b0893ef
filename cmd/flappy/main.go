// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy play              - Play a round in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Print the best runs
//	flappy board             - Browse the run history
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible pipes
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to this file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to fly through the pipes in your terminal",
	Long: `Flappy is a terminal Flappy Bird clone. Tap to flap, pass
between the pipes, and beat your high score.

Available commands:
  play     - Play a round in this terminal
  serve    - Start SSH server for remote play
  scores   - Print the best runs
  board    - Browse the run history
  config   - Print the effective game config

Settings can also come from a .env file or the environment:
  FLAPPY_DB, FLAPPY_CONFIG, FLAPPY_SEED, FLAPPY_SSH_ADDR, FLAPPY_HOST_KEY

Examples:
  flappy play
  flappy play --difficulty hard --sound
  flappy serve --ssh :2222
  flappy scores`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play defaults to ~/.flappy/flappy.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads .env and fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.GetEnv(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.GetEnv(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("seed") {
		flagSeed = config.GetEnvInt64(config.EnvSeed, flagSeed)
	}
	return nil
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: preset %q: %w", preset, err)
	}
	return cfg, nil
}

// difficultyLabel names the preset recorded with each run.
func difficultyLabel() string {
	if flagDifficulty == "" {
		return "default"
	}
	return flagDifficulty
}

// newLogger creates a logger writing to path, or to w when path is empty.
// The returned closer releases the log file.
func newLogger(path string, w io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	closer := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
