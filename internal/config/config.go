// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all tunable constants of the game.
// Distances are in world units, times in seconds, the world is y-up.
type FlappyConfig struct {
	World      FlappyWorld      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Avatar     FlappyAvatar     `yaml:"avatar"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Background FlappyBackground `yaml:"background"`
	Overlay    FlappyOverlay    `yaml:"overlay"`
	Autopilot  FlappyAutopilot  `yaml:"autopilot"`
}

// FlappyWorld defines the visible playfield and the scroll rate.
type FlappyWorld struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	ScrollSpeed    float64 `yaml:"scroll_speed"`   // World units per second
	MaxFrameStep   float64 `yaml:"max_frame_step"` // Largest dt fed to physics
}

// FlappyPhysics defines the bird's vertical motion.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Negative pulls down
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set on tap
}

// FlappyAvatar defines the bird's start pose and hitbox.
type FlappyAvatar struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines pipe generation ranges.
type FlappyObstacles struct {
	PipeWidth   float64 `yaml:"pipe_width"`
	FirstPipeX  float64 `yaml:"first_pipe_x"`
	GapMin      float64 `yaml:"gap_min"`
	GapMax      float64 `yaml:"gap_max"`
	GapStartMin float64 `yaml:"gap_start_min"`
	GapStartMax float64 `yaml:"gap_start_max"`
	SpacingMin  float64 `yaml:"spacing_min"`
	SpacingMax  float64 `yaml:"spacing_max"`
	Cull        bool    `yaml:"cull"`        // Drop pipes that scrolled out of view
	CullMargin  float64 `yaml:"cull_margin"` // Extra distance behind the view before culling
}

// FlappyBackground defines the cosmetic parallax layer.
type FlappyBackground struct {
	Parallax float64 `yaml:"parallax"` // Fraction of scroll speed
}

// FlappyOverlay sizes the game-over banner and the replay control,
// as fractions of the viewport height.
type FlappyOverlay struct {
	BannerHeight float64 `yaml:"banner_height"`
	BannerAspect float64 `yaml:"banner_aspect"` // Width / height
	ReplayHeight float64 `yaml:"replay_height"`
	ReplayAspect float64 `yaml:"replay_aspect"` // Width / height
}

// FlappyAutopilot configures the demo auto-jump policy.
type FlappyAutopilot struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"` // Jump when this close above the next bottom pipe
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	w, o := c.World, c.Obstacles

	switch {
	case w.ViewportWidth <= 0 || w.ViewportHeight <= 0:
		return fmt.Errorf("%w: viewport must be positive, got %vx%v", ErrInvalid, w.ViewportWidth, w.ViewportHeight)
	case w.ScrollSpeed <= 0:
		return fmt.Errorf("%w: scroll_speed must be positive", ErrInvalid)
	case w.MaxFrameStep <= 0:
		return fmt.Errorf("%w: max_frame_step must be positive", ErrInvalid)
	case c.Avatar.Width <= 0 || c.Avatar.Height <= 0:
		return fmt.Errorf("%w: avatar size must be positive", ErrInvalid)
	case c.Avatar.StartY < 0 || c.Avatar.StartY+c.Avatar.Height > w.ViewportHeight:
		return fmt.Errorf("%w: avatar start_y %v is outside the playfield", ErrInvalid, c.Avatar.StartY)
	case o.PipeWidth <= 0:
		return fmt.Errorf("%w: pipe_width must be positive", ErrInvalid)
	case o.GapMin <= 0 || o.GapMin > o.GapMax:
		return fmt.Errorf("%w: gap range [%v, %v]", ErrInvalid, o.GapMin, o.GapMax)
	case o.GapStartMin < 0 || o.GapStartMin > o.GapStartMax:
		return fmt.Errorf("%w: gap_start range [%v, %v]", ErrInvalid, o.GapStartMin, o.GapStartMax)
	case o.GapStartMax+o.GapMax > w.ViewportHeight:
		return fmt.Errorf("%w: gap_start_max + gap_max (%v) exceeds viewport height %v",
			ErrInvalid, o.GapStartMax+o.GapMax, w.ViewportHeight)
	case o.SpacingMin < 0 || o.SpacingMin > o.SpacingMax:
		return fmt.Errorf("%w: spacing range [%v, %v]", ErrInvalid, o.SpacingMin, o.SpacingMax)
	case o.CullMargin < 0:
		return fmt.Errorf("%w: cull_margin must not be negative", ErrInvalid)
	case c.Overlay.BannerHeight <= 0 || c.Overlay.BannerAspect <= 0 || c.Overlay.ReplayHeight <= 0 || c.Overlay.ReplayAspect <= 0:
		return fmt.Errorf("%w: overlay sizes must be positive", ErrInvalid)
	case c.Overlay.BannerHeight+c.Overlay.ReplayHeight > 1:
		return fmt.Errorf("%w: overlay does not fit the viewport", ErrInvalid)
	case c.Autopilot.Threshold < 0:
		return fmt.Errorf("%w: autopilot threshold must not be negative", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named set of obstacle ranges.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "keep the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
