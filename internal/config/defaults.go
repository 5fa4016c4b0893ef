package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			ViewportWidth:  16,
			ViewportHeight: 9,
			ScrollSpeed:    1,
			MaxFrameStep:   0.016,
		},
		Physics: FlappyPhysics{
			Gravity:     -15,
			JumpImpulse: 5,
		},
		Avatar: FlappyAvatar{
			StartX: 3,
			StartY: 4.5,
			Width:  1,
			Height: 1,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:   1,
			FirstPipeX:  7,
			GapMin:      2.5,
			GapMax:      3,
			GapStartMin: 3,
			GapStartMax: 6,
			SpacingMin:  1.5,
			SpacingMax:  3,
			Cull:        true,
			CullMargin:  1,
		},
		Background: FlappyBackground{
			Parallax: 0.5,
		},
		Overlay: FlappyOverlay{
			BannerHeight: 0.25,
			BannerAspect: 4,
			ReplayHeight: 0.1,
			ReplayAspect: 2.5,
		},
		Autopilot: FlappyAutopilot{
			Enabled:   false,
			Threshold: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
