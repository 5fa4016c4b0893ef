package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files only need to set the keys they change; the rest keeps default values.
// An explicit customPath must exist and be valid; the other locations are
// skipped when missing or invalid.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile parses one YAML file layered over the defaults and validates it.
func loadFile(path string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// ApplyFlappyPreset adjusts obstacle ranges for a difficulty preset.
// Ranges stay fixed for the whole session; presets only pick them.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	o := &cfg.Obstacles
	switch preset {
	case DifficultyEasy:
		o.GapMin, o.GapMax = 3, 3.5
		o.GapStartMin, o.GapStartMax = 2.5, 5.5
		o.SpacingMin, o.SpacingMax = 2.5, 3.5
	case DifficultyNormal:
		d := DefaultFlappyConfig().Obstacles
		o.GapMin, o.GapMax = d.GapMin, d.GapMax
		o.GapStartMin, o.GapStartMax = d.GapStartMin, d.GapStartMax
		o.SpacingMin, o.SpacingMax = d.SpacingMin, d.SpacingMax
	case DifficultyHard:
		o.GapMin, o.GapMax = 2.2, 2.6
		o.GapStartMin, o.GapStartMax = 2, 6.2
		o.SpacingMin, o.SpacingMax = 1.2, 2.2
	}
}
