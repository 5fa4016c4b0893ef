package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg := FlappyConfig{}
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded yaml and DefaultFlappyConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultFlappyConfig()
		ApplyFlappyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", p, err)
		}
	}
}

func TestPresetNormalRestoresDefaults(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyFlappyPreset(&cfg, DifficultyHard)
	ApplyFlappyPreset(&cfg, DifficultyNormal)

	if cfg.Obstacles != DefaultFlappyConfig().Obstacles {
		t.Errorf("normal preset should restore default obstacles, got %+v", cfg.Obstacles)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero viewport", func(c *FlappyConfig) { c.World.ViewportHeight = 0 }},
		{"no scroll", func(c *FlappyConfig) { c.World.ScrollSpeed = 0 }},
		{"no frame step", func(c *FlappyConfig) { c.World.MaxFrameStep = 0 }},
		{"inverted gap range", func(c *FlappyConfig) { c.Obstacles.GapMin = 4 }},
		{"inverted gap start range", func(c *FlappyConfig) { c.Obstacles.GapStartMin = 7 }},
		{"gap above ceiling", func(c *FlappyConfig) { c.Obstacles.GapStartMax = 6.5 }},
		{"inverted spacing", func(c *FlappyConfig) { c.Obstacles.SpacingMin = 5 }},
		{"avatar outside", func(c *FlappyConfig) { c.Avatar.StartY = 8.5 }},
		{"overlay too tall", func(c *FlappyConfig) { c.Overlay.BannerHeight = 0.95 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadFlappyCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  jump_impulse: 7\nautopilot:\n  enabled: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.JumpImpulse != 7 {
		t.Errorf("jump_impulse = %v, expected 7", cfg.Physics.JumpImpulse)
	}
	if !cfg.Autopilot.Enabled {
		t.Error("autopilot should be enabled by the file")
	}
	if cfg.Physics.Gravity != DefaultFlappyConfig().Physics.Gravity {
		t.Errorf("unset gravity should keep default, got %v", cfg.Physics.Gravity)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  gap_min: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config should fail with ErrInvalid, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var cfg FlappyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("marshalled yaml does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config should decode to the same values")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("empty preset = (%q, %v), expected no preset", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = (%q, %v)", p, err)
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("FLAPPY_TEST_DB=/tmp/x.db\nFLAPPY_TEST_SEED=42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("FLAPPY_TEST_DB")
		os.Unsetenv("FLAPPY_TEST_SEED")
	})

	if err := LoadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := GetEnv("FLAPPY_TEST_DB", "fallback"); got != "/tmp/x.db" {
		t.Errorf("GetEnv = %q, expected /tmp/x.db", got)
	}
	if got := GetEnvInt64("FLAPPY_TEST_SEED", 0); got != 42 {
		t.Errorf("GetEnvInt64 = %d, expected 42", got)
	}
	if got := GetEnv("FLAPPY_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("unset variable should return fallback, got %q", got)
	}
}
