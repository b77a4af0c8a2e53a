package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  size: 30\nspeed:\n  every_food: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 30 {
		t.Errorf("grid.size = %d, expected 30", cfg.Grid.Size)
	}
	if cfg.Speed.EveryFood != 2 {
		t.Errorf("speed.every_food = %d, expected 2", cfg.Speed.EveryFood)
	}
	if cfg.Speed.InitialMS != 150 || cfg.Scoring.FoodPoints != 10 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  size: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"tiny grid", func(c *SnakeConfig) { c.Grid.Size = 4 }},
		{"zero initial", func(c *SnakeConfig) { c.Speed.InitialMS = 0 }},
		{"floor above initial", func(c *SnakeConfig) { c.Speed.FloorMS = 200 }},
		{"zero floor", func(c *SnakeConfig) { c.Speed.FloorMS = 0 }},
		{"negative step", func(c *SnakeConfig) { c.Speed.StepMS = -1 }},
		{"negative cadence", func(c *SnakeConfig) { c.Speed.EveryFood = -1 }},
		{"zero points", func(c *SnakeConfig) { c.Scoring.FoodPoints = 0 }},
		{"zero swipe", func(c *SnakeConfig) { c.Input.SwipeThreshold = 0 }},
		{"surface smaller than grid", func(c *SnakeConfig) { c.Display.MaxSurface = 10 }},
		{"zero fps", func(c *SnakeConfig) { c.Display.FPS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestGameOptions(t *testing.T) {
	opts := DefaultSnakeConfig().GameOptions()

	if opts.GridSize != 20 {
		t.Errorf("GridSize = %d, expected 20", opts.GridSize)
	}
	if opts.InitialSpeed != 150*time.Millisecond || opts.MinSpeed != 50*time.Millisecond {
		t.Errorf("speeds = %v/%v, expected 150ms/50ms", opts.InitialSpeed, opts.MinSpeed)
	}
	if opts.SpeedStep != 5*time.Millisecond || opts.SpeedUpEvery != 5 {
		t.Errorf("progression = %v every %d, expected 5ms every 5", opts.SpeedStep, opts.SpeedUpEvery)
	}
	if opts.FoodPoints != 10 {
		t.Errorf("FoodPoints = %d, expected 10", opts.FoodPoints)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultSnakeConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultSnakeConfig()) {
		t.Error("normal preset should keep the loaded values")
	}

	fixed := DefaultSnakeConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Speed.EveryFood != 0 {
		t.Errorf("fixed preset should disable progression, every_food = %d", fixed.Speed.EveryFood)
	}

	for _, p := range Presets() {
		cfg := DefaultSnakeConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces an invalid config: %v", p, err)
		}
	}
}
