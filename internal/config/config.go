// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all tunable parameters of the game and its frontends.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpeedConfig defines the tick interval and how it shrinks.
// All durations are in milliseconds.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	StepMS    int `yaml:"step_ms"`
	FloorMS   int `yaml:"floor_ms"`
	EveryFood int `yaml:"every_food"` // 0 disables progression
}

// ScoringConfig defines points per food item.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// InputConfig defines pointer gesture handling.
type InputConfig struct {
	// SwipeThreshold is the minimum drag distance, in surface cells,
	// before a press/release pair counts as a swipe.
	SwipeThreshold int `yaml:"swipe_threshold"`
}

// DisplayConfig defines the drawing surface and frame rate.
type DisplayConfig struct {
	// MaxSurface bounds the board side, in rows.
	MaxSurface int `yaml:"max_surface"`
	FPS        int `yaml:"fps"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < 5:
		return fmt.Errorf("%w: grid.size must be at least 5, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Speed.InitialMS <= 0:
		return fmt.Errorf("%w: speed.initial_ms must be positive", ErrInvalidConfig)
	case c.Speed.FloorMS <= 0 || c.Speed.FloorMS > c.Speed.InitialMS:
		return fmt.Errorf("%w: speed.floor_ms must be in (0, %d], got %d",
			ErrInvalidConfig, c.Speed.InitialMS, c.Speed.FloorMS)
	case c.Speed.StepMS < 0:
		return fmt.Errorf("%w: speed.step_ms must not be negative", ErrInvalidConfig)
	case c.Speed.EveryFood < 0:
		return fmt.Errorf("%w: speed.every_food must not be negative", ErrInvalidConfig)
	case c.Scoring.FoodPoints <= 0:
		return fmt.Errorf("%w: scoring.food_points must be positive", ErrInvalidConfig)
	case c.Input.SwipeThreshold <= 0:
		return fmt.Errorf("%w: input.swipe_threshold must be positive", ErrInvalidConfig)
	case c.Display.MaxSurface < c.Grid.Size:
		return fmt.Errorf("%w: display.max_surface must fit the grid (>= %d)", ErrInvalidConfig, c.Grid.Size)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: display.fps must be positive", ErrInvalidConfig)
	}
	return nil
}

// InitialSpeed returns the starting tick interval.
func (c SnakeConfig) InitialSpeed() time.Duration {
	return time.Duration(c.Speed.InitialMS) * time.Millisecond
}

// FloorSpeed returns the shortest tick interval.
func (c SnakeConfig) FloorSpeed() time.Duration {
	return time.Duration(c.Speed.FloorMS) * time.Millisecond
}

// GameOptions converts the config into simulation options.
// Seed and Store are left for the caller.
func (c SnakeConfig) GameOptions() snake.Options {
	return snake.Options{
		GridSize:     c.Grid.Size,
		InitialSpeed: c.InitialSpeed(),
		SpeedStep:    time.Duration(c.Speed.StepMS) * time.Millisecond,
		MinSpeed:     c.FloorSpeed(),
		SpeedUpEvery: c.Speed.EveryFood,
		FoodPoints:   c.Scoring.FoodPoints,
	}
}
