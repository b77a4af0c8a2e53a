package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Speed: SpeedConfig{
			InitialMS: 150,
			StepMS:    5,
			FloorMS:   50,
			EveryFood: 5,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Input: InputConfig{
			SwipeThreshold: 3,
		},
		Display: DisplayConfig{
			MaxSurface: 30,
			FPS:        60,
		},
	}
}
