package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset parses a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset modifies the speed settings for a difficulty preset.
// Normal keeps the loaded values; fixed turns progression off.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMS = 200
		cfg.Speed.StepMS = 5
		cfg.Speed.FloorMS = 80
		cfg.Speed.EveryFood = 5
	case DifficultyHard:
		cfg.Speed.InitialMS = 110
		cfg.Speed.StepMS = 5
		cfg.Speed.FloorMS = 40
		cfg.Speed.EveryFood = 3
	case DifficultyFixed:
		cfg.Speed.EveryFood = 0
	}
}
