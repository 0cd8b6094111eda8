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
)

// ParsePreset validates a preset name from the command line.
// An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplySnakePreset adjusts the starting speed for a preset.
// Normal keeps the loaded values.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.InitialIntervalMs = 200
		cfg.MinIntervalMs = 100
	case DifficultyHard:
		cfg.InitialIntervalMs = 110
		cfg.MinIntervalMs = 60
	}
}

// ApplyBreakoutPreset adjusts lives, paddle and ball speed for a preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.SpeedX, cfg.Ball.SpeedY = 3, -3
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.SpeedX, cfg.Ball.SpeedY = 5, -5
		cfg.Ball.MaxSpeed = 9
	}
}
