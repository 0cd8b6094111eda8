package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize:          20,
		InitialIntervalMs: 150,
		MinIntervalMs:     80,
		SpeedStepMs:       10,
		SpeedUpEvery:      50,
		FoodReward:        10,
		Start:             Point{X: 10, Y: 10},
		FirstFood:         Point{X: 15, Y: 15},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board: BreakoutBoard{Width: 640, Height: 480},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       10,
			OffsetBottom: 30,
			KeySpeed:     8,
		},
		Ball: BreakoutBall{
			Radius:      8,
			SpeedX:      4,
			SpeedY:      -4,
			MaxSteer:    5,
			MaxSpeed:    7,
			StartOffset: 50,
		},
		Bricks: BreakoutBricks{
			Rows:       5,
			Cols:       8,
			Width:      75,
			Height:     20,
			Padding:    5,
			OffsetTop:  60,
			OffsetLeft: 35,
			Points:     10,
		},
		Lives: 3,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
