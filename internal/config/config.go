// Package config provides YAML-based game configuration loading and
// difficulty presets for the mini-games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Point is a grid or board coordinate in YAML.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	GridSize          int   `yaml:"grid_size"`
	InitialIntervalMs int   `yaml:"initial_interval_ms"`
	MinIntervalMs     int   `yaml:"min_interval_ms"`
	SpeedStepMs       int   `yaml:"speed_step_ms"`
	SpeedUpEvery      int   `yaml:"speed_up_every"` // Score multiple that triggers a speed-up
	FoodReward        int   `yaml:"food_reward"`
	Start             Point `yaml:"start"`
	FirstFood         Point `yaml:"first_food"`
}

// InitialInterval returns the starting tick interval.
func (c SnakeConfig) InitialInterval() time.Duration {
	return time.Duration(c.InitialIntervalMs) * time.Millisecond
}

// MinInterval returns the tick interval floor.
func (c SnakeConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMs) * time.Millisecond
}

// SpeedStep returns how much faster each speed-up makes the game.
func (c SnakeConfig) SpeedStep() time.Duration {
	return time.Duration(c.SpeedStepMs) * time.Millisecond
}

// Validate reports every invalid field.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.GridSize < 2 {
		errs = append(errs, fmt.Errorf("grid_size must be at least 2, got %d", c.GridSize))
	}
	if c.InitialIntervalMs <= 0 || c.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("intervals must be positive"))
	}
	if c.MinIntervalMs > c.InitialIntervalMs {
		errs = append(errs, fmt.Errorf("min_interval_ms %d exceeds initial_interval_ms %d", c.MinIntervalMs, c.InitialIntervalMs))
	}
	if c.SpeedStepMs < 0 || c.SpeedUpEvery < 0 || c.FoodReward < 0 {
		errs = append(errs, errors.New("speed_step_ms, speed_up_every and food_reward must not be negative"))
	}
	if !inGrid(c.Start, c.GridSize) {
		errs = append(errs, fmt.Errorf("start %v outside %dx%d grid", c.Start, c.GridSize, c.GridSize))
	}
	if !inGrid(c.FirstFood, c.GridSize) {
		errs = append(errs, fmt.Errorf("first_food %v outside %dx%d grid", c.FirstFood, c.GridSize, c.GridSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: snake: %w", err)
	}
	return nil
}

func inGrid(p Point, n int) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are board pixels; speeds are pixels per frame.
type BreakoutConfig struct {
	Board  BreakoutBoard  `yaml:"board"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Lives  int            `yaml:"lives"`
}

// BreakoutBoard is the logical playfield size.
type BreakoutBoard struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines the paddle geometry.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OffsetBottom float64 `yaml:"offset_bottom"` // Distance from the board bottom to the paddle top
	KeySpeed     float64 `yaml:"key_speed"`     // Pixels per frame when steered with the keyboard
}

// BreakoutBall defines the ball and its speed limits.
type BreakoutBall struct {
	Radius      float64 `yaml:"radius"`
	SpeedX      float64 `yaml:"speed_x"`
	SpeedY      float64 `yaml:"speed_y"`
	MaxSteer    float64 `yaml:"max_steer"` // dx at the very edge of the paddle
	MaxSpeed    float64 `yaml:"max_speed"` // Cap on |dx| and |dy|
	StartOffset float64 `yaml:"start_offset"`
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Points     int     `yaml:"points"`
}

// Validate reports every invalid field.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be positive, got %vx%v", c.Board.Width, c.Board.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Board.Width {
		errs = append(errs, fmt.Errorf("paddle width %v must be in (0, %v]", c.Paddle.Width, c.Board.Width))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Ball.MaxSpeed <= 0 {
		errs = append(errs, errors.New("ball max_speed must be positive"))
	}
	if c.Ball.SpeedY == 0 {
		errs = append(errs, errors.New("ball speed_y must not be zero"))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must be positive, got %dx%d", c.Bricks.Rows, c.Bricks.Cols))
	}
	// The last column may hang past the right edge; only the first brick must be on the board.
	if c.Bricks.OffsetLeft < 0 || c.Bricks.OffsetLeft+c.Bricks.Width > c.Board.Width {
		errs = append(errs, fmt.Errorf("brick offset_left %v puts the grid off the board", c.Bricks.OffsetLeft))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, errors.New("brick size must be positive"))
	}
	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Lives))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: breakout: %w", err)
	}
	return nil
}
