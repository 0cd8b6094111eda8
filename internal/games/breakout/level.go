// Package breakout implements the Breakout brick breaker: a paddle steered
// by pointer or keys, one ball, a grid of bricks, lives and levels.
package breakout

import (
	"github.com/vovakirdan/gamevault/internal/config"
	"github.com/vovakirdan/gamevault/internal/core"
)

// Brick is one cell of the brick grid.
type Brick struct {
	Row, Col int
	Rect     core.RectF
	Points   int
	Alive    bool
}

// Wall is the R×C brick grid, laid out left to right, top to bottom.
type Wall struct {
	Rows, Cols int
	Bricks     []Brick // Row-major
}

// NewWall builds a full grid from the layout config.
func NewWall(cfg config.BreakoutBricks) *Wall {
	w := &Wall{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
	}
	for r := range cfg.Rows {
		for c := range cfg.Cols {
			w.Bricks = append(w.Bricks, Brick{
				Row: r,
				Col: c,
				Rect: core.RectF{
					X: float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
					Y: float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
					W: cfg.Width,
					H: cfg.Height,
				},
				Points: cfg.Points,
				Alive:  true,
			})
		}
	}
	return w
}

// Restore brings every brick back.
func (w *Wall) Restore() {
	for i := range w.Bricks {
		w.Bricks[i].Alive = true
	}
}

// At returns the brick at row r, column c.
func (w *Wall) At(r, c int) *Brick {
	return &w.Bricks[r*w.Cols+c]
}

// FirstHit returns the first alive brick overlapping bounds in row-major
// order, or nil. Only one brick is ever reported per call.
func (w *Wall) FirstHit(bounds core.RectF) *Brick {
	for i := range w.Bricks {
		b := &w.Bricks[i]
		if b.Alive && b.Rect.Intersects(bounds) {
			return b
		}
	}
	return nil
}

// CountAlive returns the number of remaining bricks.
func (w *Wall) CountAlive() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every brick is gone.
func (w *Wall) Cleared() bool {
	return w.CountAlive() == 0
}

// Alive returns the alive flags as an R×C grid.
func (w *Wall) Alive() [][]bool {
	grid := make([][]bool, w.Rows)
	for r := range grid {
		grid[r] = make([]bool, w.Cols)
		for c := range grid[r] {
			grid[r][c] = w.At(r, c).Alive
		}
	}
	return grid
}
