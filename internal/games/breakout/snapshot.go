package breakout

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/gamevault/internal/core"
)

// Snapshot contains the complete game state for replay and remote frames.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64         `json:"tick"`
	Phase       core.Phase     `json:"phase"`
	Score       int            `json:"score"`
	Lives       int            `json:"lives"`
	Level       int            `json:"level"`
	Board       [2]float64     `json:"board"` // Width, height
	Paddle      PaddleSnapshot `json:"paddle"`
	Ball        Ball           `json:"ball"`
	Bricks      [][]bool       `json:"bricks"`
	BricksAlive int            `json:"bricksAlive"`
}

// PaddleSnapshot is the paddle position and size.
type PaddleSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.machine.Phase(),
		Score:       g.score,
		Lives:       g.lives,
		Level:       g.level,
		Board:       [2]float64{g.cfg.Board.Width, g.cfg.Board.Height},
		Paddle:      PaddleSnapshot{X: g.paddle.X, Y: g.paddle.Y, Width: g.paddle.Width},
		Ball:        g.ball,
		Bricks:      g.wall.Alive(),
		BricksAlive: g.wall.CountAlive(),
	}
}

// SnapshotAny satisfies registry.Snapshotter.
func (g *Game) SnapshotAny() any {
	return g.Snapshot()
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:]) //nolint:errcheck // hash writes never fail
	}

	put(snap.Tick)
	put(uint64(snap.Phase)) //#nosec G115 -- small enum
	put(uint64(snap.Score)) //#nosec G115 -- hash computation
	put(uint64(snap.Lives)) //#nosec G115 -- hash computation
	put(uint64(snap.Level)) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.Paddle.X, snap.Ball.X, snap.Ball.Y, snap.Ball.DX, snap.Ball.DY} {
		put(math.Float64bits(f))
	}
	for _, row := range snap.Bricks {
		for _, alive := range row {
			if alive {
				put(1)
			} else {
				put(0)
			}
		}
	}
	return h.Sum64()
}
