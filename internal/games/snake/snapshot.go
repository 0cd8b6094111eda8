package snake

import "github.com/vovakirdan/gamevault/internal/core"

// Snapshot captures the complete game state for determinism testing, replay
// and remote frame payloads.
type Snapshot struct {
	Tick       uint64     `json:"tick"`
	Phase      core.Phase `json:"phase"`
	Score      int        `json:"score"`
	IntervalMs int64      `json:"intervalMs"`
	GridSize   int        `json:"gridSize"`
	Body       []Point    `json:"body"`
	Dir        string     `json:"direction"`
	Food       *Point     `json:"food,omitempty"`
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.machine.Phase(),
		Score:      g.score,
		IntervalMs: g.interval.Milliseconds(),
		GridSize:   g.cfg.GridSize,
		Body:       append([]Point(nil), g.body...),
		Dir:        g.dir.String(),
	}
	if g.hasFood {
		food := g.food
		s.Food = &food
	}
	return s
}

// SnapshotAny satisfies registry.Snapshotter.
func (g *Game) SnapshotAny() any {
	return g.Snapshot()
}
