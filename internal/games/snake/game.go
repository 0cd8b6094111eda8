// Package snake implements grid Snake: movement, growth, food placement
// and speed-ups as the score climbs.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gamevault/internal/config"
	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/lifecycle"
	"github.com/vovakirdan/gamevault/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "snake"

// maxFoodAttempts bounds random probing before falling back to the free-cell list.
const maxFoodAttempts = 64

// Point is a cell on the board.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite reports whether d points the exact other way from o.
func (d Direction) Opposite(o Direction) bool {
	return d.DX == -o.DX && d.DY == -o.DY
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

var actionDirs = map[core.Action]Direction{
	core.ActionUp:    Up,
	core.ActionDown:  Down,
	core.ActionLeft:  Left,
	core.ActionRight: Right,
}

// Package-level settings applied to games created afterwards (set by the CLI).
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// Game is the Snake simulation. It only mutates while Playing and reports
// lifecycle changes through the hooks it was built with.
type Game struct {
	cfg     config.SnakeConfig
	machine *lifecycle.Machine
	rng     *rand.Rand
	tick    uint64

	score    int
	interval time.Duration

	body    []Point // Head at index 0
	dir     Direction
	food    Point
	hasFood bool
}

func init() {
	registry.Register(ID, func(h lifecycle.Hooks) registry.Game {
		return New(h)
	})
}

// New creates a Snake game from the loaded configuration.
func New(hooks lifecycle.Hooks) *Game {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)
	return NewWithConfig(cfg, hooks)
}

// NewWithConfig creates a game with an explicit configuration.
// The game starts in Ready with a deterministic seed of 1 until Reset.
func NewWithConfig(cfg config.SnakeConfig, hooks lifecycle.Hooks) *Game {
	g := &Game{
		cfg:     cfg,
		machine: lifecycle.NewMachine(hooks),
		rng:     rand.New(rand.NewSource(1)),
	}
	g.resetBoard()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset re-seeds the game and returns it to Ready without firing hooks.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.machine.ForceReady()
	g.resetBoard()
}

// resetBoard restores the initial snake, food, score and speed.
func (g *Game) resetBoard() {
	g.score = 0
	g.interval = g.cfg.InitialInterval()
	g.body = []Point{{X: g.cfg.Start.X, Y: g.cfg.Start.Y}}
	g.dir = Right
	g.food = Point{X: g.cfg.FirstFood.X, Y: g.cfg.FirstFood.Y}
	g.hasFood = true
	if g.occupied(g.food) {
		g.hasFood = g.spawnFood()
	}
}

// Step applies one tick. A tick that changes phase does not also move the
// snake; ticks outside Playing leave the board untouched.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.machine.Apply(in) {
	case lifecycle.TransitionNone:
	case lifecycle.TransitionReset:
		g.resetBoard()
		return core.StepResult{State: g.State()}
	default:
		return core.StepResult{State: g.State()}
	}

	if !g.machine.Playing() {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)
	g.advance()
	return core.StepResult{State: g.State()}
}

// steer picks the last requested direction that is not a reversal of the
// direction the snake is currently moving in.
func (g *Game) steer(in core.InputFrame) {
	next := g.dir
	for _, a := range in.Sequence {
		d, ok := actionDirs[a]
		if !ok || d.Opposite(g.dir) {
			continue
		}
		next = d
	}
	g.dir = next
}

// advance moves the snake one cell.
func (g *Game) advance() {
	head := g.body[0].Add(g.dir)

	if !g.inBounds(head) {
		g.machine.End(g.score)
		return
	}
	// Every body cell counts, including the tail that is about to move.
	if g.occupied(head) {
		g.machine.End(g.score)
		return
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body)
	g.body[0] = head

	if g.hasFood && head == g.food {
		g.eat()
		return
	}
	g.body = g.body[:len(g.body)-1]
}

// eat keeps the grown tail, scores and respawns food.
func (g *Game) eat() {
	g.score += g.cfg.FoodReward
	if g.cfg.SpeedUpEvery > 0 && g.score%g.cfg.SpeedUpEvery == 0 {
		g.interval = max(g.interval-g.cfg.SpeedStep(), g.cfg.MinInterval())
	}

	g.hasFood = g.spawnFood()
	if !g.hasFood {
		// Board is full: nothing left to eat.
		g.machine.End(g.score)
	}
}

// spawnFood places food on a random empty cell. Random picks are tried
// first; a crowded board falls back to sampling the explicit free-cell set.
func (g *Game) spawnFood() bool {
	n := g.cfg.GridSize
	for range maxFoodAttempts {
		p := Point{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.occupied(p) {
			g.food = p
			return true
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// freeCells returns every cell not covered by the body, in row-major order.
func (g *Game) freeCells() []Point {
	n := g.cfg.GridSize
	taken := make(map[Point]bool, len(g.body))
	for _, p := range g.body {
		taken[p] = true
	}
	free := make([]Point, 0, n*n-len(taken))
	for y := range n {
		for x := range n {
			if p := (Point{X: x, Y: y}); !taken[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

func (g *Game) inBounds(p Point) bool {
	n := g.cfg.GridSize
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Phase:        g.machine.Phase(),
		TickInterval: g.interval,
	}
}

// TickInterval is the current delay between moves.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}
