package breakout

import (
	"time"

	"github.com/vovakirdan/gamevault/internal/config"
	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/lifecycle"
	"github.com/vovakirdan/gamevault/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "breakout"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

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

// Game implements the Breakout game logic.
type Game struct {
	cfg     config.BreakoutConfig
	machine *lifecycle.Machine
	frame   time.Duration

	paddle Paddle
	ball   Ball
	wall   *Wall

	score int
	lives int
	level int
	tick  uint64
}

func init() {
	registry.Register(ID, func(h lifecycle.Hooks) registry.Game {
		return New(h)
	})
}

// New creates a Breakout game from the loaded configuration.
func New(hooks lifecycle.Hooks) *Game {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	return NewWithConfig(cfg, hooks)
}

// NewWithConfig creates a game with an explicit configuration, in Ready.
func NewWithConfig(cfg config.BreakoutConfig, hooks lifecycle.Hooks) *Game {
	g := &Game{
		cfg:     cfg,
		machine: lifecycle.NewMachine(hooks),
		frame:   core.DefaultConfig().FrameInterval(),
		wall:    NewWall(cfg.Bricks),
	}
	g.resetBoard()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset returns the game to Ready with a fresh board, without firing hooks.
// The frame rate follows runtime.TickRate.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.frame = runtime.FrameInterval()
	g.tick = 0
	g.machine.ForceReady()
	g.resetBoard()
}

func (g *Game) resetBoard() {
	g.score = 0
	g.lives = g.cfg.Lives
	g.level = 1
	g.wall.Restore()
	g.paddle = Paddle{
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
		Y:      g.cfg.Board.Height - g.cfg.Paddle.OffsetBottom,
	}
	g.paddle.MoveTo(g.cfg.Board.Width/2, g.cfg.Board.Width)
	g.serve()
}

// serve puts a fresh ball above the paddle area heading up and right.
func (g *Game) serve() {
	g.ball = Ball{
		X:      g.cfg.Board.Width / 2,
		Y:      g.cfg.Board.Height - g.cfg.Ball.StartOffset,
		DX:     g.cfg.Ball.SpeedX,
		DY:     g.cfg.Ball.SpeedY,
		Radius: g.cfg.Ball.Radius,
	}
}

// Step advances one frame. A frame that changes phase does not also move;
// frames outside Playing leave the board untouched.
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

	g.updatePaddle(in)
	g.updateBall()
	return core.StepResult{State: g.State()}
}

// updatePaddle follows the pointer, then applies any key nudges.
func (g *Game) updatePaddle(in core.InputFrame) {
	w := g.cfg.Board.Width
	if in.Pointer.Valid {
		g.paddle.MoveTo(in.Pointer.X*w, w)
	}
	for _, a := range in.Sequence {
		switch a {
		case core.ActionLeft:
			g.paddle.SetLeft(g.paddle.X-g.cfg.Paddle.KeySpeed, w)
		case core.ActionRight:
			g.paddle.SetLeft(g.paddle.X+g.cfg.Paddle.KeySpeed, w)
		}
	}
}

// updateBall moves the ball and resolves at most one paddle or brick bounce,
// then the walls, the floor and level completion.
func (g *Game) updateBall() {
	b := &g.ball
	b.Move()

	if !CheckPaddleCollision(b, &g.paddle, g.cfg.Ball.MaxSteer) {
		if brick := g.wall.FirstHit(b.Bounds()); brick != nil {
			brick.Alive = false
			b.DY = -b.DY
			g.score += brick.Points
		}
	}

	hit := CheckWallCollision(b, g.cfg.Board.Width, g.cfg.Board.Height)
	b.ClampSpeed(g.cfg.Ball.MaxSpeed)

	if hit.Bottom {
		g.loseLife()
		return
	}
	if g.wall.Cleared() {
		g.nextLevel()
	}
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.machine.End(g.score)
		return
	}
	g.serve()
}

func (g *Game) nextLevel() {
	g.level++
	g.wall.Restore()
	g.serve()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Phase:        g.machine.Phase(),
		TickInterval: g.frame,
	}
}

// TickInterval is the per-frame delay.
func (g *Game) TickInterval() time.Duration {
	return g.frame
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}
