package breakout

import "github.com/vovakirdan/gamevault/internal/core"

// Ball is the ball state in board pixels.
type Ball struct {
	X      float64 `json:"x"` // Center
	Y      float64 `json:"y"`
	DX     float64 `json:"dx"` // Velocity per frame
	DY     float64 `json:"dy"`
	Radius float64 `json:"r"`
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.CircleBounds(b.X, b.Y, b.Radius)
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// ClampSpeed keeps |DX| and |DY| at or below limit.
func (b *Ball) ClampSpeed(limit float64) {
	b.DX = core.ClampF(b.DX, -limit, limit)
	b.DY = core.ClampF(b.DY, -limit, limit)
}

// Paddle is the player's paddle. Y is the top edge and never changes.
type Paddle struct {
	X      float64 // Left edge
	Y      float64
	Width  float64
	Height float64
}

// Rect returns the paddle's box.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// MoveTo centers the paddle on x, clamped to [0, boardW-Width].
func (p *Paddle) MoveTo(x, boardW float64) {
	p.SetLeft(x-p.Width/2, boardW)
}

// SetLeft places the left edge, clamped to the board.
func (p *Paddle) SetLeft(x, boardW float64) {
	p.X = core.ClampF(x, 0, boardW-p.Width)
}

// HitPosition is where the ball struck the paddle, -1 at the left edge,
// 0 at the center and 1 at the right edge.
func (p *Paddle) HitPosition(ballX float64) float64 {
	half := p.Width / 2
	if half <= 0 {
		return 0
	}
	return core.ClampF((ballX-p.CenterX())/half, -1, 1)
}

// CheckPaddleCollision bounces a downward-moving ball that overlaps the
// paddle. The outgoing dx depends only on where it hit, and dy is forced
// upward. Returns true if the ball bounced.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, maxSteer float64) bool {
	if ball.DY <= 0 {
		return false
	}
	if !ball.Bounds().Intersects(paddle.Rect()) {
		return false
	}
	ball.DX = paddle.HitPosition(ball.X) * maxSteer
	ball.DY = -core.AbsF(ball.DY)
	return true
}

// WallHit describes which board edges a ball touched this frame.
type WallHit struct {
	Side, Top, Bottom bool
}

// CheckWallCollision reflects the ball off the left, right and top walls.
// Velocity signs are forced rather than flipped, so a ball that is still
// overlapping a wall on the next frame cannot bounce back out of the board.
func CheckWallCollision(ball *Ball, boardW, boardH float64) WallHit {
	var hit WallHit
	switch {
	case ball.X-ball.Radius < 0:
		ball.DX = core.AbsF(ball.DX)
		hit.Side = true
	case ball.X+ball.Radius > boardW:
		ball.DX = -core.AbsF(ball.DX)
		hit.Side = true
	}
	if ball.Y-ball.Radius < 0 {
		ball.DY = core.AbsF(ball.DY)
		hit.Top = true
	}
	if ball.Y+ball.Radius > boardH {
		hit.Bottom = true
	}
	return hit
}
