package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gamevault/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

const (
	minScreenW = 30
	minScreenH = 15
	hudRows    = 1
)

// viewport maps board pixels onto the screen cells inside the border.
type viewport struct {
	x0, y0 int // Screen cell of board pixel (0, 0)
	cols   int
	rows   int
	sx, sy float64 // Cells per pixel
}

func (g *Game) viewportFor(dst *core.Screen) viewport {
	v := viewport{
		x0:   1,
		y0:   hudRows + 1,
		cols: dst.Width() - 2,
		rows: dst.Height() - hudRows - 2,
	}
	v.sx = float64(v.cols) / g.cfg.Board.Width
	v.sy = float64(v.rows) / g.cfg.Board.Height
	return v
}

func (v viewport) cellX(px float64) int {
	return v.x0 + int(math.Floor(px*v.sx))
}

func (v viewport) cellY(py float64) int {
	return v.y0 + int(math.Floor(py*v.sy))
}

// span returns the cell columns covered by [px, px+w), leaving a one cell gap
// on the right so neighbouring bricks stay distinguishable.
func (v viewport) span(px, w float64) (int, int) {
	from := v.cellX(px)
	to := v.cellX(px+w) - 1
	return from, max(from, to)
}

// Render draws the board, HUD and phase banner. It reads state only.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	v := g.viewportFor(dst)
	dst.DrawBoxColor(core.NewRect(v.x0-1, v.y0-1, v.cols+2, v.rows+2), core.ColorGray)

	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	dst.SetColor(v.cellX(g.ball.X), v.cellY(g.ball.Y), BallChar, core.ColorBrightGreen)

	switch g.machine.Phase() {
	case core.PhaseReady:
		drawCenteredBox(dst, "READY", "Press Space to start")
	case core.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press Space to resume")
	case core.PhaseGameOver:
		drawCenteredBox(dst, fmt.Sprintf("GAME OVER — score %d", g.score), "Press Space to play again")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawTextCenteredColor(0, fmt.Sprintf("Level: %d", g.level), core.ColorWhite)
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColor(dst.Width()-len(lives)-1, 0, lives, core.ColorWhite)
}

func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	right := v.x0 + v.cols - 1
	for _, b := range g.wall.Bricks {
		if !b.Alive {
			continue
		}
		y := v.cellY(b.Rect.Y + b.Rect.H/2)
		from, to := v.span(b.Rect.X, b.Rect.W)
		for x := from; x <= min(to, right); x++ {
			dst.SetColor(x, y, BrickChar, core.RowColor(b.Row))
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	y := v.cellY(g.paddle.Y)
	from := v.cellX(g.paddle.X)
	to := max(from, v.cellX(g.paddle.X+g.paddle.Width)-1)
	for x := from; x <= to; x++ {
		dst.SetColor(x, y, PaddleChar, core.ColorBrightMagenta)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, core.ColorYellow)
	dst.DrawTextCenteredColor(r.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(r.Y+3, subtitle)
}

// PointerFromColumn converts a screen column into the normalized pointer
// position the simulation expects, accounting for the board border.
func PointerFromColumn(col, screenW int) float64 {
	cols := screenW - 2
	if cols <= 0 {
		return 0.5
	}
	return core.ClampF((float64(col-1)+0.5)/float64(cols), 0, 1)
}
