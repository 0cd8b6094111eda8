package snake

import (
	"fmt"

	"github.com/vovakirdan/gamevault/internal/core"
)

const (
	cellW     = 2 // Terminal columns per board cell, keeps cells roughly square
	hudHeight = 1
)

// layout is where the board lands on a given screen.
type layout struct {
	originX, originY int // Top-left of the board interior
	fits             bool
}

func (g *Game) layoutFor(dst *core.Screen) layout {
	n := g.cfg.GridSize
	boxW := n*cellW + 2
	boxH := n + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		return layout{}
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := hudHeight + (dst.Height()-hudHeight-boxH)/2
	return layout{originX: boxX + 1, originY: boxY + 1, fits: true}
}

// Render draws the board, score readout and phase banner. It reads state only.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	l := g.layoutFor(dst)
	if !l.fits {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.cfg.GridSize*cellW+2, g.cfg.GridSize+2+hudHeight))
		return
	}

	n := g.cfg.GridSize
	dst.DrawBoxColor(core.NewRect(l.originX-1, l.originY-1, n*cellW+2, n+2), core.ColorGray)

	// Background dots every other cell so the grid reads at a glance.
	for y := range n {
		for x := range n {
			if (x+y)%2 == 0 {
				dst.SetColor(l.originX+x*cellW, l.originY+y, '·', core.ColorGray)
			}
		}
	}

	if g.hasFood {
		g.drawCell(dst, l, g.food, '●', ' ', core.ColorRed)
	}
	for i := len(g.body) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, l, g.body[i], '█', '█', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, l, g.body[i], '▓', '▓', core.ColorGreen)
		}
	}

	switch g.machine.Phase() {
	case core.PhaseReady:
		renderOverlay(dst, "READY", "Press Space to start")
	case core.PhasePaused:
		renderOverlay(dst, "PAUSED", "Press Space to resume")
	case core.PhaseGameOver:
		renderOverlay(dst, fmt.Sprintf("GAME OVER — score %d", g.score), "Press Space to play again")
	}
}

func (g *Game) drawCell(dst *core.Screen, l layout, p Point, left, right rune, c core.Color) {
	x := l.originX + p.X*cellW
	y := l.originY + p.Y
	dst.SetColor(x, y, left, c)
	dst.SetColor(x+1, y, right, c)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %dms", g.score, len(g.body), g.interval.Milliseconds())
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(runeLen(line1), runeLen(line2)) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, core.ColorYellow)
	dst.DrawTextCenteredColor(r.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(r.Y+3, line2)
}

func runeLen(s string) int {
	return len([]rune(s))
}
