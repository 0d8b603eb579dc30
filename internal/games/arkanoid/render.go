package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BlockChar   = '█'
	CrackedChar = '▒'
	GoldChar    = '▓'
)

// Screen layout
const (
	HUDRows         = 1
	MinScreenWidth  = 30
	MinScreenHeight = 12
)

// projection maps world coordinates onto screen cells. Row 0 is the HUD;
// the field fills the remaining rows.
type projection struct {
	sw, sh int
	fw, fh float64
}

func newProjection(dst *core.Screen, fw, fh float64) projection {
	return projection{sw: dst.Width(), sh: dst.Height() - HUDRows, fw: fw, fh: fh}
}

func (p projection) col(x float64) int {
	return int(math.Floor((x + p.fw/2) / p.fw * float64(p.sw)))
}

func (p projection) row(y float64) int {
	return HUDRows + int(math.Floor((p.fh/2-y)/p.fh*float64(p.sh)))
}

// WorldX converts a screen column to a world x coordinate at the cell centre.
func (g *Game) WorldX(col, screenW int) float64 {
	if screenW <= 0 {
		return 0
	}
	fw := g.cfg.Window.Width
	return (float64(col)+0.5)*fw/float64(screenW) - fw/2
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenWidth || dst.Height() < MinScreenHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenWidth, MinScreenHeight))
		return
	}
	if g.paddle == nil || g.blocks == nil {
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		}
		return
	}

	p := newProjection(dst, g.cfg.Window.Width, g.cfg.Window.Height)

	g.renderHUD(dst)
	g.renderBlocks(dst, p)
	g.renderPaddle(dst, p)
	g.renderBall(dst, p)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives.Remaining()))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.levelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.levels))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderBlocks draws every live block on the row of its centre, leaving a
// one-column seam on the right so neighbours stay distinct.
func (g *Game) renderBlocks(dst *core.Screen, p projection) {
	g.blocks.Each(func(_ Handle, b *Block) {
		half := b.Collider.Half
		x0 := p.col(b.Position.X - half.X)
		x1 := p.col(b.Position.X + half.X)
		if x1-x0 > 1 {
			x1--
		}
		if x1 <= x0 {
			x1 = x0 + 1
		}
		y := p.row(b.Position.Y)

		glyph := BlockChar
		switch {
		case b.Type == BlockGold:
			glyph = GoldChar
		case b.HitsTaken > 0:
			glyph = CrackedChar
		}

		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, glyph, b.Type.Color())
		}
	})
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, p projection) {
	half := g.paddle.Collider.Half
	x0 := p.col(g.paddle.Position.X - half.X)
	x1 := p.col(g.paddle.Position.X + half.X)
	y := p.row(g.paddle.Position.Y)
	for x := x0; x <= x1 && x < dst.Width(); x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightWhite)
	}
}

// renderBall draws the ball if it is on screen.
func (g *Game) renderBall(dst *core.Screen, p projection) {
	x := p.col(g.ball.Position.X)
	y := p.row(g.ball.Position.Y)
	if y < HUDRows {
		return
	}
	dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if g.ball.State == BallGlued {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateWin:
		subtitle := fmt.Sprintf("Score: %d  |  Press ENTER for next level", g.score)
		g.drawCenteredBox(dst, "LEVEL CLEAR", subtitle)

	case StateComplete:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
