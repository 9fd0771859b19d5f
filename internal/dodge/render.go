package dodge

import (
	"fmt"

	"github.com/astrelin/tui-dodge/internal/core"
)

// Visual characters for rendering.
const (
	ObstacleChar = '▓'
	PlayerChar   = '█'
)

// hudRows is the number of screen rows reserved above the playing field.
const hudRows = 1

// Render draws the current game state to the screen: all obstacles in one
// pass, then the player, then the HUD and any overlay. Field coordinates
// are scaled down to the terminal viewport.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vw := dst.Width()
	vh := dst.Height() - hudRows
	if vw <= 0 || vh <= 0 {
		return
	}

	//nolint:errcheck // Buffer drawing cannot fail.
	g.world.EachObstacle(func(r core.Rect) error {
		dst.FillRect(g.project(r, vw, vh), ObstacleChar, core.ColorRed)
		return nil
	})
	//nolint:errcheck // Buffer drawing cannot fail.
	g.world.DrawPlayer(func(r core.Rect) error {
		dst.FillRect(g.project(r, vw, vh), PlayerChar, core.ColorBrightCyan)
		return nil
	})

	st := g.State()
	hud := fmt.Sprintf(" Points: %.2f  Obstacles: %d ", st.Points, g.world.ObstacleCount())
	dst.DrawText(1, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := fmt.Sprintf("Your points: %.2f", st.Points)
		g.drawCenteredMessage(dst, "GAME OVER", msg+"  |  Enter restart, Esc exit")
	}
}

// project maps a field rectangle to viewport cells. A rectangle that is
// on-field always covers at least one cell so small entities stay visible.
func (g *Game) project(r core.Rect, vw, vh int) core.Rect {
	fw := g.cfg.Field.Width
	fh := g.cfg.Field.Height

	x0 := r.X * vw / fw
	y0 := r.Y * vh / fh
	x1 := core.Max(r.Right()*vw/fw, x0+1)
	y1 := core.Max(r.Bottom()*vh/fh, y0+1)

	x0 = core.Clamp(x0, 0, vw)
	x1 = core.Clamp(x1, 0, vw)

	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
