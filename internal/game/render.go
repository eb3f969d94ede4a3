package game

import (
	"fmt"

	"github.com/toiletrun/toiletrun/internal/core"
)

// Visual characters for rendering.
const (
	playerChar    = '█'
	playerLidChar = '▛'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
	groundFill    = '▒'
)

// Render draws the current game state to the screen buffer, scaling world
// units to screen cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.tuning.World.Width
	sy := float64(dst.Height()) / g.tuning.World.Height

	cellX := func(wx float64) int { return int(wx * sx) }
	cellY := func(wy float64) int { return int(wy * sy) }

	// Ground strip
	groundRow := cellY(g.tuning.World.FloorY())
	if groundRow >= dst.Height() {
		groundRow = dst.Height() - 1
	}
	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, core.ColorYellow)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), groundFill, core.ColorGray)
	}

	// Obstacles
	for _, o := range g.field.Obstacles() {
		g.drawObstacle(dst, o, cellX, cellY, groundRow)
	}

	// Player
	g.drawPlayer(dst, cellX, cellY)

	// HUD
	hud := fmt.Sprintf(" Score: %d  Level: %d  Best: %d ",
		g.keeper.Score, g.keeper.Level, g.keeper.HighScore)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	switch g.mode {
	case core.ModeStart:
		g.drawCenteredMessage(dst, "TOILET RUN", "Press Space to flap")
	case core.ModePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.ModeGameOver:
		sub := fmt.Sprintf("Score: %d  Level: %d  |  Press R to restart",
			g.keeper.Score, g.keeper.Level)
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawObstacle renders both barriers of one obstacle.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, cellX, cellY func(float64) int, groundRow int) {
	x0 := cellX(o.X)
	x1 := cellX(o.X + g.field.Width())
	if x1 <= x0 {
		x1 = x0 + 1
	}

	topEnd := cellY(o.TopHeight)    // Exclusive row below the top barrier
	bottomStart := cellY(o.BottomY) // First row of the bottom barrier

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColored(x, y, pipeChar, core.ColorGreen)
		}
		if topEnd > 0 {
			dst.SetColored(x, topEnd-1, pipeCapTop, core.ColorGreen)
		}

		for y := bottomStart; y < groundRow; y++ {
			dst.SetColored(x, y, pipeChar, core.ColorGreen)
		}
		if bottomStart < groundRow {
			dst.SetColored(x, bottomStart, pipeCapBottom, core.ColorGreen)
		}
	}
}

// drawPlayer renders the toilet as a filled block.
func (g *Game) drawPlayer(dst *core.Screen, cellX, cellY func(float64) int) {
	b := g.player.Bounds()
	x0, y0 := cellX(b.X), cellY(b.Y)
	x1, y1 := cellX(b.Right()), cellY(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r := playerChar
			if x == x0 && y == y0 {
				r = playerLidChar
			}
			dst.SetColored(x, y, r, core.ColorBrightWhite)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
