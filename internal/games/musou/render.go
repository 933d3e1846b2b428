package musou

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/musou/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar  = '▓'
	BombChar      = '●'
	ShieldChar    = '█'
	GravityChar   = '·'
	EMPChar       = '░'
	ExplodeChar1  = '*'
	ExplodeChar2  = '+'
	DisruptedChar = '▒' // Disrupted enemy too small for a box outline
)

// EnemyGlyphs holds the three alien looks.
var EnemyGlyphs = []rune{'▼', '◆', '▲'}

// EnemyColors pairs with EnemyGlyphs.
var EnemyColors = []core.Color{core.ColorGreen, core.ColorBrightMagenta, core.ColorBrightCyan}

// BombColors are picked at random per bomb.
var BombColors = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorBlue,
	core.ColorYellow, core.ColorMagenta, core.ColorCyan,
}

// facingArrows maps a facing to the glyph drawn in the bird's center.
var facingArrows = map[Facing]rune{
	{1, 0}:   '→',
	{1, -1}:  '↗',
	{0, -1}:  '↑',
	{-1, -1}: '↖',
	{-1, 0}:  '←',
	{-1, 1}:  '↙',
	{0, 1}:   '↓',
	{1, 1}:   '↘',
}

// canvas projects world boxes onto the screen. The arena occupies every row
// except the last, which holds the HUD.
type canvas struct {
	dst    *core.Screen
	sx, sy float64
	tick   uint64
	arena  core.Rect
}

func newCanvas(dst *core.Screen, arenaW, arenaH float64, tick uint64) *canvas {
	rows := dst.Height() - 1
	return &canvas{
		dst:   dst,
		sx:    float64(dst.Width()) / arenaW,
		sy:    float64(rows) / arenaH,
		tick:  tick,
		arena: core.NewRect(0, 0, dst.Width(), rows),
	}
}

// project converts a world box to a cell rect of at least one cell.
func (c *canvas) project(b core.Box) core.Rect {
	x0 := int(math.Round(b.X * c.sx))
	y0 := int(math.Round(b.Y * c.sy))
	x1 := int(math.Round(b.Right() * c.sx))
	y1 := int(math.Round(b.Bottom() * c.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0).Clip(c.arena)
}

// fill paints a world box.
func (c *canvas) fill(b core.Box, r rune, col core.Color) {
	c.dst.DrawRect(c.project(b), r, col)
}

// outline draws only the border of a world box.
func (c *canvas) outline(b core.Box, col core.Color) {
	rect := c.project(b)
	if rect.W == 0 || rect.H == 0 {
		return
	}
	if rect.W < 2 || rect.H < 2 {
		c.dst.DrawRect(rect, DisruptedChar, col)
		return
	}
	c.dst.DrawBox(rect, col)
}

// mark puts a single glyph at the center of a world box.
func (c *canvas) mark(b core.Box, r rune, col core.Color) {
	rect := c.project(b)
	if rect.W == 0 || rect.H == 0 {
		return
	}
	x, y := rect.Center()
	c.dst.SetColor(x, y, r, col)
}

// overlay tints every empty arena cell.
func (c *canvas) overlay(r rune, col core.Color) {
	c.dst.Overlay(c.arena, r, col)
}

// Render draws the current game state into the provided screen buffer. The
// buffer size is the render target: a buffer too small for the arena pauses
// the game until a later Render gets a big enough one.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.tooSmall = !fits(dst.Width(), dst.Height())
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, "Resize to continue", core.ColorGray)
		return
	}

	c := newCanvas(dst, g.cfg.Arena.Width, g.cfg.Arena.Height, g.tick)

	g.bird.Draw(c)
	g.beams.Draw(c)
	g.enemies.Draw(c)
	g.bombs.Draw(c)
	g.emps.Draw(c)
	g.explosions.Draw(c)
	g.shields.Draw(c)
	g.drawHUD(dst)
	g.gravities.Draw(c)

	if g.phase != phaseRunning {
		dst.DrawTextCentered(dst.Height()/2-1, " GAME OVER ", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)
	}
}

// drawHUD renders the score line on the last row.
func (g *Game) drawHUD(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawTextColor(1, y, fmt.Sprintf("Score: %d", g.score), core.ColorBrightBlue)

	var status []string
	if g.bird.Hyper() {
		status = append(status, fmt.Sprintf("HYPER %d", g.bird.hyperLife))
	}
	if g.shields.Len() > 0 {
		status = append(status, "SHIELD")
	}
	if g.gravities.Len() > 0 {
		status = append(status, "GRAVITY")
	}
	if g.difficulty.IsEnabled() {
		status = append(status, fmt.Sprintf("LV %d%%", int(g.difficulty.Level(g.score, g.tick)*100)))
	}
	if len(status) > 0 {
		dst.DrawTextColor(16, y, strings.Join(status, "  "), core.ColorBrightMagenta)
	}

	hint := fmt.Sprintf("EMP %d  SHIELD %d  HYPER %d  GRAVITY %d",
		g.cfg.PowerUps.EMP.Cost, g.cfg.PowerUps.Shield.Cost,
		g.cfg.PowerUps.Hyper.Cost, g.cfg.PowerUps.Gravity.Cost)
	if x := dst.Width() - len(hint) - 1; x > 40 {
		dst.DrawTextColor(x, y, hint, core.ColorGray)
	}
}
