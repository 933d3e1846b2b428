// Package window runs a game in a desktop window with Ebitengine. The game
// still renders into a core.Screen; every cell becomes a square of pixels.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/platform"
)

// Layout constants, in pixels.
const (
	CellSize  = 10 // One screen cell
	HUDHeight = 20 // Status line under the arena
	textShift = 3  // Debug font baseline adjustment inside a cell
)

// Options configures the window.
type Options struct {
	Title    string
	ArenaW   int // Arena size in pixels (one world unit per pixel)
	ArenaH   int
	TickRate int
	Seed     int64
}

// Window adapts a core.Game to ebiten.Game.
type Window struct {
	game    core.Game
	screen  *core.Screen
	opts    Options
	logger  *log.Logger
	state   core.GameState
	bg      color.Color
	palette map[core.Color]color.RGBA
}

// New creates a window for game. A nil logger discards log output.
func New(game core.Game, opts Options, logger *log.Logger) *Window {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// The arena maps to whole cells; the extra row is the HUD.
	cols := opts.ArenaW / CellSize
	rows := opts.ArenaH/CellSize + 1

	return &Window{
		game:    game,
		screen:  core.NewScreen(cols, rows),
		opts:    opts,
		logger:  logger,
		bg:      colornames.Black,
		palette: make(map[core.Color]color.RGBA),
	}
}

// Run opens the window and blocks until the game ends or the player quits.
func (w *Window) Run() error {
	w.game.Reset(core.RuntimeConfig{
		ScreenW:  w.screen.Width(),
		ScreenH:  w.screen.Height(),
		TickRate: w.opts.TickRate,
		Seed:     w.opts.Seed,
	})
	w.logger.Info("game started", "game", w.game.ID(), "seed", w.opts.Seed)

	ebiten.SetWindowSize(w.opts.ArenaW, w.opts.ArenaH+HUDHeight)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update advances the game by one tick. Ebitengine calls it TickRate times a
// second.
func (w *Window) Update() error {
	frame, quit := readInput()
	if quit {
		w.logger.Info("quit requested", "score", w.state.Score)
		return ebiten.Termination
	}

	result := w.game.Step(frame)
	w.state = result.State
	platform.LogEvents(w.logger, result.Events)

	if w.state.GameOver {
		return ebiten.Termination
	}
	return nil
}

// readInput samples the keyboard. Movement keys count while held; the rest
// fire once per press.
func readInput() (core.InputFrame, bool) {
	frame := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return frame, true
	}

	for k, a := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			frame.Set(a)
		}
	}
	for k, a := range pressedKeys {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(a)
		}
	}

	// Left Shift turns a shot into the spread.
	if frame.Has(core.ActionFire) && ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		delete(frame.Actions, core.ActionFire)
		frame.Set(core.ActionSpread)
	}
	return frame, false
}

var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyShiftLeft:  core.ActionBoost,
}

var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyEnter:      core.ActionGravity,
	ebiten.KeyS:          core.ActionShield,
	ebiten.KeyE:          core.ActionEMP,
	ebiten.KeyShiftRight: core.ActionHyper,
}

// Draw paints the current screen buffer.
func (w *Window) Draw(dst *ebiten.Image) {
	dst.Fill(w.bg)
	w.game.Render(w.screen)

	arenaRows := w.screen.Height() - 1
	for y := 0; y < arenaRows; y++ {
		w.drawRow(dst, y)
	}

	hudY := arenaRows*CellSize + (HUDHeight-16)/2
	ebitenutil.DebugPrintAt(dst, w.screen.Row(arenaRows), 4, hudY)
}

// drawRow paints sprite cells as squares and text cells with the debug font.
func (w *Window) drawRow(dst *ebiten.Image, y int) {
	textStart := -1
	flushText := func(end int) {
		if textStart < 0 {
			return
		}
		s := string([]rune(w.screen.Row(y))[textStart:end])
		ebitenutil.DebugPrintAt(dst, s, textStart*CellSize, y*CellSize-textShift)
		textStart = -1
	}

	for x := 0; x < w.screen.Width(); x++ {
		cell := w.screen.GetCell(x, y)
		if isText(cell.Rune) {
			if textStart < 0 {
				textStart = x
			}
			continue
		}
		flushText(x)
		if cell.Rune == ' ' {
			continue
		}
		clr := w.cellColor(cell)
		vector.DrawFilledRect(dst, float32(x*CellSize), float32(y*CellSize),
			CellSize, CellSize, clr, false)
	}
	flushText(w.screen.Width())
}

// cellColor returns the fill for a sprite cell. Shade glyphs are drawn
// translucent.
func (w *Window) cellColor(cell core.Cell) color.RGBA {
	base, ok := w.palette[cell.Color]
	if !ok {
		r, g, b := cell.Color.RGB()
		base = color.RGBA{R: r, G: g, B: b, A: 255}
		w.palette[cell.Color] = base
	}
	alpha, ok := shadeAlpha[cell.Rune]
	if !ok {
		return base
	}
	// Premultiplied alpha
	return color.RGBA{
		R: uint8(uint16(base.R) * uint16(alpha) / 255), //#nosec G115 -- product fits
		G: uint8(uint16(base.G) * uint16(alpha) / 255), //#nosec G115 -- product fits
		B: uint8(uint16(base.B) * uint16(alpha) / 255), //#nosec G115 -- product fits
		A: alpha,
	}
}

var shadeAlpha = map[rune]uint8{
	'▓': 230,
	'▒': 160,
	'░': 70,
	'·': 90,
	'+': 180,
}

// isText reports whether a rune is drawn as a character rather than a block.
// Explosion glyphs are ASCII but drawn as blocks.
func isText(r rune) bool {
	if r == '*' || r == '+' {
		return false
	}
	return r > ' ' && r < 0x7f
}

// Layout reports a fixed logical size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.screen.Width() * CellSize, (w.screen.Height()-1)*CellSize + HUDHeight
}
