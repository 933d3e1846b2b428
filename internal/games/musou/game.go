// Package musou implements the single-screen shooter: a bird that fires beams
// at descending enemies, dodges their bombs and buys power-ups with its score.
package musou

import (
	"math/rand"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Minimum render target, in cells.
const (
	minScreenW = 40
	minScreenH = 12
)

// phase is the top-level game state.
type phase int

const (
	phaseRunning phase = iota // Normal play
	phaseDying                // Bird was hit; the final frame stays up
	phaseOver                 // Terminal
)

// Game implements core.Game.
type Game struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	arena      arena

	tick      uint64
	score     int
	phase     phase
	dyingLeft int
	tooSmall  bool // Render target below minScreenW×minScreenH; play is paused

	bird       *Bird
	beams      Group[*Beam]
	enemies    Group[*Enemy]
	bombs      Group[*Bomb]
	emps       Group[*EMP]
	explosions Group[*Explosion]
	shields    Group[*Shield]
	gravities  Group[*GravityField]

	events []core.Event
}

// New creates a game using cfg. Call Reset before the first Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "musou" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Musou" }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config { return g.cfg }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.arena = arena{w: g.cfg.Arena.Width, h: g.cfg.Arena.Height}

	g.tick = 0
	g.score = 0
	g.phase = phaseRunning
	g.dyingLeft = 0
	g.tooSmall = !fits(runtime.ScreenW, runtime.ScreenH)

	g.bird = NewBird(g.cfg.Player)
	g.beams.Clear()
	g.enemies.Clear()
	g.bombs.Clear()
	g.emps.Clear()
	g.explosions.Clear()
	g.shields.Clear()
	g.gravities.Clear()
	g.events = nil
}

// Step advances the simulation by one tick. Nothing moves while the render
// target is too small to show the arena.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.tooSmall {
		return g.result()
	}

	switch g.phase {
	case phaseOver:
		return g.result()
	case phaseDying:
		g.dyingLeft--
		if g.dyingLeft <= 0 {
			g.finish()
		}
		return g.result()
	}

	g.handleActions(in)
	g.spawnEnemy()
	g.dropBombs()

	g.resolveCollisions()
	if g.phase != phaseRunning {
		// The world freezes on the fatal hit.
		return g.result()
	}

	g.bird.Update(in, g.arena.w, g.arena.h)
	g.beams.Update()
	g.enemies.Update()
	g.bombs.Update()
	g.emps.Update()
	g.explosions.Update()
	g.shields.Update()
	g.gravities.Update()
	g.resolveGravity()

	g.tick++
	return g.result()
}

// spawnEnemy adds an enemy at a random x on the top edge every spawn period.
func (g *Game) spawnEnemy() {
	every := g.difficulty.SpawnEvery(g.cfg.Enemy.SpawnEvery, g.score, g.tick)
	if g.tick%uint64(every) != 0 { //#nosec G115 -- spawn period is positive
		return
	}

	ec := g.cfg.Enemy
	maxStop := ec.MaxStop
	if maxStop == 0 {
		maxStop = g.arena.h / 2
	}
	interval := g.randInt(ec.MinInterval, ec.MaxInterval)
	e := &Enemy{
		box:      core.BoxAt(g.randFloat(0, g.arena.w), 0, ec.Width, ec.Height),
		vy:       ec.Speed,
		bound:    g.randFloat(ec.MinStop, maxStop),
		interval: g.difficulty.DropInterval(interval, g.score, g.tick),
		variant:  g.rng.Intn(len(EnemyGlyphs)),
	}
	g.enemies.Add(e)
	g.emit(core.EventEnemySpawned, "")
}

// dropBombs lets every stopped enemy whose interval divides the tick drop a
// bomb aimed at the bird.
func (g *Game) dropBombs() {
	bc := g.cfg.Bomb
	speed := g.difficulty.BombSpeed(bc.Speed, g.score, g.tick)
	g.enemies.Each(func(e *Enemy) {
		if !e.CanDrop(g.tick) {
			return
		}
		radius := g.randInt(bc.MinRadius, bc.MaxRadius)
		color := BombColors[g.rng.Intn(len(BombColors))]
		g.bombs.Add(newBomb(g.arena, e, g.bird.Bounds(), radius, speed, color))
	})
}

// fits reports whether a w×h screen can show the arena and the HUD.
func fits(w, h int) bool {
	return w >= minScreenW && h >= minScreenH
}

// Paused reports whether play is held because the screen is too small.
func (g *Game) Paused() bool { return g.tooSmall }

// finish moves to the terminal phase.
func (g *Game) finish() {
	g.phase = phaseOver
	g.emit(core.EventGameOver, "")
}

// randInt returns a uniform integer in [lo, hi].
func (g *Game) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// randFloat returns a whole number in [lo, hi] as a float.
func (g *Game) randFloat(lo, hi float64) float64 {
	return float64(g.randInt(int(lo), int(hi)))
}

// emit records an event for the platform.
func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{
		Kind:   kind,
		Tick:   g.tick,
		Detail: detail,
		Score:  g.score,
	})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseOver,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Tick returns the number of simulated ticks.
func (g *Game) Tick() uint64 { return g.tick }
