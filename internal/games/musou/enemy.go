package musou

import (
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// IntervalInfinite is the drop interval of an enemy that can no longer bomb.
const IntervalInfinite = math.MaxInt

// Enemy descends from the top edge, stops at a random height and drops bombs
// every interval ticks.
type Enemy struct {
	sprite
	box       core.Box
	vy        float64
	bound     float64 // Stop once the center passes this y
	stopped   bool
	interval  int
	variant   int
	disrupted bool
}

// Bounds returns the enemy rectangle.
func (e *Enemy) Bounds() core.Box { return e.box }

// Stopped reports whether the enemy has reached its stop height.
func (e *Enemy) Stopped() bool { return e.stopped }

// Interval returns the bomb drop interval in ticks.
func (e *Enemy) Interval() int { return e.interval }

// Update moves the enemy down until it passes its stop height.
// Enemies never leave on their own.
func (e *Enemy) Update() bool {
	if e.box.Center().Y > e.bound {
		e.vy = 0
		e.stopped = true
	}
	e.box = e.box.Moved(core.Vec{Y: e.vy})
	return false
}

// CanDrop reports whether the enemy drops a bomb on this tick.
func (e *Enemy) CanDrop(tick uint64) bool {
	if !e.stopped || e.interval == IntervalInfinite || e.interval <= 0 {
		return false
	}
	return tick%uint64(e.interval) == 0
}

// Disrupt permanently stops the enemy from dropping bombs.
func (e *Enemy) Disrupt() {
	e.interval = IntervalInfinite
	e.disrupted = true
}

// Draw renders the alien, or a hollow frame once it has been disrupted.
func (e *Enemy) Draw(c *canvas) {
	v := e.variant % len(EnemyGlyphs)
	if e.disrupted {
		c.outline(e.box, core.ColorGray)
		c.mark(e.box, EnemyGlyphs[v], core.ColorDarkGray)
		return
	}
	c.fill(e.box, EnemyGlyphs[v], EnemyColors[v])
}

// Bomb falls from an enemy toward where the bird was when it was dropped.
type Bomb struct {
	sprite
	box    core.Box
	vel    core.Vec
	speed  float64
	active bool
	color  core.Color
	arena  arena
}

// newBomb drops a bomb of the given radius from the bottom of e, aimed at target.
func newBomb(a arena, e *Enemy, target core.Box, radius int, speed float64, color core.Color) *Bomb {
	size := float64(2 * radius)
	center := e.box.Center()
	return &Bomb{
		box:    core.BoxAt(center.X, center.Y+e.box.H/2, size, size),
		vel:    core.Orientation(e.box, target),
		speed:  speed,
		active: true,
		color:  color,
		arena:  a,
	}
}

// Bounds returns the bomb rectangle.
func (b *Bomb) Bounds() core.Box { return b.box }

// Active reports whether the bomb can still end the game.
func (b *Bomb) Active() bool { return b.active }

// Speed returns the bomb speed.
func (b *Bomb) Speed() float64 { return b.speed }

// Disarm halves the bomb's speed and makes it harmless.
func (b *Bomb) Disarm() {
	b.speed /= 2
	b.active = false
}

// Update moves the bomb and removes it once it is no longer fully on screen.
func (b *Bomb) Update() bool {
	b.box = b.box.Moved(b.vel.Scale(b.speed))
	return !b.arena.contains(b.box)
}

// Draw renders the bomb; disarmed bombs are drawn gray.
func (b *Bomb) Draw(c *canvas) {
	col := b.color
	if !b.active {
		col = core.ColorGray
	}
	c.fill(b.box, BombChar, col)
}
