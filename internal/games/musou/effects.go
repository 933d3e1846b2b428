package musou

import "github.com/vovakirdan/musou/internal/core"

// Explosion flickers between two frames until its life runs out.
type Explosion struct {
	sprite
	box        core.Box
	life       int
	frameTicks int
}

func newExplosion(at core.Vec, size float64, life, frameTicks int) *Explosion {
	if frameTicks < 1 {
		frameTicks = 1
	}
	return &Explosion{
		box:        core.BoxAt(at.X, at.Y, size, size),
		life:       life,
		frameTicks: frameTicks,
	}
}

// Bounds returns the explosion rectangle.
func (e *Explosion) Bounds() core.Box { return e.box }

// Update counts the life down; the explosion goes away once it is negative.
func (e *Explosion) Update() bool {
	e.life--
	return e.life < 0
}

// frame returns 0 or 1.
func (e *Explosion) frame() int {
	return e.life / e.frameTicks % 2
}

// Draw renders the current frame.
func (e *Explosion) Draw(c *canvas) {
	if e.frame() == 0 {
		c.fill(e.box, ExplodeChar1, core.ColorBrightYellow)
		return
	}
	c.fill(e.box, ExplodeChar2, core.ColorBrightRed)
}

// Shield is a wall in front of the bird that absorbs bombs.
type Shield struct {
	sprite
	box  core.Box
	life int
}

// newShield builds a wall thickness wide and twice the bird's height, rotated
// to the bird's facing and placed one bird-size ahead of it.
func newShield(bird *Bird, thickness float64, life int) *Shield {
	f := bird.Facing()
	bb := bird.Bounds()
	w, h := core.RotatedExtent(thickness, 2*bb.H, f.Angle())
	center := bb.Center()
	return &Shield{
		box:  core.BoxAt(center.X+bb.W*float64(f.X), center.Y+bb.H*float64(f.Y), w, h),
		life: life,
	}
}

// Bounds returns the shield rectangle.
func (s *Shield) Bounds() core.Box { return s.box }

// Life returns the remaining ticks.
func (s *Shield) Life() int { return s.life }

// Update counts the life down; the shield goes away at zero.
func (s *Shield) Update() bool {
	s.life--
	return s.life <= 0
}

// Draw renders the wall.
func (s *Shield) Draw(c *canvas) {
	c.fill(s.box, ShieldChar, core.ColorBlue)
}

// GravityField covers the whole arena and crushes every bomb in it.
type GravityField struct {
	sprite
	box  core.Box
	life int
}

func newGravityField(a arena, life int) *GravityField {
	return &GravityField{
		box:  core.Box{W: a.w, H: a.h},
		life: life,
	}
}

// Bounds returns the arena rectangle.
func (g *GravityField) Bounds() core.Box { return g.box }

// Update counts the life down; the field goes away once it is negative.
func (g *GravityField) Update() bool {
	g.life--
	return g.life < 0
}

// Draw darkens empty cells.
func (g *GravityField) Draw(c *canvas) {
	c.overlay(GravityChar, core.ColorDarkGray)
}

// EMP is a brief full-arena flash. Its effect on enemies and bombs is applied
// once, when it is triggered.
type EMP struct {
	sprite
	box  core.Box
	life float64
}

func newEMP(a arena, life float64) *EMP {
	return &EMP{
		box:  core.Box{W: a.w, H: a.h},
		life: life,
	}
}

// Bounds returns the arena rectangle.
func (e *EMP) Bounds() core.Box { return e.box }

// Update counts the life down; the flash goes away once it is negative.
func (e *EMP) Update() bool {
	e.life--
	return e.life < 0
}

// Draw tints empty cells.
func (e *EMP) Draw(c *canvas) {
	c.overlay(EMPChar, core.ColorYellow)
}
