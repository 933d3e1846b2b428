package musou

import (
	"math"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Beam flies straight from the bird in the direction it faced when fired.
type Beam struct {
	sprite
	box   core.Box
	vel   core.Vec
	speed float64
	angle float64
	arena arena
}

// newBeam fires a beam rotated offset degrees from the bird's facing. It
// starts one bird-size ahead of the bird.
func newBeam(a arena, bird *Bird, offset float64, cfg config.BeamConfig) *Beam {
	angle := bird.Facing().Angle() + offset
	vel := core.Heading(angle)
	w, h := core.RotatedExtent(cfg.Width, cfg.Height, angle)
	bb := bird.Bounds()
	center := bb.Center()
	return &Beam{
		box:   core.BoxAt(center.X+bb.W*vel.X, center.Y+bb.H*vel.Y, w, h),
		vel:   vel,
		speed: cfg.Speed,
		angle: angle,
		arena: a,
	}
}

// spreadAngles returns n offsets evenly covering [-spread, +spread] degrees.
// A single beam goes straight ahead.
func spreadAngles(n, spread int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	step := float64(2*spread) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(-spread) + float64(i)*step
	}
	return out
}

// Bounds returns the beam rectangle.
func (b *Beam) Bounds() core.Box { return b.box }

// Update moves the beam and removes it once it leaves the arena.
func (b *Beam) Update() bool {
	b.box = b.box.Moved(b.vel.Scale(b.speed))
	return !b.arena.contains(b.box)
}

// Draw renders the beam with a line glyph closest to its heading.
func (b *Beam) Draw(c *canvas) {
	c.fill(b.box, beamGlyph(b.angle), core.ColorBrightCyan)
}

// beamGlyph picks a line character for a heading in degrees.
func beamGlyph(deg float64) rune {
	d := math.Mod(deg, 180)
	if d < 0 {
		d += 180
	}
	switch {
	case d < 22.5 || d >= 157.5:
		return '━'
	case d < 67.5:
		return '╱'
	case d < 112.5:
		return '┃'
	default:
		return '╲'
	}
}
