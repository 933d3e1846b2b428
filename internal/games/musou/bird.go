package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Facing is one of the eight grid directions the bird can look in.
// Components are -1, 0 or 1 with screen Y pointing down.
type Facing struct {
	X, Y int
}

// FacingRight is the initial facing.
var FacingRight = Facing{1, 0}

// Vec returns the facing as an (unnormalized) world vector.
func (f Facing) Vec() core.Vec {
	return core.Vec{X: float64(f.X), Y: float64(f.Y)}
}

// Angle returns the facing heading in degrees (see core.AngleOf).
func (f Facing) Angle() float64 {
	return core.AngleOf(f.Vec())
}

// Mood selects the bird's face.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodHappy
	MoodSad
)

// Bird is the player. It is never removed from the game.
type Bird struct {
	box    core.Box
	facing Facing
	cfg    config.PlayerConfig

	hyper     bool
	hyperLife int

	mood     Mood
	moodLife int
}

// NewBird places the bird at its configured start position, facing right.
func NewBird(cfg config.PlayerConfig) *Bird {
	return &Bird{
		box:    core.BoxAt(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height),
		facing: FacingRight,
		cfg:    cfg,
	}
}

// Bounds returns the bird's rectangle.
func (b *Bird) Bounds() core.Box { return b.box }

// Facing returns the current facing.
func (b *Bird) Facing() Facing { return b.facing }

// Hyper reports whether the bird is in hyper mode.
func (b *Bird) Hyper() bool { return b.hyper }

// Mood returns the current face.
func (b *Bird) Mood() Mood { return b.mood }

// StartHyper switches to hyper mode for the given number of ticks.
func (b *Bird) StartHyper(ticks int) {
	b.hyper = true
	b.hyperLife = ticks
}

// SetMood changes the face. Happy reverts to neutral after the configured
// number of ticks; sad is permanent.
func (b *Bird) SetMood(m Mood) {
	b.mood = m
	b.moodLife = 0
	if m == MoodHappy {
		b.moodLife = b.cfg.MoodTicks
	}
}

// moveVector sums the unit vectors of the held direction keys.
func moveVector(in core.InputFrame) Facing {
	var d Facing
	if in.Has(core.ActionUp) {
		d.Y--
	}
	if in.Has(core.ActionDown) {
		d.Y++
	}
	if in.Has(core.ActionLeft) {
		d.X--
	}
	if in.Has(core.ActionRight) {
		d.X++
	}
	return d
}

// Update moves the bird by the held keys and counts down timed states.
// A move that leaves the bird not fully inside the arena is undone, restoring
// the previous rectangle exactly.
func (b *Bird) Update(in core.InputFrame, arenaW, arenaH float64) {
	d := moveVector(in)
	speed := b.cfg.Speed
	if in.Has(core.ActionBoost) {
		speed = b.cfg.BoostSpeed
	}

	prev := b.box
	b.box = b.box.Moved(d.Vec().Scale(speed))
	if !core.InBounds(b.box, arenaW, arenaH) {
		b.box = prev
	}
	if d != (Facing{}) {
		b.facing = d
	}

	if b.hyper {
		b.hyperLife--
		if b.hyperLife < 0 {
			b.hyper = false
			b.hyperLife = 0
		}
	}

	if b.mood == MoodHappy {
		b.moodLife--
		if b.moodLife <= 0 {
			b.mood = MoodNeutral
		}
	}
}

// Draw renders the bird body with an arrow showing where it faces.
func (b *Bird) Draw(c *canvas) {
	col := core.ColorYellow
	switch {
	case b.mood == MoodSad:
		col = core.ColorBrightRed
	case b.hyper && c.tick/4%2 == 0:
		col = core.ColorBrightWhite
	case b.hyper:
		col = core.ColorBrightMagenta
	case b.mood == MoodHappy:
		col = core.ColorBrightYellow
	}
	c.fill(b.box, BirdBodyChar, col)

	glyph := facingArrows[b.facing]
	switch b.mood {
	case MoodHappy:
		glyph = '☺'
	case MoodSad:
		glyph = 'x'
	}
	c.mark(b.box, glyph, core.ColorBrightWhite)
}
