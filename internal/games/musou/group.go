package musou

import "github.com/vovakirdan/musou/internal/core"

// Actor is anything that lives in a Group.
type Actor interface {
	// Bounds returns the actor's current rectangle in world units.
	Bounds() core.Box

	// Update advances the actor by one tick. Returning true asks the owning
	// group to remove it.
	Update() (remove bool)

	// Draw renders the actor onto the canvas.
	Draw(c *canvas)

	// Kill marks the actor for removal; Dead reports whether it was marked.
	Kill()
	Dead() bool
}

// sprite carries the removal flag shared by all actors.
type sprite struct {
	dead bool
}

// Kill marks the actor for removal.
func (s *sprite) Kill() { s.dead = true }

// Dead reports whether the actor was marked for removal.
func (s *sprite) Dead() bool { return s.dead }

// arena is the playfield size actors check themselves against.
type arena struct {
	w, h float64
}

// contains reports whether b lies fully inside the arena.
func (a arena) contains(b core.Box) bool {
	return core.InBounds(b, a.w, a.h)
}

// Group is an unordered collection of same-kind actors. It owns its members:
// an actor leaves the group exactly once, when it is killed or its Update
// asks for removal, and the next Compact drops it.
type Group[T Actor] struct {
	items []T
}

// Add inserts actors into the group.
func (g *Group[T]) Add(items ...T) {
	g.items = append(g.items, items...)
}

// Len returns the number of live actors.
func (g *Group[T]) Len() int {
	n := 0
	for _, it := range g.items {
		if !it.Dead() {
			n++
		}
	}
	return n
}

// Each calls fn for every live actor. Actors killed during the walk are
// skipped from then on.
func (g *Group[T]) Each(fn func(T)) {
	for _, it := range g.items {
		if !it.Dead() {
			fn(it)
		}
	}
}

// Items returns the live actors.
func (g *Group[T]) Items() []T {
	out := make([]T, 0, len(g.items))
	g.Each(func(it T) { out = append(out, it) })
	return out
}

// Update runs every live actor's Update and removes those that ask for it.
func (g *Group[T]) Update() {
	for _, it := range g.items {
		if it.Dead() {
			continue
		}
		if it.Update() {
			it.Kill()
		}
	}
	g.Compact()
}

// Draw renders every live actor.
func (g *Group[T]) Draw(c *canvas) {
	g.Each(func(it T) { it.Draw(c) })
}

// Compact drops killed actors.
func (g *Group[T]) Compact() {
	live := g.items[:0]
	for _, it := range g.items {
		if !it.Dead() {
			live = append(live, it)
		}
	}
	// Clear the tail so removed actors can be collected.
	var zero T
	for i := len(live); i < len(g.items); i++ {
		g.items[i] = zero
	}
	g.items = live
}

// Clear removes every actor.
func (g *Group[T]) Clear() {
	g.items = nil
}

// Collide calls hit for every overlapping live pair (a, b). Each a is matched
// with at most one b per call, and a b consumed by hit (killed) cannot be
// matched again, so kills are exactly once.
func Collide[A, B Actor](as *Group[A], bs *Group[B], hit func(a A, b B)) {
	for _, a := range as.items {
		if a.Dead() {
			continue
		}
		for _, b := range bs.items {
			if b.Dead() {
				continue
			}
			if a.Bounds().Intersects(b.Bounds()) {
				hit(a, b)
				break
			}
		}
	}
}

// CollideWith calls hit for every live actor in g overlapping box.
func CollideWith[T Actor](g *Group[T], box core.Box, hit func(T)) {
	for _, it := range g.items {
		if it.Dead() {
			continue
		}
		if it.Bounds().Intersects(box) {
			hit(it)
		}
	}
}
