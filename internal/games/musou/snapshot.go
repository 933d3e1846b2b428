package musou

import "math"

// Snapshot contains the observable game state for determinism testing.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Score     int
	Phase     int
	DyingLeft int

	// Bird: X, Y, FacingX, FacingY, Hyper, HyperLife, Mood
	BirdX, BirdY     float64
	FacingX, FacingY int
	Hyper            bool
	HyperLife        int
	Mood             int

	// Each enemy is 5 values: X, Y, Stopped, Interval, Variant
	EnemyData []float64
	// Each bomb is 5 values: X, Y, Size, Speed, Active
	BombData []float64
	// Each beam is 2 values: X, Y
	BeamData []float64

	Explosions int
	Shields    int
	Gravities  int
	EMPs       int
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bb := g.bird.Bounds()
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Phase:     int(g.phase),
		DyingLeft: g.dyingLeft,
		BirdX:     bb.X,
		BirdY:     bb.Y,
		FacingX:   g.bird.facing.X,
		FacingY:   g.bird.facing.Y,
		Hyper:     g.bird.hyper,
		HyperLife: g.bird.hyperLife,
		Mood:      int(g.bird.mood),

		Explosions: g.explosions.Len(),
		Shields:    g.shields.Len(),
		Gravities:  g.gravities.Len(),
		EMPs:       g.emps.Len(),
	}

	g.enemies.Each(func(e *Enemy) {
		snap.EnemyData = append(snap.EnemyData,
			e.box.X, e.box.Y, boolF(e.stopped), float64(e.interval), float64(e.variant))
	})
	g.bombs.Each(func(b *Bomb) {
		snap.BombData = append(snap.BombData,
			b.box.X, b.box.Y, b.box.W, b.speed, boolF(b.active))
	})
	g.beams.Each(func(b *Beam) {
		snap.BeamData = append(snap.BeamData, b.box.X, b.box.Y)
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DyingLeft) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BirdX)
	h = h*31 + math.Float64bits(snap.BirdY)
	h = h*31 + uint64(snap.FacingX+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FacingY+1) //#nosec G115 -- hash computation
	if snap.Hyper {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.HyperLife) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mood)      //#nosec G115 -- hash computation

	for _, data := range [][]float64{snap.EnemyData, snap.BombData, snap.BeamData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + uint64(snap.Explosions) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shields)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Gravities)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EMPs)       //#nosec G115 -- hash computation

	return h
}
