package musou

import (
	"testing"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// newQuietGame returns a reset game whose spawn timer will not fire during a
// test, so the arena holds only what the test puts there.
func newQuietGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Enemy.SpawnEvery = 1_000_000
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42})
	g.tick = 1
	return g
}

// placeEnemy adds a stopped enemy that will not drop bombs soon.
func placeEnemy(g *Game, cx, cy float64) *Enemy {
	e := &Enemy{
		box:      core.BoxAt(cx, cy, g.cfg.Enemy.Width, g.cfg.Enemy.Height),
		stopped:  true,
		interval: 100_000,
	}
	g.enemies.Add(e)
	return e
}

// placeBomb adds an armed bomb falling straight down.
func placeBomb(g *Game, cx, cy, radius float64) *Bomb {
	b := &Bomb{
		box:    core.BoxAt(cx, cy, 2*radius, 2*radius),
		vel:    core.Vec{Y: 1},
		speed:  g.cfg.Bomb.Speed,
		active: true,
		color:  core.ColorRed,
		arena:  g.arena,
	}
	g.bombs.Add(b)
	return b
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, ev := range res.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	runtime := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     12345,
	}

	// Fire every few ticks while drifting left and right
	inputSequence := make([]core.InputFrame, 900)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%7 == 0:
			inputSequence[i].Set(core.ActionFire)
		case i%50 == 1:
			inputSequence[i].Set(core.ActionSpread)
		}
		if (i/40)%2 == 0 {
			inputSequence[i].Set(core.ActionLeft)
		} else {
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New(config.DefaultConfig())
		g.Reset(runtime)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultConfig())
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42}
	g.Reset(runtime)

	for i := 0; i < 250; i++ {
		g.Step(input(core.ActionFire))
	}
	if g.enemies.Len() == 0 {
		t.Fatal("expected enemies to have spawned")
	}

	g.Reset(runtime)

	if g.Tick() != 0 || g.Score() != 0 {
		t.Errorf("Reset() left tick=%d score=%d", g.Tick(), g.Score())
	}
	if g.enemies.Len() != 0 || g.beams.Len() != 0 || g.bombs.Len() != 0 {
		t.Error("Reset() should empty every group")
	}
	if g.State().GameOver {
		t.Error("Reset() should start a running game")
	}
	if g.ID() != "musou" {
		t.Errorf("ID() = %q, expected musou", g.ID())
	}
}

func TestEnemySpawnsOnFirstTick(t *testing.T) {
	g := New(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res, core.EventEnemySpawned) {
		t.Fatal("expected an enemy on tick 0")
	}
	e := g.enemies.Items()[0]
	if e.Bounds().Center().X < 0 || e.Bounds().Center().X > g.cfg.Arena.Width {
		t.Errorf("enemy center x = %f outside the arena", e.Bounds().Center().X)
	}
	if e.Interval() < g.cfg.Enemy.MinInterval || e.Interval() > g.cfg.Enemy.MaxInterval {
		t.Errorf("enemy interval = %d, expected within [%d, %d]",
			e.Interval(), g.cfg.Enemy.MinInterval, g.cfg.Enemy.MaxInterval)
	}
	// Keep the bird alive until the next spawn.
	e.Disrupt()

	for i := 1; i < 200; i++ {
		if hasEvent(g.Step(core.NewInputFrame()), core.EventEnemySpawned) {
			t.Fatalf("unexpected spawn on tick %d", i)
		}
	}
	if !hasEvent(g.Step(core.NewInputFrame()), core.EventEnemySpawned) {
		t.Error("expected a spawn on tick 200")
	}
}

func TestEnemyStopsAndDrops(t *testing.T) {
	g := newQuietGame(t)
	e := &Enemy{
		box:      core.BoxAt(300, 0, 80, 60),
		vy:       6,
		bound:    50,
		interval: 10,
	}
	g.enemies.Add(e)

	for i := 0; i < 20 && !e.Stopped(); i++ {
		g.Step(core.NewInputFrame())
	}
	if !e.Stopped() {
		t.Fatal("enemy never stopped")
	}
	if c := e.Bounds().Center().Y; c <= 50 || c > 50+2*6 {
		t.Errorf("enemy stopped at center y = %f, expected just past 50", c)
	}

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.bombs.Len() == 0 {
		t.Fatal("stopped enemy should drop a bomb within one interval")
	}
	b := g.bombs.Items()[0]
	if b.vel.X <= 0 || b.vel.Y <= 0 {
		t.Errorf("bomb velocity %+v should point down-right toward the bird", b.vel)
	}
}

func TestOutOfBoundsRemoval(t *testing.T) {
	tests := []struct {
		name string
		box  core.Box
	}{
		{"left", core.Box{X: -500, Y: 100, W: 40, H: 40}},
		{"right", core.Box{X: 2000, Y: 100, W: 40, H: 40}},
		{"below", core.Box{X: 100, Y: 900, W: 40, H: 40}},
		{"above", core.Box{X: 100, Y: -200, W: 40, H: 40}},
		{"straddling", core.Box{X: 1090, Y: 100, W: 40, H: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newQuietGame(t)
			g.bombs.Add(&Bomb{box: tt.box, vel: core.Vec{Y: 1}, speed: 1, active: true, arena: g.arena})
			g.Step(core.NewInputFrame())
			if g.bombs.Len() != 0 {
				t.Error("bomb outside the arena should be removed")
			}

			g = newQuietGame(t)
			g.beams.Add(&Beam{box: tt.box, vel: core.Vec{X: 1}, speed: 1, arena: g.arena})
			g.Step(core.NewInputFrame())
			if g.beams.Len() != 0 {
				t.Error("beam outside the arena should be removed")
			}
		})
	}
}

func TestMoveRevertIsExact(t *testing.T) {
	tests := []struct {
		name    string
		start   core.Box
		actions []core.Action
		facing  Facing
	}{
		{"right edge", core.Box{X: 1020, Y: 300, W: 80, H: 80}, []core.Action{core.ActionRight}, Facing{1, 0}},
		{"top edge diagonal", core.Box{X: 500, Y: 5, W: 80, H: 80}, []core.Action{core.ActionUp, core.ActionLeft}, Facing{-1, -1}},
		{"bottom edge boosted", core.Box{X: 500, Y: 560, W: 80, H: 80}, []core.Action{core.ActionDown, core.ActionBoost}, Facing{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newQuietGame(t)
			g.bird.box = tt.start

			g.Step(input(tt.actions...))

			if g.bird.Bounds() != tt.start {
				t.Errorf("bird moved to %+v, expected exact revert to %+v", g.bird.Bounds(), tt.start)
			}
			if g.bird.Facing() != tt.facing {
				t.Errorf("facing = %+v, expected %+v", g.bird.Facing(), tt.facing)
			}
		})
	}
}

func TestBirdMovement(t *testing.T) {
	g := newQuietGame(t)
	start := g.bird.Bounds()

	g.Step(input(core.ActionLeft))
	if got := g.bird.Bounds().X; got != start.X-10 {
		t.Errorf("x after one move = %f, expected %f", got, start.X-10)
	}

	g.Step(input(core.ActionLeft, core.ActionBoost))
	if got := g.bird.Bounds().X; got != start.X-30 {
		t.Errorf("x after boosted move = %f, expected %f", got, start.X-30)
	}
	if g.bird.Facing() != (Facing{-1, 0}) {
		t.Errorf("facing = %+v, expected left", g.bird.Facing())
	}

	// Opposite keys cancel and leave the facing alone
	g.Step(input(core.ActionUp, core.ActionDown))
	if g.bird.Facing() != (Facing{-1, 0}) {
		t.Errorf("facing changed on a zero move: %+v", g.bird.Facing())
	}
}

func TestBeamHitsEnemyAhead(t *testing.T) {
	g := newQuietGame(t)
	bc := g.bird.Bounds().Center()
	e := placeEnemy(g, bc.X+150, bc.Y)

	g.Step(input(core.ActionFire))
	if g.beams.Len() != 1 {
		t.Fatalf("expected one beam after firing, got %d", g.beams.Len())
	}

	// Beam starts one bird width ahead; enemy is at most this many ticks away.
	limit := int(150/g.cfg.Beam.Speed) + 1
	for i := 0; i < limit && !e.Dead(); i++ {
		g.Step(core.NewInputFrame())
	}

	if !e.Dead() || g.enemies.Len() != 0 {
		t.Fatal("enemy should have been destroyed by the beam")
	}
	if g.beams.Len() != 0 {
		t.Error("beam should be consumed by the hit")
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
	if g.explosions.Len() != 1 {
		t.Errorf("expected one explosion, got %d", g.explosions.Len())
	}
	if g.bird.Mood() != MoodHappy {
		t.Error("bird should be happy after a kill")
	}
}

func TestBeamEnemyConsumesOneToOne(t *testing.T) {
	t.Run("two beams one enemy", func(t *testing.T) {
		g := newQuietGame(t)
		e := placeEnemy(g, 300, 200)
		for i := 0; i < 2; i++ {
			g.beams.Add(&Beam{box: core.BoxAt(300, 200, 60, 20), vel: core.Vec{X: 1}, speed: 10, arena: g.arena})
		}

		g.resolveCollisions()

		if !e.Dead() {
			t.Error("enemy should be destroyed")
		}
		if g.beams.Len() != 1 {
			t.Errorf("expected one surviving beam, got %d", g.beams.Len())
		}
		if g.Score() != 10 {
			t.Errorf("score = %d, expected 10", g.Score())
		}
	})

	t.Run("one beam two enemies", func(t *testing.T) {
		g := newQuietGame(t)
		placeEnemy(g, 300, 200)
		placeEnemy(g, 310, 200)
		g.beams.Add(&Beam{box: core.BoxAt(305, 200, 60, 20), vel: core.Vec{X: 1}, speed: 10, arena: g.arena})

		g.resolveCollisions()

		if g.enemies.Len() != 1 {
			t.Errorf("expected one surviving enemy, got %d", g.enemies.Len())
		}
		if g.beams.Len() != 0 {
			t.Error("beam should be consumed")
		}
		if g.Score() != 10 {
			t.Errorf("score = %d, expected 10", g.Score())
		}
	})
}

func TestBeamBomb(t *testing.T) {
	tests := []struct {
		name      string
		active    bool
		wantScore int
		wantExp   int
	}{
		{"active bomb scores", true, 1, 1},
		{"disarmed bomb is just removed", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newQuietGame(t)
			b := placeBomb(g, 300, 300, 20)
			b.active = tt.active
			g.beams.Add(&Beam{box: core.BoxAt(300, 300, 60, 20), vel: core.Vec{X: 1}, speed: 10, arena: g.arena})

			g.resolveCollisions()

			if g.bombs.Len() != 0 || g.beams.Len() != 0 {
				t.Error("beam and bomb should both be removed")
			}
			if g.Score() != tt.wantScore {
				t.Errorf("score = %d, expected %d", g.Score(), tt.wantScore)
			}
			if g.explosions.Len() != tt.wantExp {
				t.Errorf("explosions = %d, expected %d", g.explosions.Len(), tt.wantExp)
			}
		})
	}
}

func TestShieldActivation(t *testing.T) {
	tests := []struct {
		score      int
		wantShield bool
		wantScore  int
		wantEvent  core.EventKind
	}{
		{45, false, 45, core.EventPowerUpDenied},
		{50, true, 0, core.EventPowerUp},
		{120, true, 70, core.EventPowerUp},
	}

	for _, tt := range tests {
		g := newQuietGame(t)
		g.score = tt.score

		g.handleActions(input(core.ActionShield))

		if got := g.shields.Len() == 1; got != tt.wantShield {
			t.Errorf("score %d: shield created = %v, expected %v", tt.score, got, tt.wantShield)
		}
		if g.Score() != tt.wantScore {
			t.Errorf("score %d: score after = %d, expected %d", tt.score, g.Score(), tt.wantScore)
		}
		if len(g.events) != 1 || g.events[0].Kind != tt.wantEvent || g.events[0].Detail != PowerUpShield {
			t.Errorf("score %d: events = %+v", tt.score, g.events)
		}
		if tt.wantShield && g.shields.Items()[0].Life() != 400 {
			t.Errorf("shield life = %d, expected 400", g.shields.Items()[0].Life())
		}
	}
}

func TestShieldOnlyOneAtATime(t *testing.T) {
	g := newQuietGame(t)
	g.score = 200

	g.Step(input(core.ActionShield))
	g.Step(input(core.ActionShield))

	if g.shields.Len() != 1 {
		t.Errorf("expected a single shield, got %d", g.shields.Len())
	}
	if g.Score() != 150 {
		t.Errorf("score = %d, expected 150", g.Score())
	}
}

func TestShieldBlocksBombs(t *testing.T) {
	g := newQuietGame(t)
	g.score = 50
	g.handleActions(input(core.ActionShield))
	s := g.shields.Items()[0]

	// Facing right: the wall stands one bird width to the right.
	sc := s.Bounds().Center()
	bc := g.bird.Bounds().Center()
	if sc.X != bc.X+g.bird.Bounds().W || sc.Y != bc.Y {
		t.Errorf("shield center = %+v, expected (%f, %f)", sc, bc.X+g.bird.Bounds().W, bc.Y)
	}

	placeBomb(g, sc.X, sc.Y, 10)
	g.resolveCollisions()

	if g.bombs.Len() != 0 {
		t.Error("shield should absorb the bomb")
	}
	if g.shields.Len() != 1 {
		t.Error("shield should survive the hit")
	}
}

func TestShieldExpires(t *testing.T) {
	g := newQuietGame(t)
	g.score = 50
	g.Step(input(core.ActionShield))

	for i := 1; i < 400; i++ {
		if g.shields.Len() != 1 {
			t.Fatalf("shield gone after %d ticks", i)
		}
		g.Step(core.NewInputFrame())
	}
	if g.shields.Len() != 0 {
		t.Error("shield should expire after 400 ticks")
	}
}

func TestNonHyperBirdHitEndsGame(t *testing.T) {
	g := newQuietGame(t)
	bc := g.bird.Bounds().Center()
	placeBomb(g, bc.X, bc.Y, 20)

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res, core.EventPlayerHit) {
		t.Error("expected a player_hit event")
	}
	if res.State.GameOver {
		t.Fatal("game over should wait for the display delay")
	}
	if g.bird.Mood() != MoodSad {
		t.Error("bird should look sad")
	}

	frozen := g.Snapshot()
	delay := g.cfg.Arena.GameOverDelay
	for i := 0; i < delay-1; i++ {
		if g.Step(input(core.ActionFire, core.ActionLeft)).State.GameOver {
			t.Fatalf("game over after %d ticks, expected %d", i+1, delay)
		}
	}
	if g.Tick() != frozen.Tick || g.bird.Bounds().X != frozen.BirdX || g.beams.Len() != 0 {
		t.Error("world should stay frozen while dying")
	}

	res = g.Step(core.NewInputFrame())
	if !res.State.GameOver || !hasEvent(res, core.EventGameOver) {
		t.Error("expected game over after the delay")
	}
	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("game over is terminal")
	}
}

func TestGameOverWithoutDelay(t *testing.T) {
	g := newQuietGame(t)
	g.cfg.Arena.GameOverDelay = 0
	bc := g.bird.Bounds().Center()
	placeBomb(g, bc.X, bc.Y, 20)

	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("expected immediate game over")
	}
}

func TestDisarmedBombIsHarmless(t *testing.T) {
	g := newQuietGame(t)
	bc := g.bird.Bounds().Center()
	placeBomb(g, bc.X, bc.Y, 20).Disarm()

	res := g.Step(core.NewInputFrame())

	if hasEvent(res, core.EventPlayerHit) || g.phase != phaseRunning {
		t.Error("a disarmed bomb must not hurt the bird")
	}
	if g.bombs.Len() != 0 {
		t.Error("bomb should still be removed on contact")
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
}

func TestHyper(t *testing.T) {
	g := newQuietGame(t)
	g.score = 100

	g.Step(input(core.ActionHyper))
	if !g.bird.Hyper() || g.Score() != 0 {
		t.Fatalf("hyper = %v score = %d, expected hyper with score 0", g.bird.Hyper(), g.Score())
	}

	bc := g.bird.Bounds().Center()
	placeBomb(g, bc.X, bc.Y, 20)
	res := g.Step(core.NewInputFrame())
	if hasEvent(res, core.EventPlayerHit) || g.phase != phaseRunning {
		t.Fatal("hyper bird should be immune")
	}
	if g.Score() != 1 || g.explosions.Len() != 1 {
		t.Errorf("score = %d explosions = %d, expected 1 and 1", g.Score(), g.explosions.Len())
	}

	// 2 ticks used so far; hyper ends once its 500 ticks are exhausted.
	for i := 2; i < 500; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.bird.Hyper() {
		t.Error("hyper ended early")
	}
	g.Step(core.NewInputFrame())
	if g.bird.Hyper() {
		t.Error("hyper should have ended")
	}
}

func TestHyperNotAffordable(t *testing.T) {
	g := newQuietGame(t)
	g.score = 99

	res := g.Step(input(core.ActionHyper))

	if g.bird.Hyper() || g.Score() != 99 || !hasEvent(res, core.EventPowerUpDenied) {
		t.Error("hyper must not activate below its cost")
	}
}

func TestGravityFieldCrushesBombs(t *testing.T) {
	g := newQuietGame(t)
	g.score = 200
	placeBomb(g, 200, 200, 20)
	placeBomb(g, 600, 100, 30)

	g.Step(input(core.ActionGravity))

	if g.gravities.Len() != 1 {
		t.Fatal("expected a gravity field")
	}
	if g.bombs.Len() != 0 {
		t.Errorf("gravity should crush every bomb, %d left", g.bombs.Len())
	}
	if g.explosions.Len() != 2 {
		t.Errorf("explosions = %d, expected 2", g.explosions.Len())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, gravity kills should not score", g.Score())
	}
	if life := g.explosions.Items()[0].life; life != g.cfg.Explosion.GravityLife {
		t.Errorf("explosion life = %d, expected %d", life, g.cfg.Explosion.GravityLife)
	}
}

func TestEMP(t *testing.T) {
	g := newQuietGame(t)
	g.score = 20
	e := placeEnemy(g, 500, 100)
	b := placeBomb(g, 200, 300, 20)

	g.Step(input(core.ActionEMP))

	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
	if e.Interval() != IntervalInfinite || !e.disrupted {
		t.Errorf("enemy interval = %d, expected infinite", e.Interval())
	}
	if b.Active() {
		t.Error("bomb should be disarmed")
	}
	if b.Speed() != g.cfg.Bomb.Speed/2 {
		t.Errorf("bomb speed = %f, expected %f", b.Speed(), g.cfg.Bomb.Speed/2)
	}
	if g.emps.Len() != 1 {
		t.Fatal("expected an EMP flash")
	}

	// Life 2.5: gone once it has been updated three times.
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.emps.Len() != 0 {
		t.Error("EMP flash should be gone")
	}

	// The disrupted enemy never drops again.
	if e.CanDrop(0) {
		t.Error("disrupted enemy should never drop")
	}
}

func TestScoreNeverNegative(t *testing.T) {
	g := New(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 99})

	actions := []core.Action{
		core.ActionShield, core.ActionEMP, core.ActionGravity,
		core.ActionHyper, core.ActionFire, core.ActionSpread,
	}
	for i := 0; i < 3000; i++ {
		in := input(actions[i%len(actions)])
		if i%3 == 0 {
			in.Set(core.ActionEMP)
		}
		res := g.Step(in)
		if res.State.Score < 0 {
			t.Fatalf("score went negative (%d) at tick %d", res.State.Score, i)
		}
		if res.State.GameOver {
			break
		}
	}
}

func TestSpread(t *testing.T) {
	got := spreadAngles(5, 50)
	want := []float64{-50, -25, 0, 25, 50}
	if len(got) != len(want) {
		t.Fatalf("spreadAngles(5, 50) = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("spreadAngles(5, 50)[%d] = %f, expected %f", i, got[i], want[i])
		}
	}
	if got := spreadAngles(1, 50); len(got) != 1 || got[0] != 0 {
		t.Errorf("spreadAngles(1, 50) = %v, expected [0]", got)
	}

	g := newQuietGame(t)
	g.bird.box = core.BoxAt(550, 325, 80, 80)
	g.Step(input(core.ActionSpread))
	if g.beams.Len() != 5 {
		t.Errorf("expected 5 beams, got %d", g.beams.Len())
	}
}

func TestBeamFollowsFacing(t *testing.T) {
	g := newQuietGame(t)
	g.bird.box = core.BoxAt(550, 325, 80, 80)
	g.bird.facing = Facing{0, -1}

	b := newBeam(g.arena, g.bird, 0, g.cfg.Beam)

	if b.vel.Y >= 0 || b.vel.X > 1e-9 || b.vel.X < -1e-9 {
		t.Errorf("beam velocity = %+v, expected straight up", b.vel)
	}
	// Rotated 90 degrees: the beam is tall and narrow.
	if b.box.H <= b.box.W {
		t.Errorf("upward beam box = %+v, expected taller than wide", b.box)
	}
	if c := b.box.Center(); c.Y > 325-80+1e-6 {
		t.Errorf("beam center y = %f, expected one bird height above", c.Y)
	}
}
