package musou

import "github.com/vovakirdan/musou/internal/core"

// resolveCollisions applies the per-pair policies in a fixed order.
// Every kill happens once: killed actors are skipped by later checks.
func (g *Game) resolveCollisions() {
	ex := g.cfg.Explosion

	// Each beam takes out at most one enemy and each enemy absorbs one beam.
	Collide(&g.beams, &g.enemies, func(b *Beam, e *Enemy) {
		b.Kill()
		e.Kill()
		g.explode(e.Bounds(), ex.EnemyLife)
		g.score += g.cfg.Scoring.Enemy
		g.bird.SetMood(MoodHappy)
		g.emit(core.EventEnemyDestroyed, "beam")
	})

	// Beams and bombs annihilate; only an armed bomb is worth points.
	Collide(&g.bombs, &g.beams, func(bomb *Bomb, b *Beam) {
		bomb.Kill()
		b.Kill()
		if bomb.Active() {
			g.explode(bomb.Bounds(), ex.BombLife)
			g.score += g.cfg.Scoring.Bomb
			g.emit(core.EventBombDestroyed, "beam")
		}
	})

	CollideWith(&g.bombs, g.bird.Bounds(), func(bomb *Bomb) {
		bomb.Kill()
		switch {
		case g.phase != phaseRunning:
		case g.bird.Hyper():
			g.explode(bomb.Bounds(), ex.BombLife)
			g.score += g.cfg.Scoring.Bomb
			g.emit(core.EventBombDestroyed, "hyper")
		case bomb.Active():
			g.bird.SetMood(MoodSad)
			g.emit(core.EventPlayerHit, "")
			g.die()
		}
	})

	g.shields.Each(func(s *Shield) {
		CollideWith(&g.bombs, s.Bounds(), func(bomb *Bomb) {
			bomb.Kill()
		})
	})

	g.beams.Compact()
	g.enemies.Compact()
	g.bombs.Compact()
}

// resolveGravity crushes every bomb inside an active gravity field.
func (g *Game) resolveGravity() {
	g.gravities.Each(func(f *GravityField) {
		CollideWith(&g.bombs, f.Bounds(), func(bomb *Bomb) {
			bomb.Kill()
			g.explode(bomb.Bounds(), g.cfg.Explosion.GravityLife)
		})
	})
	g.bombs.Compact()
}

// die starts the game-over delay, or ends the game at once without one.
func (g *Game) die() {
	g.phase = phaseDying
	g.dyingLeft = g.cfg.Arena.GameOverDelay
	if g.dyingLeft <= 0 {
		g.finish()
	}
}

// explode spawns an explosion centered on box.
func (g *Game) explode(box core.Box, life int) {
	ex := g.cfg.Explosion
	g.explosions.Add(newExplosion(box.Center(), ex.Size, life, ex.FrameTicks))
}
