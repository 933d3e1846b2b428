package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Power-up names used in events.
const (
	PowerUpHyper   = "hyper"
	PowerUpShield  = "shield"
	PowerUpGravity = "gravity"
	PowerUpEMP     = "emp"
)

// handleActions processes the key-down actions of this tick.
func (g *Game) handleActions(in core.InputFrame) {
	if in.Has(core.ActionFire) {
		g.beams.Add(newBeam(g.arena, g.bird, 0, g.cfg.Beam))
	}
	if in.Has(core.ActionSpread) {
		for _, off := range spreadAngles(g.cfg.Beam.SpreadCount, g.cfg.Beam.SpreadAngle) {
			g.beams.Add(newBeam(g.arena, g.bird, off, g.cfg.Beam))
		}
	}
	if in.Has(core.ActionGravity) {
		g.activateGravity()
	}
	if in.Has(core.ActionHyper) {
		g.activateHyper()
	}
	if in.Has(core.ActionShield) {
		g.activateShield()
	}
	if in.Has(core.ActionEMP) {
		g.activateEMP()
	}
}

// spend deducts the power-up cost when the score covers it. The score never
// goes below zero.
func (g *Game) spend(name string, p config.PowerUpConfig) bool {
	if g.score < p.Cost {
		g.emit(core.EventPowerUpDenied, name)
		return false
	}
	g.score -= p.Cost
	g.emit(core.EventPowerUp, name)
	return true
}

func (g *Game) activateHyper() {
	p := g.cfg.PowerUps.Hyper
	if g.bird.Hyper() {
		g.emit(core.EventPowerUpDenied, PowerUpHyper)
		return
	}
	if g.spend(PowerUpHyper, p) {
		g.bird.StartHyper(int(p.Duration))
	}
}

// activateShield raises a wall in front of the bird. Only one shield may
// exist at a time.
func (g *Game) activateShield() {
	p := g.cfg.PowerUps.Shield
	if g.shields.Len() > 0 {
		g.emit(core.EventPowerUpDenied, PowerUpShield)
		return
	}
	if g.spend(PowerUpShield, p) {
		g.shields.Add(newShield(g.bird, g.cfg.PowerUps.ShieldThickness, int(p.Duration)))
	}
}

func (g *Game) activateGravity() {
	p := g.cfg.PowerUps.Gravity
	if g.spend(PowerUpGravity, p) {
		g.gravities.Add(newGravityField(g.arena, int(p.Duration)))
	}
}

// activateEMP disrupts every enemy and disarms every bomb currently in play.
// Enemies and bombs that appear later are not affected.
func (g *Game) activateEMP() {
	p := g.cfg.PowerUps.EMP
	if !g.spend(PowerUpEMP, p) {
		return
	}
	g.emps.Add(newEMP(g.arena, p.Duration))
	g.enemies.Each(func(e *Enemy) { e.Disrupt() })
	g.bombs.Each(func(b *Bomb) { b.Disarm() })
}
