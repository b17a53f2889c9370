package actor

import (
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
)

// Entity is the flat record shared by every actor on the playfield
// Kind selects behaviour; Player and Boss hold kind-specific state and are nil otherwise
type Entity struct {
	ID   uint64
	Kind Kind

	// Layout position plus cumulative translation, position = layout + translation
	X, Y   float64
	DX, DY float64
	W, H   float64

	// Per-tick velocity
	VX, VY float64

	Health   int
	FireRate float64

	destroyed bool

	Player *PlayerState
	Boss   *BossState
}

// Position returns the current top-left corner
func (e *Entity) Position() (float64, float64) {
	return e.X + e.DX, e.Y + e.DY
}

// Bounds returns the current bounding box
func (e *Entity) Bounds() core.Rect {
	x, y := e.Position()
	return core.Rect{X: x, Y: y, Width: e.W, Height: e.H}
}

// Destroyed reports whether the entity has been destroyed
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// Destroy marks the entity destroyed, the flag never resets
func (e *Entity) Destroy() {
	e.destroyed = true
}

// MoveHorizontally adds dx to the translation
func (e *Entity) MoveHorizontally(dx float64) {
	e.DX += dx
}

// MoveVertically adds dy to the translation
func (e *Entity) MoveVertically(dy float64) {
	e.DY += dy
}

// TakeDamage applies one unit of damage and reports whether it landed
// Destroyed entities, shielded bosses and players inside their iframe window ignore it
func (e *Entity) TakeDamage(env *Env) bool {
	if e.destroyed {
		return false
	}

	switch {
	case e.Kind.IsProjectile():
		e.Destroy()
		return true

	case e.Kind == KindBoss:
		if e.Boss != nil && e.Boss.ShieldActive {
			return false
		}

	case e.Kind == KindPlayer:
		if e.Player != nil && e.Player.Invulnerable() {
			return false
		}
	}

	e.Health--
	if e.Health <= 0 {
		e.Health = 0
		e.Destroy()
	}

	if e.Kind == KindPlayer && e.Player != nil {
		env.play(constants.SoundDamageTaken)
		e.Player.IFrame = constants.IFrameDuration
	}
	return true
}

// Update advances the entity by one tick
func (e *Entity) Update(env *Env) {
	if e.destroyed {
		return
	}

	switch e.Kind {
	case KindPlayer:
		e.updatePlayer()
	case KindBoss:
		e.updateBoss(env)
	default:
		e.MoveHorizontally(e.VX)
	}
}

// Fire draws against the fire rate and returns the emitted projectile, or nil
// The player never fires here; its shots are input driven
func (e *Entity) Fire(env *Env) *Entity {
	if e.destroyed || !e.Kind.Armed() || env == nil || env.Rand == nil {
		return nil
	}
	if env.Rand.Float64() >= e.FireRate {
		return nil
	}

	x, y := e.Position()
	switch e.Kind {
	case KindEnemy:
		return NewEnemyProjectile(x+constants.EnemyProjectileOffsetX, y+constants.EnemyProjectileOffsetY)
	case KindElite:
		return NewEliteProjectile(x+constants.EliteProjectileOffsetX, y+constants.EliteProjectileOffsetY)
	case KindBoss:
		return NewBossProjectile(constants.BossProjectileX, y+constants.BossProjectileOffsetY)
	}
	return nil
}
