package actor

import "github.com/lixenwraith/sky-fighter/constants"

// PlayerState holds the input-driven state of the player craft
type PlayerState struct {
	// Velocity multipliers set from input, 0 when the axis is released
	MoveX float64
	MoveY float64

	// Kills may go negative, escaped enemies subtract from it
	Kills int

	// IFrame is the remaining invulnerability in seconds
	IFrame float64
}

// Invulnerable reports whether damage is currently suppressed
func (p *PlayerState) Invulnerable() bool {
	return p.IFrame > 0
}

// MoveUp, MoveDown, MoveLeft and MoveRight set the axis multipliers
func (p *PlayerState) MoveUp()    { p.MoveY = -constants.PlayerMultiplier }
func (p *PlayerState) MoveDown()  { p.MoveY = constants.PlayerMultiplier }
func (p *PlayerState) MoveLeft()  { p.MoveX = -constants.PlayerMultiplier }
func (p *PlayerState) MoveRight() { p.MoveX = constants.PlayerMultiplier }

// StopX halts horizontal movement
func (p *PlayerState) StopX() { p.MoveX = 0 }

// StopY halts vertical movement
func (p *PlayerState) StopY() { p.MoveY = 0 }

// updatePlayer moves each axis independently, reverting an axis that leaves its bounds
func (e *Entity) updatePlayer() {
	p := e.Player
	if p == nil {
		return
	}

	if p.MoveX != 0 {
		before := e.DX
		e.MoveHorizontally(constants.PlayerSpeed * p.MoveX)
		if x := e.X + e.DX; x < constants.PlayerMinX || x > constants.PlayerMaxX {
			e.DX = before
		}
	}

	if p.MoveY != 0 {
		before := e.DY
		e.MoveVertically(constants.PlayerSpeed * p.MoveY)
		if y := e.Y + e.DY; y < constants.PlayerMinY || y > constants.PlayerMaxY {
			e.DY = before
		}
	}

	if p.IFrame > 0 {
		p.IFrame -= constants.IFrameDecay
		if p.IFrame < 0 {
			p.IFrame = 0
		}
	}
}

// Shoot returns a player projectile at the muzzle offset
// Cooldown is enforced by the caller
func (e *Entity) Shoot() *Entity {
	x, y := e.Position()
	return NewPlayerProjectile(x+constants.PlayerProjectileOffsetX, y+constants.PlayerProjectileOffsetY)
}

// IncrementKills adds n to the kill counter, n may be negative
func (e *Entity) IncrementKills(n int) {
	if e.Player != nil {
		e.Player.Kills += n
	}
}
