package actor

// Kind tags an entity with the behaviour it dispatches to
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindElite
	KindBoss
	KindPlayerProjectile
	KindEnemyProjectile
	KindEliteProjectile
	KindBossProjectile
	KindAsteroid
	KindSatellite
	kindCount
)

var kindNames = [kindCount]string{
	"player", "enemy", "elite", "boss",
	"player_projectile", "enemy_projectile", "elite_projectile", "boss_projectile",
	"asteroid", "satellite",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// IsProjectile reports one-hit kinds
func (k Kind) IsProjectile() bool {
	return k >= KindPlayerProjectile && k <= KindBossProjectile
}

// IsObstacle reports environmental hazards
func (k Kind) IsObstacle() bool {
	return k == KindAsteroid || k == KindSatellite
}

// IsPlane reports fighter craft, the player included
func (k Kind) IsPlane() bool {
	return k <= KindBoss
}

// Armed reports kinds that fire on their own each tick
func (k Kind) Armed() bool {
	return k == KindEnemy || k == KindElite || k == KindBoss
}
