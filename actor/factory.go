package actor

import "github.com/lixenwraith/sky-fighter/constants"

// IDs are assigned by the registry on insertion

// NewPlayer creates the player craft at its start position
func NewPlayer(health int) *Entity {
	return &Entity{
		Kind:   KindPlayer,
		X:      constants.PlayerStartX,
		Y:      constants.PlayerStartY,
		W:      constants.PlayerWidth,
		H:      constants.PlayerHeight,
		Health: health,
		Player: &PlayerState{},
	}
}

// NewEnemy creates a regular enemy plane
func NewEnemy(x, y float64) *Entity {
	return &Entity{
		Kind:     KindEnemy,
		X:        x,
		Y:        y,
		W:        constants.EnemyWidth,
		H:        constants.EnemyHeight,
		VX:       constants.EnemyVelocity,
		Health:   constants.EnemyHealth,
		FireRate: constants.EnemyFireRate,
	}
}

// NewElite creates an elite enemy plane
func NewElite(x, y float64) *Entity {
	return &Entity{
		Kind:     KindElite,
		X:        x,
		Y:        y,
		W:        constants.EliteWidth,
		H:        constants.EliteHeight,
		VX:       constants.EliteVelocity,
		Health:   constants.EliteHealth,
		FireRate: constants.EliteFireRate,
	}
}

// NewBoss creates the boss with a freshly shuffled move pattern
func NewBoss(rng Rand) *Entity {
	return &Entity{
		Kind:     KindBoss,
		X:        constants.BossStartX,
		Y:        constants.BossStartY,
		W:        constants.BossWidth,
		H:        constants.BossHeight,
		Health:   constants.BossHealth,
		FireRate: constants.BossFireRate,
		Boss:     newBossState(rng),
	}
}

// NewAsteroid creates a fast, fragile obstacle
func NewAsteroid(x, y float64) *Entity {
	return &Entity{
		Kind:   KindAsteroid,
		X:      x,
		Y:      y,
		W:      constants.AsteroidSize,
		H:      constants.AsteroidSize,
		VX:     constants.AsteroidVelocity,
		Health: constants.AsteroidHealth,
	}
}

// NewSatellite creates a slow, durable obstacle
func NewSatellite(x, y float64) *Entity {
	return &Entity{
		Kind:   KindSatellite,
		X:      x,
		Y:      y,
		W:      constants.SatelliteSize,
		H:      constants.SatelliteSize,
		VX:     constants.SatelliteVelocity,
		Health: constants.SatelliteHealth,
	}
}

func newProjectile(kind Kind, x, y, w, h, vx float64) *Entity {
	return &Entity{
		Kind:   kind,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		VX:     vx,
		Health: 1,
	}
}

// NewPlayerProjectile creates a player shot
func NewPlayerProjectile(x, y float64) *Entity {
	return newProjectile(KindPlayerProjectile, x, y,
		constants.PlayerProjectileWidth, constants.PlayerProjectileHeight, constants.PlayerProjectileVelocity)
}

// NewEnemyProjectile creates a regular enemy shot
func NewEnemyProjectile(x, y float64) *Entity {
	return newProjectile(KindEnemyProjectile, x, y,
		constants.EnemyProjectileWidth, constants.EnemyProjectileHeight, constants.EnemyProjectileVelocity)
}

// NewEliteProjectile creates an elite enemy shot
func NewEliteProjectile(x, y float64) *Entity {
	return newProjectile(KindEliteProjectile, x, y,
		constants.EliteProjectileWidth, constants.EliteProjectileHeight, constants.EliteProjectileVelocity)
}

// NewBossProjectile creates a boss fireball
func NewBossProjectile(x, y float64) *Entity {
	return newProjectile(KindBossProjectile, x, y,
		constants.BossProjectileWidth, constants.BossProjectileHeight, constants.BossProjectileVelocity)
}
