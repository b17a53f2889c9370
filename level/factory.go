package level

import (
	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/engine"
)

// EnemyFactory spawns at the right edge at a random height
// A non-zero eliteChance adds a second draw choosing the elite variant
func EnemyFactory(eliteChance float64) engine.Factory {
	return func(sc engine.SpawnContext) *actor.Entity {
		y := sc.Rand.Float64() * sc.MaxY
		if eliteChance > 0 && sc.Rand.Float64() < eliteChance {
			return actor.NewElite(sc.ScreenWidth, y)
		}
		return actor.NewEnemy(sc.ScreenWidth, y)
	}
}

// ObstacleFactory spawns asteroids, or satellites with satelliteChance
func ObstacleFactory(satelliteChance float64) engine.Factory {
	return func(sc engine.SpawnContext) *actor.Entity {
		y := sc.Rand.Float64() * sc.MaxY
		if sc.Rand.Float64() < satelliteChance {
			return actor.NewSatellite(sc.ScreenWidth, y)
		}
		return actor.NewAsteroid(sc.ScreenWidth, y)
	}
}

// BossOnce returns the boss on its first call and nil afterward
func BossOnce() engine.Factory {
	spawned := false
	return func(sc engine.SpawnContext) *actor.Entity {
		if spawned {
			return nil
		}
		spawned = true
		return actor.NewBoss(sc.Rand)
	}
}
