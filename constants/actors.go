package constants

// Player craft
const (
	PlayerWidth      = 120.0
	PlayerHeight     = 70.0
	PlayerStartX     = 5.0
	PlayerStartY     = 300.0
	PlayerMinX       = 5.0
	PlayerMaxX       = 1200.0
	PlayerMinY       = 0.0
	PlayerMaxY       = 650.0
	PlayerSpeed      = 8.0
	PlayerMultiplier = 1.5

	PlayerProjectileOffsetX = 100.0
	PlayerProjectileOffsetY = 30.0
)

// Enemy plane
const (
	EnemyWidth    = 120.0
	EnemyHeight   = 100.0
	EnemyHealth   = 3
	EnemyVelocity = -7.0
	EnemyFireRate = 0.015

	EnemyProjectileOffsetX = -25.0
	EnemyProjectileOffsetY = 25.0
)

// Elite enemy plane
const (
	EliteWidth    = 130.0
	EliteHeight   = 100.0
	EliteHealth   = 7
	EliteVelocity = -5.0
	EliteFireRate = 0.025

	EliteProjectileOffsetX = -100.0
	EliteProjectileOffsetY = 50.0
)

// Boss
const (
	BossWidth    = 320.0
	BossHeight   = 350.0
	BossStartX   = 1000.0
	BossStartY   = 400.0
	BossHealth   = 100
	BossFireRate = 0.045
	BossMinY     = -50.0
	BossMaxY     = 475.0

	// BossVerticalStep is the magnitude of each entry in the move pattern
	BossVerticalStep = 8.0
	// BossMovesPerCycle is how many times each of {+step, -step, 0} appears in the pattern
	BossMovesPerCycle = 5
	// BossMaxSameMove is the run length after which the pattern is reshuffled
	BossMaxSameMove = 7

	BossShieldProbability = 0.03
	BossShieldMaxFrames   = 70
	BossLaughProbability  = 0.3

	BossProjectileX       = 950.0
	BossProjectileOffsetY = 75.0
)

// Projectiles
const (
	PlayerProjectileWidth    = 40.0
	PlayerProjectileHeight   = 15.0
	PlayerProjectileVelocity = 15.0

	EnemyProjectileWidth    = 50.0
	EnemyProjectileHeight   = 25.0
	EnemyProjectileVelocity = -10.0

	EliteProjectileWidth    = 70.0
	EliteProjectileHeight   = 50.0
	EliteProjectileVelocity = -15.0

	BossProjectileWidth    = 100.0
	BossProjectileHeight   = 75.0
	BossProjectileVelocity = -18.0
)

// Obstacles
const (
	AsteroidSize     = 50.0
	AsteroidHealth   = 1
	AsteroidVelocity = -20.0

	SatelliteSize     = 100.0
	SatelliteHealth   = 10
	SatelliteVelocity = -5.0
)
