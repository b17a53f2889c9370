package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 50 * time.Millisecond

	// TicksPerSecond is the logical tick rate derived from GameUpdateInterval
	TicksPerSecond = int(time.Second / GameUpdateInterval)

	// PlayerFireCooldown is the minimum game time between two player shots
	PlayerFireCooldown = 110 * time.Millisecond
)

// Playfield geometry in world units
const (
	ScreenWidth  = 1300.0
	ScreenHeight = 750.0

	// EnemyYMargin keeps spawned enemies off the bottom edge
	EnemyYMargin = 150.0
)

// Player damage window
const (
	// IFrameDuration is the invulnerability window set on damage, in seconds
	IFrameDuration = 1.0

	// IFrameDecay is subtracted from the iframe timer every tick
	IFrameDecay = 1.0 / 30.0
)

// Level defaults
const (
	DefaultPlayerHealth = 5
	FirstLevelID        = "level1"
)
