package engine

import (
	"fmt"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/constants"
)

// LevelView is the read access win conditions get to a running level
type LevelView interface {
	Kills() int
	Boss() *actor.Entity
}

// WinCondition is a level-specific win predicate
type WinCondition interface {
	Met(v LevelView) bool
	// Target is the kill goal shown on the HUD, 0 when the level has none
	Target() int
}

// KillTarget wins once the kill counter reaches N
type KillTarget struct {
	N int
}

func (k KillTarget) Met(v LevelView) bool { return v.Kills() >= k.N }
func (k KillTarget) Target() int          { return k.N }

// BossDefeated wins once a spawned boss has been destroyed
type BossDefeated struct{}

func (BossDefeated) Met(v LevelView) bool {
	b := v.Boss()
	return b != nil && b.Destroyed()
}
func (BossDefeated) Target() int { return 0 }

// LevelConfig is everything level-specific the engine needs
type LevelConfig struct {
	ID   string
	Name string
	// Next is the level entered on win, empty for the final level
	Next string

	Background string
	Music      string

	ScreenWidth  float64
	ScreenHeight float64
	PlayerHealth int

	Enemies   SpawnRule
	Obstacles SpawnRule
	Win       WinCondition
}

// Validate checks the configuration before a level is constructed
func (c *LevelConfig) Validate() error {
	switch {
	case c.ID == "":
		return fmt.Errorf("%w: empty level id", ErrInvalidConfig)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: level %s: screen %.0fx%.0f", ErrInvalidConfig, c.ID, c.ScreenWidth, c.ScreenHeight)
	case c.PlayerHealth <= 0:
		return fmt.Errorf("%w: level %s: player health %d", ErrInvalidConfig, c.ID, c.PlayerHealth)
	case c.Win == nil:
		return fmt.Errorf("%w: level %s: no win condition", ErrInvalidConfig, c.ID)
	}

	for _, r := range []struct {
		name string
		rule SpawnRule
	}{{"enemies", c.Enemies}, {"obstacles", c.Obstacles}} {
		if r.rule.Probability < 0 || r.rule.Probability > 1 {
			return fmt.Errorf("%w: level %s: %s probability %f", ErrInvalidConfig, c.ID, r.name, r.rule.Probability)
		}
		if r.rule.Target < 0 {
			return fmt.Errorf("%w: level %s: %s target %d", ErrInvalidConfig, c.ID, r.name, r.rule.Target)
		}
	}
	return nil
}

// EnemyMaxY is the lowest layout Y a spawned enemy may take
func (c *LevelConfig) EnemyMaxY() float64 {
	return c.ScreenHeight - constants.EnemyYMargin
}
