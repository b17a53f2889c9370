package level

import (
	"fmt"

	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/engine"
)

// Catalog is the decoded level file
type Catalog struct {
	First  string       `yaml:"first"`
	Levels []Definition `yaml:"levels"`
}

// Definition is one level as written in YAML
type Definition struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Next         string  `yaml:"next"`
	Background   string  `yaml:"background"`
	Music        string  `yaml:"music"`
	PlayerHealth int     `yaml:"player_health"`
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`

	Enemies   EnemySpec    `yaml:"enemies"`
	Obstacles ObstacleSpec `yaml:"obstacles"`
	Win       WinSpec      `yaml:"win"`
}

// EnemySpec configures the enemy group
// Boss replaces regular spawning with a single boss
type EnemySpec struct {
	Max         int     `yaml:"max"`
	Probability float64 `yaml:"probability"`
	EliteChance float64 `yaml:"elite_chance"`
	Boss        bool    `yaml:"boss"`
}

// ObstacleSpec configures the obstacle group, Max 0 disables obstacles
type ObstacleSpec struct {
	Max             int     `yaml:"max"`
	Probability     float64 `yaml:"probability"`
	SatelliteChance float64 `yaml:"satellite_chance"`
}

// WinSpec selects the win predicate, exactly one of Kills or Boss
type WinSpec struct {
	Kills int  `yaml:"kills"`
	Boss  bool `yaml:"boss"`
}

// Validate checks fields the engine cannot check on its own
func (d *Definition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: level without id", engine.ErrInvalidConfig)
	case d.Win.Boss == (d.Win.Kills > 0):
		return fmt.Errorf("%w: level %s: win needs exactly one of kills or boss", engine.ErrInvalidConfig, d.ID)
	case d.Win.Boss && !d.Enemies.Boss:
		return fmt.Errorf("%w: level %s: boss win without a boss", engine.ErrInvalidConfig, d.ID)
	case d.Enemies.EliteChance < 0 || d.Enemies.EliteChance > 1:
		return fmt.Errorf("%w: level %s: elite chance %f", engine.ErrInvalidConfig, d.ID, d.Enemies.EliteChance)
	case d.Obstacles.SatelliteChance < 0 || d.Obstacles.SatelliteChance > 1:
		return fmt.Errorf("%w: level %s: satellite chance %f", engine.ErrInvalidConfig, d.ID, d.Obstacles.SatelliteChance)
	}
	return nil
}

// Config builds a fresh engine configuration, factories carry per-instance state
func (d *Definition) Config() engine.LevelConfig {
	cfg := engine.LevelConfig{
		ID:           d.ID,
		Name:         d.Name,
		Next:         d.Next,
		Background:   d.Background,
		Music:        d.Music,
		ScreenWidth:  d.ScreenWidth,
		ScreenHeight: d.ScreenHeight,
		PlayerHealth: d.PlayerHealth,
	}
	if cfg.ScreenWidth == 0 {
		cfg.ScreenWidth = constants.ScreenWidth
	}
	if cfg.ScreenHeight == 0 {
		cfg.ScreenHeight = constants.ScreenHeight
	}
	if cfg.PlayerHealth == 0 {
		cfg.PlayerHealth = constants.DefaultPlayerHealth
	}

	if d.Enemies.Boss {
		cfg.Enemies = engine.SpawnRule{Target: 1, Probability: 1, Factory: BossOnce()}
	} else {
		cfg.Enemies = engine.SpawnRule{
			Target:      d.Enemies.Max,
			Probability: d.Enemies.Probability,
			Factory:     EnemyFactory(d.Enemies.EliteChance),
		}
	}

	if d.Obstacles.Max > 0 {
		cfg.Obstacles = engine.SpawnRule{
			Target:      d.Obstacles.Max,
			Probability: d.Obstacles.Probability,
			Factory:     ObstacleFactory(d.Obstacles.SatelliteChance),
		}
	}

	if d.Win.Boss {
		cfg.Win = engine.BossDefeated{}
	} else {
		cfg.Win = engine.KillTarget{N: d.Win.Kills}
	}
	return cfg
}
