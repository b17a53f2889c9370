package engine

import "github.com/lixenwraith/sky-fighter/actor"

// SpawnContext is what a factory may read when building an entity
type SpawnContext struct {
	Rand        actor.Rand
	ScreenWidth float64
	MaxY        float64
}

// Factory builds one entity for a spawn rule, nil means nothing to spawn
type Factory func(sc SpawnContext) *actor.Entity

// SpawnRule is the level-specific population target of one group
type SpawnRule struct {
	Target      int
	Probability float64
	Factory     Factory
}

// SpawnController tops up enemy and obstacle groups toward their targets
type SpawnController struct {
	enemies   SpawnRule
	obstacles SpawnRule
	ctx       SpawnContext
}

// NewSpawnController creates a controller for one level instance
func NewSpawnController(enemies, obstacles SpawnRule, ctx SpawnContext) *SpawnController {
	return &SpawnController{
		enemies:   enemies,
		obstacles: obstacles,
		ctx:       ctx,
	}
}

// Spawn runs one tick for both groups and returns the number of entities added
func (sc *SpawnController) Spawn(reg *Registry) int {
	return sc.fill(reg, GroupEnemy, sc.enemies) + sc.fill(reg, GroupObstacle, sc.obstacles)
}

// fill draws once per missing entity; a draw below the probability invokes the factory
func (sc *SpawnController) fill(reg *Registry, g Group, rule SpawnRule) int {
	if rule.Factory == nil || sc.ctx.Rand == nil {
		return 0
	}

	deficit := rule.Target - reg.CountLive(g)
	added := 0
	for i := 0; i < deficit; i++ {
		if sc.ctx.Rand.Float64() >= rule.Probability {
			continue
		}
		if e := rule.Factory(sc.ctx); e != nil {
			reg.Add(g, e)
			added++
		}
	}
	return added
}
