package engine

import "github.com/lixenwraith/sky-fighter/actor"

// CollisionDetector applies symmetric damage to every intersecting pair across two groups
// Pairs are visited with a as the outer loop; destroyed entities are skipped
type CollisionDetector interface {
	Resolve(a, b []*actor.Entity, env *actor.Env) int
}

// BruteForce tests every ordered pair, O(|a|*|b|)
type BruteForce struct{}

// Resolve implements CollisionDetector and returns the number of intersecting pairs
func (BruteForce) Resolve(a, b []*actor.Entity, env *actor.Env) int {
	hits := 0
	for _, x := range a {
		if x.Destroyed() {
			continue
		}
		xb := x.Bounds()
		for _, y := range b {
			if y.Destroyed() {
				continue
			}
			if !xb.Intersects(y.Bounds()) {
				continue
			}
			x.TakeDamage(env)
			y.TakeDamage(env)
			hits++
			if x.Destroyed() {
				break
			}
		}
	}
	return hits
}

// pairing is one of the five per-tick collision checks
type pairing struct {
	a, b Group
}

// collisionPairings in resolution order
var collisionPairings = [...]pairing{
	{GroupFriendly, GroupObstacle},
	{GroupPlayerProjectile, GroupObstacle},
	{GroupPlayerProjectile, GroupEnemy},
	{GroupEnemyProjectile, GroupFriendly},
	{GroupFriendly, GroupEnemy},
}
