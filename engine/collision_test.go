package engine

import (
	"testing"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/vmath"
)

// TestCollisionSymmetricDamage verifies both sides of an intersecting pair take one unit of damage
func TestCollisionSymmetricDamage(t *testing.T) {
	env := &actor.Env{}
	a := actor.NewSatellite(100, 100)
	b := actor.NewEnemy(150, 120)
	far := actor.NewEnemy(900, 500)

	hits := BruteForce{}.Resolve([]*actor.Entity{a}, []*actor.Entity{b, far}, env)

	if hits != 1 {
		t.Errorf("Expected 1 hit, got %d", hits)
	}
	if a.Health != 9 {
		t.Errorf("Satellite health = %d, want 9", a.Health)
	}
	if b.Health != 2 {
		t.Errorf("Enemy health = %d, want 2", b.Health)
	}
	if far.Health != 3 {
		t.Errorf("Non-intersecting enemy took damage, health %d", far.Health)
	}
}

// TestCollisionTouchingEdgesIntersect verifies boxes sharing an edge count as a hit
func TestCollisionTouchingEdgesIntersect(t *testing.T) {
	env := &actor.Env{}
	a := actor.NewAsteroid(0, 0)  // 0..50
	b := actor.NewAsteroid(50, 0) // 50..100

	if hits := (BruteForce{}).Resolve([]*actor.Entity{a}, []*actor.Entity{b}, env); hits != 1 {
		t.Errorf("Expected touching boxes to collide, got %d hits", hits)
	}
}

// TestCollisionSkipsDestroyed verifies destroyed entities neither deal nor take damage
func TestCollisionSkipsDestroyed(t *testing.T) {
	env := &actor.Env{}
	proj := actor.NewPlayerProjectile(100, 100)
	e1 := actor.NewEnemy(100, 80)
	e2 := actor.NewEnemy(110, 80)

	hits := BruteForce{}.Resolve([]*actor.Entity{proj}, []*actor.Entity{e1, e2}, env)

	if hits != 1 {
		t.Errorf("Projectile should stop after its first hit, got %d hits", hits)
	}
	if e1.Health != 2 || e2.Health != 3 {
		t.Errorf("Expected only the first enemy damaged, got %d and %d", e1.Health, e2.Health)
	}

	dead := actor.NewEnemy(100, 80)
	dead.Destroy()
	live := actor.NewPlayerProjectile(100, 100)
	if hits := (BruteForce{}).Resolve([]*actor.Entity{live}, []*actor.Entity{dead}, env); hits != 0 {
		t.Errorf("Destroyed target produced %d hits", hits)
	}
	if live.Destroyed() {
		t.Error("Projectile destroyed by a destroyed target")
	}
}

// TestCollisionPlayerIFrame verifies an invulnerable player takes no damage while the other side does
func TestCollisionPlayerIFrame(t *testing.T) {
	env := &actor.Env{}
	p := actor.NewPlayer(5)
	p.Player.IFrame = 0.5
	e := actor.NewEnemy(50, 290)

	BruteForce{}.Resolve([]*actor.Entity{p}, []*actor.Entity{e}, env)

	if p.Health != 5 {
		t.Errorf("Invulnerable player health = %d, want 5", p.Health)
	}
	if e.Health != 2 {
		t.Errorf("Enemy health = %d, want 2", e.Health)
	}
}

// randomScene builds a crowded field with a fixed seed
func randomScene(seed uint64, na, nb int) ([]*actor.Entity, []*actor.Entity) {
	rng := vmath.NewFastRand(seed)
	build := func(n int, proj bool) []*actor.Entity {
		out := make([]*actor.Entity, n)
		for i := range out {
			x := rng.Float64()*1500 - 100
			y := rng.Float64()*900 - 75
			if proj {
				out[i] = actor.NewPlayerProjectile(x, y)
			} else if rng.Intn(2) == 0 {
				out[i] = actor.NewSatellite(x, y)
			} else {
				out[i] = actor.NewAsteroid(x, y)
			}
			if rng.Intn(10) == 0 {
				out[i].Destroy()
			}
		}
		return out
	}
	return build(na, true), build(nb, false)
}

// TestGridMatchesBruteForce verifies the grid detector produces identical damage to the reference
func TestGridMatchesBruteForce(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		a1, b1 := randomScene(seed, 60, 80)
		a2, b2 := randomScene(seed, 60, 80)
		env := &actor.Env{}

		want := BruteForce{}.Resolve(a1, b1, env)
		got := NewGridDetector(1300, 750, DefaultCellSize).Resolve(a2, b2, env)

		if got != want {
			t.Fatalf("seed %d: grid hits %d, brute force %d", seed, got, want)
		}
		for i := range a1 {
			if a1[i].Health != a2[i].Health || a1[i].Destroyed() != a2[i].Destroyed() {
				t.Fatalf("seed %d: a[%d] diverged", seed, i)
			}
		}
		for i := range b1 {
			if b1[i].Health != b2[i].Health || b1[i].Destroyed() != b2[i].Destroyed() {
				t.Fatalf("seed %d: b[%d] diverged", seed, i)
			}
		}
	}
}

// TestGridOverflowCell verifies entities beyond a full cell's capacity are still resolved
func TestGridOverflowCell(t *testing.T) {
	env := &actor.Env{}
	var b []*actor.Entity
	for i := 0; i < MaxEntitiesPerCell+5; i++ {
		b = append(b, actor.NewSatellite(10, 10))
	}
	a := []*actor.Entity{actor.NewSatellite(10, 10)}
	a[0].Health = 1000

	hits := NewGridDetector(1300, 750, DefaultCellSize).Resolve(a, b, env)
	if hits != len(b) {
		t.Errorf("Expected %d hits with a full cell, got %d", len(b), hits)
	}
}
