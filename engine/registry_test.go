package engine

import (
	"testing"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/vmath"
)

// TestRegistryAddAssignsIDs verifies IDs are unique, increasing and attached on insertion
func TestRegistryAddAssignsIDs(t *testing.T) {
	pres := newMockPresentation()
	reg := NewRegistry(pres)

	var last uint64
	for i := 0; i < 10; i++ {
		e := actor.NewEnemy(float64(i), 0)
		reg.Add(GroupEnemy, e)
		if e.ID <= last {
			t.Fatalf("ID %d not greater than previous %d", e.ID, last)
		}
		last = e.ID
	}

	if got := len(pres.attached); got != 10 {
		t.Errorf("Expected 10 attached entities, got %d", got)
	}
	if got := reg.Total(); got != 10 {
		t.Errorf("Expected total 10, got %d", got)
	}

	reg.Add(GroupEnemy, nil)
	reg.Add(GroupCount, actor.NewEnemy(0, 0))
	if got := reg.Total(); got != 10 {
		t.Errorf("nil entity or invalid group changed total to %d", got)
	}
}

// TestRegistryReapInvariant verifies reaping removes exactly the destroyed entities and detaches each once
func TestRegistryReapInvariant(t *testing.T) {
	rng := vmath.NewFastRand(42)
	pres := newMockPresentation()
	reg := NewRegistry(pres)

	destroyed := make(map[uint64]bool)
	for i := 0; i < 200; i++ {
		g := Group(rng.Intn(int(GroupCount)))
		e := actor.NewAsteroid(float64(i), 0)
		reg.Add(g, e)
		if rng.Float64() < 0.4 {
			e.Destroy()
			destroyed[e.ID] = true
		}
	}

	reaped := reg.ReapDestroyed()
	if len(reaped) != len(destroyed) {
		t.Fatalf("Expected %d reaped, got %d", len(destroyed), len(reaped))
	}
	for _, e := range reaped {
		if !destroyed[e.ID] {
			t.Errorf("Reaped live entity %d", e.ID)
		}
	}

	reg.Each(func(g Group, e *actor.Entity) {
		if e.Destroyed() {
			t.Errorf("Destroyed entity %d still in group %s", e.ID, g)
		}
	})
	if got := reg.Total(); got != 200-len(destroyed) {
		t.Errorf("Expected %d survivors, got %d", 200-len(destroyed), got)
	}

	for id := range destroyed {
		if pres.detached[id] != 1 {
			t.Errorf("Entity %d detached %d times, want 1", id, pres.detached[id])
		}
	}

	// A second pass finds nothing and detaches nothing
	if again := reg.ReapDestroyed(); again != nil {
		t.Errorf("Second reap returned %d entities", len(again))
	}
	for id := range destroyed {
		if pres.detached[id] != 1 {
			t.Errorf("Entity %d detached again on second reap", id)
		}
	}
}

// TestRegistryCountLive verifies destroyed entities are excluded before reaping
func TestRegistryCountLive(t *testing.T) {
	reg := NewRegistry(nil)
	a, b := actor.NewEnemy(0, 0), actor.NewEnemy(0, 0)
	reg.Add(GroupEnemy, a)
	reg.Add(GroupEnemy, b)

	b.Destroy()
	if got := reg.CountLive(GroupEnemy); got != 1 {
		t.Errorf("Expected 1 live enemy, got %d", got)
	}
	if got := len(reg.Group(GroupEnemy)); got != 2 {
		t.Errorf("Expected 2 stored enemies before reap, got %d", got)
	}
}

// TestRegistryClear verifies cleanup destroys and detaches everything
func TestRegistryClear(t *testing.T) {
	pres := newMockPresentation()
	reg := NewRegistry(pres)
	for g := Group(0); g < GroupCount; g++ {
		reg.Add(g, actor.NewAsteroid(0, 0))
	}

	reg.Clear()

	if reg.Total() != 0 {
		t.Errorf("Expected empty registry, got %d", reg.Total())
	}
	if len(pres.attached) != 0 {
		t.Errorf("Expected nothing attached, got %d", len(pres.attached))
	}
}
