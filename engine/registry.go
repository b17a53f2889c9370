package engine

import "github.com/lixenwraith/sky-fighter/actor"

// Group names one of the five live entity collections
type Group uint8

const (
	GroupFriendly Group = iota
	GroupEnemy
	GroupPlayerProjectile
	GroupEnemyProjectile
	GroupObstacle
	GroupCount
)

var groupNames = [GroupCount]string{"friendly", "enemy", "player_projectile", "enemy_projectile", "obstacle"}

func (g Group) String() string {
	if g < GroupCount {
		return groupNames[g]
	}
	return "unknown"
}

// Registry owns entity lifetime for one level instance
// Entities never outlive their removal from a group
type Registry struct {
	groups       [GroupCount][]*actor.Entity
	presentation Presentation
	nextEntityID uint64
}

// NewRegistry creates an empty registry bound to a presentation
func NewRegistry(p Presentation) *Registry {
	return &Registry{
		presentation: p,
		nextEntityID: 1,
	}
}

// Add assigns an ID, attaches the entity to the presentation and stores it in the group
func (r *Registry) Add(g Group, e *actor.Entity) {
	if e == nil || g >= GroupCount {
		return
	}
	e.ID = r.nextEntityID
	r.nextEntityID++

	r.groups[g] = append(r.groups[g], e)
	if r.presentation != nil {
		r.presentation.Attach(e)
	}
}

// CountLive returns the number of non-destroyed entities in the group
func (r *Registry) CountLive(g Group) int {
	n := 0
	for _, e := range r.groups[g] {
		if !e.Destroyed() {
			n++
		}
	}
	return n
}

// Group returns the group's backing slice, callers must not retain or mutate it
func (r *Registry) Group(g Group) []*actor.Entity {
	if g >= GroupCount {
		return nil
	}
	return r.groups[g]
}

// Each visits every entity in group order
func (r *Registry) Each(fn func(g Group, e *actor.Entity)) {
	for g := Group(0); g < GroupCount; g++ {
		for _, e := range r.groups[g] {
			fn(g, e)
		}
	}
}

// Total returns the number of stored entities across all groups
func (r *Registry) Total() int {
	n := 0
	for g := range r.groups {
		n += len(r.groups[g])
	}
	return n
}

// ReapDestroyed removes every destroyed entity in one pass and detaches it
// Returns the reaped entities in group order, nil when nothing was destroyed
func (r *Registry) ReapDestroyed() []*actor.Entity {
	var reaped []*actor.Entity

	for g := range r.groups {
		kept := r.groups[g][:0]
		for _, e := range r.groups[g] {
			if e.Destroyed() {
				reaped = append(reaped, e)
				continue
			}
			kept = append(kept, e)
		}
		// Clear the tail so reaped entities are not pinned by the backing array
		for i := len(kept); i < len(r.groups[g]); i++ {
			r.groups[g][i] = nil
		}
		r.groups[g] = kept
	}

	if r.presentation != nil {
		for _, e := range reaped {
			r.presentation.Detach(e)
		}
	}
	return reaped
}

// Clear destroys and detaches every entity, used for level cleanup
func (r *Registry) Clear() {
	for g := range r.groups {
		for _, e := range r.groups[g] {
			e.Destroy()
		}
	}
	r.ReapDestroyed()
}
