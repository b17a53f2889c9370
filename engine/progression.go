package engine

import "fmt"

// Phase is the progression state of one level instance
type Phase uint8

const (
	PhaseActive Phase = iota
	PhasePaused
	PhaseWon
	PhaseLost
	PhaseTransitioning
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "Active"
	case PhasePaused:
		return "Paused"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	case PhaseTransitioning:
		return "Transitioning"
	}
	return "Unknown"
}

// Ended reports phases in which no further ticks are processed
func (p Phase) Ended() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseTransitioning
}

var validTransitions = map[Phase][]Phase{
	PhaseActive: {PhasePaused, PhaseWon, PhaseLost},
	PhasePaused: {PhaseActive},
	PhaseWon:    {PhaseTransitioning},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Progression tracks the level phase and the tick it was entered on
// Not synchronized, owned by LevelEngine under its lock
type Progression struct {
	phase Phase
	since uint64
}

// Phase returns the current phase
func (p *Progression) Phase() Phase {
	return p.phase
}

// Since returns the tick the current phase was entered on
func (p *Progression) Since() uint64 {
	return p.since
}

// Transition moves to a new phase with validation
func (p *Progression) Transition(to Phase, tick uint64) error {
	if !CanTransition(p.phase, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.phase, to)
	}
	p.phase = to
	p.since = tick
	return nil
}
