package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/engine"
)

// PressedSet is the thread-safe set of currently held actions
// Writers are input goroutines, the reader is the level tick
//
// Two sources feed it:
//   - Press: terminal keys; a first press holds for the first-hold window, each repeat
//     then holds for the shorter repeat window
//   - Hold: frontends with real key-up events, held until released
type PressedSet struct {
	mu      sync.Mutex
	clock   engine.TimeProvider
	window  time.Duration
	first   time.Duration
	expires [core.ActionCount]time.Time
	held    [core.ActionCount]bool
}

// NewPressedSet creates an empty set, window <= 0 uses the default repeat window
// The first-hold window is never shorter than the repeat window
func NewPressedSet(clock engine.TimeProvider, window time.Duration) *PressedSet {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &PressedSet{clock: clock, window: window, first: max(window, defaultFirstHoldWindow)}
}

// Press marks an action held from now
// A press while the action is still held is an autorepeat and uses the repeat window
func (s *PressedSet) Press(a core.Action) {
	if a >= core.ActionCount {
		return
	}
	now := s.clock.Now()
	s.mu.Lock()
	if now.Before(s.expires[a]) {
		s.expires[a] = now.Add(s.window)
	} else {
		s.expires[a] = now.Add(s.first)
	}
	s.mu.Unlock()
}

// Hold sets the explicit held state of an action
func (s *PressedSet) Hold(a core.Action, down bool) {
	if a >= core.ActionCount {
		return
	}
	s.mu.Lock()
	s.held[a] = down
	s.mu.Unlock()
}

// Release drops an action from both sources
func (s *PressedSet) Release(a core.Action) {
	if a >= core.ActionCount {
		return
	}
	s.mu.Lock()
	s.held[a] = false
	s.expires[a] = time.Time{}
	s.mu.Unlock()
}

// Pressed implements engine.Input
func (s *PressedSet) Pressed(a core.Action) bool {
	if a == core.ActionNone || a >= core.ActionCount {
		return false
	}
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[a] || now.Before(s.expires[a])
}

// Clear releases every action, used between levels
func (s *PressedSet) Clear() {
	s.mu.Lock()
	s.expires = [core.ActionCount]time.Time{}
	s.held = [core.ActionCount]bool{}
	s.mu.Unlock()
}
