package render

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/engine"
)

// State is the frontend-neutral Presentation: attached entities plus HUD values
// Both the terminal and the window frontends draw from its Frame snapshots
type State struct {
	mu    sync.Mutex
	clock engine.TimeProvider

	background Background
	attached   map[uint64]*actor.Entity

	hearts  int
	kills   int
	target  int
	banners [engine.BannerCount]bool

	alert      string
	alertUntil time.Time
}

// EntityView is an immutable copy of what a frontend needs to draw one entity
type EntityView struct {
	ID     uint64
	Kind   actor.Kind
	Bounds core.Rect
	// Dim marks a player inside its invulnerability window
	Dim bool
	// Shield marks a boss with an active shield
	Shield bool
}

// Frame is a consistent snapshot of the scene
type Frame struct {
	Background Background
	Entities   []EntityView
	Hearts     int
	Kills      int
	Target     int
	Banners    [engine.BannerCount]bool
	Alert      string
}

// NewState creates an empty scene; clock times alerts and may be nil
func NewState(clock engine.TimeProvider) *State {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &State{
		clock:    clock,
		attached: make(map[uint64]*actor.Entity),
	}
}

// LoadBackground implements engine.Presentation
func (s *State) LoadBackground(id string) error {
	bg, err := LookupBackground(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.background = bg
	s.mu.Unlock()
	return nil
}

// Attach implements engine.Presentation
func (s *State) Attach(e *actor.Entity) {
	s.mu.Lock()
	s.attached[e.ID] = e
	s.mu.Unlock()
}

// Detach implements engine.Presentation
func (s *State) Detach(e *actor.Entity) {
	s.mu.Lock()
	delete(s.attached, e.ID)
	s.mu.Unlock()
}

// SetHearts implements engine.Presentation
func (s *State) SetHearts(n int) {
	if n < 0 {
		n = 0
	}
	s.mu.Lock()
	s.hearts = n
	s.mu.Unlock()
}

// SetKills implements engine.Presentation
func (s *State) SetKills(kills, target int) {
	s.mu.Lock()
	s.kills, s.target = kills, target
	s.mu.Unlock()
}

// ShowBanner implements engine.Presentation
func (s *State) ShowBanner(b engine.Banner, visible bool) {
	if b >= engine.BannerCount {
		return
	}
	s.mu.Lock()
	s.banners[b] = visible
	s.mu.Unlock()
}

// ShowAlert implements engine.Presentation, the message expires after AlertDuration
func (s *State) ShowAlert(msg string) {
	now := s.clock.Now()
	s.mu.Lock()
	s.alert = msg
	s.alertUntil = now.Add(constants.AlertDuration)
	s.mu.Unlock()
}

// Scene implements engine.Presentation
func (s *State) Scene() engine.Scene {
	return s
}

// Background implements engine.Scene
func (s *State) Background() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background.ID
}

// Attached implements engine.Scene
func (s *State) Attached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attached)
}

// Reset drops every attached entity and clears the HUD, used when a new level is built
// The background stays, the new level has already loaded its own
func (s *State) Reset() {
	s.mu.Lock()
	s.attached = make(map[uint64]*actor.Entity)
	s.hearts, s.kills, s.target = 0, 0, 0
	s.banners = [engine.BannerCount]bool{}
	s.mu.Unlock()
}

// Snapshot copies the scene for drawing
// Entity fields are written by the tick, so call it under LevelEngine.RunSafe
func (s *State) Snapshot() Frame {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	f := Frame{
		Background: s.background,
		Entities:   make([]EntityView, 0, len(s.attached)),
		Hearts:     s.hearts,
		Kills:      s.kills,
		Target:     s.target,
		Banners:    s.banners,
	}
	if s.alert != "" && now.Before(s.alertUntil) {
		f.Alert = s.alert
	}

	for _, e := range s.attached {
		v := EntityView{ID: e.ID, Kind: e.Kind, Bounds: e.Bounds()}
		if e.Player != nil {
			v.Dim = e.Player.Invulnerable()
		}
		if e.Boss != nil {
			v.Shield = e.Boss.ShieldActive
		}
		f.Entities = append(f.Entities, v)
	}

	// Painter's order: obstacles, craft, projectiles, player on top
	sort.Slice(f.Entities, func(i, j int) bool {
		li, lj := layer(f.Entities[i].Kind), layer(f.Entities[j].Kind)
		if li != lj {
			return li < lj
		}
		return f.Entities[i].ID < f.Entities[j].ID
	})
	return f
}

func layer(k actor.Kind) int {
	switch {
	case k.IsObstacle():
		return 0
	case k == actor.KindPlayer:
		return 3
	case k.IsProjectile():
		return 2
	default:
		return 1
	}
}
