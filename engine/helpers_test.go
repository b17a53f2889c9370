package engine

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/core"
)

// scriptRand replays fixed draws, then repeats rest; Shuffle is the identity
type scriptRand struct {
	vals  []float64
	rest  float64
	i     int
	draws int
}

func (s *scriptRand) Float64() float64 {
	s.draws++
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return s.rest
}

func (s *scriptRand) Shuffle(n int, swap func(i, j int)) {}

// mockPresentation records every call from the engine
type mockPresentation struct {
	mu          sync.Mutex
	backgrounds map[string]bool
	background  string
	attached    map[uint64]*actor.Entity
	detached    map[uint64]int
	hearts      int
	kills       int
	target      int
	banners     [BannerCount]bool
	alerts      []string
}

func newMockPresentation() *mockPresentation {
	return &mockPresentation{
		backgrounds: map[string]bool{"bg": true},
		attached:    make(map[uint64]*actor.Entity),
		detached:    make(map[uint64]int),
	}
}

func (m *mockPresentation) LoadBackground(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.backgrounds[id] {
		return fmt.Errorf("%w: %q", ErrUnknownAsset, id)
	}
	m.background = id
	return nil
}

func (m *mockPresentation) Attach(e *actor.Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attached[e.ID] = e
}

func (m *mockPresentation) Detach(e *actor.Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attached, e.ID)
	m.detached[e.ID]++
}

func (m *mockPresentation) SetHearts(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hearts = n
}

func (m *mockPresentation) SetKills(kills, target int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kills, m.target = kills, target
}

func (m *mockPresentation) ShowBanner(b Banner, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banners[b] = visible
}

func (m *mockPresentation) ShowAlert(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, msg)
}

func (m *mockPresentation) Scene() Scene {
	return mockScene{m}
}

func (m *mockPresentation) banner(b Banner) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.banners[b]
}

type mockScene struct{ m *mockPresentation }

func (s mockScene) Background() string { return s.m.background }
func (s mockScene) Attached() int {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return len(s.m.attached)
}

// mockAudio records effect and music requests
type mockAudio struct {
	mu      sync.Mutex
	effects []string
	music   []string
	stops   int
}

func (a *mockAudio) PlayEffect(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.effects = append(a.effects, name)
}

func (a *mockAudio) PlayMusic(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.music = append(a.music, name)
}

func (a *mockAudio) StopMusic() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stops++
}

func (a *mockAudio) count(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, e := range a.effects {
		if e == name {
			n++
		}
	}
	return n
}

// mockInput is a fixed pressed set
type mockInput map[core.Action]bool

func (m mockInput) Pressed(a core.Action) bool { return m[a] }

// enemySlayer destroys every enemy it is shown, standing in for player fire
type enemySlayer struct{}

func (enemySlayer) Resolve(a, b []*actor.Entity, env *actor.Env) int {
	n := 0
	for _, e := range b {
		if e.Kind == actor.KindEnemy && !e.Destroyed() {
			e.Destroy()
			n++
		}
	}
	return n
}

// quietConfig is a level with no spawning and an unreachable kill target
func quietConfig() LevelConfig {
	return LevelConfig{
		ID:           "test",
		Background:   "bg",
		Music:        "level1Music",
		ScreenWidth:  1300,
		ScreenHeight: 750,
		PlayerHealth: 5,
		Win:          KillTarget{N: 1000},
	}
}

// newTestEngine builds and initializes a level on a step driver
func newTestEngine(cfg LevelConfig, deps Deps) (*LevelEngine, *mockPresentation, *mockAudio, *StepDriver) {
	pres := newMockPresentation()
	audio := &mockAudio{}
	driver := NewStepDriver()

	deps.Presentation = pres
	deps.Audio = audio
	deps.Driver = driver
	if deps.Rand == nil {
		deps.Rand = &scriptRand{rest: 0.99}
	}

	le, err := NewLevelEngine(cfg, deps)
	if err != nil {
		panic(err)
	}
	le.InitializeScene()
	return le, pres, audio, driver
}
