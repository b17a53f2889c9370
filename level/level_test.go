package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/engine"
)

// scriptRand replays fixed draws, then repeats rest
type scriptRand struct {
	vals []float64
	rest float64
}

func (s *scriptRand) Float64() float64 {
	if len(s.vals) > 0 {
		v := s.vals[0]
		s.vals = s.vals[1:]
		return v
	}
	return s.rest
}

func (s *scriptRand) Shuffle(n int, swap func(i, j int)) {}

// TestEmbeddedCatalog verifies the built-in four levels
func TestEmbeddedCatalog(t *testing.T) {
	cat, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded catalog invalid: %v", err)
	}
	if cat.First != "level1" || len(cat.Levels) != 4 {
		t.Fatalf("Expected 4 levels starting at level1, got %d starting at %s", len(cat.Levels), cat.First)
	}

	reg, err := FromCatalog(cat)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id     string
		next   string
		target int
		music  string
		obst   int
	}{
		{"level1", "level2", 15, "level1Music", 0},
		{"level2", "level3", 20, "level2Music", 0},
		{"level3", "level4", 25, "level3Music", 2},
		{"level4", "", 0, "bossMusic", 3},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cfg, err := reg.Build(tt.id)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if cfg.Next != tt.next || cfg.Win.Target() != tt.target || cfg.Music != tt.music {
				t.Errorf("Got next=%q target=%d music=%q", cfg.Next, cfg.Win.Target(), cfg.Music)
			}
			if cfg.Obstacles.Target != tt.obst {
				t.Errorf("Obstacle target = %d, want %d", cfg.Obstacles.Target, tt.obst)
			}
			if cfg.PlayerHealth != 5 || cfg.ScreenWidth != 1300 || cfg.ScreenHeight != 750 {
				t.Errorf("Defaults not applied: %+v", cfg)
			}
		})
	}

	boss, _ := reg.Build("level4")
	if _, ok := boss.Win.(engine.BossDefeated); !ok {
		t.Errorf("level4 win = %T, want BossDefeated", boss.Win)
	}
}

// TestRegistryErrors verifies unknown and duplicate ids
func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry()
	noop := func() (engine.LevelConfig, error) { return engine.LevelConfig{ID: "a"}, nil }

	if err := reg.Register("a", noop); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("a", noop); !errors.Is(err, ErrDuplicateLevel) {
		t.Errorf("Expected ErrDuplicateLevel, got %v", err)
	}
	if _, err := reg.Build("b"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
	if reg.First() != "a" || !reg.Has("a") || reg.Has("b") {
		t.Error("Registry bookkeeping wrong")
	}
	if ids := reg.IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Errorf("IDs = %v", ids)
	}
}

// TestBossOnce verifies the boss factory spawns a single boss per level instance
func TestBossOnce(t *testing.T) {
	cat, _ := Embedded()
	reg, _ := FromCatalog(cat)

	sc := engine.SpawnContext{Rand: &scriptRand{rest: 0.5}, ScreenWidth: 1300, MaxY: 600}
	first, _ := reg.Build("level4")
	if e := first.Enemies.Factory(sc); e == nil || e.Kind != actor.KindBoss {
		t.Fatalf("First call should return the boss, got %v", e)
	}
	if e := first.Enemies.Factory(sc); e != nil {
		t.Error("Second call returned another boss")
	}

	// A rebuilt level gets its own boss
	again, _ := reg.Build("level4")
	if e := again.Enemies.Factory(sc); e == nil {
		t.Error("Rebuilt level did not spawn a boss")
	}
}

// TestEnemyFactoryElite verifies the height draw precedes the elite draw
func TestEnemyFactoryElite(t *testing.T) {
	sc := engine.SpawnContext{ScreenWidth: 1300, MaxY: 600}

	sc.Rand = &scriptRand{vals: []float64{0.5, 0.1}}
	e := EnemyFactory(0.2)(sc)
	if e.Kind != actor.KindElite {
		t.Errorf("Expected elite, got %s", e.Kind)
	}
	if x, y := e.Position(); x != 1300 || y != 300 {
		t.Errorf("Spawned at (%.0f, %.0f), want (1300, 300)", x, y)
	}

	sc.Rand = &scriptRand{vals: []float64{0.5, 0.9}}
	if e := EnemyFactory(0.2)(sc); e.Kind != actor.KindEnemy {
		t.Errorf("Expected regular enemy, got %s", e.Kind)
	}

	// Without elites only one draw is taken
	rng := &scriptRand{vals: []float64{0.25, 0.0}}
	sc.Rand = rng
	if e := EnemyFactory(0)(sc); e.Kind != actor.KindEnemy {
		t.Errorf("Expected regular enemy, got %s", e.Kind)
	}
	if len(rng.vals) != 1 {
		t.Errorf("Expected one draw without elites, %d left", len(rng.vals))
	}

	sc.Rand = &scriptRand{vals: []float64{0, 0.05}}
	if e := ObstacleFactory(0.1)(sc); e.Kind != actor.KindSatellite {
		t.Errorf("Expected satellite, got %s", e.Kind)
	}
	sc.Rand = &scriptRand{vals: []float64{0, 0.5}}
	if e := ObstacleFactory(0.1)(sc); e.Kind != actor.KindAsteroid {
		t.Errorf("Expected asteroid, got %s", e.Kind)
	}
}

// TestParseValidation verifies malformed catalogs are rejected
func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"Empty", "", engine.ErrInvalidConfig},
		{"UnknownKey", "levels:\n  - id: a\n    colour: red\n    win: {kills: 1}\n", engine.ErrInvalidConfig},
		{"NoWin", "levels:\n  - id: a\n", engine.ErrInvalidConfig},
		{"BothWins", "levels:\n  - id: a\n    enemies: {boss: true}\n    win: {kills: 3, boss: true}\n", engine.ErrInvalidConfig},
		{"BossWinNoBoss", "levels:\n  - id: a\n    win: {boss: true}\n", engine.ErrInvalidConfig},
		{"Duplicate", "levels:\n  - id: a\n    win: {kills: 1}\n  - id: a\n    win: {kills: 1}\n", ErrDuplicateLevel},
		{"BadFirst", "first: z\nlevels:\n  - id: a\n    win: {kills: 1}\n", ErrUnknownLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}

	cat, err := Parse([]byte("levels:\n  - id: solo\n    win: {kills: 2}\n"))
	if err != nil {
		t.Fatalf("Minimal catalog rejected: %v", err)
	}
	if cat.First != "solo" {
		t.Errorf("First defaulted to %q, want solo", cat.First)
	}
}

// TestLoadPriority verifies custom path > default file > embedded
func TestLoadPriority(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	def := filepath.Join(dir, "levels.yaml")

	write := func(path, id string) {
		t.Helper()
		data := "levels:\n  - id: " + id + "\n    win: {kills: 1}\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Nothing on disk falls back to the embedded catalog
	cat, err := loadAuto("", def)
	if err != nil || cat.First != "level1" {
		t.Fatalf("Expected embedded catalog, got %v, %v", cat, err)
	}

	write(def, "fromdefault")
	cat, err = loadAuto("", def)
	if err != nil || cat.First != "fromdefault" {
		t.Fatalf("Expected default file, got %v, %v", cat, err)
	}

	write(custom, "fromcustom")
	cat, err = loadAuto(custom, def)
	if err != nil || cat.First != "fromcustom" {
		t.Fatalf("Expected custom file, got %v, %v", cat, err)
	}

	if _, err := loadAuto(filepath.Join(dir, "missing.yaml"), def); err == nil {
		t.Error("Expected error for a missing custom path")
	}
}

// TestBuiltLevelRuns verifies a catalog level constructs a working engine
func TestBuiltLevelRuns(t *testing.T) {
	cat, _ := Embedded()
	reg, _ := FromCatalog(cat)
	cfg, err := reg.Build("level3")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Built config invalid: %v", err)
	}
	if cfg.EnemyMaxY() != 600 {
		t.Errorf("EnemyMaxY = %.0f, want 600", cfg.EnemyMaxY())
	}
}
