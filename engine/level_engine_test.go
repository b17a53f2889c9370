package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/status"
)

// addEntity inserts an entity the way a frontend or test harness must, under the engine lock
func addEntity(le *LevelEngine, g Group, e *actor.Entity) {
	le.RunSafe(func() { le.Registry().Add(g, e) })
}

// TestNewLevelEngineErrors verifies configuration failures surface before the level exists
func TestNewLevelEngineErrors(t *testing.T) {
	if _, err := NewLevelEngine(quietConfig(), Deps{}); !errors.Is(err, ErrNoPresentation) {
		t.Errorf("Expected ErrNoPresentation, got %v", err)
	}

	bad := quietConfig()
	bad.PlayerHealth = 0
	if _, err := NewLevelEngine(bad, Deps{Presentation: newMockPresentation()}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	bad = quietConfig()
	bad.Enemies.Probability = 1.5
	if _, err := NewLevelEngine(bad, Deps{Presentation: newMockPresentation()}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for probability, got %v", err)
	}

	missing := quietConfig()
	missing.Background = "nebula"
	if _, err := NewLevelEngine(missing, Deps{Presentation: newMockPresentation()}); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Expected ErrUnknownAsset, got %v", err)
	}
}

// TestInitializeScene verifies the player, HUD and music are set up once
func TestInitializeScene(t *testing.T) {
	le, pres, audio, _ := newTestEngine(quietConfig(), Deps{})

	scene := le.InitializeScene() // second call must not add a second player
	if scene.Attached() != 1 {
		t.Errorf("Expected 1 attached entity, got %d", scene.Attached())
	}
	if scene.Background() != "bg" {
		t.Errorf("Background = %q, want bg", scene.Background())
	}
	if pres.hearts != 5 {
		t.Errorf("Hearts = %d, want 5", pres.hearts)
	}
	if pres.target != 1000 {
		t.Errorf("Kill target = %d, want 1000", pres.target)
	}
	if len(audio.music) == 0 || audio.music[0] != "level1Music" {
		t.Errorf("Expected level music to start, got %v", audio.music)
	}
	if le.Player() == nil || le.Player().Health != 5 {
		t.Error("Player not created with configured health")
	}
}

// TestCollisionGrantsIFrames verifies one hit, then immunity while the enemy keeps overlapping
func TestCollisionGrantsIFrames(t *testing.T) {
	le, pres, audio, _ := newTestEngine(quietConfig(), Deps{})
	enemy := actor.NewEnemy(50, 290)
	addEntity(le, GroupEnemy, enemy)

	le.Tick()
	if le.Player().Health != 4 {
		t.Fatalf("Player health after first contact = %d, want 4", le.Player().Health)
	}
	if !le.Player().Player.Invulnerable() {
		t.Fatal("Player should be invulnerable after taking damage")
	}
	if pres.hearts != 4 {
		t.Errorf("HUD hearts = %d, want 4", pres.hearts)
	}

	le.Tick()
	le.Tick()
	if le.Player().Health != 4 {
		t.Errorf("Player took damage during iframes, health %d", le.Player().Health)
	}
	if audio.count(constants.SoundDamageTaken) != 1 {
		t.Errorf("Damage cue played %d times, want 1", audio.count(constants.SoundDamageTaken))
	}

	// The enemy loses one health per tick of contact and dies on the third
	if !enemy.Destroyed() {
		t.Errorf("Enemy should be destroyed after 3 contacts, health %d", enemy.Health)
	}
	if le.Kills() != 1 {
		t.Errorf("Kills = %d, want 1", le.Kills())
	}
	if pres.detached[enemy.ID] != 1 {
		t.Errorf("Enemy detached %d times, want 1", pres.detached[enemy.ID])
	}
}

// TestKillTargetAdvances verifies reaching the kill target emits exactly one advance outcome
func TestKillTargetAdvances(t *testing.T) {
	cfg := quietConfig()
	cfg.Next = "level2"
	cfg.Win = KillTarget{N: 15}
	cfg.Enemies = SpawnRule{Target: 1, Probability: 1.0, Factory: func(sc SpawnContext) *actor.Entity {
		return actor.NewEnemy(sc.ScreenWidth, sc.Rand.Float64()*sc.MaxY)
	}}
	reg := status.NewRegistry()

	le, pres, audio, driver := newTestEngine(cfg, Deps{Collision: enemySlayer{}, Status: reg})
	le.StartGame()

	for driver.Step() {
	}

	if driver.Steps() != 15 {
		t.Errorf("Expected the level to end on tick 15, ran %d", driver.Steps())
	}
	if le.Phase() != PhaseTransitioning {
		t.Errorf("Phase = %s, want Transitioning", le.Phase())
	}
	if audio.stops != 1 {
		t.Errorf("Music stopped %d times, want 1", audio.stops)
	}
	if len(pres.attached) != 0 {
		t.Errorf("Cleanup left %d entities attached", len(pres.attached))
	}

	select {
	case o := <-le.Outcomes():
		if o.Kind != OutcomeAdvance || o.Level != "level2" || o.From != "test" {
			t.Errorf("Unexpected outcome %s", o)
		}
	default:
		t.Fatal("No outcome emitted")
	}

	// Later ticks are ignored and emit nothing
	if o := le.Tick(); o.Kind != OutcomeContinue {
		t.Errorf("Tick after end returned %s", o)
	}
	select {
	case o := <-le.Outcomes():
		t.Errorf("Second outcome emitted: %s", o)
	default:
	}

	if got := reg.Ints.Get("level.kills").Load(); got != 15 {
		t.Errorf("level.kills = %d, want 15", got)
	}
	if got := reg.Strings.Get("level.phase").Load(); got != "Transitioning" {
		t.Errorf("level.phase = %q", got)
	}
	t.Logf("✓ Advance emitted once after %d ticks", driver.Steps())
}

// TestEnemyPenetration verifies an escaped enemy costs health and nets zero kills
func TestEnemyPenetration(t *testing.T) {
	le, _, _, _ := newTestEngine(quietConfig(), Deps{})
	enemy := actor.NewEnemy(1300, 0)
	enemy.DX = -1301
	addEntity(le, GroupEnemy, enemy)

	le.Tick()

	if !enemy.Destroyed() {
		t.Fatal("Escaped enemy not destroyed")
	}
	if le.Player().Health != 4 {
		t.Errorf("Player health = %d, want 4", le.Player().Health)
	}
	// The penalty is offset by the reaped enemy being counted as a kill
	if le.Kills() != 0 {
		t.Errorf("Kills = %d, want 0", le.Kills())
	}
	if le.Registry().Total() != 1 {
		t.Errorf("Expected only the player left, got %d entities", le.Registry().Total())
	}
}

// TestObstaclePenetration verifies an escaped obstacle is removed without penalty
func TestObstaclePenetration(t *testing.T) {
	le, pres, _, _ := newTestEngine(quietConfig(), Deps{})
	rock := actor.NewAsteroid(1300, 0)
	rock.DX = -1290
	addEntity(le, GroupObstacle, rock)

	le.Tick()

	if !rock.Destroyed() {
		t.Fatal("Escaped obstacle not destroyed")
	}
	if pres.detached[rock.ID] != 1 {
		t.Error("Escaped obstacle not detached")
	}
	if le.Player().Health != 5 || le.Kills() != 0 {
		t.Errorf("Obstacle escape changed health %d or kills %d", le.Player().Health, le.Kills())
	}
}

// TestProjectileCulling verifies projectiles leaving the playfield are reaped
func TestProjectileCulling(t *testing.T) {
	le, _, _, _ := newTestEngine(quietConfig(), Deps{})
	out := actor.NewPlayerProjectile(1400, 0)
	in := actor.NewPlayerProjectile(600, 0)
	gone := actor.NewEnemyProjectile(-200, 0)
	addEntity(le, GroupPlayerProjectile, out)
	addEntity(le, GroupPlayerProjectile, in)
	addEntity(le, GroupEnemyProjectile, gone)

	le.Tick()

	if !out.Destroyed() || !gone.Destroyed() {
		t.Error("Off-screen projectiles not culled")
	}
	if in.Destroyed() {
		t.Error("On-screen projectile culled")
	}
}

// TestBossWinPrecedence verifies a simultaneous boss kill and player death is a win
func TestBossWinPrecedence(t *testing.T) {
	cfg := quietConfig()
	cfg.Win = BossDefeated{}
	le, pres, _, driver := newTestEngine(cfg, Deps{})
	le.StartGame()

	boss := actor.NewBoss(&scriptRand{rest: 0.99})
	boss.Health = 1
	addEntity(le, GroupEnemy, boss)
	le.RunSafe(func() {
		p := le.Player()
		p.Health = 1
		p.DX, p.DY = 1045, 150
	})

	driver.Step()

	if !boss.Destroyed() || !le.Player().Destroyed() {
		t.Fatal("Expected both boss and player destroyed")
	}
	if le.Phase() != PhaseWon {
		t.Errorf("Phase = %s, want Won", le.Phase())
	}
	if !pres.banner(BannerWin) || pres.banner(BannerLose) {
		t.Error("Expected only the win banner")
	}
	o := <-le.Outcomes()
	if o.Kind != OutcomeGameOver || o.Result != ResultWon {
		t.Errorf("Outcome = %s, want game_over won", o)
	}
	if !driver.Stopped() {
		t.Error("Driver not stopped on the final win")
	}
}

// TestPlayerDeathLoses verifies the lose path
func TestPlayerDeathLoses(t *testing.T) {
	le, pres, audio, driver := newTestEngine(quietConfig(), Deps{})
	le.StartGame()
	le.RunSafe(func() { le.Player().Health = 1 })
	addEntity(le, GroupEnemy, actor.NewEnemy(50, 290))

	driver.Step()

	if le.Phase() != PhaseLost {
		t.Fatalf("Phase = %s, want Lost", le.Phase())
	}
	if !pres.banner(BannerLose) {
		t.Error("Lose banner not shown")
	}
	if audio.stops != 1 {
		t.Errorf("Music stopped %d times, want 1", audio.stops)
	}
	if o := <-le.Outcomes(); o.Result != ResultLost {
		t.Errorf("Outcome = %s, want lost", o)
	}
	if driver.Step() {
		t.Error("Driver stepped after game over")
	}

	// Pause has no effect once the level ended
	if ph := le.PauseGame(); ph != PhaseLost {
		t.Errorf("PauseGame on a lost level returned %s", ph)
	}
}

// TestPauseToggle verifies pause freezes ticks and the banner follows the phase
func TestPauseToggle(t *testing.T) {
	le, pres, _, driver := newTestEngine(quietConfig(), Deps{})
	le.StartGame()
	driver.Step()

	if ph := le.PauseGame(); ph != PhasePaused {
		t.Fatalf("PauseGame = %s, want Paused", ph)
	}
	if !pres.banner(BannerPause) {
		t.Error("Pause banner not shown")
	}
	if driver.Step() {
		t.Error("Paused driver stepped")
	}
	if le.Tick(); le.TickCount() != 1 {
		t.Errorf("Direct tick ran while paused, count %d", le.TickCount())
	}

	if ph := le.PauseGame(); ph != PhaseActive {
		t.Fatalf("PauseGame = %s, want Active", ph)
	}
	if pres.banner(BannerPause) {
		t.Error("Pause banner still shown")
	}
	if !driver.Step() || le.TickCount() != 2 {
		t.Errorf("Resumed level did not tick, count %d", le.TickCount())
	}
}

// TestOnNextLevelRequiresWin verifies advancing from an active level is rejected
func TestOnNextLevelRequiresWin(t *testing.T) {
	le, _, _, _ := newTestEngine(quietConfig(), Deps{})
	if err := le.OnNextLevel("level2"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
	if le.Phase() != PhaseActive {
		t.Errorf("Phase changed to %s", le.Phase())
	}
}

// TestPlayerFireCooldown verifies held fire is limited to one shot per cooldown window
func TestPlayerFireCooldown(t *testing.T) {
	input := mockInput{core.ActionFire: true}
	le, _, audio, _ := newTestEngine(quietConfig(), Deps{Input: input})

	// Ticks are 50ms apart, shots land on ticks 1 and 4 with a 110ms cooldown
	for i := 0; i < 6; i++ {
		le.Tick()
	}

	if got := le.Registry().CountLive(GroupPlayerProjectile); got != 2 {
		t.Errorf("Expected 2 projectiles, got %d", got)
	}
	if got := audio.count(constants.SoundShoot); got != 2 {
		t.Errorf("Shoot cue played %d times, want 2", got)
	}
}

// TestPlayerMovementPriority verifies down beats up and right beats left, applied on the next update
func TestPlayerMovementPriority(t *testing.T) {
	input := mockInput{
		core.ActionUp: true, core.ActionDown: true,
		core.ActionLeft: true, core.ActionRight: true,
	}
	le, _, _, _ := newTestEngine(quietConfig(), Deps{Input: input})

	le.Tick()
	le.Tick()

	step := constants.PlayerSpeed * constants.PlayerMultiplier
	x, y := le.Player().Position()
	if x != constants.PlayerStartX+step || y != constants.PlayerStartY+step {
		t.Errorf("Player at (%.1f, %.1f), want (%.1f, %.1f)",
			x, y, constants.PlayerStartX+step, constants.PlayerStartY+step)
	}

	// Releasing every key stops on the following tick
	for k := range input {
		delete(input, k)
	}
	le.Tick()
	le.Tick()
	x2, y2 := le.Player().Position()
	if x2 != x+step || y2 != y+step {
		t.Errorf("Expected one more step before stopping, got (%.1f, %.1f)", x2, y2)
	}
}

// TestLevelOnClockScheduler verifies a level driven in real time ends and stops its scheduler from inside the tick
func TestLevelOnClockScheduler(t *testing.T) {
	cfg := quietConfig()
	cfg.Next = "level2"
	cfg.Win = KillTarget{N: 3}
	cfg.Enemies = SpawnRule{Target: 1, Probability: 1.0, Factory: func(sc SpawnContext) *actor.Entity {
		return actor.NewEnemy(sc.ScreenWidth, 0)
	}}

	cs := NewClockScheduler(NewPausableClock(), 2*time.Millisecond, nil)
	le, err := NewLevelEngine(cfg, Deps{
		Presentation: newMockPresentation(),
		Rand:         &scriptRand{rest: 0.99},
		Driver:       cs,
		Collision:    enemySlayer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	le.InitializeScene()
	le.StartGame()

	select {
	case o := <-le.Outcomes():
		if o.Kind != OutcomeAdvance {
			t.Errorf("Outcome = %s, want advance", o)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Level did not end")
	}

	select {
	case <-cs.Done():
	case <-time.After(time.Second):
		t.Fatal("Scheduler did not stop")
	}
	if cs.TickCount() != 3 {
		t.Errorf("Scheduler ran %d ticks, want 3", cs.TickCount())
	}
}

// TestStatusPublishesIFrameAndShield verifies the per-tick player and boss metrics
func TestStatusPublishesIFrameAndShield(t *testing.T) {
	reg := status.NewRegistry()
	le, _, _, _ := newTestEngine(quietConfig(), Deps{Status: reg})
	iframe := reg.Floats.Get("player.iframe")
	shield := reg.Bools.Get("boss.shield")

	boss := actor.NewBoss(&scriptRand{rest: 0.99})
	boss.Boss.ShieldActive = true
	addEntity(le, GroupEnemy, boss)
	addEntity(le, GroupEnemy, actor.NewEnemy(50, 290))

	le.Tick()
	if got := iframe.Get(); got <= 0 || got != le.Player().Player.IFrame {
		t.Errorf("player.iframe = %f, player has %f", got, le.Player().Player.IFrame)
	}
	if !shield.Load() {
		t.Error("boss.shield not published while the shield is up")
	}

	le.RunSafe(func() { boss.Boss.ShieldActive = false })
	le.Tick()
	if shield.Load() {
		t.Error("boss.shield still set after the shield dropped")
	}
}
