package engine

import (
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/status"
	"github.com/lixenwraith/sky-fighter/vmath"
)

// Deps are the collaborators injected into a level
// Only Presentation is required
type Deps struct {
	Presentation Presentation
	Audio        AudioService
	Input        Input
	Rand         actor.Rand
	Driver       Driver
	Collision    CollisionDetector
	Status       *status.Registry
}

// LevelEngine runs one level instance: the fixed tick pipeline and its progression
type LevelEngine struct {
	mu sync.Mutex

	cfg          LevelConfig
	presentation Presentation
	audio        AudioService
	input        Input
	driver       Driver
	collision    CollisionDetector

	env      actor.Env
	registry *Registry
	spawner  *SpawnController
	progress Progression

	player *actor.Entity
	boss   *actor.Entity

	tick     uint64
	lastShot time.Duration
	hasShot  bool
	started  bool

	outcome  Outcome
	outcomes chan Outcome

	// Cached metric pointers, nil without a registry
	statLive   *atomic.Int64
	statKills  *atomic.Int64
	statPhase  *status.AtomicString
	statLevel  *status.AtomicString
	statReaped *atomic.Int64
	statIFrame *status.AtomicFloat
	statShield *atomic.Bool
}

// NewLevelEngine validates the configuration and resolves the background asset
// Configuration failures are returned and the level is not created
func NewLevelEngine(cfg LevelConfig, deps Deps) (*LevelEngine, error) {
	if deps.Presentation == nil {
		return nil, ErrNoPresentation
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.Presentation.LoadBackground(cfg.Background); err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
	}

	if deps.Audio == nil {
		deps.Audio = NopAudio{}
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Driver == nil {
		deps.Driver = NewStepDriver()
	}
	if deps.Collision == nil {
		deps.Collision = BruteForce{}
	}

	le := &LevelEngine{
		cfg:          cfg,
		presentation: deps.Presentation,
		audio:        deps.Audio,
		input:        deps.Input,
		driver:       deps.Driver,
		collision:    deps.Collision,
		env:          actor.Env{Rand: deps.Rand, Audio: deps.Audio},
		registry:     NewRegistry(deps.Presentation),
		outcomes:     make(chan Outcome, 1),
	}
	le.spawner = NewSpawnController(cfg.Enemies, cfg.Obstacles, SpawnContext{
		Rand:        deps.Rand,
		ScreenWidth: cfg.ScreenWidth,
		MaxY:        cfg.EnemyMaxY(),
	})

	if deps.Status != nil {
		le.statLive = deps.Status.Ints.Get("level.entities")
		le.statKills = deps.Status.Ints.Get("level.kills")
		le.statReaped = deps.Status.Ints.Get("level.reaped")
		le.statPhase = deps.Status.Strings.Get("level.phase")
		le.statLevel = deps.Status.Strings.Get("level.id")
		le.statIFrame = deps.Status.Floats.Get("player.iframe")
		le.statShield = deps.Status.Bools.Get("boss.shield")
		le.statIFrame.Set(0)
		le.statShield.Store(false)
		le.statLevel.Store(cfg.ID)
		le.statPhase.Store(PhaseActive.String())
	}

	return le, nil
}

// InitializeScene creates the player and HUD, starts level music and returns the scene handle
func (le *LevelEngine) InitializeScene() Scene {
	le.mu.Lock()
	defer le.mu.Unlock()

	if le.player == nil {
		le.player = actor.NewPlayer(le.cfg.PlayerHealth)
		le.registry.Add(GroupFriendly, le.player)
	}
	le.presentation.SetHearts(le.player.Health)
	le.presentation.SetKills(0, le.cfg.Win.Target())
	if le.cfg.Music != "" {
		le.audio.PlayMusic(le.cfg.Music)
	}

	log.Printf("level %s: scene initialized", le.cfg.ID)
	return le.presentation.Scene()
}

// StartGame hands the tick to the driver
func (le *LevelEngine) StartGame() {
	le.mu.Lock()
	if le.player == nil || le.started {
		le.mu.Unlock()
		return
	}
	le.started = true
	le.mu.Unlock()

	le.driver.Start(le.step)
}

// step adapts Tick to the driver callback
func (le *LevelEngine) step() {
	le.Tick()
}

// PauseGame toggles between Active and Paused and returns the resulting phase
// Ended levels are left untouched
func (le *LevelEngine) PauseGame() Phase {
	le.mu.Lock()
	defer le.mu.Unlock()

	switch le.progress.Phase() {
	case PhaseActive:
		le.transition(PhasePaused)
		le.driver.Pause()
		le.presentation.ShowBanner(BannerPause, true)
	case PhasePaused:
		le.transition(PhaseActive)
		le.presentation.ShowBanner(BannerPause, false)
		le.driver.Resume()
	}
	return le.progress.Phase()
}

// OnNextLevel cleans up a won level and emits the advance outcome
func (le *LevelEngine) OnNextLevel(levelID string) error {
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.nextLevel(levelID)
}

func (le *LevelEngine) nextLevel(levelID string) error {
	if err := le.progress.Transition(PhaseTransitioning, le.tick); err != nil {
		return err
	}
	le.publishPhase()
	le.driver.Stop()
	le.registry.Clear()
	le.audio.StopMusic()
	le.emit(Advance(le.cfg.ID, levelID))
	return nil
}

// Tick runs one pass of the pipeline:
// Spawn, Update, Fire, Penetration, Collide, Reap, Score, HUD, ProgressionCheck
// Ticks on a paused or ended level are ignored
func (le *LevelEngine) Tick() Outcome {
	le.mu.Lock()
	defer le.mu.Unlock()

	if le.player == nil || le.progress.Phase() != PhaseActive {
		return Continue()
	}

	le.tick++
	now := time.Duration(le.tick) * constants.GameUpdateInterval

	le.spawner.Spawn(le.registry)
	le.trackBoss()
	enemiesBefore := le.registry.CountLive(GroupEnemy)

	le.updateActors()
	le.fireEnemies()
	le.handlePlayerActions(now)
	le.handlePenetration()
	le.resolveCollisions()

	reaped := le.registry.ReapDestroyed()

	le.player.IncrementKills(enemiesBefore - le.registry.CountLive(GroupEnemy))
	le.updateHUD(len(reaped))

	return le.checkProgression()
}

// trackBoss remembers the first boss to enter the enemy group
func (le *LevelEngine) trackBoss() {
	if le.boss != nil {
		return
	}
	for _, e := range le.registry.Group(GroupEnemy) {
		if e.Kind == actor.KindBoss {
			le.boss = e
			return
		}
	}
}

func (le *LevelEngine) updateActors() {
	le.registry.Each(func(_ Group, e *actor.Entity) {
		e.Update(&le.env)
	})
}

func (le *LevelEngine) fireEnemies() {
	// Projectiles are collected first so the enemy slice is not appended to while ranging
	var shots []*actor.Entity
	for _, e := range le.registry.Group(GroupEnemy) {
		if p := e.Fire(&le.env); p != nil {
			shots = append(shots, p)
		}
	}
	for _, p := range shots {
		le.registry.Add(GroupEnemyProjectile, p)
	}
}

// handlePlayerActions samples the pressed set once per tick
func (le *LevelEngine) handlePlayerActions(now time.Duration) {
	if le.input == nil || le.player.Destroyed() {
		return
	}
	p := le.player.Player

	up, down := le.input.Pressed(core.ActionUp), le.input.Pressed(core.ActionDown)
	switch {
	case down:
		p.MoveDown()
	case up:
		p.MoveUp()
	default:
		p.StopY()
	}

	left, right := le.input.Pressed(core.ActionLeft), le.input.Pressed(core.ActionRight)
	switch {
	case right:
		p.MoveRight()
	case left:
		p.MoveLeft()
	default:
		p.StopX()
	}

	if le.input.Pressed(core.ActionFire) && (!le.hasShot || now-le.lastShot > constants.PlayerFireCooldown) {
		le.registry.Add(GroupPlayerProjectile, le.player.Shoot())
		le.audio.PlayEffect(constants.SoundShoot)
		le.lastShot = now
		le.hasShot = true
	}
}

// handlePenetration destroys enemies and obstacles that crossed the playfield
// and culls projectiles that left it
func (le *LevelEngine) handlePenetration() {
	for _, e := range le.registry.Group(GroupEnemy) {
		if e.Destroyed() || math.Abs(e.DX) <= le.cfg.ScreenWidth {
			continue
		}
		le.player.TakeDamage(&le.env)
		e.Destroy()
		le.player.IncrementKills(-1)
	}

	for _, e := range le.registry.Group(GroupObstacle) {
		if !e.Destroyed() && math.Abs(e.DX) > le.cfg.ScreenWidth {
			e.Destroy()
		}
	}

	le.cullProjectiles(GroupPlayerProjectile)
	le.cullProjectiles(GroupEnemyProjectile)
}

func (le *LevelEngine) cullProjectiles(g Group) {
	for _, e := range le.registry.Group(g) {
		if e.Destroyed() {
			continue
		}
		x, _ := e.Position()
		if x+e.W < -e.W || x > le.cfg.ScreenWidth+e.W {
			e.Destroy()
		}
	}
}

func (le *LevelEngine) resolveCollisions() {
	for _, p := range collisionPairings {
		le.collision.Resolve(le.registry.Group(p.a), le.registry.Group(p.b), &le.env)
	}
}

func (le *LevelEngine) updateHUD(reaped int) {
	le.presentation.SetHearts(le.player.Health)
	le.presentation.SetKills(le.player.Player.Kills, le.cfg.Win.Target())

	if le.statLive != nil {
		le.statLive.Store(int64(le.registry.Total()))
		le.statKills.Store(int64(le.player.Player.Kills))
		le.statReaped.Add(int64(reaped))
		le.statIFrame.Set(le.player.Player.IFrame)
		le.statShield.Store(le.boss != nil && !le.boss.Destroyed() && le.boss.Boss.ShieldActive)
	}
}

// checkProgression evaluates win before loss, so a simultaneous win wins
func (le *LevelEngine) checkProgression() Outcome {
	if le.cfg.Win.Met(le) {
		le.transition(PhaseWon)
		log.Printf("level %s: won at tick %d, kills %d", le.cfg.ID, le.tick, le.player.Player.Kills)

		if le.cfg.Next != "" {
			if err := le.nextLevel(le.cfg.Next); err != nil {
				log.Printf("level %s: advance failed: %v", le.cfg.ID, err)
			}
			return le.outcome
		}

		le.finish()
		le.presentation.ShowBanner(BannerWin, true)
		le.emit(GameOver(le.cfg.ID, ResultWon))
		return le.outcome
	}

	if le.player.Destroyed() {
		le.transition(PhaseLost)
		log.Printf("level %s: lost at tick %d", le.cfg.ID, le.tick)

		le.finish()
		le.presentation.ShowBanner(BannerLose, true)
		le.emit(GameOver(le.cfg.ID, ResultLost))
		return le.outcome
	}

	return Continue()
}

// finish stops the driver and music for a terminal phase
func (le *LevelEngine) finish() {
	le.driver.Stop()
	le.audio.StopMusic()
}

// transition applies a phase change that is known to be valid from the caller's state
func (le *LevelEngine) transition(to Phase) {
	if err := le.progress.Transition(to, le.tick); err != nil {
		log.Printf("level %s: %v", le.cfg.ID, err)
		return
	}
	le.publishPhase()
}

func (le *LevelEngine) publishPhase() {
	if le.statPhase != nil {
		le.statPhase.Store(le.progress.Phase().String())
	}
}

// emit records the terminal outcome and delivers it once
func (le *LevelEngine) emit(o Outcome) {
	le.outcome = o
	select {
	case le.outcomes <- o:
	default:
	}
}

// Outcomes delivers the level's single terminal outcome
func (le *LevelEngine) Outcomes() <-chan Outcome {
	return le.outcomes
}

// RunSafe runs fn under the engine lock, frontends draw inside it
func (le *LevelEngine) RunSafe(fn func()) {
	le.mu.Lock()
	defer le.mu.Unlock()
	fn()
}

// Kills implements LevelView, callers outside a tick should hold RunSafe
func (le *LevelEngine) Kills() int {
	if le.player == nil {
		return 0
	}
	return le.player.Player.Kills
}

// Boss implements LevelView
func (le *LevelEngine) Boss() *actor.Entity {
	return le.boss
}

// Player returns the player entity, nil before InitializeScene
func (le *LevelEngine) Player() *actor.Entity {
	return le.player
}

// Registry returns the entity registry, access it under RunSafe
func (le *LevelEngine) Registry() *Registry {
	return le.registry
}

// Phase returns the current progression phase
func (le *LevelEngine) Phase() Phase {
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.progress.Phase()
}

// Config returns the level configuration
func (le *LevelEngine) Config() LevelConfig {
	return le.cfg
}

// TickCount returns the number of processed ticks
func (le *LevelEngine) TickCount() uint64 {
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.tick
}
