package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/engine"
	"github.com/lixenwraith/sky-fighter/level"
	"github.com/lixenwraith/sky-fighter/status"
)

// ErrNotStarted is returned by operations that need a running level
var ErrNotStarted = errors.New("no level running")

// Presentation is the scene the controller hands to every level
// Reset clears the previous level's leftovers before the next one attaches
type Presentation interface {
	engine.Presentation
	Reset()
}

// Input is the pressed set shared across levels
type Input interface {
	engine.Input
	Clear()
}

// Muter is implemented by audio backends with a mute toggle
type Muter interface {
	ToggleMute() bool
}

// Options are the collaborators shared by every level the controller builds
type Options struct {
	Levels       *level.Registry
	Presentation Presentation
	Audio        engine.AudioService
	Input        Input
	// NewDriver returns a fresh driver per level, a stopped driver is never reused
	NewDriver func() engine.Driver
	// NewRand and NewCollision are called once per level so no two level
	// instances share generator state or detector scratch buffers; nil uses engine defaults
	NewRand      func() actor.Rand
	NewCollision func(cfg engine.LevelConfig) engine.CollisionDetector
	Status       *status.Registry
	// OnLevel is called after a level is built and before it starts
	OnLevel func(le *engine.LevelEngine)
}

// Controller runs the level sequence: it consumes each level's outcome,
// builds the next level from the registry and restarts after game over
type Controller struct {
	opts  Options
	first string

	mu       sync.Mutex
	current  *engine.LevelEngine
	driver   engine.Driver
	gameOver bool
	result   engine.Result

	// switchMu serializes level replacement between the watcher and input
	switchMu sync.Mutex

	swapped  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool

	statStarted *atomic.Int64
	statState   *status.AtomicString
}

// NewController creates a controller, nil drivers default to StepDriver
func NewController(opts Options) *Controller {
	if opts.NewDriver == nil {
		opts.NewDriver = func() engine.Driver { return engine.NewStepDriver() }
	}
	c := &Controller{
		opts:    opts,
		swapped: make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if opts.Levels != nil {
		c.first = opts.Levels.First()
	}
	if opts.Status != nil {
		c.statStarted = opts.Status.Ints.Get("game.levels_started")
		c.statState = opts.Status.Strings.Get("game.state")
	}
	return c
}

// Name implements service.Service
func (c *Controller) Name() string {
	return "game"
}

// Dependencies implements service.Service
func (c *Controller) Dependencies() []string {
	return []string{"audio"}
}

// Init implements service.Service
// args[0]: string - entry level id, empty keeps the registry's first level
func (c *Controller) Init(args ...any) error {
	if c.opts.Levels == nil || c.opts.Presentation == nil {
		return fmt.Errorf("game: %w: levels and presentation are required", engine.ErrInvalidConfig)
	}
	if len(args) > 0 {
		if id, ok := args[0].(string); ok && id != "" {
			c.first = id
		}
	}
	if !c.opts.Levels.Has(c.first) {
		return fmt.Errorf("game: entry %w: %q", level.ErrUnknownLevel, c.first)
	}
	return nil
}

// Start implements service.Service, builds the entry level and watches outcomes
func (c *Controller) Start() error {
	if err := c.Begin(); err != nil {
		return err
	}
	if c.running.CompareAndSwap(false, true) {
		core.Go(c.watch)
	}
	return nil
}

// Stop implements service.Service
func (c *Controller) Stop() error {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	c.mu.Lock()
	driver := c.driver
	c.mu.Unlock()
	if driver != nil {
		driver.Stop()
	}
	if c.running.Load() {
		<-c.done
	}
	return nil
}

// Begin builds and starts the entry level without the watcher goroutine
// Callers that step levels themselves drain outcomes with Poll
func (c *Controller) Begin() error {
	return c.install(c.first)
}

// install builds id, replaces the current level and starts it
// On error the current level stays in place
func (c *Controller) install(id string) error {
	c.switchMu.Lock()
	defer c.switchMu.Unlock()

	cfg, err := c.opts.Levels.Build(id)
	if err != nil {
		return err
	}

	deps := engine.Deps{
		Presentation: c.opts.Presentation,
		Audio:        c.opts.Audio,
		Input:        c.opts.Input,
		Driver:       c.opts.NewDriver(),
		Status:       c.opts.Status,
	}
	if c.opts.NewRand != nil {
		deps.Rand = c.opts.NewRand()
	}
	if c.opts.NewCollision != nil {
		deps.Collision = c.opts.NewCollision(cfg)
	}
	le, err := engine.NewLevelEngine(cfg, deps)
	if err != nil {
		return err
	}
	driver := deps.Driver

	// The shared scene is only cleared once the new level exists, a failed build
	// leaves the current level's HUD intact; Reset keeps the background just loaded
	c.opts.Presentation.Reset()
	if c.opts.Input != nil {
		c.opts.Input.Clear()
	}
	le.InitializeScene()

	c.mu.Lock()
	old := c.driver
	c.current, c.driver = le, driver
	c.gameOver, c.result = false, engine.ResultNone
	c.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	select {
	case c.swapped <- struct{}{}:
	default:
	}

	if c.opts.OnLevel != nil {
		c.opts.OnLevel(le)
	}
	le.StartGame()

	if c.statStarted != nil {
		c.statStarted.Add(1)
		c.statState.Store("playing")
	}
	log.Printf("game: level %s started", id)
	return nil
}

// watch consumes outcomes of whichever level is current until Stop
func (c *Controller) watch() {
	defer close(c.done)
	for {
		var outcomes <-chan engine.Outcome
		if le := c.Level(); le != nil {
			outcomes = le.Outcomes()
		}

		select {
		case <-c.stop:
			return
		case <-c.swapped:
		case o := <-outcomes:
			c.handleOutcome(o)
		}
	}
}

// Poll handles a pending outcome of the current level without blocking
func (c *Controller) Poll() (engine.Outcome, bool) {
	le := c.Level()
	if le == nil {
		return engine.Continue(), false
	}
	select {
	case o := <-le.Outcomes():
		c.handleOutcome(o)
		return o, true
	default:
		return engine.Continue(), false
	}
}

func (c *Controller) handleOutcome(o engine.Outcome) {
	log.Printf("game: outcome %s", o)

	switch o.Kind {
	case engine.OutcomeAdvance:
		if err := c.install(o.Level); err != nil {
			log.Printf("game: cannot enter level %s: %v", o.Level, err)
			c.opts.Presentation.ShowAlert(fmt.Sprintf("cannot load level %s", o.Level))
			if c.statState != nil {
				c.statState.Store("stalled")
			}
		}
	case engine.OutcomeGameOver:
		c.mu.Lock()
		c.gameOver, c.result = true, o.Result
		c.mu.Unlock()
		if c.statState != nil {
			c.statState.Store("over:" + o.Result.String())
		}
	}
}

// HandleAction applies a one-shot action, returns true when the player quits
func (c *Controller) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return true

	case core.ActionPause:
		if le := c.Level(); le != nil {
			le.PauseGame()
		}

	case core.ActionMute:
		if m, ok := c.opts.Audio.(Muter); ok {
			if m.ToggleMute() {
				c.opts.Presentation.ShowAlert("sound off")
			} else {
				c.opts.Presentation.ShowAlert("sound on")
			}
		}

	case core.ActionConfirm:
		if over, _ := c.GameOver(); over {
			if err := c.Restart(); err != nil {
				log.Printf("game: restart failed: %v", err)
				c.opts.Presentation.ShowAlert("restart failed")
			}
		}
	}
	return false
}

// Restart rebuilds the entry level
func (c *Controller) Restart() error {
	return c.install(c.first)
}

// RunSafe runs fn under the current level's lock, frontends snapshot inside it
func (c *Controller) RunSafe(fn func()) {
	if le := c.Level(); le != nil {
		le.RunSafe(fn)
		return
	}
	fn()
}

// Level returns the current level, nil before Begin
func (c *Controller) Level() *engine.LevelEngine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Driver returns the current level's driver
func (c *Controller) Driver() engine.Driver {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver
}

// Step advances a StepDriver-backed level by one tick
func (c *Controller) Step() error {
	d := c.Driver()
	if d == nil {
		return ErrNotStarted
	}
	if sd, ok := d.(*engine.StepDriver); ok {
		sd.Step()
	}
	return nil
}

// GameOver reports whether the run ended and how
func (c *Controller) GameOver() (bool, engine.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gameOver, c.result
}

// First returns the entry level id
func (c *Controller) First() string {
	return c.first
}
