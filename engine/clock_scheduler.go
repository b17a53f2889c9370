package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/status"
)

// ClockScheduler drives the level tick on its own goroutine
// Deadlines are kept in pausable game time so a pause neither skips nor replays ticks
type ClockScheduler struct {
	pausableClock *PausableClock
	isPaused      atomic.Bool

	// Tick configuration
	tickInterval     time.Duration
	lastGameTickTime time.Time // Last tick in game time
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	mu        sync.RWMutex
	step      func()

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wakeChan chan struct{}
	done     chan struct{}
	running  atomic.Bool

	// Cached metric pointer, nil without a registry
	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler with the specified tick interval
// statusReg may be nil
func NewClockScheduler(pausableClock *PausableClock, tickInterval time.Duration, statusReg *status.Registry) *ClockScheduler {
	cs := &ClockScheduler{
		pausableClock: pausableClock,
		tickInterval:  tickInterval,
		stopChan:      make(chan struct{}),
		wakeChan:      make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
	if statusReg != nil {
		cs.statTicks = statusReg.Ints.Get("engine.ticks")
	}
	return cs
}

// Start implements Driver, begins the scheduler loop
func (cs *ClockScheduler) Start(step func()) {
	if cs.running.CompareAndSwap(false, true) {
		cs.mu.Lock()
		cs.step = step
		cs.mu.Unlock()
		core.Go(cs.schedulerLoop)
	}
}

// Pause implements Driver
func (cs *ClockScheduler) Pause() {
	if cs.isPaused.CompareAndSwap(false, true) {
		cs.pausableClock.Pause()
	}
}

// Resume implements Driver
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.pausableClock.Resume()
		select {
		case cs.wakeChan <- struct{}{}:
		default:
		}
	}
}

// Stop implements Driver, halts the loop without waiting
// Safe from inside a tick; use Wait or Done to synchronize with loop exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}

// Done is closed when the loop has exited
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.done
}

// Wait blocks until the loop exits, returns immediately if it never started
// Must not be called from inside a tick
func (cs *ClockScheduler) Wait() {
	if cs.running.Load() {
		<-cs.done
	}
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer close(cs.done)

	cs.mu.Lock()
	cs.lastGameTickTime = cs.pausableClock.Now()
	cs.nextTickDeadline = cs.lastGameTickTime.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Longer sleep while paused, Resume wakes the loop early
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.pausableClock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !gameNow.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.lastGameTickTime = gameNow
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

				// Falling too far behind resynchronizes instead of bursting
				maxBehind := cs.tickInterval * 2
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = deadline.Sub(cs.pausableClock.Now())
				if sleepDuration < 0 {
					sleepDuration = 0
				}
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.wakeChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	if cs.isPaused.Load() {
		return
	}

	cs.mu.RLock()
	step := cs.step
	cs.mu.RUnlock()

	if step != nil {
		step()
	}

	ticks := cs.tickCount.Add(1)
	if cs.statTicks != nil {
		cs.statTicks.Store(int64(ticks))
	}
}
