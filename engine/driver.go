package engine

import (
	"sync"
	"sync/atomic"
)

// Driver invokes the level tick at a fixed logical interval
// Stop must be safe to call from inside step
type Driver interface {
	Start(step func())
	Pause()
	Resume()
	Stop()
}

// StepDriver is advanced externally, one Step per logical tick
// Used by the window frontend (ebiten Update at 20 TPS) and tests
type StepDriver struct {
	mu      sync.Mutex
	step    func()
	running atomic.Bool
	paused  atomic.Bool
	stopped atomic.Bool
	steps   atomic.Uint64
}

// NewStepDriver creates an idle step driver
func NewStepDriver() *StepDriver {
	return &StepDriver{}
}

// Start implements Driver
func (d *StepDriver) Start(step func()) {
	d.mu.Lock()
	d.step = step
	d.mu.Unlock()
	if !d.stopped.Load() {
		d.running.Store(true)
	}
}

// Pause implements Driver
func (d *StepDriver) Pause() { d.paused.Store(true) }

// Resume implements Driver
func (d *StepDriver) Resume() { d.paused.Store(false) }

// Stop implements Driver, a stopped driver never steps again
func (d *StepDriver) Stop() {
	d.stopped.Store(true)
	d.running.Store(false)
}

// Step runs one tick, returns false when idle, paused or stopped
func (d *StepDriver) Step() bool {
	if !d.running.Load() || d.paused.Load() || d.stopped.Load() {
		return false
	}
	d.mu.Lock()
	step := d.step
	d.mu.Unlock()
	if step == nil {
		return false
	}
	step()
	d.steps.Add(1)
	return true
}

// Steps returns how many ticks have run
func (d *StepDriver) Steps() uint64 {
	return d.steps.Load()
}

// Stopped reports whether Stop was called
func (d *StepDriver) Stopped() bool {
	return d.stopped.Load()
}
