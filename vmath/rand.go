package vmath

import "sync"

// FastRand is a seedable xorshift64 generator
// Not safe for concurrent use, the engine draws from it under its own lock
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, a zero seed is replaced by 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Shuffle permutes n elements with Fisher-Yates
func (r *FastRand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// LockedRand wraps FastRand for callers outside the engine lock
// The audio mixer goroutine draws noise samples from one
type LockedRand struct {
	mu sync.Mutex
	r  FastRand
}

// NewLockedRand creates a mutex-guarded generator
func NewLockedRand(seed uint64) *LockedRand {
	lr := &LockedRand{}
	lr.r.Seed(seed)
	return lr
}

// Float64 returns a uniform value in [0, 1)
func (lr *LockedRand) Float64() float64 {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Float64()
}

// Seed resets the generator state
func (lr *LockedRand) Seed(seed uint64) {
	lr.mu.Lock()
	lr.r.Seed(seed)
	lr.mu.Unlock()
}
