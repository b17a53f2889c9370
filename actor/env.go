package actor

// Rand is the random source entities draw from
// vmath.FastRand satisfies it; tests substitute scripted sources
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// EffectPlayer plays fire-and-forget sound cues
type EffectPlayer interface {
	PlayEffect(name string)
}

// Env carries the collaborators entity behaviour needs during a tick
type Env struct {
	Rand  Rand
	Audio EffectPlayer
}

func (e *Env) play(name string) {
	if e != nil && e.Audio != nil {
		e.Audio.PlayEffect(name)
	}
}
