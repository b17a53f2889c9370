package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noise feeds WaveNoise, effects render on the mixer goroutine
var noise = vmath.NewLockedRand(uint64(time.Now().UnixNano()))

// SeedNoise makes noise-based effects reproducible
func SeedNoise(seed uint64) {
	noise.Seed(seed)
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample evaluates one wave shape at a phase in [0, 1)
func waveSample(w WaveType, phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return noise.Float64()*2 - 1
	}
	return 0
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// effectVolume combines the per-effect and master volumes
func effectVolume(cfg *AudioConfig, st core.SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// Sound effect generators

// CreateShootSound generates a short laser blip for player fire
func CreateShootSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewOscillator(1318.51, constants.ShootSoundDuration, WaveSquare, rate)
	toneShaped := NewEnvelope(tone, constants.ShootSoundDuration, constants.ShootSoundAttack, constants.ShootSoundRelease, rate)

	hiss := NewOscillator(0, constants.ShootSoundDuration, WaveNoise, rate)
	hissShaped := NewEnvelope(hiss, constants.ShootSoundDuration, constants.ShootSoundAttack, constants.ShootSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.6),
		newVolume(hissShaped, 0.2),
	)
	return newVolume(mixed, effectVolume(cfg, core.SoundShoot))
}

// CreateDamageSound generates a low crunch for the player taking a hit
func CreateDamageSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(110.0, constants.DamageSoundDuration, WaveSaw, rate)
	bodyShaped := NewEnvelope(body, constants.DamageSoundDuration, constants.DamageSoundAttack, constants.DamageSoundRelease, rate)

	noise := NewOscillator(0, constants.DamageSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.DamageSoundDuration, constants.DamageSoundAttack, constants.DamageSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.6),
		newVolume(noiseShaped, 0.4),
	)
	return newVolume(mixed, effectVolume(cfg, core.SoundDamageTaken))
}

// laughNotes descend from A4, one "ha" each
var laughNotes = [constants.LaughNoteCount]float64{440.0, 392.0, 349.23, 329.63}

// CreateLaughSound generates the boss laugh as a descending run of saw notes
func CreateLaughSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(laughNotes))
	for _, f := range laughNotes {
		osc := NewOscillator(f, constants.LaughNoteDuration, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, constants.LaughNoteDuration, constants.LaughSoundAttack, constants.LaughSoundRelease, rate))
	}

	return newVolume(beep.Seq(notes...), effectVolume(cfg, core.SoundBossLaugh))
}

// CreateClickSound generates a short UI tick
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(2000.0, constants.ClickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, core.SoundClick))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundShoot:
		return CreateShootSound(cfg)
	case core.SoundDamageTaken:
		return CreateDamageSound(cfg)
	case core.SoundBossLaugh:
		return CreateLaughSound(cfg)
	case core.SoundClick:
		return CreateClickSound(cfg)
	default:
		return nil
	}
}
