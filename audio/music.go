package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
)

// stepsPerBeat subdivides a beat into sixteenth-note steps
const stepsPerBeat = 4

// noteTrigger fires a lead note on a step, offset in semitones from the pattern root
type noteTrigger struct {
	Step     int
	Offset   int
	Velocity float64
	Duration int // Steps
}

// musicPattern is one looping bar: a lead line over a bass root and a kick
type musicPattern struct {
	Root  int // MIDI note
	Steps int
	Beat  time.Duration
	Wave  WaveType
	Lead  []noteTrigger
	Kick  []int
}

// musicPatterns maps each track to its loop
var musicPatterns = map[core.MusicTrack]*musicPattern{
	core.MusicLevel1: {
		Root: 57, Steps: 16, Beat: constants.MusicBeatInterval, Wave: WaveSquare,
		Lead: []noteTrigger{
			{Step: 0, Offset: 12, Velocity: 0.8, Duration: 2},
			{Step: 4, Offset: 16, Velocity: 0.7, Duration: 2},
			{Step: 8, Offset: 19, Velocity: 0.7, Duration: 2},
			{Step: 12, Offset: 24, Velocity: 0.6, Duration: 2},
		},
		Kick: []int{0, 8},
	},
	core.MusicLevel2: {
		Root: 55, Steps: 16, Beat: constants.MusicBeatInterval, Wave: WaveSquare,
		Lead: []noteTrigger{
			{Step: 0, Offset: 24, Velocity: 0.8, Duration: 2},
			{Step: 4, Offset: 19, Velocity: 0.7, Duration: 2},
			{Step: 8, Offset: 15, Velocity: 0.7, Duration: 2},
			{Step: 12, Offset: 12, Velocity: 0.6, Duration: 2},
		},
		Kick: []int{0, 4, 8, 12},
	},
	core.MusicLevel3: {
		Root: 52, Steps: 16, Beat: constants.MusicBeatInterval, Wave: WaveSaw,
		Lead: []noteTrigger{
			{Step: 0, Offset: 12, Velocity: 0.8, Duration: 1},
			{Step: 2, Offset: 15, Velocity: 0.6, Duration: 1},
			{Step: 4, Offset: 19, Velocity: 0.7, Duration: 1},
			{Step: 6, Offset: 15, Velocity: 0.6, Duration: 1},
			{Step: 8, Offset: 22, Velocity: 0.8, Duration: 2},
			{Step: 12, Offset: 19, Velocity: 0.6, Duration: 2},
		},
		Kick: []int{0, 4, 8, 12},
	},
	core.MusicBoss: {
		Root: 45, Steps: 16, Beat: constants.BossMusicBeatInterval, Wave: WaveSaw,
		Lead: []noteTrigger{
			{Step: 0, Offset: 12, Velocity: 0.9, Duration: 1},
			{Step: 1, Offset: 13, Velocity: 0.7, Duration: 1},
			{Step: 4, Offset: 12, Velocity: 0.9, Duration: 1},
			{Step: 5, Offset: 18, Velocity: 0.7, Duration: 1},
			{Step: 8, Offset: 12, Velocity: 0.9, Duration: 1},
			{Step: 9, Offset: 13, Velocity: 0.7, Duration: 1},
			{Step: 12, Offset: 15, Velocity: 0.8, Duration: 2},
		},
		Kick: []int{0, 2, 4, 6, 8, 10, 12, 14},
	},
	core.MusicMenu: {
		Root: 60, Steps: 16, Beat: constants.MusicBeatInterval, Wave: WaveSine,
		Lead: []noteTrigger{
			{Step: 0, Offset: 0, Velocity: 0.7, Duration: 4},
			{Step: 4, Offset: 4, Velocity: 0.6, Duration: 4},
			{Step: 8, Offset: 7, Velocity: 0.6, Duration: 4},
			{Step: 12, Offset: 4, Velocity: 0.5, Duration: 4},
		},
	},
}

// activeNote is the lead note sounding on a step
type activeNote struct {
	freq     float64
	velocity float64
	start    int // Step the note started on
	length   int // Steps
}

// MusicStreamer loops a pattern forever
// Steps are precomputed so Stream does no lookups
type MusicStreamer struct {
	sr             beep.SampleRate
	samplesPerStep int
	steps          int
	wave           WaveType
	bassFreq       float64
	lead           []activeNote // Indexed by step, freq 0 when silent
	kick           []bool

	pos       int
	leadPhase float64
	bassPhase float64
}

// NewMusicStreamer builds the looping streamer for a track, nil for tracks without a pattern
func NewMusicStreamer(track core.MusicTrack, sr beep.SampleRate) *MusicStreamer {
	p, ok := musicPatterns[track]
	if !ok {
		return nil
	}

	m := &MusicStreamer{
		sr:             sr,
		samplesPerStep: sr.N(p.Beat / stepsPerBeat),
		steps:          p.Steps,
		wave:           p.Wave,
		bassFreq:       NoteFreq(p.Root - 12),
		lead:           make([]activeNote, p.Steps),
		kick:           make([]bool, p.Steps),
	}
	if m.samplesPerStep < 1 {
		m.samplesPerStep = 1
	}

	for _, n := range p.Lead {
		note := activeNote{
			freq:     NoteFreq(p.Root + n.Offset),
			velocity: n.Velocity,
			start:    n.Step,
			length:   n.Duration,
		}
		for s := n.Step; s < n.Step+n.Duration && s < p.Steps; s++ {
			m.lead[s] = note
		}
	}
	for _, s := range p.Kick {
		if s >= 0 && s < p.Steps {
			m.kick[s] = true
		}
	}
	return m
}

// Stream implements beep.Streamer, it never drains
func (m *MusicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (m.pos / m.samplesPerStep) % m.steps
		inStep := m.pos % m.samplesPerStep
		stepT := float64(inStep) / float64(m.sr)

		sample := 0.0

		// Lead with a per-note exponential decay
		if note := m.lead[step]; note.freq > 0 {
			noteT := float64((step-note.start)*m.samplesPerStep+inStep) / float64(m.sr)
			env := math.Exp(-noteT * 6)
			sample += 0.25 * note.velocity * env * waveSample(m.wave, m.leadPhase)
			m.leadPhase += note.freq / float64(m.sr)
			m.leadPhase -= math.Floor(m.leadPhase)
		}

		// Sustained bass
		sample += 0.12 * math.Sin(2*math.Pi*m.bassPhase)
		m.bassPhase += m.bassFreq / float64(m.sr)
		m.bassPhase -= math.Floor(m.bassPhase)

		// Kick, pitch drops over the first 100ms of the step
		if m.kick[step] && stepT < 0.1 {
			kickEnv := 1.0 - stepT/0.1
			kickFreq := 60 * (1 + 2*kickEnv)
			sample += 0.35 * kickEnv * math.Sin(2*math.Pi*kickFreq*stepT)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		m.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (m *MusicStreamer) Err() error {
	return nil
}

// LoopSamples returns the length of one bar in samples
func (m *MusicStreamer) LoopSamples() int {
	return m.samplesPerStep * m.steps
}
