package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sky-fighter/core"
)

// SoundManager manages all game audio through one speaker mixer
// Track and mute state are kept without a speaker so callers behave the same headless
type SoundManager struct {
	mu     sync.Mutex
	config *AudioConfig

	mixer  *beep.Mixer
	master *effects.Volume
	music  *beep.Ctrl
	track  core.MusicTrack

	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager, nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	sm.master = &effects.Volume{Streamer: sm.mixer, Base: 2, Silent: sm.muted}
	speaker.Play(sm.master)
	sm.initialized = true

	// A track requested before the speaker came up starts now
	if sm.track != core.MusicNone {
		sm.startMusicLocked(sm.track)
	}
	return nil
}

// Cleanup stops all sounds and releases the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Streamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// Note: beep doesn't need the speaker closed,
	// clearing all streamers ensures no audio artifacts
	speaker.Clear()
	sm.music = nil
	sm.initialized = false
}

// PlayEffect mixes a one-shot effect, returns false when nothing was queued
func (sm *SoundManager) PlayEffect(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// PlayMusic switches the looping background track, the same track is not restarted
func (sm *SoundManager) PlayMusic(track core.MusicTrack) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.track == track && (sm.music != nil || !sm.initialized) {
		return
	}
	sm.track = track

	if !sm.initialized {
		return
	}
	sm.stopMusicLocked()
	sm.startMusicLocked(track)
}

// StopMusic silences the background track
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.track = core.MusicNone
	if sm.initialized {
		sm.stopMusicLocked()
	}
}

func (sm *SoundManager) startMusicLocked(track core.MusicTrack) {
	gen := NewMusicStreamer(track, beep.SampleRate(sm.config.SampleRate))
	if gen == nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(gen, sm.config.MusicVolume*sm.config.MasterVolume)}
	sm.music = ctrl

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// stopMusicLocked detaches the current loop, a Ctrl without a streamer drains from the mixer
func (sm *SoundManager) stopMusicLocked() {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// ToggleMute flips the master mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.master != nil {
		speaker.Lock()
		sm.master.Silent = sm.muted
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted returns the master mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsRunning reports whether the speaker is initialized
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// CurrentTrack returns the requested background track
func (sm *SoundManager) CurrentTrack() core.MusicTrack {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.track
}
