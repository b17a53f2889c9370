package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/status"
)

// AudioService wraps SoundManager as a Service and as the engine's audio collaborator
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	disabled atomic.Bool

	statMuted   *atomic.Bool
	statEnabled *atomic.Bool
}

// NewService creates a new audio service, statusReg may be nil
func NewService(statusReg *status.Registry) *AudioService {
	s := &AudioService{}
	if statusReg != nil {
		s.statMuted = statusReg.Bools.Get("audio.muted")
		s.statEnabled = statusReg.Bools.Get("audio.enabled")
	}
	return s
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - initial mute state (true = muted), overrides SKY_FIGHTER_AUDIO_ENABLED
func (s *AudioService) Init(args ...any) error {
	config := LoadAudioConfig()

	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			config.Enabled = false
		}
	}

	s.manager = NewSoundManager(config)
	s.publish()
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.manager == nil || s.disabled.Load() {
		return nil
	}

	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio: disabled, speaker init failed: %v", err)
		s.disabled.Store(true)
	}
	s.publish()
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// PlayEffect implements engine.AudioService, unknown names are ignored
func (s *AudioService) PlayEffect(name string) {
	if s.manager == nil {
		return
	}
	st, ok := core.ParseSoundType(name)
	if !ok {
		log.Printf("audio: unknown effect %q", name)
		return
	}
	s.manager.PlayEffect(st)
}

// PlayMusic implements engine.AudioService
func (s *AudioService) PlayMusic(name string) {
	if s.manager == nil {
		return
	}
	track, ok := core.ParseMusicTrack(name)
	if !ok {
		log.Printf("audio: unknown track %q", name)
		return
	}
	s.manager.PlayMusic(track)
}

// StopMusic implements engine.AudioService
func (s *AudioService) StopMusic() {
	if s.manager != nil {
		s.manager.StopMusic()
	}
}

// ToggleMute flips mute and returns the new state
func (s *AudioService) ToggleMute() bool {
	if s.manager == nil {
		return true
	}
	muted := s.manager.ToggleMute()
	s.publish()
	return muted
}

// IsMuted reports the mute state, an uninitialized service is muted
func (s *AudioService) IsMuted() bool {
	if s.manager == nil {
		return true
	}
	return s.manager.IsMuted()
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the underlying SoundManager, nil before Init
func (s *AudioService) Manager() *SoundManager {
	return s.manager
}

// publish mirrors mute and device state into the status registry
func (s *AudioService) publish() {
	if s.statMuted == nil {
		return
	}
	s.statMuted.Store(s.IsMuted())
	s.statEnabled.Store(s.manager != nil && !s.IsDisabled())
}
