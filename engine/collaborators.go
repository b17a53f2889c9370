package engine

import (
	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/core"
)

// Banner identifies a full-screen overlay
type Banner uint8

const (
	BannerPause Banner = iota
	BannerWin
	BannerLose
	BannerCount
)

func (b Banner) String() string {
	switch b {
	case BannerPause:
		return "pause"
	case BannerWin:
		return "win"
	case BannerLose:
		return "lose"
	}
	return "unknown"
}

// Scene is the renderable handle returned by InitializeScene
type Scene interface {
	Background() string
	Attached() int
}

// Presentation is the visual surface a level draws into
// Calls arrive under the engine lock; implementations must not call back into the engine
type Presentation interface {
	// LoadBackground resolves a background asset, unknown ids return an error wrapping ErrUnknownAsset
	LoadBackground(id string) error
	Attach(e *actor.Entity)
	Detach(e *actor.Entity)
	SetHearts(n int)
	SetKills(kills, target int)
	ShowBanner(b Banner, visible bool)
	ShowAlert(msg string)
	Scene() Scene
}

// AudioService plays fire-and-forget sound, never blocks the tick
type AudioService interface {
	PlayEffect(name string)
	PlayMusic(name string)
	StopMusic()
}

// Input is the set of currently held actions, updated outside the tick
type Input interface {
	Pressed(a core.Action) bool
}

// NopAudio discards all audio requests
type NopAudio struct{}

func (NopAudio) PlayEffect(string) {}
func (NopAudio) PlayMusic(string)  {}
func (NopAudio) StopMusic()        {}
