package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/sky-fighter/actor"
	"github.com/lixenwraith/sky-fighter/audio"
	"github.com/lixenwraith/sky-fighter/engine"
	"github.com/lixenwraith/sky-fighter/game"
	"github.com/lixenwraith/sky-fighter/level"
	"github.com/lixenwraith/sky-fighter/service"
	"github.com/lixenwraith/sky-fighter/vmath"
	"github.com/pkg/profile"
)

// ErrUnknownOption is returned for flag values outside their documented set
var ErrUnknownOption = errors.New("unknown option")

// LoadLevels resolves the level file by priority and builds the registry
func LoadLevels(path string) (*level.Registry, error) {
	catalog, err := level.LoadAuto(path)
	if err != nil {
		return nil, err
	}
	return level.FromCatalog(catalog)
}

// CollisionFactory selects the collision detector by name
// The grid variant is sized to each level's playfield
func CollisionFactory(name string) (func(engine.LevelConfig) engine.CollisionDetector, error) {
	switch name {
	case "", "grid":
		return func(cfg engine.LevelConfig) engine.CollisionDetector {
			return engine.NewGridDetector(cfg.ScreenWidth, cfg.ScreenHeight, engine.DefaultCellSize)
		}, nil
	case "brute":
		return func(engine.LevelConfig) engine.CollisionDetector {
			return engine.BruteForce{}
		}, nil
	}
	return nil, fmt.Errorf("collision %q: %w", name, ErrUnknownOption)
}

// RandSource returns a per-level generator factory, seed 0 seeds from the clock
// Level seeds are drawn from one master stream so a run replays from its seed;
// the audio noise generator is seeded from the same value
// The factory is not safe for concurrent use, the controller calls it under its switch lock
func RandSource(seed uint64) func() actor.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("rand seed %d", seed)
	audio.SeedNoise(seed)

	master := vmath.NewFastRand(seed)
	return func() actor.Rand {
		return vmath.NewFastRand(master.Next())
	}
}

// StartProfile starts the requested profiler, the returned stop is never nil
func StartProfile(mode string) (func(), error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		return func() {}, fmt.Errorf("profile %q: %w", mode, ErrUnknownOption)
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop, nil
}

// NewHub registers the audio service and the controller and runs Init on both
func NewHub(opts *Options, sound *audio.AudioService, ctrl *game.Controller) (*service.Hub, error) {
	hub := service.NewHub()
	for _, svc := range []service.Service{sound, ctrl} {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}
	err := hub.InitAll(map[string][]any{
		sound.Name(): {opts.Mute},
		ctrl.Name():  {opts.Level},
	})
	if err != nil {
		return nil, err
	}
	return hub, nil
}
