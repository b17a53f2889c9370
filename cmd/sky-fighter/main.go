package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sky-fighter/audio"
	"github.com/lixenwraith/sky-fighter/bootstrap"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/engine"
	"github.com/lixenwraith/sky-fighter/game"
	"github.com/lixenwraith/sky-fighter/input"
	"github.com/lixenwraith/sky-fighter/render"
	"github.com/lixenwraith/sky-fighter/status"
)

func main() {
	opts := bootstrap.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := bootstrap.SetupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "sky-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *bootstrap.Options) error {
	stopProfile, err := bootstrap.StartProfile(opts.Profile)
	if err != nil {
		return err
	}
	defer stopProfile()

	// Configuration errors fail before the terminal is touched
	levels, err := bootstrap.LoadLevels(opts.Levels)
	if err != nil {
		return err
	}
	newCollision, err := bootstrap.CollisionFactory(opts.Collision)
	if err != nil {
		return err
	}
	keys := input.DefaultKeyTable()
	if opts.Keys != "" {
		if keys, err = input.LoadKeyConfigFile(opts.Keys); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	// Panics anywhere restore the terminal before the stack trace is printed
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	statusReg := status.NewRegistry()
	state := render.NewState(nil)
	renderer := render.NewTerminalRenderer(screen, statusReg)
	pressed := input.NewPressedSet(nil, constants.KeyHoldWindow)
	router := input.NewRouter(keys, pressed)
	sound := audio.NewService(statusReg)

	ctrl := game.NewController(game.Options{
		Levels:       levels,
		Presentation: state,
		Audio:        sound,
		Input:        pressed,
		NewDriver: func() engine.Driver {
			return engine.NewClockScheduler(engine.NewPausableClock(), constants.GameUpdateInterval, statusReg)
		},
		NewRand:      bootstrap.RandSource(opts.Seed),
		NewCollision: newCollision,
		Status:       statusReg,
		OnLevel: func(le *engine.LevelEngine) {
			cfg := le.Config()
			renderer.SetWorldSize(cfg.ScreenWidth, cfg.ScreenHeight)
		},
	})

	hub, err := bootstrap.NewHub(opts, sound, ctrl)
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ctrl.HandleAction(router.HandleKey(ev)) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			var f render.Frame
			ctrl.RunSafe(func() {
				f = state.Snapshot()
			})
			renderer.RenderFrame(f)
		}
	}
}
