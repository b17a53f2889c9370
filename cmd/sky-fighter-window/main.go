package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/sky-fighter/audio"
	"github.com/lixenwraith/sky-fighter/bootstrap"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/game"
	"github.com/lixenwraith/sky-fighter/input"
	"github.com/lixenwraith/sky-fighter/render"
	"github.com/lixenwraith/sky-fighter/status"
	"github.com/lixenwraith/sky-fighter/window"
)

func main() {
	opts := bootstrap.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := bootstrap.SetupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "sky-fighter-window: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *bootstrap.Options) error {
	stopProfile, err := bootstrap.StartProfile(opts.Profile)
	if err != nil {
		return err
	}
	defer stopProfile()

	levels, err := bootstrap.LoadLevels(opts.Levels)
	if err != nil {
		return err
	}
	newCollision, err := bootstrap.CollisionFactory(opts.Collision)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	statusReg := status.NewRegistry()
	state := render.NewState(nil)
	pressed := input.NewPressedSet(nil, 0)
	sound := audio.NewService(statusReg)

	// Levels use the default StepDriver, ebiten Update steps them at the tick rate
	ctrl := game.NewController(game.Options{
		Levels:       levels,
		Presentation: state,
		Audio:        sound,
		Input:        pressed,
		NewRand:      bootstrap.RandSource(opts.Seed),
		NewCollision: newCollision,
		Status:       statusReg,
	})

	hub, err := bootstrap.NewHub(opts, sound, ctrl)
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	return window.Run(window.NewGame(ctrl, state, pressed))
}
