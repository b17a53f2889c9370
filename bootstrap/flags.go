package bootstrap

import (
	"flag"
)

// Options are the command-line settings shared by both frontends
type Options struct {
	Debug     bool
	Levels    string
	Keys      string
	Seed      uint64
	Mute      bool
	Level     string
	Profile   string
	Collision string
}

// RegisterFlags binds Options to fs
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.BoolVar(&o.Debug, "debug", false, "Write a debug log to logs/")
	fs.StringVar(&o.Levels, "levels", "", "Level definition file (default ./levels.yaml, then built-in)")
	fs.StringVar(&o.Keys, "keys", "", "Keymap override file (terminal frontend)")
	fs.Uint64Var(&o.Seed, "seed", 0, "Random seed, 0 seeds from the clock")
	fs.BoolVar(&o.Mute, "mute", false, "Start with audio muted")
	fs.StringVar(&o.Level, "level", "", "Entry level id (default: first level)")
	fs.StringVar(&o.Profile, "profile", "", "Profile mode: cpu, mem")
	fs.StringVar(&o.Collision, "collision", "grid", "Collision detector: grid, brute")
	return o
}
