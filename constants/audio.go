package constants

import "time"

// Sound effect names used by the engine
const (
	SoundShoot       = "shoot"
	SoundDamageTaken = "damage_taken"
	SoundBossLaugh   = "boss_laughter"
	SoundClick       = "button_click"
)

// Shoot Sound Timing
const (
	ShootSoundDuration = 90 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 60 * time.Millisecond
)

// Damage Sound Timing
const (
	DamageSoundDuration = 220 * time.Millisecond
	DamageSoundAttack   = 5 * time.Millisecond
	DamageSoundRelease  = 150 * time.Millisecond
)

// Laugh Sound Timing
const (
	LaughNoteDuration = 140 * time.Millisecond
	LaughNoteCount    = 4
	LaughSoundAttack  = 10 * time.Millisecond
	LaughSoundRelease = 80 * time.Millisecond
)

// Click Sound Timing
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundAttack   = 1 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
)

// Music
const (
	// MusicBeatInterval is the length of one beat of the synthesized level loops
	MusicBeatInterval = 400 * time.Millisecond
	// BossMusicBeatInterval drives the faster boss loop
	BossMusicBeatInterval = 280 * time.Millisecond
)
