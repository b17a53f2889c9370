package constants

import "time"

// Terminal layout
const (
	// HUDRows is the number of terminal rows reserved above the playfield
	HUDRows = 1
	// StatusRows is the number of terminal rows reserved below the playfield
	StatusRows = 1

	HeartGlyph = '♥'
)

// Banner text
const (
	BannerTextPause = " PAUSED - ESC to resume "
	BannerTextWin   = " YOU WIN - ENTER to play again "
	BannerTextLose  = " GAME OVER - ENTER to retry "
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after an autorepeat event
	// Terminals deliver no key-up, so held keys are inferred from autorepeat
	KeyHoldWindow = 180 * time.Millisecond

	// KeyFirstHoldWindow covers the autorepeat delay between a key going down and its
	// first repeat, typically 250-600 ms, so a held key does not stutter before repeats start
	KeyFirstHoldWindow = 550 * time.Millisecond

	// AlertDuration is how long a transient alert stays on screen
	AlertDuration = 3 * time.Second
)

// Window frontend
const (
	WindowTitle = "sky-fighter"
	WindowScale = 0.75
)
