package core

// Action is a logical input the engine reads from the pressed set
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionMute
	ActionConfirm
	ActionQuit
	ActionCount
)

var actionNames = [ActionCount]string{"none", "up", "down", "left", "right", "fire", "pause", "mute", "confirm", "quit"}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Held reports actions that are sampled every tick rather than handled once per press
func (a Action) Held() bool {
	return a >= ActionUp && a <= ActionFire
}
