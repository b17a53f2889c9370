package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sky-fighter/core"
)

// KeyTable maps terminal keys to logical actions
type KeyTable struct {
	// Special keys (arrows, Esc, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]core.Action

	// Rune bindings, stored lower-case and matched case-insensitively
	Runes map[rune]core.Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Action{
			tcell.KeyUp:     core.ActionUp,
			tcell.KeyDown:   core.ActionDown,
			tcell.KeyLeft:   core.ActionLeft,
			tcell.KeyRight:  core.ActionRight,
			tcell.KeyEscape: core.ActionPause,
			tcell.KeyEnter:  core.ActionConfirm,
			tcell.KeyCtrlC:  core.ActionQuit,
		},
		Runes: map[rune]core.Action{
			'w': core.ActionUp,
			's': core.ActionDown,
			'a': core.ActionLeft,
			'd': core.ActionRight,
			' ': core.ActionFire,
			'k': core.ActionFire,
			'p': core.ActionPause,
			'm': core.ActionMute,
			'q': core.ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action, ActionNone when unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) core.Action {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[unicode.ToLower(ev.Rune())]
	}
	return t.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy of the table
func (t *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]core.Action, len(t.SpecialKeys)),
		Runes:       make(map[rune]core.Action, len(t.Runes)),
	}
	for k, v := range t.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range t.Runes {
		c.Runes[r] = v
	}
	return c
}
