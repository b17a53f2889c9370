package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
)

const (
	defaultHoldWindow      = constants.KeyHoldWindow
	defaultFirstHoldWindow = constants.KeyFirstHoldWindow
)

// Router translates terminal key events into the pressed set and one-shot actions
type Router struct {
	table   *KeyTable
	pressed *PressedSet
}

// NewRouter creates a router, a nil table uses the defaults
func NewRouter(table *KeyTable, pressed *PressedSet) *Router {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Router{table: table, pressed: pressed}
}

// HandleKey records held actions and returns the one-shot action for the event
// Held actions (movement, fire) and unbound keys return ActionNone
func (r *Router) HandleKey(ev *tcell.EventKey) core.Action {
	a := r.table.Lookup(ev)
	if a == core.ActionNone {
		return core.ActionNone
	}
	if a.Held() {
		r.pressed.Press(a)
		return core.ActionNone
	}
	return a
}

// Pressed returns the set the router feeds
func (r *Router) Pressed() *PressedSet {
	return r.pressed
}
