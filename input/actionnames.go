package input

import (
	"strings"

	"github.com/lixenwraith/sky-fighter/core"
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve YAML action strings; "none" unbinds
var actionRegistry map[string]core.Action

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]core.Action {
	m := make(map[string]core.Action, core.ActionCount)
	for a := core.ActionNone; a < core.ActionCount; a++ {
		m[a.String()] = a
	}
	return m
}

// ParseAction resolves an action name, case-insensitive
func ParseAction(name string) (core.Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
