package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/input"
)

// keyBindings mirrors the terminal key table for ebiten key codes
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:    {ebiten.KeySpace, ebiten.KeyK},
	core.ActionPause:   {ebiten.KeyEscape, ebiten.KeyP},
	core.ActionMute:    {ebiten.KeyM},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionQuit:    {ebiten.KeyQ},
}

// pollKeys copies held keys into the pressed set and returns one-shot actions pressed this frame
// ebiten reports key-up, so held actions use Hold instead of the terminal hold window
func pollKeys(pressed *input.PressedSet, shots []core.Action) []core.Action {
	shots = shots[:0]
	for a := core.ActionUp; a < core.ActionCount; a++ {
		keys := keyBindings[a]
		if a.Held() {
			down := false
			for _, k := range keys {
				if ebiten.IsKeyPressed(k) {
					down = true
					break
				}
			}
			pressed.Hold(a, down)
			continue
		}
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				shots = append(shots, a)
				break
			}
		}
	}
	return shots
}
