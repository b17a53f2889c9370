package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/core"
	"github.com/lixenwraith/sky-fighter/game"
	"github.com/lixenwraith/sky-fighter/input"
	"github.com/lixenwraith/sky-fighter/render"
)

// Game adapts a controller to ebiten.Game
// Update runs at the logical tick rate, so each Update is exactly one level tick
type Game struct {
	ctrl    *game.Controller
	state   *render.State
	pressed *input.PressedSet
	shots   []core.Action
}

// NewGame wires a controller whose levels use StepDriver
func NewGame(ctrl *game.Controller, state *render.State, pressed *input.PressedSet) *Game {
	return &Game{
		ctrl:    ctrl,
		state:   state,
		pressed: pressed,
		shots:   make([]core.Action, 0, 4),
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	g.shots = pollKeys(g.pressed, g.shots)
	for _, a := range g.shots {
		if g.ctrl.HandleAction(a) {
			return ebiten.Termination
		}
	}

	if err := g.ctrl.Step(); err != nil {
		return err
	}
	g.ctrl.Poll()
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	var f render.Frame
	g.ctrl.RunSafe(func() {
		f = g.state.Snapshot()
	})
	drawFrame(screen, f)
}

// Layout implements ebiten.Game, the logical screen is the world
func (g *Game) Layout(_, _ int) (int, int) {
	return int(constants.ScreenWidth), int(constants.ScreenHeight)
}

// Run opens the window and blocks until it closes
func Run(g *Game) error {
	scale := constants.WindowScale
	ebiten.SetWindowSize(int(constants.ScreenWidth*scale), int(constants.ScreenHeight*scale))
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetTPS(constants.TicksPerSecond)
	return ebiten.RunGame(g)
}
