package render

import (
	"fmt"

	"github.com/lixenwraith/sky-fighter/engine"
)

// Background is a resolved backdrop asset
// Frontends paint the sky color and scatter the star glyph at a fixed density
type Background struct {
	ID      string
	R, G, B uint8
	Star    rune
	// StarEvery is the cell stride between stars, 0 disables them
	StarEvery int
}

// backgrounds is the static asset table keyed by level background id
var backgrounds = map[string]Background{
	"level1alt": {ID: "level1alt", R: 24, G: 48, B: 96, Star: '·', StarEvery: 0},
	"level2alt": {ID: "level2alt", R: 72, G: 36, B: 64, Star: '·', StarEvery: 37},
	"level3alt": {ID: "level3alt", R: 10, G: 10, B: 28, Star: '.', StarEvery: 23},
	"level4alt": {ID: "level4alt", R: 48, G: 8, B: 12, Star: '*', StarEvery: 29},
}

// LookupBackground resolves a background id, unknown ids wrap engine.ErrUnknownAsset
func LookupBackground(id string) (Background, error) {
	bg, ok := backgrounds[id]
	if !ok {
		return Background{}, fmt.Errorf("background %q: %w", id, engine.ErrUnknownAsset)
	}
	return bg, nil
}
