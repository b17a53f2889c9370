package render

import (
	"math"

	"github.com/lixenwraith/sky-fighter/core"
)

// Viewport maps world units onto a rectangle of terminal cells
type Viewport struct {
	X, Y          int
	Width, Height int
	WorldW        float64
	WorldH        float64
}

// CellRect returns the inclusive cell span covered by a world rectangle, clipped to the viewport
// Any visible entity covers at least one cell; ok is false when nothing is visible
func (v Viewport) CellRect(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	if v.Width <= 0 || v.Height <= 0 || v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0, 0, 0, false
	}
	sx := float64(v.Width) / v.WorldW
	sy := float64(v.Height) / v.WorldH

	x0 = int(math.Floor(r.X * sx))
	y0 = int(math.Floor(r.Y * sy))
	x1 = int(math.Ceil(r.MaxX()*sx)) - 1
	y1 = int(math.Ceil(r.MaxY()*sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	if x1 < 0 || y1 < 0 || x0 >= v.Width || y0 >= v.Height {
		return 0, 0, 0, 0, false
	}
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, v.Width-1)
	y1 = min(y1, v.Height-1)

	return v.X + x0, v.Y + y0, v.X + x1, v.Y + y1, true
}

// Contains reports whether a screen cell lies inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Width && y >= v.Y && y < v.Y+v.Height
}
