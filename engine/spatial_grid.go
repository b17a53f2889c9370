package engine

import (
	"math"
	"sort"

	"github.com/lixenwraith/sky-fighter/actor"
)

// MaxEntitiesPerCell is set to 15 so the Cell struct fits exactly into 64 bytes
// (one cache line) with int32 slots
// 15 * 4 (Slots) + 1 (Count) + 3 (Padding) = 64 bytes
const MaxEntitiesPerCell = 15

// DefaultCellSize is the grid pitch in world units, about one enemy plane
const DefaultCellSize = 100.0

// Cell represents a single grid cell holding indices into the indexed group
// It is a value type designed for contiguous memory layout
type Cell struct {
	Count uint8
	_     [3]byte
	Slots [MaxEntitiesPerCell]int32
}

// SpatialGrid is a dense 2D grid for fast spatial queries without allocation
type SpatialGrid struct {
	Width  int
	Height int
	Cells  []Cell // 1D array: index = y*Width + x
}

// NewSpatialGrid creates a new grid with the specified dimensions
func NewSpatialGrid(width, height int) *SpatialGrid {
	return &SpatialGrid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// Add inserts a slot into the grid at (x, y)
// O(1), Returns false if bounds invalid or cell full (soft clip)
func (g *SpatialGrid) Add(slot int32, x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}

	cell := &g.Cells[y*g.Width+x]
	if cell.Count < MaxEntitiesPerCell {
		cell.Slots[cell.Count] = slot
		cell.Count++
		return true
	}
	return false
}

// GetAllAt returns a slice view of slots at (x, y)
// Callers must copy before the next Clear
func (g *SpatialGrid) GetAllAt(x, y int) []int32 {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}

	cell := &g.Cells[y*g.Width+x]
	if cell.Count == 0 {
		return nil
	}
	return cell.Slots[:cell.Count]
}

// Clear removes all slots from all cells
func (g *SpatialGrid) Clear() {
	for i := range g.Cells {
		g.Cells[i].Count = 0
	}
}

// GridDetector indexes group b in a uniform grid and tests a against nearby cells only
// Candidates are resolved in b order so results match BruteForce exactly
type GridDetector struct {
	cellSize float64
	grid     *SpatialGrid

	overflow   []int32
	marks      []uint32
	stamp      uint32
	candidates []int32
}

// NewGridDetector creates a grid covering a width x height playfield
// Entities outside the playfield clamp into the border cells
func NewGridDetector(width, height, cellSize float64) *GridDetector {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &GridDetector{
		cellSize: cellSize,
		grid:     NewSpatialGrid(cols, rows),
	}
}

// cellRange returns the clamped inclusive cell span of an entity
func (d *GridDetector) cellRange(e *actor.Entity) (x0, y0, x1, y1 int) {
	b := e.Bounds()
	x0 = d.clamp(int(math.Floor(b.X/d.cellSize)), d.grid.Width)
	x1 = d.clamp(int(math.Floor(b.MaxX()/d.cellSize)), d.grid.Width)
	y0 = d.clamp(int(math.Floor(b.Y/d.cellSize)), d.grid.Height)
	y1 = d.clamp(int(math.Floor(b.MaxY()/d.cellSize)), d.grid.Height)
	return
}

func (d *GridDetector) clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Resolve implements CollisionDetector
func (d *GridDetector) Resolve(a, b []*actor.Entity, env *actor.Env) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	d.grid.Clear()
	d.overflow = d.overflow[:0]
	if cap(d.marks) < len(b) {
		d.marks = make([]uint32, len(b))
		d.stamp = 0
	}
	d.marks = d.marks[:len(b)]

	for j, e := range b {
		if e.Destroyed() {
			continue
		}
		x0, y0, x1, y1 := d.cellRange(e)
		clipped := false
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				if !d.grid.Add(int32(j), cx, cy) {
					clipped = true
				}
			}
		}
		// A full cell would hide this entity from queries, keep it on the slow path
		if clipped {
			d.overflow = append(d.overflow, int32(j))
		}
	}

	hits := 0
	for _, x := range a {
		if x.Destroyed() {
			continue
		}

		d.stamp++
		if d.stamp == 0 {
			clear(d.marks)
			d.stamp = 1
		}
		d.candidates = d.candidates[:0]

		x0, y0, x1, y1 := d.cellRange(x)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				for _, j := range d.grid.GetAllAt(cx, cy) {
					d.mark(j)
				}
			}
		}
		for _, j := range d.overflow {
			d.mark(j)
		}
		sort.Slice(d.candidates, func(i, k int) bool { return d.candidates[i] < d.candidates[k] })

		xb := x.Bounds()
		for _, j := range d.candidates {
			y := b[j]
			if y.Destroyed() || !xb.Intersects(y.Bounds()) {
				continue
			}
			x.TakeDamage(env)
			y.TakeDamage(env)
			hits++
			if x.Destroyed() {
				break
			}
		}
	}
	return hits
}

func (d *GridDetector) mark(j int32) {
	if d.marks[j] == d.stamp {
		return
	}
	d.marks[j] = d.stamp
	d.candidates = append(d.candidates, j)
}
