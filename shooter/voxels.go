package shooter

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cellKey addresses one terrain cell on the voxel grid.
type cellKey struct {
	cx, cy int
}

// VoxelGrid is the destructible terrain: a set of occupied cells on a
// uniform grid. The map keys are snapped cell indices, so painting the same
// spot twice is a no-op.
type VoxelGrid struct {
	size  float64
	cells map[cellKey]struct{}
}

// NewVoxelGrid creates an empty grid with the given cell size.
func NewVoxelGrid(size float64) *VoxelGrid {
	return &VoxelGrid{size: size, cells: make(map[cellKey]struct{})}
}

func (g *VoxelGrid) snap(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Round(x / g.size)),
		cy: int(math.Round(y / g.size)),
	}
}

// PaintCircle fills every cell whose snapped center lies within radius of
// (x, y).
func (g *VoxelGrid) PaintCircle(x, y, radius float64) {
	for dx := -radius; dx <= radius; dx += g.size {
		for dy := -radius; dy <= radius; dy += g.size {
			if math.Hypot(dx, dy) <= radius {
				g.cells[g.snap(x+dx, y+dy)] = struct{}{}
			}
		}
	}
}

// DestroyCircle removes every cell within radius of (x, y) and returns the
// world positions of the removed cells so the caller can spawn debris.
func (g *VoxelGrid) DestroyCircle(x, y, radius float64) [][2]float64 {
	var removed [][2]float64
	minX := int(math.Floor((x - radius) / g.size))
	maxX := int(math.Ceil((x + radius) / g.size))
	minY := int(math.Floor((y - radius) / g.size))
	maxY := int(math.Ceil((y + radius) / g.size))
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			key := cellKey{cx, cy}
			if _, ok := g.cells[key]; !ok {
				continue
			}
			wx := float64(cx) * g.size
			wy := float64(cy) * g.size
			if math.Hypot(wx-x, wy-y) < radius {
				delete(g.cells, key)
				removed = append(removed, [2]float64{wx, wy})
			}
		}
	}
	return removed
}

// CollidesRect reports whether any occupied cell overlaps the rectangle.
func (g *VoxelGrid) CollidesRect(x, y, w, h float64) bool {
	minX := int(math.Floor(x / g.size))
	maxX := int(math.Ceil((x+w)/g.size)) - 1
	minY := int(math.Floor(y / g.size))
	maxY := int(math.Ceil((y+h)/g.size)) - 1
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			if _, ok := g.cells[cellKey{cx, cy}]; ok {
				return true
			}
		}
	}
	return false
}

// Count returns the number of occupied cells.
func (g *VoxelGrid) Count() int {
	return len(g.cells)
}

// Draw renders every cell as a filled square.
func (g *VoxelGrid) Draw(dst *ebiten.Image, clr color.Color) {
	s := float32(g.size)
	for key := range g.cells {
		vector.DrawFilledRect(dst, float32(key.cx)*s, float32(key.cy)*s, s, s, clr, false)
	}
}
