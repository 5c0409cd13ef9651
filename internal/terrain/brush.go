package terrain

import (
	"math"

	"github.com/fairwaylabs/greenside/pkg/geom"
)

// Paint raises (or lowers, for negative amount) terrain around a world
// position. radius is in grid units; each affected node receives
// amount * smoothstep(1 - dist/radius), a radially symmetric brush with
// smooth falloff rather than a hard cutoff.
func (f *Field) Paint(x, y, radius, amount float64) {
	if radius <= 0 || amount == 0 {
		return
	}
	fx, fy := f.WorldToGrid(x, y)

	minCol, maxCol, minRow, maxRow := f.brushExtent(fx, fy, radius)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			dist := math.Hypot(float64(col)-fx, float64(row)-fy)
			if dist > radius {
				continue
			}
			w := geom.Smoothstep(1 - dist/radius)
			f.data[row*f.cols+col] += amount * w
		}
	}
}

// Smooth blends each node within radius (grid units) of the world
// position toward the average of its 4-neighbours. All reads come from a
// snapshot taken before mutation, so the result does not depend on cell
// visit order.
func (f *Field) Smooth(x, y, radius float64) {
	if radius <= 0 {
		return
	}
	fx, fy := f.WorldToGrid(x, y)
	snap := f.Clone()

	minCol, maxCol, minRow, maxRow := f.brushExtent(fx, fy, radius)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			dist := math.Hypot(float64(col)-fx, float64(row)-fy)
			if dist > radius {
				continue
			}
			avg := (snap.At(col-1, row) + snap.At(col+1, row) +
				snap.At(col, row-1) + snap.At(col, row+1)) / 4
			w := geom.Smoothstep(1 - dist/radius)
			old := snap.At(col, row)
			f.data[row*f.cols+col] = old + (avg-old)*w
		}
	}
}

// brushExtent returns the inclusive node index range touched by a brush.
func (f *Field) brushExtent(fx, fy, radius float64) (minCol, maxCol, minRow, maxRow int) {
	minCol = clampInt(int(math.Floor(fx-radius)), 0, f.cols-1)
	maxCol = clampInt(int(math.Ceil(fx+radius)), 0, f.cols-1)
	minRow = clampInt(int(math.Floor(fy-radius)), 0, f.rows-1)
	maxRow = clampInt(int(math.Ceil(fy+radius)), 0, f.rows-1)
	return minCol, maxCol, minRow, maxRow
}
