// Package terrain provides the bounded elevation field, brush-style
// sculpting and slope sampling that the rest of the engine reads.
package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/fairwaylabs/greenside/pkg/course"
)

// Field errors.
var (
	ErrBadBounds   = errors.New("field bounds must enclose a positive area")
	ErrBadCellSize = errors.New("field cell size must be positive")
)

// Field is a 2-D grid of elevation samples over rectangular world bounds.
// Queries are read-only and clamp at the edges; mutation happens through
// the brush operations and the hazard carver.
type Field struct {
	bounds   course.Bounds
	cellSize float64
	cols     int
	rows     int
	data     []float64 // row-major, len == rows*cols
}

// New creates a zero-elevation field covering bounds.
// cols = ceil((maxX-minX)/cellSize)+1, rows likewise, so the grid nodes
// at index 0 and cols-1 sit on or just past the bound edges.
func New(bounds course.Bounds, cellSize float64) (*Field, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrBadBounds, bounds)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, cellSize)
	}
	cols := spanCells(bounds.MaxX-bounds.MinX, cellSize)
	rows := spanCells(bounds.MaxY-bounds.MinY, cellSize)
	return &Field{
		bounds:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		data:     make([]float64, rows*cols),
	}, nil
}

func spanCells(extent, cellSize float64) int {
	n := int(extent / cellSize)
	if float64(n)*cellSize < extent {
		n++
	}
	return n + 1
}

// FromCourse builds a field from a course description, restoring the
// baked elevation grid when the course carries one.
func FromCourse(c *course.Course) (*Field, error) {
	f, err := New(c.Bounds, c.CellSize)
	if err != nil {
		return nil, err
	}
	if len(c.Elevation) == 0 {
		return f, nil
	}
	if len(c.Elevation) != f.rows {
		return nil, fmt.Errorf("%w: %d rows, field has %d",
			course.ErrGridShape, len(c.Elevation), f.rows)
	}
	for r, row := range c.Elevation {
		if len(row) != f.cols {
			return nil, fmt.Errorf("%w: row %d has %d cols, field has %d",
				course.ErrGridShape, r, len(row), f.cols)
		}
		copy(f.data[r*f.cols:(r+1)*f.cols], row)
	}
	return f, nil
}

// Bounds returns the world-space extent of the field.
func (f *Field) Bounds() course.Bounds { return f.bounds }

// CellSize returns the grid spacing in world units.
func (f *Field) CellSize() float64 { return f.cellSize }

// Cols returns the number of grid columns.
func (f *Field) Cols() int { return f.cols }

// Rows returns the number of grid rows.
func (f *Field) Rows() int { return f.rows }

// At returns the elevation at a grid node, clamping indices to the grid.
func (f *Field) At(col, row int) float64 {
	col = clampInt(col, 0, f.cols-1)
	row = clampInt(row, 0, f.rows-1)
	return f.data[row*f.cols+col]
}

// Set writes a grid node. Out-of-range indices are ignored.
func (f *Field) Set(col, row int, h float64) {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return
	}
	f.data[row*f.cols+col] = h
}

// Add offsets a grid node. Out-of-range indices are ignored.
func (f *Field) Add(col, row int, dh float64) {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return
	}
	f.data[row*f.cols+col] += dh
}

// NodePos returns the world position of a grid node.
func (f *Field) NodePos(col, row int) (x, y float64) {
	return f.bounds.MinX + float64(col)*f.cellSize,
		f.bounds.MinY + float64(row)*f.cellSize
}

// WorldToGrid converts world coordinates to fractional grid coordinates.
func (f *Field) WorldToGrid(x, y float64) (fx, fy float64) {
	return (x - f.bounds.MinX) / f.cellSize, (y - f.bounds.MinY) / f.cellSize
}

// Sample returns the bilinearly interpolated elevation at a world
// position. Out-of-bounds queries clamp to the field edge.
func (f *Field) Sample(x, y float64) float64 {
	fx, fy := f.WorldToGrid(x, y)

	col := int(math.Floor(fx))
	row := int(math.Floor(fy))
	col = clampInt(col, 0, f.cols-2)
	row = clampInt(row, 0, f.rows-2)

	tx := clampFrac(fx - float64(col))
	ty := clampFrac(fy - float64(row))

	h00 := f.data[row*f.cols+col]
	h10 := f.data[row*f.cols+col+1]
	h01 := f.data[(row+1)*f.cols+col]
	h11 := f.data[(row+1)*f.cols+col+1]

	south := h00*(1-tx) + h10*tx
	north := h01*(1-tx) + h11*tx
	return south*(1-ty) + north*ty
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	out := *f
	out.data = data
	return &out
}

// Grid exports the elevation data as a rows x cols 2-D slice for
// persistence in a course file.
func (f *Field) Grid() [][]float64 {
	out := make([][]float64, f.rows)
	for r := range out {
		out[r] = make([]float64, f.cols)
		copy(out[r], f.data[r*f.cols:(r+1)*f.cols])
	}
	return out
}

// Resize grows the field to cover newBounds. The resulting bounds are the
// union of old and new, with the minimum corner snapped onto the existing
// grid lattice so every old node keeps its exact world position. The new
// grid starts at zero; old cells are copied across at their (offset)
// indices, never reinterpreted at different world coordinates.
func (f *Field) Resize(newBounds course.Bounds) {
	union := f.bounds.Union(newBounds)
	if union == f.bounds {
		return
	}

	// Snap the grown minimum corner to whole cells below the old origin.
	colShift := int(math.Ceil((f.bounds.MinX - union.MinX) / f.cellSize))
	rowShift := int(math.Ceil((f.bounds.MinY - union.MinY) / f.cellSize))
	union.MinX = f.bounds.MinX - float64(colShift)*f.cellSize
	union.MinY = f.bounds.MinY - float64(rowShift)*f.cellSize

	cols := spanCells(union.MaxX-union.MinX, f.cellSize)
	rows := spanCells(union.MaxY-union.MinY, f.cellSize)
	data := make([]float64, rows*cols)

	for r := 0; r < f.rows; r++ {
		src := f.data[r*f.cols : (r+1)*f.cols]
		dstRow := r + rowShift
		copy(data[dstRow*cols+colShift:dstRow*cols+colShift+f.cols], src)
	}

	f.bounds = union
	f.cols = cols
	f.rows = rows
	f.data = data
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFrac(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
