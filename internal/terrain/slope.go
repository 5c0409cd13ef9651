package terrain

import "math"

// slopeOffset is the central-difference sample offset in world units.
const slopeOffset = 1.0

// Slope is the local elevation gradient at a point. DX and DY are
// rise-per-unit along each axis (positive = uphill in that direction);
// the downhill direction is (-DX, -DY) normalized.
type Slope struct {
	DX  float64
	DY  float64
	Mag float64
}

// SlopeAt computes the gradient by central finite difference. Elevation
// lookups clamp at the field bounds, so edge queries stay in range.
func SlopeAt(f *Field, x, y float64) Slope {
	ddx := (f.Sample(x+slopeOffset, y) - f.Sample(x-slopeOffset, y)) / (2 * slopeOffset)
	ddy := (f.Sample(x, y+slopeOffset) - f.Sample(x, y-slopeOffset)) / (2 * slopeOffset)
	return Slope{
		DX:  ddx,
		DY:  ddy,
		Mag: math.Hypot(ddx, ddy),
	}
}
