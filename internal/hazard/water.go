package hazard

import (
	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// carveWater computes the delta patch for one water hazard.
//
// The water level is the minimum pre-carve elevation found at the
// hazard's boundary vertices, so the surface sits at the lowest point of
// its rim and never floats above surrounding ground. The basin interior
// drops a fixed depth below that level; terrain outside the shape is
// smoothstep-blended from the water level back up to its original
// elevation across a fixed transition distance, and only ever raised
// toward the original, never pushed below the water level.
func (cv *Carver) carveWater(snap *terrain.Field, shape geom.Shape) *patch {
	pts := shape.BoundaryPoints()
	if len(pts) == 0 {
		return nil
	}

	level := snap.Sample(pts[0].X, pts[0].Y)
	for _, bp := range pts[1:] {
		if h := snap.Sample(bp.X, bp.Y); h < level {
			level = h
		}
	}
	floor := level - cv.params.WaterDepth
	transition := cv.params.WaterTransition

	min, max := shape.Bounds()
	minCol, minRow, maxCol, maxRow, ok := nodeWindow(snap, min, max, transition)
	if !ok {
		return nil
	}
	centroid := shape.Centroid()

	p := newPatch(minCol, minRow, maxCol, maxRow)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := snap.NodePos(col, row)
			pos := geom.Vec2{X: x, Y: y}
			orig := snap.At(col, row)

			if shape.Contains(pos) {
				p.set(col, row, floor-orig)
				continue
			}

			// Shore band: distance past the directed boundary radius.
			radial := pos.Sub(centroid)
			dir := radial.Normalize()
			if dir == (geom.Vec2{}) {
				continue
			}
			radius := shape.RadiusToward(dir)
			if radius <= 0 {
				continue
			}
			out := radial.Length() - radius
			if out < 0 || out >= transition || orig <= level {
				continue
			}
			target := level + (orig-level)*geom.Smoothstep(out/transition)
			p.set(col, row, target-orig)
		}
	}
	return p
}
