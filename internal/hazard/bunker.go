package hazard

import (
	"math"

	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// carveBunker computes the delta patch for one bunker.
//
// The profile is a "flash face" depression: a flat, slightly noisy floor
// across the inner FloorFrac of the normalized radius, a wall whose
// steepness varies continuously from near-vertical on the flash side to a
// gentle entry ramp opposite it, and a raised sine lip outside the
// boundary. The flash face always ends up oriented toward the green: a
// bunker guarding the green gets its steep wall on the green side, a
// bunker near the tee gets it on the far side from the tee.
func (cv *Carver) carveBunker(snap *terrain.Field, shape geom.Shape, depth float64, tee, green geom.Vec2) *patch {
	if depth <= 0 {
		return nil
	}
	centroid := shape.Centroid()
	avgRadius := shape.AvgRadius()
	if avgRadius <= 0 {
		return nil
	}

	flash := flashDirection(centroid, tee, green)
	lipWidth := cv.params.LipFrac * avgRadius

	min, max := shape.Bounds()
	minCol, minRow, maxCol, maxRow, ok := nodeWindow(snap, min, max, lipWidth)
	if !ok {
		return nil
	}

	rimBase := meanBoundaryElevation(snap, shape)
	floorBase := rimBase - depth

	p := newPatch(minCol, minRow, maxCol, maxRow)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := snap.NodePos(col, row)
			pos := geom.Vec2{X: x, Y: y}
			orig := snap.At(col, row)

			radial := pos.Sub(centroid)
			dist := radial.Length()
			dir := radial.Normalize()
			if dir == (geom.Vec2{}) {
				// Node exactly on the centroid: deepest point of the floor.
				p.set(col, row, floorBase+cv.floorNoise(pos)-orig)
				continue
			}

			radius := shape.RadiusToward(dir)
			if radius <= 0 {
				continue
			}
			t := dist / radius
			dot := dir.Dot(flash)

			switch {
			case t <= cv.params.FloorFrac:
				p.set(col, row, floorBase+cv.floorNoise(pos)-orig)

			case t <= 1:
				// Wall: interpolate floor -> rim with a direction-dependent
				// exponent. Rim target is the node's own original elevation,
				// so the profile meets the existing terrain with no step.
				prog := (t - cv.params.FloorFrac) / (1 - cv.params.FloorFrac)
				steep := steepness(cv.params.EntrySteep, cv.params.FlashSteep, dot)
				base := floorBase + cv.floorNoise(pos)*(1-prog)
				target := base + (orig-base)*math.Pow(prog, steep)
				p.set(col, row, target-orig)

			default:
				// Lip: a sine bump that rises from zero at the rim, peaks
				// mid-band, and returns to zero at the outer edge. Up to
				// twice as tall on the flash side.
				out := dist - radius
				if out >= lipWidth || lipWidth <= 0 {
					continue
				}
				u := out / lipWidth
				amp := cv.params.LipHeight * (1.5 + 0.5*dot)
				p.set(col, row, amp*math.Sin(math.Pi*u))
			}
		}
	}
	return p
}

// flashDirection returns the unit direction the steep bunker wall faces.
func flashDirection(centroid, tee, green geom.Vec2) geom.Vec2 {
	var dir geom.Vec2
	if centroid.Distance(green) <= centroid.Distance(tee) {
		dir = green.Sub(centroid).Normalize()
	} else {
		dir = centroid.Sub(tee).Normalize()
	}
	if dir == (geom.Vec2{}) {
		// Anchors coincide with the centroid; any orientation works.
		dir = geom.Vec2{X: 1}
	}
	return dir
}

// steepness maps the radial/flash alignment dot in [-1, 1] onto the wall
// exponent, entry side (dot=-1) to flash side (dot=+1).
func steepness(entry, flash, dot float64) float64 {
	a := (geom.Clamp(dot, -1, 1) + 1) / 2
	return entry + (flash-entry)*a
}

func (cv *Carver) floorNoise(pos geom.Vec2) float64 {
	if cv.params.FloorNoiseAmp == 0 {
		return 0
	}
	return cv.params.FloorNoiseAmp * cv.noise.At(pos.X, pos.Y)
}

// meanBoundaryElevation averages the pre-carve elevation around the shape
// boundary; the bunker floor sits depth units below it.
func meanBoundaryElevation(snap *terrain.Field, shape geom.Shape) float64 {
	pts := shape.BoundaryPoints()
	if len(pts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range pts {
		sum += snap.Sample(p.X, p.Y)
	}
	return sum / float64(len(pts))
}
