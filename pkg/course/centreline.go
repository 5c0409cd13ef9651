package course

import (
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// Centreline is the ordered point sequence from tee toward green. It is
// mutable during course authoring; reference-point computation requires
// at least two points.
type Centreline []Point

// Valid reports whether the centreline can be used for reference points.
func (cl Centreline) Valid() bool {
	return len(cl) >= 2
}

// Append adds a point to the end of the centreline.
func (cl *Centreline) Append(p Point) {
	*cl = append(*cl, p)
}

// Length returns the total polyline length.
func (cl Centreline) Length() float64 {
	total := 0.0
	for i := 1; i < len(cl); i++ {
		total += cl[i].Vec().Distance(cl[i-1].Vec())
	}
	return total
}

// FrontOfGreen walks the centreline from the tee end and returns the
// first crossing into the green shape. Falls back to the hole marker
// when the centreline is too short or never crosses the shape.
func (c *Course) FrontOfGreen(green geom.Shape) geom.Vec2 {
	if p, ok := c.Centreline.firstCrossing(green, false); ok {
		return p
	}
	return c.HoleMarker.Vec()
}

// FrontOfTee walks the centreline from the green end and returns the
// first crossing into the tee shape: the tee-box edge facing the hole.
// Falls back to the tee marker.
func (c *Course) FrontOfTee(tee geom.Shape) geom.Vec2 {
	if p, ok := c.Centreline.firstCrossing(tee, true); ok {
		return p
	}
	return c.TeeMarker.Vec()
}

// firstCrossing intersects consecutive centreline segments with the shape
// boundary. reverse walks green-to-tee instead of tee-to-green.
func (cl Centreline) firstCrossing(shape geom.Shape, reverse bool) (geom.Vec2, bool) {
	if !cl.Valid() || shape == nil {
		return geom.Vec2{}, false
	}
	n := len(cl)
	for i := 0; i < n-1; i++ {
		var a, b geom.Vec2
		if reverse {
			a = cl[n-1-i].Vec()
			b = cl[n-2-i].Vec()
		} else {
			a = cl[i].Vec()
			b = cl[i+1].Vec()
		}
		if p, ok := shape.IntersectSegment(a, b); ok {
			return p, true
		}
	}
	return geom.Vec2{}, false
}
