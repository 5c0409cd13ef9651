package geom

import "math"

// Shape is a closed 2-D region used for terrain zones and hazards.
type Shape interface {
	// Contains reports whether the point lies inside the shape.
	Contains(p Vec2) bool
	// Centroid returns the geometric center of the shape.
	Centroid() Vec2
	// RadiusToward returns the distance from the centroid to the shape
	// boundary along the given direction. dir does not need to be
	// normalized; a zero direction returns 0.
	RadiusToward(dir Vec2) float64
	// AvgRadius returns the mean centroid-to-boundary distance.
	AvgRadius() float64
	// BoundaryPoints returns representative points on the shape boundary,
	// ordered counter-clockwise.
	BoundaryPoints() []Vec2
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() (min, max Vec2)
	// IntersectSegment returns the first boundary crossing along the
	// segment a->b (smallest t in [0,1]), if any.
	IntersectSegment(a, b Vec2) (Vec2, bool)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Centroid returns the rectangle center.
func (r Rect) Centroid() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// RadiusToward returns the centroid-to-edge distance along dir.
func (r Rect) RadiusToward(dir Vec2) float64 {
	d := dir.Normalize()
	if d == (Vec2{}) {
		return 0
	}
	halfW := (r.Max.X - r.Min.X) / 2
	halfH := (r.Max.Y - r.Min.Y) / 2
	tx := math.Inf(1)
	ty := math.Inf(1)
	if d.X != 0 {
		tx = halfW / math.Abs(d.X)
	}
	if d.Y != 0 {
		ty = halfH / math.Abs(d.Y)
	}
	return math.Min(tx, ty)
}

// AvgRadius returns the mean half-extent.
func (r Rect) AvgRadius() float64 {
	return ((r.Max.X-r.Min.X)/2 + (r.Max.Y-r.Min.Y)/2) / 2
}

// BoundaryPoints returns the four corners counter-clockwise.
func (r Rect) BoundaryPoints() []Vec2 {
	return []Vec2{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
	}
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() (Vec2, Vec2) {
	return r.Min, r.Max
}

// IntersectSegment returns the first edge crossing along a->b.
func (r Rect) IntersectSegment(a, b Vec2) (Vec2, bool) {
	return polygonIntersectSegment(r.BoundaryPoints(), a, b)
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center Vec2
	SemiX  float64
	SemiY  float64
}

// Contains reports whether p lies inside the ellipse.
func (e Ellipse) Contains(p Vec2) bool {
	if e.SemiX <= 0 || e.SemiY <= 0 {
		return false
	}
	nx := (p.X - e.Center.X) / e.SemiX
	ny := (p.Y - e.Center.Y) / e.SemiY
	return nx*nx+ny*ny <= 1
}

// Centroid returns the ellipse center.
func (e Ellipse) Centroid() Vec2 {
	return e.Center
}

// RadiusToward returns the center-to-boundary distance along dir.
func (e Ellipse) RadiusToward(dir Vec2) float64 {
	d := dir.Normalize()
	if d == (Vec2{}) || e.SemiX <= 0 || e.SemiY <= 0 {
		return 0
	}
	cx := d.X / e.SemiX
	cy := d.Y / e.SemiY
	denom := math.Sqrt(cx*cx + cy*cy)
	if denom == 0 {
		return 0
	}
	return 1 / denom
}

// AvgRadius returns the mean of the two semi-axes.
func (e Ellipse) AvgRadius() float64 {
	return (e.SemiX + e.SemiY) / 2
}

// ellipseBoundarySamples is the number of points BoundaryPoints returns.
const ellipseBoundarySamples = 16

// BoundaryPoints returns evenly spaced samples around the ellipse.
func (e Ellipse) BoundaryPoints() []Vec2 {
	pts := make([]Vec2, ellipseBoundarySamples)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(ellipseBoundarySamples)
		pts[i] = Vec2{
			X: e.Center.X + e.SemiX*math.Cos(theta),
			Y: e.Center.Y + e.SemiY*math.Sin(theta),
		}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box.
func (e Ellipse) Bounds() (Vec2, Vec2) {
	return Vec2{e.Center.X - e.SemiX, e.Center.Y - e.SemiY},
		Vec2{e.Center.X + e.SemiX, e.Center.Y + e.SemiY}
}

// IntersectSegment returns the first boundary crossing along a->b.
// Solves the quadratic from substituting the parametric segment into
// the ellipse equation.
func (e Ellipse) IntersectSegment(a, b Vec2) (Vec2, bool) {
	if e.SemiX <= 0 || e.SemiY <= 0 {
		return Vec2{}, false
	}
	// Normalize into unit-circle space.
	ax := (a.X - e.Center.X) / e.SemiX
	ay := (a.Y - e.Center.Y) / e.SemiY
	dx := (b.X - a.X) / e.SemiX
	dy := (b.Y - a.Y) / e.SemiY
	qa := dx*dx + dy*dy
	qb := 2 * (ax*dx + ay*dy)
	qc := ax*ax + ay*ay - 1
	if qa == 0 {
		return Vec2{}, false
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return Vec2{}, false
	}
	sq := math.Sqrt(disc)
	t0 := (-qb - sq) / (2 * qa)
	t1 := (-qb + sq) / (2 * qa)
	for _, t := range []float64{t0, t1} {
		if t >= 0 && t <= 1 {
			return a.Lerp(b, t), true
		}
	}
	return Vec2{}, false
}

// Polygon is a simple closed polygon defined by its vertices in order.
type Polygon struct {
	Points []Vec2
}

// Contains reports whether p lies inside the polygon, using the
// non-zero winding rule.
func (pg Polygon) Contains(p Vec2) bool {
	n := len(pg.Points)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		a := pg.Points[i]
		b := pg.Points[(i+1)%n]
		if a.Y <= p.Y {
			if b.Y > p.Y && isLeft(a, b, p) > 0 {
				winding++
			}
		} else {
			if b.Y <= p.Y && isLeft(a, b, p) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// isLeft returns >0 if p is left of the directed line a->b, <0 right, 0 on.
func isLeft(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// Centroid returns the mean of the vertices.
func (pg Polygon) Centroid() Vec2 {
	if len(pg.Points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range pg.Points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pg.Points)))
}

// RadiusToward casts a ray from the centroid and returns the distance to
// the farthest edge crossing, so concave boundaries resolve to the outer
// silhouette.
func (pg Polygon) RadiusToward(dir Vec2) float64 {
	d := dir.Normalize()
	if d == (Vec2{}) || len(pg.Points) < 3 {
		return 0
	}
	c := pg.Centroid()
	best := 0.0
	n := len(pg.Points)
	for i := 0; i < n; i++ {
		a := pg.Points[i]
		b := pg.Points[(i+1)%n]
		if t, ok := raySegment(c, d, a, b); ok && t > best {
			best = t
		}
	}
	return best
}

// AvgRadius returns the mean vertex distance from the centroid.
func (pg Polygon) AvgRadius() float64 {
	if len(pg.Points) == 0 {
		return 0
	}
	c := pg.Centroid()
	sum := 0.0
	for _, p := range pg.Points {
		sum += c.Distance(p)
	}
	return sum / float64(len(pg.Points))
}

// BoundaryPoints returns the polygon vertices.
func (pg Polygon) BoundaryPoints() []Vec2 {
	return pg.Points
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (pg Polygon) Bounds() (Vec2, Vec2) {
	if len(pg.Points) == 0 {
		return Vec2{}, Vec2{}
	}
	min := pg.Points[0]
	max := pg.Points[0]
	for _, p := range pg.Points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// IntersectSegment returns the first edge crossing along a->b.
func (pg Polygon) IntersectSegment(a, b Vec2) (Vec2, bool) {
	return polygonIntersectSegment(pg.Points, a, b)
}

// polygonIntersectSegment finds the smallest-t crossing of segment a->b
// with the closed edge loop.
func polygonIntersectSegment(pts []Vec2, a, b Vec2) (Vec2, bool) {
	n := len(pts)
	if n < 2 {
		return Vec2{}, false
	}
	bestT := math.Inf(1)
	for i := 0; i < n; i++ {
		p := pts[i]
		q := pts[(i+1)%n]
		if t, ok := segmentSegment(a, b, p, q); ok && t < bestT {
			bestT = t
		}
	}
	if math.IsInf(bestT, 1) {
		return Vec2{}, false
	}
	return a.Lerp(b, bestT), true
}

// raySegment intersects the ray origin+t*dir (t>=0) with segment a->b.
func raySegment(origin, dir, a, b Vec2) (float64, bool) {
	e := b.Sub(a)
	denom := dir.X*e.Y - dir.Y*e.X
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	ao := a.Sub(origin)
	t := (ao.X*e.Y - ao.Y*e.X) / denom
	u := (ao.X*dir.Y - ao.Y*dir.X) / denom
	if t >= 0 && u >= 0 && u <= 1 {
		return t, true
	}
	return 0, false
}

// segmentSegment returns the parameter t along a->b of the crossing with
// segment p->q, if the segments intersect.
func segmentSegment(a, b, p, q Vec2) (float64, bool) {
	d1 := b.Sub(a)
	d2 := q.Sub(p)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	ap := p.Sub(a)
	t := (ap.X*d2.Y - ap.Y*d2.X) / denom
	u := (ap.X*d1.Y - ap.Y*d1.X) / denom
	if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
		return t, true
	}
	return 0, false
}
