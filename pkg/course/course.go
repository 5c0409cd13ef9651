// Package course defines the persisted course data model: world bounds,
// terrain zones, the tee-to-green centreline and the baked elevation grid.
package course

import (
	"errors"
	"fmt"

	"github.com/fairwaylabs/greenside/pkg/geom"
)

// Course format errors.
var (
	ErrInvalidBounds   = errors.New("invalid course bounds")
	ErrInvalidCellSize = errors.New("invalid cell size")
	ErrInvalidZone     = errors.New("invalid zone geometry")
	ErrGridShape       = errors.New("elevation grid does not match bounds")
	ErrShortCentreline = errors.New("centreline needs at least 2 points")
	ErrUnknownTerrain  = errors.New("unknown terrain type")
	ErrAmbiguousShape  = errors.New("zone must define exactly one shape")
)

// TerrainType identifies the playing surface of a zone.
type TerrainType int

// Terrain types in ascending render priority within their tier.
const (
	Rough TerrainType = iota
	Fairway
	Bunker
	Water
	OutOfBounds
	Tee
	Green
)

var terrainNames = map[TerrainType]string{
	Rough:       "rough",
	Fairway:     "fairway",
	Bunker:      "bunker",
	Water:       "water",
	OutOfBounds: "out_of_bounds",
	Tee:         "tee",
	Green:       "green",
}

// String returns the terrain type name used in course files.
func (t TerrainType) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// Priority returns the z-resolution tier used by the classifier:
// rough(0) < fairway(1) < bunker/water/out_of_bounds(2) < tee/green(3).
func (t TerrainType) Priority() int {
	switch t {
	case Rough:
		return 0
	case Fairway:
		return 1
	case Bunker, Water, OutOfBounds:
		return 2
	case Tee, Green:
		return 3
	default:
		return -1
	}
}

// IsHazard reports whether a zone of this type is carved into the terrain.
func (t TerrainType) IsHazard() bool {
	return t == Bunker || t == Water
}

// MarshalYAML encodes the terrain type as its name.
func (t TerrainType) MarshalYAML() (interface{}, error) {
	name, ok := terrainNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTerrain, int(t))
	}
	return name, nil
}

// UnmarshalYAML decodes a terrain type from its name.
func (t *TerrainType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	for tt, n := range terrainNames {
		if n == name {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}

// Bounds is the rectangular world-space extent of a course.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Valid reports whether the bounds enclose a positive area.
func (b Bounds) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Contains reports whether the point lies within the bounds.
func (b Bounds) Contains(p geom.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.MinX < out.MinX {
		out.MinX = other.MinX
	}
	if other.MinY < out.MinY {
		out.MinY = other.MinY
	}
	if other.MaxX > out.MaxX {
		out.MaxX = other.MaxX
	}
	if other.MaxY > out.MaxY {
		out.MaxY = other.MaxY
	}
	return out
}

// RectSpec is the YAML form of an axis-aligned rectangle.
type RectSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// EllipseSpec is the YAML form of an axis-aligned ellipse.
type EllipseSpec struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	SemiX   float64 `yaml:"semi_x"`
	SemiY   float64 `yaml:"semi_y"`
}

// DefaultBunkerDepth is used when a bunker zone does not set depth.
const DefaultBunkerDepth = 6.0

// Zone is one terrain region. Exactly one of Rect, Ellipse or Polygon
// must be set. Depth applies to bunkers only.
type Zone struct {
	Type    TerrainType  `yaml:"type"`
	Rect    *RectSpec    `yaml:"rect,omitempty"`
	Ellipse *EllipseSpec `yaml:"ellipse,omitempty"`
	Polygon [][2]float64 `yaml:"polygon,omitempty"`
	Depth   float64      `yaml:"depth,omitempty"`
}

// Shape resolves the zone geometry. Returns ErrAmbiguousShape when zero
// or multiple shapes are set, ErrInvalidZone for degenerate geometry.
func (z *Zone) Shape() (geom.Shape, error) {
	set := 0
	if z.Rect != nil {
		set++
	}
	if z.Ellipse != nil {
		set++
	}
	if len(z.Polygon) > 0 {
		set++
	}
	if set != 1 {
		return nil, ErrAmbiguousShape
	}

	switch {
	case z.Rect != nil:
		r := geom.Rect{
			Min: geom.Vec2{X: z.Rect.MinX, Y: z.Rect.MinY},
			Max: geom.Vec2{X: z.Rect.MaxX, Y: z.Rect.MaxY},
		}
		if r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y {
			return nil, fmt.Errorf("%w: empty rect", ErrInvalidZone)
		}
		return r, nil
	case z.Ellipse != nil:
		e := geom.Ellipse{
			Center: geom.Vec2{X: z.Ellipse.CenterX, Y: z.Ellipse.CenterY},
			SemiX:  z.Ellipse.SemiX,
			SemiY:  z.Ellipse.SemiY,
		}
		if e.SemiX <= 0 || e.SemiY <= 0 {
			return nil, fmt.Errorf("%w: non-positive ellipse axis", ErrInvalidZone)
		}
		return e, nil
	default:
		if len(z.Polygon) < 3 {
			return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d",
				ErrInvalidZone, len(z.Polygon))
		}
		pts := make([]geom.Vec2, len(z.Polygon))
		for i, p := range z.Polygon {
			pts[i] = geom.Vec2{X: p[0], Y: p[1]}
		}
		return geom.Polygon{Points: pts}, nil
	}
}

// BunkerDepth returns the carve depth for a bunker zone.
func (z *Zone) BunkerDepth() float64 {
	if z.Depth > 0 {
		return z.Depth
	}
	return DefaultBunkerDepth
}

// Point is a serializable 2-D point.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts to a geometry vector.
func (p Point) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Course is the complete persisted course description. Zone order is
// preserved across save/load because classifier tie-breaking depends on it.
type Course struct {
	Name       string      `yaml:"name"`
	Bounds     Bounds      `yaml:"bounds"`
	CellSize   float64     `yaml:"cell_size"`
	TeeMarker  Point       `yaml:"tee_marker"`
	HoleMarker Point       `yaml:"hole_marker"`
	Centreline Centreline  `yaml:"centreline,omitempty"`
	Zones      []Zone      `yaml:"zones,omitempty"`
	Elevation  [][]float64 `yaml:"elevation,omitempty"`
}

// GridDims returns the grid dimensions implied by bounds and cell size,
// matching the elevation field layout: ceil(extent/cellSize)+1.
func (c *Course) GridDims() (cols, rows int) {
	cols = gridSpan(c.Bounds.MaxX-c.Bounds.MinX, c.CellSize)
	rows = gridSpan(c.Bounds.MaxY-c.Bounds.MinY, c.CellSize)
	return cols, rows
}

func gridSpan(extent, cellSize float64) int {
	if cellSize <= 0 || extent <= 0 {
		return 0
	}
	n := int(extent / cellSize)
	if float64(n)*cellSize < extent {
		n++
	}
	return n + 1
}

// ValidateStructure checks the invariants a course cannot be loaded
// without: valid bounds, a positive cell size, and an elevation grid (if
// present) matching the implied dimensions. Zone geometry is not checked
// here; consumers skip bad zones individually.
func (c *Course) ValidateStructure() error {
	if !c.Bounds.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidBounds, c.Bounds)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCellSize, c.CellSize)
	}
	if len(c.Elevation) > 0 {
		cols, rows := c.GridDims()
		if len(c.Elevation) != rows {
			return fmt.Errorf("%w: %d rows, want %d", ErrGridShape, len(c.Elevation), rows)
		}
		for i, row := range c.Elevation {
			if len(row) != cols {
				return fmt.Errorf("%w: row %d has %d cols, want %d", ErrGridShape, i, len(row), cols)
			}
		}
	}
	return nil
}

// Validate checks structural invariants and every zone's geometry. Use
// this for authoring-time checks; loaders that tolerate bad zones should
// call ValidateStructure instead.
func (c *Course) Validate() error {
	if err := c.ValidateStructure(); err != nil {
		return err
	}
	for i := range c.Zones {
		if _, err := c.Zones[i].Shape(); err != nil {
			return fmt.Errorf("zone %d (%s): %w", i, c.Zones[i].Type, err)
		}
	}
	return nil
}

// CountByType returns the number of zones for each terrain type.
func (c *Course) CountByType() map[TerrainType]int {
	counts := make(map[TerrainType]int)
	for i := range c.Zones {
		counts[c.Zones[i].Type]++
	}
	return counts
}

// ElevationRange returns the minimum and maximum baked elevation.
func (c *Course) ElevationRange() (min, max float64) {
	first := true
	for _, row := range c.Elevation {
		for _, h := range row {
			if first {
				min, max = h, h
				first = false
				continue
			}
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}
	return min, max
}
