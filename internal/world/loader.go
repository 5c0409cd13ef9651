package world

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fairwaylabs/greenside/internal/hazard"
	"github.com/fairwaylabs/greenside/internal/physics"
	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/course"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// Options configures course loading. Zero values use defaults.
type Options struct {
	Carve    hazard.Params
	Roll     physics.Params
	Friction FrictionTable
	Logger   *zap.Logger
}

// World is a fully loaded course: the elevation field with hazards baked
// in, zone classification, anchors and the roll simulator. Immutable
// after Load, so any number of goroutines may query and simulate on it.
type World struct {
	Course     *course.Course
	Field      *terrain.Field
	Classifier *Classifier

	// TeeAnchor and GreenAnchor orient bunker flash faces and shot
	// references: front-of-tee and front-of-green along the centreline,
	// falling back to the course markers.
	TeeAnchor   geom.Vec2
	GreenAnchor geom.Vec2

	sim *physics.Simulator
	log *zap.Logger
}

// Load builds a world from a course description. Hazards are carved into
// the elevation field exactly once: a course that already carries a baked
// elevation grid is restored as-is, never re-carved.
func Load(ctx context.Context, c *course.Course, opts Options) (*World, error) {
	// Only structural defects are fatal; zones with bad geometry are
	// skipped with a warning by the classifier and the carver.
	if err := c.ValidateStructure(); err != nil {
		return nil, fmt.Errorf("loading course: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	field, err := terrain.FromCourse(c)
	if err != nil {
		return nil, fmt.Errorf("loading course %q: %w", c.Name, err)
	}
	classifier := NewClassifier(c.Zones, log)

	w := &World{
		Course:      c,
		Field:       field,
		Classifier:  classifier,
		TeeAnchor:   c.TeeMarker.Vec(),
		GreenAnchor: c.HoleMarker.Vec(),
		log:         log,
	}
	if teeShape, ok := classifier.firstShape(course.Tee); ok {
		w.TeeAnchor = c.FrontOfTee(teeShape)
	}
	if greenShape, ok := classifier.firstShape(course.Green); ok {
		w.GreenAnchor = c.FrontOfGreen(greenShape)
	}

	if len(c.Elevation) == 0 {
		carver := hazard.NewCarver(opts.Carve, log)
		if err := carver.Apply(ctx, field, c.Zones, w.TeeAnchor, w.GreenAnchor); err != nil {
			return nil, fmt.Errorf("carving hazards for %q: %w", c.Name, err)
		}
	} else {
		log.Debug("course carries baked elevation, skipping carve",
			zap.String("course", c.Name))
	}

	table := opts.Friction
	if table == nil {
		table = DefaultFrictionTable()
	}
	w.sim = physics.NewSimulator(field, &lieFriction{classifier: classifier, table: table}, opts.Roll)

	log.Info("course loaded",
		zap.String("course", c.Name),
		zap.Int("zones", len(c.Zones)),
		zap.Int("cols", field.Cols()),
		zap.Int("rows", field.Rows()))
	return w, nil
}

// ElevationAt returns the baked elevation at a world position.
func (w *World) ElevationAt(x, y float64) float64 {
	return w.Field.Sample(x, y)
}

// SlopeAt returns the local gradient at a world position.
func (w *World) SlopeAt(x, y float64) terrain.Slope {
	return terrain.SlopeAt(w.Field, x, y)
}

// LieAt returns the terrain type under a world position.
func (w *World) LieAt(x, y float64) course.TerrainType {
	return w.Classifier.Classify(geom.Vec2{X: x, Y: y})
}

// Simulate rolls a ball from start along aim for a requested flat-ground
// distance in feet. Safe to call concurrently.
func (w *World) Simulate(start, aim geom.Vec2, requestedFeet float64) physics.Result {
	return w.sim.Simulate(start, aim, requestedFeet)
}

// Bake writes the carved elevation grid back onto the course so a
// subsequent save/load restores the field without re-carving.
func (w *World) Bake() {
	w.Course.Elevation = w.Field.Grid()
}
