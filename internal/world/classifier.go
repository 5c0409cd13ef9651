// Package world assembles a playable course: the baked elevation field,
// zone classification and the roll simulator, loaded once and read-only
// afterwards.
package world

import (
	"go.uber.org/zap"

	"github.com/fairwaylabs/greenside/pkg/course"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// zoneShape is a zone with its geometry resolved once at load time.
type zoneShape struct {
	typ   course.TerrainType
	shape geom.Shape
}

// Classifier resolves which terrain type covers a point. Zones are
// tested in insertion order; the highest render priority wins and ties
// keep the earliest match, so zone order is part of the contract.
type Classifier struct {
	zones []zoneShape
}

// NewClassifier resolves zone geometry up front. Malformed zones are
// skipped with a warning; they can never match a point.
func NewClassifier(zones []course.Zone, log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	resolved := make([]zoneShape, 0, len(zones))
	for i := range zones {
		shape, err := zones[i].Shape()
		if err != nil {
			log.Warn("skipping unclassifiable zone",
				zap.Int("zone", i),
				zap.String("type", zones[i].Type.String()),
				zap.Error(err))
			continue
		}
		resolved = append(resolved, zoneShape{typ: zones[i].Type, shape: shape})
	}
	return &Classifier{zones: resolved}
}

// Classify returns the terrain type at a point. Points outside every
// zone are rough, the base surface of the course.
func (c *Classifier) Classify(p geom.Vec2) course.TerrainType {
	best := course.Rough
	bestPriority := -1
	for i := range c.zones {
		z := &c.zones[i]
		if pr := z.typ.Priority(); pr > bestPriority && z.shape.Contains(p) {
			best = z.typ
			bestPriority = pr
		}
	}
	return best
}

// firstShape returns the geometry of the first zone of the given type.
func (c *Classifier) firstShape(t course.TerrainType) (geom.Shape, bool) {
	for i := range c.zones {
		if c.zones[i].typ == t {
			return c.zones[i].shape, true
		}
	}
	return nil, false
}
