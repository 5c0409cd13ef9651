package world

import (
	"github.com/fairwaylabs/greenside/pkg/course"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// FrictionTable maps terrain types to base friction deceleration
// (world units/s^2). Larger values kill a roll faster.
type FrictionTable map[course.TerrainType]float64

// DefaultFrictionTable returns the standard lie friction values.
func DefaultFrictionTable() FrictionTable {
	return FrictionTable{
		course.Green:       0.4,
		course.Tee:         0.5,
		course.Fairway:     1.0,
		course.Rough:       2.5,
		course.Bunker:      4.0,
		course.Water:       4.0,
		course.OutOfBounds: 2.5,
	}
}

// lieFriction adapts the classifier into a physics.FrictionModel.
type lieFriction struct {
	classifier *Classifier
	table      FrictionTable
}

// FrictionAt returns the base friction for the lie under the point.
func (l *lieFriction) FrictionAt(p geom.Vec2) float64 {
	if mu, ok := l.table[l.classifier.Classify(p)]; ok {
		return mu
	}
	return DefaultFrictionTable()[course.Rough]
}
