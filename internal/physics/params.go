// Package physics simulates a ball rolling to rest across an elevation
// field under friction and slope forces.
package physics

import "github.com/fairwaylabs/greenside/pkg/geom"

// FeetPerUnit converts world units (yards) to reported feet.
const FeetPerUnit = 3.0

// Params tunes the roll integrator. Zero values fall back to defaults.
type Params struct {
	// TimeStep is the fixed integration step in seconds.
	TimeStep float64
	// Timeout is the safety bound in simulated seconds. Hitting it is a
	// defensive exit, never expected in normal play.
	Timeout float64
	// ArrestSpeed is the speed (units/s) below which the ball is at rest.
	ArrestSpeed float64
	// SpeedThreshold is the speed below which friction tapers off. The
	// taper is what lets a steep downslope re-accelerate a slowing ball.
	SpeedThreshold float64
	// ParallelEffect scales the slope component along the travel
	// direction (units/s^2 per unit grade).
	ParallelEffect float64
	// PerpEffect scales the lateral break component. Tuned smaller than
	// ParallelEffect so sideways break stays subtler than speed change
	// for the same nominal grade.
	PerpEffect float64
}

// DefaultParams returns the standard roll tuning.
func DefaultParams() Params {
	return Params{
		TimeStep:       0.016,
		Timeout:        30.0,
		ArrestSpeed:    0.0003,
		SpeedThreshold: 0.15,
		ParallelEffect: 8.0,
		PerpEffect:     2.0,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.TimeStep <= 0 {
		p.TimeStep = d.TimeStep
	}
	if p.Timeout <= 0 {
		p.Timeout = d.Timeout
	}
	if p.ArrestSpeed <= 0 {
		p.ArrestSpeed = d.ArrestSpeed
	}
	if p.SpeedThreshold <= 0 {
		p.SpeedThreshold = d.SpeedThreshold
	}
	if p.ParallelEffect <= 0 {
		p.ParallelEffect = d.ParallelEffect
	}
	if p.PerpEffect <= 0 {
		p.PerpEffect = d.PerpEffect
	}
	return p
}

// FrictionModel supplies the base friction deceleration (units/s^2) for
// a world position, typically backed by the terrain classifier.
type FrictionModel interface {
	FrictionAt(p geom.Vec2) float64
}

// ConstantFriction is a FrictionModel with one value everywhere.
type ConstantFriction float64

// FrictionAt returns the constant value.
func (c ConstantFriction) FrictionAt(geom.Vec2) float64 { return float64(c) }
