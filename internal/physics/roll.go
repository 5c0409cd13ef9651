package physics

import (
	"math"

	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// Result is the outcome of one roll simulation.
type Result struct {
	// Rest is the final ball position in world units.
	Rest geom.Vec2
	// ForwardFeet is the signed travel along the original aim direction.
	ForwardFeet float64
	// LateralFeet is the signed deviation perpendicular to the aim
	// (positive = left of the aim line).
	LateralFeet float64
	// MaxSpeed is the peak speed reached (units/s); greater than the
	// initial speed when a downslope re-accelerated the ball.
	MaxSpeed float64
	// Elapsed is the simulated time in seconds.
	Elapsed float64
	// Converged is false when the safety timeout fired before the ball
	// arrested. Callers must not treat such a result as a normal stop.
	Converged bool
}

// Simulator integrates ball rolls over an immutable elevation field.
// One simulator may run any number of concurrent Simulate calls: all
// per-shot state is local.
type Simulator struct {
	field    *terrain.Field
	friction FrictionModel
	params   Params
}

// NewSimulator creates a roll simulator. A nil friction model gets a
// green-speed constant.
func NewSimulator(field *terrain.Field, friction FrictionModel, params Params) *Simulator {
	if friction == nil {
		friction = ConstantFriction(0.4)
	}
	return &Simulator{
		field:    field,
		friction: friction,
		params:   params.withDefaults(),
	}
}

// InitialSpeed returns the launch speed calibrated so a ball on flat
// ground with base friction mu arrests after d world units.
func (s *Simulator) InitialSpeed(mu, d float64) float64 {
	if mu <= 0 || d <= 0 {
		return 0
	}
	return math.Sqrt(2*mu*d) * math.Min(1, 0.90+0.02*d)
}

// Simulate rolls a ball from start along aim for a requested flat-ground
// distance in feet, and returns the rest state. Zero aim or distance is a
// no-op that rests at the start.
func (s *Simulator) Simulate(start, aim geom.Vec2, requestedFeet float64) Result {
	dirAim := aim.Normalize()
	d := requestedFeet / FeetPerUnit
	if dirAim == (geom.Vec2{}) || d <= 0 {
		return Result{Rest: start, Converged: true}
	}

	p := s.params
	mu0 := s.friction.FrictionAt(start)
	v0 := s.InitialSpeed(mu0, d)

	pos := start
	vel := dirAim.Scale(v0)
	maxSpeed := v0
	elapsed := 0.0
	converged := false

	for elapsed < p.Timeout {
		speed := vel.Length()
		if speed < p.ArrestSpeed {
			converged = true
			break
		}

		dir := vel.Scale(1 / speed)
		perp := dir.Perp()

		slope := terrain.SlopeAt(s.field, pos.X, pos.Y)
		downhill := geom.Vec2{X: -slope.DX, Y: -slope.DY}

		// Decompose slope into along-path and lateral components with
		// independently tuned coefficients; applying the raw vector
		// exaggerates break relative to speed change.
		par := downhill.Dot(dir) * p.ParallelEffect
		lat := downhill.Dot(perp) * p.PerpEffect
		slopeAccel := dir.Scale(par).Add(perp.Scale(lat))

		vel = vel.Add(slopeAccel.Scale(p.TimeStep))

		// Friction opposes the current velocity, tapering below the speed
		// threshold, and is applied as a speed decay so one step can
		// never reverse the direction of travel.
		speed = vel.Length()
		if speed > 0 {
			eff := s.friction.FrictionAt(pos) *
				(0.3 + 0.7*math.Min(1, speed/p.SpeedThreshold))
			decayed := math.Max(0, speed-eff*p.TimeStep)
			vel = vel.Scale(decayed / speed)
		}

		pos = pos.Add(vel.Scale(p.TimeStep))
		elapsed += p.TimeStep

		if sp := vel.Length(); sp > maxSpeed {
			maxSpeed = sp
		}
	}

	disp := pos.Sub(start)
	return Result{
		Rest:        pos,
		ForwardFeet: disp.Dot(dirAim) * FeetPerUnit,
		LateralFeet: disp.Dot(dirAim.Perp()) * FeetPerUnit,
		MaxSpeed:    maxSpeed,
		Elapsed:     elapsed,
		Converged:   converged,
	}
}
