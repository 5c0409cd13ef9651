// Package config handles tool configuration loading and management.
package config

import (
	"time"

	"github.com/fairwaylabs/greenside/internal/hazard"
	"github.com/fairwaylabs/greenside/internal/physics"
	"github.com/fairwaylabs/greenside/internal/world"
	"github.com/fairwaylabs/greenside/pkg/course"
)

// Config holds all tool settings.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Carve    CarveConfig    `yaml:"carve"`
	Friction FrictionConfig `yaml:"friction"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PhysicsConfig holds roll-simulation settings.
type PhysicsConfig struct {
	TimeStep       time.Duration `yaml:"time_step"`
	Timeout        time.Duration `yaml:"timeout"`
	ArrestSpeed    float64       `yaml:"arrest_speed"`
	SpeedThreshold float64       `yaml:"speed_threshold"`
	ParallelEffect float64       `yaml:"parallel_effect"`
	PerpEffect     float64       `yaml:"perp_effect"`
}

// CarveConfig holds hazard-carving settings.
type CarveConfig struct {
	FloorFrac       float64 `yaml:"floor_frac"`
	FlashSteep      float64 `yaml:"flash_steep"`
	EntrySteep      float64 `yaml:"entry_steep"`
	LipFrac         float64 `yaml:"lip_frac"`
	LipHeight       float64 `yaml:"lip_height"`
	FloorNoiseAmp   float64 `yaml:"floor_noise_amp"`
	NoiseSeed       int64   `yaml:"noise_seed"`
	WaterDepth      float64 `yaml:"water_depth"`
	WaterTransition float64 `yaml:"water_transition"`
	Workers         int     `yaml:"workers"`
}

// FrictionConfig holds per-surface deceleration rates in yards per
// second squared.
type FrictionConfig struct {
	Green      float64 `yaml:"green"`
	Tee        float64 `yaml:"tee"`
	Fairway    float64 `yaml:"fairway"`
	Rough      float64 `yaml:"rough"`
	Bunker     float64 `yaml:"bunker"`
	Water      float64 `yaml:"water"`
	OutOfBound float64 `yaml:"out_of_bounds"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	pp := physics.DefaultParams()
	cp := hazard.DefaultParams()
	ft := world.DefaultFrictionTable()
	return &Config{
		Physics: PhysicsConfig{
			TimeStep:       time.Duration(pp.TimeStep * float64(time.Second)),
			Timeout:        time.Duration(pp.Timeout * float64(time.Second)),
			ArrestSpeed:    pp.ArrestSpeed,
			SpeedThreshold: pp.SpeedThreshold,
			ParallelEffect: pp.ParallelEffect,
			PerpEffect:     pp.PerpEffect,
		},
		Carve: CarveConfig{
			FloorFrac:       cp.FloorFrac,
			FlashSteep:      cp.FlashSteep,
			EntrySteep:      cp.EntrySteep,
			LipFrac:         cp.LipFrac,
			LipHeight:       cp.LipHeight,
			FloorNoiseAmp:   cp.FloorNoiseAmp,
			NoiseSeed:       cp.NoiseSeed,
			WaterDepth:      cp.WaterDepth,
			WaterTransition: cp.WaterTransition,
			Workers:         cp.Workers,
		},
		Friction: FrictionConfig{
			Green:      ft[course.Green],
			Tee:        ft[course.Tee],
			Fairway:    ft[course.Fairway],
			Rough:      ft[course.Rough],
			Bunker:     ft[course.Bunker],
			Water:      ft[course.Water],
			OutOfBound: ft[course.OutOfBounds],
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// PhysicsParams converts the config section into simulator parameters.
func (c *Config) PhysicsParams() physics.Params {
	return physics.Params{
		TimeStep:       c.Physics.TimeStep.Seconds(),
		Timeout:        c.Physics.Timeout.Seconds(),
		ArrestSpeed:    c.Physics.ArrestSpeed,
		SpeedThreshold: c.Physics.SpeedThreshold,
		ParallelEffect: c.Physics.ParallelEffect,
		PerpEffect:     c.Physics.PerpEffect,
	}
}

// CarveParams converts the config section into carver parameters.
func (c *Config) CarveParams() hazard.Params {
	return hazard.Params{
		FloorFrac:       c.Carve.FloorFrac,
		FlashSteep:      c.Carve.FlashSteep,
		EntrySteep:      c.Carve.EntrySteep,
		LipFrac:         c.Carve.LipFrac,
		LipHeight:       c.Carve.LipHeight,
		FloorNoiseAmp:   c.Carve.FloorNoiseAmp,
		NoiseSeed:       c.Carve.NoiseSeed,
		WaterDepth:      c.Carve.WaterDepth,
		WaterTransition: c.Carve.WaterTransition,
		Workers:         c.Carve.Workers,
	}
}

// FrictionTable converts the config section into surface frictions.
func (c *Config) FrictionTable() world.FrictionTable {
	return world.FrictionTable{
		course.Green:       c.Friction.Green,
		course.Tee:         c.Friction.Tee,
		course.Fairway:     c.Friction.Fairway,
		course.Rough:       c.Friction.Rough,
		course.Bunker:      c.Friction.Bunker,
		course.Water:       c.Friction.Water,
		course.OutOfBounds: c.Friction.OutOfBound,
	}
}
