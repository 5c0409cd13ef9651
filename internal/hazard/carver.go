// Package hazard bakes bunker depressions and water basins into an
// elevation field. Carving happens once per course load; afterwards the
// field is read-only for physics and presentation.
package hazard

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/course"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

// Params tunes the carve profiles. Zero values are replaced by defaults.
type Params struct {
	// Bunker profile.
	FloorFrac     float64 // normalized radius of the flat floor, default 0.45
	FlashSteep    float64 // wall exponent on the flash-face side, default 0.15
	EntrySteep    float64 // wall exponent on the entry side, default 2.5
	LipFrac       float64 // lip band width as fraction of avg radius, default 0.35
	LipHeight     float64 // base lip amplitude in world units, default 0.3
	FloorNoiseAmp float64 // floor perturbation amplitude, default 0.2
	NoiseSeed     int64

	// Water profile.
	WaterDepth      float64 // basin depth below water level, default 1.5
	WaterTransition float64 // shore blend distance in world units, default 6.0

	// Workers caps concurrent per-hazard carves; default 4.
	Workers int
}

// DefaultParams returns the standard carve tuning.
func DefaultParams() Params {
	return Params{
		FloorFrac:       0.45,
		FlashSteep:      0.15,
		EntrySteep:      2.5,
		LipFrac:         0.35,
		LipHeight:       0.3,
		FloorNoiseAmp:   0.2,
		NoiseSeed:       1,
		WaterDepth:      1.5,
		WaterTransition: 6.0,
		Workers:         4,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.FloorFrac <= 0 || p.FloorFrac >= 1 {
		p.FloorFrac = d.FloorFrac
	}
	if p.FlashSteep <= 0 {
		p.FlashSteep = d.FlashSteep
	}
	if p.EntrySteep <= 0 {
		p.EntrySteep = d.EntrySteep
	}
	if p.LipFrac <= 0 {
		p.LipFrac = d.LipFrac
	}
	if p.LipHeight <= 0 {
		p.LipHeight = d.LipHeight
	}
	if p.FloorNoiseAmp < 0 {
		p.FloorNoiseAmp = d.FloorNoiseAmp
	}
	if p.WaterDepth <= 0 {
		p.WaterDepth = d.WaterDepth
	}
	if p.WaterTransition <= 0 {
		p.WaterTransition = d.WaterTransition
	}
	if p.Workers <= 0 {
		p.Workers = d.Workers
	}
	return p
}

// Carver stamps hazard depressions into an elevation field.
type Carver struct {
	params Params
	noise  terrain.Noise
	log    *zap.Logger
}

// NewCarver creates a carver. A nil logger disables logging.
func NewCarver(params Params, log *zap.Logger) *Carver {
	if log == nil {
		log = zap.NewNop()
	}
	p := params.withDefaults()
	return &Carver{
		params: p,
		noise:  terrain.Noise{Seed: p.NoiseSeed, Freq: 0.8},
		log:    log,
	}
}

// patch is one hazard's contribution: elevation deltas relative to the
// shared pre-carve snapshot, over a node index window.
type patch struct {
	minCol, minRow int
	cols, rows     int
	delta          []float64
}

// Apply carves every bunker and water zone into the field. tee and green
// are the course anchors that orient each bunker's flash face.
//
// Each hazard's deltas are computed in parallel against an immutable
// snapshot of the field, then applied additively in zone insertion order;
// overlapping transition bands therefore combine deterministically
// instead of last-writer-wins. Malformed hazards are skipped with a
// warning, never aborting the pass.
func (cv *Carver) Apply(ctx context.Context, f *terrain.Field, zones []course.Zone, tee, green geom.Vec2) error {
	snap := f.Clone()

	patches := make([]*patch, len(zones))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cv.params.Workers)

	for i := range zones {
		if !zones[i].Type.IsHazard() {
			continue
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			z := &zones[i]
			shape, err := z.Shape()
			if err != nil {
				cv.log.Warn("skipping hazard with bad geometry",
					zap.Int("zone", i),
					zap.String("type", z.Type.String()),
					zap.Error(err))
				return nil
			}
			switch z.Type {
			case course.Bunker:
				patches[i] = cv.carveBunker(snap, shape, z.BunkerDepth(), tee, green)
			case course.Water:
				patches[i] = cv.carveWater(snap, shape)
			}
			if patches[i] == nil {
				cv.log.Warn("skipping degenerate hazard",
					zap.Int("zone", i),
					zap.String("type", z.Type.String()))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	applied := 0
	for _, p := range patches {
		if p == nil {
			continue
		}
		for r := 0; r < p.rows; r++ {
			for c := 0; c < p.cols; c++ {
				if d := p.delta[r*p.cols+c]; d != 0 {
					f.Add(p.minCol+c, p.minRow+r, d)
				}
			}
		}
		applied++
	}
	cv.log.Debug("hazard carve complete", zap.Int("applied", applied))
	return nil
}

// nodeWindow converts a world-space box, expanded by margin, into the
// inclusive node index window of the field.
func nodeWindow(f *terrain.Field, min, max geom.Vec2, margin float64) (minCol, minRow, maxCol, maxRow int, ok bool) {
	fx0, fy0 := f.WorldToGrid(min.X-margin, min.Y-margin)
	fx1, fy1 := f.WorldToGrid(max.X+margin, max.Y+margin)

	minCol = clampInt(int(math.Floor(fx0)), 0, f.Cols()-1)
	minRow = clampInt(int(math.Floor(fy0)), 0, f.Rows()-1)
	maxCol = clampInt(int(math.Ceil(fx1)), 0, f.Cols()-1)
	maxRow = clampInt(int(math.Ceil(fy1)), 0, f.Rows()-1)
	ok = maxCol >= minCol && maxRow >= minRow
	return minCol, minRow, maxCol, maxRow, ok
}

func newPatch(minCol, minRow, maxCol, maxRow int) *patch {
	cols := maxCol - minCol + 1
	rows := maxRow - minRow + 1
	return &patch{
		minCol: minCol,
		minRow: minRow,
		cols:   cols,
		rows:   rows,
		delta:  make([]float64, cols*rows),
	}
}

func (p *patch) set(col, row int, d float64) {
	p.delta[(row-p.minRow)*p.cols+(col-p.minCol)] = d
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
