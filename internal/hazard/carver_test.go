package hazard

import (
	"context"
	"math"
	"testing"

	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/course"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

var (
	testTee   = geom.Vec2{X: 10, Y: 25}
	testGreen = geom.Vec2{X: 90, Y: 25}
)

func newField(t *testing.T) *terrain.Field {
	t.Helper()
	f, err := terrain.New(course.Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 50}, 1)
	if err != nil {
		t.Fatalf("terrain.New() error: %v", err)
	}
	return f
}

func carve(t *testing.T, f *terrain.Field, zones []course.Zone) {
	t.Helper()
	cv := NewCarver(DefaultParams(), nil)
	if err := cv.Apply(context.Background(), f, zones, testTee, testGreen); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
}

func roundBunker(depth float64) course.Zone {
	return course.Zone{
		Type:    course.Bunker,
		Ellipse: &course.EllipseSpec{CenterX: 50, CenterY: 25, SemiX: 6, SemiY: 6},
		Depth:   depth,
	}
}

func TestBunkerFloorFlat(t *testing.T) {
	f := newField(t)
	carve(t, f, []course.Zone{roundBunker(5)})

	// The inner 40% of the radius must sit within a small band of -depth.
	// Sample on grid nodes so the check reads the floor itself rather
	// than bilinear blends with the first wall node.
	offsets := [][2]float64{
		{0, 0}, {2, 0}, {-2, 0}, {0, 2}, {0, -2},
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1}, {2, 1}, {-2, -1},
	}
	for _, o := range offsets {
		x, y := 50+o[0], 25+o[1]
		h := f.Sample(x, y)
		if math.Abs(h+5) > 0.5 {
			t.Errorf("floor at (%.1f, %.1f) = %v, want -5 +/- 0.5", x, y, h)
		}
	}
}

func TestBunkerFlashFaceTowardGreen(t *testing.T) {
	f := newField(t)
	carve(t, f, []course.Zone{roundBunker(5)})

	// The bunker sits between tee and green (equidistant resolves to the
	// green side), so the flash face points toward +x. At the same
	// normalized radius the flash wall must be much closer to the rim
	// than the gentle entry ramp.
	const r = 4.2 // t = 0.7 for radius 6
	flash := f.Sample(50+r, 25)
	entry := f.Sample(50-r, 25)
	if flash <= entry {
		t.Errorf("flash wall %v should be higher (steeper rise) than entry ramp %v", flash, entry)
	}
	if entry > -3 {
		t.Errorf("entry ramp at t=0.7 = %v, expected still deep (< -3)", entry)
	}
	if flash < -2 {
		t.Errorf("flash wall at t=0.7 = %v, expected near rim (> -2)", flash)
	}
}

func TestBunkerLip(t *testing.T) {
	f := newField(t)
	carve(t, f, []course.Zone{roundBunker(5)})

	// Lip band is 0.35*avgRadius = 2.1 wide; mid-band peaks.
	flashLip := f.Sample(50+6+1.05, 25)
	entryLip := f.Sample(50-6-1.05, 25)
	if flashLip <= 0 || entryLip <= 0 {
		t.Fatalf("lip should raise terrain: flash %v, entry %v", flashLip, entryLip)
	}
	if flashLip <= entryLip {
		t.Errorf("flash lip %v should be taller than entry lip %v", flashLip, entryLip)
	}
	if flashLip > 2.05*entryLip+0.15 {
		t.Errorf("flash lip %v should be at most ~2x entry lip %v", flashLip, entryLip)
	}

	// Beyond the lip band nothing changes.
	if h := f.Sample(70, 25); h != 0 {
		t.Errorf("terrain outside lip band = %v, want 0", h)
	}
}

func TestBunkerNoRimStep(t *testing.T) {
	f := newField(t)
	carve(t, f, []course.Zone{roundBunker(5)})

	// Walk across the rim; adjacent samples a half cell apart must not
	// jump more than a steep-but-finite wall allows.
	prev := f.Sample(42, 25)
	for x := 42.0; x <= 60; x += 0.5 {
		h := f.Sample(x, 25)
		if math.Abs(h-prev) > 2.5 {
			t.Fatalf("elevation step too large at x=%v: %v -> %v", x, prev, h)
		}
		prev = h
	}
}

func TestWaterLevelRule(t *testing.T) {
	f := newField(t)
	// Ramp rising toward +x so the boundary has varying elevation.
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			x, _ := f.NodePos(col, row)
			f.Set(col, row, 0.2*x)
		}
	}

	zone := course.Zone{
		Type:    course.Water,
		Polygon: [][2]float64{{40, 15}, {60, 15}, {60, 35}, {40, 35}},
	}
	carve(t, f, []course.Zone{zone})

	// Minimum boundary elevation is at x=40: level = 8.
	const level = 8.0
	for _, p := range [][2]float64{{45, 20}, {50, 25}, {58, 33}, {41, 16}} {
		h := f.Sample(p[0], p[1])
		if h > level {
			t.Errorf("inside water at %v = %v, want <= level %v", p, h, level)
		}
	}

	// Shore on the high side blends back to original but never dips
	// below the water level.
	for _, x := range []float64{61, 63, 65} {
		h := f.Sample(x, 25)
		if h < level {
			t.Errorf("shore at x=%v = %v, below water level %v", x, h, level)
		}
		if h > 0.2*x+1e-9 {
			t.Errorf("shore at x=%v = %v, above original %v", x, h, 0.2*x)
		}
	}

	// Beyond the transition distance the ramp is untouched.
	if h := f.Sample(70, 25); math.Abs(h-14) > 1e-9 {
		t.Errorf("terrain beyond transition = %v, want 14", h)
	}
}

func TestMalformedHazardSkipped(t *testing.T) {
	f := newField(t)
	zones := []course.Zone{
		{Type: course.Bunker, Polygon: [][2]float64{{10, 10}, {20, 20}}}, // 2 points
		{Type: course.Water}, // no shape
		{Type: course.Bunker, Ellipse: &course.EllipseSpec{CenterX: 30, CenterY: 30, SemiX: 0, SemiY: 4}},
	}
	carve(t, f, zones) // must not error

	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			if f.At(col, row) != 0 {
				t.Fatalf("malformed hazards mutated the field at (%d, %d)", col, row)
			}
		}
	}
}

func TestNonHazardZonesIgnored(t *testing.T) {
	f := newField(t)
	zones := []course.Zone{
		{Type: course.Green, Ellipse: &course.EllipseSpec{CenterX: 50, CenterY: 25, SemiX: 8, SemiY: 8}},
		{Type: course.Fairway, Rect: &course.RectSpec{MinX: 0, MaxX: 100, MinY: 0, MaxY: 50}},
	}
	carve(t, f, zones)
	if h := f.Sample(50, 25); h != 0 {
		t.Errorf("non-hazard zones changed elevation: %v", h)
	}
}

func TestOverlappingHazardsDeterministic(t *testing.T) {
	zones := []course.Zone{
		roundBunker(5),
		{
			Type:    course.Bunker,
			Ellipse: &course.EllipseSpec{CenterX: 56, CenterY: 25, SemiX: 6, SemiY: 6},
			Depth:   4,
		},
	}

	a := newField(t)
	b := newField(t)
	carve(t, a, zones)
	carve(t, b, zones)

	for row := 0; row < a.Rows(); row++ {
		for col := 0; col < a.Cols(); col++ {
			if a.At(col, row) != b.At(col, row) {
				t.Fatalf("non-deterministic carve at (%d, %d): %v vs %v",
					col, row, a.At(col, row), b.At(col, row))
			}
		}
	}

	// Overlap region must reflect both contributions (deeper than either
	// bunker alone would carve at its floor edge they share).
	mid := a.Sample(53, 25)
	if mid >= -5 {
		t.Errorf("overlap at (53,25) = %v, want additive (< -5)", mid)
	}
}

func TestApplyCancelled(t *testing.T) {
	f := newField(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cv := NewCarver(DefaultParams(), nil)
	err := cv.Apply(ctx, f, []course.Zone{roundBunker(5)}, testTee, testGreen)
	if err == nil {
		t.Error("expected error from cancelled context")
	}
}
