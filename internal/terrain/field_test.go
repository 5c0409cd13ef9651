package terrain

import (
	"math"
	"testing"

	"github.com/fairwaylabs/greenside/pkg/course"
)

func testBounds() course.Bounds {
	return course.Bounds{MinX: 0, MaxX: 40, MinY: 0, MaxY: 20}
}

// rampField builds a field with elevation = 0.5*x + 0.25*y at each node.
func rampField(t *testing.T) *Field {
	t.Helper()
	f, err := New(testBounds(), 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			x, y := f.NodePos(col, row)
			f.Set(col, row, 0.5*x+0.25*y)
		}
	}
	return f
}

func TestNewDims(t *testing.T) {
	f, err := New(testBounds(), 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// 40/2 = 20 spans -> 21 cols; 20/2 = 10 spans -> 11 rows.
	if f.Cols() != 21 || f.Rows() != 11 {
		t.Errorf("dims = (%d, %d), want (21, 11)", f.Cols(), f.Rows())
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(course.Bounds{MinX: 0, MaxX: 0, MinY: 0, MaxY: 10}, 1); err == nil {
		t.Error("expected bounds error")
	}
	if _, err := New(testBounds(), 0); err == nil {
		t.Error("expected cell size error")
	}
}

func TestSampleExactOnLinearRamp(t *testing.T) {
	f := rampField(t)
	// Bilinear interpolation reproduces a linear surface exactly.
	pts := [][2]float64{{0, 0}, {7.3, 4.1}, {20, 10}, {39.99, 19.99}, {1.5, 18.5}}
	for _, p := range pts {
		want := 0.5*p[0] + 0.25*p[1]
		got := f.Sample(p[0], p[1])
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Sample(%v, %v) = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestSampleContinuity(t *testing.T) {
	f := rampField(t)
	f.Paint(20, 10, 4, 3) // add a bump so the surface is not globally linear

	// Step across a grid cell boundary (x=22 is a node line) in small
	// increments; neighbouring samples must stay close.
	const eps = 1e-4
	for x := 21.9; x < 22.1; x += eps {
		a := f.Sample(x, 9.5)
		b := f.Sample(x+eps, 9.5)
		if math.Abs(a-b) > 1e-2 {
			t.Fatalf("discontinuity at x=%v: %v vs %v", x, a, b)
		}
	}
}

func TestSampleClampsOutOfBounds(t *testing.T) {
	f := rampField(t)
	inside := f.Sample(0, 0)
	outside := f.Sample(-100, -100)
	if math.Abs(inside-outside) > 1e-9 {
		t.Errorf("out-of-bounds sample = %v, want clamped %v", outside, inside)
	}
	far := f.Sample(1e6, 1e6)
	corner := f.Sample(40, 20)
	if math.Abs(far-corner) > 1e-9 {
		t.Errorf("far sample = %v, want clamped corner %v", far, corner)
	}
}

func TestResizePreservesData(t *testing.T) {
	f := rampField(t)
	before := map[[2]float64]float64{}
	pts := [][2]float64{{0, 0}, {5.5, 3.2}, {20, 10}, {39, 19}, {12.7, 0.1}}
	for _, p := range pts {
		before[p] = f.Sample(p[0], p[1])
	}

	f.Resize(course.Bounds{MinX: -10, MaxX: 60, MinY: -6, MaxY: 30})

	if !(f.Bounds().MinX <= -10 && f.Bounds().MaxX >= 60) {
		t.Fatalf("bounds did not grow: %+v", f.Bounds())
	}
	for _, p := range pts {
		got := f.Sample(p[0], p[1])
		if math.Abs(got-before[p]) > 1e-9 {
			t.Errorf("Sample(%v, %v) after resize = %v, want %v", p[0], p[1], got, before[p])
		}
	}
	// Newly exposed area starts at zero.
	if got := f.At(0, 0); got != 0 {
		t.Errorf("new corner node = %v, want 0", got)
	}
}

func TestResizeNoShrink(t *testing.T) {
	f := rampField(t)
	cols, rows := f.Cols(), f.Rows()
	f.Resize(course.Bounds{MinX: 10, MaxX: 20, MinY: 5, MaxY: 10})
	if f.Cols() != cols || f.Rows() != rows {
		t.Errorf("smaller bounds should not shrink the grid: (%d, %d) -> (%d, %d)",
			cols, rows, f.Cols(), f.Rows())
	}
}

func TestFromCourseRoundTrip(t *testing.T) {
	f := rampField(t)
	c := &course.Course{
		Bounds:    f.Bounds(),
		CellSize:  f.CellSize(),
		Elevation: f.Grid(),
	}

	restored, err := FromCourse(c)
	if err != nil {
		t.Fatalf("FromCourse() error: %v", err)
	}
	for _, p := range [][2]float64{{0, 0}, {13.4, 7.7}, {40, 20}} {
		want := f.Sample(p[0], p[1])
		got := restored.Sample(p[0], p[1])
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("restored Sample(%v, %v) = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestFromCourseBadGrid(t *testing.T) {
	c := &course.Course{
		Bounds:    testBounds(),
		CellSize:  2,
		Elevation: [][]float64{{1, 2}},
	}
	if _, err := FromCourse(c); err == nil {
		t.Error("expected grid shape error")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := rampField(t)
	c := f.Clone()
	f.Set(3, 3, 999)
	if c.At(3, 3) == 999 {
		t.Error("clone shares storage with original")
	}
}
