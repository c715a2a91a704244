package scan

import (
	"image"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var transformInput = pts(0, 0, 10, 0, 3, 4, -7, 12, 25, -13, 100, 99)

func TestTranslate(t *testing.T) {
	got := Translate(pts(1, 2, -3, 4), 5, -6)
	if d := cmp.Diff(pts(6, -4, 2, -2), got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	in := slices.Clone(transformInput)
	for _, d := range [][2]int{{0, 0}, {3, -8}, {-1000, 77}} {
		back := Translate(Translate(in, d[0], d[1]), -d[0], -d[1])
		if !slices.Equal(back, transformInput) {
			t.Errorf("translate by %v and back: %v", d, back)
		}
	}
	if !slices.Equal(in, transformInput) {
		t.Error("input was modified")
	}
}

func TestRotate(t *testing.T) {
	cases := []struct {
		in     []image.Point
		center image.Point
		angle  float64
		unit   AngleUnit
		want   []image.Point
	}{
		// clockwise on a raster with y pointing down
		{pts(10, 0), image.Pt(0, 0), 90, Degrees, pts(0, 10)},
		{pts(10, 0), image.Pt(0, 0), math.Pi / 2, Radians, pts(0, 10)},
		{pts(10, 0), image.Pt(0, 0), 180, Degrees, pts(-10, 0)},
		{pts(10, 0, 3, 4), image.Pt(1, 1), 30, Degrees, pts(9, 5, 1, 5)},
		{pts(5, 5), image.Pt(5, 5), 123, Degrees, pts(5, 5)},
	}
	for _, c := range cases {
		got := Rotate(c.in, c.center, c.angle, c.unit)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("rotate %v by %g: (-want +got):\n%s", c.in, c.angle, d)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	center := image.Pt(7, -3)
	for _, angle := range []float64{0, 15, 30, 45, 90, 137, 200, -75} {
		there := Rotate(transformInput, center, angle, Degrees)
		back := Rotate(there, center, -angle, Degrees)
		checkClose(t, transformInput, back, 1)
	}
}

func TestScale(t *testing.T) {
	got := Scale(pts(10, 0, 3, 4), image.Pt(1, 1), 1.5)
	// (2,3)*1.5 = (3,4.5), which rounds away from zero
	if d := cmp.Diff(pts(15, -1, 4, 6), got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	got = Scale(pts(4, 4, 8, 0), image.Pt(4, 4), 2)
	if d := cmp.Diff(pts(4, 4, 12, -4), got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	center := image.Pt(-4, 9)
	for _, s := range []float64{0.5, 1, 1.5, 2, 3.7} {
		there := Scale(transformInput, center, s)
		back := Scale(there, center, 1/s)
		checkClose(t, transformInput, back, 1)
	}
}

func checkClose(t *testing.T, want, got []image.Point, tol int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		d := got[i].Sub(want[i])
		if abs(d.X) > tol || abs(d.Y) > tol {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
