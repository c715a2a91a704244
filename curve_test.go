package scan

import (
	"image"
	"math"
	"testing"
)

func TestBezierStraight(t *testing.T) {
	p0, p1 := image.Pt(0, 0), image.Pt(10, 0)
	got := BezierCurve([]image.Point{p0, p1})

	// end points plus 999 samples at u = 0.001, ..., 0.999
	if len(got) != 1001 {
		t.Fatalf("got %d pixels, want 1001", len(got))
	}
	if got[0] != p0 || got[len(got)-1] != p1 {
		t.Errorf("end points %v, %v; want %v, %v", got[0], got[len(got)-1], p0, p1)
	}
	for i, p := range got {
		if p.Y != 0 {
			t.Errorf("pixel %d: %v is off the segment", i, p)
		}
		if i > 0 && p.X < got[i-1].X {
			t.Errorf("pixel %d: %v goes backwards", i, p)
		}
	}
}

func TestBezierDiagonal(t *testing.T) {
	p0, p1 := image.Pt(-20, 5), image.Pt(40, 35)
	got := BezierCurve([]image.Point{p0, p1})
	for i, p := range got {
		// distance from the line through p0 and p1, times its length
		d := (p.X-p0.X)*(p1.Y-p0.Y) - (p.Y-p0.Y)*(p1.X-p0.X)
		length := math.Hypot(60, 30)
		if math.Abs(float64(d))/length > 1 {
			t.Errorf("pixel %d: %v is off the segment", i, p)
		}
	}
}

// TestBezierCubic compares the de Casteljau evaluation to the Bernstein
// form of a cubic curve.
func TestBezierCubic(t *testing.T) {
	ctrl := pts(0, 0, 30, 90, 60, -40, 100, 20)
	got := BezierCurve(ctrl)
	if len(got) != 1001 {
		t.Fatalf("got %d pixels, want 1001", len(got))
	}
	if got[0] != ctrl[0] || got[1000] != ctrl[3] {
		t.Errorf("end points %v, %v", got[0], got[1000])
	}

	u := 0.0
	for i := 1; i < 1000; i++ {
		u += curveStep
		v := 1 - u
		b := [4]float64{v * v * v, 3 * v * v * u, 3 * v * u * u, u * u * u}
		var x, y float64
		for j, c := range ctrl {
			x += b[j] * float64(c.X)
			y += b[j] * float64(c.Y)
		}
		if math.Abs(float64(got[i].X)-x) > 0.5+1e-9 || math.Abs(float64(got[i].Y)-y) > 0.5+1e-9 {
			t.Errorf("sample %d: got %v, want (%.3f, %.3f)", i, got[i], x, y)
		}
	}
}

func TestBezierTooFew(t *testing.T) {
	if got := BezierCurve(pts(3, 4)); len(got) != 0 {
		t.Errorf("one control point: got %d pixels", len(got))
	}
}

func TestBSplineFourPoints(t *testing.T) {
	ctrl := pts(0, 0, 10, 0, 10, 10, 0, 10)
	got := BSplineCurve(ctrl)
	if len(got) == 0 {
		t.Fatal("no pixels")
	}
	if len(got) != 1001 {
		t.Errorf("got %d pixels, want 1001", len(got))
	}

	// A uniform cubic B-spline segment starts at (P0+4P1+P2)/6 and ends at
	// (P1+4P2+P3)/6, not at the first and last control points.
	if want := image.Pt(8, 2); got[0] != want {
		t.Errorf("first pixel %v, want %v", got[0], want)
	}
	if want := image.Pt(8, 8); got[len(got)-1] != want {
		t.Errorf("last pixel %v, want %v", got[len(got)-1], want)
	}
	if got[0] == ctrl[0] || got[len(got)-1] == ctrl[3] {
		t.Error("B-spline passes through the end control points")
	}
}

func TestBSplineTooFew(t *testing.T) {
	for n := range 4 {
		ctrl := make([]image.Point, n)
		if got := BSplineCurve(ctrl); len(got) != 0 {
			t.Errorf("%d control points: got %d pixels, want 0", n, len(got))
		}
	}
}

// TestCoxDeBoor compares the triangular table with the recursive
// definition of the basis functions.
func TestCoxDeBoor(t *testing.T) {
	var rec func(i, k int, u float64) float64
	rec = func(i, k int, u float64) float64 {
		if k == 1 {
			if float64(i) <= u && u < float64(i+1) {
				return 1
			}
			return 0
		}
		return (u-float64(i))/float64(k-1)*rec(i, k-1, u) +
			(float64(i+k)-u)/float64(k-1)*rec(i+1, k-1, u)
	}

	const n = 7
	basis := make([]float64, n+bsplineOrder-1)
	for _, u := range []float64{3, 3.001, 3.5, 4, 4.25, 5.999, 6.5, 6.999} {
		coxDeBoor(basis, bsplineOrder, u)
		sum := 0.0
		for i := range n {
			want := rec(i, bsplineOrder, u)
			if basis[i] != want {
				t.Errorf("N_{%d,4}(%g) = %g, want %g", i, u, basis[i], want)
			}
			sum += basis[i]
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("basis at %g sums to %g", u, sum)
		}
	}
}

// TestBSplineSegments checks that the curve for more control points joins
// up: every sample is close to its predecessor.
func TestBSplineSegments(t *testing.T) {
	ctrl := pts(0, 0, 10, 0, 10, 10, 0, 10, 0, 20, 30, 25)
	got := BSplineCurve(ctrl)
	if len(got) < 3000 {
		t.Fatalf("got %d pixels, want at least 3000", len(got))
	}
	checkConnected(t, got)
}

func TestDrawCurve(t *testing.T) {
	ctrl := pts(0, 0, 5, 9, 10, 0, 15, 9)
	if got, want := len(DrawCurve(ctrl, Bezier)), len(BezierCurve(ctrl)); got != want {
		t.Errorf("Bezier: %d pixels, want %d", got, want)
	}
	if got, want := len(DrawCurve(ctrl, BSpline)), len(BSplineCurve(ctrl)); got != want {
		t.Errorf("B-spline: %d pixels, want %d", got, want)
	}
	if got := DrawCurve(ctrl, 0); got != nil {
		t.Errorf("unknown algorithm: got %d pixels", len(got))
	}
}
