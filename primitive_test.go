package scan

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func TestParseAlgorithms(t *testing.T) {
	for _, alg := range lineAlgorithms {
		got, err := ParseLineAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseLineAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
	}
	for _, alg := range []CurveAlgorithm{Bezier, BSpline} {
		got, err := ParseCurveAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseCurveAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
	}
	for _, alg := range clipAlgorithms {
		got, err := ParseClipAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseClipAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
	}

	if _, err := ParseLineAlgorithm("bresenham"); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("lower case line algorithm: got %v", err)
	}
	if _, err := ParseCurveAlgorithm("Bspline"); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("misspelled curve algorithm: got %v", err)
	}
	if _, err := ParseClipAlgorithm(""); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("empty clip algorithm: got %v", err)
	}
}

func TestConstructors(t *testing.T) {
	if _, err := NewLine(image.Pt(0, 0), image.Pt(1, 1), 0); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("line without algorithm: got %v", err)
	}
	if _, err := NewPolygon(pts(0, 0, 5, 0, 0, 5), Naive); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("polygon with naive edges: got %v", err)
	}
	if _, err := NewPolygon(pts(0, 0, 5, 0), DDA); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("polygon with two vertices: got %v", err)
	}
	if _, err := NewCurve(pts(0, 0, 5, 0, 9, 9), BSpline); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("B-spline with three control points: got %v", err)
	}
	if _, err := NewCurve(pts(0, 0), Bezier); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("Bezier with one control point: got %v", err)
	}
	if _, err := NewCurve(pts(0, 0, 1, 1), CurveAlgorithm(7)); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("unknown curve algorithm: got %v", err)
	}

	vertices := pts(0, 0, 5, 0, 0, 5)
	p, err := NewPolygon(vertices, Bresenham)
	if err != nil {
		t.Fatal(err)
	}
	vertices[0] = image.Pt(99, 99)
	if p.Vertices[0] != image.Pt(0, 0) {
		t.Error("polygon shares the caller's vertex slice")
	}
}

func TestPrimitivePixels(t *testing.T) {
	line, _ := NewLine(image.Pt(0, 0), image.Pt(3, 3), Bresenham)
	poly, _ := NewPolygon(pts(0, 0, 3, 0, 0, 3), DDA)
	curve, _ := NewCurve(pts(0, 0, 10, 0, 10, 10, 0, 10), BSpline)
	ell := NewEllipse(image.Pt(-2, -2), image.Pt(2, 2))

	cases := []struct {
		p    Primitive
		kind Kind
		want []image.Point
	}{
		{line, KindLine, DrawLine(image.Pt(0, 0), image.Pt(3, 3), Bresenham)},
		{poly, KindPolygon, DrawPolygon(pts(0, 0, 3, 0, 0, 3), DDA)},
		{curve, KindCurve, BSplineCurve(pts(0, 0, 10, 0, 10, 10, 0, 10))},
		{ell, KindEllipse, DrawEllipse(image.Pt(-2, -2), image.Pt(2, 2))},
	}
	for _, c := range cases {
		if c.p.Kind() != c.kind {
			t.Errorf("%s: wrong kind %s", c.kind, c.p.Kind())
		}
		if d := cmp.Diff(c.want, c.p.Pixels()); d != "" {
			t.Errorf("%s: unexpected pixels (-want +got):\n%s", c.kind, d)
		}
	}
}

func TestPrimitiveTransforms(t *testing.T) {
	poly, _ := NewPolygon(pts(0, 0, 10, 0, 10, 5), Bresenham)

	moved := TranslatePrimitive(poly, 3, 4)
	if d := cmp.Diff(pts(3, 4, 13, 4, 13, 9), moved.Points()); d != "" {
		t.Errorf("translate (-want +got):\n%s", d)
	}
	if moved.(*Polygon).Algorithm != Bresenham {
		t.Error("translate lost the algorithm")
	}
	if !slices.Equal(poly.Vertices, pts(0, 0, 10, 0, 10, 5)) {
		t.Error("translate modified its input")
	}

	turned, err := RotatePrimitive(poly, image.Pt(0, 0), 90, Degrees)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(pts(0, 0, 0, 10, -5, 10), turned.Points()); d != "" {
		t.Errorf("rotate (-want +got):\n%s", d)
	}

	scaled := ScalePrimitive(poly, image.Pt(0, 0), 2)
	if d := cmp.Diff(pts(0, 0, 20, 0, 20, 10), scaled.Points()); d != "" {
		t.Errorf("scale (-want +got):\n%s", d)
	}

	ell := NewEllipse(image.Pt(0, 0), image.Pt(10, 4))
	if _, err := RotatePrimitive(ell, image.Pt(0, 0), 45, Degrees); !errors.Is(err, ErrEllipseRotation) {
		t.Errorf("rotating an ellipse: got %v", err)
	}
	if got := ScalePrimitive(ell, image.Pt(0, 0), 2).Points(); !slices.Equal(got, pts(0, 0, 20, 8)) {
		t.Errorf("scaled ellipse: %v", got)
	}
}

func TestClipPrimitive(t *testing.T) {
	window := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	line, _ := NewLine(image.Pt(-5, 5), image.Pt(15, 5), DDA)

	for _, alg := range clipAlgorithms {
		res, ok, err := ClipPrimitive(line, window, alg)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%t, err=%v", alg, ok, err)
		}
		want := &Line{P0: image.Pt(0, 5), P1: image.Pt(10, 5), Algorithm: DDA}
		if d := cmp.Diff(want, res); d != "" {
			t.Errorf("%s: (-want +got):\n%s", alg, d)
		}
	}

	outside, _ := NewLine(image.Pt(-5, -5), image.Pt(-1, 20), Bresenham)
	res, ok, err := ClipPrimitive(outside, window, LiangBarsky)
	if err != nil || ok || res != nil {
		t.Errorf("outside line: %v, %t, %v", res, ok, err)
	}

	poly, _ := NewPolygon(pts(0, 0, 10, 0, 10, 5), Bresenham)
	if _, _, err := ClipPrimitive(poly, window, CohenSutherland); !errors.Is(err, ErrNotClippable) {
		t.Errorf("clipping a polygon: got %v", err)
	}
	if _, _, err := ClipPrimitive(line, window, 0); !errors.Is(err, ErrAlgorithm) {
		t.Errorf("unknown clip algorithm: got %v", err)
	}
}

func TestBounds(t *testing.T) {
	curve, _ := NewCurve(pts(3, 4, -2, 8, 10, 1), Bezier)
	want := rect.Rect{LLx: -3, LLy: 0, URx: 11, URy: 9}
	if got := Bounds(curve); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOutline(t *testing.T) {
	poly, _ := NewPolygon(pts(0, 0, 4, 0, 4, 4), DDA)
	var cmds int
	for range Outline(poly).Iter() {
		cmds++
	}
	// MoveTo, two LineTo, Close
	if cmds != 4 {
		t.Errorf("polygon outline has %d commands, want 4", cmds)
	}

	ell := NewEllipse(image.Pt(0, 0), image.Pt(10, 6))
	cmds = 0
	for range Outline(ell).Iter() {
		cmds++
	}
	if cmds != 6 {
		t.Errorf("ellipse outline has %d commands, want 6", cmds)
	}
}
