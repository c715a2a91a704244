// seehuhn.de/go/scan - integer scan conversion for 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scan

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"seehuhn.de/go/geom/rect"
)

var (
	// ErrTooFewPoints is returned when a primitive is constructed from
	// fewer control points than its kind and algorithm need.
	ErrTooFewPoints = errors.New("too few points")

	// ErrEllipseRotation is returned when an ellipse is rotated.  Ellipses
	// are stored as the corners of an axis-aligned bounding box, which
	// cannot represent a rotated ellipse.
	ErrEllipseRotation = errors.New("ellipses cannot be rotated")

	// ErrNotClippable is returned when a primitive other than a line is
	// clipped.
	ErrNotClippable = errors.New("only lines can be clipped")
)

// Kind identifies the type of a primitive.
type Kind int

const (
	KindLine Kind = iota + 1
	KindPolygon
	KindEllipse
	KindCurve
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindEllipse:
		return "ellipse"
	case KindCurve:
		return "curve"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is a shape which can be converted to pixels.
//
// The implementations are *[Line], *[Polygon], *[Ellipse] and *[Curve].
// Primitives are never modified after construction; the transformation
// functions in this package return new primitives.
type Primitive interface {
	// Kind returns the type of the primitive.
	Kind() Kind

	// Points returns a copy of the control points.
	Points() []image.Point

	// Pixels returns the pixels which make up the primitive.
	Pixels() []image.Point

	// withPoints returns a primitive of the same kind and algorithm,
	// using the given control points.
	withPoints(pts []image.Point) Primitive
}

// Line is a straight line segment.
type Line struct {
	P0, P1    image.Point
	Algorithm LineAlgorithm
}

// NewLine returns a new line segment from p0 to p1.
func NewLine(p0, p1 image.Point, alg LineAlgorithm) (*Line, error) {
	if _, ok := lineAlgorithmNames[alg]; !ok {
		return nil, fmt.Errorf("line: %s: %w", alg, ErrAlgorithm)
	}
	return &Line{P0: p0, P1: p1, Algorithm: alg}, nil
}

// Kind implements the [Primitive] interface.
func (l *Line) Kind() Kind { return KindLine }

// Points implements the [Primitive] interface.
func (l *Line) Points() []image.Point { return []image.Point{l.P0, l.P1} }

// Pixels implements the [Primitive] interface.
func (l *Line) Pixels() []image.Point { return DrawLine(l.P0, l.P1, l.Algorithm) }

func (l *Line) withPoints(pts []image.Point) Primitive {
	return &Line{P0: pts[0], P1: pts[1], Algorithm: l.Algorithm}
}

// Polygon is the closed outline through a list of vertices.
type Polygon struct {
	Vertices  []image.Point
	Algorithm LineAlgorithm
}

// NewPolygon returns a new polygon.  At least three vertices are needed,
// and the edges must be drawn using [DDA] or [Bresenham].
// The vertex slice is copied.
func NewPolygon(vertices []image.Point, alg LineAlgorithm) (*Polygon, error) {
	if !alg.validForPolygon() {
		return nil, fmt.Errorf("polygon: %s: %w", alg, ErrAlgorithm)
	}
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon with %d vertices: %w", len(vertices), ErrTooFewPoints)
	}
	return &Polygon{Vertices: slices.Clone(vertices), Algorithm: alg}, nil
}

// Kind implements the [Primitive] interface.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Points implements the [Primitive] interface.
func (p *Polygon) Points() []image.Point { return slices.Clone(p.Vertices) }

// Pixels implements the [Primitive] interface.
func (p *Polygon) Pixels() []image.Point { return DrawPolygon(p.Vertices, p.Algorithm) }

func (p *Polygon) withPoints(pts []image.Point) Primitive {
	return &Polygon{Vertices: pts, Algorithm: p.Algorithm}
}

// Ellipse is an axis-aligned ellipse, given by two opposite corners of its
// bounding box.
type Ellipse struct {
	C0, C1 image.Point
}

// NewEllipse returns the ellipse inscribed in the box with corners c0 and c1.
func NewEllipse(c0, c1 image.Point) *Ellipse {
	return &Ellipse{C0: c0, C1: c1}
}

// Kind implements the [Primitive] interface.
func (e *Ellipse) Kind() Kind { return KindEllipse }

// Points implements the [Primitive] interface.
func (e *Ellipse) Points() []image.Point { return []image.Point{e.C0, e.C1} }

// Pixels implements the [Primitive] interface.
func (e *Ellipse) Pixels() []image.Point { return DrawEllipse(e.C0, e.C1) }

func (e *Ellipse) withPoints(pts []image.Point) Primitive {
	return &Ellipse{C0: pts[0], C1: pts[1]}
}

// Curve is a parametric curve, given by its control points.
type Curve struct {
	Controls  []image.Point
	Algorithm CurveAlgorithm
}

// NewCurve returns a new curve.  Bézier curves need at least two control
// points, B-splines at least four.  The control point slice is copied.
func NewCurve(controls []image.Point, alg CurveAlgorithm) (*Curve, error) {
	if alg != Bezier && alg != BSpline {
		return nil, fmt.Errorf("curve: %s: %w", alg, ErrAlgorithm)
	}
	if need := alg.minControls(); len(controls) < need {
		return nil, fmt.Errorf("%s curve with %d control points (need %d): %w",
			alg, len(controls), need, ErrTooFewPoints)
	}
	return &Curve{Controls: slices.Clone(controls), Algorithm: alg}, nil
}

// Kind implements the [Primitive] interface.
func (c *Curve) Kind() Kind { return KindCurve }

// Points implements the [Primitive] interface.
func (c *Curve) Points() []image.Point { return slices.Clone(c.Controls) }

// Pixels implements the [Primitive] interface.
func (c *Curve) Pixels() []image.Point { return DrawCurve(c.Controls, c.Algorithm) }

func (c *Curve) withPoints(pts []image.Point) Primitive {
	return &Curve{Controls: pts, Algorithm: c.Algorithm}
}

// Bounds returns the bounding box of the control points of p, grown by one
// pixel on every side.  For an ellipse this is the box given by its two
// corners.
func Bounds(p Primitive) rect.Rect {
	pts := p.Points()
	if len(pts) == 0 {
		return rect.Rect{}
	}
	xMin, yMin := pts[0].X, pts[0].Y
	xMax, yMax := xMin, yMin
	for _, pt := range pts[1:] {
		xMin = min(xMin, pt.X)
		xMax = max(xMax, pt.X)
		yMin = min(yMin, pt.Y)
		yMax = max(yMax, pt.Y)
	}
	return rect.Rect{
		LLx: float64(xMin - 1),
		LLy: float64(yMin - 1),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}
}

// TranslatePrimitive returns a copy of p, shifted by (dx, dy).
func TranslatePrimitive(p Primitive, dx, dy int) Primitive {
	return p.withPoints(Translate(p.Points(), dx, dy))
}

// RotatePrimitive returns a copy of p, rotated about center.
// See [Rotate] for the meaning of the angle.  Ellipses cannot be rotated.
func RotatePrimitive(p Primitive, center image.Point, angle float64, unit AngleUnit) (Primitive, error) {
	if p.Kind() == KindEllipse {
		return nil, ErrEllipseRotation
	}
	return p.withPoints(Rotate(p.Points(), center, angle, unit)), nil
}

// ScalePrimitive returns a copy of p, scaled about center.
func ScalePrimitive(p Primitive, center image.Point, factor float64) Primitive {
	return p.withPoints(Scale(p.Points(), center, factor))
}

// ClipPrimitive clips a line to the given window, see [Clip].  If the line
// lies entirely outside the window, the result is nil and ok is false.
// Other kinds of primitive cannot be clipped.
func ClipPrimitive(p Primitive, window rect.Rect, alg ClipAlgorithm) (res Primitive, ok bool, err error) {
	l, isLine := p.(*Line)
	if !isLine {
		return nil, false, fmt.Errorf("%s: %w", p.Kind(), ErrNotClippable)
	}
	if alg != CohenSutherland && alg != LiangBarsky {
		return nil, false, fmt.Errorf("clip: %s: %w", alg, ErrAlgorithm)
	}
	q0, q1, ok := Clip(l.P0, l.P1, window, alg)
	if !ok {
		return nil, false, nil
	}
	return &Line{P0: q0, P1: q1, Algorithm: l.Algorithm}, true, nil
}
