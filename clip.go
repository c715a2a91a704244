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
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Clip clips the segment from p0 to p1 against the window.  The window
// uses raster conventions: LLx and LLy hold the minimum x and y, URx and
// URy the maximum.  The window coordinates are rounded to integers, and
// the window boundary belongs to the window.
//
// If some part of the segment lies inside the window, Clip returns the
// end points of that part, in the same order as p0 and p1, and ok is true.
// End points which have been moved onto the window boundary are rounded to
// the nearest integer, with halves rounded away from zero.  If the segment
// lies entirely outside the window, or if alg is not a known algorithm, ok
// is false.
//
// Intersections are computed in exact integer arithmetic, for coordinates
// up to 2^30 in absolute value.  Both algorithms give the same result.
func Clip(p0, p1 image.Point, window rect.Rect, alg ClipAlgorithm) (q0, q1 image.Point, ok bool) {
	w := clipWindow{
		xMin: int64(math.Round(window.LLx)),
		yMin: int64(math.Round(window.LLy)),
		xMax: int64(math.Round(window.URx)),
		yMax: int64(math.Round(window.URy)),
	}

	var a, b ratPoint
	switch alg {
	case CohenSutherland:
		a, b, ok = clipCohenSutherland(p0, p1, w)
	case LiangBarsky:
		a, b, ok = clipLiangBarsky(p0, p1, w)
	}
	if !ok {
		return image.Point{}, image.Point{}, false
	}
	return a.round(), b.round(), true
}

type clipWindow struct {
	xMin, yMin, xMax, yMax int64
}

// ratPoint is the point (x/d, y/d).  The denominator d is positive.
type ratPoint struct {
	x, y, d int64
}

func ratFromPoint(p image.Point) ratPoint {
	return ratPoint{x: int64(p.X), y: int64(p.Y), d: 1}
}

func (p ratPoint) round() image.Point {
	return image.Point{X: int(divRound(p.x, p.d)), Y: int(divRound(p.y, p.d))}
}

// divRound returns n/d rounded to the nearest integer, with halves
// rounded away from zero.  The denominator d must be positive.
func divRound(n, d int64) int64 {
	if n >= 0 {
		return (2*n + d) / (2 * d)
	}
	return -((-2*n + d) / (2 * d))
}

// Outcode bits, one for every half-plane outside the window.
const (
	outLeft  = 1 << iota // x < xmin
	outRight             // x > xmax
	outBelow             // y < ymin
	outAbove             // y > ymax
)

func outcode(p ratPoint, w clipWindow) int {
	code := 0
	if p.x < w.xMin*p.d {
		code |= outLeft
	} else if p.x > w.xMax*p.d {
		code |= outRight
	}
	if p.y < w.yMin*p.d {
		code |= outBelow
	} else if p.y > w.yMax*p.d {
		code |= outAbove
	}
	return code
}

// clipCohenSutherland repeatedly moves an outside end point onto the
// boundary line it violates, until both end points are inside or both lie
// beyond the same boundary.
func clipCohenSutherland(p0, p1 image.Point, w clipWindow) (ratPoint, ratPoint, bool) {
	a, b := ratFromPoint(p0), ratFromPoint(p1)
	codeA, codeB := outcode(a, w), outcode(b, w)
	for {
		if codeA|codeB == 0 {
			return a, b, true
		}
		if codeA&codeB != 0 {
			return ratPoint{}, ratPoint{}, false
		}

		if codeA != 0 {
			a = boundaryPoint(p0, p1, codeA, w)
			codeA = outcode(a, w)
		} else {
			b = boundaryPoint(p0, p1, codeB, w)
			codeB = outcode(b, w)
		}
	}
}

// boundaryPoint intersects the line through p0 and p1 with the boundary
// line corresponding to one of the bits set in code.  The intersection is
// always computed from the unclipped end points p0 and p1.
//
// The segment cannot be parallel to the chosen boundary: the other end
// point is not outside the same boundary, so the coordinate across the
// boundary changes along the segment.
func boundaryPoint(p0, p1 image.Point, code int, w clipWindow) ratPoint {
	x0, y0 := int64(p0.X), int64(p0.Y)
	dx, dy := int64(p1.X)-x0, int64(p1.Y)-y0
	switch {
	case code&outAbove != 0:
		return atY(x0, y0, dx, dy, w.yMax)
	case code&outBelow != 0:
		return atY(x0, y0, dx, dy, w.yMin)
	case code&outRight != 0:
		return atX(x0, y0, dx, dy, w.xMax)
	default: // outLeft
		return atX(x0, y0, dx, dy, w.xMin)
	}
}

// atY returns the point with height y on the line through (x0, y0) with
// direction (dx, dy).  The direction must have dy != 0.
func atY(x0, y0, dx, dy, y int64) ratPoint {
	d := dy
	xn := x0*dy + (y-y0)*dx
	if d < 0 {
		d, xn = -d, -xn
	}
	return ratPoint{x: xn, y: y * d, d: d}
}

// atX returns the point with x-coordinate x on the line through (x0, y0)
// with direction (dx, dy).  The direction must have dx != 0.
func atX(x0, y0, dx, dy, x int64) ratPoint {
	d := dx
	yn := y0*dx + (x-x0)*dy
	if d < 0 {
		d, yn = -d, -yn
	}
	return ratPoint{x: x * d, y: yn, d: d}
}

// frac is the fraction n/d, with d > 0.
type frac struct {
	n, d int64
}

func newFrac(n, d int64) frac {
	if d < 0 {
		n, d = -n, -d
	}
	return frac{n: n, d: d}
}

func (a frac) less(b frac) bool {
	return a.n*b.d < b.n*a.d
}

// clipLiangBarsky narrows the parameter interval [tEnter, tExit] of
// P(t) = p0 + t*(p1-p0) against the four half-planes of the window.
func clipLiangBarsky(p0, p1 image.Point, w clipWindow) (ratPoint, ratPoint, bool) {
	x0, y0 := int64(p0.X), int64(p0.Y)
	dx, dy := int64(p1.X)-x0, int64(p1.Y)-y0

	// p is the component of d along the outward normal of the boundary,
	// q the distance of p0 from the boundary, measured inwards.
	p := [4]int64{-dx, dx, -dy, dy}
	q := [4]int64{x0 - w.xMin, w.xMax - x0, y0 - w.yMin, w.yMax - y0}

	tEnter, tExit := frac{0, 1}, frac{1, 1}
	for i := range 4 {
		if p[i] == 0 {
			if q[i] < 0 {
				return ratPoint{}, ratPoint{}, false
			}
			continue
		}
		t := newFrac(q[i], p[i])
		if p[i] < 0 {
			if tEnter.less(t) {
				tEnter = t
			}
		} else if t.less(tExit) {
			tExit = t
		}
	}
	if tExit.less(tEnter) {
		return ratPoint{}, ratPoint{}, false
	}

	at := func(t frac) ratPoint {
		return ratPoint{x: x0*t.d + t.n*dx, y: y0*t.d + t.n*dy, d: t.d}
	}
	return at(tEnter), at(tExit), true
}
