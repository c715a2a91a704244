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

	"seehuhn.de/go/geom/vec"
)

const (
	// curveStep is the parameter increment used when sampling curves.
	curveStep = 0.001

	// bsplineOrder is the order k of the B-spline basis (cubic).
	bsplineOrder = 4
)

// DrawCurve converts a parametric curve, given by its control points, into a
// sequence of pixels.  An unknown algorithm gives an empty result.
func DrawCurve(controls []image.Point, alg CurveAlgorithm) []image.Point {
	switch alg {
	case Bezier:
		return BezierCurve(controls)
	case BSpline:
		return BSplineCurve(controls)
	default:
		return nil
	}
}

// BezierCurve samples the Bézier curve with the given control points at the
// parameter values 0.001, 0.002, ... below 1, using the de Casteljau
// algorithm, and rounds every sample to the nearest pixel.  The first and
// last control points are added unchanged at the start and the end.
//
// Consecutive samples often land on the same pixel; these are not merged.
// Fewer than two control points give an empty result.
func BezierCurve(controls []image.Point) []image.Point {
	n := len(controls)
	if n < 2 {
		return nil
	}

	res := make([]image.Point, 0, int(1/curveStep)+2)
	res = append(res, controls[0])

	work := make([]vec.Vec2, n)
	for u := curveStep; u < 1; u += curveStep {
		for i, p := range controls {
			work[i] = toVec(p)
		}
		for level := n - 1; level > 0; level-- {
			for j := range level {
				work[j] = work[j].Mul(1 - u).Add(work[j+1].Mul(u))
			}
		}
		res = append(res, roundVec(work[0]))
	}

	res = append(res, controls[n-1])
	return res
}

// BSplineCurve samples the uniform cubic B-spline with the given control
// points.  The knots are the integers 0, 1, 2, ..., and the curve parameter
// runs from 3 up to (but excluding) the number of control points in steps
// of 1/1000.  Every sample is rounded to the nearest pixel.
//
// The curve does not, in general, pass through the first or last control
// point.  Fewer than four control points give an empty result.
func BSplineCurve(controls []image.Point) []image.Point {
	n := len(controls)
	if n < bsplineOrder {
		return nil
	}

	end := float64(n)
	res := make([]image.Point, 0, (n-bsplineOrder+1)*int(1/curveStep)+1)

	basis := make([]float64, n+bsplineOrder-1)
	for u := float64(bsplineOrder - 1); u < end; u += curveStep {
		coxDeBoor(basis, bsplineOrder, u)

		var x, y float64
		for i, p := range controls {
			x += float64(p.X) * basis[i]
			y += float64(p.Y) * basis[i]
		}
		res = append(res, image.Point{X: int(math.Round(x)), Y: int(math.Round(y))})
	}
	return res
}

// coxDeBoor fills basis[i] with the value N_{i,k}(u) of the uniform
// B-spline basis function with integer knots, for all i with
// i+k <= len(basis).
//
// The table is filled one order at a time, starting from the piecewise
// constant functions N_{i,1}.  Every entry is computed with exactly the
// arithmetic of the recursive definition
//
//	N_{i,k}(u) = (u-i)/(k-1) * N_{i,k-1}(u) + (i+k-u)/(k-1) * N_{i+1,k-1}(u)
//
// so the results are bit-identical to the recursion.
func coxDeBoor(basis []float64, k int, u float64) {
	for i := range basis {
		fi := float64(i)
		if fi <= u && u < fi+1 {
			basis[i] = 1
		} else {
			basis[i] = 0
		}
	}

	m := len(basis)
	for order := 2; order <= k; order++ {
		d := float64(order - 1)
		for i := 0; i+1 < m-order+2; i++ {
			left := (u - float64(i)) / d * basis[i]
			right := (float64(i+order) - u) / d * basis[i+1]
			basis[i] = left + right
		}
	}
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func roundVec(v vec.Vec2) image.Point {
	return image.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
