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

package testcases

import (
	"image"

	"seehuhn.de/go/scan"
)

var curveCases = []TestCase{
	// ========================================
	// Bézier curves
	// ========================================
	{
		Name:   "bezier_straight",
		Prim:   curve(scan.Bezier, pts(4, 60, 60, 4)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_quadratic",
		Prim:   curve(scan.Bezier, pts(4, 60, 32, 4, 60, 60)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_cubic",
		Prim:   curve(scan.Bezier, pts(4, 60, 4, 4, 60, 4, 60, 60)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_scurve",
		Prim:   curve(scan.Bezier, pts(4, 32, 24, -20, 40, 84, 60, 32)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_loop",
		Prim:   curve(scan.Bezier, pts(10, 50, 70, 0, -6, 0, 54, 50)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_cusp",
		Prim:   curve(scan.Bezier, pts(10, 50, 54, 10, 10, 10, 54, 50)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_high_degree",
		Prim:   curve(scan.Bezier, zigzag(8, 120, 16, 20)...),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "bezier_degenerate",
		Prim:   curve(scan.Bezier, pts(32, 32, 32, 32, 32, 32)...),
		Width:  64,
		Height: 64,
	},

	// ========================================
	// B-splines
	// ========================================
	{
		Name:   "bspline_minimal",
		Prim:   curve(scan.BSpline, pts(4, 60, 4, 4, 60, 4, 60, 60)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bspline_square",
		Prim:   curve(scan.BSpline, pts(10, 10, 54, 10, 54, 54, 10, 54, 10, 10, 54, 10, 54, 54)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bspline_many_segments",
		Prim:   curve(scan.BSpline, zigzag(8, 120, 16, 20)...),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "bspline_collinear",
		Prim:   curve(scan.BSpline, pts(4, 32, 20, 32, 40, 32, 60, 32)...),
		Width:  64,
		Height: 64,
	},
}

// zigzag returns n control points which alternate between two heights,
// spread evenly between x=lo and x=hi.
func zigzag(lo, hi, n, amplitude int) []image.Point {
	res := make([]image.Point, n)
	for i := range res {
		x := lo + (hi-lo)*i/(n-1)
		y := 64 - amplitude
		if i%2 == 1 {
			y = 64 + amplitude
		}
		res[i] = pt(x, y)
	}
	return res
}
