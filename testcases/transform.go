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

import "seehuhn.de/go/scan"

var transformCases = []TestCase{
	// ========================================
	// Translation
	// ========================================
	{
		Name:   "translate",
		Prim:   scan.TranslatePrimitive(polygon(scan.DDA, rectangle(0, 0, 20, 20)...), 22, 22),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "translate_ellipse",
		Prim:   scan.TranslatePrimitive(scan.NewEllipse(pt(-20, -10), pt(20, 10)), 32, 32),
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Uniform scaling
	// ========================================
	{
		Name:   "scale_2x",
		Prim:   scan.ScalePrimitive(polygon(scan.Bresenham, rectangle(22, 22, 42, 42)...), pt(32, 32), 2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "scale_half",
		Prim:   scan.ScalePrimitive(polygon(scan.Bresenham, regular(32, 32, 28, 5)...), pt(32, 32), 0.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "scale_curve",
		Prim:   scan.ScalePrimitive(curve(scan.Bezier, pts(28, 36, 28, 28, 36, 28, 36, 36)...), pt(32, 32), 6.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "scale_ellipse",
		Prim:   scan.ScalePrimitive(scan.NewEllipse(pt(22, 27), pt(42, 37)), pt(32, 32), 2.5),
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Rotation
	// ========================================
	{
		Name:   "rotate_45deg",
		Prim:   rotate(polygon(scan.DDA, rectangle(22, 22, 42, 42)...), 32, 32, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_90deg",
		Prim:   rotate(polygon(scan.DDA, rectangle(17, 22, 47, 42)...), 32, 32, 90),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_5deg",
		Prim:   rotate(polygon(scan.Bresenham, rectangle(12, 22, 52, 42)...), 32, 32, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_line",
		Prim:   rotate(line(32, 32, 60, 32, scan.Bresenham), 32, 32, -30),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_bspline",
		Prim:   rotate(curve(scan.BSpline, pts(4, 60, 4, 4, 60, 4, 60, 60)...), 32, 32, 180),
		Width:  64,
		Height: 64,
	},
}

// rotate turns p by the given number of degrees about (cx, cy).
func rotate(p scan.Primitive, cx, cy int, deg float64) scan.Primitive {
	res, err := scan.RotatePrimitive(p, pt(cx, cy), deg, scan.Degrees)
	if err != nil {
		panic(err)
	}
	return res
}
