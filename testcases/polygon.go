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
	"math"

	"seehuhn.de/go/scan"
)

var polygonCases = []TestCase{
	{
		Name:   "triangle_dda",
		Prim:   polygon(scan.DDA, pts(10, 50, 32, 10, 54, 50)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_bresenham",
		Prim:   polygon(scan.Bresenham, pts(10, 50, 32, 10, 54, 50)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_dda",
		Prim:   polygon(scan.DDA, fivePointStar(32, 32, 25)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_bresenham",
		Prim:   polygon(scan.Bresenham, fivePointStar(32, 32, 25)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Prim:   polygon(scan.Bresenham, rectangle(10, 10, 54, 44)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon",
		Prim:   polygon(scan.DDA, regular(32, 32, 28, 6)...),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_vertices",
		Prim:   polygon(scan.Bresenham, regular(64, 64, 60, 50)...),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "degenerate",
		Prim:   polygon(scan.Bresenham, pts(10, 32, 32, 32, 54, 32)...),
		Width:  64,
		Height: 64,
	},
}

// fivePointStar returns the vertices of a five-pointed star
// (self-intersecting).
func fivePointStar(cx, cy, r float64) []image.Point {
	corners := regular(cx, cy, r, 5)

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	res := make([]image.Point, len(order))
	for i, j := range order {
		res[i] = corners[j]
	}
	return res
}

// regular returns the vertices of a regular n-gon, starting at the top.
func regular(cx, cy, r float64, n int) []image.Point {
	res := make([]image.Point, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		res[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}
	return res
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 int) []image.Point {
	return pts(x1, y1, x2, y1, x2, y2, x1, y2)
}
