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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scan"
)

// window is the clip rectangle used for all clip test cases.
var window = rect.Rect{LLx: 12, LLy: 16, URx: 52, URy: 48}

var clipCases = []TestCase{
	{
		Name:   "cs_inside",
		Prim:   clip(line(20, 20, 44, 40, scan.Bresenham), scan.CohenSutherland),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cs_horizontal",
		Prim:   clip(line(0, 32, 63, 32, scan.Bresenham), scan.CohenSutherland),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cs_diagonal",
		Prim:   clip(line(0, 0, 63, 63, scan.DDA), scan.CohenSutherland),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cs_corner",
		Prim:   clip(line(2, 30, 30, 2, scan.Bresenham), scan.CohenSutherland),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cs_steep",
		Prim:   clip(line(30, 63, 36, 0, scan.DDA), scan.CohenSutherland),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "lb_inside",
		Prim:   clip(line(20, 20, 44, 40, scan.Bresenham), scan.LiangBarsky),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "lb_horizontal",
		Prim:   clip(line(0, 32, 63, 32, scan.Bresenham), scan.LiangBarsky),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "lb_diagonal",
		Prim:   clip(line(0, 0, 63, 63, scan.DDA), scan.LiangBarsky),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "lb_corner",
		Prim:   clip(line(2, 30, 30, 2, scan.Bresenham), scan.LiangBarsky),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "lb_steep",
		Prim:   clip(line(30, 63, 36, 0, scan.DDA), scan.LiangBarsky),
		Width:  64,
		Height: 64,
	},
}

// clip clips l to the window.  The line must intersect the window.
func clip(l *scan.Line, alg scan.ClipAlgorithm) scan.Primitive {
	res, ok, err := scan.ClipPrimitive(l, window, alg)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("line " + l.P0.String() + "-" + l.P1.String() + " is outside the window")
	}
	return res
}
