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

var lineCases = []TestCase{
	// ========================================
	// Naive
	// ========================================
	{
		Name:   "naive_shallow",
		Prim:   line(4, 10, 60, 30, scan.Naive),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "naive_steep",
		Prim:   line(10, 4, 30, 60, scan.Naive),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "naive_falling",
		Prim:   line(4, 50, 60, 12, scan.Naive),
		Width:  64,
		Height: 64,
	},

	// ========================================
	// DDA
	// ========================================
	{
		Name:   "dda_shallow",
		Prim:   line(4, 10, 60, 30, scan.DDA),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dda_steep",
		Prim:   line(10, 4, 30, 60, scan.DDA),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dda_falling",
		Prim:   line(4, 50, 60, 12, scan.DDA),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dda_steep_falling",
		Prim:   line(50, 4, 12, 60, scan.DDA),
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Bresenham
	// ========================================
	{
		Name:   "bresenham_shallow",
		Prim:   line(4, 10, 60, 30, scan.Bresenham),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bresenham_steep",
		Prim:   line(10, 4, 30, 60, scan.Bresenham),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bresenham_falling",
		Prim:   line(4, 50, 60, 12, scan.Bresenham),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bresenham_steep_falling",
		Prim:   line(50, 4, 12, 60, scan.Bresenham),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bresenham_reversed",
		Prim:   line(60, 30, 4, 10, scan.Bresenham),
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Special directions
	// ========================================
	{
		Name:   "horizontal",
		Prim:   line(4, 32, 60, 32, scan.Bresenham),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertical",
		Prim:   line(32, 60, 32, 4, scan.DDA),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diagonal",
		Prim:   line(4, 4, 60, 60, scan.DDA),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "single_pixel",
		Prim:   line(32, 32, 32, 32, scan.Bresenham),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "long",
		Prim:   line(10, 400, 1000, 20, scan.Bresenham),
		Width:  1024,
		Height: 512,
	},
}
