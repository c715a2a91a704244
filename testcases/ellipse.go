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

var ellipseCases = []TestCase{
	{
		Name:   "circle",
		Prim:   scan.NewEllipse(pt(8, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Prim:   scan.NewEllipse(pt(28, 28), pt(36, 36)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_large",
		Prim:   scan.NewEllipse(pt(4, 4), pt(252, 252)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "wide",
		Prim:   scan.NewEllipse(pt(2, 20), pt(62, 44)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tall",
		Prim:   scan.NewEllipse(pt(20, 2), pt(44, 62)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corners_reversed",
		Prim:   scan.NewEllipse(pt(62, 44), pt(2, 20)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "odd_size",
		Prim:   scan.NewEllipse(pt(5, 9), pt(58, 40)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "partly_outside",
		Prim:   scan.NewEllipse(pt(-20, -10), pt(40, 30)),
		Width:  64,
		Height: 64,
	},
}
