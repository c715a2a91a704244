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

import "image"

// DrawEllipse converts the axis-aligned ellipse inscribed in the box with
// corners c0 and c1 into a sequence of pixels, using the midpoint ellipse
// algorithm.
//
// The centre and semi-axes are obtained by halving the box coordinates and
// truncating towards zero.  The four axis extremes come first, followed by
// the points of region 1 (where the outline is flatter than 45°) and region
// 2, each point mirrored into the four quadrants in the order (+x, +y),
// (-x, +y), (+x, -y), (-x, -y) relative to the centre.
//
// Boxes of zero width or height give unspecified results.
func DrawEllipse(c0, c1 image.Point) []image.Point {
	cx := (c0.X + c1.X) / 2
	cy := (c0.Y + c1.Y) / 2
	a := abs(c0.X-c1.X) / 2
	b := abs(c0.Y-c1.Y) / 2

	res := []image.Point{
		{X: cx, Y: cy + b},
		{X: cx, Y: cy - b},
		{X: cx + a, Y: cy},
		{X: cx - a, Y: cy},
	}
	emit := func(x, y int) {
		res = append(res,
			image.Point{X: cx + x, Y: cy + y},
			image.Point{X: cx - x, Y: cy + y},
			image.Point{X: cx + x, Y: cy - y},
			image.Point{X: cx - x, Y: cy - y},
		)
	}

	a2 := float64(a * a)
	b2 := float64(b * b)
	x, y := 0, b

	// region 1: step x, decide whether y moves
	p := b2 - a2*float64(b) + a2/4
	for b2*float64(x) < a2*float64(y) {
		if p < 0 {
			p += 2*b2*float64(x) + 3*b2
		} else {
			p += 2*b2*float64(x) + 3*b2 - 2*a2*float64(y) + 2*a2
			y--
		}
		x++
		emit(x, y)
	}

	// region 2: step y down to the major axis, decide whether x moves
	hx := float64(x) + 0.5
	ym := float64(y - 1)
	p = b2*hx*hx + a2*ym*ym - a2*b2
	for y > 0 {
		if p > 0 {
			p += -2*a2*float64(y) + 3*a2
		} else {
			p += 2*b2*float64(x) + 3*a2 - 2*a2*float64(y) + 2*b2
			x++
		}
		y--
		emit(x, y)
	}

	return res
}
