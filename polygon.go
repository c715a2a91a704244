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

// DrawPolygon converts the closed outline through the given vertices into a
// sequence of pixels.  The edges are drawn with [DrawLine] in the order
// (v[n-1], v[0]), (v[0], v[1]), ..., (v[n-2], v[n-1]), and the results are
// concatenated.  Pixels at shared vertices appear once for every edge
// which contains them.  The interior is not filled.
//
// The polygon must have at least three vertices.
func DrawPolygon(vertices []image.Point, alg LineAlgorithm) []image.Point {
	n := len(vertices)
	var res []image.Point
	for i := range n {
		prev := vertices[(i+n-1)%n]
		res = append(res, DrawLine(prev, vertices[i], alg)...)
	}
	return res
}
