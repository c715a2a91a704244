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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Translate returns a copy of pts, with every point shifted by (dx, dy).
func Translate(pts []image.Point, dx, dy int) []image.Point {
	d := image.Point{X: dx, Y: dy}
	res := make([]image.Point, len(pts))
	for i, p := range pts {
		res[i] = p.Add(d)
	}
	return res
}

// Rotate returns a copy of pts, rotated about center by the given angle.
// Positive angles turn clockwise on a raster where y grows downwards.
// The rotated coordinates are rounded to the nearest integer.
func Rotate(pts []image.Point, center image.Point, angle float64, unit AngleUnit) []image.Point {
	if unit == Degrees {
		angle = angle / 180 * math.Pi
	}
	return applyAbout(pts, center, matrix.Rotate(angle))
}

// Scale returns a copy of pts, scaled about center by the given factor.
// The scaled coordinates are rounded to the nearest integer.
// The factor should be positive.
func Scale(pts []image.Point, center image.Point, factor float64) []image.Point {
	return applyAbout(pts, center, matrix.Scale(factor, factor))
}

// applyAbout applies the linear map M in the coordinate frame centred at
// center.  Rounding happens in the centred frame, so that the centre itself
// is always a fixed point.
func applyAbout(pts []image.Point, center image.Point, M matrix.Matrix) []image.Point {
	res := make([]image.Point, len(pts))
	for i, p := range pts {
		v := toVec(p.Sub(center))
		x, y := M.Apply(v.X, v.Y)
		res[i] = roundVec(vec.Vec2{X: x, Y: y}).Add(center)
	}
	return res
}
