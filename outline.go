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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// Outline returns the control geometry of p as a vector path, with pixel
// centres at half-integer coordinates: the segment of a line, the closed
// outline of a polygon, the control polygon of a curve, and a Bézier
// approximation of an ellipse.  The path is meant for overlays in vector
// output, where it can be drawn on top of the pixels of p.
func Outline(p Primitive) *path.Data {
	switch p := p.(type) {
	case *Line:
		return (&path.Data{}).MoveTo(centre(p.P0)).LineTo(centre(p.P1))

	case *Polygon:
		return polyline(p.Vertices).Close()

	case *Curve:
		return polyline(p.Controls)

	case *Ellipse:
		cx := float64((p.C0.X+p.C1.X)/2) + 0.5
		cy := float64((p.C0.Y+p.C1.Y)/2) + 0.5
		rx := float64(abs(p.C0.X-p.C1.X) / 2)
		ry := float64(abs(p.C0.Y-p.C1.Y) / 2)
		kx := rx * kappa
		ky := ry * kappa
		pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
		return (&path.Data{}).
			MoveTo(pt(cx+rx, cy)).
			CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
			CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
			CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
			CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
			Close()
	}
	return &path.Data{}
}

func polyline(pts []image.Point) *path.Data {
	res := &path.Data{}
	for i, p := range pts {
		if i == 0 {
			res = res.MoveTo(centre(p))
		} else {
			res = res.LineTo(centre(p))
		}
	}
	return res
}

// centre returns the centre of pixel p.
func centre(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}
