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

// Package testcases provides a catalogue of primitives for testing and
// inspecting the scan converter.
package testcases

import (
	"image"

	"seehuhn.de/go/scan"
)

// TestCase defines a single primitive to be drawn on a canvas.
type TestCase struct {
	Name   string         // lowercase a-z, 0-9 and _ only
	Prim   scan.Primitive // the primitive to draw
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// pts converts a list of coordinates x0, y0, x1, y1, ... into points.
func pts(coords ...int) []image.Point {
	res := make([]image.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, pt(coords[i], coords[i+1]))
	}
	return res
}

// The constructors below panic on invalid input.  They are only used to
// build the fixed catalogue.

func line(x0, y0, x1, y1 int, alg scan.LineAlgorithm) *scan.Line {
	l, err := scan.NewLine(pt(x0, y0), pt(x1, y1), alg)
	if err != nil {
		panic(err)
	}
	return l
}

func polygon(alg scan.LineAlgorithm, vertices ...image.Point) *scan.Polygon {
	p, err := scan.NewPolygon(vertices, alg)
	if err != nil {
		panic(err)
	}
	return p
}

func curve(alg scan.CurveAlgorithm, controls ...image.Point) *scan.Curve {
	c, err := scan.NewCurve(controls, alg)
	if err != nil {
		panic(err)
	}
	return c
}
