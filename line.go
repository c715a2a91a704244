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
)

// DrawLine converts the segment from p0 to p1 into a sequence of pixels.
//
// Vertical segments produce one pixel per row, from the smaller to the
// larger y-coordinate, for every algorithm.  Otherwise the pixel order
// depends on the algorithm, see [Naive], [DDA] and [Bresenham].
// An unknown algorithm gives an empty result.
func DrawLine(p0, p1 image.Point, alg LineAlgorithm) []image.Point {
	switch alg {
	case Naive, DDA, Bresenham:
		// pass
	default:
		return nil
	}

	if p0.X == p1.X {
		return vertical(p0.X, p0.Y, p1.Y)
	}

	switch alg {
	case Naive:
		return lineNaive(p0, p1)
	case DDA:
		return lineDDA(p0, p1)
	default:
		return lineBresenham(p0, p1)
	}
}

// vertical returns the pixels of the vertical segment x=x, y0..y1.
func vertical(x, y0, y1 int) []image.Point {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	res := make([]image.Point, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		res = append(res, image.Point{X: x, Y: y})
	}
	return res
}

// lineNaive walks from left to right and rounds the exact y-coordinate
// down.  The caller has already handled vertical segments.
func lineNaive(p0, p1 image.Point) []image.Point {
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}
	k := float64(p1.Y-p0.Y) / float64(p1.X-p0.X)

	res := make([]image.Point, 0, p1.X-p0.X+1)
	for x := p0.X; x <= p1.X; x++ {
		y := math.Floor(float64(p0.Y) + k*float64(x-p0.X))
		res = append(res, image.Point{X: x, Y: int(y)})
	}
	return res
}

// lineDDA steps one pixel at a time along the major axis, starting at the
// endpoint with the smaller minor coordinate, and accumulates the slope
// along the minor axis.
func lineDDA(p0, p1 image.Point) []image.Point {
	m := math.Abs(float64(p0.Y-p1.Y) / float64(p0.X-p1.X))

	var res []image.Point
	if m < 1 {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		res = make([]image.Point, 0, p1.X-p0.X+1)

		if p0.Y < p1.Y {
			res = append(res, p0)
			y := float64(p0.Y)
			for x := p0.X + 1; x <= p1.X; x++ {
				y += m
				res = append(res, image.Point{X: x, Y: int(math.Round(y))})
			}
		} else {
			res = append(res, p1)
			y := float64(p1.Y)
			for x := p1.X - 1; x >= p0.X; x-- {
				y += m
				res = append(res, image.Point{X: x, Y: int(math.Round(y))})
			}
		}
		return res
	}

	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	res = make([]image.Point, 0, p1.Y-p0.Y+1)
	dx := 1 / m

	if p0.X < p1.X {
		res = append(res, p0)
		x := float64(p0.X)
		for y := p0.Y + 1; y <= p1.Y; y++ {
			x += dx
			res = append(res, image.Point{X: int(math.Round(x)), Y: y})
		}
	} else {
		res = append(res, p1)
		x := float64(p1.X)
		for y := p1.Y - 1; y >= p0.Y; y-- {
			x += dx
			res = append(res, image.Point{X: int(math.Round(x)), Y: y})
		}
	}
	return res
}

// lineBresenham implements the midpoint line algorithm using only integer
// arithmetic.  Shallow segments are traversed from left to right, steep
// segments from top to bottom (increasing y).
func lineBresenham(p0, p1 image.Point) []image.Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)

	if dy < dx {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		step := 1
		if p0.Y > p1.Y {
			step = -1
		}

		res := make([]image.Point, 0, dx+1)
		res = append(res, p0)
		p := 2*dy - dx
		y := p0.Y
		for x := p0.X + 1; x <= p1.X; x++ {
			if p >= 0 {
				p += 2*dy - 2*dx
				y += step
			} else {
				p += 2 * dy
			}
			res = append(res, image.Point{X: x, Y: y})
		}
		return res
	}

	// steep: y is the major axis
	dx, dy = dy, dx
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	step := 1
	if p0.X > p1.X {
		step = -1
	}

	res := make([]image.Point, 0, dx+1)
	res = append(res, p0)
	p := 2*dy - dx
	x := p0.X
	for y := p0.Y + 1; y <= p1.Y; y++ {
		if p >= 0 {
			p += 2*dy - 2*dx
			x += step
		} else {
			p += 2 * dy
		}
		res = append(res, image.Point{X: x, Y: y})
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
