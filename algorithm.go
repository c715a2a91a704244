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
	"errors"
	"fmt"
)

// ErrAlgorithm is returned when an algorithm name is not recognised, or
// when an algorithm cannot be used for a given kind of primitive.
var ErrAlgorithm = errors.New("unsupported algorithm")

// LineAlgorithm selects how line segments (and polygon edges) are
// converted to pixels.
type LineAlgorithm int

const (
	// Naive evaluates y = y0 + k*(x-x0) at every integer x and rounds down.
	// Steep lines come out as sparse dots.
	Naive LineAlgorithm = iota + 1

	// DDA steps along the major axis and accumulates the slope in
	// floating point.
	DDA

	// Bresenham is the integer-only midpoint line algorithm.
	Bresenham
)

var lineAlgorithmNames = map[LineAlgorithm]string{
	Naive:     "Naive",
	DDA:       "DDA",
	Bresenham: "Bresenham",
}

func (a LineAlgorithm) String() string {
	if name, ok := lineAlgorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("LineAlgorithm(%d)", int(a))
}

// ParseLineAlgorithm converts an algorithm name as used in command
// scripts ("Naive", "DDA" or "Bresenham") to a LineAlgorithm.
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	for a, name := range lineAlgorithmNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("line algorithm %q: %w", s, ErrAlgorithm)
}

// validForPolygon reports whether the algorithm can be used for polygon
// edges.  Only DDA and Bresenham are offered for polygons.
func (a LineAlgorithm) validForPolygon() bool {
	return a == DDA || a == Bresenham
}

// CurveAlgorithm selects the curve model used for a control polygon.
type CurveAlgorithm int

const (
	// Bezier evaluates the Bézier curve of the control points with the
	// de Casteljau algorithm.
	Bezier CurveAlgorithm = iota + 1

	// BSpline evaluates the uniform cubic B-spline of the control points.
	BSpline
)

func (a CurveAlgorithm) String() string {
	switch a {
	case Bezier:
		return "Bezier"
	case BSpline:
		return "B-spline"
	default:
		return fmt.Sprintf("CurveAlgorithm(%d)", int(a))
	}
}

// ParseCurveAlgorithm converts "Bezier" or "B-spline" to a CurveAlgorithm.
func ParseCurveAlgorithm(s string) (CurveAlgorithm, error) {
	switch s {
	case "Bezier":
		return Bezier, nil
	case "B-spline":
		return BSpline, nil
	}
	return 0, fmt.Errorf("curve algorithm %q: %w", s, ErrAlgorithm)
}

// minControls returns the smallest number of control points for which the
// algorithm produces output.
func (a CurveAlgorithm) minControls() int {
	if a == BSpline {
		return bsplineOrder
	}
	return 2
}

// ClipAlgorithm selects the line clipping algorithm.
type ClipAlgorithm int

const (
	// CohenSutherland clips using 4-bit region outcodes.
	CohenSutherland ClipAlgorithm = iota + 1

	// LiangBarsky clips using the parametric form of the segment.
	LiangBarsky
)

func (a ClipAlgorithm) String() string {
	switch a {
	case CohenSutherland:
		return "Cohen-Sutherland"
	case LiangBarsky:
		return "Liang-Barsky"
	default:
		return fmt.Sprintf("ClipAlgorithm(%d)", int(a))
	}
}

// ParseClipAlgorithm converts "Cohen-Sutherland" or "Liang-Barsky" to a
// ClipAlgorithm.
func ParseClipAlgorithm(s string) (ClipAlgorithm, error) {
	switch s {
	case "Cohen-Sutherland":
		return CohenSutherland, nil
	case "Liang-Barsky":
		return LiangBarsky, nil
	}
	return 0, fmt.Errorf("clip algorithm %q: %w", s, ErrAlgorithm)
}

// AngleUnit gives the unit of a rotation angle.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)
