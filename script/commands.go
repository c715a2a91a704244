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

package script

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scan"
)

type command func(ctx context.Context, in *Interpreter, args []string) error

var commands = map[string]command{
	"resetCanvas": resetCanvas,
	"saveCanvas":  saveCanvas,
	"setColor":    setColor,
	"drawLine":    drawLine,
	"drawPolygon": drawPolygon,
	"drawEllipse": drawEllipse,
	"drawCurve":   drawCurve,
	"translate":   translate,
	"rotate":      rotate,
	"scale":       scale,
	"clip":        clip,
}

func resetCanvas(_ context.Context, in *Interpreter, args []string) error {
	v, err := ints(args, 2)
	if err != nil {
		return err
	}
	if v[0] < 0 || v[1] < 0 {
		return fmt.Errorf("negative canvas size %dx%d: %w", v[0], v[1], ErrArguments)
	}
	in.Canvas.Reset(v[0], v[1])
	return nil
}

func saveCanvas(ctx context.Context, in *Interpreter, args []string) error {
	if len(args) != 1 {
		return wrongCount(len(args), 1)
	}
	if in.Save == nil {
		return ErrNoOutput
	}
	img, err := in.Canvas.Image(ctx)
	if err != nil {
		return err
	}
	in.logger().Info("saving canvas", "name", args[0], "items", in.Canvas.Len())
	return in.Save(args[0], img)
}

func setColor(_ context.Context, in *Interpreter, args []string) error {
	v, err := ints(args, 3)
	if err != nil {
		return err
	}
	for _, c := range v {
		if c < 0 || c > 255 {
			return fmt.Errorf("colour component %d out of range: %w", c, ErrArguments)
		}
	}
	in.Canvas.SetColor(color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255})
	return nil
}

func drawLine(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 6 {
		return wrongCount(len(args), 6)
	}
	v, err := ints(args[1:5], 4)
	if err != nil {
		return err
	}
	alg, err := scan.ParseLineAlgorithm(args[5])
	if err != nil {
		return err
	}
	l, err := scan.NewLine(image.Pt(v[0], v[1]), image.Pt(v[2], v[3]), alg)
	if err != nil {
		return err
	}
	in.Canvas.Add(args[0], l)
	return nil
}

func drawPolygon(_ context.Context, in *Interpreter, args []string) error {
	id, pts, algName, err := pointList(args)
	if err != nil {
		return err
	}
	alg, err := scan.ParseLineAlgorithm(algName)
	if err != nil {
		return err
	}
	p, err := scan.NewPolygon(pts, alg)
	if err != nil {
		return err
	}
	in.Canvas.Add(id, p)
	return nil
}

func drawEllipse(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 5 {
		return wrongCount(len(args), 5)
	}
	v, err := ints(args[1:], 4)
	if err != nil {
		return err
	}
	in.Canvas.Add(args[0], scan.NewEllipse(image.Pt(v[0], v[1]), image.Pt(v[2], v[3])))
	return nil
}

func drawCurve(_ context.Context, in *Interpreter, args []string) error {
	id, pts, algName, err := pointList(args)
	if err != nil {
		return err
	}
	alg, err := scan.ParseCurveAlgorithm(algName)
	if err != nil {
		return err
	}
	c, err := scan.NewCurve(pts, alg)
	if err != nil {
		return err
	}
	in.Canvas.Add(id, c)
	return nil
}

func translate(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 3 {
		return wrongCount(len(args), 3)
	}
	v, err := ints(args[1:], 2)
	if err != nil {
		return err
	}
	return in.Canvas.Transform(args[0], func(p scan.Primitive) (scan.Primitive, error) {
		return scan.TranslatePrimitive(p, v[0], v[1]), nil
	})
}

func rotate(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 4 {
		return wrongCount(len(args), 4)
	}
	v, err := ints(args[1:3], 2)
	if err != nil {
		return err
	}
	angle, err := float(args[3])
	if err != nil {
		return err
	}
	center := image.Pt(v[0], v[1])
	err = in.Canvas.Transform(args[0], func(p scan.Primitive) (scan.Primitive, error) {
		return scan.RotatePrimitive(p, center, angle, scan.Degrees)
	})
	if errors.Is(err, scan.ErrEllipseRotation) {
		// the ellipse is left unchanged
		in.logger().Debug("ellipse not rotated", "id", args[0])
		return nil
	}
	return err
}

func scale(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 4 {
		return wrongCount(len(args), 4)
	}
	v, err := ints(args[1:3], 2)
	if err != nil {
		return err
	}
	factor, err := float(args[3])
	if err != nil {
		return err
	}
	center := image.Pt(v[0], v[1])
	return in.Canvas.Transform(args[0], func(p scan.Primitive) (scan.Primitive, error) {
		return scan.ScalePrimitive(p, center, factor), nil
	})
}

func clip(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 6 {
		return wrongCount(len(args), 6)
	}
	v, err := ints(args[1:5], 4)
	if err != nil {
		return err
	}
	alg, err := scan.ParseClipAlgorithm(args[5])
	if err != nil {
		return err
	}
	window := rect.Rect{
		LLx: float64(v[0]),
		LLy: float64(v[1]),
		URx: float64(v[2]),
		URy: float64(v[3]),
	}
	id := args[0]
	return in.Canvas.Transform(id, func(p scan.Primitive) (scan.Primitive, error) {
		res, ok, err := scan.ClipPrimitive(p, window, alg)
		if err != nil {
			return nil, err
		}
		if !ok {
			in.logger().Debug("line clipped away", "id", id)
			return nil, nil
		}
		return res, nil
	})
}

// pointList parses the arguments "ID X0 Y0 X1 Y1 ... ALG".
func pointList(args []string) (id string, pts []image.Point, alg string, err error) {
	if len(args) < 2 || len(args)%2 != 0 {
		return "", nil, "", fmt.Errorf("%d arguments: %w", len(args), ErrArguments)
	}
	v, err := ints(args[1:len(args)-1], len(args)-2)
	if err != nil {
		return "", nil, "", err
	}
	pts = make([]image.Point, 0, len(v)/2)
	for i := 0; i < len(v); i += 2 {
		pts = append(pts, image.Pt(v[i], v[i+1]))
	}
	return args[0], pts, args[len(args)-1], nil
}

// ints parses exactly n integer arguments.
func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, wrongCount(len(args), n)
	}
	res := make([]int, n)
	for i, s := range args {
		x, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", s, ErrArguments)
		}
		res[i] = x
	}
	return res, nil
}

func float(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrArguments)
	}
	return x, nil
}

func wrongCount(got, want int) error {
	return fmt.Errorf("got %d arguments, want %d: %w", got, want, ErrArguments)
}
