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

// Package script runs drawing command scripts against a canvas.
//
// A script has one command per line.  Tokens are separated by blanks and
// empty lines are ignored.  The following commands are understood:
//
//	resetCanvas W H
//	saveCanvas NAME
//	setColor R G B
//	drawLine ID X0 Y0 X1 Y1 ALG
//	drawPolygon ID X0 Y0 X1 Y1 ... ALG
//	drawEllipse ID X0 Y0 X1 Y1
//	drawCurve ID X0 Y0 X1 Y1 ... ALG
//	translate ID DX DY
//	rotate ID X Y R
//	scale ID X Y S
//	clip ID XMIN YMIN XMAX YMAX ALG
//
// Line and polygon algorithms are "Naive", "DDA" and "Bresenham", curve
// algorithms are "Bezier" and "B-spline", and clip algorithms are
// "Cohen-Sutherland" and "Liang-Barsky".  Rotation angles are given in
// degrees.  Ellipses cannot be rotated; rotate leaves them unchanged.
// A clip which leaves nothing of a line removes the line from the canvas.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"seehuhn.de/go/scan/canvas"
)

var (
	// ErrUnknownCommand is returned for lines which start with an
	// unrecognised command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArguments is returned when a command has the wrong number of
	// arguments, or when an argument cannot be parsed.
	ErrArguments = errors.New("invalid arguments")

	// ErrNoOutput is returned by saveCanvas if the interpreter has no
	// Save function.
	ErrNoOutput = errors.New("no output configured")
)

// Error describes a failed script command.
type Error struct {
	Line int    // 1-based line number
	Cmd  string // the command name
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Cmd, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Interpreter executes command scripts.
type Interpreter struct {
	// Canvas is the canvas the commands operate on.  If this is nil,
	// Run allocates an empty canvas.
	Canvas *canvas.Canvas

	// Save is called by the saveCanvas command.
	Save func(name string, img *image.RGBA) error

	// Logger, if set, receives a debug message for every command and an
	// info message for every saved image.
	Logger *slog.Logger
}

// Run executes the commands read from r.  Execution stops at the first
// failing command.  Errors caused by a command are of type *[Error].
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	if in.Canvas == nil {
		in.Canvas = canvas.New(0, 0)
	}
	log := in.logger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name, args := fields[0], fields[1:]
		log.Debug("command", "line", lineNo, "cmd", name, "args", args)

		cmd, ok := commands[name]
		if !ok {
			return &Error{Line: lineNo, Cmd: name, Err: ErrUnknownCommand}
		}
		if err := cmd(ctx, in, args); err != nil {
			return &Error{Line: lineNo, Cmd: name, Err: err}
		}
	}
	return scanner.Err()
}
