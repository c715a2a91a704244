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

// Command cgdraw runs a drawing command script and writes one image for
// every saveCanvas command in the script.
//
// Usage:
//
//	cgdraw [-format bmp|png|pdf] [-v] INPUT OUTDIR
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"seehuhn.de/go/scan/canvas"
	"seehuhn.de/go/scan/script"
)

func main() {
	format := flag.String("format", "bmp", "output image format (bmp, png or pdf)")
	verbose := flag.Bool("v", false, "log every command")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] INPUT OUTDIR\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, logger, flag.Arg(0), flag.Arg(1), *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, input, outDir, formatName string) error {
	f, err := canvas.ParseFormat(formatName)
	if err != nil {
		return err
	}

	src, err := os.Open(input)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	in := &script.Interpreter{
		Save: func(name string, img *image.RGBA) error {
			fileName := filepath.Join(outDir, name+f.Ext())
			logger.Debug("writing image", "file", fileName)
			return writeImage(fileName, img, f)
		},
		Logger: logger,
	}
	return in.Run(ctx, src)
}

func writeImage(fileName string, img *image.RGBA, f canvas.Format) (err error) {
	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return canvas.Write(out, img, f)
}
