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

// Command genpdf renders every test case for visual inspection.
// For each case it writes a BMP image of the canvas and a PDF file which
// shows the same pixels with the control geometry of the primitive drawn
// on top.
package main

import (
	"context"
	"fmt"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/canvas"
	"seehuhn.de/go/scan/testcases"
)

const outDir = "testdata/render"

func main() {
	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			c := canvas.New(tc.Width, tc.Height)
			c.Add(name, tc.Prim)
			img, err := c.Image(ctx)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := writeBMP(filepath.Join(outDir, name+".bmp"), img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, img, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeBMP(fileName string, img *image.RGBA) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := canvas.WriteBMP(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func generatePDF(tc testcases.TestCase, img *image.RGBA, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	canvas.DrawPixels(page, img)

	// Control geometry as a thin red overlay
	page.SetStrokeColor(color.DeviceRGB{0.9, 0, 0})
	page.SetLineWidth(0.2)
	for cmd, pts := range scan.Outline(tc.Prim).Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}
