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

package canvas

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// Format is an output file format for canvas images.
type Format int

const (
	BMP Format = iota + 1
	PNG
	PDF
)

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file name extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat converts "bmp", "png" or "pdf" (in any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "bmp":
		return BMP, nil
	case "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

// Write encodes img in the given format.
func Write(w io.Writer, img *image.RGBA, f Format) error {
	switch f {
	case BMP:
		return WriteBMP(w, img)
	case PNG:
		return WritePNG(w, img)
	case PDF:
		return WritePDF(w, img)
	}
	return fmt.Errorf("cannot write %s", f)
}

// WriteBMP writes img as a Windows bitmap.
func WriteBMP(w io.Writer, img *image.RGBA) error {
	return bmp.Encode(w, img)
}

// WritePNG writes img as a PNG image.
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// WritePDF writes img as a one-page PDF file, using one PDF unit per
// pixel.  The page has its origin at the top-left corner, like the image.
func WritePDF(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	paper := &pdf.Rectangle{
		URx: float64(b.Dx()),
		URy: float64(b.Dy()),
	}

	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, image origin is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(b.Dy())})
	DrawPixels(page, img)

	return page.Close()
}

// DrawPixels draws the pixels of img onto a PDF page, as unit squares with
// the top-left corner of the image at the origin.  Horizontal runs of
// equal colour are drawn as a single rectangle.
func DrawPixels(page *document.Page, img *image.RGBA) {
	type run struct {
		x, y, n int
	}
	runs := make(map[imgcolor.RGBA][]run)
	var colours []imgcolor.RGBA

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		x := b.Min.X
		for x < b.Max.X {
			col := img.RGBAAt(x, y)
			n := 1
			for x+n < b.Max.X && img.RGBAAt(x+n, y) == col {
				n++
			}
			if _, seen := runs[col]; !seen {
				colours = append(colours, col)
			}
			runs[col] = append(runs[col], run{x - b.Min.X, y - b.Min.Y, n})
			x += n
		}
	}

	// Fill all runs of one colour together, to avoid switching colours
	// for every rectangle.
	for _, col := range colours {
		page.SetFillColor(color.DeviceRGB{
			float64(col.R) / 255,
			float64(col.G) / 255,
			float64(col.B) / 255,
		})
		for _, r := range runs[col] {
			page.Rectangle(float64(r.x), float64(r.y), float64(r.n), 1)
		}
		page.Fill()
	}
}
