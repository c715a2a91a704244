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

// Package canvas keeps a list of named primitives and paints them into
// raster images.
//
// Items are painted in insertion order, each in the pen colour which was
// current when the item was added, so that later items cover earlier ones.
// Pixels which fall outside the canvas are dropped.
package canvas

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/scan"
)

// ErrUnknownItem is returned when an item id is not present on the canvas.
var ErrUnknownItem = errors.New("unknown item")

// Canvas is a drawing surface holding a list of named primitives.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int

	pen   color.RGBA
	items map[string]*item
	order []string
}

type item struct {
	prim scan.Primitive
	col  color.RGBA
}

// New returns an empty canvas of the given size.  The pen colour is black.
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Reset(width, height)
	return c
}

// Reset removes all items and changes the size of the canvas.
// The pen colour is not changed.
func (c *Canvas) Reset(width, height int) {
	if c.items == nil {
		c.pen = color.RGBA{A: 255}
	}
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.items = make(map[string]*item)
	c.order = c.order[:0]
}

// Size returns the width and height of the canvas in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetColor sets the pen colour for items added after this call.
func (c *Canvas) SetColor(col color.RGBA) {
	c.pen = col
}

// Color returns the current pen colour.
func (c *Canvas) Color() color.RGBA {
	return c.pen
}

// Add stores p under the given id, using the current pen colour.
// If the id is already in use, the old item is replaced but keeps its
// place in the painting order.
func (c *Canvas) Add(id string, p scan.Primitive) {
	if it, ok := c.items[id]; ok {
		it.prim = p
		it.col = c.pen
		return
	}
	c.items[id] = &item{prim: p, col: c.pen}
	c.order = append(c.order, id)
}

// Get returns the primitive stored under id.
func (c *Canvas) Get(id string) (scan.Primitive, bool) {
	it, ok := c.items[id]
	if !ok {
		return nil, false
	}
	return it.prim, true
}

// Delete removes the item with the given id.  Deleting an unknown id
// is a no-op.
func (c *Canvas) Delete(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
}

// IDs returns the item ids in painting order.
func (c *Canvas) IDs() []string {
	return slices.Clone(c.order)
}

// Len returns the number of items on the canvas.
func (c *Canvas) Len() int {
	return len(c.order)
}

// Transform replaces the item id by the result of fn.  The colour and the
// position of the item in the painting order are kept.  If fn returns nil
// without an error, the item is removed.
func (c *Canvas) Transform(id string, fn func(scan.Primitive) (scan.Primitive, error)) error {
	it, ok := c.items[id]
	if !ok {
		return fmt.Errorf("item %q: %w", id, ErrUnknownItem)
	}
	p, err := fn(it.prim)
	if err != nil {
		return fmt.Errorf("item %q: %w", id, err)
	}
	if p == nil {
		c.Delete(id)
		return nil
	}
	it.prim = p
	return nil
}

// Image paints all items onto a white image of the size of the canvas.
//
// The pixels of the items are computed concurrently.  The items are then
// painted in order.  If ctx is cancelled before all items have been
// converted, the context error is returned.
func (c *Canvas) Image(ctx context.Context) (*image.RGBA, error) {
	pixels := make([][]image.Point, len(c.order))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range c.order {
		p := c.items[id].prim
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pixels[i] = p.Pixels()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	bounds := img.Bounds()
	for i, id := range c.order {
		col := c.items[id].col
		for _, p := range pixels[i] {
			if p.In(bounds) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
	return img, nil
}
