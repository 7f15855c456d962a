// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// raster is a [chart.Backend] painting anti-aliased pixels with gogpu/gg.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/gogpu/gg"
)

var _ chart.Backend = (*Canvas)(nil)

type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
	// err is the first failed paint since the last Clear, the Backend interface has no error return.
	err    error
	frames int
}

// New creates a canvas of width by height pixels filled with background.
func New(width, height int, background color.Color) *Canvas {
	c := &Canvas{
		dc:         gg.NewContext(width, height),
		background: gg.FromColor(background),
	}
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear fills the canvas with the background ready for the next frame.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.background)
	c.err = nil
}

func (c *Canvas) DrawLine(vertices []geometry.Point, col color.Color, width float64) {
	if len(vertices) < 2 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		c.dc.LineTo(v.X, v.Y)
	}
	c.record(c.dc.Stroke(), "stroke line")
}

func (c *Canvas) DrawCircle(x, y, radius float64, col color.Color, filled bool) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, radius)
	if filled {
		c.record(c.dc.Fill(), "fill circle")
	} else {
		c.record(c.dc.Stroke(), "stroke circle")
	}
}

// Invalidate counts the frames the chart asked for.
func (c *Canvas) Invalidate() {
	c.frames++
}

// Invalidations is the number of times the chart asked for a redraw.
func (c *Canvas) Invalidations() int {
	return c.frames
}

func (c *Canvas) record(err error, op string) {
	if err != nil && c.err == nil {
		c.err = errors.Wrap(err, "raster: failed to "+op)
	}
}

// Err is the first paint failure since the last [Canvas.Clear].
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as a PNG, failing if any paint since the last [Canvas.Clear] failed.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return errors.Wrap(c.dc.EncodePNG(w), "raster: failed to encode png")
}

// SavePNG is [Canvas.EncodePNG] to a file at path.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	return errors.Wrapf(c.dc.SavePNG(path), "raster: failed to save %q", path)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
