// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// termcanvas is a [chart.Backend] which rasterises the chart onto a grid of terminal cells.
//
// The chart is laid out in pixel space as usual, each cell covers CellWidth by CellHeight pixels. Lines are
// stepped cell by cell with a glyph matching their slope, circles are a single bullet in the cell holding their
// centre. Every call overwrites the cells it touches so the paint order of the engine is kept.
package termcanvas

import (
	"bytes"
	"image/color"
	"math"

	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/chart/terminal"
	"github.com/Lexer747/linechart/chart/terminal/ansi"
	"github.com/Lexer747/linechart/chart/terminal/typography"
	"github.com/Lexer747/linechart/utils/check"
)

var _ chart.Backend = (*Canvas)(nil)

type cell struct {
	glyph  string
	colour ansi.Colour
}

type Canvas struct {
	size       terminal.Size
	cellWidth  float64
	cellHeight float64
	cells      []cell
	dirty      bool
}

// New creates a blank canvas of size cells, each covering cellWidth by cellHeight pixels.
func New(size terminal.Size, cellWidth, cellHeight float64) *Canvas {
	check.Checkf(cellWidth > 0 && cellHeight > 0, "cell size must be positive, got %gx%g", cellWidth, cellHeight)
	c := &Canvas{cellWidth: cellWidth, cellHeight: cellHeight}
	c.Resize(size)
	return c
}

// Resize blanks the canvas at the new size.
func (c *Canvas) Resize(size terminal.Size) {
	c.size = size
	c.cells = make([]cell, max(size.Width*size.Height, 0))
	c.dirty = true
}

func (c *Canvas) Size() terminal.Size {
	return c.size
}

// PixelSize is the size to give [chart.Engine.OnResize] so that the chart fills the canvas.
func (c *Canvas) PixelSize() (width, height int) {
	return int(float64(c.size.Width) * c.cellWidth), int(float64(c.size.Height) * c.cellHeight)
}

// ToCell finds the cell holding the pixel, the cell may be outside the canvas.
func (c *Canvas) ToCell(x, y float64) (column, row int) {
	return int(math.Floor(x / c.cellWidth)), int(math.Floor(y / c.cellHeight))
}

// FromCell is the pixel at the centre of the cell.
func (c *Canvas) FromCell(column, row int) (x, y float64) {
	return (float64(column) + 0.5) * c.cellWidth, (float64(row) + 0.5) * c.cellHeight
}

// DrawLine steps along each segment one cell at a time. The width is ignored, no line is thinner than a cell.
func (c *Canvas) DrawLine(vertices []geometry.Point, col color.Color, _ float64) {
	colour := ansi.Nearest(col)
	for i := 1; i < len(vertices); i++ {
		c.segment(vertices[i-1], vertices[i], colour)
	}
}

func (c *Canvas) segment(from, to geometry.Point, colour ansi.Colour) {
	c0, r0 := from.X/c.cellWidth, from.Y/c.cellHeight
	c1, r1 := to.X/c.cellWidth, to.Y/c.cellHeight
	dc, dr := c1-c0, r1-r0
	steps := int(math.Ceil(max(math.Abs(dc), math.Abs(dr))))
	if steps == 0 {
		return
	}
	glyph := typography.Segment(dc, dr)
	for i := range steps + 1 {
		t := float64(i) / float64(steps)
		c.set(int(math.Floor(c0+dc*t)), int(math.Floor(r0+dr*t)), glyph, colour)
	}
}

// DrawCircle marks the cell holding the centre, a filled circle is a solid bullet.
func (c *Canvas) DrawCircle(x, y, _ float64, col color.Color, filled bool) {
	glyph := typography.HollowBullet
	if filled {
		glyph = typography.Bullet
	}
	column, row := c.ToCell(x, y)
	c.set(column, row, glyph, ansi.Nearest(col))
}

func (c *Canvas) Invalidate() {
	c.dirty = true
}

// Dirty reports whether the chart asked for a redraw since the last [Canvas.Render].
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// Clear blanks every cell ready for the next frame.
func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) set(column, row int, glyph string, colour ansi.Colour) {
	if column < 0 || row < 0 || column >= c.size.Width || row >= c.size.Height {
		return
	}
	c.cells[row*c.size.Width+column] = cell{glyph: glyph, colour: colour}
}

// Cell is the glyph and colour painted at the cell, an empty glyph if nothing was.
func (c *Canvas) Cell(column, row int) (string, ansi.Colour) {
	if column < 0 || row < 0 || column >= c.size.Width || row >= c.size.Height {
		return "", 0
	}
	ret := c.cells[row*c.size.Width+column]
	return ret.glyph, ret.colour
}

// Render writes every row of the canvas into buf as absolutely positioned ANSI text, runs of the same colour
// share one escape sequence.
func (c *Canvas) Render(buf *bytes.Buffer) {
	for row := range c.size.Height {
		buf.WriteString(ansi.CursorPosition(row+1, 1))
		var current ansi.Colour
		for column := range c.size.Width {
			cl := c.cells[row*c.size.Width+column]
			if cl.glyph == "" {
				if current != 0 {
					buf.WriteString(ansi.R)
					current = 0
				}
				buf.WriteByte(' ')
				continue
			}
			if cl.colour != current {
				if current != 0 {
					buf.WriteString(ansi.R)
				}
				buf.WriteString(cl.colour.Code())
				current = cl.colour
			}
			buf.WriteString(cl.glyph)
		}
		if current != 0 {
			buf.WriteString(ansi.R)
		}
	}
	c.dirty = false
}
