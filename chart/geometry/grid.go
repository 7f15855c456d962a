// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package geometry

import (
	"fmt"
	"math"
)

// LayoutConfig is the subset of the chart configuration which affects the grid.
type LayoutConfig struct {
	// BaseLineCount is the number of columns, every series aligns its i-th point to the i-th column.
	BaseLineCount int
	// VerticalDotCount is the number of reference dots drawn down the left of the chart.
	VerticalDotCount int
	// PaddingRatio is the fraction of the width left empty on each side of the columns.
	PaddingRatio float64
	// MarkerRadius is reserved at the top and bottom of the chart so markers are never clipped.
	MarkerRadius float64
}

// Validate reports the first parameter which would make [Layout] fail.
func (c LayoutConfig) Validate() error {
	switch {
	case c.BaseLineCount < 2:
		return configErr("BaseLineCount", c.BaseLineCount, "at least 2 columns are required")
	case c.VerticalDotCount < 2:
		return configErr("VerticalDotCount", c.VerticalDotCount, "at least 2 reference dots are required")
	case c.PaddingRatio < 0 || c.PaddingRatio >= 0.5 || math.IsNaN(c.PaddingRatio):
		return configErr("PaddingRatio", c.PaddingRatio, "must be within [0, 0.5)")
	case c.MarkerRadius < 0 || math.IsNaN(c.MarkerRadius):
		return configErr("MarkerRadius", c.MarkerRadius, "must not be negative")
	}
	return nil
}

// Grid is the pixel geometry of the chart background for one container size.
type Grid struct {
	VerticalLines []VerticalLine
	VerticalDots  []Point

	Width, Height int
	// ChartHeight is the height available for data, the container height less a marker radius top and bottom.
	ChartHeight  float64
	PaddingLeft  float64
	PaddingRight float64
	LineSpacing  float64
	DotSpacing   float64
}

// Layout computes the grid for a container of width by height pixels.
func Layout(width, height int, c LayoutConfig) (*Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, configErr("Size", fmt.Sprintf("%dx%d", width, height), "container size must not be negative")
	}
	w := float64(width)
	h := float64(height)
	padding := math.Round(w * c.PaddingRatio)
	g := &Grid{
		VerticalLines: make([]VerticalLine, c.BaseLineCount),
		VerticalDots:  make([]Point, c.VerticalDotCount),
		Width:         width,
		Height:        height,
		ChartHeight:   h - 2*c.MarkerRadius,
		PaddingLeft:   padding,
		PaddingRight:  padding,
	}
	usable := w - g.PaddingLeft - g.PaddingRight
	columns := float64(c.BaseLineCount - 1)
	g.LineSpacing = usable / columns
	for i := range g.VerticalLines {
		// multiply before dividing so that the final column lands exactly on the right padding
		x := g.PaddingLeft + float64(i)*usable/columns
		g.VerticalLines[i] = VerticalLine{X: x, YTop: 0, YBottom: h}
	}

	g.DotSpacing = g.ChartHeight / float64(c.VerticalDotCount-1)
	last := len(g.VerticalDots) - 1
	for i := range g.VerticalDots {
		var y float64
		switch i {
		case 0:
			y = c.MarkerRadius
		case last:
			y = h - c.MarkerRadius
		default:
			y = g.VerticalDots[i-1].Y + g.DotSpacing
		}
		g.VerticalDots[i] = Point{X: g.PaddingLeft, Y: y}
	}
	return g, nil
}

// Columns is the number of vertical lines in the grid.
func (g *Grid) Columns() int {
	if g == nil {
		return 0
	}
	return len(g.VerticalLines)
}

func (g *Grid) String() string {
	if g == nil {
		return "<unmeasured>"
	}
	return fmt.Sprintf("%dx%d columns=%d chartHeight=%g padding=%g", g.Width, g.Height, len(g.VerticalLines), g.ChartHeight, g.PaddingLeft)
}
