// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"image/color"
	"time"

	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/chart/reveal"
)

// Config is owned by a single [Engine], see [DefaultConfig] for the defaults.
type Config struct {
	// BaseLineCount is the number of grid columns, it is also the maximum length of a series.
	BaseLineCount int
	// VerticalDotCount is the number of reference dots drawn down the left edge of the grid.
	VerticalDotCount int
	// MaxValue is the value plotted at the top of the chart.
	MaxValue float64
	// LineWidth is the stroke width of both the grid lines and the series.
	LineWidth float64
	// MarkerRadius is the radius of the point markers and reference dots, it also sets the hit test tolerance.
	MarkerRadius float64
	// PaddingRatio is the fraction of the width left either side of the grid.
	PaddingRatio float64

	GridColor color.Color
	DotColor  color.Color

	// SegmentDuration is how long the reveal animation takes between two neighbouring points.
	SegmentDuration time.Duration
	// Unit is appended to values shown by the tooltip.
	Unit string
	// ShowPointValue enables the tooltip when a point is tapped.
	ShowPointValue bool
}

func DefaultConfig() Config {
	return Config{
		BaseLineCount:    8,
		VerticalDotCount: 10,
		MaxValue:         100,
		LineWidth:        3,
		MarkerRadius:     6,
		PaddingRatio:     0.1,
		GridColor:        color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		DotColor:         color.NRGBA{R: 0x4c, G: 0xc2, B: 0xb6, A: 0xff},
		SegmentDuration:  reveal.DefaultSegmentDuration,
		Unit:             "Mbps",
		ShowPointValue:   false,
	}
}

func (c Config) layout() geometry.LayoutConfig {
	return geometry.LayoutConfig{
		BaseLineCount:    c.BaseLineCount,
		VerticalDotCount: c.VerticalDotCount,
		PaddingRatio:     c.PaddingRatio,
		MarkerRadius:     c.MarkerRadius,
	}
}

// Validate checks everything [NewEngine] requires of a config.
func (c Config) Validate() error {
	if err := c.layout().Validate(); err != nil {
		return err
	}
	if !(c.MaxValue > 0) {
		return &ConfigurationError{Field: "MaxValue", Value: c.MaxValue, Reason: "must be positive"}
	}
	if c.LineWidth < 0 {
		return &ConfigurationError{Field: "LineWidth", Value: c.LineWidth, Reason: "must not be negative"}
	}
	return nil
}
