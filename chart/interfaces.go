// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"image/color"

	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/chart/series"
)

// Backend paints what the engine computes. Every call carries its own style, a backend should not need to keep
// any state between calls other than what it is painting onto.
type Backend interface {
	// DrawLine strokes a polyline through vertices.
	DrawLine(vertices []geometry.Point, c color.Color, width float64)
	DrawCircle(x, y, radius float64, c color.Color, filled bool)
	// Invalidate asks the host for a redraw, the host should call [Engine.Draw] when convenient.
	Invalidate()
}

// Tooltip shows the value of a tapped point.
type Tooltip interface {
	ShowValue(x, y float64, text string)
	Hide()
}

type (
	ValidationError    = series.ValidationError
	ConfigurationError = geometry.ConfigurationError
	PointValue         = series.PointValue
	SeriesID           = series.ID
	Series             = series.Series
)

// Values adapts plain floats for [Engine.AddSeries].
func Values(values ...float64) []PointValue {
	return series.Values(values...)
}

var _ Tooltip = NoTooltip{}

// NoTooltip discards everything, for hosts without a tooltip.
type NoTooltip struct{}

func (NoTooltip) ShowValue(float64, float64, string) {}
func (NoTooltip) Hide()                              {}
