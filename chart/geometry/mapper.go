// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package geometry

import (
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/numeric"
)

// Map places the value at column index within g. Larger values plot higher, a value of maxValue sits on the top of
// the chart area and values larger than maxValue plot above it, they are not clamped.
//
// maxValue must be positive and index must be a column of g.
func Map(index int, value float64, g *Grid, maxValue float64) Point {
	check.Checkf(index >= 0 && index < len(g.VerticalLines), "column %d outside grid of %d columns", index, len(g.VerticalLines))
	check.Checkf(maxValue > 0, "maxValue must be positive, got %g", maxValue)
	return Point{
		X: g.VerticalLines[index].X,
		Y: numeric.NormalizeToRange(value, 0, maxValue, g.ChartHeight, 0),
	}
}
