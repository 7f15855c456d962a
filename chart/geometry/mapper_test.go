// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package geometry_test

import (
	"testing"

	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/utils/th"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutFourColumns(t *testing.T) *geometry.Grid {
	t.Helper()
	c := defaultLayout
	c.BaseLineCount = 4
	// 212 high with a radius of 6 leaves a chart height of 200
	g, err := geometry.Layout(400, 212, c)
	require.NoError(t, err)
	require.Equal(t, 200.0, g.ChartHeight)
	return g
}

func TestMapScenario(t *testing.T) {
	t.Parallel()
	g := layoutFourColumns(t)
	values := []float64{10, 20, 30, 100}
	ys := make([]float64, len(values))
	for i, v := range values {
		p := geometry.Map(i, v, g, 100)
		assert.Equal(t, g.VerticalLines[i].X, p.X, "index %d", i)
		ys[i] = p.Y
	}
	th.AssertFloatsEqual(t, []float64{180, 160, 140, 0}, ys, 6)
}

func TestMapMonotonic(t *testing.T) {
	t.Parallel()
	g := layoutFourColumns(t)
	for index := range 4 {
		last := geometry.Map(index, -50, g, 100)
		for v := -49.5; v <= 250; v += 0.5 {
			p := geometry.Map(index, v, g, 100)
			assert.Less(t, p.Y, last.Y, "value %g", v)
			assert.Equal(t, last.X, p.X)
			last = p
		}
	}
}

func TestMapAboveMaxIsNotClamped(t *testing.T) {
	t.Parallel()
	g := layoutFourColumns(t)
	assert.Equal(t, -100.0, geometry.Map(0, 150, g, 100).Y)
	assert.Equal(t, 200.0, geometry.Map(0, 0, g, 100).Y)
	assert.Equal(t, 300.0, geometry.Map(0, -50, g, 100).Y)
}

func TestMapOutsideGridPanics(t *testing.T) {
	t.Parallel()
	g := layoutFourColumns(t)
	assert.Panics(t, func() { geometry.Map(4, 1, g, 100) })
	assert.Panics(t, func() { geometry.Map(0, 1, g, 0) })
}

func TestPointLerp(t *testing.T) {
	t.Parallel()
	a := geometry.Pt(0, 100)
	b := geometry.Pt(50, 0)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, geometry.Pt(25, 50), a.Lerp(b, 0.5))
}
