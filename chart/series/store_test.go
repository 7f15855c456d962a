// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package series_test

import (
	"image/color"
	"testing"

	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/chart/series"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func grid(t *testing.T, width, height, columns int) *geometry.Grid {
	t.Helper()
	g, err := geometry.Layout(width, height, geometry.LayoutConfig{
		BaseLineCount:    columns,
		VerticalDotCount: 10,
		PaddingRatio:     0.1,
		MarkerRadius:     6,
	})
	require.NoError(t, err)
	return g
}

func TestAddMapsPoints(t *testing.T) {
	t.Parallel()
	s := series.NewStore(4, 100)
	s.RemapAll(grid(t, 400, 212, 4), 100)
	id, err := s.Add(series.Values(10, 20, 30, 100), red)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	line := s.At(0)
	assert.Equal(t, id, line.ID)
	assert.Equal(t, red, line.Color)
	require.Len(t, line.Mapped, 4)
	assert.Equal(t, series.MappedPoint{X: 40, Y: 180, Value: 10}, line.Mapped[0])
	assert.Equal(t, series.MappedPoint{X: 360, Y: 0, Value: 100}, line.Mapped[3])
}

func TestAddRejectsInvalidLengths(t *testing.T) {
	t.Parallel()
	type Case struct {
		Name   string
		Values []series.PointValue
	}
	cases := []Case{
		{Name: "empty", Values: series.Values()},
		{Name: "nil", Values: nil},
		{Name: "too long", Values: series.Values(1, 2, 3, 4, 5)},
	}
	for _, test := range cases {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			s := series.NewStore(4, 100)
			_, err := s.Add(series.Values(1), blue)
			require.NoError(t, err)

			_, err = s.Add(test.Values, red)
			var validation *series.ValidationError
			require.True(t, errors.As(err, &validation), "%v", err)
			assert.Equal(t, len(test.Values), validation.Length)
			assert.Equal(t, 4, validation.Columns)
			assert.Equal(t, 1, s.Len(), "store should be unchanged")
			assert.Equal(t, blue, s.At(0).Color)
		})
	}
}

func TestAddBeforeLayout(t *testing.T) {
	t.Parallel()
	s := series.NewStore(4, 100)
	_, err := s.Add(series.Values(50, 100), red)
	require.NoError(t, err)
	assert.Equal(t, []series.MappedPoint{{Value: 50}, {Value: 100}}, s.At(0).Mapped)

	g := grid(t, 400, 212, 4)
	s.RemapAll(g, 100)
	assert.Equal(t, series.MappedPoint{X: 40, Y: 100, Value: 50}, s.At(0).Mapped[0])
	assert.Equal(t, series.MappedPoint{X: g.VerticalLines[1].X, Y: 0, Value: 100}, s.At(0).Mapped[1])
}

func TestRemapAllIsIdempotent(t *testing.T) {
	t.Parallel()
	s := series.NewStore(8, 100)
	g := grid(t, 640, 480, 8)
	s.RemapAll(g, 100)
	_, err := s.Add(series.Values(1, 99, 42, 150, 0, 7), red)
	require.NoError(t, err)
	_, err = s.Add(series.Values(3, 2, 1), blue)
	require.NoError(t, err)

	s.RemapAll(g, 100)
	first := [][]series.MappedPoint{clonePoints(s.At(0)), clonePoints(s.At(1))}
	s.RemapAll(g, 100)
	second := [][]series.MappedPoint{clonePoints(s.At(0)), clonePoints(s.At(1))}
	assert.Equal(t, first, second)
}

func TestRemapAllFollowsGeometry(t *testing.T) {
	t.Parallel()
	s := series.NewStore(4, 100)
	s.RemapAll(grid(t, 400, 212, 4), 100)
	_, err := s.Add(series.Values(50, 50, 50, 50), red)
	require.NoError(t, err)

	bigger := grid(t, 800, 412, 4)
	s.RemapAll(bigger, 50)
	for i, m := range s.At(0).Mapped {
		assert.Equal(t, bigger.VerticalLines[i].X, m.X)
		assert.Equal(t, 0.0, m.Y, "value == maxValue sits at the top")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	s := series.NewStore(4, 100)
	first, err := s.Add(series.Values(1, 2), red)
	require.NoError(t, err)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.Columns())

	second, err := s.Add(series.Values(1, 2), red)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "ids are not reused")
}

func TestInsertionOrder(t *testing.T) {
	t.Parallel()
	s := series.NewStore(4, 100)
	for _, c := range []color.Color{red, blue, red} {
		_, err := s.Add(series.Values(1), c)
		require.NoError(t, err)
	}
	ids := []series.ID{}
	for i, line := range s.All() {
		assert.Equal(t, s.At(i), line)
		ids = append(ids, line.ID)
	}
	assert.Equal(t, []series.ID{0, 1, 2}, ids)
}

func TestSetColumns(t *testing.T) {
	t.Parallel()
	s := series.NewStore(4, 100)
	_, err := s.Add(series.Values(1, 2, 3), red)
	require.NoError(t, err)

	err = s.SetColumns(2)
	var configErr *geometry.ConfigurationError
	require.True(t, errors.As(err, &configErr), "%v", err)
	assert.Equal(t, 4, s.Columns())

	require.NoError(t, s.SetColumns(3))
	assert.Equal(t, 3, s.Columns())
	_, err = s.Add(series.Values(1, 2, 3, 4), red)
	require.Error(t, err)
}

func clonePoints(s *series.Series) []series.MappedPoint {
	return append([]series.MappedPoint(nil), s.Mapped...)
}
