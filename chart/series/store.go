// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package series

import (
	"fmt"
	"image/color"
	"iter"
	"slices"

	"github.com/Lexer747/linechart/chart/geometry"
)

// ValidationError is returned when a series cannot be stored, nothing is added when this is returned.
type ValidationError struct {
	Length  int
	Columns int
}

func (e *ValidationError) Error() string {
	if e.Length == 0 {
		return "invalid series: a series needs at least one point"
	}
	return fmt.Sprintf("invalid series: %d points exceeds the chart's %d columns", e.Length, e.Columns)
}

// Store owns the ordered list of series. Insertion order is the paint order (later series are drawn on top) and
// the hit testing tie-break order.
type Store struct {
	series   []*Series
	columns  int
	nextID   ID
	grid     *geometry.Grid
	maxValue float64
}

// NewStore creates an empty store accepting series of at most columns points, maxValue is the scale used until
// the next [Store.RemapAll].
func NewStore(columns int, maxValue float64) *Store {
	return &Store{
		series:   []*Series{},
		columns:  columns,
		maxValue: maxValue,
	}
}

// Add validates and maps values against the current grid then appends the new series. A nil grid (the container
// hasn't been measured) is allowed, the points are then positioned by the first [Store.RemapAll].
func (s *Store) Add(values []PointValue, c color.Color) (ID, error) {
	if len(values) == 0 || len(values) > s.columns {
		return 0, &ValidationError{Length: len(values), Columns: s.columns}
	}
	line := &Series{
		ID:     s.nextID,
		Color:  c,
		Values: slices.Clone(values),
		Mapped: make([]MappedPoint, len(values)),
	}
	line.remap(s.grid, s.maxValue)
	s.nextID++
	s.series = append(s.series, line)
	return line.ID, nil
}

// Clear removes every series, the grid and scale are kept.
func (s *Store) Clear() {
	clear(s.series)
	s.series = s.series[:0]
}

// RemapAll recomputes every mapped point against g and maxValue, in place.
func (s *Store) RemapAll(g *geometry.Grid, maxValue float64) {
	s.grid = g
	s.maxValue = maxValue
	for _, line := range s.series {
		line.remap(g, maxValue)
	}
}

// SetColumns changes the maximum series length, it fails without changing anything if a stored series is
// already longer than columns.
func (s *Store) SetColumns(columns int) error {
	if longest := s.Longest(); longest > columns {
		return &geometry.ConfigurationError{
			Field:  "BaseLineCount",
			Value:  columns,
			Reason: fmt.Sprintf("a stored series has %d points", longest),
		}
	}
	s.columns = columns
	return nil
}

func (s *Store) Columns() int {
	return s.columns
}

// Longest is the length of the longest stored series, 0 when empty.
func (s *Store) Longest() int {
	longest := 0
	for _, line := range s.series {
		longest = max(longest, line.Len())
	}
	return longest
}

func (s *Store) Len() int {
	return len(s.series)
}

func (s *Store) At(i int) *Series {
	return s.series[i]
}

// Slice exposes the series in insertion order, callers must not modify it.
func (s *Store) Slice() []*Series {
	return s.series
}

// All iterates the series in insertion order.
func (s *Store) All() iter.Seq2[int, *Series] {
	return slices.All(s.series)
}

// Paths returns every series' fully revealed path in insertion order.
func (s *Store) Paths() [][]geometry.Point {
	ret := make([][]geometry.Point, len(s.series))
	for i, line := range s.series {
		ret[i] = line.Path()
	}
	return ret
}
