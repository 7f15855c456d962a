// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package series

import (
	"fmt"
	"image/color"

	"github.com/Lexer747/linechart/chart/geometry"
)

// PointValue is anything which can provide a value to plot.
type PointValue interface {
	Value() float64
}

// Scalar is the simplest [PointValue].
type Scalar float64

func (s Scalar) Value() float64 { return float64(s) }

// Values adapts plain floats into a slice of [PointValue].
func Values(values ...float64) []PointValue {
	ret := make([]PointValue, len(values))
	for i, v := range values {
		ret[i] = Scalar(v)
	}
	return ret
}

// ID identifies a series for the lifetime of the [Store] which created it, IDs are never reused even after a
// [Store.Clear].
type ID int

// MappedPoint is a data point resolved into pixel space.
type MappedPoint struct {
	X, Y  float64
	Value float64
}

func (m MappedPoint) Point() geometry.Point {
	return geometry.Point{X: m.X, Y: m.Y}
}

// Series is one line on the chart. The mapped points are owned by the [Store] and are only valid until the next
// remap.
type Series struct {
	ID     ID
	Color  color.Color
	Values []PointValue
	Mapped []MappedPoint
}

func (s *Series) Len() int {
	return len(s.Values)
}

// Path returns the mapped points as vertices, the shape of the fully revealed line.
func (s *Series) Path() []geometry.Point {
	ret := make([]geometry.Point, len(s.Mapped))
	for i, m := range s.Mapped {
		ret[i] = m.Point()
	}
	return ret
}

func (s *Series) remap(g *geometry.Grid, maxValue float64) {
	for i, v := range s.Values {
		value := v.Value()
		if g == nil {
			// Not measured yet, the position is filled in on the first layout.
			s.Mapped[i] = MappedPoint{Value: value}
			continue
		}
		p := geometry.Map(i, value, g, maxValue)
		s.Mapped[i] = MappedPoint{X: p.X, Y: p.Y, Value: value}
	}
}

func (s *Series) String() string {
	return fmt.Sprintf("series %d (%d points)", s.ID, len(s.Values))
}
