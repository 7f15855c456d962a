// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package geometry

import (
	"fmt"

	"github.com/Lexer747/linechart/utils/numeric"
)

// Point is a position in the engine's local pixel space, the origin is the top left of the container and y
// grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for a [Point] at x, y.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp returns the point t of the way from p to q, x and y are interpolated independently.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: numeric.Lerp(p.X, q.X, t),
		Y: numeric.Lerp(p.Y, q.Y, t),
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// VerticalLine is one column of the grid, a line from (X, YTop) to (X, YBottom).
type VerticalLine struct {
	X, YTop, YBottom float64
}

func (l VerticalLine) Vertices() []Point {
	return []Point{{X: l.X, Y: l.YTop}, {X: l.X, Y: l.YBottom}}
}
