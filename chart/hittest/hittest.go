// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// hittest resolves a pointer position to the data point underneath it.
package hittest

import (
	"fmt"

	"github.com/Lexer747/linechart/chart/series"
	"github.com/Lexer747/linechart/utils/numeric"
)

// ToleranceFactor scales the marker radius into the band a pointer must fall within, small markers would
// otherwise be very hard to tap.
const ToleranceFactor = 3

// Hit is the point found under the pointer.
type Hit struct {
	SeriesIndex int
	PointIndex  int
	Value       float64
	X, Y        float64
}

func (h Hit) String() string {
	return fmt.Sprintf("series %d point %d (%g) at (%g,%g)", h.SeriesIndex, h.PointIndex, h.Value, h.X, h.Y)
}

// Test finds the point under (x, y) for markers of the given radius.
//
// Every series shares its columns so the columns are resolved against the first series only, then each series is
// tested at that column in order. The first series within tolerance wins even if a later one is closer. When
// columns are closer together than the tolerance band every candidate column is tried left to right.
func Test(x, y float64, lines []*series.Series, radius float64) (Hit, bool) {
	if len(lines) == 0 {
		return Hit{}, false
	}
	band := ToleranceFactor * radius
	for column, c := range lines[0].Mapped {
		if !numeric.Within(x, c.X, band) {
			continue
		}
		for i, line := range lines {
			if column >= len(line.Mapped) {
				continue
			}
			p := line.Mapped[column]
			if numeric.Within(y, p.Y, band) {
				return Hit{SeriesIndex: i, PointIndex: column, Value: p.Value, X: p.X, Y: p.Y}, true
			}
		}
	}
	return Hit{}, false
}
