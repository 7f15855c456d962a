// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric_test

import (
	"fmt"
	"testing"

	"github.com/Lexer747/linechart/utils/numeric"
	"github.com/Lexer747/linechart/utils/th"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	type Case struct {
		Min, Max       float64
		NewMin, NewMax float64
		Inputs         []float64
		Expected       []float64
	}
	cases := []Case{
		{
			Min: 0, Max: 100, NewMin: 200, NewMax: 0,
			Inputs:   []float64{0, 10, 50, 100, 150},
			Expected: []float64{200, 180, 100, 0, -100},
		},
		{
			Min: 7_657_469, Max: 12_301_543, NewMin: 2, NewMax: 24,
			Inputs:   []float64{7_706_944, 7_750_314, 7_789_195, 12_301_543, 7_657_469},
			Expected: []float64{2.23, 2.44, 2.62, 24, 2},
		},
	}
	for i, test := range cases {
		t.Run(fmt.Sprintf("%d:%f->%f|%+v", i, test.Min, test.Max, test.Inputs), func(t *testing.T) {
			t.Parallel()
			for i, input := range test.Inputs {
				actual := numeric.NormalizeToRange(input, test.Min, test.Max, test.NewMin, test.NewMax)
				th.AssertFloatEqual(t, test.Expected[i], actual, 3)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 10.0, numeric.Lerp(10, 20, 0))
	assert.Equal(t, 15.0, numeric.Lerp(10, 20, 0.5))
	assert.Equal(t, 20.0, numeric.Lerp(10, 20, 1))
	assert.Equal(t, 5.0, numeric.Lerp(10, 0, 0.5))
}

func TestWithin(t *testing.T) {
	t.Parallel()
	assert.True(t, numeric.Within(10.0, 28.0, 18.0))
	assert.True(t, numeric.Within(28.0, 10.0, 18.0))
	assert.False(t, numeric.Within(10.0, 28.5, 18.0))
	assert.True(t, numeric.Within(-3, 3, 6))
	assert.Equal(t, 4, numeric.Abs(-4))
	assert.Equal(t, 3, numeric.Clamp(7, 0, 3))
}

func TestTruncateToNearestSigFigInt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 10, numeric.TruncateToNearestSigFigInt(19, 1))
	assert.Equal(t, 19, numeric.TruncateToNearestSigFigInt(19, 3))
	assert.Equal(t, 123000, numeric.TruncateToNearestSigFigInt(123456, 3))
	assert.Equal(t, -123000, numeric.TruncateToNearestSigFigInt(-123456, 3))
	assert.Equal(t, 0, numeric.TruncateToNearestSigFigInt(0, 3))
}
