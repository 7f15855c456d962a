// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"testing"

	"github.com/Lexer747/linechart/utils/numeric"
	"github.com/Lexer747/linechart/utils/sliceutils"
	"github.com/stretchr/testify/assert"
)

func AssertFloatEqual(t *testing.T, expected float64, actual float64, sigFigs int, msgAndArgs ...any) {
	t.Helper()
	a := numeric.RoundToNearestSigFig(actual, sigFigs)
	e := numeric.RoundToNearestSigFig(expected, sigFigs)
	assert.Equal(t, e, a, msgAndArgs...)
}

// AssertFloatsEqual is [AssertFloatEqual] over every element, the slices must be the same length.
func AssertFloatsEqual(t *testing.T, expected []float64, actual []float64, sigFigs int, msgAndArgs ...any) {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return
	}
	e := sliceutils.Map(expected, func(f float64) float64 { return numeric.RoundToNearestSigFig(f, sigFigs) })
	a := sliceutils.Map(actual, func(f float64) float64 { return numeric.RoundToNearestSigFig(f, sigFigs) })
	assert.Equal(t, e, a, msgAndArgs...)
}
