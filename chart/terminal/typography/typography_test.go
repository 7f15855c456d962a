// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package typography_test

import (
	"testing"

	"github.com/Lexer747/linechart/chart/terminal/typography"
	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	t.Parallel()
	assert.Equal(t, typography.Vertical, typography.Segment(0, 5))
	assert.Equal(t, typography.Vertical, typography.Segment(0, -5))
	assert.Equal(t, typography.Horizontal, typography.Segment(4, 0))
	assert.Equal(t, typography.Horizontal, typography.Segment(-4, 0))
	assert.Equal(t, typography.UpSlope, typography.Segment(1, -1))
	assert.Equal(t, typography.UpSlope, typography.Segment(-1, 1), "direction of travel doesn't matter")
	assert.Equal(t, typography.DownSlope, typography.Segment(1, 1))
	assert.Equal(t, typography.VerySteepUpSlope, typography.Segment(1, -20))
	assert.Equal(t, typography.SteepDownSlope, typography.Segment(1, 20))
}
