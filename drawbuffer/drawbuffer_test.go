// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package drawbuffer_test

import (
	"strings"
	"testing"

	"github.com/Lexer747/linechart/drawbuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeOrder(t *testing.T) {
	t.Parallel()
	c := drawbuffer.NewCollection()
	c.Get(drawbuffer.TooltipIndex).WriteString("tip")
	c.Get(drawbuffer.ChartIndex).WriteString("chart|")

	out := &strings.Builder{}
	n, err := c.Composite(out)
	require.NoError(t, err)
	assert.Equal(t, "chart|tip", out.String())
	assert.Equal(t, int64(9), n)

	c.Reset(drawbuffer.TooltipIndex)
	out.Reset()
	_, err = c.Composite(out)
	require.NoError(t, err)
	assert.Equal(t, "chart|", out.String())

	c.Reset()
	assert.Zero(t, c.Get(drawbuffer.ChartIndex).Len())
}
