// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package errors_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/Lexer747/linechart/chart/series"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()
	assert.NoError(t, errors.Wrap(nil, "nothing"))
	assert.NoError(t, errors.Wrapf(nil, "nothing %d", 1))

	err := errors.Wrapf(io.EOF, "reading %q", "chart.yaml")
	assert.Equal(t, `reading "chart.yaml" caused by: EOF`, err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%+v", err))

	twice := errors.Wrap(err, "loading")
	assert.Equal(t, `loading caused by: reading "chart.yaml" caused by: EOF`, twice.Error())
	assert.ErrorIs(t, twice, io.EOF)
}

func TestWrapAs(t *testing.T) {
	t.Parallel()
	err := errors.Wrap(&series.ValidationError{Length: 5, Columns: 4}, "series 0")
	var ve *series.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 5, ve.Length)
	assert.Equal(t, "series 0 caused by: invalid series: 5 points exceeds the chart's 4 columns", err.Error())
}

func TestErrorf(t *testing.T) {
	t.Parallel()
	err := errors.Errorf("tap %q is not in the form X,Y", "1")
	assert.Equal(t, `tap "1" is not in the form X,Y`, err.Error())
}
