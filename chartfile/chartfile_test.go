// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chartfile_test

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chart/th"
	"github.com/Lexer747/linechart/chartfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
config:
  baseLineCount: 4
  maxValue: 100
  gridColor: "#ddd"
  segmentDuration: 150ms
  unit: ms
  showPointValue: true
size: {width: 400, height: 212}
series:
  - color: "#a4633a"
    values: [10, 20, 30, 100]
  - color: 2b7fa8
    values: [50, 40]
taps:
  - {x: 40, y: 180}
`

func TestParse(t *testing.T) {
	t.Parallel()
	f, err := chartfile.Parse([]byte(example))
	require.NoError(t, err)
	require.NotNil(t, f.Size)
	assert.Equal(t, chartfile.Size{Width: 400, Height: 212}, *f.Size)
	require.Len(t, f.Series, 2)
	assert.Equal(t, []float64{10, 20, 30, 100}, f.Series[0].Values)
	assert.Equal(t, []chartfile.Tap{{X: 40, Y: 180}}, f.Taps)

	c, err := f.ChartConfig()
	require.NoError(t, err)
	expected := chart.DefaultConfig()
	expected.BaseLineCount = 4
	expected.GridColor = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	expected.SegmentDuration = 150 * time.Millisecond
	expected.Unit = "ms"
	expected.ShowPointValue = true
	assert.Equal(t, expected, c)
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	f, err := chartfile.Parse([]byte("series: []\n"))
	require.NoError(t, err)
	c, err := f.ChartConfig()
	require.NoError(t, err)
	assert.Equal(t, chart.DefaultConfig(), c)
	assert.Nil(t, f.Size)
}

func TestMalformed(t *testing.T) {
	t.Parallel()
	type Case struct {
		Name  string
		Input string
	}
	for _, test := range []Case{
		{Name: "empty", Input: ""},
		{Name: "unknown field", Input: "serie: []\n"},
		{Name: "bad duration", Input: "config: {segmentDuration: soon}\n"},
		{Name: "not yaml", Input: "series: [\n"},
	} {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			_, err := chartfile.Parse([]byte(test.Input))
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	type Case struct {
		Input    string
		Expected color.Color
		Err      bool
	}
	for _, test := range []Case{
		{Input: "#4cc2b6", Expected: color.NRGBA{R: 0x4c, G: 0xc2, B: 0xb6, A: 0xff}},
		{Input: "4CC2B6", Expected: color.NRGBA{R: 0x4c, G: 0xc2, B: 0xb6, A: 0xff}},
		{Input: "#eeeeee80", Expected: color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0x80}},
		{Input: "#f00", Expected: color.NRGBA{R: 0xff, A: 0xff}},
		{Input: "#f008", Expected: color.NRGBA{R: 0xff, A: 0x88}},
		{Input: "#ggg", Err: true},
		{Input: "#12345", Err: true},
		{Input: "", Err: true},
	} {
		t.Run(test.Input, func(t *testing.T) {
			t.Parallel()
			c, err := chartfile.ParseColor(test.Input)
			if test.Err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.Expected, c)
		})
	}
}

func TestBadColourInConfig(t *testing.T) {
	t.Parallel()
	f, err := chartfile.Parse([]byte("config: {dotColor: blue}\n"))
	require.NoError(t, err)
	_, err = f.ChartConfig()
	assert.ErrorContains(t, err, "dotColor")
}

func TestAddSeries(t *testing.T) {
	t.Parallel()
	f, err := chartfile.Parse([]byte(example))
	require.NoError(t, err)
	c, err := f.ChartConfig()
	require.NoError(t, err)
	e, err := chart.NewEngine(c, &th.Backend{}, nil)
	require.NoError(t, err)
	require.NoError(t, e.OnResize(f.Size.Width, f.Size.Height))

	ids, err := f.AddSeries(e)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	lines := e.Series()
	require.Len(t, lines, 2)
	assert.Equal(t, color.NRGBA{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff}, lines[0].Color)
	assert.Equal(t, 180.0, lines[0].Mapped[0].Y)
	assert.Equal(t, 0.0, lines[0].Mapped[3].Y)

	f.Series = append(f.Series, chartfile.Series{Color: "#000", Values: []float64{1, 2, 3, 4, 5}})
	ids, err = f.AddSeries(e)
	var validation *chart.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, 5, validation.Length)
	assert.Nil(t, ids)
	assert.Len(t, e.Series(), 2, "nothing is added when any series is rejected")
}

func TestCheck(t *testing.T) {
	t.Parallel()
	type Case struct {
		Name     string
		Series   []chartfile.Series
		Columns  int
		Expected string
	}
	for _, test := range []Case{
		{Name: "fits", Series: []chartfile.Series{{Color: "#fff", Values: []float64{1, 2}}}, Columns: 2},
		{Name: "no series", Columns: 2},
		{
			Name:     "too long",
			Series:   []chartfile.Series{{Color: "#fff", Values: []float64{1}}, {Color: "#fff", Values: []float64{1, 2, 3}}},
			Columns:  2,
			Expected: "series 1 caused by: invalid series: 3 points exceeds the chart's 2 columns",
		},
		{
			Name:     "empty",
			Series:   []chartfile.Series{{Color: "#fff"}},
			Columns:  2,
			Expected: "series 0 caused by: invalid series: a series needs at least one point",
		},
		{
			Name:     "bad colour",
			Series:   []chartfile.Series{{Color: "blue", Values: []float64{1}}},
			Columns:  2,
			Expected: "series 0",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			err := (&chartfile.File{Series: test.Series}).Check(test.Columns)
			if test.Expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, test.Expected)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()
	f, err := chartfile.Parse([]byte(example))
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, f.Encode(buf))
	again, err := chartfile.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o600))
	f, err := chartfile.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Series, 2)

	_, err = chartfile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
