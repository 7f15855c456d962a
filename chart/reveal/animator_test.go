// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package reveal_test

import (
	"testing"
	"time"

	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/chart/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

var zigzag = []geometry.Point{{X: 0, Y: 100}, {X: 100, Y: 0}, {X: 200, Y: 100}, {X: 300, Y: 0}}

func TestSegmentInterpolation(t *testing.T) {
	t.Parallel()
	a := reveal.New(300 * ms)
	a.Start([][]geometry.Point{zigzag})
	assert.Equal(t, []geometry.Point{{X: 0, Y: 100}}, a.Path(0))
	assert.True(t, a.Running())

	events := a.Tick(150 * ms)
	require.Len(t, events, 1)
	assert.Equal(t, reveal.Event{Series: 0, Segment: 0, Vertex: geometry.Pt(50, 50)}, events[0])
	state, segment, fraction := a.Status(0)
	assert.Equal(t, reveal.Running, state)
	assert.Equal(t, 0, segment)
	assert.Equal(t, 0.5, fraction)

	events = a.Tick(75 * ms)
	require.Len(t, events, 1)
	assert.Equal(t, geometry.Pt(75, 25), events[0].Vertex)

	events = a.Tick(75 * ms)
	require.Len(t, events, 1)
	assert.Equal(t, reveal.Event{Series: 0, Segment: 0, Vertex: geometry.Pt(100, 0)}, events[0])
	_, segment, fraction = a.Status(0)
	assert.Equal(t, 1, segment)
	assert.Equal(t, 0.0, fraction)

	assert.Equal(t, []geometry.Point{{X: 0, Y: 100}, {X: 50, Y: 50}, {X: 75, Y: 25}, {X: 100, Y: 0}}, a.Path(0))
}

func TestTickSpanningSegmentsCommitsCorners(t *testing.T) {
	t.Parallel()
	a := reveal.New(300 * ms)
	a.Start([][]geometry.Point{zigzag})
	events := a.Tick(750 * ms)
	require.Len(t, events, 3)
	assert.Equal(t, geometry.Pt(100, 0), events[0].Vertex)
	assert.Equal(t, geometry.Pt(200, 100), events[1].Vertex)
	assert.Equal(t, 2, events[2].Segment)
	assert.Equal(t, geometry.Pt(250, 50), events[2].Vertex)
	assert.True(t, a.Running())

	events = a.Tick(time.Hour)
	require.Len(t, events, 1)
	assert.Equal(t, reveal.Event{Series: 0, Segment: 2, Vertex: geometry.Pt(300, 0), Last: true}, events[0])
	assert.False(t, a.Running())
	assert.Empty(t, a.Tick(time.Second), "a finished reveal produces no events")
	assert.Equal(t, zigzag[3], a.Path(0)[len(a.Path(0))-1])
}

func TestFrameRateDoesNotChangeDuration(t *testing.T) {
	t.Parallel()
	deltas := [][]time.Duration{
		{900 * ms},
		{300 * ms, 300 * ms, 300 * ms},
		{16 * ms, 17 * ms, 500 * ms, 1 * ms, 366 * ms},
		{899 * ms, 1 * ms},
	}
	for _, frames := range deltas {
		a := reveal.New(300 * ms)
		a.Start([][]geometry.Point{zigzag})
		for i, dt := range frames {
			require.True(t, a.Running(), "frame %d of %v", i, frames)
			a.Tick(dt)
		}
		assert.False(t, a.Running(), "%v should have finished", frames)
		path := a.Path(0)
		assert.Equal(t, zigzag[3], path[len(path)-1])
		for _, corner := range zigzag {
			assert.Contains(t, path, corner)
		}
	}

	a := reveal.New(300 * ms)
	a.Start([][]geometry.Point{zigzag})
	a.Tick(899 * ms)
	assert.True(t, a.Running(), "one millisecond short")
}

func TestSeriesRunConcurrently(t *testing.T) {
	t.Parallel()
	short := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	single := []geometry.Point{{X: 5, Y: 5}}
	a := reveal.New(300 * ms)
	a.Start([][]geometry.Point{zigzag, short, single})
	assert.Equal(t, 3, a.Len())
	state, _, _ := a.Status(2)
	assert.Equal(t, reveal.Idle, state, "one point has no segments")
	assert.Equal(t, single, a.Path(2))

	events := a.Tick(300 * ms)
	require.Len(t, events, 2)
	assert.Equal(t, reveal.Event{Series: 0, Segment: 0, Vertex: zigzag[1]}, events[0])
	assert.Equal(t, reveal.Event{Series: 1, Segment: 0, Vertex: short[1], Last: true}, events[1])

	state, _, _ = a.Status(1)
	assert.Equal(t, reveal.Idle, state)
	state, segment, _ := a.Status(0)
	assert.Equal(t, reveal.Running, state)
	assert.Equal(t, 1, segment)
}

func TestRestartAbandonsProgress(t *testing.T) {
	t.Parallel()
	a := reveal.New(300 * ms)
	a.Start([][]geometry.Point{zigzag})
	a.Tick(450 * ms)
	a.Start([][]geometry.Point{zigzag, zigzag})
	for i := range 2 {
		state, segment, fraction := a.Status(i)
		assert.Equal(t, reveal.Running, state)
		assert.Equal(t, 0, segment)
		assert.Equal(t, 0.0, fraction)
		assert.Equal(t, zigzag[:1], a.Path(i))
	}

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Running())
	assert.Nil(t, a.Path(0))
	assert.Empty(t, a.Tick(time.Second))
}

func TestComplete(t *testing.T) {
	t.Parallel()
	a := reveal.New(300 * ms)
	a.Start([][]geometry.Point{zigzag})
	a.Tick(100 * ms)
	moved := []geometry.Point{{X: 0, Y: 10}, {X: 1, Y: 11}}
	a.Complete([][]geometry.Point{moved})
	assert.False(t, a.Running())
	assert.Equal(t, moved, a.Path(0))
	state, segment, fraction := a.Status(0)
	assert.Equal(t, reveal.Idle, state)
	assert.Equal(t, 1, segment)
	assert.Equal(t, 1.0, fraction)
	assert.Empty(t, a.Tick(time.Second))
}

func TestZeroDurationIsInstant(t *testing.T) {
	t.Parallel()
	a := reveal.New(0)
	a.Start([][]geometry.Point{zigzag})
	assert.Empty(t, a.Tick(0), "no time no progress")
	events := a.Tick(time.Nanosecond)
	require.Len(t, events, 3)
	assert.True(t, events[2].Last)
	assert.Equal(t, zigzag, a.Path(0))
}
