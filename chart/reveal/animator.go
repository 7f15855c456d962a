// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// reveal animates lines being drawn in from their first point to their last, one segment at a time.
//
// Each series is an independent state machine:
//
//	Idle -> Running(segment, fraction) -> Idle
//
// Segments of one series play sequentially, all series play at the same time. The animation is driven entirely
// by [Animator.Tick], nothing happens between ticks.
package reveal

import (
	"fmt"
	"slices"
	"time"

	"github.com/Lexer747/linechart/chart/geometry"
)

// DefaultSegmentDuration is how long the tip of a line takes to travel between two neighbouring points.
const DefaultSegmentDuration = 300 * time.Millisecond

type State int

const (
	Idle    State = 0
	Running State = 1
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	default:
		return fmt.Sprintf("Unknown State: %d", int(s))
	}
}

// Event is emitted every time a vertex is appended to a series' revealed path.
type Event struct {
	Series  int
	Segment int
	Vertex  geometry.Point
	// Last is set on the event which completes the series.
	Last bool
}

type track struct {
	target    []geometry.Point
	committed []geometry.Point
	state     State
	segment   int
	elapsed   time.Duration
}

func (t *track) fraction(segmentDuration time.Duration) float64 {
	if t.state != Running {
		return 1
	}
	return float64(t.elapsed) / float64(segmentDuration)
}

// Animator holds the reveal state of every series. The zero value is not usable, see [New].
type Animator struct {
	segmentDuration time.Duration
	tracks          []*track
	// scratch is reused across ticks for the returned events.
	scratch []Event
}

// New creates an animator where each segment lasts segmentDuration, a non-positive duration reveals lines
// instantly on the first tick.
func New(segmentDuration time.Duration) *Animator {
	return &Animator{segmentDuration: segmentDuration}
}

// Start abandons any in flight animation and begins revealing every path from its first point. Single point
// paths are complete immediately.
func (a *Animator) Start(paths [][]geometry.Point) {
	a.tracks = make([]*track, len(paths))
	for i, p := range paths {
		t := &track{target: slices.Clone(p), state: Running}
		if len(p) > 0 {
			t.committed = append(make([]geometry.Point, 0, len(p)*4), p[0])
		}
		if len(p) < 2 {
			t.state = Idle
			t.segment = max(len(p)-1, 0)
		}
		a.tracks[i] = t
	}
}

// Complete abandons any in flight animation and shows every path fully revealed.
func (a *Animator) Complete(paths [][]geometry.Point) {
	a.tracks = make([]*track, len(paths))
	for i, p := range paths {
		a.tracks[i] = &track{
			target:    slices.Clone(p),
			committed: slices.Clone(p),
			state:     Idle,
			segment:   max(len(p)-1, 0),
		}
	}
}

// Reset forgets every series.
func (a *Animator) Reset() {
	a.tracks = nil
}

// Tick advances every running series by dt. Time left over when a segment finishes carries into the next one so
// the total duration of a reveal does not depend on how often Tick is called. The returned events are only valid
// until the next call to Tick.
func (a *Animator) Tick(dt time.Duration) []Event {
	a.scratch = a.scratch[:0]
	if dt <= 0 {
		return a.scratch
	}
	for i, t := range a.tracks {
		a.advance(i, t, dt)
	}
	return a.scratch
}

func (a *Animator) advance(series int, t *track, dt time.Duration) {
	for t.state == Running && dt > 0 {
		need := a.segmentDuration - t.elapsed
		if dt < need {
			t.elapsed += dt
			dt = 0
			tip := t.target[t.segment].Lerp(t.target[t.segment+1], t.fraction(a.segmentDuration))
			a.commit(series, t, tip, false)
			continue
		}
		dt -= max(need, 0)
		end := t.target[t.segment+1]
		t.elapsed = 0
		done := t.segment+2 == len(t.target)
		if done {
			t.state = Idle
		}
		// Every corner is committed even when one tick spans several segments.
		a.commit(series, t, end, done)
		if !done {
			t.segment++
		}
	}
}

func (a *Animator) commit(series int, t *track, p geometry.Point, last bool) {
	t.committed = append(t.committed, p)
	a.scratch = append(a.scratch, Event{Series: series, Segment: t.segment, Vertex: p, Last: last})
}

// Running reports whether any series is still being revealed.
func (a *Animator) Running() bool {
	for _, t := range a.tracks {
		if t.state == Running {
			return true
		}
	}
	return false
}

// Len is the number of series the animator is tracking.
func (a *Animator) Len() int {
	return len(a.tracks)
}

// Path is the revealed part of series i, the last vertex is the current tip of the line. It returns nil for a
// series which isn't tracked.
func (a *Animator) Path(i int) []geometry.Point {
	if i < 0 || i >= len(a.tracks) {
		return nil
	}
	return a.tracks[i].committed
}

// Status is the state machine position of series i, the fraction is within the current segment.
func (a *Animator) Status(i int) (state State, segment int, fraction float64) {
	if i < 0 || i >= len(a.tracks) {
		return Idle, 0, 0
	}
	t := a.tracks[i]
	return t.state, t.segment, t.fraction(a.segmentDuration)
}
