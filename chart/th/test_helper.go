// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th holds recording fakes of the chart's collaborators for tests.
package th

import (
	"image/color"
	"slices"

	"github.com/Lexer747/linechart/chart/geometry"
)

type OpKind int

const (
	Line   OpKind = 1
	Circle OpKind = 2
)

// Op is one recorded backend call.
type Op struct {
	Kind     OpKind
	Vertices []geometry.Point
	Centre   geometry.Point
	Radius   float64
	Width    float64
	Color    color.Color
	Filled   bool
}

// Backend records every draw call and counts invalidations.
type Backend struct {
	Ops           []Op
	Invalidations int
}

func (b *Backend) DrawLine(vertices []geometry.Point, c color.Color, width float64) {
	b.Ops = append(b.Ops, Op{Kind: Line, Vertices: slices.Clone(vertices), Color: c, Width: width})
}

func (b *Backend) DrawCircle(x, y, radius float64, c color.Color, filled bool) {
	b.Ops = append(b.Ops, Op{Kind: Circle, Centre: geometry.Pt(x, y), Radius: radius, Color: c, Filled: filled})
}

func (b *Backend) Invalidate() {
	b.Invalidations++
}

// Reset forgets the recorded calls.
func (b *Backend) Reset() {
	b.Ops = b.Ops[:0]
	b.Invalidations = 0
}

// Filter returns the recorded calls of kind k drawn in colour c.
func (b *Backend) Filter(k OpKind, c color.Color) []Op {
	ret := []Op{}
	for _, op := range b.Ops {
		if op.Kind == k && op.Color == c {
			ret = append(ret, op)
		}
	}
	return ret
}

// TooltipEvent is one recorded tooltip call, Shown is false for a hide.
type TooltipEvent struct {
	Shown bool
	X, Y  float64
	Text  string
}

type Tooltip struct {
	Events []TooltipEvent
}

func (t *Tooltip) ShowValue(x, y float64, text string) {
	t.Events = append(t.Events, TooltipEvent{Shown: true, X: x, Y: y, Text: text})
}

func (t *Tooltip) Hide() {
	t.Events = append(t.Events, TooltipEvent{})
}

// Last is the most recent event, the zero event if there are none.
func (t *Tooltip) Last() TooltipEvent {
	if len(t.Events) == 0 {
		return TooltipEvent{}
	}
	return t.Events[len(t.Events)-1]
}
