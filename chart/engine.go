// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"github.com/Lexer747/linechart/chart/geometry"
	"github.com/Lexer747/linechart/chart/hittest"
	"github.com/Lexer747/linechart/chart/reveal"
	"github.com/Lexer747/linechart/chart/series"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/errors"
)

// DisplayState is the state of the surface the engine draws on:
//
//	Unmeasured -> LaidOut -> (Revealing | Idle)
type DisplayState int

const (
	// Unmeasured means the host hasn't given the engine a size yet, nothing can be drawn.
	Unmeasured DisplayState = 0
	// LaidOut means the geometry is known but the next frame hasn't decided between revealing and idling.
	LaidOut DisplayState = 1
	// Revealing means at least one line is being drawn in.
	Revealing DisplayState = 2
	// Idle means every line is fully drawn.
	Idle DisplayState = 3
)

func (s DisplayState) String() string {
	switch s {
	case Unmeasured:
		return "Unmeasured"
	case LaidOut:
		return "LaidOut"
	case Revealing:
		return "Revealing"
	case Idle:
		return "Idle"
	default:
		return "Unknown DisplayState: " + strconv.Itoa(int(s))
	}
}

// Engine owns the grid, the series and their reveal animation for one chart.
//
// An Engine is driven by its host: layout changes through [Engine.OnResize], frames through [Engine.Tick] and
// [Engine.Draw], and pointer input through [Engine.OnPointerDown] and [Engine.OnPointerUp]. It is not safe for
// concurrent use, all calls must come from the same goroutine.
type Engine struct {
	config  Config
	backend Backend
	tooltip Tooltip
	onClick func()

	grid     *geometry.Grid
	store    *series.Store
	animator *reveal.Animator

	// revealPending is set when the data changed and the next frame should start a reveal.
	revealPending bool
	// framed is false between a layout and the first frame after it.
	framed bool
	// tooltipShown is set between a ShowValue and the next Hide.
	tooltipShown bool
}

// NewEngine creates an unmeasured engine. A nil tooltip is replaced by [NoTooltip].
func NewEngine(c Config, b Backend, t Tooltip) (*Engine, error) {
	if b == nil {
		return nil, errors.New("chart: a Backend is required")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "chart: cannot create engine")
	}
	if t == nil {
		t = NoTooltip{}
	}
	return &Engine{
		config:   c,
		backend:  b,
		tooltip:  t,
		store:    series.NewStore(c.BaseLineCount, c.MaxValue),
		animator: reveal.New(c.SegmentDuration),
	}, nil
}

// OnResize lays the grid out for the new container size and remaps every series. Lines which were already shown
// are shown fully formed in the new geometry, the reveal is only replayed when data was added since the last
// frame (this includes series added before the first layout).
func (e *Engine) OnResize(width, height int) error {
	g, err := geometry.Layout(width, height, e.config.layout())
	if err != nil {
		return errors.Wrapf(err, "chart: cannot lay out %dx%d", width, height)
	}
	e.grid = g
	e.framed = false
	e.remap()
	logger().Debug("chart laid out", slog.String("grid", g.String()), slog.Bool("revealPending", e.revealPending))
	return nil
}

// remap moves every series onto the current grid and scale, abandoning any reveal in flight.
func (e *Engine) remap() {
	e.store.RemapAll(e.grid, e.config.MaxValue)
	if !e.revealPending {
		e.animator.Complete(e.store.Paths())
	}
	e.backend.Invalidate()
}

// AddSeries adds a line to the chart, it fails with a [*ValidationError] if values is empty or longer than the
// number of columns. Every line currently shown is revealed again from the start on the next frame.
func (e *Engine) AddSeries(values []PointValue, c color.Color) (SeriesID, error) {
	id, err := e.store.Add(values, c)
	if err != nil {
		return 0, errors.Wrap(err, "chart: cannot add series")
	}
	e.hideTooltip()
	e.animator.Reset()
	e.revealPending = true
	logger().Debug("series added", slog.Int("id", int(id)), slog.Int("points", len(values)), slog.Int("total", e.store.Len()))
	e.backend.Invalidate()
	return id, nil
}

// ClearSeries removes every line, the grid and configuration are kept.
func (e *Engine) ClearSeries() {
	e.store.Clear()
	e.animator.Reset()
	e.revealPending = false
	logger().Debug("series cleared")
	e.backend.Invalidate()
}

// Tick is called by the host once per frame with the time since the previous frame. It starts a pending reveal
// (the starting frame does not advance it) or advances the reveal in progress, returning the vertices reached
// this frame. The events are only valid until the next Tick.
func (e *Engine) Tick(dt time.Duration) []reveal.Event {
	if e.grid == nil {
		return nil
	}
	e.framed = true
	if e.revealPending {
		e.revealPending = false
		e.animator.Start(e.store.Paths())
		logger().Debug("reveal started", slog.Int("series", e.store.Len()))
		e.backend.Invalidate()
		return nil
	}
	wasRunning := e.animator.Running()
	events := e.animator.Tick(dt)
	if len(events) > 0 {
		e.backend.Invalidate()
	}
	if wasRunning && !e.animator.Running() {
		logger().Debug("reveal complete", slog.Int("series", e.store.Len()))
	}
	return events
}

// Draw paints the current frame: the grid lines, the reference dots, then every series in insertion order so
// that later series are on top. Each series paints its revealed path then its markers.
func (e *Engine) Draw() {
	if e.grid == nil {
		return
	}
	c := e.config
	for _, l := range e.grid.VerticalLines {
		e.backend.DrawLine(l.Vertices(), c.GridColor, c.LineWidth)
	}
	for _, d := range e.grid.VerticalDots {
		e.backend.DrawCircle(d.X, d.Y, c.MarkerRadius, c.DotColor, true)
	}
	for i, line := range e.store.All() {
		if path := e.animator.Path(i); len(path) > 1 {
			e.backend.DrawLine(path, line.Color, c.LineWidth)
		}
		for _, m := range line.Mapped {
			e.backend.DrawCircle(m.X, m.Y, c.MarkerRadius, line.Color, true)
		}
	}
}

// OnPointerDown hit tests the pointer against every point. When point values are enabled a hit shows the tooltip
// and a miss hides it.
func (e *Engine) OnPointerDown(x, y float64) (hittest.Hit, bool) {
	if e.grid == nil {
		return hittest.Hit{}, false
	}
	hit, ok := hittest.Test(x, y, e.store.Slice(), e.config.MarkerRadius)
	logger().Debug("pointer down", slog.Float64("x", x), slog.Float64("y", y), slog.Bool("hit", ok))
	if !ok {
		e.hideTooltip()
		return hit, false
	}
	if e.config.ShowPointValue {
		e.tooltip.ShowValue(hit.X, hit.Y, e.FormatValue(hit.Value))
		e.tooltipShown = true
	}
	return hit, true
}

// OnPointerUp forwards the release to the click handler, if there is one.
func (e *Engine) OnPointerUp() {
	if e.onClick != nil {
		e.onClick()
	}
}

// FormatValue is the tooltip text for value, the value truncated to an integer followed by the unit.
func (e *Engine) FormatValue(value float64) string {
	return strconv.Itoa(int(value)) + e.config.Unit
}

// hideTooltip only hides a tooltip the engine showed.
func (e *Engine) hideTooltip() {
	if e.config.ShowPointValue && e.tooltipShown {
		e.tooltip.Hide()
		e.tooltipShown = false
	}
}

// SetBaseLineCount changes the number of columns. It fails with a [*ConfigurationError] if n is less than 2 or
// a stored series is longer than n, nothing is changed in that case.
func (e *Engine) SetBaseLineCount(n int) error {
	next := e.config
	next.BaseLineCount = n
	return e.apply(next)
}

// SetVerticalDotCount changes the number of reference dots, it fails with a [*ConfigurationError] if n is less
// than 2.
func (e *Engine) SetVerticalDotCount(n int) error {
	next := e.config
	next.VerticalDotCount = n
	return e.apply(next)
}

// apply validates next then swaps it in, laying out the grid again if the engine is measured.
func (e *Engine) apply(next Config) error {
	if err := next.layout().Validate(); err != nil {
		return errors.Wrap(err, "chart: configuration rejected")
	}
	if err := e.store.SetColumns(next.BaseLineCount); err != nil {
		return errors.Wrap(err, "chart: configuration rejected")
	}
	e.config = next
	if e.grid == nil {
		e.backend.Invalidate()
		return nil
	}
	g, err := geometry.Layout(e.grid.Width, e.grid.Height, next.layout())
	check.NoErr(err, "validated layout failed")
	e.grid = g
	e.remap()
	return nil
}

// SetMaxValue changes the value plotted at the top of the chart. Non-positive values are ignored and the
// previous maximum is kept.
func (e *Engine) SetMaxValue(v float64) {
	if !(v > 0) {
		logger().Debug("ignoring non-positive max value", slog.Float64("value", v), slog.Float64("kept", e.config.MaxValue))
		return
	}
	e.config.MaxValue = v
	if e.grid == nil {
		e.store.RemapAll(nil, v)
		return
	}
	e.remap()
}

// SetCoordinateColor sets the colour of the grid lines.
func (e *Engine) SetCoordinateColor(c color.Color) {
	e.config.GridColor = c
	e.backend.Invalidate()
}

// SetReferCircleColor sets the colour of the reference dots.
func (e *Engine) SetReferCircleColor(c color.Color) {
	e.config.DotColor = c
	e.backend.Invalidate()
}

// SetNeedShowPointValue enables or disables the tooltip on tap.
func (e *Engine) SetNeedShowPointValue(show bool) {
	e.config.ShowPointValue = show
}

// SetClickHandler sets the function called by [Engine.OnPointerUp], nil removes it.
func (e *Engine) SetClickHandler(f func()) {
	e.onClick = f
}

func (e *Engine) State() DisplayState {
	switch {
	case e.grid == nil:
		return Unmeasured
	case !e.framed || e.revealPending:
		return LaidOut
	case e.animator.Running():
		return Revealing
	default:
		return Idle
	}
}

func (e *Engine) Config() Config {
	return e.config
}

// Geometry is the current grid, nil when unmeasured.
func (e *Engine) Geometry() *geometry.Grid {
	return e.grid
}

// Series are the lines in insertion order, the slice must not be modified.
func (e *Engine) Series() []*series.Series {
	return e.store.Slice()
}

// RevealedPath is the part of series i drawn so far.
func (e *Engine) RevealedPath(i int) []geometry.Point {
	return e.animator.Path(i)
}
