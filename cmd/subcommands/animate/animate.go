// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package animate

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/Lexer747/linechart/backend/termcanvas"
	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chart/terminal"
	"github.com/Lexer747/linechart/chart/terminal/ansi"
	"github.com/Lexer747/linechart/chartfile"
	"github.com/Lexer747/linechart/cmd/subcommands/common"
	"github.com/Lexer747/linechart/cmd/subcommands/render"
	"github.com/Lexer747/linechart/drawbuffer"
	"github.com/Lexer747/linechart/gui"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/Lexer747/linechart/utils/exit"
	"github.com/Lexer747/linechart/utils/sliceutils"
	"github.com/Lexer747/linechart/utils/timeutils"
)

type Config struct {
	fps        *float64
	logFile    *string
	showValues *bool
	termSize   *string
	watch      *bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("animate", flag.ContinueOnError)
	ret := &Config{
		fps:        f.Float64("fps", 30, "the number of frames drawn per second, must be positive"),
		logFile:    f.String("l", "", "write logs to `file`, \"-\" writes them to stderr. (default no logs written)"),
		showValues: f.Bool("show-values", true, "show the value of a point in a tooltip when it is tapped"),
		termSize: f.String("term-size", "", "controls the terminal size and fixes it to the input,"+
			" input is in the form \"<H>x<W>\" e.g. 20x80."),
		watch:   f.Bool("watch", false, "replay the chart with the new series whenever the chart file is saved"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s animate: plays the reveal of a chart file in the terminal\n"+
			"\t animate [options] FILE\n\n"+
			"Press "+ansi.Green("r")+" to replay, "+ansi.Green("n")+" to tap the next point, "+
			ansi.Green("h")+" to hide the tooltip and "+ansi.Green("ctrl+c")+" to exit.\n", os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunAnimate(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := common.InitLogging(*c.logFile)
	defer closeLogFile()
	if c.NArg() != 1 {
		exit.Usage("animate expects exactly one chart file. Use -h/--help to print usage instructions.")
	}
	interval := timeutils.FrameInterval(*c.fps)
	if interval == 0 {
		exit.Usage("-fps must be positive")
	}

	term, err := makeTerminal(*c.termSize)
	exit.OnErrorMsg(err, "failed to open terminal to draw")
	f, cfg, err := common.Load(c.Arg(0))
	exit.OnErrorMsg(err, "couldn't load chart")
	cfg.ShowPointValue = *c.showValues
	a, err := NewAnimation(term, f, cfg)
	exit.OnErrorMsg(err, "couldn't create chart")

	ctx, cancelFunc := context.WithCancelCause(context.Background())
	defer cancelFunc(nil)
	cleanup, err := term.StartRaw(ctx, cancelFunc, a.Listener())
	exit.OnErrorMsg(err, "failed to start terminal")
	defer cleanup()
	if *c.watch {
		files, err := Watch(ctx, c.Arg(0))
		exit.OnErrorMsg(err, "failed to watch chart file")
		a.Follow(files)
	}
	err = a.Run(ctx, interval)
	if err != nil && !errors.Is(err, terminal.ErrUserCancelled) {
		cleanup()
		exit.OnError(err)
	}
}

// Animation plays a chart on the terminal. Input arrives on the terminal's goroutines and is forwarded to the
// goroutine calling [Animation.Run], every engine call happens there.
type Animation struct {
	term    *terminal.Terminal
	file    *chartfile.File
	canvas  *termcanvas.Canvas
	tooltip *gui.Tooltip
	engine  *chart.Engine
	buffers *drawbuffer.Collection
	keys    chan rune
	reloads <-chan *chartfile.File

	// tapped is the index of the last point tapped by the 'n' key, counting through every series in order.
	tapped        int
	revealStarted time.Duration
	elapsed       time.Duration
	revealing     bool
}

func NewAnimation(term *terminal.Terminal, f *chartfile.File, cfg chart.Config) (*Animation, error) {
	a := &Animation{
		term:    term,
		file:    f,
		canvas:  termcanvas.New(term.Size(), render.CellWidth, render.CellHeight),
		buffers: drawbuffer.NewCollection(),
		keys:    make(chan rune, 8),
		tapped:  -1,
	}
	a.tooltip = gui.NewTooltip(a.canvas.ToCell)
	w, h := a.canvas.PixelSize()
	var err error
	a.engine, err = common.NewEngine(f, cfg, a.canvas, a.tooltip, w, h)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Listener forwards the animation keys, it must be given to [terminal.Terminal.StartRaw].
func (a *Animation) Listener() terminal.Listener {
	return terminal.Listener{
		Name:       "animate",
		Applicable: func(r rune) bool { return r == 'r' || r == 'n' || r == 'h' },
		Action: func(r rune) error {
			select {
			case a.keys <- r:
			default:
				slog.Debug("dropping key, frame loop is behind", "key", string(r))
			}
			return nil
		},
	}
}

// Follow makes [Animation.Run] reload every file received on files, see [Watch].
func (a *Animation) Follow(files <-chan *chartfile.File) {
	a.reloads = files
}

// Run draws a frame every interval until ctx is done, returning its cause.
func (a *Animation) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	if err := a.term.ClearScreen(); err != nil {
		return err
	}
	last := time.Now()
	if err := a.Frame(0); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case r := <-a.keys:
			if err := a.HandleKey(r); err != nil {
				return err
			}
		case f, ok := <-a.reloads:
			if !ok {
				a.reloads = nil
				continue
			}
			if err := a.Reload(f); err != nil {
				slog.Warn("keeping the previous chart", "err", err)
			}
		case now := <-ticker.C:
			if err := a.Frame(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}
	}
}

// HandleKey applies one key press.
func (a *Animation) HandleKey(r rune) error {
	switch r {
	case 'r':
		a.engine.ClearSeries()
		_, err := a.file.AddSeries(a.engine)
		return err
	case 'n':
		a.tapNext()
	case 'h':
		a.engine.OnPointerDown(math.Inf(-1), math.Inf(-1))
	}
	return nil
}

func (a *Animation) tapNext() {
	total := sliceutils.SumFunc(a.engine.Series(), (*chart.Series).Len)
	if total == 0 {
		return
	}
	a.tapped = (a.tapped + 1) % total
	i := a.tapped
	for _, line := range a.engine.Series() {
		if i < line.Len() {
			p := line.Mapped[i]
			hit, ok := a.engine.OnPointerDown(p.X, p.Y)
			a.engine.OnPointerUp()
			slog.Debug("tapped", "x", p.X, "y", p.Y, "hit", ok, "series", hit.SeriesIndex, "point", hit.PointIndex)
			return
		}
		i -= line.Len()
	}
}

// Frame advances the chart by dt and paints it if anything changed.
func (a *Animation) Frame(dt time.Duration) error {
	if err := a.resize(); err != nil {
		return err
	}
	a.elapsed += dt
	a.engine.Tick(dt)
	a.logReveal()
	if !a.canvas.Dirty() && !a.tooltip.Dirty() {
		return nil
	}
	a.canvas.Clear()
	a.engine.Draw()
	a.buffers.Reset()
	a.canvas.Render(a.buffers.Get(drawbuffer.ChartIndex))
	a.tooltip.Draw(a.canvas.Size(), a.buffers.Get(drawbuffer.TooltipIndex))
	_, err := a.buffers.Composite(a.term)
	return errors.Wrap(err, "failed to paint frame")
}

func (a *Animation) resize() error {
	if err := a.term.UpdateCurrentTerminalSize(); err != nil {
		return err
	}
	size := a.term.Size()
	if size == a.canvas.Size() {
		return nil
	}
	a.canvas.Resize(size)
	a.engine.OnPointerDown(math.Inf(-1), math.Inf(-1))
	if err := a.term.ClearScreen(); err != nil {
		return err
	}
	return a.engine.OnResize(a.canvas.PixelSize())
}

func (a *Animation) logReveal() {
	revealing := a.engine.State() == chart.Revealing
	switch {
	case revealing && !a.revealing:
		a.revealStarted = a.elapsed
	case !revealing && a.revealing:
		slog.Debug("reveal finished", "took", timeutils.HumanString(a.elapsed-a.revealStarted, 3))
	}
	a.revealing = revealing
}

// Engine is the chart being animated.
func (a *Animation) Engine() *chart.Engine {
	return a.engine
}

// Tooltip is the tooltip the chart shows values in.
func (a *Animation) Tooltip() *gui.Tooltip {
	return a.tooltip
}

func makeTerminal(termSize string) (*terminal.Terminal, error) {
	if termSize != "" {
		return terminal.NewParsedFixedSizeTerminal(termSize)
	}
	return terminal.NewTerminal()
}
