// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package tap

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Lexer747/linechart/backend/raster"
	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chartfile"
	"github.com/Lexer747/linechart/cmd/subcommands/common"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/Lexer747/linechart/utils/exit"
	"github.com/Lexer747/linechart/utils/sliceutils"
)

type Config struct {
	logFile *string
	output  *string
	size    *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("tap", flag.ContinueOnError)
	ret := &Config{
		logFile: f.String("l", "", "write logs to `file`, \"-\" writes them to stderr. (default no logs written)"),
		output:  f.String("o", "", "also write the final frame as a png to `file`"),
		size:    f.String("size", "", "the pixel size to lay the chart out at in the form \"<W>x<H>\", overrides the chart file"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s tap: replays pointer taps against a chart and prints what each one hit.\n"+
			"The taps of the chart file are replayed first then each X,Y argument.\n"+
			"\t tap [options] FILE [X,Y...]\n\n"+
			"e.g. %s tap chart.yaml 40,180\n", os.Args[0], os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunTap(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := common.InitLogging(*c.logFile)
	defer closeLogFile()
	if c.NArg() == 0 {
		exit.Usage("tap expects a chart file. Use -h/--help to print usage instructions.")
	}
	f, cfg, err := common.Load(c.Arg(0))
	exit.OnErrorMsg(err, "couldn't load chart")
	extra, err := ParseTaps(c.Args()[1:])
	exit.OnErrorMsg(err, "invalid tap")
	f.Taps = append(f.Taps, extra...)
	s, err := common.Size(*c.size, f)
	exit.OnErrorMsg(err, "invalid size")
	exit.OnError(Run(os.Stdout, f, cfg, s, *c.output))
}

// ParseTaps reads arguments of the form "X,Y".
func ParseTaps(args []string) ([]chartfile.Tap, error) {
	return sliceutils.TryMap(args, parseTap)
}

func parseTap(arg string) (chartfile.Tap, error) {
	xs, ys, found := strings.Cut(arg, ",")
	if !found {
		return chartfile.Tap{}, errors.Errorf("tap %q is not in the form X,Y", arg)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return chartfile.Tap{}, errors.Wrapf(err, "tap %q", arg)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return chartfile.Tap{}, errors.Wrapf(err, "tap %q", arg)
	}
	return chartfile.Tap{X: x, Y: y}, nil
}

// Run lays the chart out at size, settles the reveal and replays every tap in f writing one line per tap to w.
// Point values are always shown so the tooltip text can be printed.
func Run(w io.Writer, f *chartfile.File, cfg chart.Config, size chartfile.Size, output string) error {
	cfg.ShowPointValue = true
	canvas := raster.New(size.Width, size.Height, color.White)
	defer canvas.Close()
	tip := &printingTooltip{w: w}
	e, err := common.NewEngine(f, cfg, canvas, tip, size.Width, size.Height)
	if err != nil {
		return err
	}
	common.Settle(e)
	clicks := 0
	e.SetClickHandler(func() { clicks++ })
	tip.enabled = true
	for _, t := range f.Taps {
		fmt.Fprintf(w, "tap (%g,%g): ", t.X, t.Y)
		hit, ok := e.OnPointerDown(t.X, t.Y)
		e.OnPointerUp()
		if ok {
			fmt.Fprintf(w, "%s\n", hit)
		} else {
			fmt.Fprintln(w, "miss")
		}
	}
	fmt.Fprintf(w, "%d taps over %s\n", clicks, strings.Join(sliceutils.Map(e.Series(), describe), ", "))
	if output == "" {
		return nil
	}
	e.Draw()
	return canvas.SavePNG(output)
}

func describe(s *chart.Series) string {
	return fmt.Sprintf("series %d (%d points)", s.ID, s.Len())
}

// printingTooltip writes every tooltip change to w, each after the tap it belongs to.
type printingTooltip struct {
	w       io.Writer
	enabled bool
}

func (p *printingTooltip) ShowValue(x, y float64, text string) {
	if p.enabled {
		fmt.Fprintf(p.w, "show %q at (%g,%g), ", text, x, y)
	}
}

func (p *printingTooltip) Hide() {
	if p.enabled {
		fmt.Fprint(p.w, "hide, ")
	}
}
