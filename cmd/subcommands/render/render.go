// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package render

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lexer747/linechart/backend/raster"
	"github.com/Lexer747/linechart/backend/termcanvas"
	"github.com/Lexer747/linechart/chart/terminal"
	"github.com/Lexer747/linechart/chartfile"
	"github.com/Lexer747/linechart/cmd/subcommands/common"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/Lexer747/linechart/utils/exit"
)

type Config struct {
	background *string
	cpuprofile *string
	logFile    *string
	memprofile *string
	output     *string
	size       *string
	termSize   *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("render", flag.ContinueOnError)
	ret := &Config{
		background: f.String("background", "#ffffff", "the background `colour` of png output"),
		cpuprofile: f.String("cpuprofile", "", "write cpu profile to `file`"),
		logFile:    f.String("l", "", "write logs to `file`, \"-\" writes them to stderr. (default no logs written)"),
		memprofile: f.String("memprofile", "", "write memory profile to `file`"),
		output: f.String("o", "", "write a png to `file`, if there are several inputs the png is named after"+
			" each input inside this directory. (default draw to the terminal)"),
		size: f.String("size", "", "the pixel size of png output in the form \"<W>x<H>\", overrides the chart file"),
		termSize: f.String("term-size", "", "controls the terminal size and fixes it to the input,"+
			" input is in the form \"<H>x<W>\" e.g. 20x80. H and W must be integers - where H == height, and W == width of the terminal."),
		FlagSet: f,
	}
	f.Usage = func() {
		w := f.Output()
		fmt.Fprintf(w, "Usage of %s render: reads chart files and draws the final frame of each\n"+
			"\t render [options] FILE...\n\n"+
			"e.g. %s render -o chart.png chart.yaml\n", os.Args[0], os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunRender(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeProfile := common.StartCPUProfiling(*c.cpuprofile)
	defer closeProfile()
	defer common.ConcludeMemProfile(*c.memprofile)
	closeLogFile := common.InitLogging(*c.logFile)
	defer closeLogFile()

	toRender := c.Args()
	if len(toRender) == 0 {
		fmt.Fprint(os.Stderr, "No files found, exiting. Use -h/--help to print usage instructions.\n")
		exit.Success()
	}
	background, err := chartfile.ParseColor(*c.background)
	exit.OnErrorMsg(err, "invalid -background")

	if *c.output == "" {
		term, err := makeTerminal(*c.termSize)
		exit.OnErrorMsg(err, "failed to open terminal to draw")
		for _, path := range toRender {
			exit.OnErrorMsgf(ToTerminal(term, path), "couldn't render %q", path)
		}
		fmt.Println()
		return
	}
	for _, path := range toRender {
		out := *c.output
		if len(toRender) > 1 {
			out = filepath.Join(out, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".png")
		}
		exit.OnErrorMsgf(ToPNG(path, out, *c.size, background), "couldn't render %q", path)
	}
}

// ToPNG draws the final frame of the chart file at path into a png at out.
func ToPNG(path, out, size string, background color.Color) error {
	f, cfg, err := common.Load(path)
	if err != nil {
		return err
	}
	s, err := common.Size(size, f)
	if err != nil {
		return err
	}
	canvas := raster.New(s.Width, s.Height, background)
	defer canvas.Close()
	e, err := common.NewEngine(f, cfg, canvas, nil, s.Width, s.Height)
	if err != nil {
		return err
	}
	common.Settle(e)
	e.Draw()
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	slog.Debug("rendered png", "input", path, "output", out, "size", s)
	return nil
}

// ToTerminal draws the final frame of the chart file at path onto the terminal, one terminal cell is a
// [CellWidth] by [CellHeight] block of chart pixels.
func ToTerminal(term *terminal.Terminal, path string) error {
	f, cfg, err := common.Load(path)
	if err != nil {
		return err
	}
	canvas := termcanvas.New(term.Size(), CellWidth, CellHeight)
	w, h := canvas.PixelSize()
	e, err := common.NewEngine(f, cfg, canvas, nil, w, h)
	if err != nil {
		return err
	}
	common.Settle(e)
	e.Draw()
	buf := &bytes.Buffer{}
	canvas.Render(buf)
	if err := term.ClearScreen(); err != nil {
		return errors.Wrap(err, "failed to clear terminal")
	}
	_, err = term.Write(buf.Bytes())
	return err
}

// CellWidth and CellHeight are the chart pixels covered by one terminal cell, cells are roughly twice as tall as
// they are wide.
const (
	CellWidth  = 4.0
	CellHeight = 8.0
)

func makeTerminal(termSize string) (*terminal.Terminal, error) {
	if termSize != "" {
		return terminal.NewParsedFixedSizeTerminal(termSize)
	}
	return terminal.NewTerminal()
}
