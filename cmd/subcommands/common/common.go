// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// common holds the setup shared by every subcommand: logging, profiling and loading a chart file into an
// engine.
package common

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chartfile"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/charmbracelet/log"
)

// DefaultSize is used when neither the flags nor the chart file give a size.
var DefaultSize = chartfile.Size{Width: 400, Height: 212}

// StderrLog is the log file name which writes coloured logs to stderr instead of a file.
const StderrLog = "-"

// InitLogging sends debug logs to file, or discards everything below error if file is empty. A file of
// [StderrLog] writes to stderr. The chart engine logs through the same handler.
func InitLogging(file string) func() {
	if file == StderrLog {
		l := log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "linechart",
		})
		slog.SetDefault(slog.New(l))
		chart.SetLogger(slog.Default())
		slog.Debug("Logging started", "file", "stderr")
		return func() {}
	}
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(h))
		chart.SetLogger(slog.Default())
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	// If no file is specified we want to stop all logging
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}

// Load reads the chart file at path and resolves its configuration.
func Load(path string) (*chartfile.File, chart.Config, error) {
	f, err := chartfile.LoadFile(path)
	if err != nil {
		return nil, chart.Config{}, err
	}
	c, err := f.ChartConfig()
	if err != nil {
		return nil, chart.Config{}, errors.Wrapf(err, "invalid config in %q", path)
	}
	slog.Debug("chart file loaded", "path", path, "series", len(f.Series), "taps", len(f.Taps))
	return f, c, nil
}

// Size picks the flag size if given, then the chart file's, then [DefaultSize].
func Size(flag string, f *chartfile.File) (chartfile.Size, error) {
	switch {
	case flag != "":
		return ParsePixelSize(flag)
	case f.Size != nil:
		return *f.Size, nil
	default:
		return DefaultSize, nil
	}
}

// NewEngine creates an engine drawing to b, lays it out at width by height then adds every series of f.
func NewEngine(f *chartfile.File, c chart.Config, b chart.Backend, t chart.Tooltip, width, height int) (*chart.Engine, error) {
	e, err := chart.NewEngine(c, b, t)
	if err != nil {
		return nil, err
	}
	if err := e.OnResize(width, height); err != nil {
		return nil, err
	}
	if _, err := f.AddSeries(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Settle runs the reveal to completion so that the next draw is the final frame.
func Settle(e *chart.Engine) {
	e.Tick(0)
	e.Tick(24 * time.Hour)
	check.Checkf(e.State() == chart.Idle, "engine didn't settle: %s", e.State())
}

func ConcludeMemProfile(path string) {
	if path != "" {
		f, err := os.Create(path)
		check.NoErr(err, "could not create memory profile")
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		check.NoErr(pprof.WriteHeapProfile(f), "could not write memory profile")
	}
}

func StartCPUProfiling(path string) func() {
	if path != "" {
		runtime.SetCPUProfileRate(1000000)
		f, err := os.Create(path)
		check.NoErr(err, "could not create CPU profile")
		check.NoErr(pprof.StartCPUProfile(f), "could not start CPU profile")
		return func() {
			pprof.StopCPUProfile()
			f.Close()
		}
	}
	return func() {}
}
