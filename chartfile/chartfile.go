// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// chartfile reads YAML descriptions of a chart: its configuration, the size to lay it out at, the series to
// plot and optionally pointer taps to replay.
//
//	config:
//	  baseLineCount: 4
//	  gridColor: "#eeeeee"
//	  segmentDuration: 300ms
//	size: {width: 400, height: 212}
//	series:
//	  - color: "#a4633a"
//	    values: [10, 20, 30, 100]
//	taps:
//	  - {x: 40, y: 180}
//
// Every config field is optional, missing fields keep [chart.DefaultConfig].
package chartfile

import (
	"bytes"
	"image/color"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

type File struct {
	Config Config   `yaml:"config,omitempty"`
	Size   *Size    `yaml:"size,omitempty"`
	Series []Series `yaml:"series"`
	Taps   []Tap    `yaml:"taps,omitempty"`
}

// Config overrides fields of [chart.DefaultConfig], a nil field keeps the default.
type Config struct {
	BaseLineCount    *int           `yaml:"baseLineCount,omitempty"`
	VerticalDotCount *int           `yaml:"verticalDotCount,omitempty"`
	MaxValue         *float64       `yaml:"maxValue,omitempty"`
	LineWidth        *float64       `yaml:"lineWidth,omitempty"`
	MarkerRadius     *float64       `yaml:"markerRadius,omitempty"`
	PaddingRatio     *float64       `yaml:"paddingRatio,omitempty"`
	GridColor        *string        `yaml:"gridColor,omitempty"`
	DotColor         *string        `yaml:"dotColor,omitempty"`
	SegmentDuration  *time.Duration `yaml:"segmentDuration,omitempty"`
	Unit             *string        `yaml:"unit,omitempty"`
	ShowPointValue   *bool          `yaml:"showPointValue,omitempty"`
}

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Series struct {
	Color  string    `yaml:"color"`
	Values []float64 `yaml:"values"`
}

// Tap is a pointer press in chart pixel space.
type Tap struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadFile will read a chart file, returning an error if a disk issue occurs or the file is un-parsable.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ret, err := Decode(f)
	return ret, errors.Wrapf(err, "failed to read chart file %q", path)
}

// Decode reads a chart file from r, unknown fields are an error.
func Decode(r io.Reader) (*File, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	ret := &File{}
	if err := d.Decode(ret); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("chart file is empty")
		}
		return nil, errors.Wrap(err, "malformed chart file")
	}
	return ret, nil
}

// Parse is [Decode] of an in memory file.
func Parse(b []byte) (*File, error) {
	return Decode(bytes.NewReader(b))
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(f); err != nil {
		return errors.Wrap(err, "failed to encode chart file")
	}
	return e.Close()
}

// ChartConfig is the default config with the overrides of the file applied. It is not validated, that happens
// when it is given to [chart.NewEngine].
func (f *File) ChartConfig() (chart.Config, error) {
	ret := chart.DefaultConfig()
	c := f.Config
	set(&ret.BaseLineCount, c.BaseLineCount)
	set(&ret.VerticalDotCount, c.VerticalDotCount)
	set(&ret.MaxValue, c.MaxValue)
	set(&ret.LineWidth, c.LineWidth)
	set(&ret.MarkerRadius, c.MarkerRadius)
	set(&ret.PaddingRatio, c.PaddingRatio)
	set(&ret.SegmentDuration, c.SegmentDuration)
	set(&ret.Unit, c.Unit)
	set(&ret.ShowPointValue, c.ShowPointValue)
	if c.GridColor != nil {
		col, err := ParseColor(*c.GridColor)
		if err != nil {
			return ret, errors.Wrap(err, "gridColor")
		}
		ret.GridColor = col
	}
	if c.DotColor != nil {
		col, err := ParseColor(*c.DotColor)
		if err != nil {
			return ret, errors.Wrap(err, "dotColor")
		}
		ret.DotColor = col
	}
	return ret, nil
}

func set[T any](dst *T, override *T) {
	if override != nil {
		*dst = *override
	}
}

// AddSeries adds every series of the file to e in order. The whole file is checked against e first with
// [File.Check], so either every series is added or none are.
func (f *File) AddSeries(e *chart.Engine) ([]chart.SeriesID, error) {
	colours, err := f.colours(e.Config().BaseLineCount)
	if err != nil {
		return nil, err
	}
	ret := make([]chart.SeriesID, 0, len(f.Series))
	for i, s := range f.Series {
		id, err := e.AddSeries(chart.Values(s.Values...), colours[i])
		check.NoErr(err, "checked series rejected")
		ret = append(ret, id)
	}
	return ret, nil
}

// Check reports the first series which can't be added to a chart with the given number of columns, because of
// its colour or its length.
func (f *File) Check(columns int) error {
	_, err := f.colours(columns)
	return err
}

func (f *File) colours(columns int) ([]color.Color, error) {
	ret := make([]color.Color, len(f.Series))
	for i, s := range f.Series {
		col, err := ParseColor(s.Color)
		if err != nil {
			return nil, errors.Wrapf(err, "series %d", i)
		}
		if len(s.Values) == 0 || len(s.Values) > columns {
			return nil, errors.Wrapf(&chart.ValidationError{Length: len(s.Values), Columns: columns}, "series %d", i)
		}
		ret[i] = col
	}
	return ret, nil
}

// ParseColor reads a hex colour in one of the forms "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA", the leading '#'
// is optional.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, errors.Errorf("colour %q must have 3, 4, 6 or 8 hex digits", s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return nil, errors.Errorf("colour %q has a non hex digit %q", s, r)
		}
	}
	c := gg.Hex(hex)
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}, nil
}

// channel rounds rather than truncates so that every 8 bit hex value survives the trip through float64.
func channel(f float64) uint8 {
	return uint8(math.Round(max(min(f, 1), 0) * 255))
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
