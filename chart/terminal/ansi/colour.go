// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import (
	"image/color"
	"math"
	"strconv"
)

// Colour is one of the 16 standard foreground colours, the value is its SGR code.
type Colour int

const (
	Black         Colour = 30
	DarkRed       Colour = 31
	DarkGreen     Colour = 32
	DarkYellow    Colour = 33
	DarkBlue      Colour = 34
	DarkMagenta   Colour = 35
	DarkCyan      Colour = 36
	LightGray     Colour = 37
	BrightBlack   Colour = 90
	BrightRed     Colour = 91
	BrightGreen   Colour = 92
	BrightYellow  Colour = 93
	BrightBlue    Colour = 94
	BrightMagenta Colour = 95
	BrightCyan    Colour = 96
	BrightWhite   Colour = 97
)

// palette is the xterm rendering of each colour.
var palette = []struct {
	Colour Colour
	RGB    [3]uint8
}{
	{Black, [3]uint8{0, 0, 0}},
	{DarkRed, [3]uint8{205, 0, 0}},
	{DarkGreen, [3]uint8{0, 205, 0}},
	{DarkYellow, [3]uint8{205, 205, 0}},
	{DarkBlue, [3]uint8{0, 0, 238}},
	{DarkMagenta, [3]uint8{205, 0, 205}},
	{DarkCyan, [3]uint8{0, 205, 205}},
	{LightGray, [3]uint8{229, 229, 229}},
	{BrightBlack, [3]uint8{127, 127, 127}},
	{BrightRed, [3]uint8{255, 0, 0}},
	{BrightGreen, [3]uint8{0, 255, 0}},
	{BrightYellow, [3]uint8{255, 255, 0}},
	{BrightBlue, [3]uint8{92, 92, 255}},
	{BrightMagenta, [3]uint8{255, 0, 255}},
	{BrightCyan, [3]uint8{0, 255, 255}},
	{BrightWhite, [3]uint8{255, 255, 255}},
}

// Nearest finds the palette colour closest to c by euclidean distance in RGB, alpha is ignored.
func Nearest(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	best := Black
	bestDistance := math.MaxInt
	for _, p := range palette {
		dr := int(n.R) - int(p.RGB[0])
		dg := int(n.G) - int(p.RGB[1])
		db := int(n.B) - int(p.RGB[2])
		if d := dr*dr + dg*dg + db*db; d < bestDistance {
			best, bestDistance = p.Colour, d
		}
	}
	return best
}

// Paint wraps text in this colour.
func (c Colour) Paint(text string) string {
	return Foreground(int(c), text)
}

// Code is the select graphic rendition sequence which starts this colour.
func (c Colour) Code() string {
	return CSI + strconv.Itoa(int(c)) + "m"
}

func (c Colour) String() string {
	switch c {
	case Black:
		return "Black"
	case DarkRed:
		return "DarkRed"
	case DarkGreen:
		return "DarkGreen"
	case DarkYellow:
		return "DarkYellow"
	case DarkBlue:
		return "DarkBlue"
	case DarkMagenta:
		return "DarkMagenta"
	case DarkCyan:
		return "DarkCyan"
	case LightGray:
		return "LightGray"
	case BrightBlack:
		return "BrightBlack"
	case BrightRed:
		return "BrightRed"
	case BrightGreen:
		return "BrightGreen"
	case BrightYellow:
		return "BrightYellow"
	case BrightBlue:
		return "BrightBlue"
	case BrightMagenta:
		return "BrightMagenta"
	case BrightCyan:
		return "BrightCyan"
	case BrightWhite:
		return "BrightWhite"
	default:
		return "Unknown Colour: " + strconv.Itoa(int(c))
	}
}
