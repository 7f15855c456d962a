// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/Lexer747/linechart/chart/terminal"
	"github.com/Lexer747/linechart/chart/terminal/ansi"
	"github.com/Lexer747/linechart/chart/terminal/typography"
	"github.com/Lexer747/linechart/utils/check"
	"github.com/Lexer747/linechart/utils/numeric"
)

type Box struct {
	// BoxText is the slice of text to show where each element represents a separate line
	BoxText       []Typography
	Position      Position
	Style         Style
	Configuration BoxCfg
}

type Style int

const (
	RoundedCorners Style = 1
	SharpCorners   Style = 2
)

func (s Style) String() string {
	switch s {
	case RoundedCorners:
		return "RoundedCorners"
	case SharpCorners:
		return "SharpCorners"
	default:
		return "Unknown Style: " + strconv.Itoa(int(s))
	}
}

type BoxCfg struct {
	DefaultWidth int
}

func (b Box) Draw(size terminal.Size, buf *bytes.Buffer) {
	p := b.position(size)
	bar := strings.Repeat(typography.Horizontal, b.boxTextWidth())
	corners := getCorner(b.Style)
	buf.WriteString(ansi.CursorPosition(p.Row+1, p.Column+1) + corners.TopLeft + bar + corners.TopRight)
	for i, t := range b.BoxText {
		buf.WriteString(ansi.CursorPosition(p.Row+i+2, p.Column+1) + typography.Vertical)
		t.init(b.boxTextWidth()).Draw(size, buf)
		buf.WriteString(typography.Vertical)
	}
	buf.WriteString(ansi.CursorPosition(p.Row+b.height()+2, p.Column+1) + corners.BottomLeft + bar + corners.BottomRight)
}

// position is the 0-indexed top left corner of the box.
func (b Box) position(size terminal.Size) Cell {
	p := b.Position
	var ret Cell
	switch {
	case p.Anchor != nil:
		return b.anchored(size, *p.Anchor)
	case p.Horizontal == Centre && p.Vertical == Centre:
		ret = Cell{
			Row:    size.Height/2 - b.outerHeight()/2,
			Column: size.Width/2 - b.width()/2,
		}
	case p.Vertical == Centre && p.Horizontal == Right:
		ret = Cell{
			Row:    size.Height/2 - b.outerHeight()/2,
			Column: size.Width - b.width(),
		}
	default:
		check.Unreachable("box position %+v", p)
	}
	if p.Padding != NoPadding {
		ret.Row = ret.Row - p.Padding.Top + p.Padding.Bottom
		ret.Column = ret.Column - p.Padding.Left + p.Padding.Right
	}
	return ret
}

func (b Box) anchored(size terminal.Size, anchor Cell) Cell {
	ret := Cell{
		Row:    anchor.Row - b.outerHeight(),
		Column: anchor.Column - b.width()/2,
	}
	if ret.Row < 0 {
		ret.Row = anchor.Row + 1
	}
	ret.Row = numeric.Clamp(ret.Row, 0, max(size.Height-b.outerHeight(), 0))
	ret.Column = numeric.Clamp(ret.Column, 0, max(size.Width-b.width(), 0))
	return ret
}

func (b Box) height() int {
	return len(b.BoxText)
}

func (b Box) outerHeight() int {
	return b.height() + 2
}

func (b Box) width() int {
	return b.boxTextWidth() + b.widthFromStyle()
}

func (b Box) boxTextWidth() int {
	if b.height() == 0 {
		return b.Configuration.DefaultWidth
	}
	ret := 0
	for _, t := range b.BoxText {
		ret = max(ret, t.TextLen)
	}
	return ret
}

func (b Box) widthFromStyle() int {
	switch b.Style {
	case RoundedCorners, SharpCorners:
		return 2
	default:
		check.Unreachable("box style %s", b.Style)
		return 0
	}
}

type corners struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
}

func getCorner(s Style) corners {
	switch s {
	case RoundedCorners:
		return corners{
			TopLeft:     typography.TopLeft,
			TopRight:    typography.TopRight,
			BottomLeft:  typography.BottomLeft,
			BottomRight: typography.BottomRight,
		}
	case SharpCorners:
		return corners{TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘"}
	default:
		check.Unreachable("box style %s", s)
		return corners{}
	}
}
