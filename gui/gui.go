// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui

import (
	"bytes"
	"strconv"

	"github.com/Lexer747/linechart/chart/terminal"
)

// Draw is the high level interface that any GUI component should implement which will draw itself to the byte
// buffer.
type Draw interface {
	Draw(size terminal.Size, b *bytes.Buffer)
}

var _ Draw = (&Box{})
var _ Draw = (&iTypography{})
var _ Draw = (&Tooltip{})

// Cell is a 0-indexed terminal position.
type Cell struct {
	Row, Column int
}

type Position struct {
	Vertical   Alignment
	Horizontal Alignment
	Padding    Padding
	// Anchor if set places the box just above the cell instead of aligning it to the screen, it moves below if
	// there isn't room above.
	Anchor *Cell
}

type Padding struct {
	Top, Bottom, Left, Right int
}

var NoPadding Padding = Padding{}

type Alignment int

const (
	Left   Alignment = 1
	Centre Alignment = 2
	Right  Alignment = 3
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "Left"
	case Centre:
		return "Centre"
	case Right:
		return "Right"
	default:
		return "Unknown Alignment: " + strconv.Itoa(int(a))
	}
}
