// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui

import (
	"bytes"

	"github.com/Lexer747/linechart/chart"
	"github.com/Lexer747/linechart/chart/terminal"
	"github.com/Lexer747/linechart/chart/terminal/ansi"
)

var _ chart.Tooltip = (*Tooltip)(nil)

// Tooltip shows a tapped point's value in a rounded box just above the point.
type Tooltip struct {
	toCell  func(x, y float64) (column, row int)
	box     Box
	text    string
	visible bool
	dirty   bool
}

// NewTooltip creates a hidden tooltip, toCell converts the chart's pixel coordinates to terminal cells.
func NewTooltip(toCell func(x, y float64) (column, row int)) *Tooltip {
	return &Tooltip{
		toCell: toCell,
		box:    Box{Style: RoundedCorners},
	}
}

func (t *Tooltip) ShowValue(x, y float64, text string) {
	column, row := t.toCell(x, y)
	t.text = text
	t.box.BoxText = []Typography{Plain(text, Centre)}
	t.box.BoxText[0].ToPrint = ansi.White(text)
	t.box.Position = Position{Anchor: &Cell{Row: row, Column: column}}
	t.visible = true
	t.dirty = true
}

func (t *Tooltip) Hide() {
	if t.visible {
		t.dirty = true
	}
	t.visible = false
}

func (t *Tooltip) Visible() bool {
	return t.visible
}

// Text is the last value shown, it is kept after the tooltip is hidden.
func (t *Tooltip) Text() string {
	return t.text
}

// Dirty reports whether the tooltip changed since it was last drawn.
func (t *Tooltip) Dirty() bool {
	return t.dirty
}

// Draw writes the box into b if the tooltip is visible.
func (t *Tooltip) Draw(size terminal.Size, b *bytes.Buffer) {
	t.dirty = false
	if !t.visible {
		return
	}
	t.box.Draw(size, b)
}
