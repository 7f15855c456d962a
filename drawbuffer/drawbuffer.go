// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package drawbuffer

import (
	"bytes"
	"io"
)

// Index is a z-index into a [Collection].
type Index int

const (
	// ChartIndex holds the rendered chart cells.
	ChartIndex Index = 0
	// TooltipIndex holds the tooltip box, it must be readable over the chart.
	TooltipIndex Index = 1

	indexCount = 2
)

// PaintOrder is back to front, the first index is painted first so everything after it is on top.
var PaintOrder = []Index{
	ChartIndex,
	TooltipIndex,
}

// Collection keeps a byte buffer for every z-index instead of building each frame out of string literals. The
// buffers are re-used frame to frame so the memory needed for drawing is bounded by the single largest frame.
type Collection struct {
	storage []*bytes.Buffer
}

// NewCollection creates a [Collection] with a buffer for every index in [PaintOrder].
func NewCollection() *Collection {
	ret := &Collection{
		storage: make([]*bytes.Buffer, indexCount),
	}
	for i := range indexCount {
		ret.storage[i] = &bytes.Buffer{}
	}
	return ret
}

// Get the underlying buffer for this z-index
func (b *Collection) Get(z Index) *bytes.Buffer {
	return b.storage[z]
}

// Reset empties the given buffers, or every buffer if none are given.
func (b *Collection) Reset(toReset ...Index) {
	if len(toReset) == 0 {
		toReset = PaintOrder
	}
	for _, idx := range toReset {
		b.Get(idx).Reset()
	}
}

// Composite writes every buffer to w in [PaintOrder]. The buffers are left intact so an unchanged layer can be
// painted again next frame.
func (b *Collection) Composite(w io.Writer) (int64, error) {
	var total int64
	for _, idx := range PaintOrder {
		n, err := w.Write(b.Get(idx).Bytes())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
