// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package common

import (
	"strconv"
	"strings"

	"github.com/Lexer747/linechart/chartfile"
	"github.com/Lexer747/linechart/utils/errors"
)

// ParsePixelSize reads a size in the form "<W>x<H>", e.g. "400x212".
func ParsePixelSize(size string) (chartfile.Size, error) {
	w, h, found := strings.Cut(size, "x")
	if !found {
		return chartfile.Size{}, errors.Errorf("size %q is not in the form <W>x<H>", size)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return chartfile.Size{}, errors.Wrapf(err, "width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return chartfile.Size{}, errors.Wrapf(err, "height %q", h)
	}
	if width <= 0 || height <= 0 {
		return chartfile.Size{}, errors.Errorf("size %q must be positive", size)
	}
	return chartfile.Size{Width: width, Height: height}, nil
}
