// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package timeutils

import (
	"time"

	"github.com/Lexer747/linechart/utils/numeric"
)

// HumanString prints t with only the first digits significant figures.
func HumanString(t time.Duration, digits int) string {
	rounded := numeric.TruncateToNearestSigFigInt(int(t), digits)
	return time.Duration(rounded).String()
}

// FrameInterval is the time between frames at fps frames per second, 0 for a non-positive rate.
func FrameInterval(fps float64) time.Duration {
	if !(fps > 0) {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
