// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package typography

import "math"

const (
	Bullet       = "•"
	HollowBullet = "◦"

	Vertical   = "│"
	Horizontal = "─"

	VerySteepUpSlope = "/"
	SteepUpSlope     = "∕"
	UpSlope          = "╱"
	GentleUpSlope    = "／"

	SteepDownSlope  = "\\"
	DownSlope       = "╲"
	GentleDownSlope = "＼"

	// Box drawing for bordered boxes.
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
)

// Gradient operates on the [0,1] range, 0 is falling straight down and 1 is rising straight up.
func Gradient(g float64) string {
	switch {
	case g > 0.9:
		return VerySteepUpSlope
	case g > 0.8:
		return SteepUpSlope
	case g > 0.65:
		return UpSlope
	case g > 0.55:
		return GentleUpSlope
	case g > 0.45:
		return Horizontal
	case g > 0.3:
		return GentleDownSlope
	case g > 0.2:
		return DownSlope
	default:
		return SteepDownSlope
	}
}

// Segment picks the glyph for a line travelling dx cells right and dy cells down. Terminal rows grow downwards
// so a negative dy rises.
func Segment(dx, dy float64) string {
	if dx < 0 {
		dx, dy = -dx, -dy
	}
	if math.Abs(dx) < 1e-9 {
		return Vertical
	}
	angle := math.Atan(-dy / dx)
	return Gradient(angle/math.Pi + 0.5)
}
