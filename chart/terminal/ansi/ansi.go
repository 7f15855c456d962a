// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import "strconv"

type ED int // Erase in Display

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	CursorScreen ED = 2

	// R resets every graphic rendition.
	R = CSI + "0m"

	HideCursor = CSI + "?25l"
	ShowCursor = CSI + "?25h"
)

var s = strconv.Itoa

var Clear = EraseInDisplay(CursorScreen)
var Home = CursorPosition(1, 1)

// CursorPosition moves the cursor, both row and column are 1-indexed.
func CursorPosition(row, column int) string { return CSI + s(row) + ";" + s(column) + "H" }

func EraseInDisplay(n ED) string { return CSI + s(int(n)) + "J" }

// Foreground wraps text in the select graphic rendition for the foreground colour code then resets.
func Foreground(code int, text string) string { return CSI + s(code) + "m" + text + R }

func White(s string) string { return Foreground(int(BrightWhite), s) }
func Green(s string) string { return Foreground(int(BrightGreen), s) }
