// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// check holds assertions for invariants the program itself guarantees, a failure is always a bug and
// therefore panics rather than returning an error.
package check

import "fmt"

func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic(assertMsg)
	}
}

func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic(fmt.Sprintf(format, a...))
	}
}

// NoErr panics with msg when err is not nil.
func NoErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}

// Unreachable panics, it marks the default case of a switch over a closed set of values.
func Unreachable(format string, a ...any) {
	panic("unreachable: " + fmt.Sprintf(format, a...))
}
