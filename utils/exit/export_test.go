// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package exit

import "io"

// Capture redirects output to w and records exit codes in codes until the returned func is called.
func Capture(w io.Writer, codes *[]int) func() {
	oldStderr, oldExit := stderr, exitFunc
	stderr = w
	exitFunc = func(code int) { *codes = append(*codes, code) }
	return func() {
		stderr, exitFunc = oldStderr, oldExit
	}
}
