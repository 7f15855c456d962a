// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package exit

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes.
const (
	CodeSuccess = 0
	CodeError   = 1
	CodeUsage   = 2
)

var (
	stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// OnError should be called when there is no way from the program to continue functioning normally, if err is
// not nil the program will exit and print the error which caused the issue.
func OnError(err error) {
	if err != nil {
		fail(CodeError, err.Error())
	}
}

// OnErrorMsg is like [OnError] but has a custom message when err is not nil.
func OnErrorMsg(err error, msg string) {
	if err != nil {
		fail(CodeError, msg+": "+err.Error())
	}
}

// OnErrorMsgf is like [OnErrorMsg] but will format the string according to printf before writing it.
func OnErrorMsgf(err error, format string, args ...any) {
	if err != nil {
		fail(CodeError, fmt.Sprintf(format, args...)+": "+err.Error())
	}
}

// Success is a alias for [os.Exit(0)].
func Success() {
	exitFunc(CodeSuccess)
}

// Usage prints msg and exits with [CodeUsage].
func Usage(msg string) {
	fail(CodeUsage, msg)
}

// Silent exits successfully without printing anything, e.g. after the usage was requested.
func Silent() {
	exitFunc(CodeSuccess)
}

func fail(code int, msg string) {
	fmt.Fprintln(stderr, msg)
	exitFunc(code)
}
