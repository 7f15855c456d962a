// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/Lexer747/linechart/chart/terminal"
	"github.com/Lexer747/linechart/utils/check"
)

type Typography struct {
	ToPrint string
	// TextLen isn't always equal to len(ToPrint) because of unicode characters and ansi control characters
	// hence why it's a separate field.
	TextLen   int
	Alignment Alignment
}

// Plain is a [Typography] of text without any control characters.
func Plain(text string, a Alignment) Typography {
	return Typography{ToPrint: text, TextLen: utf8.RuneCountInString(text), Alignment: a}
}

func (t Typography) init(maxTextLength int) iTypography {
	return iTypography{
		Typography:    t,
		maxTextLength: maxTextLength,
	}
}

type iTypography struct {
	Typography
	maxTextLength int
}

func (t iTypography) Draw(_ terminal.Size, b *bytes.Buffer) {
	if t.TextLen > t.maxTextLength {
		b.WriteString(t.ToPrint)
		return
	}
	padding := t.maxTextLength - t.TextLen
	switch t.Alignment {
	case Centre:
		left := padding / 2
		b.WriteString(strings.Repeat(" ", left) + t.ToPrint + strings.Repeat(" ", padding-left))
	case Left:
		b.WriteString(t.ToPrint + strings.Repeat(" ", padding))
	case Right:
		b.WriteString(strings.Repeat(" ", padding) + t.ToPrint)
	default:
		check.Unreachable("alignment %s", t.Alignment)
	}
}
