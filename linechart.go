// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Lexer747/linechart/cmd/subcommands/animate"
	"github.com/Lexer747/linechart/cmd/subcommands/render"
	"github.com/Lexer747/linechart/cmd/subcommands/tap"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/Lexer747/linechart/utils/exit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		exit.Usage("a subcommand is required")
	}
	switch os.Args[1] {
	case "render":
		r := render.GetFlags()
		FlagParseError(r.Parse(os.Args[2:]))
		render.RunRender(r)
	case "animate":
		a := animate.GetFlags()
		FlagParseError(a.Parse(os.Args[2:]))
		animate.RunAnimate(a)
	case "tap":
		t := tap.GetFlags()
		FlagParseError(t.Parse(os.Args[2:]))
		tap.RunTap(t)
	case "-h", "--help", "help":
		usage()
		exit.Silent()
	default:
		usage()
		exit.Usage(fmt.Sprintf("unknown subcommand %q", os.Args[1]))
	}
	exit.Success()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s: draws line charts described by YAML chart files\n"+
		"\t %s render [options] FILE...\n"+
		"\t %s animate [options] FILE\n"+
		"\t %s tap [options] FILE [X,Y...]\n\n"+
		"Use %s <subcommand> -h for the options of each.\n", os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}
