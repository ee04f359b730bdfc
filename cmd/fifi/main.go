// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fifi is a terminal front end for the calculator engine,
// grounded on ivy.go (the teacher's own CLI entry point): the same flag
// shape (a prompt string, "-e" to execute arguments as a single
// expression, file arguments with "-" meaning stdin), the same
// run-until-EOF-or-error loop structure, and the same isatty-gated
// interactive prompt. ivy.go's -origin and -format flags have no
// fifi-core counterpart (array origin and number formatting are a
// language-mode concern resolved inside the engine, not a CLI switch) and
// are replaced by -radix, which seeds config.Config.SetOutputRadix.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"fifi-core/config"
	"fifi-core/repl"
	"fifi-core/session"
)

var (
	execute = flag.Bool("e", false, "execute arguments as a single expression")
	radix   = flag.Int("radix", 10, "output radix")
	prompt  = flag.String("prompt", "fifi> ", "command prompt")
	trace   = flag.Bool("trace", false, "trace dispatched command names")
)

// isTTY reports whether fd is a terminal; tty_unix.go overrides this with
// a real ioctl-backed check on the platforms it's built for, mirroring
// ivy's own isTTY indirection.
var isTTY = func(fd uintptr) bool { return false }

func main() {
	flag.Usage = usage
	flag.Parse()

	var cfg config.Config
	cfg.SetOutputRadix(*radix)
	sess := session.NewWithConfig(&cfg)
	sess.SetTracing(*trace)

	if *execute {
		in := strings.NewReader(strings.Join(flag.Args(), " "))
		if !repl.Run(sess, in, os.Stdout, "", false) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		for i := 0; i < flag.NArg(); i++ {
			name := flag.Arg(i)
			if !runFile(sess, name) {
				break
			}
		}
		return
	}

	interactive := isTTY(os.Stdin.Fd())
	repl.Run(sess, bufio.NewReader(os.Stdin), os.Stdout, *prompt, interactive)
}

func runFile(sess *session.Session, name string) bool {
	if name == "-" {
		return repl.Run(sess, bufio.NewReader(os.Stdin), os.Stdout, *prompt, isTTY(os.Stdin.Fd()))
	}
	fd, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fifi: %s\n", err)
		os.Exit(1)
	}
	defer fd.Close()
	return repl.Run(sess, bufio.NewReader(fd), os.Stdout, *prompt, false)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fifi [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
