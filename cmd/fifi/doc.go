// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Fifi-core is the engine behind a stack-based symbolic calculator: a value
on its stack is an expression tree, not a number, and a command can push
one, combine two, simplify one, differentiate one, or render one rather
than only ever reducing numbers to numbers.

There is no postfix language to parse a whole program from; the command
layer is invoked one named command at a time, each against an explicit
stack and variable table, so a host application (a GUI, a REPL, a test)
drives it by calling into the dispatch table rather than by feeding it
source text.

Package layout:

	numeric     arbitrary-precision integer, rational and float values
	prism       bidirectional narrow/widen views between two representations
	expr        the expression tree: numbers, strings, calls, variables
	corerr      the error types commands and evaluators return
	algebra     vector and polynomial-term views over expr.Expr
	units       unit-of-measure parsing and dimensional arithmetic
	calcmode    calculation-mode settings (infinity handling)
	function    the table of named functions and their evaluation rules
	calculus    symbolic differentiation
	simplifier  the rewrite-rule pipeline that reduces an expr to normal form
	rootfind    Newton, secant and bisection root finding over expr functions
	undo        a generic undo/redo change stack
	stackmodel  the undoable stack and variable table a session holds
	graphics    plot and contour payload types
	langmode    the parser/formatter for the calculator's surface syntax
	command     the dispatch table of named commands run_math_command invokes
	config      engine-wide defaults a session is seeded with
	session     the long-lived object wiring every package above together
	repl        a line-oriented read-eval-print loop over a session
	cmd/fifi    a terminal front end built on repl

A command is a name plus a list of string arguments, dispatched against a
stackmodel.UndoableState and a command.CommandContext holding the shared
function table, simplifier, unit parser, calculus engine, language mode
and graphics store. Pushing "3 + 4" parses it to expr.NewCall("+", 3, 4)
and runs the simplifier on that call, which folds it to 7; an expression
with a free variable stays a call tree. This is what lets the engine hold a symbolic
expression like "x^2 + 1" on the stack, differentiate it, substitute into
it or find its roots, the same way it holds a plain number.

*/
package main
