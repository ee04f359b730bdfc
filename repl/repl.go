// Package repl is the line-oriented read-eval-print loop a text terminal
// drives a session.Session through, grounded on ivy's own run/run.go (the
// prompt/read-line/print loop every ivy.go invocation ultimately calls).
// ivy's loop reads one line, parses it into a sequence of value.Value with
// its own parser, and prints each result; this loop instead treats a line
// as either a dispatch-table command (":name arg arg") or a bare
// expression to push, since fifi-core's command layer is invoked by name
// rather than by parsing an entire postfix program per line. The panic/
// recover around value.Error that run.go needs has no counterpart here:
// session methods report failure through ordinary error returns.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fifi-core/command"
	"fifi-core/session"
)

// Run reads lines from r until EOF, evaluating each against sess and
// writing prompts, stack snapshots and errors to w. interactive controls
// whether a prompt is printed before each line, matching run.go's own
// interactive flag (true for a terminal, false for a piped script or an
// -e argument). It returns whether every line evaluated without an error,
// counting both fatal errors and the first non-fatal error a command
// reports.
func Run(sess *session.Session, r io.Reader, w io.Writer, prompt string, interactive bool) (success bool) {
	success = true
	scanner := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprint(w, prompt)
		}
		if !scanner.Scan() {
			return success
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := evalLine(sess, w, line); err != nil {
			fmt.Fprintf(w, "fifi: %s\n", err)
			success = false
			continue
		}
		printStack(sess, w)
	}
}

// evalLine dispatches one line of input: a leading ':' names a command
// ("reverse-FORTH" style, mirroring ivy's own special ")command" syntax
// in parse/special.go), anything else is pushed as an expression.
func evalLine(sess *session.Session, w io.Writer, line string) error {
	if strings.HasPrefix(line, ":") {
		fields := strings.Fields(line[1:])
		if len(fields) == 0 {
			return nil
		}
		name, args := fields[0], fields[1:]
		out, err := sess.RunCommand(name, args, command.CommandOptions{})
		if err != nil {
			return err
		}
		if err := session.FirstError(out); err != nil {
			return err
		}
		return nil
	}
	out, err := sess.RunCommand("push_expr", []string{line}, command.CommandOptions{})
	if err != nil {
		return err
	}
	return session.FirstError(out)
}

func printStack(sess *session.Session, w io.Writer) {
	stack, err := sess.StackSnapshot()
	if err != nil {
		fmt.Fprintf(w, "fifi: %s\n", err)
		return
	}
	if len(stack) == 0 {
		return
	}
	fmt.Fprintln(w, stack[0])
}
