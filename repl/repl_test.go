package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/repl"
	"fifi-core/session"
)

func TestRunEvaluatesExpressionsAndCommands(t *testing.T) {
	sess := session.New()
	in := strings.NewReader("2\n3\n:+\n")
	var out bytes.Buffer

	success := repl.Run(sess, in, &out, "> ", false)
	require.True(t, success)
	assert.Equal(t, "2\n3\n5\n", out.String())
}

func TestRunReportsErrorsAndKeepsGoing(t *testing.T) {
	sess := session.New()
	in := strings.NewReader(":not_a_command\n2\n")
	var out bytes.Buffer

	success := repl.Run(sess, in, &out, "> ", false)
	assert.False(t, success)
	assert.Contains(t, out.String(), "fifi:")
	assert.Contains(t, out.String(), "2\n")
}

func TestRunPrintsPromptWhenInteractive(t *testing.T) {
	sess := session.New()
	in := strings.NewReader("4\n")
	var out bytes.Buffer

	repl.Run(sess, in, &out, "fifi> ", true)
	assert.True(t, strings.HasPrefix(out.String(), "fifi> "))
	assert.Contains(t, out.String(), "4\n")
}
