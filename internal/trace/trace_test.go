package trace_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fifi-core/internal/trace"
)

func TestDisabledTracerWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	tr := &trace.Tracer{Output: &buf}
	tr.Command("push_number", []string{"2"})
	assert.Empty(t, buf.String())
}

func TestEnabledTracerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	tr := &trace.Tracer{Output: &buf}
	tr.Enable()
	tr.Command("+", nil)
	assert.Equal(t, "+\n", buf.String())

	buf.Reset()
	tr.Command("push_number", []string{"2"})
	assert.Equal(t, "push_number 2\n", buf.String())

	tr.Disable()
	buf.Reset()
	tr.Command("+", nil)
	assert.Empty(t, buf.String())
}
