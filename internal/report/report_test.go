package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleIndents(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Write(0, "ERA  1")
	c.Write(1, "CENTURY  1")
	c.Write(3, "row")
	require.NoError(t, c.Flush())

	assert.Equal(t, "ERA  1\n  CENTURY  1\n      row\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleKeepsFirstError(t *testing.T) {
	c := NewConsole(failingWriter{})
	c.Write(0, "a")
	err := c.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestMultiAndCounter(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	counter := &Counter{}
	m := Multi{console, counter}

	m.Write(0, "x")
	m.Write(2, "y")
	m.Write(2, "z")
	require.NoError(t, console.Flush())

	assert.Equal(t, "x\n    y\n    z\n", buf.String())
	assert.Equal(t, 3, counter.Lines)
	assert.Equal(t, 2, counter.ByIndent[2])
}
