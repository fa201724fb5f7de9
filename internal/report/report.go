// Package report renders the simulation narrative.
package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/talgya/splitting-world/internal/world"
)

// Console writes each line to an io.Writer, indented two spaces per level.
type Console struct {
	w   *bufio.Writer
	err error
}

// NewConsole creates a buffered console reporter. Call Flush when done.
func NewConsole(w io.Writer) *Console {
	return &Console{w: bufio.NewWriter(w)}
}

// Write implements world.Reporter. The first write error is kept and later
// lines are dropped.
func (c *Console) Write(indent int, text string) {
	if c.err != nil {
		return
	}
	if indent > 0 {
		_, c.err = c.w.WriteString(strings.Repeat("  ", indent))
	}
	if c.err == nil {
		_, c.err = c.w.WriteString(text)
	}
	if c.err == nil {
		c.err = c.w.WriteByte('\n')
	}
}

// Flush writes any buffered output and returns the first error seen.
func (c *Console) Flush() error {
	if c.err != nil {
		return c.err
	}
	return c.w.Flush()
}

// Multi fans every line out to several reporters in order.
type Multi []world.Reporter

// Write implements world.Reporter.
func (m Multi) Write(indent int, text string) {
	for _, r := range m {
		r.Write(indent, text)
	}
}

// Counter counts lines per indent level; useful for summaries and quiet runs.
type Counter struct {
	Lines    int
	ByIndent map[int]int
}

// Write implements world.Reporter.
func (c *Counter) Write(indent int, _ string) {
	if c.ByIndent == nil {
		c.ByIndent = make(map[int]int)
	}
	c.Lines++
	c.ByIndent[indent]++
}
