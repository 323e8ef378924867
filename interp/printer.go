package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamesoh3928/lunacore/value"
)

// Printer is the injectable sink the core requires for the `print`
// built-in: "print these values". The host supplies either a
// stdout-writing implementation or a test sink that accumulates lines
// for assertion.
type Printer interface {
	Print(values []value.Value)
}

// StdoutPrinter writes each print call as a line of space-separated
// rendered values to an io.Writer.
type StdoutPrinter struct {
	Writer io.Writer
}

// Print implements Printer.
func (p StdoutPrinter) Print(values []value.Value) {
	fmt.Fprintln(p.Writer, renderLine(values))
}

// TestPrinter accumulates each printed line into an ordered list of
// strings for assertion, for use in tests that don't want to drive a
// real io.Writer.
type TestPrinter struct {
	Lines []string
}

// Print implements Printer.
func (p *TestPrinter) Print(values []value.Value) {
	p.Lines = append(p.Lines, renderLine(values))
}

func renderLine(values []value.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = value.Render(v)
	}
	return strings.Join(parts, " ")
}
