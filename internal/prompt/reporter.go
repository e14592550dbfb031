package prompt

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorReporter prints errors in red.
type ColorReporter struct {
	out   io.Writer
	color *color.Color
}

// NewColorReporter returns a [ColorReporter] writing to stderr.
func NewColorReporter() *ColorReporter {
	return NewColorReporterTo(os.Stderr)
}

// NewColorReporterTo returns a [ColorReporter] writing to out.
func NewColorReporterTo(out io.Writer) *ColorReporter {
	return &ColorReporter{out: out, color: color.New(color.FgRed)}
}

// ReportError implements [Reporter].
func (r *ColorReporter) ReportError(err error) {
	if err == nil {
		return
	}
	r.color.Fprintf(r.out, "Error: %v\n", err)
}
