package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/roach88/logchart/internal/logtable"
)

var errNoRows = errors.New("table has no data rows")

// RenderLine plots every spec.Y column of table against spec.X as connected
// line series and writes the chart to spec.OutputPath.
//
// Unknown columns are reported as *logtable.UnknownColumnError before
// anything is written; drawing and writing failures as *RenderError.
// Identical table and spec produce byte-identical PNG output.
func RenderLine(table *logtable.LogTable, spec ChartSpec) error {
	if err := spec.ValidateLine(); err != nil {
		return err
	}
	spec = spec.withSize(DefaultLineWidth, DefaultLineHeight)

	xs, err := table.Column(spec.X)
	if err != nil {
		return err
	}
	series := make([]Series, len(spec.Y))
	for i, name := range spec.Y {
		ys, err := table.Column(name)
		if err != nil {
			return err
		}
		series[i] = Series{Label: spec.Label(i), X: xs, Y: ys}
	}

	backend := backends[spec.BackendName()]
	format := spec.Format()
	if !backend.Supports(format) {
		return &RenderError{
			Path: spec.OutputPath,
			Op:   "format",
			Err:  fmt.Errorf("%s backend cannot encode %q", backend.Name(), format),
		}
	}
	if table.Len() == 0 {
		return &RenderError{Path: spec.OutputPath, Op: "draw", Err: errNoRows}
	}

	return writeAtomic(spec.OutputPath, func(w io.Writer) error {
		return backend.DrawLines(w, format, series, spec)
	})
}
