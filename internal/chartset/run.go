package chartset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/roach88/logchart/internal/digest"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/render"
	"github.com/roach88/logchart/internal/vector"
)

// Artifact records one rendered chart.
type Artifact struct {
	RunID   string `json:"run_id"`
	Seq     int    `json:"seq"`
	Set     string `json:"set,omitempty"`
	Chart   string `json:"chart"`
	Kind    string `json:"kind"`
	Backend string `json:"backend"`
	Input   string `json:"input"`
	Path    string `json:"path"`
	Digest  string `json:"digest"`
}

// Recorder persists artifacts as they are produced. *store.Store
// implements it.
type Recorder interface {
	RecordArtifact(ctx context.Context, a Artifact) error
}

// TableSource reads archived logs for jobs that name a table. *store.Store
// implements it.
type TableSource interface {
	LoadTable(ctx context.Context, name string) (*logtable.LogTable, error)
}

// ErrNoTableSource is returned for a job that names a table when Run has no
// TableSource to read it from.
var ErrNoTableSource = errors.New("no table archive to read from")

// RunOptions configure Run.
type RunOptions struct {
	// InputDir resolves relative input paths. Empty means the working
	// directory.
	InputDir string

	// OutputDir resolves relative output paths. Empty means the working
	// directory.
	OutputDir string

	// RunID is stamped on every artifact.
	RunID string

	// Recorder, if set, receives each artifact right after it is written.
	Recorder Recorder

	// Tables resolves the table of jobs that name one.
	Tables TableSource
}

func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Run validates set and renders every chart of every job in order. Charts
// are numbered from 1 across the whole set.
//
// Run stops at the first load, render or record failure, and when ctx is
// cancelled between charts. It then returns the artifacts already written
// together with the error.
func Run(ctx context.Context, set *ChartSet, opts RunOptions) ([]Artifact, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	var artifacts []Artifact
	seq := 0
	for i, job := range set.Jobs {
		if err := ctx.Err(); err != nil {
			return artifacts, err
		}

		var draw func(render.ChartSpec) error
		var input string
		switch job.KindOrDefault() {
		case KindVectors:
			input = resolve(opts.InputDir, job.Rotation)
			frame, err := vector.LoadFrame(input, resolve(opts.InputDir, job.Omega), job.Delimiter)
			if err != nil {
				return artifacts, fmt.Errorf("job %d: %w", i, err)
			}
			draw = func(spec render.ChartSpec) error { return render.RenderFrame(frame, spec) }
		default:
			var table *logtable.LogTable
			var err error
			input, table, err = loadTable(ctx, job, opts)
			if err != nil {
				return artifacts, fmt.Errorf("job %d: %w", i, err)
			}
			draw = func(spec render.ChartSpec) error { return render.RenderLine(table, spec) }
		}

		for _, chart := range job.Charts {
			if err := ctx.Err(); err != nil {
				return artifacts, err
			}

			spec := chart.Spec(resolve(opts.OutputDir, chart.Output))
			if err := draw(spec); err != nil {
				return artifacts, fmt.Errorf("chart %q: %w", chart.Name, err)
			}
			sum, err := digest.File(spec.OutputPath)
			if err != nil {
				return artifacts, fmt.Errorf("chart %q: %w", chart.Name, err)
			}

			seq++
			a := Artifact{
				RunID:   opts.RunID,
				Seq:     seq,
				Set:     set.Name,
				Chart:   chart.Name,
				Kind:    job.KindOrDefault(),
				Backend: spec.BackendName(),
				Input:   input,
				Path:    spec.OutputPath,
				Digest:  sum,
			}
			if opts.Recorder != nil {
				if err := opts.Recorder.RecordArtifact(ctx, a); err != nil {
					return artifacts, fmt.Errorf("record %q: %w", chart.Name, err)
				}
			}
			artifacts = append(artifacts, a)
			slog.Debug("rendered chart", "chart", a.Chart, "path", a.Path, "backend", a.Backend)
		}
	}
	return artifacts, nil
}

// loadTable reads the table of a line job, from the archive when the job
// names one. input is what the job's artifacts record as their source.
func loadTable(ctx context.Context, job Job, opts RunOptions) (input string, table *logtable.LogTable, err error) {
	if job.Table != "" {
		input = "table:" + job.Table
		if opts.Tables == nil {
			return input, nil, fmt.Errorf("table %q: %w", job.Table, ErrNoTableSource)
		}
		table, err = opts.Tables.LoadTable(ctx, job.Table)
		return input, table, err
	}
	input = resolve(opts.InputDir, job.Input)
	table, err = logtable.LoadFile(input, job.Delimiter)
	return input, table, err
}
