package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/chartset"
	"github.com/roach88/logchart/internal/store"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Preset    string
	InputDir  string
	OutputDir string
	Database  string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// RunResult is the output of every command that renders charts.
type RunResult struct {
	RunID     string              `json:"run_id"`
	Set       string              `json:"set,omitempty"`
	Artifacts []chartset.Artifact `json:"artifacts"`
}

func (r RunResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d chart(s)", r.RunID, len(r.Artifacts))
	for _, a := range r.Artifacts {
		fmt.Fprintf(&b, "\n  %-20s %-8s %s", a.Chart, a.Backend, a.Path)
	}
	return b.String()
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render [chartset.yaml]",
		Short: "Render a chart set or a built-in preset",
		Long: `Render every chart of a YAML chart set, or of a built-in preset.

Relative input paths resolve against --dir, relative outputs against --out.
Line jobs with a table: source read a log archived with ingest from --db.
Rendering stops at the first failing chart.

Example:
  logchart render --preset battery --dir ./EPS --out ./charts
  logchart render eps.yaml --db history.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Preset, "preset", "", "built-in preset to render (see presets)")
	cmd.Flags().StringVar(&opts.InputDir, "dir", "", "directory holding the input logs")
	cmd.Flags().StringVar(&opts.OutputDir, "out", "", "directory for the rendered charts")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record artifacts in this SQLite database")

	return cmd
}

func runRender(opts *RenderOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if (len(args) == 1) == (opts.Preset != "") {
		_ = formatter.Error(ErrCodeUsage, "give either a chart-set file or --preset", nil)
		return NewExitError(ExitCommandError, ErrCodeUsage+": give either a chart-set file or --preset")
	}

	var (
		set *chartset.ChartSet
		err error
	)
	if opts.Preset != "" {
		set, err = chartset.Preset(opts.Preset)
	} else {
		set, err = chartset.Load(args[0])
	}
	if err != nil {
		return fail(formatter, err)
	}

	return runChartSet(cmd, formatter, set, chartset.RunOptions{
		InputDir:  opts.InputDir,
		OutputDir: opts.OutputDir,
	}, opts.Database, opts.RunIDs)
}

// runChartSet runs set with a fresh run ID and reports the artifacts. When a
// database is given, artifacts are recorded in it and jobs that name a table
// read it from there.
func runChartSet(cmd *cobra.Command, f *OutputFormatter, set *chartset.ChartSet, runOpts chartset.RunOptions, database string, gen RunIDGenerator) error {
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	runOpts.RunID = gen.Generate()

	if database != "" {
		st, err := store.Open(database)
		if err != nil {
			return failDatabase(f, err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		runOpts.Recorder = st
		runOpts.Tables = st
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	f.VerboseLog("run %s: rendering %q", runOpts.RunID, set.Name)
	artifacts, err := chartset.Run(ctx, set, runOpts)
	if err != nil {
		return fail(f, err)
	}
	slog.Debug("run complete", "run_id", runOpts.RunID, "charts", len(artifacts))

	return f.Success(RunResult{RunID: runOpts.RunID, Set: set.Name, Artifacts: artifacts})
}
