package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/chartset"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/render"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	*RootOptions
	Name      string
	X         string
	Y         []string
	Labels    []string
	Title     string
	XLabel    string
	YLabel    string
	Output    string
	Delimiter string
	Backend   string
	Width     float64
	Height    float64
	NoGrid    bool
	Legend    bool
	Database  string
	Table     string

	// RunIDs allows overriding the run ID generator (for testing).
	RunIDs RunIDGenerator
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plot [log]",
		Short: "Draw a line chart from one log",
		Long: `Draw one or more columns of a simulator log against another column.

The output format follows the file extension: png, svg, pdf, eps, jpg or tif
with the gonum backend; png or svg with gochart.

Example:
  logchart plot battery_output.txt --x t --y V_t -o OV_Battery.png \
    --title "Output Voltage Of Battery" --x-label "time (s)" --y-label "Terminal Voltage (V)"
  logchart plot gyroscope_output.txt --x t --y w --y w_g \
    --label "angular velocity" --label "measured angular velocity" -o gyro.svg
  logchart plot --db runs.db --table battery-2024-05-01 --x t --y SOC -o soc.png`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "plot", "chart name recorded in the history")
	cmd.Flags().StringVar(&opts.X, "x", "", "x-axis column (required)")
	cmd.Flags().StringArrayVar(&opts.Y, "y", nil, "y-axis column, repeatable (required)")
	cmd.Flags().StringArrayVar(&opts.Labels, "label", nil, "legend label for the matching --y, repeatable")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.XLabel, "x-label", "", "x-axis label")
	cmd.Flags().StringVar(&opts.YLabel, "y-label", "", "y-axis label")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", logtable.DefaultDelimiter, `field delimiter, or "auto"`)
	cmd.Flags().StringVar(&opts.Backend, "backend", render.BackendGonum, "drawing backend (gonum|gochart)")
	cmd.Flags().Float64Var(&opts.Width, "width", render.DefaultLineWidth, "width in inches")
	cmd.Flags().Float64Var(&opts.Height, "height", render.DefaultLineHeight, "height in inches")
	cmd.Flags().BoolVar(&opts.NoGrid, "no-grid", false, "hide the grid")
	cmd.Flags().BoolVar(&opts.Legend, "legend", false, "show a legend even for a single series")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the artifact in this SQLite database")
	cmd.Flags().StringVar(&opts.Table, "table", "", "plot a log archived in --db instead of a file")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runPlot(opts *PlotOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if err := checkSource(args, opts.Table, opts.Database); err != nil {
		_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeUsage, err)
	}
	var input string
	if len(args) == 1 {
		input = args[0]
	}

	grid := !opts.NoGrid
	width, height := opts.Width, opts.Height
	set := &chartset.ChartSet{
		Name: "plot",
		Jobs: []chartset.Job{{
			Input:     input,
			Table:     opts.Table,
			Delimiter: opts.Delimiter,
			Charts: []chartset.Chart{{
				Name:    opts.Name,
				X:       opts.X,
				Y:       opts.Y,
				Labels:  opts.Labels,
				Title:   opts.Title,
				XLabel:  opts.XLabel,
				YLabel:  opts.YLabel,
				Output:  opts.Output,
				Width:   &width,
				Height:  &height,
				Grid:    &grid,
				Legend:  opts.Legend,
				Backend: opts.Backend,
			}},
		}},
	}

	return runChartSet(cmd, formatter, set, chartset.RunOptions{}, opts.Database, opts.RunIDs)
}

// checkSource requires exactly one of a log argument and --table, and a
// database for --table.
func checkSource(args []string, table, database string) error {
	switch {
	case len(args) == 1 && table != "":
		return errors.New("give either a log file or --table, not both")
	case len(args) == 0 && table == "":
		return errors.New("give a log file or --table")
	case table != "" && database == "":
		return errors.New("--table needs --db")
	}
	return nil
}
