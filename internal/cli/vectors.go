package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/chartset"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/render"
)

// VectorsOptions holds flags for the vectors command.
type VectorsOptions struct {
	*RootOptions
	Rotation  string
	Omega     string
	Output    string
	Title     string
	Elevation float64
	Azimuth   float64
	Delimiter string
	Database  string

	// RunIDs allows overriding the run ID generator (for testing).
	RunIDs RunIDGenerator
}

// NewVectorsCommand creates the vectors command.
func NewVectorsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VectorsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Draw a rigid body's axes and angular-velocity vector",
		Long: `Draw the reference basis (dashed x, y, z), the basis rotated by a 3x3
rotation matrix (x', y', z') and the angular-velocity vector as arrows from
the origin, seen from the given elevation and azimuth.

Example:
  logchart vectors --rotation rotation1_output.txt --omega omega_output.txt \
    -o "Rotation Vec2 .png" --title "Rotation About Vector Ex: 2"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectors(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rotation, "rotation", "", "3x3 rotation-matrix log (required)")
	cmd.Flags().StringVar(&opts.Omega, "omega", "", "angular-velocity vector log (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title")
	cmd.Flags().Float64Var(&opts.Elevation, "elev", render.DefaultElevation, "camera elevation in degrees")
	cmd.Flags().Float64Var(&opts.Azimuth, "azim", render.DefaultAzimuth, "camera azimuth in degrees")
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", logtable.DefaultDelimiter, `field delimiter, or "auto"`)
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the artifact in this SQLite database")
	_ = cmd.MarkFlagRequired("rotation")
	_ = cmd.MarkFlagRequired("omega")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runVectors(opts *VectorsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	elev, azim := opts.Elevation, opts.Azimuth
	set := &chartset.ChartSet{
		Name: "vectors",
		Jobs: []chartset.Job{{
			Kind:      chartset.KindVectors,
			Rotation:  opts.Rotation,
			Omega:     opts.Omega,
			Delimiter: opts.Delimiter,
			Charts: []chartset.Chart{{
				Name:   "vectors",
				Title:  opts.Title,
				Output: opts.Output,
				Elev:   &elev,
				Azim:   &azim,
			}},
		}},
	}

	return runChartSet(cmd, formatter, set, chartset.RunOptions{}, opts.Database, opts.RunIDs)
}
