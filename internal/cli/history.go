package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/chartset"
	"github.com/roach88/logchart/internal/store"
)

// HistoryResult lists recorded artifacts and archived tables.
type HistoryResult struct {
	Artifacts []chartset.Artifact `json:"artifacts"`
	Tables    []store.TableInfo   `json:"tables,omitempty"`
}

func (r HistoryResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d artifact(s)", len(r.Artifacts))
	for _, a := range r.Artifacts {
		fmt.Fprintf(&b, "\n  %s %3d %-20s %s", a.RunID, a.Seq, a.Chart, a.Path)
	}
	if r.Tables != nil {
		fmt.Fprintf(&b, "\n%d table(s)", len(r.Tables))
		for _, t := range r.Tables {
			fmt.Fprintf(&b, "\n  %-20s %5d row(s)  %s", t.Name, t.Rows, t.Source)
		}
	}
	return b.String()
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		database string
		runID    string
		tables   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded charts and archived logs",
		Long: `List the charts recorded in a SQLite database, oldest run first, or only
those of one run with --run. With --tables, also list the archived logs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			st, err := store.Open(database)
			if err != nil {
				return failDatabase(formatter, err)
			}
			defer st.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var result HistoryResult
			result.Artifacts, err = st.ListArtifacts(ctx, runID)
			if err != nil {
				return failDatabase(formatter, err)
			}
			if tables {
				result.Tables, err = st.ListTables(ctx)
				if err != nil {
					return failDatabase(formatter, err)
				}
			}
			return formatter.Success(result)
		},
	}

	cmd.Flags().StringVar(&database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&runID, "run", "", "only list this run")
	cmd.Flags().BoolVar(&tables, "tables", false, "also list archived logs")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
