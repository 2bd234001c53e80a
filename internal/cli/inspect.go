package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/digest"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/store"
)

// InspectResult describes a loaded log.
type InspectResult struct {
	Path    string                   `json:"path"`
	Rows    int                      `json:"rows"`
	Digest  string                   `json:"digest"`
	Columns []logtable.ColumnSummary `json:"columns"`
}

func (r InspectResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d column(s), %d row(s)\n", r.Path, len(r.Columns), r.Rows)
	fmt.Fprintf(&b, "%-12s %12s %12s %12s", "column", "min", "max", "mean")
	for _, c := range r.Columns {
		fmt.Fprintf(&b, "\n%-12s %12s %12s %12s", c.Name, stat(c.Min), stat(c.Max), stat(c.Mean))
	}
	return b.String()
}

// stat formats an optional summary value; "-" when the column has no finite
// values.
func stat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.6g", *v)
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		delimiter string
		database  string
		table     string
	)

	cmd := &cobra.Command{
		Use:   "inspect [log]",
		Short: "Show a log's columns and value ranges",
		Long: `Load a simulator log and print its columns with the minimum, maximum and
mean of each. Useful for picking --x and --y before plotting.

With --db and --table, inspect a log archived with ingest instead of a file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			if err := checkSource(args, table, database); err != nil {
				_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
				return WrapExitError(ExitCommandError, ErrCodeUsage, err)
			}

			var (
				t    *logtable.LogTable
				path string
				err  error
			)
			if table != "" {
				path = "table:" + table
				t, err = loadArchived(cmd, formatter, database, table)
				if err != nil {
					return err
				}
			} else {
				path = args[0]
				t, err = logtable.LoadFile(path, delimiter)
				if err != nil {
					return fail(formatter, err)
				}
			}

			return formatter.Success(InspectResult{
				Path:    path,
				Rows:    t.Len(),
				Digest:  digest.Table(t),
				Columns: logtable.Summarize(t),
			})
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", logtable.DefaultDelimiter, `field delimiter, or "auto"`)
	cmd.Flags().StringVar(&database, "db", "", "SQLite database holding archived logs")
	cmd.Flags().StringVar(&table, "table", "", "inspect a log archived in --db instead of a file")

	return cmd
}

// loadArchived reads table from the database, reporting failures through f.
func loadArchived(cmd *cobra.Command, f *OutputFormatter, database, table string) (*logtable.LogTable, error) {
	st, err := store.Open(database)
	if err != nil {
		return nil, failDatabase(f, err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	t, err := st.LoadTable(ctx, table)
	if err != nil {
		if code, _ := classify(err); code == ErrCodeNotFound {
			return nil, fail(f, err)
		}
		return nil, failDatabase(f, err)
	}
	return t, nil
}
