package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/digest"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/store"
)

// NewIngestCommand creates the ingest command.
func NewIngestCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		database  string
		name      string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "ingest <log>",
		Short: "Archive a log in a SQLite database",
		Long: `Load a simulator log and store it under a name in a SQLite database,
replacing any table already stored under that name. The name defaults to the
file name without its extension.

Example:
  logchart ingest battery_output.txt --db runs.db --name battery-2024-05-01`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			path := args[0]
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			table, err := logtable.LoadFile(path, delimiter)
			if err != nil {
				return fail(formatter, err)
			}

			st, err := store.Open(database)
			if err != nil {
				return failDatabase(formatter, err)
			}
			defer st.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := st.SaveTable(ctx, name, path, table); err != nil {
				return failDatabase(formatter, err)
			}

			info := store.TableInfo{
				Name:    name,
				Source:  path,
				Columns: table.Columns(),
				Rows:    table.Len(),
				Digest:  digest.Table(table),
			}
			if formatter.Format == "json" {
				return formatter.Success(info)
			}
			return formatter.Success(fmt.Sprintf("stored %s: %d row(s) from %s", info.Name, info.Rows, info.Source))
		},
	}

	cmd.Flags().StringVar(&database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&name, "name", "", "table name (default: file name without extension)")
	cmd.Flags().StringVar(&delimiter, "delimiter", logtable.DefaultDelimiter, `field delimiter, or "auto"`)
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
