package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/logchart/internal/digest"
	"github.com/roach88/logchart/internal/logtable"
)

// ErrTableNotFound is returned by LoadTable for a name never saved.
var ErrTableNotFound = errors.New("table not found")

// TableInfo describes an archived table without its rows.
type TableInfo struct {
	Name    string   `json:"name"`
	Source  string   `json:"source"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
	Digest  string   `json:"digest"`
}

// SaveTable archives t under name, replacing any table already saved with
// that name. source records where t was loaded from.
func (s *Store) SaveTable(ctx context.Context, name, source string, t *logtable.LogTable) error {
	columns, err := json.Marshal(t.Columns())
	if err != nil {
		return fmt.Errorf("save table %q: %w", name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save table %q: begin: %w", name, err)
	}
	defer tx.Rollback()

	// Rows go with the table through ON DELETE CASCADE
	if _, err := tx.ExecContext(ctx, `DELETE FROM log_tables WHERE name = ?`, name); err != nil {
		return fmt.Errorf("save table %q: %w", name, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO log_tables (name, source, columns, row_count, digest)
		VALUES (?, ?, ?, ?, ?)
	`, name, source, string(columns), t.Len(), digest.Table(t))
	if err != nil {
		return fmt.Errorf("save table %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO log_rows (table_name, row_index, vals) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save table %q: %w", name, err)
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		if _, err := stmt.ExecContext(ctx, name, i, encodeRow(t.Values(i))); err != nil {
			return fmt.Errorf("save table %q: row %d: %w", name, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save table %q: commit: %w", name, err)
	}
	return nil
}

// LoadTable reads back the table saved under name. A name never saved
// yields an error wrapping ErrTableNotFound.
func (s *Store) LoadTable(ctx context.Context, name string) (*logtable.LogTable, error) {
	var columnsJSON string
	err := s.db.QueryRowContext(ctx, `SELECT columns FROM log_tables WHERE name = ?`, name).Scan(&columnsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load table %q: %w", name, ErrTableNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load table %q: %w", name, err)
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, fmt.Errorf("load table %q: columns: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT vals FROM log_rows
		WHERE table_name = ?
		ORDER BY row_index ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("load table %q: %w", name, err)
	}
	defer rows.Close()

	var values [][]float64
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return nil, fmt.Errorf("load table %q: %w", name, err)
		}
		row, err := decodeRow(encoded)
		if err != nil {
			return nil, fmt.Errorf("load table %q: row %d: %w", name, len(values), err)
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load table %q: %w", name, err)
	}

	return logtable.New(columns, values)
}

// ListTables returns every archived table ordered by name.
// Returns an empty slice (not nil) when nothing is archived.
func (s *Store) ListTables(ctx context.Context) ([]TableInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, source, columns, row_count, digest
		FROM log_tables
		ORDER BY name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	infos := []TableInfo{}
	for rows.Next() {
		var (
			info        TableInfo
			columnsJSON string
		)
		if err := rows.Scan(&info.Name, &info.Source, &columnsJSON, &info.Rows, &info.Digest); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		if err := json.Unmarshal([]byte(columnsJSON), &info.Columns); err != nil {
			return nil, fmt.Errorf("table %q: columns: %w", info.Name, err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}
	return infos, nil
}

func encodeRow(values []float64) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(fields, ",")
}

func decodeRow(s string) ([]float64, error) {
	if s == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
