package logtable

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LogTable is an ordered sequence of numeric rows keyed by column name.
//
// A LogTable is immutable once built: every accessor returns a copy.
type LogTable struct {
	columns []string
	index   map[string]int
	rows    [][]float64
}

// New builds a LogTable from column names and row values.
// Column names are trimmed and NFC-normalized; they must be unique and
// non-empty. Every row must have exactly len(columns) values.
func New(columns []string, rows [][]float64) (*LogTable, error) {
	t := &LogTable{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]float64, len(rows)),
	}
	for i, c := range columns {
		name := normalizeName(c)
		if name == "" {
			return nil, fmt.Errorf("column %d: empty name", i+1)
		}
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("column %d: duplicate name %q", i+1, name)
		}
		t.columns[i] = name
		t.index[name] = i
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("row %d: expected %d values, got %d", i, len(columns), len(r))
		}
		t.rows[i] = append([]float64(nil), r...)
	}
	return t, nil
}

// normalizeName trims surrounding whitespace and applies NFC so that headers
// written by different tools compare equal.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Columns returns the column names in header order.
func (t *LogTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of data rows.
func (t *LogTable) Len() int {
	return len(t.rows)
}

// Has reports whether the table has the named column.
func (t *LogTable) Has(name string) bool {
	_, ok := t.index[normalizeName(name)]
	return ok
}

// Row returns row i as a column→value mapping.
func (t *LogTable) Row(i int) map[string]float64 {
	m := make(map[string]float64, len(t.columns))
	for j, c := range t.columns {
		m[c] = t.rows[i][j]
	}
	return m
}

// Rows returns every row as a column→value mapping, in file order.
func (t *LogTable) Rows() []map[string]float64 {
	out := make([]map[string]float64, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// Values returns the raw values of row i in column order.
func (t *LogTable) Values(i int) []float64 {
	return append([]float64(nil), t.rows[i]...)
}

// Column returns every value of the named column in row order.
func (t *LogTable) Column(name string) ([]float64, error) {
	j, ok := t.index[normalizeName(name)]
	if !ok {
		return nil, &UnknownColumnError{Column: name, Available: t.Columns()}
	}
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[j]
	}
	return out, nil
}
