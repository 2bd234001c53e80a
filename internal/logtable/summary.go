package logtable

import "math"

// ColumnSummary describes the value range of one column.
//
// Min, Max and Mean cover the finite values only and are nil when the column
// has none, as in a header-only log or an all-NaN column.
type ColumnSummary struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Finite int      `json:"finite"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Mean   *float64 `json:"mean"`
}

// Summarize returns one summary per column, in header order.
func Summarize(t *LogTable) []ColumnSummary {
	out := make([]ColumnSummary, len(t.columns))
	for j, name := range t.columns {
		s := ColumnSummary{Name: name, Count: len(t.rows)}
		lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
		for _, r := range t.rows {
			v := r[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			s.Finite++
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			sum += v
		}
		if s.Finite > 0 {
			mean := sum / float64(s.Finite)
			s.Min, s.Max, s.Mean = &lo, &hi, &mean
		}
		out[j] = s
	}
	return out
}
