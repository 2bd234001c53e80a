package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/logchart/internal/chartset"
	"github.com/roach88/logchart/internal/digest"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/testutil"
)

func TestSaveTable_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	path := testutil.WriteFile(t, t.TempDir(), "battery_output.txt", testutil.BatteryLog)
	table, err := logtable.Load(path, ", ")
	require.NoError(t, err)

	require.NoError(t, s.SaveTable(ctx, "battery", path, table))

	got, err := s.LoadTable(ctx, "battery")
	require.NoError(t, err)
	assert.Equal(t, table.Columns(), got.Columns())
	assert.Equal(t, table.Rows(), got.Rows())
	assert.Equal(t, digest.Table(table), digest.Table(got))
}

func TestSaveTable_SpecialValues(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	table, err := logtable.New([]string{"t", "x"}, [][]float64{
		{0, math.NaN()},
		{1, math.Inf(1)},
		{2, math.Inf(-1)},
		{3, 1e-300},
		{4, -0.1},
	})
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, "edge", "memory", table))

	got, err := s.LoadTable(ctx, "edge")
	require.NoError(t, err)
	xs, err := got.Column("x")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(xs[0]))
	assert.True(t, math.IsInf(xs[1], 1))
	assert.True(t, math.IsInf(xs[2], -1))
	assert.Equal(t, 1e-300, xs[3])
	assert.Equal(t, -0.1, xs[4])
	assert.Equal(t, digest.Table(table), digest.Table(got))
}

func TestSaveTable_Replaces(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	long, err := logtable.New([]string{"t", "V"}, [][]float64{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	short, err := logtable.New([]string{"t", "I"}, [][]float64{{0, 5}})
	require.NoError(t, err)

	require.NoError(t, s.SaveTable(ctx, "run", "a.txt", long))
	require.NoError(t, s.SaveTable(ctx, "run", "b.txt", short))

	got, err := s.LoadTable(ctx, "run")
	require.NoError(t, err)
	assert.Equal(t, []string{"t", "I"}, got.Columns())
	assert.Equal(t, 1, got.Len())

	var rows int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM log_rows`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSaveTable_HeaderOnly(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	empty, err := logtable.New([]string{"t", "V"}, nil)
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, "empty", "e.txt", empty))

	got, err := s.LoadTable(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, []string{"t", "V"}, got.Columns())
	assert.Equal(t, 0, got.Len())
}

func TestLoadTable_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.LoadTable(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestListTables(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	tables, err := s.ListTables(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tables)
	assert.Empty(t, tables)

	dir := t.TempDir()
	solar, err := logtable.Load(testutil.WriteFile(t, dir, "solar_output.txt", testutil.SolarLog), ", ")
	require.NoError(t, err)
	gyro, err := logtable.Load(testutil.WriteFile(t, dir, "gyroscope_output.txt", testutil.GyroscopeLog), ", ")
	require.NoError(t, err)

	require.NoError(t, s.SaveTable(ctx, "solar", "solar_output.txt", solar))
	require.NoError(t, s.SaveTable(ctx, "gyro", "gyroscope_output.txt", gyro))

	tables, err = s.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []TableInfo{
		{Name: "gyro", Source: "gyroscope_output.txt", Columns: []string{"t", "w", "w_g"}, Rows: 4, Digest: digest.Table(gyro)},
		{Name: "solar", Source: "solar_output.txt", Columns: []string{"V", "I"}, Rows: 5, Digest: digest.Table(solar)},
	}, tables)
}

func TestArtifacts_History(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	empty, err := s.ListArtifacts(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	art := func(run string, seq int, chart string) chartset.Artifact {
		return chartset.Artifact{
			RunID: run, Seq: seq, Set: "battery", Chart: chart, Kind: "line",
			Backend: "gonum", Input: "battery_output.txt", Path: chart + ".png", Digest: "d-" + chart,
		}
	}
	// Recorded out of order on purpose.
	for _, a := range []chartset.Artifact{
		art("0190-b", 2, "soc"),
		art("0190-a", 1, "first"),
		art("0190-b", 1, "ov"),
	} {
		require.NoError(t, s.RecordArtifact(ctx, a))
	}
	// Duplicate (run, seq) keeps the first record.
	require.NoError(t, s.RecordArtifact(ctx, art("0190-b", 1, "dup")))

	all, err := s.ListArtifacts(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"first", "ov", "soc"}, []string{all[0].Chart, all[1].Chart, all[2].Chart})

	run, err := s.ListArtifacts(ctx, "0190-b")
	require.NoError(t, err)
	assert.Equal(t, []chartset.Artifact{art("0190-b", 1, "ov"), art("0190-b", 2, "soc")}, run)
}

func TestStore_RecordsChartSetRun(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	in, out := t.TempDir(), t.TempDir()
	testutil.WriteSimulatorOutputs(t, in)

	set, err := chartset.Preset("battery")
	require.NoError(t, err)
	arts, err := chartset.Run(ctx, set, chartset.RunOptions{InputDir: in, OutputDir: out, RunID: "run-1", Recorder: s})
	require.NoError(t, err)

	got, err := s.ListArtifacts(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, arts, got)
	assert.Equal(t, filepath.Join(out, "OV_Battery.png"), got[0].Path)
}
