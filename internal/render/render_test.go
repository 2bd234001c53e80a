package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/testutil"
	"github.com/roach88/logchart/internal/vector"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func gyroTable(t *testing.T) *logtable.LogTable {
	t.Helper()
	path := testutil.WriteFile(t, t.TempDir(), "gyroscope_output.txt", testutil.GyroscopeLog)
	table, err := logtable.Load(path, ", ")
	require.NoError(t, err)
	return table
}

func gyroSpec(out string) ChartSpec {
	return ChartSpec{
		Name:       "gyroscope",
		X:          "t",
		Y:          []string{"w", "w_g"},
		Labels:     []string{"angular velocity", "measured angular velocity"},
		Title:      "Angular Velocity v. Time (GYROSCOPE)",
		XLabel:     "time (s)",
		YLabel:     "angular velocity (rad/s)",
		OutputPath: out,
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
}

func TestRenderLine_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gyroscope(WvT).png")

	require.NoError(t, RenderLine(gyroTable(t), gyroSpec(out)))

	data := readFile(t, out)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestRenderLine_Deterministic(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			table := gyroTable(t)

			a := gyroSpec(filepath.Join(dir, "a.png"))
			a.Backend = backend
			b := a
			b.OutputPath = filepath.Join(dir, "b.png")

			require.NoError(t, RenderLine(table, a))
			require.NoError(t, RenderLine(table, b))
			assert.Equal(t, readFile(t, a.OutputPath), readFile(t, b.OutputPath))
		})
	}
}

func TestRenderLine_SingleRow(t *testing.T) {
	table, err := logtable.New([]string{"t", "V"}, [][]float64{{0, 3.7}})
	require.NoError(t, err)

	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			a := ChartSpec{X: "t", Y: []string{"V"}, Backend: backend, OutputPath: filepath.Join(dir, "a.png")}
			b := a
			b.OutputPath = filepath.Join(dir, "b.png")

			require.NoError(t, RenderLine(table, a))
			require.NoError(t, RenderLine(table, b))
			assert.True(t, bytes.HasPrefix(readFile(t, a.OutputPath), pngMagic))
			assert.Equal(t, readFile(t, a.OutputPath), readFile(t, b.OutputPath))
		})
	}
}

func TestDegenerateRange(t *testing.T) {
	assert.Nil(t, degenerateRange([][]float64{{0, 1}}))
	assert.Nil(t, degenerateRange([][]float64{{2}, {3}}))
	assert.Nil(t, degenerateRange([][]float64{{math.NaN()}}))

	r := degenerateRange([][]float64{{3.7}, {3.7, math.NaN()}})
	require.NotNil(t, r)
	assert.InDelta(t, 3.2, r.Min, 1e-12)
	assert.InDelta(t, 4.2, r.Max, 1e-12)
}

func TestRenderLine_Overwrites(t *testing.T) {
	dir := t.TempDir()
	out := testutil.WriteFile(t, dir, "plot.png", "stale")

	require.NoError(t, RenderLine(gyroTable(t), gyroSpec(out)))

	assert.True(t, bytes.HasPrefix(readFile(t, out), pngMagic))
	assertNoTempFiles(t, dir)
}

func TestRenderLine_Formats(t *testing.T) {
	tests := []struct {
		backend string
		ext     string
		marker  string
	}{
		{BackendGonum, ".svg", "<svg"},
		{BackendGonum, ".pdf", "%PDF"},
		{BackendGoChart, ".png", "PNG"},
		{BackendGoChart, ".svg", "<svg"},
	}
	for _, tt := range tests {
		t.Run(tt.backend+tt.ext, func(t *testing.T) {
			spec := gyroSpec(filepath.Join(t.TempDir(), "chart"+tt.ext))
			spec.Backend = tt.backend

			require.NoError(t, RenderLine(gyroTable(t), spec))
			head := string(readFile(t, spec.OutputPath))
			if len(head) > 512 {
				head = head[:512]
			}
			assert.Contains(t, head, tt.marker)
		})
	}
}

func TestRenderLine_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"missing directory": filepath.Join(dir, "no", "such", "dir", "plot.png"),
		"parent is a file":  filepath.Join(testutil.WriteFile(t, dir, "file", "x"), "plot.png"),
	}
	for name, out := range tests {
		t.Run(name, func(t *testing.T) {
			err := RenderLine(gyroTable(t), gyroSpec(out))
			require.Error(t, err)

			var re *RenderError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, "create", re.Op)
			assert.Equal(t, out, re.Path)

			_, statErr := os.Stat(out)
			assert.Error(t, statErr)
		})
	}
}

func TestRenderLine_DrawFailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	out := testutil.WriteFile(t, dir, "plot.png", "previous")
	table, err := logtable.New([]string{"t", "V"}, [][]float64{{0, 1}, {1, math.NaN()}})
	require.NoError(t, err)

	err = RenderLine(table, ChartSpec{X: "t", Y: []string{"V"}, OutputPath: out})
	require.Error(t, err)

	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "draw", re.Op)
	assert.Equal(t, "previous", string(readFile(t, out)))
	assertNoTempFiles(t, dir)
}

func TestRenderLine_UnknownColumn(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plot.png")
	spec := gyroSpec(out)
	spec.Y = []string{"SOC"}
	spec.Labels = nil

	err := RenderLine(gyroTable(t), spec)
	assert.True(t, logtable.IsUnknownColumn(err))
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderLine_InvalidSpec(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]ChartSpec{
		"no output":    {X: "t", Y: []string{"w"}},
		"no x":         {Y: []string{"w"}, OutputPath: filepath.Join(dir, "a.png")},
		"no y":         {X: "t", OutputPath: filepath.Join(dir, "a.png")},
		"extra labels": {X: "t", Y: []string{"w"}, Labels: []string{"a", "b"}, OutputPath: filepath.Join(dir, "a.png")},
		"bad backend":  {X: "t", Y: []string{"w"}, Backend: "matplotlib", OutputPath: filepath.Join(dir, "a.png")},
	}
	for name, spec := range tests {
		t.Run(name, func(t *testing.T) {
			err := RenderLine(gyroTable(t), spec)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestRenderLine_UnsupportedFormat(t *testing.T) {
	spec := gyroSpec(filepath.Join(t.TempDir(), "plot.pdf"))
	spec.Backend = BackendGoChart

	err := RenderLine(gyroTable(t), spec)
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "format", re.Op)
}

func TestRenderLine_EmptyTable(t *testing.T) {
	table, err := logtable.New([]string{"t", "V"}, nil)
	require.NoError(t, err)

	err = RenderLine(table, ChartSpec{X: "t", Y: []string{"V"}, OutputPath: filepath.Join(t.TempDir(), "a.png")})
	assert.True(t, IsRenderError(err))
}

func TestChartSpec_Label(t *testing.T) {
	spec := ChartSpec{Y: []string{"w", "w_g"}, Labels: []string{"", "measured"}}
	assert.Equal(t, "w", spec.Label(0))
	assert.Equal(t, "measured", spec.Label(1))
	assert.Equal(t, "png", ChartSpec{OutputPath: "Rotation Vec2 .PNG"}.Format())
}

func TestRender3DVectors(t *testing.T) {
	dir := t.TempDir()
	f := vector.NewFrame(vector.Identity(), vector.Vec3{0.9, 0.1, -0.6})

	spec := ChartSpec{
		Title:      "Rotation About Vector Ex: 2",
		OutputPath: filepath.Join(dir, "Rotation Vec2 .png"),
		Elevation:  DefaultElevation,
		Azimuth:    DefaultAzimuth,
	}
	require.NoError(t, RenderFrame(f, spec))
	first := readFile(t, spec.OutputPath)
	assert.True(t, bytes.HasPrefix(first, pngMagic))

	require.NoError(t, Render3DVectors(f.Basis, f.Rotated, f.Omega, spec))
	assert.Equal(t, first, readFile(t, spec.OutputPath))
}

func TestRender3DVectors_EndOnVector(t *testing.T) {
	// With elevation 90 the z axis points at the camera and projects to a point.
	f := vector.NewFrame(vector.Identity(), vector.Vec3{0, 0, 2})
	spec := ChartSpec{OutputPath: filepath.Join(t.TempDir(), "top.svg"), Elevation: 90}

	require.NoError(t, RenderFrame(f, spec))
}

func TestRender3DVectors_Errors(t *testing.T) {
	f := vector.NewFrame(vector.Identity(), vector.Vec3{1, 0, 0})
	dir := t.TempDir()

	err := RenderFrame(f, ChartSpec{OutputPath: filepath.Join(dir, "v.png"), Backend: BackendGoChart})
	assert.ErrorIs(t, err, ErrInvalidSpec)

	err = RenderFrame(f, ChartSpec{})
	assert.ErrorIs(t, err, ErrInvalidSpec)

	err = RenderFrame(f, ChartSpec{OutputPath: filepath.Join(dir, "missing", "v.png")})
	assert.True(t, IsRenderError(err))

	bad := vector.NewFrame(vector.Identity(), vector.Vec3{math.NaN(), 0, 0})
	err = RenderFrame(bad, ChartSpec{OutputPath: filepath.Join(dir, "nan.png")})
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "draw", re.Op)
	assertNoTempFiles(t, dir)
}

func TestView_Projection(t *testing.T) {
	// Azimuth 0, elevation 0: looking down the x axis, y is right and z is up.
	cam := newView(0, 0)
	assert.InDelta(t, 0, cam.project(vector.Vec3{1, 0, 0}).X, 1e-12)
	assert.InDelta(t, 1, cam.project(vector.Vec3{0, 1, 0}).X, 1e-12)
	assert.InDelta(t, 1, cam.project(vector.Vec3{0, 0, 1}).Y, 1e-12)
}
