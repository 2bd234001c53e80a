package chartset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/logchart/internal/render"
)

const exampleSet = `name: eps
jobs:
  - input: battery_output.txt
    delimiter: ", "
    charts:
      - name: ov_battery
        x: t
        y: [V_t]
        title: Output Voltage Of Battery
        x_label: time (s)
        y_label: Terminal Voltage (V)
        output: OV_Battery.png
  - kind: vectors
    rotation: rotation1_output.txt
    omega: omega_output.txt
    charts:
      - name: rotation
        title: "Rotation About Vector Ex: 2"
        output: "Rotation Vec2 .png"
        azim: 0
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(exampleSet), "eps.yaml")
	require.NoError(t, err)

	assert.Equal(t, "eps", set.Name)
	require.Len(t, set.Jobs, 2)

	line := set.Jobs[0]
	assert.Equal(t, KindLine, line.KindOrDefault())
	assert.Equal(t, ", ", line.Delimiter)
	require.Len(t, line.Charts, 1)
	assert.Equal(t, []string{"V_t"}, line.Charts[0].Y)
	assert.Equal(t, "Terminal Voltage (V)", line.Charts[0].YLabel)

	vec := set.Jobs[1]
	assert.Equal(t, KindVectors, vec.KindOrDefault())
	assert.Equal(t, "Rotation Vec2 .png", vec.Charts[0].Output)
}

func TestChart_Spec(t *testing.T) {
	set, err := Parse([]byte(exampleSet), "eps.yaml")
	require.NoError(t, err)

	spec := set.Jobs[1].Charts[0].Spec("/out/r.png")
	assert.Equal(t, "/out/r.png", spec.OutputPath)
	assert.Equal(t, render.DefaultElevation, spec.Elevation)
	assert.Equal(t, 0.0, spec.Azimuth, "explicit zero azimuth is kept")

	grid := false
	width := 4.0
	c := Chart{Name: "c", X: "t", Y: []string{"V"}, Output: "c.svg", Grid: &grid, Width: &width}
	spec = c.Spec("c.svg")
	assert.True(t, spec.HideGrid)
	assert.Equal(t, 4.0, spec.Width)
	assert.Equal(t, render.DefaultAzimuth, spec.Azimuth)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "empty document",
			yaml: "",
			want: "empty chart set",
		},
		{
			name: "unknown field",
			yaml: "jobs:\n  - input: a.txt\n    colour: red\n    charts: [{name: a, x: t, y: [V], output: a.png}]\n",
			want: "colour",
		},
		{
			name: "wrong type",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, y: V, output: a.png}]\n",
			want: "cannot unmarshal",
		},
		{
			name: "unknown backend",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, y: [V], output: a.png, backend: matplotlib}]\n",
			want: "backend",
		},
		{
			name: "missing output",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, y: [V]}]\n",
			want: "output",
		},
		{
			name: "output without extension",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, y: [V], output: chart}]\n",
			want: "output",
		},
		{
			name: "unknown kind",
			yaml: "jobs:\n  - kind: surface\n    input: a.txt\n    charts: [{name: a, x: t, y: [V], output: a.png}]\n",
			want: "kind",
		},
		{
			name: "no jobs",
			yaml: "name: empty\n",
			want: "jobs",
		},
		{
			name: "no charts",
			yaml: "jobs:\n  - input: a.txt\n    charts: []\n",
			want: "charts",
		},
		{
			name: "negative width",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, y: [V], output: a.png, width: -1}]\n",
			want: "width",
		},
		{
			name: "line job without input",
			yaml: "jobs:\n  - charts: [{name: a, x: t, y: [V], output: a.png}]\n",
			want: "jobs.0.input: required for line jobs",
		},
		{
			name: "line job with input and table",
			yaml: "jobs:\n  - input: a.txt\n    table: battery\n    charts: [{name: a, x: t, y: [V], output: a.png}]\n",
			want: "jobs.0.table: conflicts with input",
		},
		{
			name: "vectors job with table",
			yaml: "jobs:\n  - kind: vectors\n    rotation: r.txt\n    omega: w.txt\n    table: battery\n    charts: [{name: a, output: a.png}]\n",
			want: "only line jobs read archived tables",
		},
		{
			name: "line chart without x",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, y: [V], output: a.png}]\n",
			want: "jobs.0.charts.0.x",
		},
		{
			name: "line chart without y",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, output: a.png}]\n",
			want: "jobs.0.charts.0.y",
		},
		{
			name: "too many labels",
			yaml: "jobs:\n  - input: a.txt\n    charts: [{name: a, x: t, y: [V], labels: [a, b], output: a.png}]\n",
			want: "2 labels for 1 series",
		},
		{
			name: "vectors job without omega",
			yaml: "jobs:\n  - kind: vectors\n    rotation: r.txt\n    charts: [{name: a, output: a.png}]\n",
			want: "jobs.0.omega",
		},
		{
			name: "vectors on gochart",
			yaml: "jobs:\n  - kind: vectors\n    rotation: r.txt\n    omega: w.txt\n    charts: [{name: a, output: a.png, backend: gochart}]\n",
			want: "gonum only",
		},
		{
			name: "duplicate chart names",
			yaml: "jobs:\n  - input: a.txt\n    charts:\n      - {name: a, x: t, y: [V], output: a.png}\n      - {name: a, x: t, y: [V], output: b.png}\n",
			want: "already used",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "bad.yaml")
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "bad.yaml", ve.Source)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleSet), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eps", set.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, IsValidation(err))
}

func TestValidationError_Message(t *testing.T) {
	one := &ValidationError{Source: "a.yaml", Problems: []string{"jobs: missing"}}
	assert.Equal(t, "a.yaml: jobs: missing", one.Error())

	many := &ValidationError{Problems: []string{"x", "y"}}
	assert.Equal(t, "chart set: 2 problems:\n  x\n  y", many.Error())
}

func TestPresets(t *testing.T) {
	assert.Equal(t,
		[]string{"accelerometer", "battery", "gyroscope", "rigid-body", "solar", "wire"},
		PresetNames())

	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			set, err := Preset(name)
			require.NoError(t, err)
			assert.Equal(t, name, set.Name)
			assert.NotEmpty(t, set.Description)
			require.NoError(t, set.Validate())
		})
	}

	_, err := Preset("thruster")
	var unknown *UnknownPresetError
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, err.Error(), "battery")
}

func TestPreset_FreshCopy(t *testing.T) {
	a, err := Preset("battery")
	require.NoError(t, err)
	a.Jobs[0].Charts[0].Title = "changed"

	b, err := Preset("battery")
	require.NoError(t, err)
	assert.Equal(t, "Output Voltage Of Battery", b.Jobs[0].Charts[0].Title)
}
