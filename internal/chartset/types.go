package chartset

import (
	"github.com/roach88/logchart/internal/render"
)

// Job kinds.
const (
	KindLine    = "line"
	KindVectors = "vectors"
)

// ChartSet is a bundle of jobs, each loading one input and producing one or
// more charts from it.
type ChartSet struct {
	// Name identifies the set in logs and render history.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description is free text shown by the presets command.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Jobs []Job `yaml:"jobs" json:"jobs"`
}

// Job loads one log (or, for vector jobs, a rotation-matrix log and an
// angular-velocity log) and renders its charts in order.
type Job struct {
	// Kind is "line" (default) or "vectors".
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Input is the tabular log of a line job. Relative paths resolve
	// against the input directory.
	Input string `yaml:"input,omitempty" json:"input,omitempty"`

	// Table names a log archived with ingest, read instead of Input.
	Table string `yaml:"table,omitempty" json:"table,omitempty"`

	// Delimiter separates fields; empty means ", ".
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// Rotation and Omega are the two logs of a vector job.
	Rotation string `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Omega    string `yaml:"omega,omitempty" json:"omega,omitempty"`

	Charts []Chart `yaml:"charts" json:"charts"`
}

// Chart is the YAML form of a render.ChartSpec. Optional numbers are
// pointers so that an explicit zero (azimuth 0, say) survives decoding.
type Chart struct {
	Name     string   `yaml:"name" json:"name"`
	X        string   `yaml:"x,omitempty" json:"x,omitempty"`
	Y        []string `yaml:"y,omitempty" json:"y,omitempty"`
	Labels   []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Title    string   `yaml:"title,omitempty" json:"title,omitempty"`
	XLabel   string   `yaml:"x_label,omitempty" json:"x_label,omitempty"`
	YLabel   string   `yaml:"y_label,omitempty" json:"y_label,omitempty"`
	ZLabel   string   `yaml:"z_label,omitempty" json:"z_label,omitempty"`
	Output   string   `yaml:"output" json:"output"`
	Width    *float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height   *float64 `yaml:"height,omitempty" json:"height,omitempty"`
	Grid     *bool    `yaml:"grid,omitempty" json:"grid,omitempty"`
	Legend   bool     `yaml:"legend,omitempty" json:"legend,omitempty"`
	Backend  string   `yaml:"backend,omitempty" json:"backend,omitempty"`
	Elev     *float64 `yaml:"elev,omitempty" json:"elev,omitempty"`
	Azim     *float64 `yaml:"azim,omitempty" json:"azim,omitempty"`
}

// KindOrDefault returns the job kind, defaulting to "line".
func (j Job) KindOrDefault() string {
	if j.Kind == "" {
		return KindLine
	}
	return j.Kind
}

// Spec converts c into a render.ChartSpec writing to output.
func (c Chart) Spec(output string) render.ChartSpec {
	spec := render.ChartSpec{
		Name:       c.Name,
		X:          c.X,
		Y:          append([]string(nil), c.Y...),
		Labels:     append([]string(nil), c.Labels...),
		Title:      c.Title,
		XLabel:     c.XLabel,
		YLabel:     c.YLabel,
		ZLabel:     c.ZLabel,
		OutputPath: output,
		Legend:     c.Legend,
		Backend:    c.Backend,
		Elevation:  render.DefaultElevation,
		Azimuth:    render.DefaultAzimuth,
	}
	if c.Width != nil {
		spec.Width = *c.Width
	}
	if c.Height != nil {
		spec.Height = *c.Height
	}
	if c.Grid != nil {
		spec.HideGrid = !*c.Grid
	}
	if c.Elev != nil {
		spec.Elevation = *c.Elev
	}
	if c.Azim != nil {
		spec.Azimuth = *c.Azim
	}
	return spec
}
