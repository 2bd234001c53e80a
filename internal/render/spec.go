package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Backend names accepted in ChartSpec.Backend.
const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

// Default figure sizes, in inches.
const (
	DefaultLineWidth    = 10.0
	DefaultLineHeight   = 6.0
	DefaultVectorWidth  = 8.0
	DefaultVectorHeight = 8.0
)

// Default camera for vector charts, in degrees.
const (
	DefaultElevation = 15.0
	DefaultAzimuth   = 75.0
)

// ErrInvalidSpec is wrapped by every ChartSpec validation failure.
var ErrInvalidSpec = errors.New("invalid chart spec")

// ChartSpec describes one chart to produce. It is plain configuration and is
// never mutated by the renderer.
type ChartSpec struct {
	// Name identifies the chart in chart sets and render history.
	Name string `json:"name,omitempty"`

	// X is the shared x-axis column of a line chart.
	X string `json:"x,omitempty"`

	// Y lists the columns plotted against X, one line series each.
	Y []string `json:"y,omitempty"`

	// Labels are legend labels for Y, by position. Missing or empty labels
	// fall back to the column name.
	Labels []string `json:"labels,omitempty"`

	Title  string `json:"title,omitempty"`
	XLabel string `json:"x_label,omitempty"`
	YLabel string `json:"y_label,omitempty"`
	ZLabel string `json:"z_label,omitempty"`

	// OutputPath is where the artifact is written. Its extension selects
	// the image format.
	OutputPath string `json:"output"`

	// Width and Height are in inches; zero selects the chart kind's default.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// HideGrid turns off the background grid of line charts.
	HideGrid bool `json:"hide_grid,omitempty"`

	// Legend forces a legend on a single-series line chart. Charts with
	// more than one series always get one.
	Legend bool `json:"legend,omitempty"`

	// Backend selects the line-chart drawing library; empty means gonum.
	Backend string `json:"backend,omitempty"`

	// Elevation and Azimuth place the camera of a vector chart, in degrees.
	Elevation float64 `json:"elev,omitempty"`
	Azimuth   float64 `json:"azim,omitempty"`
}

// Format returns the output format implied by OutputPath's extension,
// lower-cased and without the dot.
func (s ChartSpec) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(s.OutputPath)), ".")
}

// BackendName returns the effective backend.
func (s ChartSpec) BackendName() string {
	if s.Backend == "" {
		return BackendGonum
	}
	return s.Backend
}

// Label returns the legend label of the i-th Y series.
func (s ChartSpec) Label(i int) string {
	if i < len(s.Labels) && s.Labels[i] != "" {
		return s.Labels[i]
	}
	return s.Y[i]
}

func (s ChartSpec) withSize(w, h float64) ChartSpec {
	if s.Width <= 0 {
		s.Width = w
	}
	if s.Height <= 0 {
		s.Height = h
	}
	return s
}

// ValidateLine checks the fields a line chart needs.
func (s ChartSpec) ValidateLine() error {
	switch {
	case s.OutputPath == "":
		return fmt.Errorf("%w: output path is required", ErrInvalidSpec)
	case s.X == "":
		return fmt.Errorf("%w: x column is required", ErrInvalidSpec)
	case len(s.Y) == 0:
		return fmt.Errorf("%w: at least one y column is required", ErrInvalidSpec)
	case len(s.Labels) > len(s.Y):
		return fmt.Errorf("%w: %d labels for %d y columns", ErrInvalidSpec, len(s.Labels), len(s.Y))
	}
	if _, ok := backends[s.BackendName()]; !ok {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSpec, s.Backend)
	}
	return nil
}

// ValidateVectors checks the fields a vector chart needs.
func (s ChartSpec) ValidateVectors() error {
	if s.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidSpec)
	}
	if s.BackendName() != BackendGonum {
		return fmt.Errorf("%w: vector charts are only drawn by the %s backend", ErrInvalidSpec, BackendGonum)
	}
	return nil
}
