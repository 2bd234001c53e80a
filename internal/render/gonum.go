package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type gonumBackend struct{}

func (gonumBackend) Name() string { return BackendGonum }

func (gonumBackend) Supports(format string) bool {
	switch format {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
		return true
	}
	return false
}

func (gonumBackend) DrawLines(w io.Writer, format string, series []Series, spec ChartSpec) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true

	if !spec.HideGrid {
		p.Add(plotter.NewGrid())
	}

	showLegend := len(series) > 1 || spec.Legend
	for i, s := range series {
		pts := make(plotter.XYs, len(s.X))
		for j := range pts {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = seriesColor(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		if showLegend {
			p.Legend.Add(s.Label, line)
		}
	}

	return savePlot(w, p, spec, format)
}

// savePlot encodes p at the spec's size. The encoder is picked by format the
// same way plot.Save picks it by file extension.
func savePlot(w io.Writer, p *plot.Plot, spec ChartSpec, format string) error {
	wt, err := p.WriterTo(vg.Length(spec.Width)*vg.Inch, vg.Length(spec.Height)*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
