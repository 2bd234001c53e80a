package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// goChartDPI converts figure inches to go-chart's pixel dimensions.
const goChartDPI = 100

type goChartBackend struct{}

func (goChartBackend) Name() string { return BackendGoChart }

func (goChartBackend) Supports(format string) bool {
	return format == "png" || format == "svg"
}

func (goChartBackend) DrawLines(w io.Writer, format string, series []Series, spec ChartSpec) error {
	var grid chart.Style
	if !spec.HideGrid {
		grid = chart.Style{
			StrokeColor: drawing.Color{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
			StrokeWidth: 1.0,
		}
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      int(spec.Width * goChartDPI),
		Height:     int(spec.Height * goChartDPI),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: spec.XLabel, GridMajorStyle: grid},
		YAxis:      chart.YAxis{Name: spec.YLabel, GridMajorStyle: grid},
	}
	xs := make([][]float64, len(series))
	ys := make([][]float64, len(series))
	for i, s := range series {
		xs[i], ys[i] = s.X, s.Y
	}
	if r := degenerateRange(xs); r != nil {
		ch.XAxis.Range = r
	}
	if r := degenerateRange(ys); r != nil {
		ch.YAxis.Range = r
	}
	for i, s := range series {
		c := seriesColor(i)
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A},
				StrokeWidth: 2,
			},
		})
	}
	if len(series) > 1 || spec.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var provider chart.RendererProvider
	switch format {
	case "png":
		provider = chart.PNG
	case "svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("gochart: unsupported format %q", format)
	}
	return ch.Render(provider, w)
}

// degenerateRange returns an explicit axis range one unit wide around the
// single finite value of vals, or nil when vals span a non-zero width.
// go-chart refuses to draw an axis whose range has zero width; gonum pads it
// the same way.
func degenerateRange(vals [][]float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range vals {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 0.5, Max: hi + 0.5}
}
