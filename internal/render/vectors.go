package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/roach88/logchart/internal/vector"
)

// Arrow styles of the rigid-body chart: dashed reference basis, translucent
// rotated basis, and the angular-velocity vector.
var (
	basisColors = [3]color.Color{
		color.NRGBA{R: 0xff, A: 0xff},
		color.NRGBA{G: 0x80, A: 0xff},
		color.NRGBA{B: 0xff, A: 0xff},
	}
	rotatedColors = [3]color.Color{
		color.NRGBA{R: 0xff, B: 0xff, A: 0x80},
		color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 0x80},
		color.NRGBA{B: 0xff, A: 0x80},
	}
	omegaColor = color.NRGBA{R: 0xbf, G: 0xbf, A: 0x99}
	axisColor  = color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}

	basisLabels   = [3]string{"x", "y", "z"}
	rotatedLabels = [3]string{"x'", "y'", "z'"}
)

const (
	// headRatio is the arrow head length relative to the projected shaft.
	headRatio = 0.15
	// headAngle is the half-angle between head wings, in radians.
	headAngle = 25 * math.Pi / 180
	// axisReach is how far the X/Y/Z guide axes extend past the unit basis.
	axisReach = 1.3
)

// view is an orthographic camera placed by elevation and azimuth, both in
// degrees, with the same conventions as a matplotlib 3D axes.
type view struct {
	right vector.Vec3
	up    vector.Vec3
}

func newView(elevDeg, azimDeg float64) view {
	e := elevDeg * math.Pi / 180
	a := azimDeg * math.Pi / 180
	return view{
		right: vector.Vec3{-math.Sin(a), math.Cos(a), 0},
		up:    vector.Vec3{-math.Sin(e) * math.Cos(a), -math.Sin(e) * math.Sin(a), math.Cos(e)},
	}
}

func (v view) project(p vector.Vec3) plotter.XY {
	return plotter.XY{
		X: v.right[0]*p[0] + v.right[1]*p[1] + v.right[2]*p[2],
		Y: v.up[0]*p[0] + v.up[1]*p[1] + v.up[2]*p[2],
	}
}

// Render3DVectors draws the reference basis, the rotated basis and the
// angular-velocity vector as arrows from the origin, and writes the chart to
// spec.OutputPath. Only the gonum backend draws vector charts.
func Render3DVectors(basis, rotated [3]vector.Vec3, omega vector.Vec3, spec ChartSpec) error {
	if err := spec.ValidateVectors(); err != nil {
		return err
	}
	spec = spec.withSize(DefaultVectorWidth, DefaultVectorHeight)

	format := spec.Format()
	if !(gonumBackend{}).Supports(format) {
		return &RenderError{
			Path: spec.OutputPath,
			Op:   "format",
			Err:  fmt.Errorf("%s backend cannot encode %q", BackendGonum, format),
		}
	}

	return writeAtomic(spec.OutputPath, func(w io.Writer) error {
		p, err := vectorPlot(basis, rotated, omega, spec)
		if err != nil {
			return err
		}
		return savePlot(w, p, spec, format)
	})
}

// RenderFrame draws a loaded VectorFrame with Render3DVectors.
func RenderFrame(f vector.VectorFrame, spec ChartSpec) error {
	return Render3DVectors(f.Basis, f.Rotated, f.Omega, spec)
}

func vectorPlot(basis, rotated [3]vector.Vec3, omega vector.Vec3, spec ChartSpec) (*plot.Plot, error) {
	cam := newView(spec.Elevation, spec.Azimuth)

	p := plot.New()
	p.Title.Text = spec.Title
	p.HideAxes()
	p.Legend.Top = true

	extent := axisReach
	track := func(xy plotter.XY) {
		extent = math.Max(extent, math.Max(math.Abs(xy.X), math.Abs(xy.Y)))
	}

	// Guide axes with their labels at the far end.
	axisNames := [3]string{"X", "Y", "Z"}
	for i, name := range [3]string{spec.XLabel, spec.YLabel, spec.ZLabel} {
		if name != "" {
			axisNames[i] = name
		}
	}
	var labelXYs plotter.XYs
	for _, b := range vector.StandardBasis() {
		end := cam.project(b.Scale(axisReach))
		track(end)
		guide, err := plotter.NewLine(plotter.XYs{{}, end})
		if err != nil {
			return nil, err
		}
		guide.LineStyle = draw.LineStyle{Color: axisColor, Width: vg.Points(0.5)}
		p.Add(guide)
		labelXYs = append(labelXYs, end)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: axisNames[:]})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	for i := range basis {
		style := draw.LineStyle{
			Color:  basisColors[i],
			Width:  vg.Points(3),
			Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
		}
		if err := addArrow(p, cam, basis[i], basisLabels[i], style, track); err != nil {
			return nil, err
		}
	}
	for i := range rotated {
		style := draw.LineStyle{Color: rotatedColors[i], Width: vg.Points(4)}
		if err := addArrow(p, cam, rotated[i], rotatedLabels[i], style, track); err != nil {
			return nil, err
		}
	}
	omegaStyle := draw.LineStyle{Color: omegaColor, Width: vg.Points(4)}
	if err := addArrow(p, cam, omega, "w vec", omegaStyle, track); err != nil {
		return nil, err
	}

	pad := extent * 1.1
	p.X.Min, p.X.Max = -pad, pad
	p.Y.Min, p.Y.Max = -pad, pad
	return p, nil
}

// addArrow draws the projection of tip as a shaft from the origin plus a
// two-wing head. A vector seen end-on has no head.
func addArrow(p *plot.Plot, cam view, tip vector.Vec3, label string, style draw.LineStyle, track func(plotter.XY)) error {
	end := cam.project(tip)
	track(end)

	shaft, err := plotter.NewLine(plotter.XYs{{}, end})
	if err != nil {
		return fmt.Errorf("arrow %q: %w", label, err)
	}
	shaft.LineStyle = style
	p.Add(shaft)
	p.Legend.Add(label, shaft)

	length := math.Hypot(end.X, end.Y)
	if length < 1e-9 {
		return nil
	}
	dx, dy := end.X/length, end.Y/length
	head := headRatio * length
	wing := func(angle float64) plotter.XY {
		c, s := math.Cos(angle), math.Sin(angle)
		return plotter.XY{
			X: end.X - head*(c*dx-s*dy),
			Y: end.Y - head*(s*dx+c*dy),
		}
	}

	wings, err := plotter.NewLine(plotter.XYs{wing(headAngle), end, wing(-headAngle)})
	if err != nil {
		return fmt.Errorf("arrow %q: %w", label, err)
	}
	headStyle := style
	headStyle.Dashes = nil
	wings.LineStyle = headStyle
	p.Add(wings)
	return nil
}
