package render

import (
	"image/color"
	"io"
)

// Series is one named line: Y plotted against X, point by point.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// LineBackend draws line charts with a particular plotting library.
type LineBackend interface {
	// Name is the value of ChartSpec.Backend that selects this backend.
	Name() string

	// Supports reports whether the backend can encode format ("png", "svg", ...).
	Supports(format string) bool

	// DrawLines encodes a chart of series to w. spec has its sizes filled in.
	DrawLines(w io.Writer, format string, series []Series, spec ChartSpec) error
}

var backends = map[string]LineBackend{
	BackendGonum:   gonumBackend{},
	BackendGoChart: goChartBackend{},
}

// Backends returns the names of the available line backends.
func Backends() []string {
	return []string{BackendGonum, BackendGoChart}
}

// palette is matplotlib's default color cycle, so charts keep the colors
// of the scripts they replace.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

func seriesColor(i int) color.RGBA {
	return palette[i%len(palette)]
}
