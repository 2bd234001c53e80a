// Package render turns loaded logs into static chart artifacts.
//
// RenderLine draws line charts from a logtable.LogTable and a ChartSpec;
// Render3DVectors draws a rigid body's reference basis, rotated basis and
// angular-velocity vector as arrows from the origin.
//
// Line charts are drawn by one of two backends:
//   - gonum (default): gonum.org/v1/plot; png, svg, pdf, eps, jpg, tif
//   - gochart: github.com/wcharczuk/go-chart/v2; png, svg
//
// Every artifact is written atomically: drawing goes to a temporary file in
// the destination directory which is renamed over the output path only on
// success. A failed render returns a *RenderError and leaves nothing at the
// output path.
package render
