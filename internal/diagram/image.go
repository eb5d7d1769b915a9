package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 5 * vg.Inch
)

var (
	pressureFill = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	pressureLine = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	footingColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	rootColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// PressurePlot builds the bearing pressure plot. Pressures are drawn below
// the footing, in psf.
func PressurePlot(data PressureDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Soil Bearing Pressure along %s", data.Axis)
	p.X.Label.Text = fmt.Sprintf("%s (ft)", data.Axis)
	p.Y.Label.Text = "Pressure (psf)"

	qMax := psf(data.QMax)
	if qMax <= 0 {
		qMax = 1
	}

	// Footing drawn above the pressure baseline, scaled to the plot
	footingDepth := 0.25 * qMax
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Dimension, Y: 0},
		{X: data.Dimension, Y: footingDepth},
		{X: 0, Y: footingDepth},
	}
	slab, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	slab.Color = footingColor
	slab.LineStyle.Color = color.Black
	slab.LineStyle.Width = vg.Points(1.5)
	p.Add(slab)

	pts := make(plotter.XYs, len(data.Profile))
	for i, pt := range data.Profile {
		pts[i] = plotter.XY{X: pt.X, Y: -psf(pt.Y)}
	}
	pressure, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	pressure.Color = pressureFill
	pressure.LineStyle.Color = pressureLine
	pressure.LineStyle.Width = vg.Points(1.5)
	p.Add(pressure)

	labels := plotter.XYLabels{
		XYs: []plotter.XY{
			{X: 0, Y: -psf(data.QNear) - 0.08*qMax},
			{X: data.Dimension, Y: -psf(data.QFar) - 0.08*qMax},
		},
		Labels: []string{
			fmt.Sprintf("%.0f psf", psf(data.QNear)),
			fmt.Sprintf("%.0f psf", psf(data.QFar)),
		},
	}
	if data.Triangular {
		labels.XYs = append(labels.XYs, plotter.XY{X: data.Dimension / 2, Y: footingDepth + 0.1*qMax})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%seff = %.3f ft", data.Axis, data.EffectiveDim))
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	p.X.Min = -0.1 * data.Dimension
	p.X.Max = 1.1 * data.Dimension
	p.Y.Min = -1.25 * qMax
	p.Y.Max = footingDepth + 0.25*qMax

	return p, nil
}

// ResidualPlot builds the plot of rhs(d) against the trial depth d with the
// d = rhs(d) reference line and the accepted root
func ResidualPlot(data ResidualData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Pier Embedment Equation"
	p.X.Label.Text = "Trial depth d (ft)"
	p.Y.Label.Text = "rhs(d) (ft)"

	if len(data.Depths) == 0 {
		return nil, fmt.Errorf("no samples to plot")
	}

	rhs := make(plotter.XYs, len(data.Depths))
	ref := make(plotter.XYs, len(data.Depths))
	for i, d := range data.Depths {
		rhs[i] = plotter.XY{X: d, Y: data.RHS[i]}
		ref[i] = plotter.XY{X: d, Y: d}
	}

	rhsLine, err := plotter.NewLine(rhs)
	if err != nil {
		return nil, err
	}
	rhsLine.LineStyle.Width = vg.Points(2)
	rhsLine.LineStyle.Color = pressureLine
	p.Add(rhsLine)

	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return nil, err
	}
	refLine.LineStyle.Width = vg.Points(1)
	refLine.LineStyle.Color = color.Gray{Y: 128}
	refLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(refLine)
	p.Legend.Add("rhs(d)", rhsLine)
	p.Legend.Add("d", refLine)

	if data.Converged {
		root, err := plotter.NewScatter(plotter.XYs{{X: data.Root, Y: data.Root}})
		if err != nil {
			return nil, err
		}
		root.GlyphStyle.Color = rootColor
		root.GlyphStyle.Radius = vg.Points(5)
		root.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(root)
	}

	// rhs is unbounded near d = 0; clip the view to the reference range
	last := data.Depths[len(data.Depths)-1]
	p.Y.Min = 0
	p.Y.Max = 2 * last

	return p, nil
}

// WritePNG renders a plot as PNG to w
func WritePNG(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(imageWidth, imageHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// ExportPressureDiagram exports a bearing pressure diagram to an image file
func ExportPressureDiagram(data PressureDiagramData, filename string) error {
	p, err := PressurePlot(data)
	if err != nil {
		return err
	}
	return save(p, filename)
}

// ExportResidualPlot exports the embedment equation plot to an image file
func ExportResidualPlot(data ResidualData, filename string) error {
	p, err := ResidualPlot(data)
	if err != nil {
		return err
	}
	return save(p, filename)
}

// save writes the plot in the format given by the file extension,
// defaulting to PNG
func save(p *plot.Plot, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(imageWidth, imageHeight, filename)
	default:
		return p.Save(imageWidth, imageHeight, filename+".png")
	}
}
