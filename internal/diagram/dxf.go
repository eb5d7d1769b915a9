package diagram

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// DXF layers
const (
	LayerFooting  = "FOOTING"
	LayerPressure = "PRESSURE"
	LayerText     = "TEXT"
)

// ExportPressureDXF writes the footing section and the pressure polygon as
// a DXF drawing. Lengths are in feet; pressures are drawn downward from
// the footing base at one foot per 1000 psf.
func ExportPressureDXF(data PressureDiagramData, filename string) error {
	if data.Dimension <= 0 {
		return fmt.Errorf("footing dimension must be positive")
	}

	d := dxf.NewDrawing()
	thickness := data.Thickness / 12

	if _, err := d.AddLayer(LayerFooting, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if _, err := d.LwPolyline(true,
		[]float64{0, 0},
		[]float64{data.Dimension, 0},
		[]float64{data.Dimension, thickness},
		[]float64{0, thickness},
	); err != nil {
		return fmt.Errorf("failed to draw footing: %w", err)
	}

	if _, err := d.AddLayer(LayerPressure, color.Blue, dxf.DefaultLineType, true); err != nil {
		return err
	}
	vertices := make([][]float64, len(data.Profile))
	for i, p := range data.Profile {
		// 1 ksf = 1 ft of drawing depth
		vertices[i] = []float64{p.X, -p.Y}
	}
	if len(vertices) >= 3 {
		if _, err := d.LwPolyline(true, vertices...); err != nil {
			return fmt.Errorf("failed to draw pressure polygon: %w", err)
		}
	}

	if _, err := d.AddLayer(LayerText, color.Red, dxf.DefaultLineType, true); err != nil {
		return err
	}
	textHeight := 0.05 * data.Dimension
	if _, err := d.Text(fmt.Sprintf("%.0f psf", psf(data.QNear)), 0, -data.QNear-2*textHeight, 0, textHeight); err != nil {
		return err
	}
	if _, err := d.Text(fmt.Sprintf("%.0f psf", psf(data.QFar)), data.Dimension, -data.QFar-2*textHeight, 0, textHeight); err != nil {
		return err
	}
	if _, err := d.Text(fmt.Sprintf("%s = %.2f ft", data.Axis, data.Dimension), data.Dimension/2, thickness+textHeight, 0, textHeight); err != nil {
		return err
	}
	if data.Triangular {
		x := data.ContactEdge()
		if _, err := d.Line(x, 0, 0, x, -0.25*data.QMax, 0); err != nil {
			return err
		}
		if _, err := d.Text(fmt.Sprintf("%seff = %.3f ft", data.Axis, data.EffectiveDim), x, -0.25*data.QMax-2*textHeight, 0, textHeight); err != nil {
			return err
		}
	}

	return d.SaveAs(filename)
}
