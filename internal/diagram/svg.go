package diagram

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

// SVG canvas layout in pixels
const (
	svgWidth       = 600
	svgHeight      = 360
	svgMargin      = 60
	svgFootingTop  = 60
	svgFootingSize = 60
	svgPressureMax = 160
)

// WritePressureSVG draws the footing section and its bearing pressure
// polygon as SVG
func WritePressureSVG(w io.Writer, data PressureDiagramData) error {
	if data.Dimension <= 0 {
		return fmt.Errorf("footing dimension must be positive")
	}

	canvas := svg.New(w)
	canvas.Start(svgWidth, svgHeight)
	canvas.Title(fmt.Sprintf("Soil bearing pressure along %s", data.Axis))
	canvas.Rect(0, 0, svgWidth, svgHeight, "fill:white")

	drawWidth := svgWidth - 2*svgMargin
	scaleX := float64(drawWidth) / data.Dimension
	scaleY := 0.0
	if data.QMax > 0 {
		scaleY = svgPressureMax / data.QMax
	}
	base := svgFootingTop + svgFootingSize

	// Footing section
	canvas.Rect(svgMargin, svgFootingTop, drawWidth, svgFootingSize, "fill:#a0a0a0;stroke:black;stroke-width:2")
	canvas.Text(svgMargin+drawWidth/2, svgFootingTop-10, data.Axis, "text-anchor:middle;font-size:14px;font-family:sans-serif")
	canvas.Text(svgMargin+drawWidth+10, svgFootingTop+svgFootingSize/2, "t", "font-size:14px;font-family:sans-serif")

	// Pressure polygon
	xs := make([]int, len(data.Profile))
	ys := make([]int, len(data.Profile))
	for i, p := range data.Profile {
		xs[i] = svgMargin + int(math.Round(p.X*scaleX))
		ys[i] = base + int(math.Round(p.Y*scaleY))
	}
	if len(xs) >= 3 {
		canvas.Polygon(xs, ys, "fill:rgb(100,149,237);fill-opacity:0.6;stroke:rgb(0,0,139);stroke-width:2")
	}

	// Edge labels in psf
	label := "font-size:12px;font-family:sans-serif"
	canvas.Text(svgMargin, base+int(math.Round(data.QNear*scaleY))+18, fmt.Sprintf("%.0f psf", psf(data.QNear)), "text-anchor:start;"+label)
	canvas.Text(svgMargin+drawWidth, base+int(math.Round(data.QFar*scaleY))+18, fmt.Sprintf("%.0f psf", psf(data.QFar)), "text-anchor:end;"+label)
	if data.Triangular {
		canvas.Text(svgMargin+drawWidth/2, svgHeight-12, fmt.Sprintf("%seff = %.3f ft", data.Axis, data.EffectiveDim), "text-anchor:middle;"+label)
	}

	canvas.End()
	return nil
}

// ExportPressureSVG writes the SVG diagram to a file
func ExportPressureSVG(data PressureDiagramData, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WritePressureSVG(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
