package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func pressureData(t *testing.T, eb float64) PressureDiagramData {
	t.Helper()
	r, err := footing.Compute(footing.Input{
		Geometry: footing.Geometry{Width: 6, Length: 8, Thickness: 24, UnitWeight: 0.145},
		Load:     footing.PointLoad{Magnitude: 20, EB: eb},
	})
	require.NoError(t, err)
	data, ok := NewPressureDiagramData(r)
	require.True(t, ok)
	return data
}

func TestNewPressureDiagramData(t *testing.T) {
	data := pressureData(t, 0.5)
	assert.Equal(t, "L", data.Axis)
	assert.Equal(t, 8.0, data.Dimension)
	assert.False(t, data.Triangular)
	assert.Len(t, data.Profile, 4)
	assert.InDelta(t, 0.5504, data.QNear, 1e-4)
	assert.InDelta(t, 0.8629, data.QFar, 1e-4)

	_, ok := NewPressureDiagramData(&footing.Result{})
	assert.False(t, ok)
}

func TestNewPressureDiagramDataEccentricityMapping(t *testing.T) {
	r, err := footing.ComputeWith(footing.Input{
		Geometry: footing.Geometry{Width: 6, Length: 8, Thickness: 24, UnitWeight: 0.145},
		Load:     footing.PointLoad{Magnitude: 20, EB: 2.5},
	}, footing.EccentricityAxisMapping)
	require.NoError(t, err)

	data, ok := NewPressureDiagramData(r)
	require.True(t, ok)
	assert.Equal(t, "B", data.Axis)
	assert.Equal(t, 6.0, data.Dimension)
	assert.True(t, data.Triangular)
	assert.Less(t, data.EffectiveDim, data.Dimension)
}

func TestPressureAt(t *testing.T) {
	trap := PressureDiagramData{
		Dimension: 6,
		Profile:   []Point{{0, 0}, {0, 1}, {6, 2}, {6, 0}},
	}
	assert.InDelta(t, 1.0, trap.PressureAt(0), 1e-12)
	assert.InDelta(t, 1.5, trap.PressureAt(3), 1e-12)
	assert.InDelta(t, 2.0, trap.PressureAt(6), 1e-12)

	tri := PressureDiagramData{
		Dimension:    6,
		Triangular:   true,
		EffectiveDim: 3,
		QFar:         4,
		Profile:      []Point{{3, 0}, {6, 4}, {6, 0}},
	}
	assert.Zero(t, tri.PressureAt(1))
	assert.InDelta(t, 2.0, tri.PressureAt(4.5), 1e-12)
	assert.Equal(t, 3.0, tri.ContactEdge())
}

func TestDrawASCIIPressureDiagram(t *testing.T) {
	out := DrawASCIIPressureDiagram(pressureData(t, 0.5))
	assert.Contains(t, out, "FOOTING SECTION ALONG L")
	assert.Contains(t, out, "550 psf")
	assert.Contains(t, out, "863 psf")
	assert.Contains(t, out, "trapezoidal")

	uplift := DrawASCIIPressureDiagram(pressureData(t, 2.5))
	assert.Contains(t, uplift, "Leff")
	assert.Contains(t, uplift, "0 psf")
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"q max = 0.863 ksf", "γ = 0.145 kcf"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestDrawResidualGraph(t *testing.T) {
	in := pier.Input{PointLoad: 1, Height: 10, Diameter: 24, AllowablePressure: 200}
	r, err := pier.Solve(in)
	require.NoError(t, err)

	data := NewResidualData(pier.Trace(in, 1, 15, 0.5), r)
	assert.True(t, data.Converged)
	graph := DrawResidualGraph(data)
	assert.Contains(t, graph, "root at d =")

	assert.Empty(t, DrawResidualGraph(ResidualData{}))
}

func TestWritePNG(t *testing.T) {
	p, err := PressurePlot(pressureData(t, 2.5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(p, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()

	pressure := filepath.Join(dir, "out", "pressure.png")
	require.NoError(t, ExportPressureDiagram(pressureData(t, 0.5), pressure))
	assert.FileExists(t, pressure)

	in := pier.Input{PointLoad: 1, Height: 10, Diameter: 24, AllowablePressure: 200, Constrained: true}
	r, err := pier.Solve(in)
	require.NoError(t, err)
	residual := filepath.Join(dir, "residual")
	require.NoError(t, ExportResidualPlot(NewResidualData(pier.Trace(in, 0.5, 10, 0.1), r), residual))
	assert.FileExists(t, residual+".png")

	_, err = ResidualPlot(ResidualData{})
	assert.Error(t, err)
}

func TestWritePressureSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePressureSVG(&buf, pressureData(t, 2.5)))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "Leff")

	path := filepath.Join(t.TempDir(), "p.svg")
	require.NoError(t, ExportPressureSVG(pressureData(t, 0.5), path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "psf")

	assert.Error(t, WritePressureSVG(&buf, PressureDiagramData{}))
}

func TestExportPressureDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pressure.dxf")
	require.NoError(t, ExportPressureDXF(pressureData(t, 2.5), path))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	polylines := 0
	for _, e := range drawing.Entities() {
		if _, ok := e.(*entity.LwPolyline); ok {
			polylines++
		}
	}
	assert.Equal(t, 2, polylines)

	assert.Error(t, ExportPressureDXF(PressureDiagramData{}, path))
}
