package calcsheet

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func footingResult(t *testing.T, eb float64) *footing.Result {
	t.Helper()
	r, err := footing.Compute(footing.Input{
		Geometry: footing.Geometry{Width: 6, Length: 8, Thickness: 24, UnitWeight: 0.145},
		Load:     footing.PointLoad{Magnitude: 20, EB: eb},
	})
	require.NoError(t, err)
	return r
}

func TestLineDisplay(t *testing.T) {
	assert.Equal(t, "0.863", Line{Value: 0.86290}.DisplayValue())
	assert.Equal(t, "64", Line{Value: 64}.DisplayValue())
	assert.Equal(t, "0", Line{Value: -0.0001}.DisplayValue())
	assert.Equal(t, "-", Line{Value: math.Inf(1)}.DisplayValue())
	assert.Equal(t, "B", Line{Value: 3, Text: "B"}.DisplayValue())

	assert.Equal(t, "-", Line{}.DisplayFormula())
	assert.Equal(t, "B * L", Line{Formula: "B * L"}.DisplayFormula())
}

func TestFootingSheet(t *testing.T) {
	sheet := Footing(footingResult(t, 0.5))

	w, ok := sheet.Find("w")
	require.True(t, ok)
	assert.Equal(t, "13.92", w.DisplayValue())

	qmax, ok := sheet.Find("qbb_max")
	require.True(t, ok)
	assert.Equal(t, "0.863", qmax.DisplayValue())
	assert.True(t, qmax.Highlight)
	assert.Empty(t, qmax.Flag)
	assert.Equal(t, "Pt/A + (Mt_bb / Sll)", qmax.Formula)

	qll, ok := sheet.Find("qll_max")
	require.True(t, ok)
	assert.False(t, qll.Highlight)

	for _, sec := range sheet.Sections {
		assert.NotEqual(t, "Partial Contact", sec.Title)
	}
}

func TestFootingSheetUplift(t *testing.T) {
	sheet := Footing(footingResult(t, 2.5))

	qmin, ok := sheet.Find("qbb_min")
	require.True(t, ok)
	assert.Equal(t, FlagUplift, qmin.Flag)

	last := sheet.Sections[len(sheet.Sections)-1]
	require.Equal(t, "Partial Contact", last.Title)
	assert.Equal(t, "Leff", last.Lines[0].Symbol)
	assert.Equal(t, "3 * (L / 2 - |Mt_bb| / Pt)", last.Lines[0].Formula)
	assert.Equal(t, "(2 * Pt) / (B * Leff)", last.Lines[1].Formula)
	assert.Equal(t, "qbb_max", last.Lines[1].Symbol)
	assert.Contains(t, strings.Join(sheet.Notes, "\n"), "NG, uplift")
}

func TestPierSheet(t *testing.T) {
	in := pier.Input{PointLoad: 1, Height: 10, Diameter: 24, AllowablePressure: 200, MaxPressure: 1500}
	r, err := pier.Solve(in)
	require.NoError(t, err)

	sheet := Pier(in, r)
	p, ok := sheet.Find("P")
	require.True(t, ok)
	assert.Equal(t, "1000", p.DisplayValue())
	assert.Equal(t, "lbf", p.Units)

	s1, ok := sheet.Find("S1")
	require.True(t, ok)
	assert.Equal(t, "min(1/3 * q * d, Q)", s1.Formula)

	_, ok = sheet.Find("A")
	assert.True(t, ok)
	_, ok = sheet.Find("S3")
	assert.False(t, ok)

	text := sheet.String()
	assert.Contains(t, text, "REQUIRED EMBEDMENT")
	assert.Contains(t, text, "non-constrained")
}

func TestPierSheetNotConverged(t *testing.T) {
	in := pier.Input{PointLoad: 1, Height: 10, Diameter: 0, AllowablePressure: 200, Constrained: true}
	r, err := pier.Solve(in)
	require.Error(t, err)

	sheet := Pier(in, r)
	_, ok := sheet.Find("S3")
	assert.True(t, ok)
	last := sheet.Sections[len(sheet.Sections)-1].Lines
	assert.Equal(t, "NG, not computable", last[1].Flag)
	assert.Equal(t, "6'-0\"", last[2].DisplayValue())
}

func TestWriteText(t *testing.T) {
	sheet := &Sheet{Title: "Test"}
	sheet.AddSection("Loads", Line{Name: "point load", Symbol: "P", Value: 20, Units: "kips", Highlight: true})
	sheet.Notes = []string{"checked"}

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "LOADS\n  ─────")
	assert.Contains(t, out, "►")
	assert.Contains(t, out, "point load")
	assert.Contains(t, out, "Note: checked")
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footing.xlsx")
	require.NoError(t, Footing(footingResult(t, 2.5)).SaveXLSX(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Calculation")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Soil Bearing Pressure", rows[0][0])

	found := false
	for _, row := range rows {
		if len(row) == 6 && row[5] == FlagUplift {
			found = true
		}
	}
	assert.True(t, found, "uplift flag is written in the remarks column")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	sheet := &Sheet{}
	sheet.AddSection("Only", Line{Name: "x", Symbol: "x", Value: 1})
	require.NoError(t, sheet.WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Calculation", "C3")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
