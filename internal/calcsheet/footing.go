package calcsheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gofdn/internal/footing"
)

// Footing builds the calculation table of a bearing pressure result.
// Pressures are listed for both axes; rows of the active axis are
// highlighted. The partial contact rows are measured along the stress axis
// of the selected modulus.
func Footing(r *footing.Result) *Sheet {
	in := r.Input
	g := in.Geometry
	s := r.Summary
	active := in.Axis

	sheet := &Sheet{Title: "Soil Bearing Pressure"}

	sheet.AddSection("Foundation Properties",
		Line{Name: "width", Symbol: "B", Value: g.Width, Units: "ft"},
		Line{Name: "length", Symbol: "L", Value: g.Length, Units: "ft"},
		Line{Name: "thickness", Symbol: "t", Value: g.Thickness, Units: "in"},
		Line{Name: "density", Symbol: "γ", Value: g.UnitWeight, Units: "kcf"},
		Line{Name: "weight", Symbol: "w", Value: s.Weight, Units: "kips", Formula: "B * L * t * γ"},
	)

	mb := in.Load.Magnitude * in.Load.EB
	ml := in.Load.Magnitude * in.Load.EL
	sheet.AddSection("Applied Point Load",
		Line{Name: "point load", Symbol: "P", Value: in.Load.Magnitude, Units: "kips"},
		Line{Name: "eccentricity b", Symbol: "Ep_b", Value: in.Load.EB, Units: "ft"},
		Line{Name: "eccentricity l", Symbol: "Ep_l", Value: in.Load.EL, Units: "ft"},
		Line{Name: "eccentric moment b", Symbol: "EMp_b", Value: mb, Units: "kip-ft", Formula: "P * Ep_b"},
		Line{Name: "eccentric moment l", Symbol: "EMp_l", Value: ml, Units: "kip-ft", Formula: "P * Ep_l"},
	)

	var momB, momL float64
	if active == footing.AxisL {
		momL = in.Moment.Magnitude
	} else {
		momB = in.Moment.Magnitude
	}
	sheet.AddSection("Applied Moment",
		Line{Name: "moment", Symbol: "M_b", Value: momB, Units: "kip-ft"},
		Line{Name: "moment", Symbol: "M_l", Value: momL, Units: "kip-ft"},
		Line{Name: "along", Symbol: active.String(), Text: "-", Units: "-"},
	)

	sheet.AddSection("Summations / Totals",
		Line{Name: "vertical load", Symbol: "Pt", Value: s.SumP, Units: "kips", Formula: "w + P"},
		Line{Name: "moment BB", Symbol: "Mt_bb", Value: s.SumMB, Units: "kip-ft", Formula: "EMp_b + M_b"},
		Line{Name: "moment LL", Symbol: "Mt_ll", Value: s.SumML, Units: "kip-ft", Formula: "EMp_l + M_l"},
	)

	pressures := []Line{
		{Name: "sum vertical load", Symbol: "Pt", Value: s.SumP, Units: "kips", Formula: "w + P"},
		{Name: "foundation area", Symbol: "A", Value: s.Area, Units: "ft2", Formula: "B * L"},
		{Name: "section modulus BB", Symbol: footing.ModulusSB.Symbol(), Value: s.SB, Units: "ft3", Formula: footing.ModulusSB.Formula()},
		{Name: "section modulus LL", Symbol: footing.ModulusSL.Symbol(), Value: s.SL, Units: "ft3", Formula: footing.ModulusSL.Formula()},
		{Name: "vertical pressure", Symbol: "q_v", Value: s.SumP / s.Area, Units: "ksf", Formula: "Pt / A"},
	}
	for _, a := range []footing.Axis{footing.AxisB, footing.AxisL} {
		pressures = append(pressures, axisPressures(r, a)...)
	}
	sheet.AddSection("Soil Bearing Pressures", pressures...)

	if tri, ok := r.Distribution.(footing.Triangular); ok {
		_, dim, _ := axisNames(active)
		ax, _, perp := axisNames(r.StressAxis)
		sheet.AddSection("Partial Contact",
			Line{
				Name:    "effective " + dimName(r.StressAxis),
				Symbol:  ax + "eff",
				Value:   tri.EffectiveDim,
				Units:   "ft",
				Formula: fmt.Sprintf("3 * (%s / 2 - |Mt_%s| / Pt)", ax, dim),
			},
			Line{
				Name:      "q max " + strings.ToUpper(dim),
				Symbol:    "q" + dim + "_max",
				Value:     tri.QMax,
				Units:     "ksf",
				Formula:   fmt.Sprintf("(2 * Pt) / (%s * %seff)", perp, ax),
				Highlight: true,
			},
			Line{
				Name:      "q min " + strings.ToUpper(dim),
				Symbol:    "q" + dim + "_min",
				Value:     0,
				Units:     "ksf",
				Highlight: true,
			},
		)
	}

	if r.Message != "" {
		sheet.Notes = append(sheet.Notes, r.Message)
	}
	sheet.Notes = append(sheet.Notes, fmt.Sprintf("Section modulus mapping: %s", r.Mapping.Name))
	return sheet
}

// axisPressures lists the moment stress and trapezoidal extremes about a
func axisPressures(r *footing.Result, a footing.Axis) []Line {
	s := r.Summary
	m := r.Mapping.For(a)
	sv := m.Value(r.Input.Geometry)
	sumM := s.SumM(a)
	qv := s.SumP / s.Area
	qm := sumM / sv

	_, dim, _ := axisNames(a)
	upper := strings.ToUpper(dim)
	highlight := a == r.Input.Axis

	flag := ""
	if qv-math.Abs(qm) < 0 {
		flag = FlagUplift
	}
	return []Line{
		{
			Name:    "moment stress " + upper,
			Symbol:  "q_" + dim,
			Value:   qm,
			Units:   "ksf",
			Formula: fmt.Sprintf("Mt_%s / %s", dim, m.Symbol()),
		},
		{
			Name:      "q max " + upper,
			Symbol:    "q" + dim + "_max",
			Value:     qv + math.Abs(qm),
			Units:     "ksf",
			Formula:   fmt.Sprintf("Pt/A + (Mt_%s / %s)", dim, m.Symbol()),
			Highlight: highlight,
			Flag:      flag,
		},
		{
			Name:      "q min " + upper,
			Symbol:    "q" + dim + "_min",
			Value:     qv - math.Abs(qm),
			Units:     "ksf",
			Formula:   fmt.Sprintf("Pt/A - (Mt_%s / %s)", dim, m.Symbol()),
			Highlight: highlight,
			Flag:      flag,
		},
	}
}

// axisNames returns the dimension symbol, the table suffix and the
// perpendicular dimension symbol of a
func axisNames(a footing.Axis) (ax, dim, perp string) {
	if a == footing.AxisL {
		return "L", "ll", "B"
	}
	return "B", "bb", "L"
}

func dimName(a footing.Axis) string {
	if a == footing.AxisL {
		return "length"
	}
	return "width"
}
