package calcsheet

import (
	"fmt"

	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/alexiusacademia/gofdn/internal/units"
)

// Pier builds the calculation table of an embedment depth solution. The
// factors are listed at the accepted trial depth.
func Pier(in pier.Input, r *pier.Result) *Sheet {
	sheet := &Sheet{Title: "Pier Embedment Depth"}

	s1Formula := "1/3 * q * d"
	switch {
	case in.DepthLimitation && in.MaxPressure != 0:
		s1Formula = "min(1/3 * q * d, Q, 12 * q)"
	case in.DepthLimitation:
		s1Formula = "min(1/3 * q * d, 12 * q)"
	case in.MaxPressure != 0:
		s1Formula = "min(1/3 * q * d, Q)"
	}
	s3Formula := "q * d"
	if in.MaxPressure != 0 {
		s3Formula = "min(q * d, Q)"
	}

	f := r.Factors
	lines := []Line{
		{Name: "diameter", Symbol: "b", Value: units.InchesToFeet(in.Diameter), Units: "ft"},
		{Name: "embedment depth", Symbol: "d", Value: r.TrialDepth, Units: "ft"},
		{Name: "point load height", Symbol: "h", Value: in.Height, Units: "ft"},
		{Name: "applied point load", Symbol: "P", Value: units.KipsToPounds(in.PointLoad), Units: "lbf"},
		{Name: "allowable soil pressure", Symbol: "q", Value: in.AllowablePressure, Units: "psf/ft"},
		{Name: "max allowable soil pressure", Symbol: "Q", Value: in.MaxPressure, Units: "psf"},
		{Name: "soil pressure @ 1/3 depth", Symbol: "S1", Value: f.S1, Units: "psf", Formula: s1Formula},
	}
	if in.Constrained {
		lines = append(lines, Line{Name: "soil pressure @ depth", Symbol: "S3", Value: f.S3, Units: "psf", Formula: s3Formula})
	} else {
		lines = append(lines, Line{Name: "factor", Symbol: "A", Value: f.A, Units: "ft", Formula: "2.34 * P / (S1 * b)"})
	}
	sheet.AddSection("Foundation Properties", lines...)

	condition := "non-constrained"
	formula := "0.5 * A * (1 + sqrt(1 + 4.36 * h / A))"
	if in.Constrained {
		condition = "constrained"
		formula = "sqrt(4.25 * P * h / (S3 * b))"
	}

	flag := ""
	if !r.Converged {
		flag = fmt.Sprintf("NG, %s", r.Status)
	}
	sheet.AddSection("Required Embedment",
		Line{Name: "condition", Symbol: "-", Text: condition, Units: "-"},
		Line{Name: "required depth", Symbol: "d", Value: r.Depth, Units: "in", Formula: formula + " * 12", Highlight: true, Flag: flag},
		Line{Name: "required depth", Symbol: "d", Text: units.FeetInches(r.Depth), Units: "ft-in", Highlight: true, Flag: flag},
	)

	if r.Message != "" {
		sheet.Notes = append(sheet.Notes, r.Message)
	}
	sheet.Notes = append(sheet.Notes, fmt.Sprintf("Solver: %s, %d iterations", r.Method, r.Iterations))
	return sheet
}
