package footing

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gofdn/internal/units"
)

// DefaultUnitWeight is the unit weight of reinforced concrete (kcf)
const DefaultUnitWeight = 0.145

// Axis selects the footing direction along which the load is eccentric
type Axis int

const (
	AxisB Axis = iota // eccentricity along the width B
	AxisL             // eccentricity along the length L
)

func (a Axis) String() string {
	if a == AxisL {
		return "L"
	}
	return "B"
}

// Label returns the bending label used in calculation tables ("B-B" or "L-L")
func (a Axis) Label() string {
	return a.String() + "-" + a.String()
}

// MarshalText encodes the axis as "B" or "L"
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes "B" or "L"
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAxis parses "B" or "L" (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B", "":
		return AxisB, nil
	case "L":
		return AxisL, nil
	}
	return AxisB, &ValidationError{msg: fmt.Sprintf("invalid axis %q (expected B or L)", s)}
}

// Geometry describes a rectangular spread footing
type Geometry struct {
	Width      float64 `json:"width"`       // B (ft)
	Length     float64 `json:"length"`      // L (ft)
	Thickness  float64 `json:"thickness"`   // t (in)
	UnitWeight float64 `json:"unit_weight"` // γ (kcf)
}

// Area returns B·L (ft²)
func (g Geometry) Area() float64 {
	return g.Width * g.Length
}

// Weight returns the self weight B·L·t·γ (kips)
func (g Geometry) Weight() float64 {
	return g.Width * g.Length * units.InchesToFeet(g.Thickness) * g.UnitWeight
}

// SB returns the section modulus L·B²/6 (ft³)
func (g Geometry) SB() float64 {
	return units.SectionModulus(g.Length, g.Width)
}

// SL returns the section modulus B·L²/6 (ft³)
func (g Geometry) SL() float64 {
	return units.SectionModulus(g.Width, g.Length)
}

// Dimension returns the footing dimension along the given axis
func (g Geometry) Dimension(a Axis) float64 {
	if a == AxisL {
		return g.Length
	}
	return g.Width
}

// Perpendicular returns the footing dimension across the given axis
func (g Geometry) Perpendicular(a Axis) float64 {
	if a == AxisL {
		return g.Width
	}
	return g.Length
}

// PointLoad is a vertical load with eccentricities measured from the centroid
type PointLoad struct {
	Magnitude float64 `json:"kips"` // P (kips), positive downward
	EB        float64 `json:"e_b"`  // eccentricity along B (ft)
	EL        float64 `json:"e_l"`  // eccentricity along L (ft)
}

// Eccentricity returns the eccentricity along the given axis
func (p PointLoad) Eccentricity(a Axis) float64 {
	if a == AxisL {
		return p.EL
	}
	return p.EB
}

// AppliedMoment is a moment acting along the active eccentricity axis
type AppliedMoment struct {
	Magnitude float64 `json:"kipft"` // M (kip-ft)
}

// Input is a complete bearing pressure case. It is treated as an immutable
// value: edits produce a new Input.
type Input struct {
	Geometry Geometry      `json:"geometry"`
	Load     PointLoad     `json:"point_load"`
	Moment   AppliedMoment `json:"moment"`
	Axis     Axis          `json:"axis"`
}

// WithAxis returns a copy of the input eccentric along a. The eccentricity
// of the inactive axis is reset to the centroid.
func (in Input) WithAxis(a Axis) Input {
	out := in
	out.Axis = a
	if a == AxisB {
		out.Load.EL = 0
	} else {
		out.Load.EB = 0
	}
	return out
}

// WithGeometry returns a copy of the input with new footing geometry
func (in Input) WithGeometry(g Geometry) Input {
	out := in
	out.Geometry = g
	return out
}

// WithLoad returns a copy of the input with a new point load, keeping the
// inactive eccentricity at zero
func (in Input) WithLoad(p PointLoad) Input {
	out := in
	out.Load = p
	return out.WithAxis(in.Axis)
}

// WithMoment returns a copy of the input with a new applied moment
func (in Input) WithMoment(m AppliedMoment) Input {
	out := in
	out.Moment = m
	return out
}

// Validate checks that the values are finite and the geometry is
// physically meaningful. It does not check the eccentricity limit.
func (in Input) Validate() error {
	g := in.Geometry
	if g.Width < 0 || g.Length < 0 || g.Thickness < 0 {
		return &ValidationError{msg: fmt.Sprintf("footing dimensions must not be negative: B=%.2f, L=%.2f, t=%.2f",
			g.Width, g.Length, g.Thickness)}
	}
	if g.UnitWeight < 0 {
		return &ValidationError{msg: fmt.Sprintf("unit weight must not be negative: γ=%.3f", g.UnitWeight)}
	}
	for _, v := range []float64{g.Width, g.Length, g.Thickness, g.UnitWeight, in.Load.Magnitude, in.Load.EB, in.Load.EL, in.Moment.Magnitude} {
		if !units.IsFinite(v) {
			return &ValidationError{msg: "input values must be finite numbers"}
		}
	}
	return nil
}

// CheckEccentricity rejects an eccentricity that places the load outside
// the footing (|e| > dimension/2 along the active axis).
func (in Input) CheckEccentricity() error {
	e := in.Load.Eccentricity(in.Axis)
	half := in.Geometry.Dimension(in.Axis) / 2
	if math.Abs(e) > half {
		return &ValidationError{msg: fmt.Sprintf("eccentricity e%s=%.3f ft exceeds half the footing dimension (%.3f ft)",
			in.Axis, e, half)}
	}
	return nil
}

// LoadSummary holds the combined vertical load and moments
type LoadSummary struct {
	Area   float64 // ft²
	Weight float64 // kips
	SB     float64 // ft³
	SL     float64 // ft³
	SumP   float64 // kips
	SumMB  float64 // kip-ft
	SumML  float64 // kip-ft
}

// Summarize combines the footing weight, point load and moment
func Summarize(in Input) LoadSummary {
	g := in.Geometry
	s := LoadSummary{
		Area:   g.Area(),
		Weight: g.Weight(),
		SB:     g.SB(),
		SL:     g.SL(),
	}
	s.SumP = s.Weight + in.Load.Magnitude
	m := in.Load.Magnitude*in.Load.Eccentricity(in.Axis) + in.Moment.Magnitude
	if in.Axis == AxisL {
		s.SumML = m
	} else {
		s.SumMB = m
	}
	return s
}

// SumM returns the moment sum on the given axis
func (s LoadSummary) SumM(a Axis) float64 {
	if a == AxisL {
		return s.SumML
	}
	return s.SumMB
}
