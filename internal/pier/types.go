package pier

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofdn/internal/units"
)

// Pole-foundation design coefficients for the non-constrained and
// constrained lateral embedment formulas.
const (
	CoeffA           = 2.34 // A = 2.34·P / (S1·b)
	CoeffUnconstrain = 4.36 // d = 0.5·A·(1 + sqrt(1 + 4.36·h/A))
	CoeffConstrained = 4.25 // d² = 4.25·P·h / (S3·b)

	// LimitationDepth caps S1 at the pressure of this depth (ft) when the
	// 12 ft limitation applies.
	LimitationDepth = 12.0
)

// Input holds a lateral pier case. It is treated as an immutable value.
type Input struct {
	PointLoad         float64 `json:"point_load"`         // P (kips)
	Height            float64 `json:"height"`             // h (ft)
	Diameter          float64 `json:"diameter"`           // b (in)
	AllowablePressure float64 `json:"allowable_pressure"` // q (psf/ft)
	MaxPressure       float64 `json:"max_pressure"`       // Q (psf), 0 = unbounded
	Constrained       bool    `json:"constrained"`
	DepthLimitation   bool    `json:"depth_limitation"`
}

// WithConstrained returns a copy with the constrained flag set. Setting it
// clears the 12 ft depth limitation.
func (in Input) WithConstrained(v bool) Input {
	out := in
	out.Constrained = v
	if v {
		out.DepthLimitation = false
	}
	return out
}

// WithDepthLimitation returns a copy with the 12 ft limitation set. Setting
// it clears the constrained flag.
func (in Input) WithDepthLimitation(v bool) Input {
	out := in
	out.DepthLimitation = v
	if v {
		out.Constrained = false
	}
	return out
}

// Computable reports whether the embedment formulas are defined
func (in Input) Computable() bool {
	return in.Diameter > 0 && in.AllowablePressure > 0
}

// Validate rejects non-finite or negative values and conflicting flags
func (in Input) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"point load", in.PointLoad},
		{"height", in.Height},
		{"diameter", in.Diameter},
		{"allowable soil pressure", in.AllowablePressure},
		{"max allowable soil pressure", in.MaxPressure},
	}
	for _, f := range fields {
		if !units.IsFinite(f.value) {
			return &ValidationError{msg: fmt.Sprintf("%s must be a finite number", f.name)}
		}
		if f.value < 0 {
			return &ValidationError{msg: fmt.Sprintf("%s must not be negative: %.3f", f.name, f.value)}
		}
	}
	if in.Constrained && in.DepthLimitation {
		return &ValidationError{msg: "constrained condition and 12 ft limitation are mutually exclusive"}
	}
	return nil
}

// loadLbf returns P in lbf
func (in Input) loadLbf() float64 {
	return units.KipsToPounds(in.PointLoad)
}

// diameterFt returns b in ft
func (in Input) diameterFt() float64 {
	return units.InchesToFeet(in.Diameter)
}

// Factors are the intermediate quantities of the embedment formulas at a
// trial depth
type Factors struct {
	S1 float64 // allowable lateral pressure at one third of the depth (psf)
	S3 float64 // allowable lateral pressure at the full depth (psf)
	A  float64 // 2.34·P / (S1·b) (ft)
}

// FactorsAt evaluates S1, S3 and A at trial depth d (ft)
func (in Input) FactorsAt(d float64) Factors {
	q := in.AllowablePressure
	s1 := q * d / 3
	s3 := q * d
	if in.MaxPressure != 0 {
		s1 = min(s1, in.MaxPressure)
		s3 = min(s3, in.MaxPressure)
	}
	if in.DepthLimitation {
		s1 = min(s1, LimitationDepth*q)
	}

	f := Factors{S1: s1, S3: s3}
	p := in.loadLbf()
	switch denom := s1 * in.diameterFt(); {
	case p == 0:
		f.A = 0
	case denom <= 0:
		f.A = math.Inf(1)
	default:
		f.A = CoeffA * p / denom
	}
	return f
}

// RHS evaluates the right-hand side of the embedment equation at trial
// depth d (ft). Undefined intermediate values evaluate to +Inf, never NaN.
func (in Input) RHS(d float64) float64 {
	f := in.FactorsAt(d)
	if in.Constrained {
		num := CoeffConstrained * in.loadLbf() * in.Height
		denom := f.S3 * in.diameterFt()
		if num == 0 {
			return 0
		}
		if denom <= 0 {
			return math.Inf(1)
		}
		return math.Sqrt(num / denom)
	}

	switch {
	case f.A == 0:
		return 0
	case math.IsInf(f.A, 1):
		return math.Inf(1)
	}
	return 0.5 * f.A * (1 + math.Sqrt(1+CoeffUnconstrain*in.Height/f.A))
}

// Residual returns g(d) = d − rhs(d)
func (in Input) Residual(d float64) float64 {
	return d - in.RHS(d)
}
