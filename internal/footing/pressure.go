package footing

import (
	"fmt"
	"math"
)

// Shape is the kind of bearing pressure distribution
type Shape int

const (
	ShapeTrapezoidal Shape = iota
	ShapeTriangular
)

func (s Shape) String() string {
	if s == ShapeTriangular {
		return "triangular"
	}
	return "trapezoidal"
}

// Edge identifies a footing edge along the stress axis. The near edge is at
// x = 0 (negative moment side), the far edge at x = dimension.
type Edge int

const (
	EdgeNear Edge = iota
	EdgeFar
)

func (e Edge) String() string {
	if e == EdgeFar {
		return "far"
	}
	return "near"
}

// ProfilePoint is a vertex of the pressure polygon: X along the axis (ft)
// from the near edge, Q the pressure (ksf).
type ProfilePoint struct {
	X float64
	Q float64
}

// Distribution is the bearing pressure under the footing. It is either a
// Trapezoidal or a Triangular value.
type Distribution interface {
	Shape() Shape
	// Max returns the peak pressure (ksf)
	Max() float64
	// EdgePressures returns the pressures at the near and far edges (ksf)
	EdgePressures() (near, far float64)
	// Profile returns the closed pressure polygon along a footing of
	// dimension dim, starting and ending on the footing base (Q = 0).
	Profile(dim float64) []ProfilePoint
	isDistribution()
}

// Trapezoidal is a full-contact linear distribution
type Trapezoidal struct {
	QNear float64 // ksf
	QFar  float64 // ksf
}

func (Trapezoidal) Shape() Shape { return ShapeTrapezoidal }

func (t Trapezoidal) Max() float64 { return math.Max(t.QNear, t.QFar) }

func (t Trapezoidal) EdgePressures() (float64, float64) { return t.QNear, t.QFar }

func (t Trapezoidal) Profile(dim float64) []ProfilePoint {
	return []ProfilePoint{{0, 0}, {0, t.QNear}, {dim, t.QFar}, {dim, 0}}
}

func (Trapezoidal) isDistribution() {}

// Triangular is a partial-contact distribution over an effective dimension
// measured from the loaded edge. ZeroEdge is the edge side carrying no
// pressure.
type Triangular struct {
	QMax         float64 // ksf
	EffectiveDim float64 // ft
	ZeroEdge     Edge
}

func (Triangular) Shape() Shape { return ShapeTriangular }

func (t Triangular) Max() float64 { return t.QMax }

func (t Triangular) EdgePressures() (float64, float64) {
	if t.ZeroEdge == EdgeFar {
		return t.QMax, 0
	}
	return 0, t.QMax
}

func (t Triangular) Profile(dim float64) []ProfilePoint {
	if t.ZeroEdge == EdgeFar {
		return []ProfilePoint{{0, 0}, {0, t.QMax}, {t.EffectiveDim, 0}}
	}
	return []ProfilePoint{{dim - t.EffectiveDim, 0}, {dim, t.QMax}, {dim, 0}}
}

func (Triangular) isDistribution() {}

// Result holds the bearing pressure calculation
type Result struct {
	Input   Input
	Summary LoadSummary

	// Section modulus used for the active axis
	Mapping ModulusMapping
	Modulus Modulus
	S       float64 // ft³

	// StressAxis is the axis the pressure varies along, set by Modulus.
	// Edges, profiles and the effective dimension are measured along it.
	StressAxis Axis

	// Trapezoidal terms (ksf)
	QAxial  float64 // ΣP / A
	QMoment float64 // |ΣM| / S
	QMax    float64
	QMin    float64

	Reversed bool // ΣM < 0: the near edge carries the larger pressure
	Uplift   bool // trapezoidal QMin < 0

	// Effective bearing dimension (ft), equal to the full dimension for a
	// trapezoidal distribution
	EffectiveDim float64

	Distribution Distribution
	Message      string
}

// Dimension returns the footing dimension along the stress axis
func (r *Result) Dimension() float64 {
	return r.Input.Geometry.Dimension(r.StressAxis)
}

// Compute calculates the bearing pressure distribution using the default
// modulus mapping.
func Compute(in Input) (*Result, error) {
	return ComputeWith(in, DefaultModulusMapping)
}

// ComputeWith calculates the bearing pressure distribution with the given
// axis-to-modulus mapping.
//
// On ErrUndefinedPressure, ErrNetUplift and ErrOverturning the returned
// result still carries the load summary and modulus, but no Distribution.
func ComputeWith(in Input, mapping ModulusMapping) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Input:   in,
		Summary: Summarize(in),
		Mapping: mapping,
		Modulus: mapping.For(in.Axis),
	}
	result.S = result.Modulus.Value(in.Geometry)
	result.StressAxis = result.Modulus.StressAxis()

	s := result.Summary
	if s.Area <= 0 {
		result.Message = "Footing area is zero - pressure is undefined"
		return result, fmt.Errorf("%w (B=%.2f ft, L=%.2f ft)", ErrUndefinedPressure, in.Geometry.Width, in.Geometry.Length)
	}
	if s.SumP <= 0 {
		result.Message = "NG, net uplift on the footing"
		return result, fmt.Errorf("%w (ΣP=%.3f kips)", ErrNetUplift, s.SumP)
	}

	sumM := s.SumM(in.Axis)
	dim, across := mapping.Dimensions(in.Geometry, in.Axis)

	result.Reversed = sumM < 0
	result.QAxial = s.SumP / s.Area
	result.QMoment = math.Abs(sumM) / result.S
	result.QMax = result.QAxial + result.QMoment
	result.QMin = result.QAxial - result.QMoment
	result.Uplift = result.QMin < 0

	if !result.Uplift {
		result.EffectiveDim = dim
		if result.Reversed {
			result.Distribution = Trapezoidal{QNear: result.QMax, QFar: result.QMin}
		} else {
			result.Distribution = Trapezoidal{QNear: result.QMin, QFar: result.QMax}
		}
		result.Message = "OK - full bearing contact (trapezoidal distribution)"
		return result, nil
	}

	// Partial contact: the resultant lies outside the kern, |ΣM|/ΣP > dim/6
	eff := 3 * (dim/2 - math.Abs(sumM)/s.SumP)
	if eff <= 0 {
		result.Message = "NG, resultant outside the footing"
		return result, fmt.Errorf("%w (|ΣM|/ΣP=%.3f ft, %s/2=%.3f ft)", ErrOverturning, math.Abs(sumM)/s.SumP, result.StressAxis, dim/2)
	}
	eff = math.Min(eff, dim)
	result.EffectiveDim = eff

	zero := EdgeNear
	if result.Reversed {
		zero = EdgeFar
	}
	result.Distribution = Triangular{
		QMax:         2 * s.SumP / (across * eff),
		EffectiveDim: eff,
		ZeroEdge:     zero,
	}
	result.Message = fmt.Sprintf("NG, uplift - partial contact over %seff = %.3f ft (triangular distribution)", result.StressAxis, eff)
	return result, nil
}
