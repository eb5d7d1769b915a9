package diagram

import (
	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/alexiusacademia/gofdn/internal/units"
)

// Point represents a 2D coordinate: X along the footing (ft) from the near
// edge, Y the pressure (ksf)
type Point struct {
	X float64
	Y float64
}

// PressureDiagramData holds data for drawing a bearing pressure diagram
type PressureDiagramData struct {
	// Footing
	Axis      string  // stress axis, "B" or "L"
	Dimension float64 // footing dimension along the stress axis (ft)
	Thickness float64 // in

	// Pressure polygon, closed on the footing base
	Profile []Point

	QNear        float64 // ksf at x = 0
	QFar         float64 // ksf at x = Dimension
	QMax         float64 // ksf
	EffectiveDim float64 // ft

	// Status
	Triangular bool
	Uplift     bool
}

// NewPressureDiagramData extracts the diagram data from a bearing pressure
// result. It returns false when the result carries no distribution.
func NewPressureDiagramData(r *footing.Result) (PressureDiagramData, bool) {
	if r == nil || r.Distribution == nil {
		return PressureDiagramData{}, false
	}
	dim := r.Dimension()
	dist := r.Distribution
	near, far := dist.EdgePressures()

	data := PressureDiagramData{
		Axis:         r.StressAxis.String(),
		Dimension:    dim,
		Thickness:    r.Input.Geometry.Thickness,
		QNear:        near,
		QFar:         far,
		QMax:         dist.Max(),
		EffectiveDim: r.EffectiveDim,
		Triangular:   dist.Shape() == footing.ShapeTriangular,
		Uplift:       r.Uplift,
	}
	for _, p := range dist.Profile(dim) {
		data.Profile = append(data.Profile, Point{X: p.X, Y: p.Q})
	}
	return data, true
}

// PressureAt returns the pressure (ksf) at x by interpolating the sloped or
// flat edges of the profile. Outside the contact zone it is zero.
func (d PressureDiagramData) PressureAt(x float64) float64 {
	q := 0.0
	for i := 0; i+1 < len(d.Profile); i++ {
		a, b := d.Profile[i], d.Profile[i+1]
		if a.X == b.X {
			continue
		}
		lo, hi := a, b
		if lo.X > hi.X {
			lo, hi = hi, lo
		}
		if x < lo.X || x > hi.X {
			continue
		}
		v := lo.Y + (hi.Y-lo.Y)*(x-lo.X)/(hi.X-lo.X)
		if v > q {
			q = v
		}
	}
	return q
}

// ContactEdge returns the position (ft) where contact starts for a
// triangular distribution, zero otherwise
func (d PressureDiagramData) ContactEdge() float64 {
	if !d.Triangular {
		return 0
	}
	if d.QNear == 0 {
		return d.Dimension - d.EffectiveDim
	}
	return d.EffectiveDim
}

// psf formats a pressure in ksf as whole psf
func psf(ksf float64) float64 {
	return units.Round(units.KsfToPsf(ksf), 0)
}

// ResidualData holds the sampled embedment equation of a pier
type ResidualData struct {
	Depths    []float64 // trial depth d (ft)
	RHS       []float64 // rhs(d) (ft)
	Residuals []float64 // d − rhs(d) (ft)

	// Accepted trial depth (ft), zero when the solve did not converge
	Root      float64
	Converged bool
}

// NewResidualData converts solver samples into diagram data
func NewResidualData(samples []pier.Sample, r *pier.Result) ResidualData {
	data := ResidualData{
		Depths:    make([]float64, len(samples)),
		RHS:       make([]float64, len(samples)),
		Residuals: make([]float64, len(samples)),
	}
	for i, s := range samples {
		data.Depths[i] = s.Depth
		data.RHS[i] = s.RHS
		data.Residuals[i] = s.Residual
	}
	if r != nil && r.Converged {
		data.Root = r.TrialDepth
		data.Converged = true
	}
	return data
}
