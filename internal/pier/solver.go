package pier

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gofdn/internal/units"
)

const (
	DefaultTolerance  = 0.25   // accepted |d − rhs(d)| (ft)
	DefaultStep       = 0.1    // scan increment (ft)
	DefaultMaxDepth   = 1000.0 // search ceiling (ft)
	DefaultPriorDepth = 72.0   // depth reported before the first solution (in)

	bisectionPrecision = 1e-6
	maxBisections      = 200
)

// Method is the root search used by Solve
type Method int

const (
	// MethodBisection brackets d − rhs(d) over (step, max depth] and halves
	// the interval until the residual vanishes
	MethodBisection Method = iota
	// MethodScan steps the trial depth from zero in fixed increments and
	// accepts the first depth within tolerance
	MethodScan
)

func (m Method) String() string {
	if m == MethodScan {
		return "scan"
	}
	return "bisection"
}

// ParseMethod parses "bisection" or "scan"
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bisection":
		return MethodBisection, nil
	case "scan":
		return MethodScan, nil
	}
	return MethodBisection, &ValidationError{msg: fmt.Sprintf("unknown solver method %q (expected bisection or scan)", s)}
}

// Status is the outcome of a solve
type Status int

const (
	StatusConverged Status = iota
	StatusNotConverged
	StatusNotComputable
)

func (s Status) String() string {
	switch s {
	case StatusNotConverged:
		return "not converged"
	case StatusNotComputable:
		return "not computable"
	}
	return "converged"
}

// Result holds the embedment depth solution
type Result struct {
	Depth      float64 // required embedment (in)
	TrialDepth float64 // accepted trial depth d (ft)
	Converged  bool
	Status     Status

	// Factors evaluated at the accepted trial depth
	Factors Factors

	Method     Method
	Iterations int
	Message    string
}

// DepthFeet returns the embedment depth in feet
func (r *Result) DepthFeet() float64 {
	return units.InchesToFeet(r.Depth)
}

type options struct {
	method     Method
	tolerance  float64
	step       float64
	maxDepth   float64
	priorDepth float64
	seed       float64
}

// Option configures Solve
type Option func(*options)

// WithMethod selects the root search
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithTolerance sets the accepted |d − rhs(d)| in feet
func WithTolerance(ft float64) Option {
	return func(o *options) {
		if ft > 0 {
			o.tolerance = ft
		}
	}
}

// WithMaxDepth sets the search ceiling in feet
func WithMaxDepth(ft float64) Option {
	return func(o *options) {
		if ft > 0 {
			o.maxDepth = ft
		}
	}
}

// WithPriorDepth sets the depth (in) reported when no solution is found
func WithPriorDepth(in float64) Option {
	return func(o *options) { o.priorDepth = in }
}

// WithSeed supplies a starting depth (in), typically a previous solution.
// A seed that already satisfies the tolerance is accepted without a search.
func WithSeed(in float64) Option {
	return func(o *options) { o.seed = in }
}

func defaultOptions() options {
	return options{
		method:     MethodBisection,
		tolerance:  DefaultTolerance,
		step:       DefaultStep,
		maxDepth:   DefaultMaxDepth,
		priorDepth: DefaultPriorDepth,
	}
}

// Solve finds the minimum embedment depth of the pier.
//
// The returned result is never nil unless the input is invalid. When the
// case is not computable or the search fails, Converged is false, Depth
// keeps the prior depth, and ErrNotComputable or ErrNotConverged is
// returned alongside the result.
func Solve(in Input, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Depth:  o.priorDepth,
		Method: o.method,
	}

	if !in.Computable() {
		result.Status = StatusNotComputable
		result.Message = "Diameter and allowable soil pressure must be greater than zero"
		return result, fmt.Errorf("%w (b=%.2f in, q=%.2f psf/ft)", ErrNotComputable, in.Diameter, in.AllowablePressure)
	}

	if o.seed > 0 {
		d := units.InchesToFeet(o.seed)
		if math.Abs(in.Residual(d)) <= o.tolerance {
			result.accept(in, d, 1)
			return result, nil
		}
	}

	var (
		d     float64
		iters int
		ok    bool
	)
	switch o.method {
	case MethodScan:
		d, iters, ok = scan(in, o)
	default:
		d, iters, ok = bisect(in, o)
	}

	if !ok {
		result.Status = StatusNotConverged
		result.Iterations = iters
		result.Message = fmt.Sprintf("No depth up to %.0f ft satisfies the embedment equation", o.maxDepth)
		return result, fmt.Errorf("%w after %d iterations (%s, max depth %.0f ft)", ErrNotConverged, iters, o.method, o.maxDepth)
	}

	result.accept(in, d, iters)
	return result, nil
}

func (r *Result) accept(in Input, d float64, iters int) {
	r.TrialDepth = d
	r.Depth = units.FeetToInches(in.RHS(d))
	r.Converged = true
	r.Status = StatusConverged
	r.Factors = in.FactorsAt(d)
	r.Iterations = iters
	r.Message = fmt.Sprintf("Embedment depth d = %.2f in (%s)", r.Depth, units.FeetInches(r.Depth))
}

// scan steps d = 0, step, 2·step, ... and accepts the first depth within
// tolerance. The increment is accumulated, not multiplied.
func scan(in Input, o options) (float64, int, bool) {
	iters := 0
	for d := 0.0; d < o.maxDepth; d += o.step {
		iters++
		if math.Abs(in.Residual(d)) <= o.tolerance {
			return d, iters, true
		}
	}
	return 0, iters, false
}

// bisect searches for the root of g(d) = d − rhs(d) on [step, maxDepth].
// rhs is unbounded as d → 0, so g is negative at the lower end for any
// loaded pier.
func bisect(in Input, o options) (float64, int, bool) {
	lo, hi := o.step, o.maxDepth
	gLo := in.Residual(lo)
	if gLo >= 0 {
		// root at or below the first trial depth
		return lo, 1, math.Abs(gLo) <= o.tolerance
	}
	gHi := in.Residual(hi)
	if gHi < 0 {
		return 0, 2, false
	}

	iters := 2
	for ; iters < maxBisections; iters++ {
		mid := (lo + hi) / 2
		g := in.Residual(mid)
		if math.Abs(g) <= bisectionPrecision || hi-lo <= bisectionPrecision {
			return mid, iters + 1, math.Abs(g) <= o.tolerance
		}
		if g < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	mid := (lo + hi) / 2
	return mid, iters, math.Abs(in.Residual(mid)) <= o.tolerance
}

// Sample is one point of the embedment equation
type Sample struct {
	Depth    float64 // trial depth d (ft)
	RHS      float64 // rhs(d) (ft)
	Residual float64 // d − rhs(d) (ft)
}

// Trace samples the embedment equation on [from, to] in increments of step.
// Depths where rhs is unbounded are skipped.
func Trace(in Input, from, to, step float64) []Sample {
	if step <= 0 || to < from || !in.Computable() {
		return nil
	}
	n := int(math.Floor((to-from)/step)) + 1
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		d := from + float64(i)*step
		rhs := in.RHS(d)
		if !units.IsFinite(rhs) {
			continue
		}
		samples = append(samples, Sample{Depth: d, RHS: rhs, Residual: d - rhs})
	}
	return samples
}
