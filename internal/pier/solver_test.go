package pier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagPole() Input {
	return Input{
		PointLoad:         1,
		Height:            10,
		Diameter:          24,
		AllowablePressure: 200,
	}
}

func TestSolveUnconstrained(t *testing.T) {
	in := flagPole()
	result, err := Solve(in)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, StatusConverged, result.Status)
	assert.Equal(t, MethodBisection, result.Method)
	assert.InDelta(t, 0, in.Residual(result.TrialDepth), 1e-5)
	assert.InDelta(t, 6.77, result.TrialDepth, 0.05)
	assert.Equal(t, in.RHS(result.TrialDepth)*12, result.Depth)
	assert.InDelta(t, result.Depth/12, result.DepthFeet(), 1e-12)

	f := result.Factors
	assert.InDelta(t, 200*result.TrialDepth/3, f.S1, 1e-9)
	assert.InDelta(t, 200*result.TrialDepth, f.S3, 1e-9)
	assert.InDelta(t, 2.34*1000/(f.S1*2), f.A, 1e-9)
}

func TestSolveConstrained(t *testing.T) {
	in := flagPole().WithConstrained(true)
	result, err := Solve(in)
	require.NoError(t, err)

	// d² = 4.25·P·h / (q·d·b)  =>  d³ = 106.25
	expected := math.Cbrt(4.25 * 1000 * 10 / (200 * 2))
	assert.InDelta(t, expected, result.TrialDepth, 1e-4)
	assert.InDelta(t, expected*12, result.Depth, 1e-3)
}

func TestSolveScanMatchesBisection(t *testing.T) {
	cases := []Input{
		flagPole(),
		flagPole().WithConstrained(true),
		{PointLoad: 5, Height: 15, Diameter: 18, AllowablePressure: 150, MaxPressure: 2000},
		{PointLoad: 12, Height: 25, Diameter: 30, AllowablePressure: 300, DepthLimitation: true},
	}
	for _, in := range cases {
		bisection, err := Solve(in)
		require.NoError(t, err)
		scan, err := Solve(in, WithMethod(MethodScan))
		require.NoError(t, err)

		assert.Equal(t, MethodScan, scan.Method)
		assert.LessOrEqual(t, math.Abs(in.Residual(scan.TrialDepth)), DefaultTolerance)
		assert.InDelta(t, bisection.Depth, scan.Depth, 2*DefaultTolerance*12)
	}
}

func TestSolveScanFirstTrialDepth(t *testing.T) {
	in := flagPole()
	result, err := Solve(in, WithMethod(MethodScan))
	require.NoError(t, err)

	// the accepted depth is the first on the 0.1 ft grid within tolerance
	prev := result.TrialDepth - DefaultStep
	assert.Greater(t, math.Abs(in.Residual(prev)), DefaultTolerance)
	assert.Greater(t, result.Iterations, 1)
}

func TestSolveZeroLoad(t *testing.T) {
	in := flagPole()
	in.PointLoad = 0
	for _, m := range []Method{MethodBisection, MethodScan} {
		result, err := Solve(in, WithMethod(m))
		require.NoError(t, err, m.String())
		assert.Zero(t, result.Depth, m.String())
		assert.Zero(t, result.Factors.A, m.String())
	}
}

func TestSolveNotComputable(t *testing.T) {
	for _, in := range []Input{
		{PointLoad: 1, Height: 10, Diameter: 0, AllowablePressure: 200},
		{PointLoad: 1, Height: 10, Diameter: 24, AllowablePressure: 0},
	} {
		result, err := Solve(in, WithPriorDepth(48))
		assert.True(t, errors.Is(err, ErrNotComputable))
		require.NotNil(t, result)
		assert.False(t, result.Converged)
		assert.Equal(t, StatusNotComputable, result.Status)
		assert.Equal(t, 48.0, result.Depth)
		assert.Zero(t, result.Iterations, "no trial depth is evaluated")
	}
}

func TestSolveNotConverged(t *testing.T) {
	in := Input{PointLoad: 100, Height: 30, Diameter: 12, AllowablePressure: 100}
	for _, m := range []Method{MethodBisection, MethodScan} {
		result, err := Solve(in, WithMethod(m), WithMaxDepth(1))
		assert.True(t, errors.Is(err, ErrNotConverged), m.String())
		require.NotNil(t, result)
		assert.False(t, result.Converged)
		assert.Equal(t, StatusNotConverged, result.Status)
		assert.Equal(t, DefaultPriorDepth, result.Depth)
		assert.Greater(t, result.Iterations, 0)
	}
}

func TestSolveSeed(t *testing.T) {
	in := flagPole()
	first, err := Solve(in)
	require.NoError(t, err)

	seeded, err := Solve(in, WithSeed(first.Depth))
	require.NoError(t, err)
	assert.Equal(t, 1, seeded.Iterations)
	assert.InDelta(t, first.Depth, seeded.Depth, 1e-4)

	// a seed far from the root falls back to the search
	far, err := Solve(in, WithSeed(600))
	require.NoError(t, err)
	assert.Greater(t, far.Iterations, 1)
	assert.InDelta(t, first.Depth, far.Depth, 1e-9)
}

func TestSolveIsDeterministic(t *testing.T) {
	in := Input{PointLoad: 7.5, Height: 18, Diameter: 20, AllowablePressure: 175, MaxPressure: 1500}
	first, err := Solve(in)
	require.NoError(t, err)
	second, err := Solve(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveLimitsIncreaseDepth(t *testing.T) {
	base := Input{PointLoad: 50, Height: 20, Diameter: 12, AllowablePressure: 100}
	free, err := Solve(base)
	require.NoError(t, err)

	limited, err := Solve(base.WithDepthLimitation(true))
	require.NoError(t, err)
	assert.LessOrEqual(t, limited.Factors.S1, LimitationDepth*base.AllowablePressure)
	assert.GreaterOrEqual(t, limited.Depth, free.Depth-1e-6)

	capped := base
	capped.MaxPressure = 500
	bounded, err := Solve(capped)
	require.NoError(t, err)
	assert.LessOrEqual(t, bounded.Factors.S1, 500.0)
	assert.LessOrEqual(t, bounded.Factors.S3, 500.0)
	assert.GreaterOrEqual(t, bounded.Depth, free.Depth-1e-6)
}

func TestSolveInvalidInput(t *testing.T) {
	cases := map[string]Input{
		"negative height": {PointLoad: 1, Height: -1, Diameter: 12, AllowablePressure: 100},
		"nan load":        {PointLoad: math.NaN(), Height: 1, Diameter: 12, AllowablePressure: 100},
		"both flags":      {PointLoad: 1, Height: 1, Diameter: 12, AllowablePressure: 100, Constrained: true, DepthLimitation: true},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := Solve(in)
			assert.Nil(t, result)
			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestRHSNeverNaN(t *testing.T) {
	inputs := []Input{
		flagPole(),
		flagPole().WithConstrained(true),
		{Height: 10, Diameter: 24, AllowablePressure: 200},
		{PointLoad: 3, Diameter: 24, AllowablePressure: 200, Constrained: true},
		{PointLoad: 3, Height: 5, Diameter: 24, AllowablePressure: 200, MaxPressure: 100},
	}
	for _, in := range inputs {
		for _, d := range []float64{0, 0.05, 1, 10, 1000} {
			assert.False(t, math.IsNaN(in.RHS(d)), "rhs(%v) for %+v", d, in)
		}
	}
	assert.True(t, math.IsInf(flagPole().RHS(0), 1))
}

func TestTrace(t *testing.T) {
	samples := Trace(flagPole(), 0, 1, 0.1)
	// d = 0 is unbounded and skipped
	require.Len(t, samples, 10)
	for _, s := range samples {
		assert.Greater(t, s.Depth, 0.0)
		assert.InDelta(t, s.Depth-s.RHS, s.Residual, 1e-12)
	}

	assert.Nil(t, Trace(flagPole(), 0, 1, 0))
	assert.Nil(t, Trace(Input{Height: 1}, 0, 1, 0.1))
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Scan")
	require.NoError(t, err)
	assert.Equal(t, MethodScan, m)

	m, err = ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodBisection, m)

	_, err = ParseMethod("newton")
	assert.Error(t, err)
}
