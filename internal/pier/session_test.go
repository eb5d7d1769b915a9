package pier

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(flagPole())
	assert.Equal(t, StateStale, s.State())
	assert.True(t, s.NeedsRecalculation())
	assert.Equal(t, DefaultPriorDepth, s.Depth())
	assert.Nil(t, s.Result())

	result, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, StateConverged, s.State())
	assert.False(t, s.NeedsRecalculation())
	assert.Equal(t, result.Depth, s.Depth())
	converged := s.Depth()

	s.Update(func(in Input) Input {
		in.Height = 12
		return in
	})
	assert.True(t, s.NeedsRecalculation())
	assert.Equal(t, converged, s.Depth(), "depth is kept until the next solve")

	_, err = s.Solve()
	require.NoError(t, err)
	assert.Greater(t, s.Depth(), converged)
}

func TestSessionNotComputableKeepsDepth(t *testing.T) {
	s := NewSession(flagPole())
	_, err := s.Solve()
	require.NoError(t, err)
	converged := s.Depth()

	s.Update(func(in Input) Input {
		in.Diameter = 0
		return in
	})
	result, err := s.Solve()
	assert.True(t, errors.Is(err, ErrNotComputable))
	assert.Equal(t, StateNotComputable, s.State())
	assert.Equal(t, converged, result.Depth)
	assert.Equal(t, converged, s.Depth())
}

func TestSessionNotConverged(t *testing.T) {
	s := NewSession(Input{PointLoad: 100, Height: 30, Diameter: 12, AllowablePressure: 100}, WithMaxDepth(1))
	_, err := s.Solve()
	assert.True(t, errors.Is(err, ErrNotConverged))
	assert.Equal(t, StateNotConverged, s.State())
	assert.Equal(t, DefaultPriorDepth, s.Depth())
}

func TestSessionInvalidInputStaysStale(t *testing.T) {
	s := NewSession(flagPole())
	s.Update(func(in Input) Input {
		in.Height = -5
		return in
	})
	result, err := s.Solve()
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, StateStale, s.State())
}

func TestSessionFlagsAreMutuallyExclusive(t *testing.T) {
	s := NewSession(flagPole())
	s.SetDepthLimitation(true)
	assert.True(t, s.Input().DepthLimitation)

	s.SetConstrained(true)
	assert.True(t, s.Input().Constrained)
	assert.False(t, s.Input().DepthLimitation)

	s.SetDepthLimitation(true)
	assert.False(t, s.Input().Constrained)
	assert.True(t, s.NeedsRecalculation())

	// clearing a flag leaves the other one alone
	s.SetConstrained(false)
	assert.True(t, s.Input().DepthLimitation)
}

func TestSessionReseedsFromLastDepth(t *testing.T) {
	s := NewSession(flagPole())
	first, err := s.Solve()
	require.NoError(t, err)

	s.Set(flagPole())
	second, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 1, second.Iterations)
	assert.InDelta(t, first.Depth, second.Depth, 1e-4)
}

func TestSessionMatchesFreshSolveAfterUpdate(t *testing.T) {
	for _, method := range []Method{MethodBisection, MethodScan} {
		t.Run(method.String(), func(t *testing.T) {
			s := NewSession(flagPole(), WithMethod(method))
			_, err := s.Solve()
			require.NoError(t, err)

			s.Update(func(in Input) Input {
				in.Height = 10.5
				return in
			})
			got, err := s.Solve()
			require.NoError(t, err)

			want, err := Solve(s.Input(), WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, want.Depth, got.Depth)
			assert.Equal(t, want.TrialDepth, got.TrialDepth)
			assert.Equal(t, want.Iterations, got.Iterations)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pier.json")
	content := `{
  "name": "Sign post",
  "point_load": "1",
  "height": 10,
  "diameter": 24,
  "allowable_pressure": "200",
  "max_pressure": "",
  "constrained": true
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sign post", c.Name)
	assert.Equal(t, flagPole().WithConstrained(true), c.Input)
}

func TestParseCaseRejectsConflictingFlags(t *testing.T) {
	_, err := ParseCase([]byte(`{"diameter": 12, "constrained": true, "depth_limitation": true}`))
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}
