package footing

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAxisClearsInactiveEccentricity(t *testing.T) {
	in := Input{Load: PointLoad{Magnitude: 10, EB: 1, EL: 2}}

	l := in.WithAxis(AxisL)
	assert.Equal(t, AxisL, l.Axis)
	assert.Zero(t, l.Load.EB)
	assert.Equal(t, 2.0, l.Load.EL)

	b := in.WithAxis(AxisB)
	assert.Equal(t, 1.0, b.Load.EB)
	assert.Zero(t, b.Load.EL)

	// the receiver is untouched
	assert.Equal(t, 1.0, in.Load.EB)
	assert.Equal(t, 2.0, in.Load.EL)
}

func TestWithLoadKeepsAxis(t *testing.T) {
	in := Input{Axis: AxisL}
	out := in.WithLoad(PointLoad{Magnitude: 5, EB: 1, EL: 0.5})
	assert.Zero(t, out.Load.EB)
	assert.Equal(t, 0.5, out.Load.EL)
}

func TestCheckEccentricity(t *testing.T) {
	in := Input{Geometry: Geometry{Width: 6, Length: 8}, Load: PointLoad{Magnitude: 10, EB: 3}}
	assert.NoError(t, in.CheckEccentricity())

	in.Load.EB = -3.5
	err := in.CheckEccentricity()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, err.Error(), "exceeds half")

	// L allows up to 4 ft
	in = in.WithAxis(AxisL).WithLoad(PointLoad{Magnitude: 10, EL: 3.5})
	assert.NoError(t, in.CheckEccentricity())
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("l")
	require.NoError(t, err)
	assert.Equal(t, AxisL, a)
	assert.Equal(t, "L-L", a.Label())

	_, err = ParseAxis("x")
	assert.Error(t, err)
}

func TestAxisJSON(t *testing.T) {
	data, err := json.Marshal(Input{Axis: AxisL})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"axis":"L"`)

	var in Input
	require.NoError(t, json.Unmarshal(data, &in))
	assert.Equal(t, AxisL, in.Axis)
}

func TestParseModulusMapping(t *testing.T) {
	m, err := ParseModulusMapping("Eccentricity")
	require.NoError(t, err)
	assert.Equal(t, EccentricityAxisMapping, m)

	m, err = ParseModulusMapping("")
	require.NoError(t, err)
	assert.Equal(t, DefaultModulusMapping, m)

	_, err = ParseModulusMapping("other")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	content := `{
  "name": "F1",
  "geometry": {"width": "6", "length": 8, "thickness": 24},
  "point_load": {"kips": 20, "e_b": 0.5, "e_l": "oops"},
  "moment": {"kipft": ""},
  "axis": "B"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "F1", c.Name)
	assert.Equal(t, workedExample(), c.Input)
}

func TestParseCaseRejectsBadAxis(t *testing.T) {
	_, err := ParseCase([]byte(`{"geometry": {"width": 6, "length": 8}, "axis": "Z"}`))
	assert.Error(t, err)
}

func TestParseCaseExplicitUnitWeight(t *testing.T) {
	c, err := ParseCase([]byte(`{"geometry": {"width": 6, "length": 8, "unit_weight": 0.15}, "axis": "L",
		"point_load": {"kips": 1, "e_b": 2, "e_l": 1}}`))
	require.NoError(t, err)
	assert.Equal(t, 0.15, c.Input.Geometry.UnitWeight)
	assert.Equal(t, AxisL, c.Input.Axis)
	assert.Zero(t, c.Input.Load.EB)
}
