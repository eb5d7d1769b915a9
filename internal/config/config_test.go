package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.145, cfg.UnitWeight)
	assert.Equal(t, footing.BendingAxisMapping, cfg.Modulus)
	assert.Equal(t, pier.MethodBisection, cfg.Method)
	assert.Equal(t, 0.25, cfg.Tolerance)
	assert.Equal(t, 1000.0, cfg.MaxDepth)
}

func TestLoadFile(t *testing.T) {
	path := writeEnv(t, `# project settings
GOFDN_UNIT_WEIGHT=0.150
GOFDN_MODULUS=eccentricity
GOFDN_METHOD=scan
GOFDN_PROJECT="Pump house"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 0.150, cfg.UnitWeight)
	assert.Equal(t, footing.EccentricityAxisMapping, cfg.Modulus)
	assert.Equal(t, pier.MethodScan, cfg.Method)
	assert.Equal(t, "Pump house", cfg.Project)
	assert.Equal(t, 0.25, cfg.Tolerance)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeEnv(t, "GOFDN_TOLERANCE=0.5\nGOFDN_ENGINEER=file\n")
	t.Setenv("GOFDN_TOLERANCE", "0.1")
	t.Setenv("GOFDN_OUTPUT_DIR", "out")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Tolerance)
	assert.Equal(t, "file", cfg.Engineer)
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	// the default file is optional
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []string{
		"GOFDN_UNIT_WEIGHT=heavy",
		"GOFDN_MAX_DEPTH=-5",
		"GOFDN_MODULUS=polar",
		"GOFDN_METHOD=newton",
	}
	for _, content := range tests {
		_, err := Load(writeEnv(t, content))
		assert.Error(t, err, content)
	}
}

func TestSolverOptions(t *testing.T) {
	cfg := Default()
	cfg.Method = pier.MethodScan
	in := pier.Input{PointLoad: 1, Height: 10, Diameter: 24, AllowablePressure: 200}
	r, err := pier.Solve(in, cfg.SolverOptions()...)
	require.NoError(t, err)
	assert.Equal(t, pier.MethodScan, r.Method)
}
