// Package config loads tool settings from an env file and the process
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/joho/godotenv"
)

const (
	// DefaultEnvFile is read from the working directory when present
	DefaultEnvFile = "gofdn.env"

	// EnvPrefix prefixes every setting in the environment
	EnvPrefix = "GOFDN_"
)

// Setting keys, without EnvPrefix
const (
	KeyUnitWeight = "UNIT_WEIGHT"
	KeyModulus    = "MODULUS"
	KeyMethod     = "METHOD"
	KeyTolerance  = "TOLERANCE"
	KeyMaxDepth   = "MAX_DEPTH"
	KeyOutputDir  = "OUTPUT_DIR"
	KeyProject    = "PROJECT"
	KeyEngineer   = "ENGINEER"
)

var keys = []string{KeyUnitWeight, KeyModulus, KeyMethod, KeyTolerance, KeyMaxDepth, KeyOutputDir, KeyProject, KeyEngineer}

// Config holds the tool settings
type Config struct {
	UnitWeight float64                // default concrete unit weight (kcf)
	Modulus    footing.ModulusMapping // axis-to-modulus mapping
	Method     pier.Method            // pier root search
	Tolerance  float64                // pier tolerance (ft)
	MaxDepth   float64                // pier search ceiling (ft)
	OutputDir  string                 // directory for exported files
	Project    string                 // printed on reports
	Engineer   string                 // printed on reports

	// Source is the env file the settings were read from, if any
	Source string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		UnitWeight: footing.DefaultUnitWeight,
		Modulus:    footing.DefaultModulusMapping,
		Method:     pier.MethodBisection,
		Tolerance:  pier.DefaultTolerance,
		MaxDepth:   pier.DefaultMaxDepth,
	}
}

// Load reads settings from the env file at path, then applies GOFDN_*
// environment variables on top. An empty path reads DefaultEnvFile when it
// exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	values := map[string]string{}

	file := path
	if file == "" {
		file = DefaultEnvFile
	}
	env, err := godotenv.Read(file)
	switch {
	case err == nil:
		cfg.Source = file
		for k, v := range env {
			values[k] = v
		}
	case path == "" && errors.Is(err, fs.ErrNotExist):
		// no default env file
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", file, err)
	}

	for _, k := range keys {
		if v, ok := os.LookupEnv(EnvPrefix + k); ok {
			values[EnvPrefix+k] = v
		}
	}

	if err := cfg.apply(values); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) apply(values map[string]string) error {
	get := func(k string) (string, bool) {
		v, ok := values[EnvPrefix+k]
		return v, ok && v != ""
	}

	if v, ok := get(KeyUnitWeight); ok {
		f, err := parsePositive(KeyUnitWeight, v)
		if err != nil {
			return err
		}
		c.UnitWeight = f
	}
	if v, ok := get(KeyModulus); ok {
		m, err := footing.ParseModulusMapping(v)
		if err != nil {
			return err
		}
		c.Modulus = m
	}
	if v, ok := get(KeyMethod); ok {
		m, err := pier.ParseMethod(v)
		if err != nil {
			return err
		}
		c.Method = m
	}
	if v, ok := get(KeyTolerance); ok {
		f, err := parsePositive(KeyTolerance, v)
		if err != nil {
			return err
		}
		c.Tolerance = f
	}
	if v, ok := get(KeyMaxDepth); ok {
		f, err := parsePositive(KeyMaxDepth, v)
		if err != nil {
			return err
		}
		c.MaxDepth = f
	}
	if v, ok := get(KeyOutputDir); ok {
		c.OutputDir = v
	}
	if v, ok := get(KeyProject); ok {
		c.Project = v
	}
	if v, ok := get(KeyEngineer); ok {
		c.Engineer = v
	}
	return nil
}

// SolverOptions returns the pier solver options for these settings
func (c Config) SolverOptions() []pier.Option {
	return []pier.Option{
		pier.WithMethod(c.Method),
		pier.WithTolerance(c.Tolerance),
		pier.WithMaxDepth(c.MaxDepth),
	}
}

func parsePositive(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s%s: invalid number %q", EnvPrefix, key, v)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s%s must be positive, got %v", EnvPrefix, key, f)
	}
	return f, nil
}
