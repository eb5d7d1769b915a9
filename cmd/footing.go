package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/spf13/cobra"
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Soil bearing pressure under spread footings",
	Long: `Check the soil bearing pressure under a rectangular spread footing
loaded by an eccentric point load and an applied moment.

Subcommands:
  pressure  - Bearing pressure distribution for one load case
  combos    - Governing bearing pressure over ASCE 7-16 ASD combinations

Units: B and L in ft, t in in, γ in kcf, loads in kips, moments in kip-ft,
pressures in ksf.`,
}

func init() {
	rootCmd.AddCommand(footingCmd)
}

// footingFlags are the geometry and eccentricity flags shared by the
// footing commands
type footingFlags struct {
	width      float64
	length     float64
	thickness  float64
	unitWeight float64
	ecc        float64
	axis       string
	modulus    string
	file       string
}

func (f *footingFlags) register(cmd *cobra.Command) {
	// Geometry flags
	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Footing width B (ft)")
	cmd.Flags().Float64VarP(&f.length, "length", "l", 0, "Footing length L (ft)")
	cmd.Flags().Float64VarP(&f.thickness, "thickness", "t", 0, "Footing thickness t (in)")
	cmd.Flags().Float64Var(&f.unitWeight, "unit-weight", 0, "Concrete unit weight γ (kcf) (default from settings, 0.145)")

	// Eccentricity flags
	cmd.Flags().Float64VarP(&f.ecc, "ecc", "e", 0, "Point load eccentricity along the axis (ft), signed")
	cmd.Flags().StringVar(&f.axis, "axis", "B", "Eccentricity axis: B or L")
	cmd.Flags().StringVar(&f.modulus, "modulus", "", "Section modulus mapping: bending or eccentricity (default from settings)")

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Load the footing case from a JSON file")
}

// geometry returns the footing geometry from the flags
func (f *footingFlags) geometry(cmd *cobra.Command) footing.Geometry {
	gamma := cfg.UnitWeight
	if cmd.Flags().Changed("unit-weight") {
		gamma = f.unitWeight
	}
	return footing.Geometry{
		Width:      f.width,
		Length:     f.length,
		Thickness:  f.thickness,
		UnitWeight: gamma,
	}
}

// axisValue parses the --axis flag
func (f *footingFlags) axisValue() (footing.Axis, error) {
	return footing.ParseAxis(f.axis)
}

// mapping returns the modulus mapping from the flag or the settings
func (f *footingFlags) mapping() (footing.ModulusMapping, error) {
	if f.modulus == "" {
		return cfg.Modulus, nil
	}
	return footing.ParseModulusMapping(f.modulus)
}

// pointLoad places a load of magnitude p at the flag eccentricity on axis a
func (f *footingFlags) pointLoad(p float64, a footing.Axis) footing.PointLoad {
	if a == footing.AxisL {
		return footing.PointLoad{Magnitude: p, EL: f.ecc}
	}
	return footing.PointLoad{Magnitude: p, EB: f.ecc}
}

// requireGeometry rejects a missing footing size when no case file is given
func (f *footingFlags) requireGeometry() error {
	if f.file == "" && (f.width <= 0 || f.length <= 0) {
		return fmt.Errorf("--width and --length are required (or --file)")
	}
	return nil
}
