package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/spf13/cobra"
)

var pierCmd = &cobra.Command{
	Use:   "pier",
	Short: "Embedment depth of laterally loaded piers and poles",
	Long: `Solve the embedment depth of a pier or pole foundation carrying a
lateral point load above grade.

Subcommands:
  depth  - Required embedment depth for one case
  sweep  - Embedment depth over a range of load heights

Units: P in kips, h in ft, b in in, q in psf/ft, Q in psf, depth in in.`,
}

func init() {
	rootCmd.AddCommand(pierCmd)
}

// pierFlags are the case flags shared by the pier commands
type pierFlags struct {
	load        float64
	height      float64
	diameter    float64
	q           float64
	qmax        float64
	constrained bool
	limit12     bool
	method      string
	tolerance   float64
	file        string
}

func (f *pierFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.load, "load", "p", 0, "Lateral point load P (kips)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Height of the load above grade h (ft)")
	cmd.Flags().Float64VarP(&f.diameter, "diameter", "b", 0, "Pier diameter b (in)")
	cmd.Flags().Float64Var(&f.q, "q", 0, "Allowable lateral soil pressure q (psf/ft)")
	cmd.Flags().Float64Var(&f.qmax, "qmax", 0, "Maximum allowable soil pressure Q (psf), 0 for none")

	cmd.Flags().BoolVar(&f.constrained, "constrained", false, "Pier is constrained at grade")
	cmd.Flags().BoolVar(&f.limit12, "limit-12ft", false, "Limit S1 to the pressure at 12 ft depth")
	cmd.MarkFlagsMutuallyExclusive("constrained", "limit-12ft")

	cmd.Flags().StringVar(&f.method, "method", "", "Root search: bisection or scan (default from settings)")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", 0, "Convergence tolerance (ft) (default from settings, 0.25)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Load the pier case from a JSON file")
}

// input builds the pier case from the case file or the flags
func (f *pierFlags) input() (pier.Input, string, error) {
	if f.file != "" {
		c, err := pier.LoadFromFile(f.file)
		if err != nil {
			return pier.Input{}, "", err
		}
		logger.Printf("loaded pier case %q from %s", c.Name, f.file)
		return c.Input, c.Name, nil
	}
	if f.diameter <= 0 || f.q <= 0 {
		return pier.Input{}, "", fmt.Errorf("--diameter and --q are required (or --file)")
	}
	in := pier.Input{
		PointLoad:         f.load,
		Height:            f.height,
		Diameter:          f.diameter,
		AllowablePressure: f.q,
		MaxPressure:       f.qmax,
	}.WithConstrained(f.constrained).WithDepthLimitation(f.limit12)
	return in, "", in.Validate()
}

// options returns the solver options from the settings and the flags
func (f *pierFlags) options(cmd *cobra.Command) ([]pier.Option, error) {
	opts := cfg.SolverOptions()
	if f.method != "" {
		m, err := pier.ParseMethod(f.method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pier.WithMethod(m))
	}
	if cmd.Flags().Changed("tolerance") {
		if f.tolerance <= 0 {
			return nil, fmt.Errorf("--tolerance must be positive, got %v", f.tolerance)
		}
		opts = append(opts, pier.WithTolerance(f.tolerance))
	}
	return opts, nil
}
