package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/spf13/cobra"
)

var (
	sweepFlags pierFlags

	sweepFrom float64
	sweepTo   float64
	sweepStep float64
)

var pierSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Embedment depth over a range of load heights",
	Long: `Solve the embedment depth for each load height from --from to --to.

Each height is solved from scratch, so a row matches "pier depth" at
that height. When a height cannot be solved the previous depth is kept
and the row is marked.

Example:
  gofdn pier sweep -p 1 -b 24 --q 200 --from 5 --to 20 --step 2.5`,
	RunE: runPierSweep,
}

func init() {
	pierCmd.AddCommand(pierSweepCmd)

	sweepFlags.register(pierSweepCmd)

	pierSweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "First load height (ft)")
	pierSweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "Last load height (ft)")
	pierSweepCmd.Flags().Float64Var(&sweepStep, "step", 1, "Height increment (ft)")
}

func runPierSweep(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if sweepStep <= 0 {
		return fmt.Errorf("--step must be positive, got %v", sweepStep)
	}
	if sweepTo < sweepFrom {
		return fmt.Errorf("--to (%v) must not be less than --from (%v)", sweepTo, sweepFrom)
	}
	in, name, err := sweepFlags.input()
	if err != nil {
		return err
	}
	opts, err := sweepFlags.options(cmd)
	if err != nil {
		return err
	}

	session := pier.NewSession(in, opts...)

	printHeader(out, "PIER EMBEDMENT DEPTH - HEIGHT SWEEP")
	if name != "" {
		fmt.Fprintf(out, "  Case: %s\n\n", name)
	}
	printPierInput(out, in)

	printSection(out, "RESULTS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  h (ft)\tDepth\tIterations\tState")
	failed := 0
	n := int((sweepTo-sweepFrom)/sweepStep+1e-9) + 1
	for i := 0; i < n; i++ {
		h := sweepFrom + float64(i)*sweepStep
		session.Update(func(in pier.Input) pier.Input {
			in.Height = h
			return in
		})
		r, err := session.Solve()
		if r == nil {
			w.Flush()
			return err
		}
		if err != nil {
			failed++
			logger.Printf("h = %.2f ft: %v", h, err)
		}
		fmt.Fprintf(w, "  %.2f\t%s\t%d\t%s %s\n", h, formatDepth(session.Depth()), r.Iterations, statusMark(r.Converged), session.State())
	}
	w.Flush()
	fmt.Fprintln(out)

	if failed > 0 {
		return fmt.Errorf("%d of %d heights did not converge", failed, n)
	}
	return nil
}
