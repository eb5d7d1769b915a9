package cmd

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/gofdn/internal/calcsheet"
	"github.com/alexiusacademia/gofdn/internal/diagram"
	"github.com/alexiusacademia/gofdn/internal/pier"
	"github.com/alexiusacademia/gofdn/internal/units"
	"github.com/spf13/cobra"
)

var (
	depthFlags pierFlags

	depthSeed   float64
	depthTrace  bool
	depthOutput string
	depthXLSX   string
	depthReport string
)

var pierDepthCmd = &cobra.Command{
	Use:   "depth",
	Short: "Solve the required embedment depth of a pier",
	Long: `Solve the minimum embedment depth of a pier carrying a lateral point
load P at height h above grade.

Non-constrained at grade:
  A  = 2.34·P / (S1·b)
  d  = 0.5·A·(1 + sqrt(1 + 4.36·h/A))
  S1 = q·d/3, optionally limited by Q and by the pressure at 12 ft

Constrained at grade:
  d² = 4.25·P·h / (S3·b)
  S3 = q·d, optionally limited by Q

S1 and S3 depend on d, so the depth is found by searching for d with
|d − rhs(d)| within the tolerance.

Examples:
  # 1 kip at 10 ft on a 24 in pier, q = 200 psf/ft
  gofdn pier depth -p 1 --height 10 -b 24 --q 200

  # Constrained, with the residual graph
  gofdn pier depth -p 1 --height 10 -b 24 --q 200 --constrained --trace

  # From a case file with a PDF report
  gofdn pier depth --file pole.json --report pole.pdf`,
	RunE: runPierDepth,
}

func init() {
	pierCmd.AddCommand(pierDepthCmd)

	depthFlags.register(pierDepthCmd)

	pierDepthCmd.Flags().Float64Var(&depthSeed, "seed", 0, "Starting depth (in), e.g. a previous solution")
	pierDepthCmd.Flags().BoolVar(&depthTrace, "trace", false, "Show the residual d − rhs(d) as an ASCII graph")
	pierDepthCmd.Flags().StringVarP(&depthOutput, "output", "o", "", "Export the residual plot to image file (png, svg, pdf)")
	pierDepthCmd.Flags().StringVar(&depthXLSX, "xlsx", "", "Export calculation table as an Excel workbook")
	pierDepthCmd.Flags().StringVar(&depthReport, "report", "", "Export PDF calculation report")
}

func runPierDepth(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	in, name, err := depthFlags.input()
	if err != nil {
		return err
	}
	opts, err := depthFlags.options(cmd)
	if err != nil {
		return err
	}
	if depthSeed > 0 {
		opts = append(opts, pier.WithSeed(depthSeed))
	}

	result, solveErr := pier.Solve(in, opts...)
	if result == nil {
		return solveErr
	}
	logger.Printf("pier solve %s after %d iterations (%s)", result.Status, result.Iterations, result.Method)

	printHeader(out, "PIER EMBEDMENT DEPTH")
	if name != "" {
		fmt.Fprintf(out, "  Case: %s\n\n", name)
	}
	printPierInput(out, in)

	if errors.Is(solveErr, pier.ErrNotComputable) {
		printSection(out, "STATUS")
		fmt.Fprintf(out, "  %s %s\n\n", statusMark(false), result.Message)
		return solveErr
	}

	sheet := calcsheet.Pier(in, result)
	printSection(out, "CALCULATION")
	fmt.Fprintln(out)
	if err := sheet.WriteText(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	data := diagram.NewResidualData(traceRange(in, result), result)
	if depthTrace {
		fmt.Fprint(out, diagram.DrawResidualGraph(data))
		fmt.Fprintln(out)
	}

	printSection(out, "STATUS")
	fmt.Fprintf(out, "  %s %s\n\n", statusMark(result.Converged), result.Message)

	if err := exportPier(out, sheet, data); err != nil {
		return err
	}
	return solveErr
}

// traceRange samples the embedment equation up to twice the solution, or
// 20 ft when there is none
func traceRange(in pier.Input, r *pier.Result) []pier.Sample {
	to := 20.0
	if r.Converged && r.TrialDepth > 0 {
		to = math.Ceil(2 * r.TrialDepth)
	}
	return pier.Trace(in, pier.DefaultStep, to, to/100)
}

func printPierInput(out io.Writer, in pier.Input) {
	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Point load (P):\t%.3f kips\n", in.PointLoad)
	fmt.Fprintf(w, "  Height (h):\t%.2f ft\n", in.Height)
	fmt.Fprintf(w, "  Diameter (b):\t%.2f in\n", in.Diameter)
	fmt.Fprintf(w, "  Allowable pressure (q):\t%.1f psf/ft\n", in.AllowablePressure)
	if in.MaxPressure > 0 {
		fmt.Fprintf(w, "  Max pressure (Q):\t%.1f psf\n", in.MaxPressure)
	} else {
		fmt.Fprintf(w, "  Max pressure (Q):\tnone\n")
	}
	condition := "non-constrained"
	switch {
	case in.Constrained:
		condition = "constrained at grade"
	case in.DepthLimitation:
		condition = "non-constrained, 12 ft limitation"
	}
	fmt.Fprintf(w, "  Condition:\t%s\n", condition)
	w.Flush()
	fmt.Fprintln(out)
}

func exportPier(out io.Writer, sheet *calcsheet.Sheet, data diagram.ResidualData) error {
	if depthOutput != "" {
		path, err := outputPath(depthOutput)
		if err != nil {
			return err
		}
		if err := diagram.ExportResidualPlot(data, path); err != nil {
			return fmt.Errorf("failed to export residual plot: %w", err)
		}
		fmt.Fprintf(out, "  Residual plot saved to %s\n", path)
	}

	if depthReport == "" {
		return exportSheet(out, sheet, depthXLSX, "", nil)
	}
	figure, err := diagram.ResidualPlot(data)
	if err != nil {
		logger.Printf("residual plot skipped: %v", err)
	}
	return exportSheet(out, sheet, depthXLSX, depthReport, figure)
}

// formatDepth prints a depth in inches with its feet-inches form
func formatDepth(in float64) string {
	return fmt.Sprintf("%.2f in (%s)", units.Round(in, 2), units.FeetInches(in))
}
