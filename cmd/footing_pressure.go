package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gofdn/internal/calcsheet"
	"github.com/alexiusacademia/gofdn/internal/diagram"
	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/spf13/cobra"
)

var (
	pressureFlags footingFlags

	// Load inputs
	pressureLoad   float64
	pressureMoment float64

	// Output options
	pressureDiagram bool
	pressureOutput  string
	pressureSVG     string
	pressureDXF     string
	pressureXLSX    string
	pressureReport  string
)

var footingPressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Calculate the bearing pressure distribution under a footing",
	Long: `Calculate the soil bearing pressure under a rectangular footing.

The footing self weight is added to the point load. The eccentric point
load and the applied moment act along one axis (B or L). When the
minimum trapezoidal pressure is negative the footing is in partial
contact and the pressure is redistributed as a triangle over the
effective dimension 3(dim/2 - |ΣM|/ΣP).

Examples:
  # 6 x 8 ft footing, 24 in thick, 20 kips at 0.5 ft along B
  gofdn footing pressure -b 6 -l 8 -t 24 -p 20 -e 0.5

  # Same case with an applied moment, ASCII diagram and PDF report
  gofdn footing pressure -b 6 -l 8 -t 24 -p 20 -e 0.5 -m 10 --diagram --report f1.pdf

  # Load from a JSON case file and export a DXF drawing
  gofdn footing pressure --file f1.json --dxf f1.dxf`,
	RunE: runFootingPressure,
}

func init() {
	footingCmd.AddCommand(footingPressureCmd)

	pressureFlags.register(footingPressureCmd)

	// Load flags
	footingPressureCmd.Flags().Float64VarP(&pressureLoad, "load", "p", 0, "Point load P (kips), downward positive")
	footingPressureCmd.Flags().Float64VarP(&pressureMoment, "moment", "m", 0, "Applied moment M along the axis (kip-ft), signed")

	// Output flags
	footingPressureCmd.Flags().BoolVarP(&pressureDiagram, "diagram", "d", false, "Show ASCII pressure diagram")
	footingPressureCmd.Flags().StringVarP(&pressureOutput, "output", "o", "", "Export pressure diagram to image file (png, svg, pdf)")
	footingPressureCmd.Flags().StringVar(&pressureSVG, "svg", "", "Export pressure diagram as a plain SVG drawing")
	footingPressureCmd.Flags().StringVar(&pressureDXF, "dxf", "", "Export footing section and pressure polygon as DXF")
	footingPressureCmd.Flags().StringVar(&pressureXLSX, "xlsx", "", "Export calculation table as an Excel workbook")
	footingPressureCmd.Flags().StringVar(&pressureReport, "report", "", "Export PDF calculation report")
}

func runFootingPressure(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	in, name, err := pressureInput(cmd)
	if err != nil {
		return err
	}
	mapping, err := pressureFlags.mapping()
	if err != nil {
		return err
	}
	if err := in.CheckEccentricity(); err != nil {
		return err
	}

	result, err := footing.ComputeWith(in, mapping)
	if result == nil {
		return err
	}
	logger.Printf("computed %s-axis pressure with %s mapping", in.Axis, mapping.Name)

	printHeader(out, "SOIL BEARING PRESSURE - SPREAD FOOTING")
	if name != "" {
		fmt.Fprintf(out, "  Case: %s\n\n", name)
	}
	printFootingInput(out, in)

	if err != nil {
		printSection(out, "STATUS")
		fmt.Fprintf(out, "  %s %s\n\n", statusMark(false), result.Message)
		return err
	}

	sheet := calcsheet.Footing(result)
	printSection(out, "CALCULATION")
	fmt.Fprintln(out)
	if err := sheet.WriteText(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("BEARING PRESSURE", pressureSummary(result)))
	fmt.Fprintln(out)

	data, err := pressureDiagramData(result)
	if err != nil {
		return err
	}
	if pressureDiagram {
		fmt.Fprint(out, diagram.DrawASCIIPressureDiagram(data))
		fmt.Fprintln(out)
	}

	printSection(out, "STATUS")
	fmt.Fprintf(out, "  %s %s\n\n", statusMark(!result.Uplift), result.Message)

	return exportPressure(out, sheet, data)
}

// pressureInput builds the footing input from the case file or the flags
func pressureInput(cmd *cobra.Command) (footing.Input, string, error) {
	f := &pressureFlags
	if f.file != "" {
		c, err := footing.LoadFromFile(f.file)
		if err != nil {
			return footing.Input{}, "", err
		}
		logger.Printf("loaded footing case %q from %s", c.Name, f.file)
		return c.Input, c.Name, nil
	}

	if err := f.requireGeometry(); err != nil {
		return footing.Input{}, "", err
	}
	axis, err := f.axisValue()
	if err != nil {
		return footing.Input{}, "", err
	}
	in := footing.Input{
		Geometry: f.geometry(cmd),
		Load:     f.pointLoad(pressureLoad, axis),
		Moment:   footing.AppliedMoment{Magnitude: pressureMoment},
	}.WithAxis(axis)
	return in, "", nil
}

func printFootingInput(out io.Writer, in footing.Input) {
	g := in.Geometry
	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (B):\t%.2f ft\n", g.Width)
	fmt.Fprintf(w, "  Length (L):\t%.2f ft\n", g.Length)
	fmt.Fprintf(w, "  Thickness (t):\t%.1f in\n", g.Thickness)
	fmt.Fprintf(w, "  Unit weight (γ):\t%.3f kcf\n", g.UnitWeight)
	fmt.Fprintf(w, "  Point load (P):\t%.2f kips\n", in.Load.Magnitude)
	fmt.Fprintf(w, "  Eccentricity (e%s):\t%.3f ft\n", in.Axis, in.Load.Eccentricity(in.Axis))
	fmt.Fprintf(w, "  Applied moment (M):\t%.2f kip-ft\n", in.Moment.Magnitude)
	fmt.Fprintf(w, "  Axis:\t%s\n", in.Axis.Label())
	w.Flush()
	fmt.Fprintln(out)
}

func pressureSummary(r *footing.Result) []string {
	lines := []string{
		fmt.Sprintf("Distribution: %s", r.Distribution.Shape()),
		fmt.Sprintf("ΣP = %.3f kips, ΣM = %.3f kip-ft", r.Summary.SumP, r.Summary.SumM(r.Input.Axis)),
		fmt.Sprintf("%s = %.3f ft³", r.Modulus.Symbol(), r.S),
	}
	near, far := r.Distribution.EdgePressures()
	lines = append(lines,
		fmt.Sprintf("q max = %.3f ksf", r.Distribution.Max()),
		fmt.Sprintf("q near / far edge = %.3f / %.3f ksf", near, far),
	)
	if tri, ok := r.Distribution.(footing.Triangular); ok {
		lines = append(lines, fmt.Sprintf("%seff = %.3f ft (zero pressure at %s edge)", r.StressAxis, tri.EffectiveDim, tri.ZeroEdge))
	}
	return lines
}

// exportPressure writes the requested diagram files, spreadsheet and report
func exportPressure(out io.Writer, sheet *calcsheet.Sheet, data diagram.PressureDiagramData) error {
	if pressureOutput != "" {
		if !hasExt(pressureOutput, ".png", ".svg", ".pdf", "") {
			return fmt.Errorf("unsupported image format %q (png, svg or pdf)", pressureOutput)
		}
		path, err := outputPath(pressureOutput)
		if err != nil {
			return err
		}
		if err := diagram.ExportPressureDiagram(data, path); err != nil {
			return fmt.Errorf("failed to export diagram: %w", err)
		}
		fmt.Fprintf(out, "  Diagram saved to %s\n", path)
	}
	if pressureSVG != "" {
		path, err := outputPath(pressureSVG)
		if err != nil {
			return err
		}
		if err := diagram.ExportPressureSVG(data, path); err != nil {
			return fmt.Errorf("failed to export SVG: %w", err)
		}
		fmt.Fprintf(out, "  SVG drawing saved to %s\n", path)
	}
	if pressureDXF != "" {
		path, err := outputPath(pressureDXF)
		if err != nil {
			return err
		}
		if err := diagram.ExportPressureDXF(data, path); err != nil {
			return fmt.Errorf("failed to export DXF: %w", err)
		}
		fmt.Fprintf(out, "  DXF drawing saved to %s\n", path)
	}

	if pressureReport == "" {
		return exportSheet(out, sheet, pressureXLSX, "", nil)
	}
	figure, err := diagram.PressurePlot(data)
	if err != nil {
		return err
	}
	return exportSheet(out, sheet, pressureXLSX, pressureReport, figure)
}
