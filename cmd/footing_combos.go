package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gofdn/internal/asce"
	"github.com/alexiusacademia/gofdn/internal/calcsheet"
	"github.com/alexiusacademia/gofdn/internal/diagram"
	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/spf13/cobra"
)

var (
	combosFlags footingFlags

	// Service reactions, one axial and one moment flag per load type
	combosLoads asce.ServiceLoads

	combosGravity bool
	combosOnly    []string
	combosXLSX    string
	combosReport  string
)

var footingCombosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Governing bearing pressure over ASCE 7-16 ASD load combinations",
	Long: `Evaluate the bearing pressure of a footing for every ASCE 7-16
allowable stress design combination (Section 2.4.1) and report the
combination producing the largest soil pressure.

Each load type takes an axial reaction (kips) placed at the footing
eccentricity and a moment (kip-ft) along the axis. Lr, S and R share the
roof term; the one with the largest axial reaction is used.

Combinations:
  1   D
  2   D + L
  3   D + (Lr or S or R)
  4   D + 0.75L + 0.75(Lr or S or R)
  5a  D + 0.6W
  5b  D + 0.7E
  6a  D + 0.75L + 0.75(0.6W) + 0.75(Lr or S or R)
  6b  D + 0.75L + 0.75(0.7E) + 0.75S
  7   0.6D + 0.6W
  8   0.6D + 0.7E

Examples:
  gofdn footing combos -b 6 -l 8 -t 24 --dead 20 --live 12 --wind-moment 15

  # Gravity combinations only
  gofdn footing combos -b 6 -l 8 -t 24 --dead 20 --live 12 --snow 6 --gravity`,
	RunE: runFootingCombos,
}

func init() {
	footingCmd.AddCommand(footingCombosCmd)

	combosFlags.register(footingCombosCmd)

	f := footingCombosCmd.Flags()
	loadFlag := func(e *asce.Effect, name, label string) {
		f.Float64Var(&e.Axial, name, 0, label+" axial reaction (kips)")
		f.Float64Var(&e.Moment, name+"-moment", 0, label+" moment along the axis (kip-ft)")
	}
	loadFlag(&combosLoads.Dead, "dead", "Dead load D")
	loadFlag(&combosLoads.Live, "live", "Live load L")
	loadFlag(&combosLoads.Roof, "roof", "Roof live load Lr")
	loadFlag(&combosLoads.Snow, "snow", "Snow load S")
	loadFlag(&combosLoads.Rain, "rain", "Rain load R")
	loadFlag(&combosLoads.Wind, "wind", "Wind load W")
	loadFlag(&combosLoads.Earthquake, "earthquake", "Earthquake load E")

	f.BoolVar(&combosGravity, "gravity", false, "Evaluate gravity combinations only (1 to 4)")
	f.StringSliceVar(&combosOnly, "only", nil, "Evaluate only the listed combination IDs (e.g. 2,5a)")
	f.StringVar(&combosXLSX, "xlsx", "", "Export the governing calculation as an Excel workbook")
	f.StringVar(&combosReport, "report", "", "Export the governing calculation as a PDF report")
}

func runFootingCombos(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if combosFlags.file != "" {
		return fmt.Errorf("--file is not supported by combos; give the geometry with flags")
	}
	if err := combosFlags.requireGeometry(); err != nil {
		return err
	}
	axis, err := combosFlags.axisValue()
	if err != nil {
		return err
	}
	mapping, err := combosFlags.mapping()
	if err != nil {
		return err
	}
	combos, err := selectCombinations()
	if err != nil {
		return err
	}

	base := footing.Input{Geometry: combosFlags.geometry(cmd)}.WithAxis(axis)
	if err := base.Validate(); err != nil {
		return err
	}
	if err := base.WithLoad(combosFlags.pointLoad(0, axis)).CheckEccentricity(); err != nil {
		return err
	}

	// Evaluate calls eval once per combination, in order
	results := make(map[string]*footing.Result, len(combos))
	next := 0
	outcomes := asce.Evaluate(combosLoads, combos, func(e asce.Effect) (float64, error) {
		id := combos[next].ID
		next++
		in := base.
			WithLoad(combosFlags.pointLoad(e.Axial, axis)).
			WithMoment(footing.AppliedMoment{Magnitude: e.Moment})
		r, err := footing.ComputeWith(in, mapping)
		if err != nil {
			return 0, err
		}
		results[id] = r
		return r.Distribution.Max(), nil
	})
	resultFor := func(o asce.Outcome) *footing.Result {
		return results[o.Combination.ID]
	}

	printHeader(out, "BEARING PRESSURE - ASCE 7-16 ASD COMBINATIONS")
	printFootingInput(out, base)
	printCombinationTable(out, outcomes, resultFor)

	governing, ok := asce.Governing(outcomes)
	if !ok {
		printSection(out, "STATUS")
		fmt.Fprintf(out, "  %s No combination produced a bearing pressure\n\n", statusMark(false))
		return fmt.Errorf("no load combination could be evaluated")
	}
	logger.Printf("combination %s governs with q = %.4f ksf", governing.Combination.ID, governing.Value)

	r := resultFor(governing)
	fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING COMBINATION", []string{
		fmt.Sprintf("%s: %s", governing.Combination.ID, governing.Combination.Description),
		fmt.Sprintf("P = %.3f kips, M = %.3f kip-ft", governing.Effect.Axial, governing.Effect.Moment),
		fmt.Sprintf("q max = %.3f ksf (%s)", governing.Value, r.Distribution.Shape()),
	}))
	fmt.Fprintln(out)

	printSection(out, "STATUS")
	fmt.Fprintf(out, "  %s %s\n\n", statusMark(!r.Uplift), r.Message)

	if combosXLSX == "" && combosReport == "" {
		return nil
	}
	sheet := calcsheet.Footing(r)
	sheet.Title = fmt.Sprintf("%s - Combination %s", sheet.Title, governing.Combination.ID)
	sheet.Notes = append(sheet.Notes, "Load combination: "+governing.Combination.Description)
	if combosReport == "" {
		return exportSheet(out, sheet, combosXLSX, "", nil)
	}
	data, err := pressureDiagramData(r)
	if err != nil {
		return err
	}
	figure, err := diagram.PressurePlot(data)
	if err != nil {
		return err
	}
	return exportSheet(out, sheet, combosXLSX, combosReport, figure)
}

// selectCombinations applies the --gravity and --only filters
func selectCombinations() ([]asce.LoadCombination, error) {
	combos := asce.LoadCombinations
	if combosGravity {
		combos = asce.GravityCombinations
	}
	if len(combosOnly) == 0 {
		return combos, nil
	}
	selected := make([]asce.LoadCombination, 0, len(combosOnly))
	for _, id := range combosOnly {
		combo, err := asce.Find(strings.TrimSpace(id), combos)
		if err != nil {
			return nil, err
		}
		selected = append(selected, combo)
	}
	return selected, nil
}

func printCombinationTable(out io.Writer, outcomes []asce.Outcome, resultFor func(asce.Outcome) *footing.Result) {
	printSection(out, "LOAD COMBINATIONS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tCombination\tP (kips)\tM (kip-ft)\tq max (ksf)\tq min (ksf)\tCondition")
	for _, o := range outcomes {
		c := o.Combination
		if o.Err != nil {
			fmt.Fprintf(w, "  %s\t%s\t%.3f\t%.3f\t-\t-\t%s\n", c.ID, c.Description, o.Effect.Axial, o.Effect.Moment, o.Err)
			continue
		}
		r := resultFor(o)
		near, far := r.Distribution.EdgePressures()
		condition := "OK"
		if r.Uplift {
			condition = "partial contact"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			c.ID, c.Description, o.Effect.Axial, o.Effect.Moment, o.Value, min(near, far), condition)
	}
	w.Flush()
	fmt.Fprintln(out)
}
