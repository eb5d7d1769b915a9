package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gofdn/internal/calcsheet"
	"github.com/alexiusacademia/gofdn/internal/diagram"
	"github.com/alexiusacademia/gofdn/internal/footing"
	"github.com/alexiusacademia/gofdn/internal/report"
	"gonum.org/v1/plot"
)

const rule = "───────────────────────────────────────────────────────────────"

// printHeader prints the boxed title of a command's output
func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

// printSection prints a section title followed by a rule
func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, rule)
}

// outputPath resolves a relative export path against the configured
// output directory
func outputPath(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	path := name
	if cfg.OutputDir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(cfg.OutputDir, name)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	return path, nil
}

// exportSheet writes the optional spreadsheet and PDF report of a sheet.
// The figure, when not nil, is embedded in the report.
func exportSheet(out io.Writer, sheet *calcsheet.Sheet, xlsxName, reportName string, figure *plot.Plot) error {
	if xlsxName != "" {
		path, err := outputPath(xlsxName)
		if err != nil {
			return err
		}
		if err := sheet.SaveXLSX(path); err != nil {
			return fmt.Errorf("failed to write spreadsheet: %w", err)
		}
		logger.Printf("wrote spreadsheet %s", path)
		fmt.Fprintf(out, "  Spreadsheet saved to %s\n", path)
	}

	if reportName != "" {
		path, err := outputPath(reportName)
		if err != nil {
			return err
		}
		rep := report.New(sheet)
		rep.Project = cfg.Project
		rep.Engineer = cfg.Engineer
		if figure != nil {
			var png bytes.Buffer
			if err := diagram.WritePNG(figure, &png); err != nil {
				return fmt.Errorf("failed to render figure: %w", err)
			}
			rep.Figure = png.Bytes()
		}
		if err := rep.Save(path); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Printf("wrote report %s (id %s)", path, rep.ID)
		fmt.Fprintf(out, "  Report %s saved to %s\n", rep.ID, path)
	}
	return nil
}

// pressureDiagramData converts a result for drawing and fails when the
// result carries no distribution
func pressureDiagramData(r *footing.Result) (diagram.PressureDiagramData, error) {
	data, ok := diagram.NewPressureDiagramData(r)
	if !ok {
		return data, fmt.Errorf("no pressure distribution to draw")
	}
	return data, nil
}

// statusMark returns the check mark printed next to a status line
func statusMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "⚠"
}

func hasExt(name string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
