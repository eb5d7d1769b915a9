// Package report renders calculation sheets as PDF reports with an
// embedded diagram and a QR stamp identifying the calculation.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gofdn/internal/calcsheet"
	"github.com/alexiusacademia/gofdn/internal/version"
	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 10.0
	marginRight  = 10.0
	marginTop    = 12.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
	qrSize       = 28.0
)

// column widths of the calculation table (mm)
var columns = []struct {
	title string
	width float64
	align string
}{
	{"Name", 52, "L"},
	{"Symbol", 20, "L"},
	{"Value", 24, "R"},
	{"Units", 18, "L"},
	{"Formula", 52, "L"},
	{"Remarks", 24, "L"},
}

// Stamp holds the data encoded into the report's QR code.
type Stamp struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Project string `json:"project,omitempty"`
	Created string `json:"created"`
	Result  string `json:"result,omitempty"`
	Tool    string `json:"tool"`
}

// Report is a printable calculation
type Report struct {
	ID       string
	Project  string
	Engineer string
	Created  time.Time
	Sheet    *calcsheet.Sheet

	// Figure is a PNG image printed after the tables
	Figure []byte
}

// New creates a report for the sheet with a fresh short ID
func New(sheet *calcsheet.Sheet) *Report {
	return &Report{
		ID:      uuid.New().String()[:8],
		Created: time.Now(),
		Sheet:   sheet,
	}
}

// Stamp returns the QR code payload
func (r *Report) Stamp() Stamp {
	s := Stamp{
		ID:      r.ID,
		Title:   r.Sheet.Title,
		Project: r.Project,
		Created: r.Created.Format(time.RFC3339),
		Tool:    "gofdn v" + version.Version,
	}
	if len(r.Sheet.Notes) > 0 {
		s.Result = r.Sheet.Notes[0]
	}
	return s
}

// Write renders the report as PDF to w
func (r *Report) Write(w io.Writer) error {
	pdf, err := r.render()
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// Save renders the report as PDF to path
func (r *Report) Save(path string) error {
	pdf, err := r.render()
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

func (r *Report) render() (*fpdf.Fpdf, error) {
	if r.Sheet == nil {
		return nil, fmt.Errorf("no calculation sheet to report")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(r.Sheet.Title, true)
	pdf.SetCreator("gofdn v"+version.Version, true)
	if r.Engineer != "" {
		pdf.SetAuthor(r.Engineer, true)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(asciiReplacer.Replace(s)) }

	pdf.SetFooterFunc(func() {
		pdf.SetY(-marginBottom + 3)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, text(fmt.Sprintf("Report %s - page %d", r.ID, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	if err := r.renderHeader(pdf, text); err != nil {
		return nil, err
	}
	r.renderSections(pdf, text)

	if len(r.Figure) > 0 {
		pdf.AddPage()
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("figure", opts, bytes.NewReader(r.Figure))
		pdf.ImageOptions("figure", marginLeft, marginTop, contentWidth, 0, false, opts, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return pdf, nil
}

// renderHeader draws the title block and the QR stamp
func (r *Report) renderHeader(pdf *fpdf.Fpdf, text func(string) string) error {
	payload, err := json.Marshal(r.Stamp())
	if err != nil {
		return err
	}
	qrPNG, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("stamp", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("stamp", pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, opts, 0, "")

	titleWidth := contentWidth - qrSize - 4
	pdf.SetXY(marginLeft, marginTop)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(titleWidth, 9, text(r.Sheet.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	meta := []string{fmt.Sprintf("Report: %s", r.ID), fmt.Sprintf("Date: %s", r.Created.Format("2006-01-02 15:04"))}
	if r.Project != "" {
		meta = append(meta, fmt.Sprintf("Project: %s", r.Project))
	}
	if r.Engineer != "" {
		meta = append(meta, fmt.Sprintf("Engineer: %s", r.Engineer))
	}
	for _, m := range meta {
		pdf.CellFormat(titleWidth, 5, text(m), "", 1, "L", false, 0, "")
	}

	pdf.SetY(marginTop + qrSize + 4)
	return nil
}

// renderSections draws every section as a table
func (r *Report) renderSections(pdf *fpdf.Fpdf, text func(string) string) {
	for _, sec := range r.Sheet.Sections {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(contentWidth, 7, text(sec.Title), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range columns {
			pdf.CellFormat(c.width, rowHeight, c.title, "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Courier", "", 8)
		for _, l := range sec.Lines {
			fill := l.Highlight
			if fill {
				pdf.SetFillColor(255, 255, 0)
			}
			cells := []string{l.Name, l.Symbol, l.DisplayValue(), l.Units, l.DisplayFormula()}
			pdf.SetTextColor(0, 0, 0)
			for i, c := range cells {
				pdf.CellFormat(columns[i].width, rowHeight, text(c), "1", 0, columns[i].align, fill, 0, "")
			}
			pdf.SetTextColor(200, 0, 0)
			last := columns[len(columns)-1]
			pdf.CellFormat(last.width, rowHeight, text(l.Flag), "1", 0, last.align, false, 0, "")
			pdf.Ln(-1)
		}
	}

	if len(r.Sheet.Notes) > 0 {
		pdf.Ln(3)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		for _, note := range r.Sheet.Notes {
			pdf.MultiCell(contentWidth, 5, text("Note: "+note), "", "L", false)
		}
	}
}

// asciiReplacer maps symbols missing from the core PDF fonts
var asciiReplacer = strings.NewReplacer(
	"γ", "gamma",
	"Σ", "sum ",
	"−", "-",
	"─", "-",
	"►", ">",
	"²", "^2",
	"³", "^3",
)
