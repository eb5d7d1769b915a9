package calcsheet

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gofdn/internal/units"
	"github.com/xuri/excelize/v2"
)

var xlsxHeader = []string{"Name", "Symbol", "Value", "Units", "Formula", "Remarks"}

// Workbook renders the sheet into a new excelize workbook. The caller owns
// the returned file and must close it.
func (s *Sheet) Workbook() (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Calculation"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFFF00"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	flagged, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "FF0000"}})
	if err != nil {
		f.Close()
		return nil, err
	}

	row := 1
	setRow := func(values ...interface{}) error {
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		return nil
	}
	styleRow := func(style, from, to int) error {
		first, err := excelize.CoordinatesToCellName(from, row)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(to, row)
		if err != nil {
			return err
		}
		return f.SetCellStyle(sheetName, first, last, style)
	}

	fail := func(err error) (*excelize.File, error) {
		f.Close()
		return nil, fmt.Errorf("failed to write worksheet: %w", err)
	}

	if s.Title != "" {
		if err := setRow(s.Title); err != nil {
			return fail(err)
		}
		if err := styleRow(bold, 1, 1); err != nil {
			return fail(err)
		}
		row += 2
	}

	for _, sec := range s.Sections {
		if err := setRow(sec.Title); err != nil {
			return fail(err)
		}
		if err := styleRow(bold, 1, 1); err != nil {
			return fail(err)
		}
		row++

		header := make([]interface{}, len(xlsxHeader))
		for i, h := range xlsxHeader {
			header[i] = h
		}
		if err := setRow(header...); err != nil {
			return fail(err)
		}
		if err := styleRow(bold, 1, len(xlsxHeader)); err != nil {
			return fail(err)
		}
		row++

		for _, l := range sec.Lines {
			var value interface{} = l.DisplayValue()
			if l.Text == "" && l.DisplayValue() != "-" {
				value = units.RoundDisplay(l.Value)
			}
			if err := setRow(l.Name, l.Symbol, value, l.Units, l.DisplayFormula(), l.Flag); err != nil {
				return fail(err)
			}
			if l.Highlight {
				if err := styleRow(highlight, 1, 5); err != nil {
					return fail(err)
				}
			}
			if l.Flag != "" {
				if err := styleRow(flagged, 6, 6); err != nil {
					return fail(err)
				}
			}
			row++
		}
		row++
	}

	for _, note := range s.Notes {
		if err := setRow(note); err != nil {
			return fail(err)
		}
		row++
	}

	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return fail(err)
	}
	if err := f.SetColWidth(sheetName, "E", "E", 45); err != nil {
		return fail(err)
	}
	return f, nil
}

// WriteXLSX writes the sheet as an Excel workbook
func (s *Sheet) WriteXLSX(w io.Writer) error {
	f, err := s.Workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveXLSX saves the sheet as an Excel workbook at path
func (s *Sheet) SaveXLSX(path string) error {
	f, err := s.Workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
