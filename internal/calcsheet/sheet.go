// Package calcsheet builds the calculation tables shown for a footing or
// pier case and writes them as text or as a spreadsheet.
package calcsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gofdn/internal/units"
)

// FlagUplift is the flag shown next to trapezoidal pressures with uplift
const FlagUplift = "NG, uplift"

// Line is one row of a calculation table
type Line struct {
	Name      string
	Symbol    string
	Value     float64
	Text      string // shown instead of Value when set
	Units     string
	Formula   string
	Highlight bool   // row belongs to the active axis
	Flag      string // error message shown after the row
}

// DisplayValue returns the value rounded to three decimals. Undefined
// values show as "-".
func (l Line) DisplayValue() string {
	if l.Text != "" {
		return l.Text
	}
	if !units.IsFinite(l.Value) {
		return "-"
	}
	return strconv.FormatFloat(units.RoundDisplay(l.Value), 'f', -1, 64)
}

// DisplayFormula returns the formula, "-" when there is none
func (l Line) DisplayFormula() string {
	if l.Formula == "" {
		return "-"
	}
	return l.Formula
}

// Section is a titled group of lines
type Section struct {
	Title string
	Lines []Line
}

// Sheet is a complete calculation table
type Sheet struct {
	Title    string
	Sections []Section
	Notes    []string
}

// AddSection appends a section
func (s *Sheet) AddSection(title string, lines ...Line) {
	s.Sections = append(s.Sections, Section{Title: title, Lines: lines})
}

// Lines returns all lines in order
func (s *Sheet) Lines() []Line {
	var all []Line
	for _, sec := range s.Sections {
		all = append(all, sec.Lines...)
	}
	return all
}

// Find returns the first line with the given symbol
func (s *Sheet) Find(symbol string) (Line, bool) {
	for _, l := range s.Lines() {
		if l.Symbol == symbol {
			return l, true
		}
	}
	return Line{}, false
}

// WriteText writes the sheet as aligned text tables
func (s *Sheet) WriteText(w io.Writer) error {
	if s.Title != "" {
		if _, err := fmt.Fprintf(w, "  %s\n\n", s.Title); err != nil {
			return err
		}
	}

	for _, sec := range s.Sections {
		title := strings.ToUpper(sec.Title)
		fmt.Fprintf(w, "  %s\n", title)
		fmt.Fprintf(w, "  %s\n", strings.Repeat("─", len([]rune(title))))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  \tName\tSymbol\tValue\tUnits\tFormula\t")
		for _, l := range sec.Lines {
			mark := " "
			if l.Highlight {
				mark = "►"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				mark, l.Name, l.Symbol, l.DisplayValue(), l.Units, l.DisplayFormula(), l.Flag)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	for _, note := range s.Notes {
		if _, err := fmt.Fprintf(w, "  Note: %s\n", note); err != nil {
			return err
		}
	}
	return nil
}

// String returns the sheet as text
func (s *Sheet) String() string {
	var sb strings.Builder
	_ = s.WriteText(&sb)
	return sb.String()
}
