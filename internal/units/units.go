package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversion factors for the fixed unit set (feet, inches, kips, psf).
const (
	InchesPerFoot = 12.0
	PoundsPerKip  = 1000.0
	PsfPerKsf     = 1000.0
)

// DisplayDecimals is the number of decimals shown in calculation tables.
const DisplayDecimals = 3

// FeetToInches converts a length in feet to inches
func FeetToInches(ft float64) float64 {
	return ft * InchesPerFoot
}

// InchesToFeet converts a length in inches to feet
func InchesToFeet(in float64) float64 {
	return in / InchesPerFoot
}

// KipsToPounds converts a force in kips to lbf
func KipsToPounds(kips float64) float64 {
	return kips * PoundsPerKip
}

// KsfToPsf converts a pressure in ksf to psf
func KsfToPsf(ksf float64) float64 {
	return ksf * PsfPerKsf
}

// Round rounds v half away from zero to the given number of decimals.
// Negative zero is normalised to zero so tables never show "-0".
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// RoundDisplay rounds v to DisplayDecimals.
func RoundDisplay(v float64) float64 {
	return Round(v, DisplayDecimals)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseOrZero parses a raw text-field value. Empty or invalid input
// yields 0, matching how the input forms treat blank fields.
func ParseOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !IsFinite(v) {
		return 0
	}
	return v
}

// FeetInches formats a length given in inches as feet and whole inches,
// e.g. 75 -> 6'-3". Partial inches are rounded up.
func FeetInches(inches float64) string {
	if !IsFinite(inches) || inches < 0 {
		return "-"
	}
	totalFeet := inches / InchesPerFoot
	feet := math.Floor(totalFeet)
	in := math.Ceil(Round((totalFeet-feet)*InchesPerFoot, 9))
	if in >= InchesPerFoot {
		feet++
		in = 0
	}
	return fmt.Sprintf("%d'-%d\"", int(feet), int(in))
}

// SectionModulus returns the elastic section modulus of a rectangle of
// width b and depth d bent so that stress varies along d: b·d²/6.
func SectionModulus(b, d float64) float64 {
	return b * d * d / 6
}

// Lenient is a float64 decoded from either a JSON number or a JSON string.
// Strings are parsed with ParseOrZero, so "" and "abc" decode to 0.
type Lenient float64

// UnmarshalJSON implements json.Unmarshaler
func (l *Lenient) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*l = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid quoted number %s: %w", s, err)
		}
		*l = Lenient(ParseOrZero(unquoted))
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", s, err)
	}
	*l = Lenient(v)
	return nil
}

// Float returns the value as float64
func (l Lenient) Float() float64 {
	return float64(l)
}
