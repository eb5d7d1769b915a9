package footing

import (
	"fmt"
	"strings"
)

// Modulus identifies one of the two footing section moduli
type Modulus int

const (
	ModulusSB Modulus = iota // L·B²/6
	ModulusSL                // B·L²/6
)

// Symbol returns the calculation table symbol for the modulus
func (m Modulus) Symbol() string {
	if m == ModulusSL {
		return "Sll"
	}
	return "Sbb"
}

// Formula returns the calculation table formula for the modulus
func (m Modulus) Formula() string {
	if m == ModulusSL {
		return "L^2 * B / 6"
	}
	return "L * B^2 / 6"
}

// Value evaluates the modulus for the given geometry (ft³)
func (m Modulus) Value(g Geometry) float64 {
	if m == ModulusSL {
		return g.SL()
	}
	return g.SB()
}

// StressAxis returns the axis the pressure varies along when the modulus
// resists the moment: S_B = L·B²/6 spans B and S_L = B·L²/6 spans L.
func (m Modulus) StressAxis() Axis {
	if m == ModulusSL {
		return AxisL
	}
	return AxisB
}

// ModulusMapping is the table assigning a section modulus to each
// eccentricity axis. All pressure calculations read the modulus from one
// mapping; nothing derives it inline.
type ModulusMapping struct {
	Name string
	ForB Modulus
	ForL Modulus
}

// For returns the modulus used for eccentricity along a
func (m ModulusMapping) For(a Axis) Modulus {
	if a == AxisL {
		return m.ForL
	}
	return m.ForB
}

// StressAxis returns the axis the pressure varies along for eccentricity
// along a
func (m ModulusMapping) StressAxis(a Axis) Axis {
	return m.For(a).StressAxis()
}

// Dimensions returns the footing dimension the pressure varies along and
// the dimension across it, for eccentricity along a. The kern check, the
// effective dimension, the triangular peak and the pressure profile all
// use these.
func (m ModulusMapping) Dimensions(g Geometry, a Axis) (stressed, across float64) {
	sa := m.StressAxis(a)
	return g.Dimension(sa), g.Perpendicular(sa)
}

var (
	// BendingAxisMapping takes the modulus of the bending axis: eccentricity
	// along B uses S_L = B·L²/6 and eccentricity along L uses S_B = L·B²/6.
	// The pressure then varies along L for eccentricity along B, so the
	// kern limit is L/6 and the effective dimension is measured along L.
	// For B=6, L=8, eB=0.5, P=20 this gives S=64 ft³ and qmax=0.8629 ksf.
	BendingAxisMapping = ModulusMapping{Name: "bending", ForB: ModulusSL, ForL: ModulusSB}

	// EccentricityAxisMapping takes the modulus named after the
	// eccentricity direction: along B uses S_B = L·B²/6.
	EccentricityAxisMapping = ModulusMapping{Name: "eccentricity", ForB: ModulusSB, ForL: ModulusSL}

	// DefaultModulusMapping is the mapping used by Compute
	DefaultModulusMapping = BendingAxisMapping
)

// ParseModulusMapping returns the mapping named "bending" or "eccentricity"
func ParseModulusMapping(name string) (ModulusMapping, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BendingAxisMapping.Name:
		return BendingAxisMapping, nil
	case EccentricityAxisMapping.Name:
		return EccentricityAxisMapping, nil
	}
	return ModulusMapping{}, &ValidationError{msg: fmt.Sprintf("unknown modulus mapping %q (expected bending or eccentricity)", name)}
}
