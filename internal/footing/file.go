package footing

import (
	"encoding/json"
	"os"

	"github.com/alexiusacademia/gofdn/internal/units"
)

// caseFile is the on-disk layout of a footing case. Numeric values may be
// given as numbers or as text; unparsable text reads as zero.
type caseFile struct {
	Name     string `json:"name"`
	Geometry struct {
		Width      units.Lenient  `json:"width"`
		Length     units.Lenient  `json:"length"`
		Thickness  units.Lenient  `json:"thickness"`
		UnitWeight *units.Lenient `json:"unit_weight"`
	} `json:"geometry"`
	PointLoad struct {
		Kips units.Lenient `json:"kips"`
		EB   units.Lenient `json:"e_b"`
		EL   units.Lenient `json:"e_l"`
	} `json:"point_load"`
	Moment struct {
		KipFt units.Lenient `json:"kipft"`
	} `json:"moment"`
	Axis string `json:"axis"`
}

// Case is a named footing input loaded from a file
type Case struct {
	Name  string
	Input Input
}

// LoadFromFile loads a footing case from a JSON file
func LoadFromFile(filepath string) (*Case, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return ParseCase(data)
}

// ParseCase decodes a footing case. A missing unit weight defaults to
// DefaultUnitWeight and the inactive eccentricity is cleared.
func ParseCase(data []byte) (*Case, error) {
	var raw caseFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	axis, err := ParseAxis(raw.Axis)
	if err != nil {
		return nil, err
	}

	gamma := DefaultUnitWeight
	if raw.Geometry.UnitWeight != nil {
		gamma = raw.Geometry.UnitWeight.Float()
	}

	in := Input{
		Geometry: Geometry{
			Width:      raw.Geometry.Width.Float(),
			Length:     raw.Geometry.Length.Float(),
			Thickness:  raw.Geometry.Thickness.Float(),
			UnitWeight: gamma,
		},
		Load: PointLoad{
			Magnitude: raw.PointLoad.Kips.Float(),
			EB:        raw.PointLoad.EB.Float(),
			EL:        raw.PointLoad.EL.Float(),
		},
		Moment: AppliedMoment{Magnitude: raw.Moment.KipFt.Float()},
	}.WithAxis(axis)

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Case{Name: raw.Name, Input: in}, nil
}
