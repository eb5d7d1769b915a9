package pier

import (
	"encoding/json"
	"os"

	"github.com/alexiusacademia/gofdn/internal/units"
)

// caseFile is the on-disk layout of a pier case
type caseFile struct {
	Name              string        `json:"name"`
	PointLoad         units.Lenient `json:"point_load"`
	Height            units.Lenient `json:"height"`
	Diameter          units.Lenient `json:"diameter"`
	AllowablePressure units.Lenient `json:"allowable_pressure"`
	MaxPressure       units.Lenient `json:"max_pressure"`
	Constrained       bool          `json:"constrained"`
	DepthLimitation   bool          `json:"depth_limitation"`
}

// Case is a named pier input loaded from a file
type Case struct {
	Name  string
	Input Input
}

// LoadFromFile loads a pier case from a JSON file
func LoadFromFile(filepath string) (*Case, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return ParseCase(data)
}

// ParseCase decodes a pier case. Numeric values may be numbers or text.
func ParseCase(data []byte) (*Case, error) {
	var raw caseFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	in := Input{
		PointLoad:         raw.PointLoad.Float(),
		Height:            raw.Height.Float(),
		Diameter:          raw.Diameter.Float(),
		AllowablePressure: raw.AllowablePressure.Float(),
		MaxPressure:       raw.MaxPressure.Float(),
		Constrained:       raw.Constrained,
		DepthLimitation:   raw.DepthLimitation,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Case{Name: raw.Name, Input: in}, nil
}
