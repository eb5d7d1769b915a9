package asce

import (
	"fmt"
	"math"
)

// LoadCombination represents an allowable stress design load combination
// Based on ASCE 7-16 Section 2.4.1 - Basic Combinations for Allowable Stress Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // governing of Lr, S or R
	Snow       float64 // S - Snow load alone
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
}

// ASCE 7-16 Section 2.4.1 - Basic Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "D",
		Dead:        1.0,
	},
	{
		ID:          "2",
		Description: "D + L",
		Dead:        1.0,
		Live:        1.0,
	},
	{
		ID:          "3",
		Description: "D + (Lr or S or R)",
		Dead:        1.0,
		Roof:        1.0,
	},
	{
		ID:          "4",
		Description: "D + 0.75L + 0.75(Lr or S or R)",
		Dead:        1.0,
		Live:        0.75,
		Roof:        0.75,
	},
	{
		ID:          "5a",
		Description: "D + 0.6W",
		Dead:        1.0,
		Wind:        0.6,
	},
	{
		ID:          "5b",
		Description: "D + 0.7E",
		Dead:        1.0,
		Earthquake:  0.7,
	},
	{
		ID:          "6a",
		Description: "D + 0.75L + 0.75(0.6W) + 0.75(Lr or S or R)",
		Dead:        1.0,
		Live:        0.75,
		Wind:        0.45,
		Roof:        0.75,
	},
	{
		ID:          "6b",
		Description: "D + 0.75L + 0.75(0.7E) + 0.75S",
		Dead:        1.0,
		Live:        0.75,
		Earthquake:  0.525,
		Snow:        0.75,
	},
	{
		ID:          "7",
		Description: "0.6D + 0.6W",
		Dead:        0.6,
		Wind:        0.6,
	},
	{
		ID:          "8",
		Description: "0.6D + 0.7E",
		Dead:        0.6,
		Earthquake:  0.7,
	},
}

// GravityCombinations are the combinations without lateral loads
var GravityCombinations = LoadCombinations[:4]

// Effect is a column reaction on the footing
type Effect struct {
	Axial  float64 `json:"axial"`  // kips
	Moment float64 `json:"moment"` // kip-ft about the active axis
}

func (e Effect) add(o Effect, factor float64) Effect {
	return Effect{Axial: e.Axial + factor*o.Axial, Moment: e.Moment + factor*o.Moment}
}

// ServiceLoads holds unfactored reactions from different load types
type ServiceLoads struct {
	Dead       Effect `json:"dead"`
	Live       Effect `json:"live"`
	Roof       Effect `json:"roof"`
	Snow       Effect `json:"snow"`
	Rain       Effect `json:"rain"`
	Wind       Effect `json:"wind"`
	Earthquake Effect `json:"earthquake"`
}

// RoofEffect returns the governing of the roof live, snow and rain
// reactions, taken as the one with the largest axial force.
func (l ServiceLoads) RoofEffect() Effect {
	governing := l.Roof
	for _, e := range []Effect{l.Snow, l.Rain} {
		if math.Abs(e.Axial) > math.Abs(governing.Axial) {
			governing = e
		}
	}
	return governing
}

// Apply calculates the combined reaction for a given load combination
func (lc LoadCombination) Apply(loads ServiceLoads) Effect {
	var e Effect
	e = e.add(loads.Dead, lc.Dead)
	e = e.add(loads.Live, lc.Live)
	e = e.add(loads.RoofEffect(), lc.Roof)
	e = e.add(loads.Snow, lc.Snow)
	e = e.add(loads.Wind, lc.Wind)
	e = e.add(loads.Earthquake, lc.Earthquake)
	return e
}

// Find returns the combination with the given ID
func Find(id string, combinations []LoadCombination) (LoadCombination, error) {
	for _, combo := range combinations {
		if combo.ID == id {
			return combo, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}

// Outcome is the result of evaluating one combination
type Outcome struct {
	Combination LoadCombination
	Effect      Effect
	Value       float64
	Err         error
}

// Evaluate applies every combination and scores the combined reaction with
// eval. Outcomes keep the order of combinations.
func Evaluate(loads ServiceLoads, combinations []LoadCombination, eval func(Effect) (float64, error)) []Outcome {
	outcomes := make([]Outcome, 0, len(combinations))
	for _, combo := range combinations {
		e := combo.Apply(loads)
		v, err := eval(e)
		outcomes = append(outcomes, Outcome{Combination: combo, Effect: e, Value: v, Err: err})
	}
	return outcomes
}

// Governing finds the outcome with the maximum value among the outcomes
// that evaluated without error
func Governing(outcomes []Outcome) (Outcome, bool) {
	var governing Outcome
	found := false
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		if !found || o.Value > governing.Value {
			governing, found = o, true
		}
	}
	return governing, found
}
