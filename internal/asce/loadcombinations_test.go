package asce

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	loads := ServiceLoads{
		Dead:       Effect{Axial: 20, Moment: 2},
		Live:       Effect{Axial: 10},
		Roof:       Effect{Axial: 2},
		Snow:       Effect{Axial: 4},
		Wind:       Effect{Axial: -5, Moment: 15},
		Earthquake: Effect{Moment: 10},
	}

	tests := []struct {
		id       string
		expected Effect
	}{
		{"1", Effect{Axial: 20, Moment: 2}},
		{"2", Effect{Axial: 30, Moment: 2}},
		{"3", Effect{Axial: 24, Moment: 2}},
		{"4", Effect{Axial: 20 + 7.5 + 3, Moment: 2}},
		{"5a", Effect{Axial: 17, Moment: 11}},
		{"6b", Effect{Axial: 20 + 7.5 + 3, Moment: 2 + 5.25}},
		{"7", Effect{Axial: 12 - 3, Moment: 1.2 + 9}},
		{"8", Effect{Axial: 12, Moment: 1.2 + 7}},
	}
	for _, tt := range tests {
		combo, err := Find(tt.id, LoadCombinations)
		require.NoError(t, err)
		got := combo.Apply(loads)
		assert.InDelta(t, tt.expected.Axial, got.Axial, 1e-9, combo.Description)
		assert.InDelta(t, tt.expected.Moment, got.Moment, 1e-9, combo.Description)
	}
}

func TestRoofEffect(t *testing.T) {
	loads := ServiceLoads{Roof: Effect{Axial: 3}, Snow: Effect{Axial: 2}, Rain: Effect{Axial: -4, Moment: 1}}
	assert.Equal(t, Effect{Axial: -4, Moment: 1}, loads.RoofEffect())

	assert.Equal(t, Effect{Axial: 3}, ServiceLoads{Roof: Effect{Axial: 3}}.RoofEffect())
}

func TestFindUnknown(t *testing.T) {
	_, err := Find("9", LoadCombinations)
	assert.Error(t, err)
}

func TestGoverning(t *testing.T) {
	loads := ServiceLoads{Dead: Effect{Axial: 10}, Live: Effect{Axial: 5}, Wind: Effect{Axial: -30}}
	errUplift := errors.New("uplift")
	outcomes := Evaluate(loads, LoadCombinations, func(e Effect) (float64, error) {
		if e.Axial <= 0 {
			return 0, errUplift
		}
		return e.Axial, nil
	})
	require.Len(t, outcomes, len(LoadCombinations))
	assert.Equal(t, "1", outcomes[0].Combination.ID)

	governing, ok := Governing(outcomes)
	require.True(t, ok)
	assert.Equal(t, "2", governing.Combination.ID)
	assert.Equal(t, 15.0, governing.Value)

	// 0.6D + 0.6W is in net uplift
	combo7 := outcomes[len(outcomes)-2]
	assert.Equal(t, "7", combo7.Combination.ID)
	assert.ErrorIs(t, combo7.Err, errUplift)
}

func TestGoverningEmpty(t *testing.T) {
	_, ok := Governing(nil)
	assert.False(t, ok)

	_, ok = Governing([]Outcome{{Err: errors.New("x")}})
	assert.False(t, ok)
}

func TestGravityCombinations(t *testing.T) {
	for _, combo := range GravityCombinations {
		assert.Zero(t, combo.Wind, combo.ID)
		assert.Zero(t, combo.Earthquake, combo.ID)
	}
}
