package co2explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	testData := map[string]struct {
		input    string
		expected int
	}{
		"empty":         {input: "", expected: MonthAll},
		"all":           {input: "all", expected: MonthAll},
		"all caps":      {input: " ALL ", expected: MonthAll},
		"march":         {input: "3", expected: 3},
		"december":      {input: "12", expected: 12},
		"leading zero":  {input: "03", expected: 3},
		"zero":          {input: "0", expected: MonthInvalid},
		"double zero":   {input: "00", expected: MonthInvalid},
		"negative zero": {input: "-0", expected: MonthInvalid},
		"negative":      {input: "-1", expected: MonthInvalid},
		"out of range":  {input: "13", expected: MonthInvalid},
		"garbage":       {input: "march", expected: MonthInvalid},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, ParseMonth(td.input))
		})
	}
}

func TestParseSignals(t *testing.T) {
	testData := map[string]struct {
		input    string
		expected []Signal
	}{
		"empty":   {input: "", expected: nil},
		"single":  {input: "raw", expected: []Signal{SignalRaw}},
		"several": {input: "adj_fit, raw,fit", expected: []Signal{SignalSeasonallyAdjustedFit, SignalRaw, SignalFit}},
		"dedup and unknown": {
			input:    "adj,adj,co2",
			expected: []Signal{SignalSeasonallyAdjusted},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, ParseSignals(td.input))
		})
	}
}

func TestNewDefaultParams(t *testing.T) {
	p := NewDefaultParams()
	assert.Equal(t, 2.0, p.Slope)
	assert.Equal(t, 312.0, p.Intercept)
	assert.True(t, p.Enabled(SignalRaw))
	assert.False(t, p.Enabled(SignalFit))
	assert.Equal(t, ZoneAllData, p.Zone)
	assert.Equal(t, MonthAll, p.Month)
}
