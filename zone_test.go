package co2explorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadZones(t *testing.T) {
	input := `
zones:
  - name: decade
    label: 1990s
    x: {min: 1990, max: 2000}
    y: {min: 350, max: 375}
  - name: recent
    label: Since 2010
    x: {min: 2010, max: 2024}
`
	zones, err := LoadZones(strings.NewReader(input))
	require.Nil(t, err)

	expected := []Zone{
		{Name: "decade", Label: "1990s", X: Range{Min: 1990, Max: 2000}, Y: &Range{Min: 350, Max: 375}},
		{Name: "recent", Label: "Since 2010", X: Range{Min: 2010, Max: 2024}},
	}
	assert.Equal(t, expected, zones)

	z, ok := findZone(zones, "recent")
	require.True(t, ok)
	assert.Nil(t, z.Y)
}

func TestLoadZonesErrors(t *testing.T) {
	testData := map[string]struct {
		input string
		err   error
	}{
		"no name": {
			input: "zones:\n  - x: {min: 1, max: 2}\n",
			err:   ErrZoneNoName,
		},
		"duplicate": {
			input: "zones:\n  - name: a\n    x: {min: 1, max: 2}\n  - name: a\n    x: {min: 1, max: 2}\n",
			err:   ErrZoneDuplicate,
		},
		"empty x range": {
			input: "zones:\n  - name: a\n    x: {min: 2, max: 2}\n",
			err:   ErrZoneEmptyRange,
		},
		"inverted y range": {
			input: "zones:\n  - name: a\n    x: {min: 1, max: 2}\n    y: {min: 5, max: 4}\n",
			err:   ErrZoneEmptyRange,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := LoadZones(strings.NewReader(td.input))
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestDefaultZones(t *testing.T) {
	zones := DefaultZones()
	require.Len(t, zones, 3)
	for _, z := range zones {
		assert.True(t, z.X.valid())
		require.NotNil(t, z.Y)
		assert.True(t, z.Y.valid())
	}
}
