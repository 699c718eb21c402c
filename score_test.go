package co2explorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  *Scores
		rSquared  *float64
		err       error
	}{
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
		"empty": {
			err: ErrNoValues,
		},
		"exact": {
			predicted: []float64{315, 316},
			actual:    []float64{315, 316},
			expected:  &Scores{},
			rSquared:  floatPtr(1),
		},
		"all missing": {
			predicted: []float64{math.NaN(), 316},
			actual:    []float64{315, math.NaN()},
			err:       ErrNoValues,
		},
		"zero actual skipped": {
			predicted: []float64{1, 3},
			actual:    []float64{0, 2},
			expected:  &Scores{MSE: (1.0 + 1.0) / 2.0, MAPE: 0.5},
			rSquared:  floatPtr(0),
		},
		"flat measurements": {
			predicted: []float64{314, 316},
			actual:    []float64{315, 315},
			expected:  &Scores{MSE: 1, MAPE: 1.0 / 315.0},
		},
		"offset": {
			predicted: []float64{1, 2, math.NaN(), 6},
			actual:    []float64{2, 4, 5, 4},
			expected:  &Scores{MSE: (1.0 + 4.0 + 4.0) / 3.0, MAPE: (0.5 + 0.5 + 0.5) / 3.0},
			rSquared:  floatPtr(1 - 9.0/(8.0/3.0)),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			scores, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected.MSE, scores.MSE, 1e-12)
			assert.InDelta(t, td.expected.MAPE, scores.MAPE, 1e-12)
			if td.rSquared == nil {
				assert.Nil(t, scores.RSquared)
				return
			}
			require.NotNil(t, scores.RSquared)
			assert.InDelta(t, *td.rSquared, *scores.RSquared, 1e-9)
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
