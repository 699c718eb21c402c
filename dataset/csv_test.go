package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	input := strings.Join([]string{
		`"header, one"`,
		`"header two`,
		"a, b",
		" 1,  2",
		`"second block"`,
		"x,y,z",
		"3,4 ",
		"5,6",
	}, "\n")

	testData := map[string]struct {
		skip     []LineRange
		columns  int
		expected [][]string
		err      error
	}{
		"leading and mid file ranges": {
			skip:     []LineRange{{Start: 0, End: 2}, {Start: 4, End: 6}},
			columns:  2,
			expected: [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}, {"5", "6"}},
		},
		"ranges out of order": {
			skip:     []LineRange{{Start: 4, End: 6}, {Start: 0, End: 2}},
			expected: [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}, {"5", "6"}},
		},
		"overlapping ranges": {
			skip:     []LineRange{{Start: 0, End: 5}, {Start: 4, End: 7}},
			expected: [][]string{{"5", "6"}},
		},
		"range past end of input": {
			skip:     []LineRange{{Start: 0, End: 2}, {Start: 4, End: 100}},
			expected: [][]string{{"a", "b"}, {"1", "2"}},
		},
		"second block kept": {
			skip:    []LineRange{{Start: 0, End: 2}},
			columns: 2,
			err:     ErrColumnCount,
		},
		"everything skipped": {
			skip: []LineRange{{Start: 0, End: 8}},
			err:  ErrNoRecords,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			records, err := readRecords(strings.NewReader(input), td.skip, td.columns)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, records)
		})
	}
}
