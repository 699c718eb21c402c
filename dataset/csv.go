package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrNoRecords    = errors.New("no records after skipping lines")
	ErrColumnCount  = errors.New("unexpected column count")
	ErrMissingCol   = errors.New("missing column")
	ErrInvalidMonth = errors.New("month out of range")
)

// LineRange is a half open range [Start, End) of zero based line numbers.
type LineRange struct {
	Start int
	End   int
}

func (l LineRange) contains(line int) bool {
	return line >= l.Start && line < l.End
}

func skipped(line int, ranges []LineRange) bool {
	for _, r := range ranges {
		if r.contains(line) {
			return true
		}
	}
	return false
}

// readRecords drops the lines falling in any skip range and parses the rest as comma
// separated records with surrounding whitespace trimmed. A columns value of 0 requires
// every record to have as many fields as the first one.
func readRecords(r io.Reader, skip []LineRange, columns int) ([][]string, error) {
	var kept strings.Builder
	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		if skipped(line, skip) {
			continue
		}
		kept.WriteString(scanner.Text())
		kept.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to scan lines, %w", err)
	}

	reader := csv.NewReader(strings.NewReader(kept.String()))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = columns

	records, err := reader.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w, %w", ErrColumnCount, err)
		}
		return nil, fmt.Errorf("unable to parse records, %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	for _, record := range records {
		for j := range record {
			record[j] = strings.TrimSpace(record[j])
		}
	}
	return records, nil
}

// loadFrame builds a float typed dataframe from records whose first row is a header.
// Any column listed in intCols is parsed as an integer instead.
func loadFrame(records [][]string, names []string, nanValues []string, intCols ...string) (dataframe.DataFrame, error) {
	types := make(map[string]series.Type, len(intCols))
	for _, col := range intCols {
		types[col] = series.Int
	}

	opts := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.NaNValues(nanValues),
		dataframe.WithTypes(types),
	}
	if names != nil {
		opts = append(opts, dataframe.Names(names...))
	}

	df := dataframe.LoadRecords(records, opts...)
	if df.Err != nil {
		return df, fmt.Errorf("unable to load dataframe, %w", df.Err)
	}
	return df, nil
}

// dropMissing removes every row with a missing value in any of the given columns.
func dropMissing(df dataframe.DataFrame, cols ...string) (dataframe.DataFrame, error) {
	keep := make([]bool, df.Nrow())
	for i := range keep {
		keep[i] = true
	}

	for _, col := range cols {
		s := df.Col(col)
		if s.Err != nil {
			return df, fmt.Errorf("%s, %w", col, ErrMissingCol)
		}
		for i, isNaN := range s.IsNaN() {
			if isNaN {
				keep[i] = false
			}
		}
	}

	idx := make([]int, 0, len(keep))
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	if len(idx) == len(keep) {
		return df, nil
	}
	if len(idx) == 0 {
		return dataframe.DataFrame{}, nil
	}

	sub := df.Subset(idx)
	if sub.Err != nil {
		return df, fmt.Errorf("unable to subset dataframe, %w", sub.Err)
	}
	return sub, nil
}

func floatCol(df dataframe.DataFrame, col string) ([]float64, error) {
	s := df.Col(col)
	if s.Err != nil {
		return nil, fmt.Errorf("%s, %w", col, ErrMissingCol)
	}
	return s.Float(), nil
}

func intCol(df dataframe.DataFrame, col string) ([]int, error) {
	s := df.Col(col)
	if s.Err != nil {
		return nil, fmt.Errorf("%s, %w", col, ErrMissingCol)
	}
	vals, err := s.Int()
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s column, %w", col, err)
	}
	return vals, nil
}
