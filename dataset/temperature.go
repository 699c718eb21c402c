package dataset

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/aouyang1/go-co2explorer/timedataset"
	"github.com/go-gota/gota/dataframe"
)

const ColTempYear = "Year"

// TemperatureOptions describes the layout of the wide temperature anomaly file.
type TemperatureOptions struct {
	SkipLines  []LineRange
	YearColumn string
	NaNValues  []string
}

// NewDefaultTemperatureOptions returns the layout of the GISTEMP NH.Ts+dSST.csv file,
// keeping the block of years between its header and trailing sections.
func NewDefaultTemperatureOptions() *TemperatureOptions {
	return &TemperatureOptions{
		SkipLines: []LineRange{
			{Start: 0, End: 23},
			{Start: 44, End: 66},
		},
		YearColumn: ColTempYear,
		NaNValues:  []string{"*******", "****", "***"},
	}
}

// TemperatureObservation is the anomaly in degrees C for one month. A missing anomaly is NaN.
type TemperatureObservation struct {
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Date    time.Time `json:"date"`
	Anomaly float64   `json:"anomaly"`
}

// TemperatureTable is a long format anomaly table ordered by year then month.
type TemperatureTable []TemperatureObservation

// TimeDataset returns the anomalies as a time series.
func (tt TemperatureTable) TimeDataset() (*timedataset.TimeDataset, error) {
	t := make([]time.Time, len(tt))
	y := make([]float64, len(tt))
	for i, obs := range tt {
		t[i] = obs.Date
		y[i] = obs.Anomaly
	}
	return timedataset.NewUnivariateDataset(t, y)
}

// LoadTemperature opens and parses the temperature file at path. A nil opt uses the
// default layout.
func LoadTemperature(path string, opt *TemperatureOptions) (TemperatureTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open temperature data, %w", err)
	}
	defer file.Close()

	return ReadTemperature(file, opt)
}

// ReadTemperature parses the wide year by month layout and melts it into one row per month.
func ReadTemperature(r io.Reader, opt *TemperatureOptions) (TemperatureTable, error) {
	if opt == nil {
		opt = NewDefaultTemperatureOptions()
	}

	records, err := readRecords(r, opt.SkipLines, 0)
	if err != nil {
		return nil, fmt.Errorf("unable to read temperature records, %w", err)
	}

	df, err := loadFrame(records, nil, opt.NaNValues, opt.YearColumn)
	if err != nil {
		return nil, err
	}
	return Melt(df, opt.YearColumn)
}

// Melt reshapes a frame with a year column and one column per month abbreviation into
// long format. Rows are stable sorted by year so each year lists Jan through Dec.
func Melt(df dataframe.DataFrame, yearCol string) (TemperatureTable, error) {
	years, err := intCol(df, yearCol)
	if err != nil {
		return nil, err
	}

	table := make(TemperatureTable, 0, len(years)*len(MonthAbbrevs))
	for _, abbrev := range MonthAbbrevs {
		anomalies, err := floatCol(df, abbrev)
		if err != nil {
			return nil, err
		}
		month, _ := MonthFromAbbrev(abbrev)
		for i, year := range years {
			table = append(table, TemperatureObservation{
				Year:    year,
				Month:   month,
				Date:    timedataset.ObservationDate(year, month),
				Anomaly: anomalies[i],
			})
		}
	}

	slices.SortStableFunc(table, func(a, b TemperatureObservation) int {
		return cmp.Compare(a.Year, b.Year)
	})
	return table, nil
}
