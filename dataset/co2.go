package dataset

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aouyang1/go-co2explorer/timedataset"
)

const (
	ColYear                  = "year"
	ColMonth                 = "month"
	ColDateInt               = "date_int"
	ColDate                  = "date"
	ColRaw                   = "raw_co2"
	ColSeasonallyAdjusted    = "seasonally_adjusted"
	ColFit                   = "fit"
	ColSeasonallyAdjustedFit = "seasonally_adjusted_fit"
	ColFilled                = "co2_filled"
	ColSeasonallyAdjFilled   = "seasonally_adjusted_filled"
)

// CO2Options describes the layout of the monthly CO2 source file.
type CO2Options struct {
	SkipLines []LineRange
	Columns   []string
	NaNValues []string
}

// NewDefaultCO2Options returns the layout of the Scripps monthly_in_situ_co2_mlo.csv file.
func NewDefaultCO2Options() *CO2Options {
	return &CO2Options{
		SkipLines: []LineRange{{Start: 0, End: 56}},
		Columns: []string{
			ColYear, ColMonth, ColDateInt, ColDate,
			ColRaw, ColSeasonallyAdjusted, ColFit, ColSeasonallyAdjustedFit,
			ColFilled, ColSeasonallyAdjFilled,
		},
		NaNValues: []string{"-99.99"},
	}
}

// CO2Observation is a single monthly CO2 measurement in ppm.
type CO2Observation struct {
	Year                  int       `json:"year"`
	Month                 int       `json:"month"`
	Date                  time.Time `json:"date"`
	DecimalDate           float64   `json:"decimal_date"`
	Raw                   float64   `json:"raw_co2"`
	SeasonallyAdjusted    float64   `json:"seasonally_adjusted"`
	Fit                   float64   `json:"fit"`
	SeasonallyAdjustedFit float64   `json:"seasonally_adjusted_fit"`
}

// CO2Table is a chronologically ordered set of complete CO2 observations.
type CO2Table []CO2Observation

// Dates returns the fractional year of every observation.
func (c CO2Table) Dates() []float64 {
	x := make([]float64, len(c))
	for i, obs := range c {
		x[i] = obs.DecimalDate
	}
	return x
}

// Column projects a single measurement field out of the table.
func (c CO2Table) Column(field func(CO2Observation) float64) []float64 {
	y := make([]float64, len(c))
	for i, obs := range c {
		y[i] = field(obs)
	}
	return y
}

// LoadCO2 opens and parses the CO2 file at path. A nil opt uses the default layout.
func LoadCO2(path string, opt *CO2Options) (CO2Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open co2 data, %w", err)
	}
	defer file.Close()

	return ReadCO2(file, opt)
}

// ReadCO2 parses CO2 observations, dropping every row with a missing measurement.
func ReadCO2(r io.Reader, opt *CO2Options) (CO2Table, error) {
	if opt == nil {
		opt = NewDefaultCO2Options()
	}

	records, err := readRecords(r, opt.SkipLines, len(opt.Columns))
	if err != nil {
		return nil, fmt.Errorf("unable to read co2 records, %w", err)
	}

	df, err := loadFrame(records, opt.Columns, opt.NaNValues, ColYear, ColMonth)
	if err != nil {
		return nil, err
	}

	df, err = dropMissing(df, ColRaw, ColSeasonallyAdjusted, ColFit, ColSeasonallyAdjustedFit)
	if err != nil {
		return nil, err
	}
	if df.Nrow() == 0 {
		return CO2Table{}, nil
	}

	years, err := intCol(df, ColYear)
	if err != nil {
		return nil, err
	}
	months, err := intCol(df, ColMonth)
	if err != nil {
		return nil, err
	}

	floatCols := []string{ColDate, ColRaw, ColSeasonallyAdjusted, ColFit, ColSeasonallyAdjustedFit}
	vals := make(map[string][]float64, len(floatCols))
	for _, col := range floatCols {
		v, err := floatCol(df, col)
		if err != nil {
			return nil, err
		}
		vals[col] = v
	}

	table := make(CO2Table, 0, len(years))
	for i := 0; i < len(years); i++ {
		if months[i] < 1 || months[i] > 12 {
			return nil, fmt.Errorf("row %d has month %d, %w", i, months[i], ErrInvalidMonth)
		}
		table = append(table, CO2Observation{
			Year:                  years[i],
			Month:                 months[i],
			Date:                  timedataset.ObservationDate(years[i], months[i]),
			DecimalDate:           vals[ColDate][i],
			Raw:                   vals[ColRaw][i],
			SeasonallyAdjusted:    vals[ColSeasonallyAdjusted][i],
			Fit:                   vals[ColFit][i],
			SeasonallyAdjustedFit: vals[ColSeasonallyAdjustedFit][i],
		})
	}
	return table, nil
}
