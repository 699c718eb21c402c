// Package co2explorer lets a user hold a hand tuned straight line up against the Mauna Loa
// CO2 record, optionally next to Northern Hemisphere temperature anomalies, and see what the
// line predicts for a future year.
package co2explorer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aouyang1/go-co2explorer/dataset"
	"github.com/aouyang1/go-co2explorer/linearmodel"
)

var (
	ErrNoCO2Data = errors.New("no co2 observations loaded")
	ErrNoZones   = errors.New("no zones configured")
)

type signalColumn struct {
	label   string
	control string
	color   string
	field   func(dataset.CO2Observation) float64
}

var signalColumns = map[Signal]signalColumn{
	SignalRaw: {
		label:   LabelRaw,
		control: "Raw data",
		color:   "#DC143C",
		field:   func(o dataset.CO2Observation) float64 { return o.Raw },
	},
	SignalSeasonallyAdjusted: {
		label:   LabelSeasonallyAdjusted,
		control: "Seasonally adjusted data",
		color:   "#DA70D6",
		field:   func(o dataset.CO2Observation) float64 { return o.SeasonallyAdjusted },
	},
	SignalFit: {
		label:   LabelFit,
		control: "Fit",
		color:   "#006400",
		field:   func(o dataset.CO2Observation) float64 { return o.Fit },
	},
	SignalSeasonallyAdjustedFit: {
		label:   LabelSeasonallyAdjustedFit,
		control: "Seasonally adjusted fit",
		color:   "#48D1CC",
		field:   func(o dataset.CO2Observation) float64 { return o.SeasonallyAdjustedFit },
	},
}

const (
	colorLinearFit   = "#F4A460"
	colorTemperature = "#4682B4"
)

// Explorer owns the loaded tables and builds views from them. It is never modified after
// construction so BuildView may be called concurrently.
type Explorer struct {
	opt *Options

	co2         dataset.CO2Table
	temperature dataset.TemperatureTable
}

// New creates an Explorer over already loaded tables. The tables are copied.
func New(co2 dataset.CO2Table, temperature dataset.TemperatureTable, opt *Options) (*Explorer, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if len(opt.Zones) == 0 {
		return nil, ErrNoZones
	}

	return &Explorer{
		opt:         opt,
		co2:         slices.Clone(co2),
		temperature: slices.Clone(temperature),
	}, nil
}

// Load reads both datasets from the paths in opt and creates an Explorer.
func Load(opt *Options) (*Explorer, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	co2, err := dataset.LoadCO2(opt.CO2Path, opt.CO2Options)
	if err != nil {
		return nil, fmt.Errorf("unable to load co2 dataset, %w", err)
	}
	temperature, err := dataset.LoadTemperature(opt.TemperaturePath, opt.TemperatureOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to load temperature dataset, %w", err)
	}
	return New(co2, temperature, opt)
}

// CO2 returns the complete CO2 table. It must not be modified.
func (e *Explorer) CO2() dataset.CO2Table {
	return e.co2
}

// Temperature returns the complete temperature table. It must not be modified.
func (e *Explorer) Temperature() dataset.TemperatureTable {
	return e.temperature
}

// Zones returns the configured axis presets.
func (e *Explorer) Zones() []Zone {
	return e.opt.Zones
}

// CheckReadiness reports an error when there is nothing to plot.
func (e *Explorer) CheckReadiness(_ context.Context) error {
	if len(e.co2) == 0 {
		return ErrNoCO2Data
	}
	return nil
}

// Predict evaluates the user's line at the target year, anchored at the reference year.
func (e *Explorer) Predict(slope, intercept float64) Prediction {
	return Prediction{
		TargetYear: e.opt.TargetYear,
		Value: linearmodel.Predict(
			slope, intercept,
			float64(e.opt.ReferenceYear), float64(e.opt.TargetYear),
		),
	}
}

// BuildView filters both tables by month and projects the requested signals, the user's line
// and the temperature overlay into plottable series. The line is anchored at the earliest date
// of the filtered CO2 rows so changing the month moves its origin. An empty selection, including
// any month outside 1..12, yields no series.
func (e *Explorer) BuildView(p Params) *View {
	pred := e.Predict(p.Slope, p.Intercept)
	v := &View{
		Title:       fmt.Sprintf("Predicted CO2 for %d: %.2f ppm.", pred.TargetYear, pred.Value),
		Prediction:  pred,
		Series:      []Series{},
		CO2:         filterCO2(e.co2, p.Month),
		Temperature: filterTemperature(e.temperature, p.Month),
	}
	v.XRange, v.YRange = e.axisRanges(p)

	if len(v.CO2) > 0 {
		x := v.CO2.Dates()
		for _, sig := range AllSignals {
			if !p.Enabled(sig) {
				continue
			}
			col := signalColumns[sig]
			v.Series = append(v.Series, Series{
				Label: col.label,
				Kind:  KindMarkers,
				Color: col.color,
				X:     x,
				Y:     v.CO2.Column(col.field),
			})
		}

		if line, ok := linearmodel.AnchoredLine(p.Slope, p.Intercept, x); ok {
			y := line.Series(x)
			v.Line = &line
			v.Series = append(v.Series, Series{
				Label: LabelLinearFit,
				Kind:  KindLine,
				Color: colorLinearFit,
				X:     x,
				Y:     y,
			})

			raw := v.CO2.Column(signalColumns[SignalRaw].field)
			if scores, err := NewScores(y, raw); err == nil {
				v.Scores = scores
			}
		}
	}

	if p.Temperature {
		if s, ok := temperatureSeries(v.Temperature); ok {
			v.Series = append(v.Series, s)
		}
	}
	return v
}

func (e *Explorer) axisRanges(p Params) (*Range, *Range) {
	if p.DateRange != nil {
		x := *p.DateRange
		return &x, nil
	}
	z, ok := findZone(e.opt.Zones, p.Zone)
	if !ok {
		return nil, nil
	}
	x := z.X
	var y *Range
	if z.Y != nil {
		yr := *z.Y
		y = &yr
	}
	return &x, y
}

func validMonth(month int) bool {
	return month >= 1 && month <= 12
}

func filterCO2(table dataset.CO2Table, month int) dataset.CO2Table {
	if month == MonthAll {
		return table
	}
	if !validMonth(month) {
		return dataset.CO2Table{}
	}
	out := make(dataset.CO2Table, 0, len(table)/12+1)
	for _, obs := range table {
		if int(obs.Date.Month()) == month {
			out = append(out, obs)
		}
	}
	return out
}

func filterTemperature(table dataset.TemperatureTable, month int) dataset.TemperatureTable {
	if month == MonthAll {
		return table
	}
	if !validMonth(month) {
		return dataset.TemperatureTable{}
	}
	out := make(dataset.TemperatureTable, 0, len(table)/12+1)
	for _, obs := range table {
		if int(obs.Date.Month()) == month {
			out = append(out, obs)
		}
	}
	return out
}

// temperatureSeries drops missing anomalies and places the rest on the fractional year axis.
func temperatureSeries(table dataset.TemperatureTable) (Series, bool) {
	if len(table) == 0 {
		return Series{}, false
	}
	td, err := table.TimeDataset()
	if err != nil {
		return Series{}, false
	}
	td = td.DropNan()
	if len(td.Y) == 0 {
		return Series{}, false
	}
	return Series{
		Label: LabelTemperature,
		Kind:  KindAnomaly,
		Color: colorTemperature,
		X:     td.DecimalT(),
		Y:     td.Y,
	}, true
}
