package co2explorer

import (
	"github.com/aouyang1/go-co2explorer/dataset"
	"github.com/aouyang1/go-co2explorer/linearmodel"
)

// Kind tells a renderer how to draw a series.
type Kind string

const (
	KindMarkers Kind = "markers"
	KindLine    Kind = "lines"
	// KindAnomaly is a marker series in degrees C rather than ppm.
	KindAnomaly Kind = "anomaly"
)

const (
	LabelRaw                   = "CO2 - raw data"
	LabelSeasonallyAdjusted    = "CO2 - seasonally adjusted"
	LabelFit                   = "CO2 - fit"
	LabelSeasonallyAdjustedFit = "CO2 - seasonally adjusted fit"
	LabelLinearFit             = "linear fit"
	LabelTemperature           = "NH temperature anomaly"
)

// Series is a labeled set of points on the fractional year axis.
type Series struct {
	Label string    `json:"label"`
	Kind  Kind      `json:"kind"`
	Color string    `json:"color"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Prediction is the value of the user's line at the target year.
type Prediction struct {
	TargetYear int     `json:"target_year"`
	Value      float64 `json:"value"`
}

// View is everything a renderer needs to draw one state of the dashboard.
type View struct {
	Title      string     `json:"title"`
	Prediction Prediction `json:"prediction"`
	Series     []Series   `json:"series"`
	XRange     *Range     `json:"x_range,omitempty"`
	YRange     *Range     `json:"y_range,omitempty"`

	Line   *linearmodel.Line `json:"line,omitempty"`
	Scores *Scores           `json:"scores,omitempty"`

	// Filtered subsets the series were projected from. With no month filter these
	// share storage with the Explorer's tables and must not be modified.
	CO2         dataset.CO2Table         `json:"-"`
	Temperature dataset.TemperatureTable `json:"-"`
}

// SeriesByLabel returns the series with the given label.
func (v *View) SeriesByLabel(label string) (Series, bool) {
	for _, s := range v.Series {
		if s.Label == label {
			return s, true
		}
	}
	return Series{}, false
}
