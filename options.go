package co2explorer

import "github.com/aouyang1/go-co2explorer/dataset"

const (
	DefaultReferenceYear = 1958
	DefaultTargetYear    = 2030
)

// Options configures where the datasets come from and the fixed points of the prediction.
type Options struct {
	CO2Path            string
	TemperaturePath    string
	CO2Options         *dataset.CO2Options
	TemperatureOptions *dataset.TemperatureOptions

	// ReferenceYear is the year the user's intercept applies to when predicting.
	ReferenceYear int
	TargetYear    int

	Zones []Zone
}

// NewDefaultOptions returns the options for the Scripps and GISTEMP files in the working directory.
func NewDefaultOptions() *Options {
	return &Options{
		CO2Path:            "monthly_in_situ_co2_mlo.csv",
		TemperaturePath:    "NH.Ts+dSST.csv",
		CO2Options:         dataset.NewDefaultCO2Options(),
		TemperatureOptions: dataset.NewDefaultTemperatureOptions(),
		ReferenceYear:      DefaultReferenceYear,
		TargetYear:         DefaultTargetYear,
		Zones:              DefaultZones(),
	}
}
