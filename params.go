package co2explorer

import (
	"slices"
	"strconv"
	"strings"
)

// Signal names one of the measurement columns of the CO2 table.
type Signal string

const (
	SignalRaw                   Signal = "raw"
	SignalSeasonallyAdjusted    Signal = "adj"
	SignalFit                   Signal = "fit"
	SignalSeasonallyAdjustedFit Signal = "adj_fit"
)

// AllSignals lists the signals in the order their series are emitted.
var AllSignals = []Signal{SignalRaw, SignalSeasonallyAdjusted, SignalFit, SignalSeasonallyAdjustedFit}

const (
	// MonthAll disables month filtering.
	MonthAll = 0
	// MonthInvalid is what ParseMonth returns for input it cannot read. It matches no rows.
	MonthInvalid = -1
)

const (
	DefaultSlope     = 2.0
	DefaultIntercept = 312.0
	DefaultZone      = ZoneAllData
)

// Bounds and steps of the dashboard's slope and intercept sliders.
const (
	SlopeMin      = 0.0
	SlopeMax      = 3.0
	SlopeStep     = 0.02
	InterceptMin  = 220.0
	InterceptMax  = 320.0
	InterceptStep = 0.2
)

// Params are the user controlled inputs of a single view.
type Params struct {
	Slope     float64
	Intercept float64
	Signals   []Signal

	// Zone names an axis preset. DateRange, when set, takes precedence and only fixes
	// the x axis.
	Zone      string
	DateRange *Range

	// Month is MonthAll or a calendar month 1..12.
	Month int

	Temperature bool
}

// NewDefaultParams returns the controls' initial state: raw data over all years.
func NewDefaultParams() Params {
	return Params{
		Slope:     DefaultSlope,
		Intercept: DefaultIntercept,
		Signals:   []Signal{SignalRaw},
		Zone:      DefaultZone,
		Month:     MonthAll,
	}
}

// Enabled reports whether sig was requested.
func (p Params) Enabled(sig Signal) bool {
	return slices.Contains(p.Signals, sig)
}

// ParseMonth reads "all" or a month number 1..12. Anything else, including 0, is
// MonthInvalid.
func ParseMonth(s string) int {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return MonthAll
	}
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return MonthInvalid
	}
	return m
}

// ParseSignals reads a comma separated signal list. Unknown names are dropped.
func ParseSignals(s string) []Signal {
	var signals []Signal
	for _, name := range strings.Split(s, ",") {
		sig := Signal(strings.TrimSpace(name))
		if slices.Contains(AllSignals, sig) && !slices.Contains(signals, sig) {
			signals = append(signals, sig)
		}
	}
	return signals
}
