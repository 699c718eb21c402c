package http

import (
	"net/url"
	"testing"

	"github.com/aouyang1/go-co2explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	testData := map[string]struct {
		query     string
		slope     float64
		intercept float64
		signals   []co2explorer.Signal
		zone      string
		month     int
		dateRange *co2explorer.Range
		temp      bool
	}{
		"defaults": {
			query:     "",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"negative slope": {
			query:     "slope=-1",
			slope:     co2explorer.SlopeMin,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"huge values": {
			query:     "slope=1e308&intercept=1e308",
			slope:     co2explorer.SlopeMax,
			intercept: co2explorer.InterceptMax,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"tiny intercept": {
			query:     "slope=0.5&intercept=-1e308",
			slope:     0.5,
			intercept: co2explorer.InterceptMin,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"infinite falls back to default": {
			query:     "slope=Inf&intercept=NaN",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"form checklist": {
			query:     "signals=&signals=adj&signals=fit&zone=last5yrs&month=7&temperature=true",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalSeasonallyAdjusted, co2explorer.SignalFit},
			zone:      co2explorer.ZoneLastFiveYears,
			month:     7,
			temp:      true,
		},
		"empty form checklist": {
			query:     "signals=",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"comma list": {
			query:     "signals=raw,adj_fit",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw, co2explorer.SignalSeasonallyAdjustedFit},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
		"month zero": {
			query:     "month=0",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthInvalid,
		},
		"date range": {
			query:     "start=1990.5&end=2000-01-01",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
			dateRange: &co2explorer.Range{Min: 1990.5, Max: 2000},
		},
		"reversed date range": {
			query:     "start=2000&end=1990",
			slope:     co2explorer.DefaultSlope,
			intercept: co2explorer.DefaultIntercept,
			signals:   []co2explorer.Signal{co2explorer.SignalRaw},
			zone:      co2explorer.ZoneAllData,
			month:     co2explorer.MonthAll,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			q, err := url.ParseQuery(td.query)
			require.Nil(t, err)

			p := parseParams(q)
			assert.Equal(t, td.slope, p.Slope)
			assert.Equal(t, td.intercept, p.Intercept)
			assert.Equal(t, td.signals, p.Signals)
			assert.Equal(t, td.zone, p.Zone)
			assert.Equal(t, td.month, p.Month)
			assert.Equal(t, td.dateRange, p.DateRange)
			assert.Equal(t, td.temp, p.Temperature)
		})
	}
}
