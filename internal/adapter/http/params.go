package http

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-co2explorer"
	"github.com/aouyang1/go-co2explorer/timedataset"
)

// parseParams maps query parameters onto view parameters. Anything unreadable falls back to
// the default control state so a bad link still renders a chart.
func parseParams(q url.Values) co2explorer.Params {
	p := co2explorer.NewDefaultParams()

	p.Slope = clamp(
		parseFloat(q.Get("slope"), co2explorer.DefaultSlope),
		co2explorer.SlopeMin, co2explorer.SlopeMax,
	)
	p.Intercept = clamp(
		parseFloat(q.Get("intercept"), co2explorer.DefaultIntercept),
		co2explorer.InterceptMin, co2explorer.InterceptMax,
	)

	// The dashboard form sends one signals field per checked box plus an empty one, so an
	// empty checklist still overrides the default.
	if q.Has("signals") {
		p.Signals = co2explorer.ParseSignals(strings.Join(q["signals"], ","))
	}
	if zone := q.Get("zone"); zone != "" {
		p.Zone = zone
	}
	p.Month = co2explorer.ParseMonth(q.Get("month"))

	start, startOK := parseYear(q.Get("start"))
	end, endOK := parseYear(q.Get("end"))
	if startOK && endOK && start < end {
		p.DateRange = &co2explorer.Range{Min: start, Max: end}
	}

	if temp, err := strconv.ParseBool(q.Get("temperature")); err == nil {
		p.Temperature = temp
	}
	return p
}

// clamp keeps the line within the slider bounds so the prediction stays finite.
func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func parseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// parseYear accepts a fractional year such as 1990.5 or a date such as 1990-07-02.
func parseYear(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v := parseFloat(s, math.NaN()); !math.IsNaN(v) {
		return v, true
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, false
	}
	return timedataset.DecimalYear(t), true
}
