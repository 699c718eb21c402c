package timedataset

import "time"

// ObservationDay is the day of month monthly observations are pinned to.
const ObservationDay = 15

// ObservationDate returns the canonical UTC date for a monthly observation.
func ObservationDate(year, month int) time.Time {
	return time.Date(year, time.Month(month), ObservationDay, 0, 0, 0, 0, time.UTC)
}

// DecimalYear converts a time to a fractional year, e.g. 1958-07-02 is ~1958.5.
func DecimalYear(t time.Time) float64 {
	t = t.UTC()
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return float64(t.Year()) + t.Sub(start).Seconds()/end.Sub(start).Seconds()
}
