// Package linearmodel evaluates user supplied straight lines. Nothing here estimates
// coefficients from data; slope and intercept always come from the caller.
package linearmodel

import "gonum.org/v1/gonum/floats"

// Predict returns slope*(target-reference) + intercept.
func Predict(slope, intercept, reference, target float64) float64 {
	return slope*(target-reference) + intercept
}

// Line is y = Slope*(x-Origin) + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Origin    float64 `json:"origin"`
}

// Eval evaluates the line at x.
func (l Line) Eval(x float64) float64 {
	return Predict(l.Slope, l.Intercept, l.Origin, x)
}

// Series evaluates the line at every point in x.
func (l Line) Series(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	floats.AddConst(-l.Origin, y)
	floats.Scale(l.Slope, y)
	floats.AddConst(l.Intercept, y)
	return y
}

// AnchoredLine returns a line whose origin is the smallest value in x, so the line
// passes through the intercept at the left edge of the data. ok is false when x is
// empty since there is nothing to anchor to.
func AnchoredLine(slope, intercept float64, x []float64) (line Line, ok bool) {
	if len(x) == 0 {
		return Line{}, false
	}
	return Line{
		Slope:     slope,
		Intercept: intercept,
		Origin:    floats.Min(x),
	}, true
}
