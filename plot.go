package co2explorer

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func valueAxisRange(r *Range) (lo, hi interface{}) {
	if r == nil {
		return nil, nil
	}
	return r.Min, r.Max
}

// ScatterView generates an echart scatter chart of the ppm series of a view with the
// linear fit overlaid as a line.
func ScatterView(view *View) *charts.Scatter {
	xMin, xMax := valueAxisRange(view.XRange)
	yMin, yMax := valueAxisRange(view.YRange)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: view.Title,
			},
		),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year", Type: "value", Min: xMin, Max: xMax}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ppm", Type: "value", Min: yMin, Max: yMax}),
	)

	for _, s := range view.Series {
		switch s.Kind {
		case KindMarkers:
			data := make([]opts.ScatterData, 0, len(s.X))
			for i := range s.X {
				data = append(data, opts.ScatterData{Value: []interface{}{s.X[i], s.Y[i]}, SymbolSize: 4})
			}
			scatter.AddSeries(s.Label, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		case KindLine:
			scatter.Overlap(lineSeries(s))
		}
	}
	return scatter
}

func lineSeries(s Series) *charts.Line {
	line := charts.NewLine()
	data := make([]opts.LineData, 0, len(s.X))
	for i := range s.X {
		data = append(data, opts.LineData{Value: []interface{}{s.X[i], s.Y[i]}})
	}
	line.AddSeries(s.Label, data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
	)
	return line
}

// ScatterAnomaly generates an echart scatter chart of the temperature anomaly series of a
// view on the same x range as the CO2 chart. It returns nil when the view has no anomalies.
func ScatterAnomaly(view *View) *charts.Scatter {
	var anomalies []Series
	for _, s := range view.Series {
		if s.Kind == KindAnomaly {
			anomalies = append(anomalies, s)
		}
	}
	if len(anomalies) == 0 {
		return nil
	}

	xMin, xMax := valueAxisRange(view.XRange)
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Northern Hemisphere Temperature Anomaly",
			},
		),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year", Type: "value", Min: xMin, Max: xMax}),
		charts.WithYAxisOpts(opts.YAxis{Name: "°C", Type: "value"}),
	)
	for _, s := range anomalies {
		data := make([]opts.ScatterData, 0, len(s.X))
		for i := range s.X {
			data = append(data, opts.ScatterData{Value: []interface{}{s.X[i], s.Y[i]}, SymbolSize: 4})
		}
		scatter.AddSeries(s.Label, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}
	return scatter
}
