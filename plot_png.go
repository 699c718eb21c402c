package co2explorer

import (
	"errors"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNothingToPlot = errors.New("view has no series to plot")

const (
	DefaultPNGWidth  = 1024
	DefaultPNGHeight = 512
)

func seriesStyle(s Series) chart.Style {
	col := drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#"))
	if s.Kind == KindLine {
		return chart.Style{
			StrokeColor: col,
			StrokeWidth: 2,
		}
	}
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotColor:    col,
		DotWidth:    2,
	}
}

// RenderPNG draws the view as a PNG with ppm on the primary y axis and temperature
// anomalies, if any, on the secondary one.
func RenderPNG(w io.Writer, view *View, width, height int) error {
	if len(view.Series) == 0 {
		return ErrNothingToPlot
	}

	graph := chart.Chart{
		Title:  view.Title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: "ppm"},
	}
	if view.XRange != nil {
		graph.XAxis.Range = &chart.ContinuousRange{Min: view.XRange.Min, Max: view.XRange.Max}
	}
	if view.YRange != nil {
		graph.YAxis.Range = &chart.ContinuousRange{Min: view.YRange.Min, Max: view.YRange.Max}
	}

	for _, s := range view.Series {
		cs := chart.ContinuousSeries{
			Name:    s.Label,
			XValues: s.X,
			YValues: s.Y,
			Style:   seriesStyle(s),
		}
		if s.Kind == KindAnomaly {
			cs.YAxis = chart.YAxisSecondary
			graph.YAxisSecondary = chart.YAxis{Name: "°C"}
		}
		graph.Series = append(graph.Series, cs)
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
