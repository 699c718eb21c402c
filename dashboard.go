package co2explorer

import (
	"fmt"
	"html/template"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
)

const (
	DashboardInstructions = "Choose a slope and an intercept for a straight line and compare it " +
		"with the carbon dioxide measured at Mauna Loa. The intercept is the CO2 level in ppm at " +
		"the first date plotted and the slope is how many ppm it rises each year. The title shows " +
		"what your line predicts for 2030. Pick a month to compare the same month of every year, " +
		"or a plot segment to zoom in on the first or last five years."
	DashboardSources = "CO2: Scripps CO2 Program, monthly in situ measurements at Mauna Loa " +
		"Observatory, https://scrippsco2.ucsd.edu. Temperature: NASA GISS Surface Temperature " +
		"Analysis (GISTEMP), Northern Hemisphere monthly means, https://data.giss.nasa.gov/gistemp/."
)

const tmplDashboard = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
{{- range .Assets }}
    <script src="{{ . }}"></script>
{{- end }}
<style>
body{width:900px;margin:auto;font-family:sans-serif}
.control{width:48%;display:inline-block;vertical-align:top;margin-bottom:12px}
.control b{display:block;margin-bottom:4px}
.control input[type=range]{width:75%}
</style>
</head>
<body>
<h2>Exploring linear models for prediction</h2>
<p class="instructions">{{ .Instructions }}</p>
<form method="get" action="/" onchange="this.submit()">
  <div class="control">
    <b>Slope:</b>
    <input type="range" name="slope" min="{{ .SlopeMin }}" max="{{ .SlopeMax }}" step="{{ .SlopeStep }}" value="{{ .Slope }}" oninput="this.nextElementSibling.value = this.value">
    <output>{{ .Slope }}</output>
  </div>
  <div class="control">
    <b>Intercept:</b>
    <input type="range" name="intercept" min="{{ .InterceptMin }}" max="{{ .InterceptMax }}" step="{{ .InterceptStep }}" value="{{ .Intercept }}" oninput="this.nextElementSibling.value = this.value">
    <output>{{ .Intercept }}</output>
  </div>
  <div class="control">
    <b>Signal type:</b>
    <input type="hidden" name="signals" value="">
{{- range .Signals }}
    <label><input type="checkbox" name="signals" value="{{ .Value }}"{{ if .Checked }} checked{{ end }}> {{ .Label }}</label><br>
{{- end }}
    <label><input type="checkbox" name="temperature" value="true"{{ if .Temperature }} checked{{ end }}> NH temperature anomaly</label>
  </div>
  <div class="control">
    <b>Plot segment:</b>
{{- range .Zones }}
    <label><input type="radio" name="zone" value="{{ .Value }}"{{ if .Checked }} checked{{ end }}> {{ .Label }}</label><br>
{{- end }}
  </div>
  <div class="control">
    <b>Month:</b>
    <select name="month">
{{- range .Months }}
      <option value="{{ .Value }}"{{ if .Checked }} selected{{ end }}>{{ .Label }}</option>
{{- end }}
    </select>
  </div>
  <noscript><button type="submit">Update</button></noscript>
</form>
{{- range .Charts }}
{{ . }}
{{- end }}
<p class="sources">{{ .Sources }}</p>
</body>
</html>
`

var dashboardTemplate = template.Must(template.New("dashboard").Parse(tmplDashboard))

// choice is one option of a checklist, radio group or dropdown.
type choice struct {
	Value   string
	Label   string
	Checked bool
}

type dashboardPage struct {
	Title        string
	Instructions string
	Sources      string
	Assets       []string
	Charts       []template.HTML

	Slope         float64
	SlopeMin      float64
	SlopeMax      float64
	SlopeStep     float64
	Intercept     float64
	InterceptMin  float64
	InterceptMax  float64
	InterceptStep float64

	Signals     []choice
	Temperature bool
	Zones       []choice
	Months      []choice
}

// scatterSnippet renders a chart's element and script for embedding and returns the script
// assets it needs.
func scatterSnippet(c *charts.Scatter) (template.HTML, []string) {
	s := c.RenderSnippet()
	return template.HTML(s.Element + s.Script), c.GetAssets().JSAssets.Values
}

// RenderDashboard writes the interactive dashboard: the controls set to p, the CO2 chart of
// view and, when the view has anomalies, the temperature chart. The controls submit back to
// the page as query parameters.
func RenderDashboard(w io.Writer, view *View, p Params, zones []Zone) error {
	page := dashboardPage{
		Title:         view.Title,
		Instructions:  DashboardInstructions,
		Sources:       DashboardSources,
		Slope:         p.Slope,
		SlopeMin:      SlopeMin,
		SlopeMax:      SlopeMax,
		SlopeStep:     SlopeStep,
		Intercept:     p.Intercept,
		InterceptMin:  InterceptMin,
		InterceptMax:  InterceptMax,
		InterceptStep: InterceptStep,
		Temperature:   p.Temperature,
	}

	chartList := []*charts.Scatter{ScatterView(view)}
	if anomaly := ScatterAnomaly(view); anomaly != nil {
		chartList = append(chartList, anomaly)
	}
	for _, c := range chartList {
		el, assets := scatterSnippet(c)
		page.Charts = append(page.Charts, el)
		page.Assets = appendAssets(page.Assets, assets)
	}

	for _, sig := range AllSignals {
		page.Signals = append(page.Signals, choice{
			Value:   string(sig),
			Label:   signalColumns[sig].control,
			Checked: p.Enabled(sig),
		})
	}
	for _, z := range zones {
		page.Zones = append(page.Zones, choice{
			Value:   z.Name,
			Label:   z.Label,
			Checked: p.DateRange == nil && z.Name == p.Zone,
		})
	}
	page.Months = append(page.Months, choice{Value: "all", Label: "All", Checked: p.Month == MonthAll})
	for m := 1; m <= 12; m++ {
		page.Months = append(page.Months, choice{
			Value:   strconv.Itoa(m),
			Label:   time.Month(m).String(),
			Checked: p.Month == m,
		})
	}

	if err := dashboardTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("unable to render dashboard, %w", err)
	}
	return nil
}

func appendAssets(dst, assets []string) []string {
	for _, a := range assets {
		if !slices.Contains(dst, a) {
			dst = append(dst, a)
		}
	}
	return dst
}
