package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	ViewsBuilt        *prometheus.CounterVec // labels: zone
	ViewBuildDuration prometheus.Histogram
	RenderErrors      *prometheus.CounterVec // labels: format={html,png,json}
	DatasetRows       *prometheus.GaugeVec   // labels: dataset={co2,temperature}
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ViewsBuilt,
		m.ViewBuildDuration,
		m.RenderErrors,
		m.DatasetRows,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ViewsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "co2_explorer",
			Name:      "views_built_total",
			Help:      "Views built, by axis zone.",
		}, []string{"zone"}),
		ViewBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "co2_explorer",
			Name:      "view_build_duration_seconds",
			Help:      "Time spent filtering tables and building series for one view.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "co2_explorer",
			Name:      "render_errors_total",
			Help:      "Failures rendering a view, by output format.",
		}, []string{"format"}),
		DatasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "co2_explorer",
			Name:      "dataset_rows",
			Help:      "Rows loaded at startup, by dataset.",
		}, []string{"dataset"}),
	}
}
