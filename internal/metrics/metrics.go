// Package metrics provides Prometheus metrics for a serialization run
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/viant/rptxml/inspector/serializer"
)

// Metrics holds run metrics in a dedicated registry
type Metrics struct {
	Registry *prometheus.Registry

	ReportsTotal        prometheus.Counter
	IssuesTotal         *prometheus.CounterVec
	EmbeddedTotal       prometheus.Counter
	OutputBytes         prometheus.Gauge
	RunDurationSeconds  prometheus.Histogram
	LastSuccessUnixTime prometheus.Gauge
}

// New creates and registers run metrics
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	m := &Metrics{Registry: registry}

	m.ReportsTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "rptxml_reports_total",
		Help: "Total number of report elements written, sub-reports included",
	})
	m.IssuesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "rptxml_issues_total",
		Help: "Total number of recoverable failures by category",
	}, []string{"category"})
	m.EmbeddedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "rptxml_embedded_streams_total",
		Help: "Total number of embedded streams fingerprinted",
	})
	m.OutputBytes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "rptxml_output_bytes",
		Help: "Size of the last written document in bytes",
	})
	m.RunDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "rptxml_run_duration_seconds",
		Help:    "Duration of load and serialization",
		Buckets: prometheus.DefBuckets,
	})
	m.LastSuccessUnixTime = factory.NewGauge(prometheus.GaugeOpts{
		Name: "rptxml_last_success_timestamp_seconds",
		Help: "Unix time of the last successful run",
	})
	for _, category := range serializer.Categories {
		m.IssuesTotal.WithLabelValues(string(category))
	}
	return m
}

// Record records serialization result
func (m *Metrics) Record(result *serializer.Result, elapsed time.Duration, outputBytes int) {
	m.ReportsTotal.Add(float64(result.Reports))
	m.EmbeddedTotal.Add(float64(result.Embedded))
	for _, issue := range result.Issues {
		m.IssuesTotal.WithLabelValues(string(issue.Category)).Inc()
	}
	m.OutputBytes.Set(float64(outputBytes))
	m.RunDurationSeconds.Observe(elapsed.Seconds())
	m.LastSuccessUnixTime.SetToCurrentTime()
}

// WriteTextfile writes metrics in the node exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
