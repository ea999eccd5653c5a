package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"qrforge/internal/domain/redirect"
)

const namespace = "qrforge"

// Metrics holds the service collectors. It satisfies redirect.Observer and
// scan.Observer so the domain packages stay free of prometheus imports.
type Metrics struct {
	registry *prometheus.Registry

	redirects     *prometheus.CounterVec
	scansRecorded prometheus.Counter
	scansFailed   prometheus.Counter
	scanDuration  prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		redirects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redirect",
			Name:      "resolutions_total",
			Help:      "Short code resolutions by outcome",
		}, []string{"outcome"}),
		scansRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "recorded_total",
			Help:      "Scan events persisted",
		}),
		scansFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "failed_total",
			Help:      "Scan events dropped after a store error",
		}),
		scanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "record_duration_seconds",
			Help:      "Time spent writing a scan event",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

func (m *Metrics) Resolved(outcome redirect.Outcome) {
	m.redirects.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) ScanRecorded(d time.Duration) {
	m.scansRecorded.Inc()
	m.scanDuration.Observe(d.Seconds())
}

func (m *Metrics) ScanFailed() {
	m.scansFailed.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
