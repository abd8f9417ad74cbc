package httpapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// Metrics holds the Prometheus collectors of one server.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	searchResults  prometheus.Histogram
	rebuilds       *prometheus.CounterVec
	records        *prometheus.GaugeVec
}

// NewMetrics creates collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sercha_site",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "status"},
		),
		searchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "sercha_site",
				Name:      "search_duration_seconds",
				Help:      "Duration of search queries in seconds",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
			},
		),
		searchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "sercha_site",
				Name:      "search_results",
				Help:      "Distribution of result counts per search",
				Buckets:   []float64{0, 1, 5, 10, 25, 50},
			},
		),
		rebuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sercha_site",
				Name:      "index_rebuilds_total",
				Help:      "Total number of index rebuilds requested over HTTP",
			},
			[]string{"status"},
		),
		records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "sercha_site",
				Name:      "snapshot_records",
				Help:      "Records in the current snapshot by source",
			},
			[]string{"source"},
		),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest counts a finished request.
func (m *Metrics) RecordRequest(route string, status int) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// RecordSearch records a search duration and result count.
func (m *Metrics) RecordSearch(d time.Duration, results int) {
	m.searchDuration.Observe(d.Seconds())
	m.searchResults.Observe(float64(results))
}

// RecordRebuild counts a rebuild and, on success, updates record gauges.
func (m *Metrics) RecordRebuild(snap *domain.Snapshot, err error) {
	if err != nil {
		m.rebuilds.WithLabelValues("error").Inc()
		return
	}
	m.rebuilds.WithLabelValues("ok").Inc()
	m.ObserveSnapshot(snap)
}

// ObserveSnapshot sets the per-source record gauges from snap.
func (m *Metrics) ObserveSnapshot(snap *domain.Snapshot) {
	if snap == nil {
		return
	}
	for _, t := range domain.AllSourceTypes() {
		m.records.WithLabelValues(string(t)).Set(float64(len(snap.RecordsBySource(t))))
	}
}
