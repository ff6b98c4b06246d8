// Package metrics exposes Prometheus instrumentation for the resource listings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "resource_hub"
	Subsystem = "listing"
)

type Metrics struct {
	RequestsTotal        *prometheus.CounterVec
	LoadFailuresTotal    *prometheus.CounterVec
	RejectedRecordsTotal *prometheus.CounterVec
	PipelineDuration     *prometheus.HistogramVec
}

// New creates and registers the listing metrics. A nil registerer uses the
// default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "requests_total",
				Help:      "Total number of listing requests",
			},
			[]string{"collection"},
		),
		LoadFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "load_failures_total",
				Help:      "Dataset loads that failed and were served as empty",
			},
			[]string{"kind", "dataset"},
		),
		RejectedRecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "rejected_records_total",
				Help:      "Raw records dropped for missing id, title or date",
			},
			[]string{"kind"},
		),
		PipelineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "pipeline_duration_seconds",
				Help:      "Time spent loading, merging and querying a listing",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"collection"},
		),
	}
}
