package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rogue"

// Metrics holds the counters of one process. Collectors live on their own
// registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	RecordsGenerated *prometheus.CounterVec
	RowsCleaned      prometheus.Counter
	RowsDropped      prometheus.Counter
	CellsRepaired    *prometheus.CounterVec
	FilesSaved       *prometheus.CounterVec
	Uploads          *prometheus.CounterVec
	JobDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RecordsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_generated_total",
			Help:      "Generated order records by injected defect (none for clean records).",
		}, []string{"defect"}),
		RowsCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_cleaned_total",
			Help:      "Rows written by successful cleaning runs.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_dropped_total",
			Help:      "Rows removed by cleaning rules.",
		}),
		CellsRepaired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_repaired_total",
			Help:      "Cells changed by cleaning rules, by rule.",
		}, []string{"rule"}),
		FilesSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_saved_total",
			Help:      "Local files written, by kind and status.",
		}, []string{"kind", "status"}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "File uploads, by destination type and status.",
		}, []string{"destination", "status"}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duration of generate, clean and upload jobs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RecordsGenerated,
		m.RowsCleaned,
		m.RowsDropped,
		m.CellsRepaired,
		m.FilesSaved,
		m.Uploads,
		m.JobDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func Status(err error) string {
	if err != nil {
		return "failed"
	}
	return "succeeded"
}
