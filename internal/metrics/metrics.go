// Package metrics exposes Prometheus collectors for pipeline runs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leadrank_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		},
		[]string{"stage"},
	)

	StageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadrank_stage_failures_total",
			Help: "Total number of failed pipeline stages",
		},
		[]string{"stage"},
	)

	LeadsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadrank_leads_processed_total",
			Help: "Total number of leads normalized by the process stage",
		},
	)

	QualifyDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadrank_qualify_degraded_total",
			Help: "Total number of qualifications that fell back to a zero score",
		},
	)

	LLMCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadrank_llm_calls_total",
			Help: "Total number of LLM calls by phase and status",
		},
		[]string{"phase", "status"},
	)
)

// Status labels for LLMCalls.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
