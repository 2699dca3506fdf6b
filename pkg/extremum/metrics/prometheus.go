package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "extremum"

// PrometheusMetrics holds the collectors for search runs.
type PrometheusMetrics struct {
	RunsTotal        *prometheus.CounterVec
	RunDuration      *prometheus.HistogramVec
	GenerationsTotal *prometheus.CounterVec
	EvaluationsTotal *prometheus.CounterVec
	BestFitness      *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with reg. A nil reg uses the
// default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of search runs by outcome",
			},
			[]string{"function", "optimum", "status"},
		),

		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall time of a search run in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"function", "optimum"},
		),

		GenerationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total number of generations simulated",
			},
			[]string{"function"},
		),

		EvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of objective function evaluations",
			},
			[]string{"function"},
		),

		BestFitness: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "best_fitness",
				Help:      "Best fitness found by the most recent successful run",
			},
			[]string{"function", "optimum"},
		),
	}
}

// RecordRun records the outcome of one run.
func (m *PrometheusMetrics) RecordRun(function, optimum, status string, duration time.Duration, generations int, evaluations int64) {
	m.RunsTotal.WithLabelValues(function, optimum, status).Inc()
	m.RunDuration.WithLabelValues(function, optimum).Observe(duration.Seconds())
	m.GenerationsTotal.WithLabelValues(function).Add(float64(generations))
	m.EvaluationsTotal.WithLabelValues(function).Add(float64(evaluations))
}

// RecordBest publishes the best fitness of a successful run.
func (m *PrometheusMetrics) RecordBest(function, optimum string, fitness float64) {
	m.BestFitness.WithLabelValues(function, optimum).Set(fitness)
}
