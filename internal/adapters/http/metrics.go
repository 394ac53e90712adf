package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stellar_evaluations_total",
		Help: "Compatibility evaluations served, by report kind and source.",
	}, []string{"kind", "source"})

	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "stellar_evaluation_duration_seconds",
		Help:    "Wall time of compatibility request handling.",
		Buckets: prometheus.DefBuckets,
	})
)
