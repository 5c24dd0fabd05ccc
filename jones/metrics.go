package jones

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// stepsTotal counts recursion steps by kind.
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvknot_jones_steps_total",
		Help: "Total Jones engine recursion steps by kind",
	}, []string{"kind"})

	// evalDuration tracks wall time of top-level Polynomial calls.
	evalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvknot_jones_duration_seconds",
		Help:    "Jones polynomial evaluation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
	}, []string{"result"})
)
