package simplex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pivotsTotal counts pivots across all engines.
	pivotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvlopt_simplex_pivots_total",
		Help: "Total simplex pivots performed",
	})

	// runsTotal counts finished runs by terminal status.
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlopt_simplex_runs_total",
		Help: "Total finished simplex runs by outcome",
	}, []string{"outcome"})
)
