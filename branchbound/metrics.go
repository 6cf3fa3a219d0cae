package branchbound

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Node kinds for nodesTotal.
const (
	kindRoot       = "root"
	kindQueued     = "queued"
	kindIncumbent  = "incumbent"
	kindFathomed   = "fathomed"
	kindInfeasible = "infeasible"
	kindLimit      = "limit"
	kindPruned     = "pruned"
)

var (
	// nodesTotal counts created and pruned nodes by kind.
	nodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlopt_bb_nodes_total",
		Help: "Total branch-and-bound nodes by kind",
	}, []string{"kind"})

	// searchesTotal counts finished searches by reason.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlopt_bb_searches_total",
		Help: "Total finished branch-and-bound searches by outcome",
	}, []string{"outcome"})
)
