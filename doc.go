// Package lvlopt is a step-by-step linear and integer programming toolkit:
// every pivot, node and conversion is recorded so it can be inspected,
// replayed or narrated.
//
// 🚀 What is in the box?
//
//   - Big-M tableau simplex with Dantzig pricing and a full tableau history
//   - Solution and basis extraction, shadow prices, RHS and cost ranging
//   - Branch-and-Bound over LP relaxations with BFS, DFS and best-bound
//     frontiers, a node limit and a complete node arena with lineage
//   - Problem files in YAML with ≤, = and ≥ rows, standard form and dual
//   - Narration of every step in English or Portuguese
//
// Packages:
//
//	lp/          Problem model, validation, canonical/standard form, dual, YAML
//	matrix/      dense row-major tableau storage and pivoting
//	simplex/     resumable tableau engine (Initialize / Step / Solve)
//	sensitivity/ post-optimal analysis on an Optimal engine
//	branchbound/ resumable search tree over simplex relaxations
//	event/       structured narration records {Key, Params}
//	narrate/     message catalogs that turn events into text
//	config/      YAML configuration, option mapping, logger
//	cmd/lvlopt/  command-line front end
//
// Quick example:
//
//	e, _ := simplex.Run([]float64{3, 5},
//		[][]float64{{1, 0}, {0, 2}, {3, 2}}, []float64{4, 12, 18}, true)
//	x, z, _ := e.Solution() // x = [2 6], z = 36
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
