// Package branchbound solves mixed-integer linear programs by
// Branch-and-Bound over simplex relaxations.
//
// Every node of the search tree is the root problem plus a list of
// variable bounds accumulated from the root. A node's relaxation is solved
// by a fresh simplex.Engine; the tree only reads its status, solution
// vector and objective value.
//
// Search loop (one Step expands one node):
//
//  1. Pop a node from the frontier according to the Strategy:
//     BFS (oldest first), DFS (newest first) or BestBound (best relaxation
//     value first, stable on ties).
//  2. Skip it when already processed or when its value does not strictly
//     beat the incumbent.
//  3. Branch on the first integer-designated variable whose value is more
//     than IntegralityTolerance away from an integer: x ≤ ⌊v⌋ and x ≥ ⌈v⌉.
//  4. Solve both children. Integral improving children replace the
//     incumbent; fractional improving children join the frontier; the rest
//     are recorded and dropped.
//
// The search finishes when the frontier is empty or when the node arena
// reaches NodeLimit; the arena never holds more than NodeLimit nodes.
// Either way Finished is set and Reason tells which.
//
// Sense: both maximisation and minimisation are supported. Node values are
// reported in the requested sense; an infeasible node carries the worst
// value of that sense (-Inf for max, +Inf for min).
//
// Every decision is logged as an event.Event in Steps, for replay and
// narration. Nothing here runs concurrently; callers drive Step.
package branchbound
