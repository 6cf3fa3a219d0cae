// Package simplex implements a resumable Big-M tableau simplex solver for
//
//	max (or min) cᵀx  subject to  Ax ≤ b, x ≥ 0
//
// where b may contain negative entries.
//
// Overview:
//
//   - Rows with b_i ≥ 0 get a slack column and start with the slack basic.
//   - Rows with b_i < 0 are multiplied by -1 (so the row reads ≥), then get a
//     surplus column (-1) and an artificial column (+1); the artificial
//     starts basic and is penalised by BigM in the objective row.
//   - Column order is decision | slack | surplus | artificial | RHS.
//   - Minimisation is solved as maximisation of -cᵀx; Solution restores the sign.
//
// Pivoting rules:
//
//   - Entering: the most negative reduced cost below -Epsilon (Dantzig),
//     lowest column index on ties.
//   - Leaving: minimum ratio RHS/a over rows with a > PivotTolerance and a
//     non-negative ratio, lowest row on ties. No eligible row => Unbounded.
//   - No anti-cycling rule: a degenerate cycle runs into IterationLimit.
//   - Drive-out: when no column prices in and every basic artificial is
//     zero, each one is pivoted out on its first non-artificial column with
//     a nonzero entry before the run ends Optimal. These pivots do not count
//     against the iteration limit. A row with no such column is redundant
//     and keeps its artificial.
//
// State machine:
//
//	var e simplex.Engine
//	if err := e.Initialize(c, A, b, true); err != nil { ... } // malformed input only
//	for e.Step() {
//	    // inspect e.History()[len(e.History())-1]
//	}
//	x, z, err := e.Solution() // ErrNotOptimal unless Status() == Optimal
//
// Each Step performs at most one pivot. Optimality is tested before the
// iteration limit, so a run that becomes optimal on its last allowed pivot
// still ends Optimal. Unbounded, Infeasible and IterationLimit are statuses,
// never errors.
//
// Every state change appends an immutable Step (tableau snapshot, basis,
// label, narration event, pivot coordinates) to History.
//
// Complexity: O(m·(n+m)) per pivot; the number of pivots is bounded by
// Options.IterationLimit.
package simplex
