// Package lp models linear and mixed-integer programs.
//
// A Problem is max/min cᵀx subject to rows a·x (≤|=|≥) b and x ≥ 0, plus an
// optional list of integer-designated variables. The package provides:
//
//   - Validation with strict sentinels (shape, finiteness, integer indices).
//   - Canonical lowering to the raw all-≤ form (c, A, b) consumed by the
//     simplex and branch-and-bound engines: ≥ rows are negated, = rows are
//     emitted as a ≤ row plus its negation.
//   - StandardForm, the textbook maximize / equality / non-negative-RHS view
//     with slack (s) and surplus (e) columns.
//   - Dual, the primal–dual conversion with per-variable dual domains.
//   - YAML loading (Load, LoadFile) with human-friendly sense and relation
//     spellings ("max", "<=", "≥", "eq", ...).
//
// All errors are package sentinels matched with errors.Is.
package lp
