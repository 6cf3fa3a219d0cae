// Package event defines the structured narration records emitted by the
// simplex and branch-and-bound engines.
//
// An Event is a tagged record: a Key naming what happened plus positional
// parameters. Engines never format prose; turning an Event into text is the
// job of the presentation boundary (see package narrate), which looks the Key
// up in a message catalog and substitutes Params in order.
package event

import (
	"fmt"
	"strings"
)

// Key identifies the kind of an Event. Keys are dotted, stable, and double as
// message-catalog lookup paths.
type Key string

// Simplex keys.
const (
	// SimplexInitial: params [n decision, m constraints, slacks, surpluses, artificials, sense].
	SimplexInitial Key = "simplex.initial"
	// SimplexIteration: params [iteration, entering name, leaving name, pivot row, pivot col, pivot value, min ratio].
	SimplexIteration Key = "simplex.iteration"
	// SimplexDriveOut: params [iteration, entering name, leaving artificial, pivot row, pivot col, pivot value].
	// A zero-valued artificial leaves the basis after the Big-M optimum.
	SimplexDriveOut Key = "simplex.drive_out"
	// SimplexOptimal: params [iterations, objective value].
	SimplexOptimal Key = "simplex.optimal"
	// SimplexUnbounded: params [entering name, entering column].
	SimplexUnbounded Key = "simplex.unbounded"
	// SimplexInfeasible: params [artificial name, artificial value].
	SimplexInfeasible Key = "simplex.infeasible"
	// SimplexLimit: params [iteration limit].
	SimplexLimit Key = "simplex.limit"
)

// Simplex step labels.
const (
	LabelInitial    Key = "simplex.label.initial"
	LabelIteration  Key = "simplex.label.iteration" // params [iteration]
	LabelOptimal    Key = "simplex.label.optimal"
	LabelUnbounded  Key = "simplex.label.unbounded"
	LabelInfeasible Key = "simplex.label.infeasible"
	LabelLimit      Key = "simplex.label.limit"
)

// Branch-and-bound keys.
const (
	// BBRootInfeasible: the root relaxation has no feasible point.
	BBRootInfeasible Key = "bb.root.infeasible"
	// BBRootUnbounded: the root relaxation is unbounded.
	BBRootUnbounded Key = "bb.root.unbounded"
	// BBRootLimit: params [iteration limit]. The root relaxation hit the iteration limit.
	BBRootLimit Key = "bb.root.limit"
	// BBIntegerRoot: params [value]. The root relaxation is already integral.
	BBIntegerRoot Key = "bb.root.integer"
	// BBSelect: params [node id, strategy, node value].
	BBSelect Key = "bb.select"
	// BBPrune: params [node id, node value, incumbent value].
	BBPrune Key = "bb.prune"
	// BBBranch: params [node id, variable number (1-based), relaxation value of the variable].
	BBBranch Key = "bb.branch"
	// BBChild: params [child id, variable number, operator, bound, value].
	BBChild Key = "bb.child"
	// BBSubInfeasible: params [child id, variable number, operator, bound].
	BBSubInfeasible Key = "bb.child.infeasible"
	// BBChildLimit: params [child id, variable number, operator, bound, iteration limit].
	BBChildLimit Key = "bb.child.limit"
	// BBUpdateBest: params [child id, value].
	BBUpdateBest Key = "bb.incumbent"
	// BBFathomed: params [child id, value, incumbent]. Recorded, not queued.
	BBFathomed Key = "bb.child.fathomed"
	// BBExhausted: the frontier is empty.
	BBExhausted Key = "bb.done.exhausted"
	// BBNodeLimit: params [node limit].
	BBNodeLimit Key = "bb.done.limit"
)

// Standard-form conversion notes.
const (
	// StdMinToMax: the minimize objective was negated into a maximize one.
	StdMinToMax Key = "std.min_to_max"
	// StdFlip: params [row number, old relation, new relation]. Negative RHS flipped.
	StdFlip Key = "std.flip"
	// StdSlack: params [row number, variable name].
	StdSlack Key = "std.slack"
	// StdSurplus: params [row number, variable name].
	StdSurplus Key = "std.surplus"
)

// Event is one structured narration record.
type Event struct {
	Key    Key
	Params []any
}

// New builds an Event; params are copied so the caller may reuse its slice.
func New(key Key, params ...any) Event {
	var p []any
	if len(params) > 0 {
		p = make([]any, len(params))
		copy(p, params)
	}

	return Event{Key: key, Params: p}
}

// String renders the event in a locale-neutral debug form: key(p1, p2, …).
func (e Event) String() string {
	if len(e.Params) == 0 {
		return string(e.Key)
	}
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = fmt.Sprint(p)
	}

	return string(e.Key) + "(" + strings.Join(parts, ", ") + ")"
}
