package branchbound

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlopt/event"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/simplex"
)

var (
	// ErrInvalidOptions is returned for out-of-domain Options.
	ErrInvalidOptions = errors.New("branchbound: invalid options")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("branchbound: unknown strategy")

	// ErrNoIncumbent is returned by Best when no integer solution was found.
	ErrNoIncumbent = errors.New("branchbound: no integer solution")
)

// Strategy selects the next frontier node.
type Strategy int

const (
	// BFS pops the oldest node (FIFO).
	BFS Strategy = iota
	// DFS pops the newest node (LIFO).
	DFS
	// BestBound pops the node with the best relaxation value.
	BestBound
)

func (s Strategy) String() string {
	switch s {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case BestBound:
		return "BestBound"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts BFS, DFS and BestBound in any case; "best-bound" and
// "best_bound" are aliases.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "bestbound", "best-bound", "best_bound":
		return BestBound, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Bound is one branching restriction x_Var (Op) Value with Op ∈ {LE, GE}.
type Bound struct {
	Var   int
	Op    lp.Relation
	Value float64
}

func (b Bound) String() string {
	return fmt.Sprintf("x%d %s %g", b.Var+1, b.Op, b.Value)
}

// Node is one entry of the search arena. Only Processed changes after the
// node is created.
type Node struct {
	ID     int
	Parent int // -1 for the root
	Depth  int
	Bounds []Bound

	Solution        []float64 // nil unless the relaxation was Optimal
	Value           float64
	Status          simplex.Status
	Feasible        bool
	IntegerFeasible bool
	Processed       bool
	BranchReason    string // "" for the root
}

// Reason tells why a search finished.
type Reason int

const (
	NotFinished Reason = iota
	Exhausted
	NodeLimitReached
	RootInfeasible
	RootUnbounded
	RootIterationLimit
	IntegerRoot
)

func (r Reason) String() string {
	switch r {
	case NotFinished:
		return "not_finished"
	case Exhausted:
		return "exhausted"
	case NodeLimitReached:
		return "node_limit"
	case RootInfeasible:
		return "root_infeasible"
	case RootUnbounded:
		return "root_unbounded"
	case RootIterationLimit:
		return "root_iteration_limit"
	case IntegerRoot:
		return "integer_root"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// State is the whole search state owned by a Tree.
type State struct {
	Nodes        []Node
	Queue        []int
	BestSolution []float64
	BestValue    float64
	Steps        []event.Event
	NextID       int
	Finished     bool
	Reason       Reason
	RunID        string
}

// Summary counts node outcomes.
type Summary struct {
	Nodes      int // arena size
	Explored   int // processed nodes
	Feasible   int // relaxation Optimal
	Infeasible int // relaxation not Optimal
	Integer    int // integer-feasible relaxations
	Pruned     int // popped and skipped by bound
	Frontier   int // still queued
}
