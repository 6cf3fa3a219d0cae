package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/event"
)

// Status is the state of a run. Every value except Running is terminal.
type Status int

const (
	Running Status = iota
	Optimal
	Unbounded
	Infeasible
	IterationLimit
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case IterationLimit:
		return "iteration_limit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ColumnKind tags a tableau column.
type ColumnKind int

const (
	Decision ColumnKind = iota
	Slack
	Surplus
	Artificial
)

func (k ColumnKind) String() string {
	switch k {
	case Decision:
		return "decision"
	case Slack:
		return "slack"
	case Surplus:
		return "surplus"
	case Artificial:
		return "artificial"
	default:
		return fmt.Sprintf("ColumnKind(%d)", int(k))
	}
}

// Variable describes one tableau column (RHS excluded).
// Row is the 0-based constraint that owns a slack, surplus or artificial
// column; it is -1 for decision variables.
type Variable struct {
	Name string
	Kind ColumnKind
	Row  int
}

// Pivot holds tableau coordinates; {-1, -1} means no pivot happened.
// Row counts the objective row as 0, so constraint i sits at Row i+1.
type Pivot struct {
	Row, Col int
}

// NoPivot marks a step without a pivot.
var NoPivot = Pivot{Row: -1, Col: -1}

// Step is one immutable history record.
type Step struct {
	// Tableau is a deep copy of the full tableau after the state change.
	Tableau [][]float64
	// Basis holds the basic column index of every constraint row.
	Basis     []int
	Label     event.Event
	Narration event.Event
	Pivot     Pivot
}

// BasisEntry names a basic variable and its current value.
type BasisEntry struct {
	Name  string
	Value float64
}

// RowInfo describes how a constraint row was put into the tableau.
type RowInfo struct {
	// Flipped is true when the row had a negative RHS and was negated.
	Flipped bool
	// Aux is the slack column (not flipped) or surplus column (flipped).
	Aux int
	// Artificial is the artificial column of a flipped row, or -1.
	Artificial int
}
