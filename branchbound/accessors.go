package branchbound

import "github.com/katalvlaran/lvlopt/event"

// Finished reports whether the search is over.
func (t *Tree) Finished() bool { return t.st.Finished }

// Reason returns why the search finished, or NotFinished.
func (t *Tree) Reason() Reason { return t.st.Reason }

// RunID returns the identifier attached to this search's log records.
func (t *Tree) RunID() string { return t.st.RunID }

// QueueLen returns the frontier size.
func (t *Tree) QueueLen() int { return len(t.st.Queue) }

// Nodes returns a copy of the arena, indexed by node ID.
func (t *Tree) Nodes() []Node {
	out := make([]Node, len(t.st.Nodes))
	for i, n := range t.st.Nodes {
		out[i] = n
		out[i].Bounds = append([]Bound(nil), n.Bounds...)
		out[i].Solution = append([]float64(nil), n.Solution...)
	}

	return out
}

// Steps returns a copy of the event log.
func (t *Tree) Steps() []event.Event { return append([]event.Event(nil), t.st.Steps...) }

// Best returns the incumbent and its value, or ErrNoIncumbent.
func (t *Tree) Best() ([]float64, float64, error) {
	if t.st.BestSolution == nil {
		return nil, t.st.BestValue, ErrNoIncumbent
	}

	return append([]float64(nil), t.st.BestSolution...), t.st.BestValue, nil
}

// BestValue returns the incumbent value; the worst value of the sense when
// there is no incumbent.
func (t *Tree) BestValue() float64 { return t.st.BestValue }

// State returns a deep copy of the search state.
func (t *Tree) State() State {
	s := t.st
	s.Nodes = t.Nodes()
	s.Queue = append([]int(nil), t.st.Queue...)
	s.Steps = t.Steps()
	if t.st.BestSolution != nil {
		s.BestSolution = append([]float64(nil), t.st.BestSolution...)
	}

	return s
}

// Summary counts node outcomes.
func (t *Tree) Summary() Summary {
	s := Summary{Nodes: len(t.st.Nodes), Pruned: t.pruned, Frontier: len(t.st.Queue)}
	for _, n := range t.st.Nodes {
		if n.Processed {
			s.Explored++
		}
		if n.Feasible {
			s.Feasible++
		} else {
			s.Infeasible++
		}
		if n.IntegerFeasible {
			s.Integer++
		}
	}

	return s
}
