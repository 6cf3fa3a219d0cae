package simplex

import (
	"github.com/katalvlaran/lvlopt/matrix"
)

// Solution returns the decision vector (length n, declared order) and the
// objective value in the requested sense. Non-basic variables are 0.
// It returns ErrNotOptimal unless Status() == Optimal. Every call returns a
// fresh slice.
func (e *Engine) Solution() ([]float64, float64, error) {
	if e.status != Optimal {
		return nil, 0, ErrNotOptimal
	}
	x := make([]float64, e.lay.n)
	for i, col := range e.basis {
		if col < e.lay.n {
			x[col], _ = e.t.At(i+1, e.lay.rhs)
		}
	}

	return x, e.objectiveValue(), nil
}

// BasisInfo lists the basic variables in row order with their current
// values. It is available in every state after Initialize.
func (e *Engine) BasisInfo() []BasisEntry {
	out := make([]BasisEntry, len(e.basis))
	for i, col := range e.basis {
		v, _ := e.t.At(i+1, e.lay.rhs)
		out[i] = BasisEntry{Name: e.vars[col].Name, Value: v}
	}

	return out
}

// Tableau returns a deep copy of the current tableau, or nil before Initialize.
func (e *Engine) Tableau() *matrix.Dense {
	if e.t == nil {
		return nil
	}

	return e.t.Clone().(*matrix.Dense)
}

// Variables describes every non-RHS column in order.
func (e *Engine) Variables() []Variable { return append([]Variable(nil), e.vars...) }

// Basis returns the basic column of every constraint row.
func (e *Engine) Basis() []int { return append([]int(nil), e.basis...) }

// Rows describes how every constraint row was placed in the tableau.
func (e *Engine) Rows() []RowInfo { return append([]RowInfo(nil), e.lay.rows...) }

// RHSColumn returns the index of the RHS column.
func (e *Engine) RHSColumn() int { return e.lay.rhs }

// NumVars returns the number of decision variables.
func (e *Engine) NumVars() int { return e.lay.n }

// NumConstraints returns the number of constraint rows.
func (e *Engine) NumConstraints() int { return e.lay.m }

// Maximize reports the requested sense.
func (e *Engine) Maximize() bool { return e.maximize }

// Cost returns a copy of the objective vector as given to Initialize.
func (e *Engine) Cost() []float64 { return append([]float64(nil), e.c...) }

// RHS returns a copy of b as given to Initialize (before any row flip).
func (e *Engine) RHS() []float64 { return append([]float64(nil), e.b...) }
