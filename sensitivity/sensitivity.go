// Package sensitivity performs post-optimal analysis on a finished simplex run.
//
// Two reports are produced from the terminal tableau, without re-solving:
//
//   - RHS ranging: per constraint row, the shadow price (change of the reported
//     objective per unit increase of the row's RHS) and the interval of RHS
//     values over which the current basis stays primal feasible.
//   - Objective ranging: per decision variable, the interval of cost values
//     over which the current basis stays optimal.
//
// Both follow from the final tableau T:
//
//	d      = T[·, aux]   (column of the row's slack or surplus)
//	b̄ + δd ≥ 0          keeps the basis feasible when b_i moves by δ
//	T0[j] + δ·T[r, j] ≥ 0 keeps it optimal when the cost of the basic
//	                      variable in row r moves by δ
//
// The same formula covers rows that were negated on entry (negative RHS):
// their surplus column already carries the sign flip.
package sensitivity

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlopt/simplex"
)

// ErrNotOptimal is returned when the engine did not finish Optimal.
var ErrNotOptimal = simplex.ErrNotOptimal

// ErrNilEngine is returned for a nil engine.
var ErrNilEngine = errors.New("sensitivity: nil engine")

const tol = 1e-10

// RHSRange is the ranging result of one constraint row.
type RHSRange struct {
	Row         int     // 0-based constraint index
	RHS         float64 // current RHS as given
	ShadowPrice float64
	Lower       float64 // -Inf when unbounded below
	Upper       float64 // +Inf when unbounded above
	Slack       float64 // value of the row's slack or surplus variable
	Binding     bool
}

// CostRange is the ranging result of one decision variable.
type CostRange struct {
	Var     int // 0-based decision index
	Name    string
	Cost    float64
	Basic   bool
	Value   float64
	Reduced float64 // improvement the cost needs before the variable enters; 0 when basic
	Lower   float64
	Upper   float64
}

// Report bundles both analyses.
type Report struct {
	RHS       []RHSRange
	Objective []CostRange
}

// Analyze computes the report for an Optimal engine.
func Analyze(e *simplex.Engine) (Report, error) {
	if e == nil {
		return Report{}, ErrNilEngine
	}
	if !e.Optimal() {
		return Report{}, ErrNotOptimal
	}
	a := newAnalyzer(e)

	return Report{RHS: a.rhsRanges(), Objective: a.costRanges()}, nil
}

// analyzer caches the terminal state as plain slices.
type analyzer struct {
	t        [][]float64
	basis    []int
	vars     []simplex.Variable
	rows     []simplex.RowInfo
	rhsCol   int
	n        int
	c, b     []float64
	maximize bool
	rowOf    map[int]int // basic column -> tableau row (1-based)
}

func newAnalyzer(e *simplex.Engine) *analyzer {
	a := &analyzer{
		t:        e.Tableau().ToSlices(),
		basis:    e.Basis(),
		vars:     e.Variables(),
		rows:     e.Rows(),
		rhsCol:   e.RHSColumn(),
		n:        e.NumVars(),
		c:        e.Cost(),
		b:        e.RHS(),
		maximize: e.Maximize(),
	}
	a.rowOf = make(map[int]int, len(a.basis))
	for i, col := range a.basis {
		a.rowOf[col] = i + 1
	}

	return a
}

// sign maps internal (maximisation) quantities to the reported sense.
func (a *analyzer) sign() float64 {
	if a.maximize {
		return 1
	}

	return -1
}

func (a *analyzer) rhsRanges() []RHSRange {
	out := make([]RHSRange, len(a.rows))
	for i, info := range a.rows {
		lo, hi := math.Inf(-1), math.Inf(1)
		for r := 1; r < len(a.t); r++ {
			d := a.t[r][info.Aux]
			if math.Abs(d) <= tol {
				continue
			}
			bound := -a.t[r][a.rhsCol] / d
			if d > 0 {
				lo = math.Max(lo, bound)
			} else {
				hi = math.Min(hi, bound)
			}
		}

		var slack float64
		if r, ok := a.rowOf[info.Aux]; ok {
			slack = a.t[r][a.rhsCol]
		}
		out[i] = RHSRange{
			Row:         i,
			RHS:         a.b[i],
			ShadowPrice: a.sign() * a.t[0][info.Aux],
			Lower:       a.b[i] + lo,
			Upper:       a.b[i] + hi,
			Slack:       slack,
			Binding:     math.Abs(slack) <= 1e-9,
		}
	}

	return out
}

func (a *analyzer) costRanges() []CostRange {
	out := make([]CostRange, a.n)
	for j := 0; j < a.n; j++ {
		cr := CostRange{Var: j, Name: a.vars[j].Name, Cost: a.c[j]}
		// internal cost c' and its interval [c'+lo, c'+hi]
		internal := a.sign() * a.c[j]
		lo, hi := math.Inf(-1), math.Inf(1)

		if r, basic := a.rowOf[j]; basic {
			cr.Basic = true
			cr.Value = a.t[r][a.rhsCol]
			for k := 0; k < a.rhsCol; k++ {
				if k == j || a.vars[k].Kind == simplex.Artificial {
					continue
				}
				if _, isBasic := a.rowOf[k]; isBasic {
					continue
				}
				coef := a.t[r][k]
				if math.Abs(coef) <= tol {
					continue
				}
				bound := -a.t[0][k] / coef
				if coef > 0 {
					lo = math.Max(lo, bound)
				} else {
					hi = math.Min(hi, bound)
				}
			}
		} else {
			hi = a.t[0][j]
			cr.Reduced = a.t[0][j]
		}

		if a.maximize {
			cr.Lower, cr.Upper = internal+lo, internal+hi
		} else {
			// c = -c', so the interval mirrors.
			cr.Lower, cr.Upper = -(internal + hi), -(internal + lo)
		}
		out[j] = cr
	}

	return out
}
