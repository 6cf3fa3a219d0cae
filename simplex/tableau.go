package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/matrix"
)

// layout is the column plan computed from b before any value is written.
type layout struct {
	n, m                   int
	slacks, surpluses      int
	slack0, surplus0, art0 int // first column of each block
	rhs                    int
	rows                   []RowInfo
}

func planLayout(n int, b []float64) layout {
	l := layout{n: n, m: len(b), rows: make([]RowInfo, len(b))}
	for _, v := range b {
		if v < 0 {
			l.surpluses++
		} else {
			l.slacks++
		}
	}
	l.slack0 = n
	l.surplus0 = n + l.slacks
	l.art0 = l.surplus0 + l.surpluses
	l.rhs = l.art0 + l.surpluses

	var nextSlack, nextSurplus int
	for i, v := range b {
		if v < 0 {
			l.rows[i] = RowInfo{
				Flipped:    true,
				Aux:        l.surplus0 + nextSurplus,
				Artificial: l.art0 + nextSurplus,
			}
			nextSurplus++
			continue
		}
		l.rows[i] = RowInfo{Aux: l.slack0 + nextSlack, Artificial: -1}
		nextSlack++
	}

	return l
}

func (l layout) variables() []Variable {
	vars := make([]Variable, l.rhs)
	for j := 0; j < l.n; j++ {
		vars[j] = Variable{Name: fmt.Sprintf("x%d", j+1), Kind: Decision, Row: -1}
	}
	for i, r := range l.rows {
		if r.Flipped {
			vars[r.Aux] = Variable{Name: fmt.Sprintf("e%d", i+1), Kind: Surplus, Row: i}
			vars[r.Artificial] = Variable{Name: fmt.Sprintf("a%d", i+1), Kind: Artificial, Row: i}
			continue
		}
		vars[r.Aux] = Variable{Name: fmt.Sprintf("s%d", i+1), Kind: Slack, Row: i}
	}

	return vars
}

// buildTableau writes the initial Big-M tableau.
//
//	row 0:   -c' | 0 | 0 | M | 0, then minus M times every artificial row
//	row i+1: ±A_i | slack or surplus | artificial | |b_i|
//
// c' is c for maximisation and -c for minimisation.
func buildTableau(l layout, c []float64, A [][]float64, b []float64, maximize bool, bigM float64) (*matrix.Dense, []int, error) {
	t, err := matrix.NewDense(l.m+1, l.rhs+1)
	if err != nil {
		return nil, nil, err
	}
	var (
		basis = make([]int, l.m)
		sign  float64
		j     int
	)

	for j = 0; j < l.n; j++ {
		if maximize {
			_ = t.Set(0, j, -c[j])
		} else {
			_ = t.Set(0, j, c[j])
		}
	}

	for i, r := range l.rows {
		sign = 1
		if r.Flipped {
			sign = -1
		}
		for j = 0; j < l.n; j++ {
			_ = t.Set(i+1, j, sign*A[i][j])
		}
		_ = t.Set(i+1, l.rhs, sign*b[i])
		if r.Flipped {
			_ = t.Set(i+1, r.Aux, -1)
			_ = t.Set(i+1, r.Artificial, 1)
			_ = t.Set(0, r.Artificial, bigM)
			basis[i] = r.Artificial
			continue
		}
		_ = t.Set(i+1, r.Aux, 1)
		basis[i] = r.Aux
	}

	// Price out the artificial basis so every basic column is a unit vector.
	for i, r := range l.rows {
		if r.Flipped {
			if err = t.AddScaledRow(0, i+1, -bigM); err != nil {
				return nil, nil, err
			}
		}
	}

	return t, basis, nil
}
