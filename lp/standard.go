package lp

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/event"
)

// StandardForm is the textbook view of a problem: maximize, every row an
// equality with a non-negative RHS, slack and surplus columns appended.
type StandardForm struct {
	// Objective has one entry per Variables element; slack/surplus cost 0.
	Objective []float64
	// A is m × len(Variables).
	A [][]float64
	// B is non-negative.
	B []float64
	// Variables names the columns: x1..xn, then s_i / e_i in row order.
	Variables []string
	// Negated reports whether the objective was negated (minimize input).
	Negated bool
	// Relations holds the row relations after RHS flips, before slack/surplus.
	Relations []Relation
	// Notes lists the conversion steps in the order they were applied.
	Notes []event.Event
}

// StandardForm converts p. Rows are processed in order; a row whose RHS is
// negative is multiplied by -1 and its relation flipped. A ≤ row then gets a
// slack s_i (+1), a ≥ row a surplus e_i (-1); equalities get neither.
func (p *Problem) StandardForm() (*StandardForm, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var (
		n  = p.NumVars()
		m  = len(p.Constraints)
		sf = &StandardForm{
			Objective: append([]float64(nil), p.Objective...),
			B:         make([]float64, m),
			Relations: make([]Relation, m),
		}
		rows = make([][]float64, m)
		i, j int
	)
	for j = 0; j < n; j++ {
		sf.Variables = append(sf.Variables, fmt.Sprintf("x%d", j+1))
	}

	if p.Sense == Minimize {
		for j = range sf.Objective {
			sf.Objective[j] = -sf.Objective[j]
		}
		sf.Negated = true
		sf.Notes = append(sf.Notes, event.New(event.StdMinToMax))
	}

	for i = 0; i < m; i++ {
		con := p.Constraints[i]
		rows[i] = append([]float64(nil), con.Coeffs...)
		sf.B[i] = con.RHS
		sf.Relations[i] = con.Rel
		if con.RHS < 0 {
			for j = range rows[i] {
				rows[i][j] = -rows[i][j]
			}
			sf.B[i] = -con.RHS
			sf.Relations[i] = con.Rel.Flip()
			sf.Notes = append(sf.Notes, event.New(event.StdFlip, i+1, con.Rel.String(), sf.Relations[i].String()))
		}
	}

	// Extra columns are appended one at a time; every row grows in lockstep.
	for i = 0; i < m; i++ {
		var (
			name  string
			coeff float64
			key   event.Key
		)
		switch sf.Relations[i] {
		case LE:
			name, coeff, key = fmt.Sprintf("s%d", i+1), 1, event.StdSlack
		case GE:
			name, coeff, key = fmt.Sprintf("e%d", i+1), -1, event.StdSurplus
		default:
			continue
		}
		sf.Variables = append(sf.Variables, name)
		sf.Objective = append(sf.Objective, 0)
		for r := 0; r < m; r++ {
			if r == i {
				rows[r] = append(rows[r], coeff)
			} else {
				rows[r] = append(rows[r], 0)
			}
		}
		sf.Notes = append(sf.Notes, event.New(key, i+1, name))
	}
	sf.A = rows

	return sf, nil
}
