package lp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CanonicalForm is the raw all-≤ input of the engines.
//
// Origin maps every canonical row back to the index of the Problem
// constraint it came from; an equality row appears twice.
type CanonicalForm struct {
	C        []float64
	A        [][]float64
	B        []float64
	Maximize bool
	Origin   []int
	Integer  []int // nil when no variable is integer-designated
}

// Canonical lowers the problem to ≤ rows:
//
//	a·x ≤ b  ->  a·x ≤ b
//	a·x ≥ b  -> -a·x ≤ -b
//	a·x = b  ->  a·x ≤ b and -a·x ≤ -b
//
// The problem is validated first. All slices of the result are fresh.
func (p *Problem) Canonical() (*CanonicalForm, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cf := &CanonicalForm{
		C:        append([]float64(nil), p.Objective...),
		Maximize: p.Maximize(),
	}
	if len(p.Integer) > 0 {
		cf.Integer = append([]int(nil), p.Integer...)
	}
	for i, con := range p.Constraints {
		switch con.Rel {
		case LE:
			cf.push(i, con.Coeffs, con.RHS, false)
		case GE:
			cf.push(i, con.Coeffs, con.RHS, true)
		case EQ:
			cf.push(i, con.Coeffs, con.RHS, false)
			cf.push(i, con.Coeffs, con.RHS, true)
		}
	}

	return cf, nil
}

func (cf *CanonicalForm) push(origin int, coeffs []float64, rhs float64, negate bool) {
	row := append([]float64(nil), coeffs...)
	if negate {
		floats.Scale(-1, row)
		rhs = -rhs
	}
	cf.A = append(cf.A, row)
	cf.B = append(cf.B, rhs)
	cf.Origin = append(cf.Origin, origin)
}

// Evaluate returns cᵀx, or NaN when len(x) != NumVars.
func (p *Problem) Evaluate(x []float64) float64 {
	if len(x) != p.NumVars() {
		return math.NaN()
	}

	return floats.Dot(p.Objective, x)
}

// Feasible reports whether x satisfies x ≥ 0 and every row within tol.
func (p *Problem) Feasible(x []float64, tol float64) bool {
	if len(x) != p.NumVars() {
		return false
	}
	for _, v := range x {
		if v < -tol || math.IsNaN(v) {
			return false
		}
	}
	var lhs float64
	for _, con := range p.Constraints {
		lhs = floats.Dot(con.Coeffs, x)
		switch con.Rel {
		case LE:
			if lhs > con.RHS+tol {
				return false
			}
		case GE:
			if lhs < con.RHS-tol {
				return false
			}
		case EQ:
			if math.Abs(lhs-con.RHS) > tol {
				return false
			}
		}
	}

	return true
}
