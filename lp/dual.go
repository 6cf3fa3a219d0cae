package lp

import (
	"gonum.org/v1/gonum/mat"
)

// Domain is the sign restriction of a dual variable.
type Domain int

const (
	// NonNegative is y ≥ 0.
	NonNegative Domain = iota
	// NonPositive is y ≤ 0.
	NonPositive
	// Free is an unrestricted y.
	Free
)

// String returns ">= 0", "<= 0" or "free".
func (d Domain) String() string {
	switch d {
	case NonNegative:
		return ">= 0"
	case NonPositive:
		return "<= 0"
	default:
		return "free"
	}
}

// DualProblem is the dual of a Problem. Problem holds the dual objective
// (the primal RHS), the transposed matrix and the primal costs as RHS; every
// dual row carries the same relation. Domains has one entry per dual
// variable (per primal row).
//
// The dual variables are not restricted to y ≥ 0, so Problem is a
// description, not necessarily an engine-ready input: check Domains before
// handing it to a solver that assumes non-negativity.
type DualProblem struct {
	Problem *Problem
	Domains []Domain
}

// Dual builds the dual of p.
//
//	primal max cᵀx, Ax (rel) b, x ≥ 0  ->  dual min bᵀy, Aᵀy ≥ c
//	primal min cᵀx, Ax (rel) b, x ≥ 0  ->  dual max bᵀy, Aᵀy ≤ c
//
// Dual variable domains follow the primal row relations:
//
//	max primal:  ≤ -> y ≥ 0, ≥ -> y ≤ 0, = -> free
//	min primal:  ≥ -> y ≥ 0, ≤ -> y ≤ 0, = -> free
//
// Integer designations are not carried over.
func Dual(p *Problem) (*DualProblem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var (
		n = p.NumVars()
		m = len(p.Constraints)
	)
	if m == 0 {
		return nil, ErrNoConstraints
	}

	flat := make([]float64, 0, m*n)
	for i := range p.Constraints {
		flat = append(flat, p.Constraints[i].Coeffs...)
	}
	at := mat.DenseCopyOf(mat.NewDense(m, n, flat).T())

	dualRel, dualSense := GE, Minimize
	if p.Sense == Minimize {
		dualRel, dualSense = LE, Maximize
	}

	dp := &Problem{
		Name:      p.Name,
		Sense:     dualSense,
		Objective: make([]float64, m),
	}
	for i, con := range p.Constraints {
		dp.Objective[i] = con.RHS
	}
	for j := 0; j < n; j++ {
		dp.Constraints = append(dp.Constraints, Constraint{
			Coeffs: mat.Row(nil, j, at),
			Rel:    dualRel,
			RHS:    p.Objective[j],
		})
	}

	domains := make([]Domain, m)
	for i, con := range p.Constraints {
		domains[i] = dualDomain(con.Rel, p.Sense)
	}

	return &DualProblem{Problem: dp, Domains: domains}, nil
}

func dualDomain(rel Relation, sense Sense) Domain {
	if rel == EQ {
		return Free
	}
	natural := LE
	if sense == Minimize {
		natural = GE
	}
	if rel == natural {
		return NonNegative
	}

	return NonPositive
}
