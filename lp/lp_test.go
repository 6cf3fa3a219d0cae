package lp_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/event"
	"github.com/katalvlaran/lvlopt/lp"
)

func wyndor() *lp.Problem {
	return &lp.Problem{
		Name:      "wyndor",
		Sense:     lp.Maximize,
		Objective: []float64{3, 5},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 0}, Rel: lp.LE, RHS: 4},
			{Coeffs: []float64{0, 2}, Rel: lp.LE, RHS: 12},
			{Coeffs: []float64{3, 2}, Rel: lp.LE, RHS: 18},
		},
	}
}

func TestValidateRaw(t *testing.T) {
	cases := []struct {
		name string
		c    []float64
		A    [][]float64
		b    []float64
		want error
	}{
		{"ok", []float64{1, 2}, [][]float64{{1, 1}}, []float64{3}, nil},
		{"no rows", []float64{1}, nil, nil, nil},
		{"empty objective", nil, [][]float64{{1}}, []float64{1}, lp.ErrEmptyObjective},
		{"row count", []float64{1}, [][]float64{{1}}, []float64{1, 2}, lp.ErrDimensionMismatch},
		{"ragged", []float64{1, 2}, [][]float64{{1}}, []float64{1}, lp.ErrDimensionMismatch},
		{"nan cost", []float64{math.NaN()}, [][]float64{{1}}, []float64{1}, lp.ErrNonFinite},
		{"inf coeff", []float64{1}, [][]float64{{math.Inf(1)}}, []float64{1}, lp.ErrNonFinite},
		{"inf rhs", []float64{1}, [][]float64{{1}}, []float64{math.Inf(-1)}, lp.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := lp.ValidateRaw(tc.c, tc.A, tc.b)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestProblemValidate(t *testing.T) {
	require.NoError(t, wyndor().Validate())

	p := wyndor()
	p.Objective = nil
	assert.ErrorIs(t, p.Validate(), lp.ErrEmptyObjective)

	p = wyndor()
	p.Constraints[1].Coeffs = []float64{1}
	assert.ErrorIs(t, p.Validate(), lp.ErrDimensionMismatch)

	p = wyndor()
	p.Constraints[2].RHS = math.NaN()
	assert.ErrorIs(t, p.Validate(), lp.ErrNonFinite)

	p = wyndor()
	p.Objective[0] = math.Inf(1)
	assert.ErrorIs(t, p.Validate(), lp.ErrNonFinite)

	p = wyndor()
	p.Integer = []int{2}
	assert.ErrorIs(t, p.Validate(), lp.ErrIntegerIndex)

	p = wyndor()
	p.Integer = []int{-1}
	assert.ErrorIs(t, p.Validate(), lp.ErrIntegerIndex)

	p = wyndor()
	p.Constraints[0].Rel = lp.Relation(7)
	assert.ErrorIs(t, p.Validate(), lp.ErrInvalidRelation)

	p = wyndor()
	p.Sense = lp.Sense(3)
	assert.ErrorIs(t, p.Validate(), lp.ErrInvalidSense)

	var nilProblem *lp.Problem
	assert.ErrorIs(t, nilProblem.Validate(), lp.ErrInvalidProblem)
}

func TestFromRaw(t *testing.T) {
	c := []float64{1, 2}
	A := [][]float64{{1, 1}, {2, 0}}
	b := []float64{4, 6}
	p, err := lp.FromRaw(c, A, b, lp.Minimize)
	require.NoError(t, err)
	c[0], A[0][0], b[0] = 9, 9, 9

	assert.Equal(t, []float64{1, 2}, p.Objective)
	assert.Equal(t, []float64{1, 1}, p.Constraints[0].Coeffs)
	assert.Equal(t, 4.0, p.Constraints[0].RHS)
	assert.Equal(t, lp.LE, p.Constraints[1].Rel)
	assert.False(t, p.Maximize())

	_, err = lp.FromRaw(c, A, b[:1], lp.Maximize)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

func TestCanonical(t *testing.T) {
	p := &lp.Problem{
		Sense:     lp.Minimize,
		Objective: []float64{2, 3},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 1}, Rel: lp.GE, RHS: 4},
			{Coeffs: []float64{1, -1}, Rel: lp.EQ, RHS: 1},
			{Coeffs: []float64{0, 1}, Rel: lp.LE, RHS: 5},
		},
		Integer: []int{1},
	}
	cf, err := p.Canonical()
	require.NoError(t, err)

	assert.False(t, cf.Maximize)
	assert.Equal(t, []float64{2, 3}, cf.C)
	assert.Equal(t, [][]float64{{-1, -1}, {1, -1}, {-1, 1}, {0, 1}}, cf.A)
	assert.Equal(t, []float64{-4, 1, -1, 5}, cf.B)
	assert.Equal(t, []int{0, 1, 1, 2}, cf.Origin)
	assert.Equal(t, []int{1}, cf.Integer)

	// the source problem is untouched
	assert.Equal(t, []float64{1, 1}, p.Constraints[0].Coeffs)
}

func TestEvaluateFeasible(t *testing.T) {
	p := wyndor()
	assert.InDelta(t, 36.0, p.Evaluate([]float64{2, 6}), 1e-12)
	assert.NotPanics(t, func() {
		assert.True(t, math.IsNaN(p.Evaluate([]float64{2})))
	})
	assert.True(t, p.Feasible([]float64{2, 6}, 1e-9))
	assert.False(t, p.Feasible([]float64{4, 6}, 1e-9))
	assert.False(t, p.Feasible([]float64{-1, 0}, 1e-9))
	assert.False(t, p.Feasible([]float64{1}, 1e-9))

	p.Constraints = append(p.Constraints, lp.Constraint{Coeffs: []float64{1, 1}, Rel: lp.EQ, RHS: 8})
	assert.True(t, p.Feasible([]float64{2, 6}, 1e-9))
	p.Constraints[3].Rel = lp.GE
	p.Constraints[3].RHS = 9
	assert.False(t, p.Feasible([]float64{2, 6}, 1e-9))
}

func TestStandardForm(t *testing.T) {
	p := &lp.Problem{
		Sense:     lp.Minimize,
		Objective: []float64{2, 3},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 1}, Rel: lp.GE, RHS: 4},
			{Coeffs: []float64{1, -2}, Rel: lp.LE, RHS: -2},
			{Coeffs: []float64{1, 1}, Rel: lp.EQ, RHS: 6},
		},
	}
	sf, err := p.StandardForm()
	require.NoError(t, err)

	assert.True(t, sf.Negated)
	assert.Equal(t, []string{"x1", "x2", "e1", "e2"}, sf.Variables)
	assert.Equal(t, []float64{-2, -3, 0, 0}, sf.Objective)
	assert.Equal(t, []lp.Relation{lp.GE, lp.GE, lp.EQ}, sf.Relations)
	assert.Equal(t, []float64{4, 2, 6}, sf.B)
	assert.Equal(t, [][]float64{
		{1, 1, -1, 0},
		{-1, 2, 0, -1},
		{1, 1, 0, 0},
	}, sf.A)

	keys := make([]event.Key, len(sf.Notes))
	for i, n := range sf.Notes {
		keys[i] = n.Key
	}
	assert.Equal(t, []event.Key{event.StdMinToMax, event.StdFlip, event.StdSurplus, event.StdSurplus}, keys)
	assert.Equal(t, []any{2, "<=", ">="}, sf.Notes[1].Params)
}

func TestStandardForm_Slacks(t *testing.T) {
	sf, err := wyndor().StandardForm()
	require.NoError(t, err)
	assert.False(t, sf.Negated)
	assert.Equal(t, []string{"x1", "x2", "s1", "s2", "s3"}, sf.Variables)
	assert.Equal(t, []float64{3, 2, 0, 0, 1}, sf.A[2])
	assert.Len(t, sf.Notes, 3)
}

func TestDual(t *testing.T) {
	p := wyndor()
	p.Constraints[1].Rel = lp.GE
	p.Constraints[2].Rel = lp.EQ

	d, err := lp.Dual(p)
	require.NoError(t, err)

	assert.Equal(t, lp.Minimize, d.Problem.Sense)
	assert.Equal(t, []float64{4, 12, 18}, d.Problem.Objective)
	require.Len(t, d.Problem.Constraints, 2)
	assert.Equal(t, []float64{1, 0, 3}, d.Problem.Constraints[0].Coeffs)
	assert.Equal(t, []float64{0, 2, 2}, d.Problem.Constraints[1].Coeffs)
	assert.Equal(t, lp.GE, d.Problem.Constraints[0].Rel)
	assert.Equal(t, 5.0, d.Problem.Constraints[1].RHS)
	assert.Equal(t, []lp.Domain{lp.NonNegative, lp.NonPositive, lp.Free}, d.Domains)

	p.Sense = lp.Minimize
	d, err = lp.Dual(p)
	require.NoError(t, err)
	assert.Equal(t, lp.Maximize, d.Problem.Sense)
	assert.Equal(t, lp.LE, d.Problem.Constraints[0].Rel)
	assert.Equal(t, []lp.Domain{lp.NonPositive, lp.NonNegative, lp.Free}, d.Domains)

	_, err = lp.Dual(&lp.Problem{Objective: []float64{1}})
	assert.ErrorIs(t, err, lp.ErrNoConstraints)
}

func TestParse(t *testing.T) {
	for _, s := range []string{"<=", "≤", "LE"} {
		r, err := lp.ParseRelation(s)
		require.NoError(t, err)
		assert.Equal(t, lp.LE, r)
	}
	r, err := lp.ParseRelation(" ≥ ")
	require.NoError(t, err)
	assert.Equal(t, lp.GE, r)
	_, err = lp.ParseRelation("<")
	assert.ErrorIs(t, err, lp.ErrInvalidRelation)

	s, err := lp.ParseSense("Minimise")
	require.NoError(t, err)
	assert.Equal(t, lp.Minimize, s)
	_, err = lp.ParseSense("best")
	assert.ErrorIs(t, err, lp.ErrInvalidSense)

	assert.Equal(t, lp.GE, lp.LE.Flip())
	assert.Equal(t, lp.EQ, lp.EQ.Flip())
}

const wyndorYAML = `
name: wyndor
sense: max
objective: [3, 5]
constraints:
  - {coeffs: [1, 0], rel: "<=", rhs: 4}
  - {coeffs: [0, 2], rel: le, rhs: 12}
  - {coeffs: [3, 2], rel: "≤", rhs: 18}
integer: [0, 1]
`

func TestLoad(t *testing.T) {
	p, err := lp.Load(strings.NewReader(wyndorYAML))
	require.NoError(t, err)

	want := wyndor()
	want.Integer = []int{0, 1}
	assert.Equal(t, want, p)

	out, err := lp.Marshal(p)
	require.NoError(t, err)
	back, err := lp.Load(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestLoad_Errors(t *testing.T) {
	_, err := lp.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, lp.ErrInvalidProblem)

	_, err = lp.Load(strings.NewReader("objective: [1]\nsense: sideways\n"))
	assert.ErrorIs(t, err, lp.ErrInvalidSense)

	_, err = lp.Load(strings.NewReader("objective: [1]\nconstraints:\n  - {coeffs: [1], rel: '<', rhs: 1}\n"))
	assert.ErrorIs(t, err, lp.ErrInvalidRelation)

	_, err = lp.Load(strings.NewReader("objective: [1, 2]\nconstraints:\n  - {coeffs: [1], rel: '<=', rhs: 1}\n"))
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)

	_, err = lp.Load(strings.NewReader("objective: [1]\ncolour: blue\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wyndor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(wyndorYAML), 0o600))

	p, err := lp.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "wyndor", p.Name)

	_, err = lp.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
