package simplex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlopt/simplex"
)

// oracle solves max/min cᵀx, Ax ≤ b, x ≥ 0 with gonum by appending one slack
// per row: [A | I][x; s] = b. b may be negative; gonum runs its own phase 1.
func oracle(t *testing.T, c []float64, A [][]float64, b []float64, maximize bool) float64 {
	t.Helper()
	var (
		m = len(A)
		n = len(c)
	)
	eq := mat.NewDense(m, n+m, nil)
	for i := range A {
		for j := range A[i] {
			eq.Set(i, j, A[i][j])
		}
		eq.Set(i, n+i, 1)
	}
	cost := make([]float64, n+m)
	copy(cost, c)
	if maximize {
		floats.Scale(-1, cost)
	}
	opt, _, err := lp.Simplex(cost, eq, b, 0, nil)
	require.NoError(t, err)
	if maximize {
		return -opt
	}

	return opt
}

func randomBoundedLP(rng *rand.Rand) (c []float64, A [][]float64, b []float64) {
	n := 2 + rng.Intn(4)
	m := 2 + rng.Intn(4)
	c = make([]float64, n)
	for j := range c {
		c[j] = 1 + 9*rng.Float64()
	}
	A = make([][]float64, m)
	b = make([]float64, m)
	for i := range A {
		A[i] = make([]float64, n)
		for j := range A[i] {
			A[i][j] = 0.5 + 4.5*rng.Float64()
		}
		b[i] = 5 + 15*rng.Float64()
	}

	return c, A, b
}

func TestAgainstGonum_Maximize(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 40; k++ {
		c, A, b := randomBoundedLP(rng)

		e, err := simplex.Run(c, A, b, true)
		require.NoError(t, err)
		require.True(t, e.Optimal(), "case %d: status %s", k, e.Status())

		x, z, err := e.Solution()
		require.NoError(t, err)
		require.InDelta(t, oracle(t, c, A, b, true), z, 1e-6, "case %d", k)
		require.InDelta(t, floats.Dot(c, x), z, 1e-6, "case %d", k)
		for i := range A {
			require.LessOrEqual(t, floats.Dot(A[i], x), b[i]+1e-6, "case %d row %d", k, i)
		}
	}
}

// Adds a covering row Σx ≥ 1 so the minimum is away from the origin and
// the artificial path is exercised.
func TestAgainstGonum_MinimizeWithCover(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 40; k++ {
		c, A, b := randomBoundedLP(rng)
		cover := make([]float64, len(c))
		for j := range cover {
			cover[j] = -1
		}
		A = append(A, cover)
		b = append(b, -1)

		e, err := simplex.Run(c, A, b, false)
		require.NoError(t, err)
		require.True(t, e.Optimal(), "case %d: status %s", k, e.Status())

		x, z, err := e.Solution()
		require.NoError(t, err)
		require.InDelta(t, oracle(t, c, A, b, false), z, 1e-6, "case %d", k)
		require.GreaterOrEqual(t, floats.Sum(x), 1-1e-6, "case %d", k)
	}
}
