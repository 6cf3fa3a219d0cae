package simplex_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/event"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/simplex"
)

var (
	wyndorC = []float64{3, 5}
	wyndorA = [][]float64{{1, 0}, {0, 2}, {3, 2}}
	wyndorB = []float64{4, 12, 18}
)

func TestProductionMix(t *testing.T) {
	e, err := simplex.Run([]float64{100, 150}, [][]float64{{2, 3}, {1, 0.5}}, []float64{120, 50}, true)
	require.NoError(t, err)
	require.True(t, e.Optimal())

	x, z, err := e.Solution()
	require.NoError(t, err)
	assert.InDelta(t, 0, x[0], 1e-9)
	assert.InDelta(t, 40, x[1], 1e-9)
	assert.InDelta(t, 6000, z, 1e-6)
	assert.Equal(t, 1, e.Iterations())

	h := e.History()
	require.Len(t, h, 3)
	assert.Equal(t, simplex.NoPivot, h[0].Pivot)
	assert.Equal(t, event.LabelInitial, h[0].Label.Key)
	assert.Equal(t, simplex.Pivot{Row: 1, Col: 1}, h[1].Pivot)
	assert.Equal(t, event.SimplexIteration, h[1].Narration.Key)
	assert.Equal(t, "x2", h[1].Narration.Params[1])
	assert.Equal(t, "s1", h[1].Narration.Params[2])
	assert.Equal(t, event.LabelOptimal, h[2].Label.Key)
	assert.Equal(t, simplex.NoPivot, h[2].Pivot)
}

func TestWyndor(t *testing.T) {
	e, err := simplex.Run(wyndorC, wyndorA, wyndorB, true)
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, e.Status())

	x, z, err := e.Solution()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 6}, x, 1e-9)
	assert.InDelta(t, 36, z, 1e-9)
	assert.Equal(t, 2, e.Iterations())

	info := e.BasisInfo()
	require.Len(t, info, 3)
	assert.Equal(t, "s1", info[0].Name)
	assert.Equal(t, "x2", info[1].Name)
	assert.Equal(t, "x1", info[2].Name)
	assert.InDelta(t, 2, info[0].Value, 1e-9)
	assert.InDelta(t, 6, info[1].Value, 1e-9)
}

func TestSolutionIdempotent(t *testing.T) {
	e, err := simplex.Run(wyndorC, wyndorA, wyndorB, true)
	require.NoError(t, err)

	x1, z1, err := e.Solution()
	require.NoError(t, err)
	x1[0] = 99
	x2, z2, err := e.Solution()
	require.NoError(t, err)

	assert.Equal(t, z1, z2)
	assert.InDelta(t, 2, x2[0], 1e-9)
}

func TestMinimize(t *testing.T) {
	// min 2x1 + 3x2  s.t.  x1 + x2 ≥ 4,  x1 + 3x2 ≥ 6
	e, err := simplex.Run([]float64{2, 3}, [][]float64{{-1, -1}, {-1, -3}}, []float64{-4, -6}, false)
	require.NoError(t, err)
	require.True(t, e.Optimal())

	x, z, err := e.Solution()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 1}, x, 1e-6)
	assert.InDelta(t, 9, z, 1e-6)
}

func TestMinimize_OriginOptimal(t *testing.T) {
	e, err := simplex.Run([]float64{1, 1}, [][]float64{{1, 1}}, []float64{5}, false)
	require.NoError(t, err)
	require.True(t, e.Optimal())
	assert.Equal(t, 0, e.Iterations())

	_, z, err := e.Solution()
	require.NoError(t, err)
	assert.InDelta(t, 0, z, 1e-12)
}

func TestUnbounded(t *testing.T) {
	e, err := simplex.Run([]float64{1}, [][]float64{{-1}}, []float64{-1}, true)
	require.NoError(t, err)
	assert.True(t, e.Unbounded())
	assert.False(t, e.Optimal())

	_, _, err = e.Solution()
	assert.ErrorIs(t, err, simplex.ErrNotOptimal)

	h := e.History()
	last := h[len(h)-1]
	assert.Equal(t, event.LabelUnbounded, last.Label.Key)
	assert.Equal(t, event.SimplexUnbounded, last.Narration.Key)
}

// x1 + x2 ≥ 2 with nothing bounding the maximisation.
func TestGERowWithArtificial_Unbounded(t *testing.T) {
	e, err := simplex.Run([]float64{1, 1}, [][]float64{{-1, -1}}, []float64{-2}, true)
	require.NoError(t, err)
	assert.True(t, e.Unbounded())
	assert.Equal(t, 1, e.Iterations())

	vars := e.Variables()
	require.Len(t, vars, 4)
	assert.Equal(t, simplex.Variable{Name: "e1", Kind: simplex.Surplus, Row: 0}, vars[2])
	assert.Equal(t, simplex.Variable{Name: "a1", Kind: simplex.Artificial, Row: 0}, vars[3])
}

func TestInfeasible(t *testing.T) {
	// x1 ≤ 1 and x1 ≥ 2
	e, err := simplex.Run([]float64{1}, [][]float64{{1}, {-1}}, []float64{1, -2}, true)
	require.NoError(t, err)
	assert.True(t, e.Infeasible())

	h := e.History()
	last := h[len(h)-1]
	assert.Equal(t, event.SimplexInfeasible, last.Narration.Key)
	assert.Equal(t, "a2", last.Narration.Params[0])
	assert.InDelta(t, 1, last.Narration.Params[1].(float64), 1e-9)

	_, _, err = e.Solution()
	assert.ErrorIs(t, err, simplex.ErrNotOptimal)
}

func TestIterationLimit(t *testing.T) {
	for _, tc := range []struct {
		limit int
		want  simplex.Status
		iters int
	}{
		{0, simplex.IterationLimit, 0},
		{1, simplex.IterationLimit, 1},
		{2, simplex.Optimal, 2},
	} {
		e, err := simplex.Run(wyndorC, wyndorA, wyndorB, true, simplex.WithIterationLimit(tc.limit))
		require.NoError(t, err)
		assert.Equal(t, tc.want, e.Status(), "limit %d", tc.limit)
		assert.Equal(t, tc.iters, e.Iterations(), "limit %d", tc.limit)
	}
}

func TestStepwise(t *testing.T) {
	var e simplex.Engine
	assert.False(t, e.Step(), "uninitialized engine must not step")

	require.NoError(t, e.Initialize(wyndorC, wyndorA, wyndorB, true))
	assert.Equal(t, simplex.Running, e.Status())
	require.Len(t, e.History(), 1)

	assert.True(t, e.Step())
	assert.True(t, e.Step())
	assert.False(t, e.Step())
	assert.True(t, e.Finished())
	n := len(e.History())

	assert.False(t, e.Step())
	assert.Len(t, e.History(), n, "terminal Step must not record")
}

func TestHistorySnapshotsAreIndependent(t *testing.T) {
	var e simplex.Engine
	require.NoError(t, e.Initialize(wyndorC, wyndorA, wyndorB, true))
	first := e.History()[0]
	before := first.Tableau[0][1]

	for e.Step() {
	}
	assert.Equal(t, before, e.History()[0].Tableau[0][1])
	assert.Equal(t, -5.0, before)
	assert.Equal(t, []int{2, 3, 4}, first.Basis)
}

func TestTableauLayout(t *testing.T) {
	var e simplex.Engine
	require.NoError(t, e.Initialize([]float64{1, 2}, [][]float64{{1, 1}, {-1, 0}, {0, 1}}, []float64{4, -1, 3}, true,
		simplex.WithBigM(100)))

	// decision x1 x2 | slack s1 s3 | surplus e2 | artificial a2 | RHS
	assert.Equal(t, 6, e.RHSColumn())
	rows := e.Rows()
	assert.Equal(t, simplex.RowInfo{Aux: 2, Artificial: -1}, rows[0])
	assert.Equal(t, simplex.RowInfo{Flipped: true, Aux: 4, Artificial: 5}, rows[1])
	assert.Equal(t, simplex.RowInfo{Aux: 3, Artificial: -1}, rows[2])

	tab := e.Tableau()
	obj, err := tab.Row(0)
	require.NoError(t, err)
	// -c + M on a2, minus M times row 2 (x1 - e2 + a2 = 1)
	assert.Equal(t, []float64{-101, -2, 0, 0, 100, 0, -100}, obj)
	row2, err := tab.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, -1, 1, 1}, row2)
	assert.Equal(t, []int{2, 5, 3}, e.Basis())
}

func TestInitializeErrors(t *testing.T) {
	var e simplex.Engine
	assert.ErrorIs(t, e.Initialize(nil, nil, nil, true), simplex.ErrEmptyObjective)
	assert.ErrorIs(t, e.Initialize([]float64{1}, [][]float64{{1, 2}}, []float64{1}, true), simplex.ErrDimensionMismatch)
	assert.ErrorIs(t, e.Initialize([]float64{1}, [][]float64{{1}}, []float64{1, 2}, true), lp.ErrDimensionMismatch)
	assert.ErrorIs(t, e.Initialize([]float64{1}, [][]float64{{1}}, []float64{1}, true, simplex.WithBigM(0)), simplex.ErrInvalidOptions)
	assert.ErrorIs(t, e.Initialize([]float64{1}, [][]float64{{1}}, []float64{1}, true, simplex.WithIterationLimit(-1)), simplex.ErrInvalidOptions)
	assert.False(t, e.Step())
}

func TestRunProblem(t *testing.T) {
	p := &lp.Problem{
		Sense:     lp.Minimize,
		Objective: []float64{2, 3},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 1}, Rel: lp.GE, RHS: 4},
			{Coeffs: []float64{1, 3}, Rel: lp.GE, RHS: 6},
		},
	}
	e, err := simplex.RunProblem(p)
	require.NoError(t, err)
	x, z, err := e.Solution()
	require.NoError(t, err)
	assert.InDelta(t, 9, z, 1e-6)
	assert.True(t, p.Feasible(x, 1e-6))

	// equality split into two rows
	p = &lp.Problem{
		Objective:   []float64{1, 1},
		Constraints: []lp.Constraint{{Coeffs: []float64{1, 2}, Rel: lp.EQ, RHS: 4}},
	}
	e, err = simplex.RunProblem(p)
	require.NoError(t, err)
	assert.Equal(t, 2, e.NumConstraints())
	_, z, err = e.Solution()
	require.NoError(t, err)
	assert.InDelta(t, 4, z, 1e-6)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e, err := simplex.Run(wyndorC, wyndorA, wyndorB, true, simplex.WithLogger(logger))
	require.NoError(t, err)
	require.NotEmpty(t, e.RunID())

	out := buf.String()
	assert.Contains(t, out, `"msg":"simplex pivot"`)
	assert.Contains(t, out, `"msg":"simplex finished"`)
	assert.Contains(t, out, `"run_id":"`+e.RunID()+`"`)
	assert.Contains(t, out, `"status":"optimal"`)
}

func TestEqualityRow_DrivesOutZeroArtificial(t *testing.T) {
	// x1 + x2 = 2 as x1+x2 ≤ 2 and -x1-x2 ≤ -2
	var e *simplex.Engine
	var err error
	require.NotPanics(t, func() {
		e, err = simplex.Run([]float64{1, 1}, [][]float64{{1, 1}, {-1, -1}}, []float64{2, -2}, true)
	})
	require.NoError(t, err)
	require.True(t, e.Optimal())

	x, z, err := e.Solution()
	require.NoError(t, err)
	assert.InDelta(t, 2, z, 1e-9)
	assert.InDelta(t, 2, x[0]+x[1], 1e-9)

	vars := e.Variables()
	for _, j := range e.Basis() {
		assert.NotEqual(t, simplex.Artificial, vars[j].Kind, vars[j].Name)
	}
	assert.Equal(t, 3, e.Iterations())

	var drive event.Event
	for _, s := range e.History() {
		if s.Narration.Key == event.SimplexDriveOut {
			drive = s.Narration
		}
	}
	require.Equal(t, event.SimplexDriveOut, drive.Key)
	assert.Equal(t, "s1", drive.Params[1])
	assert.Equal(t, "a2", drive.Params[2])
	assert.Equal(t, event.SimplexOptimal, e.History()[len(e.History())-1].Narration.Key)
}
