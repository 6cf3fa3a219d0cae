package simplex

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlopt/event"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/matrix"
)

// Engine is a resumable tableau simplex run. The zero value is ready for
// Initialize; an Engine is owned by one goroutine.
type Engine struct {
	opts  Options
	log   *slog.Logger
	runID string

	c, b     []float64 // inputs as given (copies)
	maximize bool
	lay      layout
	vars     []Variable

	t     *matrix.Dense
	basis []int

	status      Status
	iterations  int
	history     []Step
	initialized bool
}

// Run initializes an engine and steps it to a terminal status.
func Run(c []float64, A [][]float64, b []float64, maximize bool, opts ...Option) (*Engine, error) {
	e := new(Engine)
	if err := e.Solve(c, A, b, maximize, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// RunProblem lowers p to canonical ≤ rows and runs it. Integer
// designations are ignored; see package branchbound for those.
func RunProblem(p *lp.Problem, opts ...Option) (*Engine, error) {
	cf, err := p.Canonical()
	if err != nil {
		return nil, err
	}

	return Run(cf.C, cf.A, cf.B, cf.Maximize, opts...)
}

// Initialize validates the input, builds the initial tableau, resets the run
// state and records the initial history step. It fails only on malformed
// input or invalid options; the previous run, if any, is discarded.
func (e *Engine) Initialize(c []float64, A [][]float64, b []float64, maximize bool, opts ...Option) error {
	if err := lp.ValidateRaw(c, A, b); err != nil {
		return err
	}
	o := buildOptions(opts)
	if err := o.Validate(); err != nil {
		return err
	}

	lay := planLayout(len(c), b)
	t, basis, err := buildTableau(lay, c, A, b, maximize, o.BigM)
	if err != nil {
		return err
	}

	*e = Engine{
		opts:        o,
		runID:       uuid.NewString(),
		c:           append([]float64(nil), c...),
		b:           append([]float64(nil), b...),
		maximize:    maximize,
		lay:         lay,
		vars:        lay.variables(),
		t:           t,
		basis:       basis,
		status:      Running,
		initialized: true,
	}
	e.log = o.Logger.With("run_id", e.runID)

	sense := lp.Maximize
	if !maximize {
		sense = lp.Minimize
	}
	e.record(
		event.New(event.LabelInitial),
		event.New(event.SimplexInitial, lay.n, lay.m, lay.slacks, lay.surpluses, lay.surpluses, sense.String()),
		NoPivot,
	)
	e.log.Debug("simplex initialized",
		"vars", lay.n, "rows", lay.m, "artificials", lay.surpluses, "sense", sense.String())

	return nil
}

// Step advances the run by at most one pivot and reports whether the caller
// should call Step again. It returns false once the run is terminal (or was
// never initialized) and is a no-op afterwards.
func (e *Engine) Step() bool {
	if !e.initialized || e.status != Running {
		return false
	}

	col := e.enteringColumn()
	if col < 0 {
		if e.finishIfInfeasible() {
			return false
		}
		row, out := e.driveOutPivot()
		if row < 0 {
			e.finish(Optimal,
				event.New(event.LabelOptimal),
				event.New(event.SimplexOptimal, e.iterations, e.objectiveValue()))
			return false
		}
		// the artificial sits at a value within FeasibilityTolerance of zero
		_ = e.t.Set(row, e.lay.rhs, 0)
		leaving := e.vars[e.basis[row-1]].Name
		pivotValue, ok := e.pivot(row, out)
		if !ok {
			return false
		}
		e.record(
			event.New(event.LabelIteration, e.iterations),
			event.New(event.SimplexDriveOut, e.iterations, e.vars[out].Name, leaving, row, out, pivotValue),
			Pivot{Row: row, Col: out},
		)
		e.log.Debug("simplex drive out",
			"iteration", e.iterations, "entering", e.vars[out].Name, "leaving", leaving,
			"row", row, "col", out)
		return true
	}

	if e.iterations >= e.opts.IterationLimit {
		e.finish(IterationLimit,
			event.New(event.LabelLimit),
			event.New(event.SimplexLimit, e.opts.IterationLimit))
		return false
	}

	row, ratio := e.leavingRow(col)
	if row < 0 {
		e.finish(Unbounded,
			event.New(event.LabelUnbounded),
			event.New(event.SimplexUnbounded, e.vars[col].Name, col))
		return false
	}

	leaving := e.vars[e.basis[row-1]].Name
	pivotValue, ok := e.pivot(row, col)
	if !ok {
		return false
	}
	e.record(
		event.New(event.LabelIteration, e.iterations),
		event.New(event.SimplexIteration, e.iterations, e.vars[col].Name, leaving, row, col, pivotValue, ratio),
		Pivot{Row: row, Col: col},
	)
	e.log.Debug("simplex pivot",
		"iteration", e.iterations, "entering", e.vars[col].Name, "leaving", leaving,
		"row", row, "col", col, "ratio", ratio)

	return true
}

// Solve is Initialize followed by Step until it returns false.
func (e *Engine) Solve(c []float64, A [][]float64, b []float64, maximize bool, opts ...Option) error {
	if err := e.Initialize(c, A, b, maximize, opts...); err != nil {
		return err
	}
	for e.Step() {
	}

	return nil
}

// enteringColumn returns the column with the most negative reduced cost
// below -Epsilon, or -1 when the tableau is optimal.
func (e *Engine) enteringColumn() int {
	obj, _ := e.t.Row(0)
	var (
		best = -e.opts.Epsilon
		col  = -1
	)
	for j := 0; j < e.lay.rhs; j++ {
		if obj[j] < best {
			best, col = obj[j], j
		}
	}

	return col
}

// leavingRow runs the minimum-ratio test on col and returns the tableau row
// (1-based, row 0 is the objective) and the ratio, or -1 when unbounded.
func (e *Engine) leavingRow(col int) (int, float64) {
	var (
		row  = -1
		best = math.Inf(1)
		a    float64
		rhs  float64
		r    float64
	)
	for i := 1; i <= e.lay.m; i++ {
		a, _ = e.t.At(i, col)
		if a <= e.opts.PivotTolerance {
			continue
		}
		rhs, _ = e.t.At(i, e.lay.rhs)
		r = rhs / a
		if r >= 0 && r < best {
			best, row = r, i
		}
	}

	return row, best
}

// pivot swaps col into the basis at row and returns the pivot element.
// Callers pick entries above PivotTolerance, so a rejected pivot leaves an
// untouched tableau; the run then ends inconclusive instead of looping.
func (e *Engine) pivot(row, col int) (float64, bool) {
	pivotValue, _ := e.t.At(row, col)
	if err := e.t.Pivot(row, col, e.opts.PivotTolerance); err != nil {
		e.log.Error("simplex pivot rejected", "row", row, "col", col, "error", err)
		e.finish(IterationLimit,
			event.New(event.LabelLimit),
			event.New(event.SimplexLimit, e.opts.IterationLimit))
		return pivotValue, false
	}
	e.basis[row-1] = col
	e.iterations++
	pivotsTotal.Inc()

	return pivotValue, true
}

// finishIfInfeasible ends the run Infeasible when a basic artificial is
// above FeasibilityTolerance at the Big-M optimum.
func (e *Engine) finishIfInfeasible() bool {
	for i, col := range e.basis {
		if e.vars[col].Kind != Artificial {
			continue
		}
		v, _ := e.t.At(i+1, e.lay.rhs)
		if v > e.opts.FeasibilityTolerance {
			e.finish(Infeasible,
				event.New(event.LabelInfeasible),
				event.New(event.SimplexInfeasible, e.vars[col].Name, v))
			return true
		}
	}

	return false
}

// driveOutPivot finds a zero-valued basic artificial and a non-artificial
// column with a usable entry in its row. While such an artificial stays
// basic, row 0 carries its Big-M cost and the reduced costs are not the
// duals of the real problem. A row with no usable entry is redundant and
// keeps its artificial; that row is zero in every real column, so it does
// not reach row 0 of those columns. Returns (-1, -1) when nothing is left.
func (e *Engine) driveOutPivot() (int, int) {
	for i, bc := range e.basis {
		if e.vars[bc].Kind != Artificial {
			continue
		}
		row, _ := e.t.Row(i + 1)
		for j := 0; j < e.lay.rhs; j++ {
			if e.vars[j].Kind == Artificial {
				continue
			}
			if math.Abs(row[j]) > e.opts.PivotTolerance {
				return i + 1, j
			}
		}
	}

	return -1, -1
}

func (e *Engine) finish(s Status, label, narration event.Event) {
	e.status = s
	e.record(label, narration, NoPivot)
	runsTotal.WithLabelValues(s.String()).Inc()
	e.log.Info("simplex finished", "status", s.String(), "iterations", e.iterations)
}

func (e *Engine) record(label, narration event.Event, p Pivot) {
	e.history = append(e.history, Step{
		Tableau:   e.t.ToSlices(),
		Basis:     append([]int(nil), e.basis...),
		Label:     label,
		Narration: narration,
		Pivot:     p,
	})
}

// objectiveValue is row 0's RHS in the caller's sense.
func (e *Engine) objectiveValue() float64 {
	z, _ := e.t.At(0, e.lay.rhs)
	if !e.maximize {
		return -z
	}

	return z
}

// Status returns the current status (Running before a terminal step).
func (e *Engine) Status() Status { return e.status }

// Optimal reports whether the run ended Optimal.
func (e *Engine) Optimal() bool { return e.status == Optimal }

// Unbounded reports whether the run ended Unbounded.
func (e *Engine) Unbounded() bool { return e.status == Unbounded }

// Infeasible reports whether the run ended Infeasible.
func (e *Engine) Infeasible() bool { return e.status == Infeasible }

// LimitReached reports whether the run hit the iteration limit.
func (e *Engine) LimitReached() bool { return e.status == IterationLimit }

// Finished reports whether the run is terminal.
func (e *Engine) Finished() bool { return e.initialized && e.status != Running }

// Iterations returns the number of pivots performed.
func (e *Engine) Iterations() int { return e.iterations }

// RunID returns the identifier attached to this run's log records.
func (e *Engine) RunID() string { return e.runID }

// Options returns the effective options of the run.
func (e *Engine) Options() Options { return e.opts }

// History returns the recorded steps. The slice is a copy; the steps share
// their snapshots, which are never mutated after recording.
func (e *Engine) History() []Step {
	return append([]Step(nil), e.history...)
}
