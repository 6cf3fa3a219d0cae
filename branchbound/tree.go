package branchbound

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlopt/event"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/simplex"
)

// Tree is a resumable Branch-and-Bound search. The zero value is ready for
// Initialize.
type Tree struct {
	opts Options
	log  *slog.Logger

	c, b    []float64
	A       [][]float64
	intVars []int // sorted, unique

	st          State
	pruned      int
	initialized bool
}

// Run initializes a tree and steps it until it finishes.
func Run(c []float64, A [][]float64, b []float64, integerVars []int, opts ...Option) (*Tree, error) {
	t := new(Tree)
	if err := t.Solve(c, A, b, integerVars, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// RunProblem lowers p to canonical ≤ rows and searches it with p's sense.
// An empty p.Integer marks every variable integer.
func RunProblem(p *lp.Problem, opts ...Option) (*Tree, error) {
	cf, err := p.Canonical()
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithSense(p.Sense))

	return Run(cf.C, cf.A, cf.B, cf.Integer, opts...)
}

// Solve is Initialize followed by Step until it returns false.
func (t *Tree) Solve(c []float64, A [][]float64, b []float64, integerVars []int, opts ...Option) error {
	if err := t.Initialize(c, A, b, integerVars, opts...); err != nil {
		return err
	}
	for t.Step() {
	}

	return nil
}

// Initialize validates the input, solves the root relaxation and seeds the
// arena with node 0. integerVars == nil marks every variable integer.
//
// The root node is always stored. When its relaxation is not Optimal the
// search finishes immediately with no incumbent; when it is already
// integral it becomes the incumbent and the search finishes.
func (t *Tree) Initialize(c []float64, A [][]float64, b []float64, integerVars []int, opts ...Option) error {
	if err := lp.ValidateRaw(c, A, b); err != nil {
		return err
	}
	o := buildOptions(opts)
	if err := o.Validate(); err != nil {
		return err
	}
	intVars, err := normalizeIntegerVars(integerVars, len(c))
	if err != nil {
		return err
	}

	*t = Tree{
		opts:    o,
		c:       append([]float64(nil), c...),
		b:       append([]float64(nil), b...),
		A:       cloneRows(A),
		intVars: intVars,
		st: State{
			BestValue: worst(o.Sense),
			RunID:     uuid.NewString(),
		},
		initialized: true,
	}
	t.log = o.Logger.With("run_id", t.st.RunID)

	root := t.solveNode(0, nil)
	root.Parent = -1
	t.st.Nodes = append(t.st.Nodes, root)
	t.st.NextID = 1
	nodesTotal.WithLabelValues(kindRoot).Inc()
	t.log.Debug("bb root solved", "status", root.Status.String(), "value", root.Value)

	switch {
	case root.Status == simplex.Unbounded:
		t.finish(RootUnbounded, event.New(event.BBRootUnbounded))
	case root.Status == simplex.IterationLimit:
		t.finish(RootIterationLimit, event.New(event.BBRootLimit, o.Simplex.IterationLimit))
	case !root.Feasible:
		t.finish(RootInfeasible, event.New(event.BBRootInfeasible))
	case root.IntegerFeasible:
		t.st.BestSolution = append([]float64(nil), root.Solution...)
		t.st.BestValue = root.Value
		t.finish(IntegerRoot, event.New(event.BBIntegerRoot, root.Value))
	default:
		t.st.Queue = append(t.st.Queue, 0)
	}

	return nil
}

// Step expands one frontier node and reports whether to call Step again.
// It is a no-op returning false once the search has finished.
func (t *Tree) Step() bool {
	if !t.initialized || t.st.Finished {
		return false
	}
	if len(t.st.Queue) == 0 {
		t.finish(Exhausted, event.New(event.BBExhausted))
		return false
	}
	if t.st.NextID >= t.opts.NodeLimit {
		t.finish(NodeLimitReached, event.New(event.BBNodeLimit, t.opts.NodeLimit))
		return false
	}

	id := t.pop()
	node := &t.st.Nodes[id]
	t.emit(event.New(event.BBSelect, id, t.opts.Strategy.String(), node.Value))

	if node.Processed || !t.better(node.Value, t.st.BestValue) {
		node.Processed = true
		t.pruned++
		nodesTotal.WithLabelValues(kindPruned).Inc()
		t.emit(event.New(event.BBPrune, id, node.Value, t.st.BestValue))
		t.log.Debug("bb prune", "node", id, "value", node.Value, "incumbent", t.st.BestValue)
		return true
	}
	node.Processed = true

	j := t.firstFractional(node.Solution)
	if j < 0 {
		return true
	}
	v := node.Solution[j]
	t.emit(event.New(event.BBBranch, id, j+1, v))
	t.log.Debug("bb branch", "node", id, "var", j+1, "value", v)

	for _, bd := range []Bound{
		{Var: j, Op: lp.LE, Value: math.Floor(v)},
		{Var: j, Op: lp.GE, Value: math.Ceil(v)},
	} {
		if t.st.NextID >= t.opts.NodeLimit {
			t.finish(NodeLimitReached, event.New(event.BBNodeLimit, t.opts.NodeLimit))
			return false
		}
		t.addChild(id, bd)
	}

	return true
}

// addChild solves the child of parent restricted by bd and files it.
func (t *Tree) addChild(parent int, bd Bound) {
	p := t.st.Nodes[parent]
	bounds := mergeBound(p.Bounds, bd)
	id := t.st.NextID
	t.st.NextID++

	child := t.solveNode(id, bounds)
	child.Parent = parent
	child.Depth = p.Depth + 1
	child.BranchReason = bd.String()
	t.st.Nodes = append(t.st.Nodes, child)

	if child.Status == simplex.IterationLimit {
		nodesTotal.WithLabelValues(kindLimit).Inc()
		t.emit(event.New(event.BBChildLimit, id, bd.Var+1, bd.Op.String(), bd.Value, t.opts.Simplex.IterationLimit))
		t.log.Warn("bb relaxation hit the iteration limit", "node", id, "limit", t.opts.Simplex.IterationLimit)
		return
	}
	if !child.Feasible {
		nodesTotal.WithLabelValues(kindInfeasible).Inc()
		t.emit(event.New(event.BBSubInfeasible, id, bd.Var+1, bd.Op.String(), bd.Value))
		return
	}
	t.emit(event.New(event.BBChild, id, bd.Var+1, bd.Op.String(), bd.Value, child.Value))

	improving := t.better(child.Value, t.st.BestValue)
	switch {
	case child.IntegerFeasible && improving:
		t.st.BestSolution = append([]float64(nil), child.Solution...)
		t.st.BestValue = child.Value
		nodesTotal.WithLabelValues(kindIncumbent).Inc()
		t.emit(event.New(event.BBUpdateBest, id, child.Value))
		t.log.Debug("bb incumbent", "node", id, "value", child.Value)
	case !child.IntegerFeasible && improving:
		t.st.Queue = append(t.st.Queue, id)
		nodesTotal.WithLabelValues(kindQueued).Inc()
	default:
		nodesTotal.WithLabelValues(kindFathomed).Inc()
		t.emit(event.New(event.BBFathomed, id, child.Value, t.st.BestValue))
	}
}

// solveNode runs the relaxation of the root problem plus bounds.
func (t *Tree) solveNode(id int, bounds []Bound) Node {
	A, b := t.applyBounds(bounds)
	n := Node{ID: id, Bounds: bounds, Value: worst(t.opts.Sense)}

	e, err := simplex.Run(t.c, A, b, t.opts.Sense == lp.Maximize,
		simplex.WithOptions(t.opts.Simplex),
		simplex.WithLogger(t.log.With("node", id)),
	)
	if err != nil {
		// Inputs and options were validated in Initialize; treat as a dead node.
		t.log.Error("bb relaxation rejected", "node", id, "error", err)
		n.Status = simplex.Infeasible
		return n
	}
	n.Status = e.Status()
	if !e.Optimal() {
		return n
	}
	x, z, _ := e.Solution()
	n.Solution, n.Value, n.Feasible = x, z, true
	n.IntegerFeasible = t.firstFractional(x) < 0

	return n
}

func (t *Tree) applyBounds(bounds []Bound) ([][]float64, []float64) {
	A := cloneRows(t.A)
	b := append([]float64(nil), t.b...)
	n := len(t.c)
	for _, bd := range bounds {
		row := make([]float64, n)
		if bd.Op == lp.LE {
			row[bd.Var] = 1
			b = append(b, bd.Value)
		} else {
			row[bd.Var] = -1
			b = append(b, -bd.Value)
		}
		A = append(A, row)
	}

	return A, b
}

// pop removes the next node id from the frontier.
func (t *Tree) pop() int {
	q := t.st.Queue
	var id int
	switch t.opts.Strategy {
	case DFS:
		id, t.st.Queue = q[len(q)-1], q[:len(q)-1]
	case BestBound:
		sort.SliceStable(q, func(i, j int) bool {
			return t.better(t.st.Nodes[q[i]].Value, t.st.Nodes[q[j]].Value)
		})
		id, t.st.Queue = q[0], q[1:]
	default:
		id, t.st.Queue = q[0], q[1:]
	}

	return id
}

func (t *Tree) firstFractional(x []float64) int {
	for _, j := range t.intVars {
		if math.Abs(x[j]-math.Round(x[j])) > t.opts.IntegralityTolerance {
			return j
		}
	}

	return -1
}

// better reports whether a strictly beats b in the search sense.
func (t *Tree) better(a, b float64) bool {
	if t.opts.Sense == lp.Minimize {
		return a < b
	}

	return a > b
}

func (t *Tree) emit(e event.Event) { t.st.Steps = append(t.st.Steps, e) }

func (t *Tree) finish(r Reason, e event.Event) {
	t.emit(e)
	t.st.Finished = true
	t.st.Reason = r
	searchesTotal.WithLabelValues(r.String()).Inc()
	t.log.Info("bb finished",
		"reason", r.String(), "nodes", len(t.st.Nodes),
		"incumbent", t.st.BestSolution != nil, "value", t.st.BestValue)
}

// mergeBound returns a fresh slice with bd added; a bound with the same
// variable and operator is replaced in place.
func mergeBound(bounds []Bound, bd Bound) []Bound {
	out := make([]Bound, 0, len(bounds)+1)
	replaced := false
	for _, old := range bounds {
		if old.Var == bd.Var && old.Op == bd.Op {
			out = append(out, bd)
			replaced = true
			continue
		}
		out = append(out, old)
	}
	if !replaced {
		out = append(out, bd)
	}

	return out
}

func normalizeIntegerVars(vars []int, n int) ([]int, error) {
	if vars == nil {
		all := make([]int, n)
		for j := range all {
			all[j] = j
		}
		return all, nil
	}
	seen := make(map[int]bool, len(vars))
	out := make([]int, 0, len(vars))
	for _, j := range vars {
		if j < 0 || j >= n {
			return nil, fmt.Errorf("integer variable %d with %d variables: %w", j, n, lp.ErrIntegerIndex)
		}
		if !seen[j] {
			seen[j] = true
			out = append(out, j)
		}
	}
	sort.Ints(out)

	return out, nil
}

func worst(s lp.Sense) float64 {
	if s == lp.Minimize {
		return math.Inf(1)
	}

	return math.Inf(-1)
}

func cloneRows(A [][]float64) [][]float64 {
	out := make([][]float64, len(A))
	for i := range A {
		out[i] = append([]float64(nil), A[i]...)
	}

	return out
}
