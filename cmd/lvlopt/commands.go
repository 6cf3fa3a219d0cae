package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/branchbound"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/sensitivity"
	"github.com/katalvlaran/lvlopt/simplex"
)

func newSimplexCmd(a *app) *cobra.Command {
	var (
		finalOnly bool
		limit     int
	)
	cmd := &cobra.Command{
		Use:     "simplex <problem.yaml>",
		Aliases: []string{"solve"},
		Short:   "Solve the LP relaxation with the Big-M tableau simplex",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.runSimplex(cmd, args[0], limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			a.printHistory(w, e, finalOnly)
			a.printOutcome(w, e)
			return nil
		},
	}
	cmd.Flags().BoolVar(&finalOnly, "final", false, "print only the last tableau")
	cmd.Flags().IntVar(&limit, "iterations", 0, "iteration limit (overrides the config)")

	return cmd
}

func newSensitivityCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "sensitivity <problem.yaml>",
		Short: "Shadow prices and ranging at the optimal tableau",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.runSimplex(cmd, args[0], limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			a.printOutcome(w, e)
			rep, err := sensitivity.Analyze(e)
			if err != nil {
				return err
			}
			a.printSensitivity(w, rep)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "iterations", 0, "iteration limit (overrides the config)")

	return cmd
}

func newBranchCmd(a *app) *cobra.Command {
	var (
		strategy  string
		nodeLimit int
		trace     bool
	)
	cmd := &cobra.Command{
		Use:     "branch <problem.yaml>",
		Aliases: []string{"bb"},
		Short:   "Solve an integer program by branch-and-bound",
		Long: "Solve an integer program by branch-and-bound. Variables listed under\n" +
			"`integer` in the problem file must be integral; with no list, all are.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lp.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts, err := a.cfg.SearchOptions(a.log)
			if err != nil {
				return err
			}
			if strategy != "" {
				if opts.Strategy, err = branchbound.ParseStrategy(strategy); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("node-limit") {
				opts.NodeLimit = nodeLimit
			}
			tr, err := branchbound.RunProblem(p, branchbound.WithOptions(opts))
			if err != nil {
				return err
			}
			a.printSearch(cmd.OutOrStdout(), tr, trace)
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "BFS, DFS or BestBound (overrides the config)")
	cmd.Flags().IntVar(&nodeLimit, "node-limit", 0, "maximum number of nodes (overrides the config)")
	cmd.Flags().BoolVar(&trace, "trace", true, "print the step log")

	return cmd
}

func newStandardFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "standard-form <problem.yaml>",
		Short: "Show the problem in standard form with slack and surplus columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lp.LoadFile(args[0])
			if err != nil {
				return err
			}
			sf, err := p.StandardForm()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, line := range a.text.RenderAll(sf.Notes) {
				fmt.Fprintln(w, "•", line)
			}

			headers := append(append([]string{""}, sf.Variables...), "", "RHS")
			rows := [][]string{append(append([]string{"max Z"}, nums(sf.Objective)...), "", "")}
			for i := range sf.A {
				row := append([]string{"R" + strconv.Itoa(i+1)}, nums(sf.A[i])...)
				rows = append(rows, append(row, "=", num(sf.B[i])))
			}
			fmt.Fprintln(w, a.styles.grid(headers, rows, nil))
			return nil
		},
	}
}

func newDualCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "dual <problem.yaml>",
		Short: "Build the dual problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lp.LoadFile(args[0])
			if err != nil {
				return err
			}
			d, err := lp.Dual(p)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asYAML {
				data, err := lp.Marshal(d.Problem)
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			}

			m := len(d.Domains)
			headers := []string{""}
			for i := 0; i < m; i++ {
				headers = append(headers, "y"+strconv.Itoa(i+1))
			}
			headers = append(headers, "", "RHS")
			rows := [][]string{append(append([]string{d.Problem.Sense.String() + " W"}, nums(d.Problem.Objective)...), "", "")}
			for j, con := range d.Problem.Constraints {
				row := append([]string{"R" + strconv.Itoa(j+1)}, nums(con.Coeffs)...)
				rows = append(rows, append(row, con.Rel.String(), num(con.RHS)))
			}
			domain := []string{a.text.Text("cli.domain")}
			for _, dm := range d.Domains {
				domain = append(domain, dm.String())
			}
			rows = append(rows, append(domain, "", ""))
			fmt.Fprintln(w, a.styles.grid(headers, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the dual as a problem file")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (a *app) runSimplex(cmd *cobra.Command, path string, limit int) (*simplex.Engine, error) {
	p, err := lp.LoadFile(path)
	if err != nil {
		return nil, err
	}
	opts := a.cfg.SimplexOptions(a.log)
	if cmd.Flags().Changed("iterations") {
		opts.IterationLimit = limit
	}

	return simplex.RunProblem(p, simplex.WithOptions(opts))
}

func (a *app) printHistory(w io.Writer, e *simplex.Engine, finalOnly bool) {
	vars := e.Variables()
	hist := e.History()
	if finalOnly {
		hist = hist[len(hist)-1:]
	}
	for _, st := range hist {
		fmt.Fprintln(w, a.styles.title.Render(a.text.Render(st.Label)))
		fmt.Fprintln(w, a.styles.tableau(vars, st))
		fmt.Fprintln(w, a.styles.muted.Render(a.text.Render(st.Narration)))
		fmt.Fprintln(w)
	}
}

func (a *app) printOutcome(w io.Writer, e *simplex.Engine) {
	fmt.Fprintf(w, "%s: %s   %s: %d\n",
		a.text.Text("cli.status"), a.styles.status(e.Status()),
		a.text.Text("cli.iterations"), e.Iterations())

	x, z, err := e.Solution()
	if err != nil {
		return
	}
	rows := make([][]string, len(x))
	for j, v := range x {
		rows[j] = []string{"x" + strconv.Itoa(j+1), num(v)}
	}
	fmt.Fprintln(w, a.styles.grid([]string{a.text.Text("cli.variable"), a.text.Text("cli.value")}, rows, nil))
	fmt.Fprintf(w, "%s: Z = %s\n", a.text.Text("cli.objective"), a.styles.good.Render(num(z)))

	basis := e.BasisInfo()
	names := make([]string, len(basis))
	for i, be := range basis {
		names[i] = be.Name + "=" + num(be.Value)
	}
	fmt.Fprintf(w, "%s: %s\n", a.text.Text("cli.basis"), strings.Join(names, ", "))
}

func (a *app) printSensitivity(w io.Writer, rep sensitivity.Report) {
	t := a.text
	rows := make([][]string, len(rep.RHS))
	for i, r := range rep.RHS {
		rows[i] = []string{
			"R" + strconv.Itoa(r.Row+1), num(r.RHS), num(r.ShadowPrice), num(r.Slack),
			a.yesNo(r.Binding), num(r.Lower), num(r.Upper),
		}
	}
	fmt.Fprintln(w, a.styles.grid([]string{
		t.Text("cli.constraint"), "RHS", t.Text("cli.shadow_price"), t.Text("cli.slack"),
		t.Text("cli.binding"), t.Text("cli.lower"), t.Text("cli.upper"),
	}, rows, nil))

	rows = make([][]string, len(rep.Objective))
	for j, c := range rep.Objective {
		rows[j] = []string{
			c.Name, num(c.Cost), num(c.Value), a.yesNo(c.Basic), num(c.Reduced), num(c.Lower), num(c.Upper),
		}
	}
	fmt.Fprintln(w, a.styles.grid([]string{
		t.Text("cli.variable"), t.Text("cli.cost"), t.Text("cli.value"), t.Text("cli.basis"),
		t.Text("cli.reduced_cost"), t.Text("cli.lower"), t.Text("cli.upper"),
	}, rows, nil))
}

func (a *app) printSearch(w io.Writer, tr *branchbound.Tree, trace bool) {
	t := a.text
	if trace {
		for _, line := range t.RenderAll(tr.Steps()) {
			fmt.Fprintln(w, a.styles.muted.Render("• "+line))
		}
		fmt.Fprintln(w)
	}

	nodes := tr.Nodes()
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		parent, value := "-", "-"
		if n.Parent >= 0 {
			parent = strconv.Itoa(n.Parent)
		}
		if !math.IsInf(n.Value, 0) {
			value = num(n.Value)
		}
		bounds := make([]string, len(n.Bounds))
		for k, bd := range n.Bounds {
			bounds[k] = bd.String()
		}
		rows[i] = []string{
			strconv.Itoa(n.ID), parent, strconv.Itoa(n.Depth), strings.Join(bounds, ", "),
			value, n.Status.String(), a.yesNo(n.IntegerFeasible),
		}
	}
	best, _, bestErr := tr.Best()
	fmt.Fprintln(w, a.styles.grid([]string{
		t.Text("cli.node"), t.Text("cli.parent"), t.Text("cli.depth"), t.Text("cli.bounds"),
		"Z", t.Text("cli.status"), "int",
	}, rows, nil))

	s := tr.Summary()
	fmt.Fprintln(w, t.Text("cli.summary", s.Nodes, s.Explored, s.Feasible, s.Integer, s.Pruned))
	fmt.Fprintf(w, "%s: %s\n", t.Text("cli.reason"), tr.Reason())
	if bestErr != nil {
		fmt.Fprintln(w, a.styles.warn.Render(t.Text("cli.no_incumbent")))
		return
	}
	fmt.Fprintf(w, "%s: x = [%s]  Z = %s\n",
		t.Text("cli.incumbent"), strings.Join(nums(best), " "), a.styles.good.Render(num(tr.BestValue())))
}

func (a *app) yesNo(v bool) string {
	if v {
		return a.text.Text("cli.yes")
	}

	return a.text.Text("cli.no")
}
