package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvlopt/simplex"
)

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorBad    = lipgloss.Color("#E74C3C")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	pivot  lipgloss.Style
	border lipgloss.Style
}

func newStyles(color bool) styles {
	plain := lipgloss.NewStyle()
	if !color {
		return styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		header: lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(colorMuted),
		good:   lipgloss.NewStyle().Foreground(colorAccent),
		warn:   lipgloss.NewStyle().Foreground(colorWarn),
		bad:    lipgloss.NewStyle().Foreground(colorBad),
		pivot:  lipgloss.NewStyle().Bold(true).Foreground(colorWarn),
		border: lipgloss.NewStyle().Foreground(colorBorder),
	}
}

// grid renders rows under headers. mark, when set, picks data cells to
// highlight; row indices start at 0 below the header.
func (s styles) grid(headers []string, rows [][]string, mark func(row, col int) bool) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cell.Inherit(s.header)
			case mark != nil && mark(row, col):
				return cell.Inherit(s.pivot)
			}
			return cell
		})

	return t.Render()
}

// status styles a solver outcome by how good it is.
func (s styles) status(st simplex.Status) string {
	switch st {
	case simplex.Optimal:
		return s.good.Render(st.String())
	case simplex.IterationLimit:
		return s.warn.Render(st.String())
	}

	return s.bad.Render(st.String())
}

// tableau renders one snapshot with the basis down the left side and the
// pivot element highlighted.
func (s styles) tableau(vars []simplex.Variable, st simplex.Step) string {
	headers := make([]string, 0, len(vars)+2)
	headers = append(headers, "")
	for _, v := range vars {
		headers = append(headers, v.Name)
	}
	headers = append(headers, "RHS")

	rows := make([][]string, len(st.Tableau))
	for i, r := range st.Tableau {
		label := "Z"
		if i > 0 {
			label = vars[st.Basis[i-1]].Name
		}
		row := make([]string, 0, len(r)+1)
		row = append(row, label)
		for _, v := range r {
			row = append(row, num(v))
		}
		rows[i] = row
	}

	return s.grid(headers, rows, func(row, col int) bool {
		return st.Pivot != simplex.NoPivot && row == st.Pivot.Row && col == st.Pivot.Col+1
	})
}

// num formats v with at most four decimals and no trailing zeros.
func num(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.Abs(v) < 5e-5:
		return "0"
	}
	out := strconv.FormatFloat(v, 'f', 4, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
	}

	return out
}

func nums(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = num(v)
	}

	return out
}
