// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - Provide the three Gauss–Jordan primitives a tableau pivot is made of:
//     scale a row, add a multiple of one row to another, and the combined
//     Pivot that normalises a row and clears its column everywhere else.
//   - Delegate the vector kernels to gonum/floats (Scale, AddScaled).
//
// Determinism:
//   - Rows are processed in ascending index order; no concurrency.
//
// Complexity:
//   - ScaleRow O(c); AddScaledRow O(c); Pivot O(r*c).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const ctxPivot = "Pivot"

// ScaleRow multiplies every entry of row i by f.
func (m *Dense) ScaleRow(i int, f float64) error {
	row, err := m.Row(i)
	if err != nil {
		return err
	}
	floats.Scale(f, row)

	return nil
}

// AddScaledRow performs row[dst] += f * row[src].
// dst == src is allowed and doubles as scaling by (1+f).
func (m *Dense) AddScaledRow(dst, src int, f float64) error {
	d, err := m.Row(dst)
	if err != nil {
		return err
	}
	s, err := m.Row(src)
	if err != nil {
		return err
	}
	floats.AddScaled(d, f, s)

	return nil
}

// Pivot performs one Gauss–Jordan pivot on entry (pr, pc):
//
//  1. row[pr] /= a[pr][pc];
//  2. for every other row i: row[i] -= a[i][pc] * row[pr].
//
// After the pivot column pc is an exact unit vector (1 at pr, 0 elsewhere);
// the entries are written explicitly instead of trusting the floating-point
// cancellation, so basis columns stay clean across many pivots.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrZeroPivot if |a[pr][pc]| <= tol.
func (m *Dense) Pivot(pr, pc int, tol float64) error {
	if _, err := m.indexOf(ctxPivot, pr, pc); err != nil {
		return err
	}
	var (
		p      = m.data[pr*m.c+pc]
		i      int
		factor float64
	)
	if math.Abs(p) <= tol {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxPivot, pr, pc, ErrZeroPivot)
	}

	pivotRow := m.data[pr*m.c : (pr+1)*m.c]
	floats.Scale(1/p, pivotRow)
	pivotRow[pc] = 1

	for i = 0; i < m.r; i++ {
		if i == pr {
			continue
		}
		factor = m.data[i*m.c+pc]
		if factor == 0 {
			continue
		}
		floats.AddScaled(m.data[i*m.c:(i+1)*m.c], -factor, pivotRow)
		m.data[i*m.c+pc] = 0
	}

	return nil
}
