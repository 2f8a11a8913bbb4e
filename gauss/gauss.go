package gauss

import (
	"golang.org/x/exp/constraints"

	"github.com/voltlab/dcsim/mna"
)

// PivotTol is the magnitude below which a pivot counts as singular:
// the affected unknown resolves to exactly 0 (a floating net) instead
// of amplifying float noise through a near-zero division.
const PivotTol = 1e-10

// abs returns |v| for any float type.
func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Solve computes x for a·x = b.
//
// Algorithm Outline:
//  1. Guard: a nil/ill-shaped system yields the all-zero vector of
//     len(b) — the caller's defined "no solution" shape.
//  2. Clone a and copy b; the inputs stay untouched.
//  3. Forward elimination with partial pivoting: for each column k,
//     swap the row with the largest |row[k]| into position k (and swap
//     the matching b entries), then eliminate the column below the
//     pivot. Columns whose best pivot is below PivotTol are left as-is.
//  4. Back-substitution, top of the triangle last. Any diagonal below
//     PivotTol resolves its unknown to exactly 0.
//
// Solve never returns an error and never panics on singular input;
// degenerate rows are the expected encoding of disconnected nets.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(a *mna.Dense, b []float64) []float64 {
	n := len(b)
	x := make([]float64, n)
	if n == 0 {
		return x
	}
	// 1. Shape guard: degrade to all-zero rather than reject.
	if a == nil || a.Rows() != n || a.Cols() != n {
		return x
	}

	// 2. Work on copies; callers may reuse their system.
	work := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)
	// Borrow row views once; swapping slice headers is our row swap.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = work.Row(i) // i < n == work.Rows(), cannot fail
	}

	// 3. Forward elimination with partial pivoting.
	for k := 0; k < n; k++ {
		// Select the largest-magnitude pivot at or below row k.
		maxRow := k
		for i := k + 1; i < n; i++ {
			if abs(rows[i][k]) > abs(rows[maxRow][k]) {
				maxRow = i
			}
		}
		if maxRow != k {
			rows[k], rows[maxRow] = rows[maxRow], rows[k]
			rhs[k], rhs[maxRow] = rhs[maxRow], rhs[k]
		}

		pivot := rows[k][k]
		if abs(pivot) < PivotTol {
			// Singular column: nothing to eliminate, the unknown will
			// zero out during back-substitution.
			continue
		}
		for i := k + 1; i < n; i++ {
			factor := rows[i][k] / pivot
			if factor == 0 {
				continue
			}
			for j := k; j < n; j++ {
				rows[i][j] -= factor * rows[k][j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	// 4. Back-substitution with the singular-pivot guard.
	for i := n - 1; i >= 0; i-- {
		diag := rows[i][i]
		if abs(diag) < PivotTol {
			x[i] = 0 // floating net: defined, not an error

			continue
		}
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= rows[i][j] * x[j]
		}
		x[i] = sum / diag
	}

	return x
}
