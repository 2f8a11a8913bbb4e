// Package gauss solves the dense linear systems assembled by mna, using
// Gaussian elimination with partial pivoting and back-substitution.
//
// 🚀 Why partial pivoting?
//
//	At each elimination step the row with the largest absolute leading
//	coefficient is swapped into the pivot position, which keeps the
//	conductance systems of badly scaled circuits (0.01 Ω switches next
//	to 1e9 Ω open contacts) numerically stable.
//
// 🕳️ Singular systems are not errors:
//
//	A floating or disconnected net produces a pivot column that is
//	effectively zero. Any pivot with magnitude below PivotTol resolves
//	that unknown to exactly 0 instead of dividing by a near-zero —
//	"no reference, no voltage" is the defined physical answer, so
//	Solve never returns an error and never panics.
//
// ⚙️ Usage:
//
//	sys := mna.Build(c.Components, net)
//	x := gauss.Solve(sys.A, sys.B) // len(x) == sys.Dim(), always
//
// Inputs are never mutated: Solve works on a clone of the matrix and a
// copy of the right-hand side.
//
// Performance: O(n³) time, O(n²) memory for the working clone.
package gauss
