// SPDX-License-Identifier: MIT

// Package mna assembles the linear system of Modified Nodal Analysis:
// a dense conductance matrix A and excitation vector b such that A·x = b
// yields every unknown node voltage and source branch current.
//
// Unknown layout (fixed, deterministic):
//
//   - one column per non-ground net, in first-touch component order
//     (the ground net is implicitly 0 V and never gets a column)
//   - then one column per voltage-source component, in component order,
//     carrying the signed current out of that source's positive terminal
//
// Invariant: A is square with dim = (#non-ground nets) + (#sources),
// and symmetric by construction for every stamp pattern below.
//
// Stamping rules:
//
//   - resistive elements (resistor, LED, switch) reduce to a fixed
//     equivalent resistance R and stamp conductance g = 1/R: +g on each
//     non-ground diagonal, −g on the symmetric off-diagonals when both
//     sides are non-ground.
//     resistor R = parsed Value, 1 kΩ when unparseable or zero;
//     LED R = 50 Ω flat; switch R = 0.01 Ω closed, 1e9 Ω otherwise.
//   - voltage sources stamp ±1 couplings between their node rows and
//     their own branch row, and set b at the branch row to the parsed
//     source voltage (9 V when unparseable or zero).
//   - ground and unmodeled kinds stamp nothing.
//
// The package also carries Dense, the row-major float64 matrix the
// stamps accumulate into; it is the storage the gauss solver consumes.
//
// Complexity: Build is O(n + dim²) time, O(dim²) memory.
package mna
