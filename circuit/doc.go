// SPDX-License-Identifier: MIT

// Package circuit provides the immutable input model for DC analysis:
// components, wires, and one-snapshot Circuit values.
//
// A Circuit C = (components, wires) is deliberately minimal:
//
//   - Component — one electrical device or terminal point: a unique ID,
//     a Kind tag, a free-text Label, a magnitude Value string, and 2-D
//     placement coordinates (renderer-only, ignored by analysis).
//   - Wire — an undirected edge naming two component IDs. Parallel wires
//     between the same pair are tolerated; this layer never deduplicates.
//   - Kind — a closed tagged set for the kinds the engine can stamp
//     (voltage source, ground, resistor, LED, switch) plus one catch-all
//     KindUnmodeled variant for everything the editor may invent.
//
// Why a closed Kind set?
//
//   - The system builder stays exhaustive and statically checkable: a
//     switch over Kind covers every stamping rule, and new editor kinds
//     simply flow through KindUnmodeled as zero-current pass-throughs.
//
// Validation is opt-in: Circuit.Validate reports structural problems
// (empty or duplicate IDs, wires naming unknown components) as sentinel
// errors, but the analysis engine never requires a validated input — it
// degrades gracefully on anything it is handed.
//
// Core Methods:
//
//	ParseKind(tag string) Kind          // O(1), never fails
//	(Kind).Resistive() bool             // O(1)
//	(Circuit).Component(id) (Component, bool) // O(n)
//	(Circuit).Validate() error          // O(n + m)
//
// All types are plain values: copy them freely, share them across
// goroutines, and treat every Circuit handed to the engine as frozen.
package circuit
