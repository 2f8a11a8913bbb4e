// Package dcsim is your in-memory engine for analyzing DC circuits —
// from a raw component/wire graph to per-component voltages, currents,
// power and a safety verdict.
//
// 🚀 What is dcsim?
//
//	A small, deterministic library that brings together:
//		• circuit primitives: components, wires, one-snapshot inputs
//		• magnitude parsing: "330", "10k", "100uF" → base-unit numbers
//		• net resolution: pins merged into electrical nets via union-find
//		• system assembly: Modified Nodal Analysis (MNA) stamping
//		• linear solving: Gaussian elimination with partial pivoting
//		• extraction & verdicts: V/I/P per component + overheat/lit checks
//
// ✨ Why choose dcsim?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – no panics, all failure modes degrade to zero
//   - Pure in-memory – one call, one snapshot, one immutable result
//   - Deterministic – identical input graphs produce bit-identical results
//
// Under the hood, everything is organized under six subpackages:
//
//	circuit/   — Component, Wire, Kind and input validation
//	magnitude/ — human-readable value strings to float64
//	netlist/   — pin/net resolution and ground inference
//	mna/       — conductance matrix + right-hand-side assembly
//	gauss/     — the dense linear solver
//	analysis/  — the engine: Analyze, Result, Classify, Batch
//
// Quick ASCII example:
//
//	    V───R───L
//	    │       │
//	    └───G───┘
//
//	a 9 V source through a resistor into an LED and back to ground.
//
// Dive into analysis/example_test.go for full, runnable walkthroughs.
//
//	go get github.com/voltlab/dcsim
package dcsim
