// Package analysis is the engine: one call turns a circuit snapshot
// into an immutable per-component result and a safety verdict.
//
// 🚀 The pipeline (one-way, no shared state):
//
//	graph → pins/nets → MNA matrix → solution → per-component V/I/P → verdict
//
//	 1. netlist.Resolve merges pins into electrical nets.
//	 2. mna.Build stamps the conductance system.
//	 3. gauss.Solve produces node voltages and branch currents.
//	 4. the extractor maps unknowns back onto components.
//	 5. Classify turns the numbers into a neutral/success/danger verdict.
//
// ✨ Guarantees:
//
//   - Synchronous and bounded: one call, one complete snapshot, one
//     fresh Result; nothing is cached or shared between calls.
//   - Deterministic: identical snapshots yield bit-identical results.
//   - Graceful: parse failures, floating nets, and even internal solver
//     faults all degrade to a physically-neutral all-zero result —
//     there is no error channel out of the engine.
//   - Concurrent-friendly: distinct snapshots may be analyzed in
//     parallel; Batch does exactly that via errgroup.
//
// ⚙️ Usage:
//
//	opts := analysis.DefaultOptions()
//	res := analysis.Analyze(snapshot, &opts)
//	verdict := analysis.Classify(snapshot, res, &opts)
//	if verdict.State == analysis.StateDanger {
//	  // a component exceeded the power ceiling; verdict.Detail names it
//	}
//
// Performance: dominated by Gaussian elimination, O(n³) in the number
// of unknowns; everything else is linear in components plus wires.
package analysis
