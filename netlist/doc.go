// Package netlist infers the electrical topology of a circuit: it gives
// every component two conceptual pins (p1, p2) and merges pins that are
// electrically identical into equivalence classes called nets.
//
// 🚀 What is a net?
//
//	A net is the set of pins sitting at the same electrical potential —
//	one future unknown of the nodal analysis. Resolution runs a
//	disjoint-set union (union-find) with path compression and union by
//	rank over a synthetic integer pin-id space: two fresh ids per
//	component, allocated in component order.
//
// ✨ The directional pin heuristic:
//
//	Wires do not name pins, so resolution picks them with a fixed,
//	type-dependent rule (deliberately asymmetric — preset circuits
//	depend on its exact shape):
//	  • a voltage source always connects through p1 (its + terminal)
//	  • a ground connects through p1 (both its pins are shorted anyway)
//	  • any other component exposes p2 when it is the wire's From
//	    endpoint and p1 when it is the To endpoint
//
// 🔌 Ground reference, in falling priority:
//
//	 1. the merged net of all ground components
//	 2. the net at the first voltage source's p2
//	 3. none — the solver will later zero every unreferenced net
//
//	Every source's negative terminal is merged into the reference: the
//	pin heuristic can never route a wire to a source's p2, so the
//	return path through the battery is always implicit.
//
// All state is function-scoped: each Resolve call builds a fresh arena,
// so concurrent resolutions of different snapshots never interact.
//
// ⚙️ Usage:
//
//	net := netlist.Resolve(c.Components, c.Wires)
//	pins, ok := net.PinNets("r1") // the two net ids of component r1
//	gnd, ok := net.Ground()       // the reference net, if any
//
// Complexity: O((n + m)·α(n)) time, O(n) memory, with n components and
// m wires.
package netlist
