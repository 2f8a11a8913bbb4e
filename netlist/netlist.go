package netlist

import (
	"github.com/voltlab/dcsim/circuit"
)

// NetID identifies one electrical net: the canonical representative of
// a pin equivalence class within a single Resolve call. NetIDs from
// different Resolve calls are unrelated.
type NetID int

// PinPair holds the two net ids of one component: P1 for its first
// conceptual terminal and P2 for its second. For a ground component
// P1 == P2 always.
type PinPair struct {
	P1, P2 NetID
}

// Netlist is the immutable outcome of one resolution: the pin-to-net
// assignment for every component plus the ground reference, if any.
type Netlist struct {
	pins      map[string]PinPair // component ID → canonical net ids
	order     []NetID            // distinct nets in first-touch component order
	ground    NetID              // reference net, valid iff hasGround
	hasGround bool
}

// PinNets returns the two net ids of the component with the given ID.
// The second return is false for IDs the resolution never saw.
// Complexity: O(1).
func (n *Netlist) PinNets(id string) (PinPair, bool) {
	p, ok := n.pins[id]

	return p, ok
}

// Ground returns the reference net. The second return is false when
// the circuit has neither a ground component nor a voltage source: in
// that case no net is the 0 V reference and downstream voltages are
// not physically meaningful.
// Complexity: O(1).
func (n *Netlist) Ground() (NetID, bool) {
	return n.ground, n.hasGround
}

// IsGround reports whether net is the ground reference.
// Complexity: O(1).
func (n *Netlist) IsGround(net NetID) bool {
	return n.hasGround && net == n.ground
}

// Nets returns the distinct nets touched by any component pin, in
// first-touch component order (deterministic for a given snapshot).
// The ground net, when present, is included. The slice is a copy.
// Complexity: O(#nets).
func (n *Netlist) Nets() []NetID {
	out := make([]NetID, len(n.order))
	copy(out, n.order)

	return out
}

// Resolve infers pins and nets for one circuit snapshot.
//
// Steps:
//  1. Allocate two fresh union-find ids per component, in component
//     order. A ground component's own pins are unioned immediately.
//  2. For each wire, select the participating pin on each endpoint via
//     the directional heuristic (see the package comment) and union
//     the two pin ids. Wires naming unknown components are skipped —
//     the engine degrades, it never rejects.
//  3. Merge all ground components pairwise into one ground net; its
//     representative becomes the reference. Without any ground, the
//     first voltage source's p2 representative is the reference
//     instead. Without either, there is no reference.
//  4. Canonicalize every component's pin ids to their final
//     representatives and freeze the result.
//
// Components untouched by any wire keep two distinct singleton nets —
// a valid dangling device that later solves to 0.
//
// Complexity: O((n+m)·α(n)) time, O(n) memory.
func Resolve(components []circuit.Component, wires []circuit.Wire) *Netlist {
	// 1. Fresh arena; two pin ids per component.
	var uf dsu
	type rawPins struct{ p1, p2 int }
	raw := make(map[string]rawPins, len(components))
	kind := make(map[string]circuit.Kind, len(components))

	for _, comp := range components {
		p := rawPins{p1: uf.alloc(), p2: uf.alloc()}
		raw[comp.ID] = p
		kind[comp.ID] = comp.Kind
		if comp.Kind == circuit.KindGround {
			// A ground's two pins are always electrically identical.
			uf.union(p.p1, p.p2)
		}
	}

	// pinFor selects which pin of a component a wire attaches to.
	// asSource is true when the component is the wire's From endpoint.
	pinFor := func(id string, asSource bool) int {
		p := raw[id]
		switch {
		case kind[id] == circuit.KindVoltageSource:
			// A source always connects through its positive terminal.
			return p.p1
		case kind[id] == circuit.KindGround:
			return p.p1 // both pins shorted; either one works
		case asSource:
			return p.p2 // outgoing side
		default:
			return p.p1 // incoming side
		}
	}

	// 2. Union wire endpoints.
	for _, w := range wires {
		if _, ok := raw[w.From]; !ok {
			continue
		}
		if _, ok := raw[w.To]; !ok {
			continue
		}
		uf.union(pinFor(w.From, true), pinFor(w.To, false))
	}

	// 3. Ground reference: explicit grounds merged first, the first
	//    source's negative terminal otherwise. Source negatives then
	//    join the reference: the pin heuristic can never select a
	//    source's p2, so the return path is always implicit.
	groundPin := -1
	for _, comp := range components {
		if comp.Kind != circuit.KindGround {
			continue
		}
		p := raw[comp.ID]
		if groundPin < 0 {
			groundPin = p.p1
		} else {
			uf.union(groundPin, p.p1)
		}
	}
	for _, comp := range components {
		if comp.Kind != circuit.KindVoltageSource {
			continue
		}
		p2 := raw[comp.ID].p2
		if groundPin < 0 {
			groundPin = p2
		} else {
			uf.union(groundPin, p2)
		}
	}

	// 4. Canonicalize to final representatives.
	n := &Netlist{pins: make(map[string]PinPair, len(components))}
	seen := make(map[NetID]struct{}, len(components))
	touch := func(net NetID) {
		if _, ok := seen[net]; !ok {
			seen[net] = struct{}{}
			n.order = append(n.order, net)
		}
	}
	for _, comp := range components {
		p := raw[comp.ID]
		pair := PinPair{P1: NetID(uf.find(p.p1)), P2: NetID(uf.find(p.p2))}
		n.pins[comp.ID] = pair
		touch(pair.P1)
		touch(pair.P2)
	}
	if groundPin >= 0 {
		n.ground = NetID(uf.find(groundPin))
		n.hasGround = true
	}

	return n
}
