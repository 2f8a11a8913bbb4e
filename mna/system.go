// SPDX-License-Identifier: MIT
//
// File: system.go
// Role: Unknown indexing and per-component stamping for the MNA system.
// Policy:
//   - Build never fails: malformed values fall back to component defaults
//     and unknown kinds stamp nothing.
//   - Deterministic layout: columns follow component iteration order, so
//     identical snapshots assemble identical systems bit for bit.

package mna

import (
	"github.com/voltlab/dcsim/circuit"
	"github.com/voltlab/dcsim/magnitude"
	"github.com/voltlab/dcsim/netlist"
)

// Model constants for the fixed-resistance component approximations.
const (
	// DefaultResistance substitutes for an unparseable or zero resistor
	// value.
	DefaultResistance = 1000.0

	// DefaultSourceVoltage substitutes for an unparseable or zero
	// source value.
	DefaultSourceVoltage = 9.0

	// LEDResistance is the flat LED model: no forward-voltage knee, no
	// reverse blocking.
	LEDResistance = 50.0

	// SwitchClosedResistance approximates an ideal closed contact.
	SwitchClosedResistance = 0.01

	// SwitchOpenResistance is large enough to starve any practical
	// branch while keeping the matrix finite.
	SwitchOpenResistance = 1e9

	// switchClosed is the literal Value string that closes a switch.
	switchClosed = "closed"
)

// System is one assembled linear system A·x = b plus the bookkeeping
// the result extractor needs to map x back onto components.
type System struct {
	// A is the square conductance matrix, dim × dim.
	A *Dense

	// B is the right-hand-side excitation vector, length dim.
	B []float64

	nodeIndex   map[netlist.NetID]int // non-ground net → column
	sourceIndex map[string]int        // source component ID → branch column
	resistance  map[string]float64    // stamped R per resistive component
}

// Dim returns the number of unknowns:
// (#non-ground nets) + (#voltage sources). Complexity: O(1).
func (s *System) Dim() int { return len(s.B) }

// NodeIndex returns the column of a net's voltage unknown. The second
// return is false for the ground net and for nets outside this system.
// Complexity: O(1).
func (s *System) NodeIndex(net netlist.NetID) (int, bool) {
	i, ok := s.nodeIndex[net]

	return i, ok
}

// SourceIndex returns the branch-current column of a voltage-source
// component. Complexity: O(1).
func (s *System) SourceIndex(id string) (int, bool) {
	i, ok := s.sourceIndex[id]

	return i, ok
}

// Resistance returns the equivalent resistance a resistive component
// was stamped with — the extractor reuses the exact same R for Ohm's
// law. Complexity: O(1).
func (s *System) Resistance(id string) (float64, bool) {
	r, ok := s.resistance[id]

	return r, ok
}

// EquivalentResistance reduces a component to the fixed resistance its
// stamp uses, or reports false for kinds that do not stamp as a
// resistance. Exposed so the extractor and tests share one model.
// Complexity: O(len(Value)).
func EquivalentResistance(comp circuit.Component) (float64, bool) {
	switch comp.Kind {
	case circuit.KindResistor:
		r := magnitude.Parse(comp.Value)
		if r == 0 {
			r = DefaultResistance
		}

		return r, true
	case circuit.KindLED:
		return LEDResistance, true
	case circuit.KindSwitch:
		if comp.Value == switchClosed {
			return SwitchClosedResistance, true
		}

		return SwitchOpenResistance, true
	default:
		return 0, false
	}
}

// SourceVoltage returns the stamped voltage of a source component:
// the parsed Value, or DefaultSourceVoltage when unparseable or zero.
// Complexity: O(len(Value)).
func SourceVoltage(comp circuit.Component) float64 {
	v := magnitude.Parse(comp.Value)
	if v == 0 {
		v = DefaultSourceVoltage
	}

	return v
}

// Build assembles the MNA system for one resolved snapshot.
//
// Implementation:
//   - Stage 1: index every distinct non-ground net touched by a
//     component pin, in component iteration order (first touch wins).
//   - Stage 2: append one branch-current unknown per voltage source,
//     in component order, after all net unknowns.
//   - Stage 3: allocate the zeroed dim×dim matrix and dim-length rhs.
//   - Stage 4: stamp every component per the package rules; ground and
//     unmodeled kinds contribute nothing.
//
// Behavior highlights:
//   - Never fails, never panics; an empty circuit yields a 0×0 system.
//   - The assembled matrix is symmetric by construction.
//
// Complexity: O(n + dim²) time, O(dim²) memory.
func Build(components []circuit.Component, net *netlist.Netlist) *System {
	s := &System{
		nodeIndex:   make(map[netlist.NetID]int),
		sourceIndex: make(map[string]int),
		resistance:  make(map[string]float64),
	}

	// Stage 1: net unknowns, skipping the ground representative.
	touch := func(id netlist.NetID) {
		if net.IsGround(id) {
			return
		}
		if _, ok := s.nodeIndex[id]; !ok {
			s.nodeIndex[id] = len(s.nodeIndex)
		}
	}
	for _, comp := range components {
		pins, ok := net.PinNets(comp.ID)
		if !ok {
			continue
		}
		touch(pins.P1)
		touch(pins.P2)
	}

	// Stage 2: one branch unknown per source, after all net unknowns.
	numNets := len(s.nodeIndex)
	for _, comp := range components {
		if comp.Kind == circuit.KindVoltageSource {
			s.sourceIndex[comp.ID] = numNets + len(s.sourceIndex)
		}
	}

	// Stage 3: zeroed storage of the combined dimension.
	dim := numNets + len(s.sourceIndex)
	s.A, _ = NewDense(dim, dim) // dim >= 0, so the ctor cannot fail
	s.B = make([]float64, dim)

	// columnOf maps a net to its column, with -1 as the ground sentinel
	// (a ground side contributes nothing to its stamp).
	columnOf := func(id netlist.NetID) int {
		if i, ok := s.nodeIndex[id]; ok {
			return i
		}

		return -1
	}

	// Stage 4: stamps.
	for _, comp := range components {
		pins, ok := net.PinNets(comp.ID)
		if !ok {
			continue
		}
		i1 := columnOf(pins.P1)
		i2 := columnOf(pins.P2)

		if r, resistive := EquivalentResistance(comp); resistive {
			s.resistance[comp.ID] = r
			g := 1 / r
			// Conductance stamp: +g on each non-ground diagonal,
			// -g on the symmetric off-diagonals.
			if i1 >= 0 {
				s.A.add(i1, i1, g)
			}
			if i2 >= 0 {
				s.A.add(i2, i2, g)
			}
			if i1 >= 0 && i2 >= 0 {
				s.A.add(i1, i2, -g)
				s.A.add(i2, i1, -g)
			}

			continue
		}

		if comp.Kind == circuit.KindVoltageSource {
			si := s.sourceIndex[comp.ID]
			// ±1 couplings between node rows and the branch row keep
			// the matrix symmetric.
			if i1 >= 0 {
				s.A.add(i1, si, 1)
				s.A.add(si, i1, 1)
			}
			if i2 >= 0 {
				s.A.add(i2, si, -1)
				s.A.add(si, i2, -1)
			}
			s.B[si] = SourceVoltage(comp)
		}
		// Ground and unmodeled kinds: no stamp.
	}

	return s
}
