package analysis

import (
	"math"

	"github.com/voltlab/dcsim/circuit"
	"github.com/voltlab/dcsim/gauss"
	"github.com/voltlab/dcsim/mna"
	"github.com/voltlab/dcsim/netlist"
)

// Analyze runs the full pipeline over one snapshot and returns a fresh
// Result. It accepts anything: unvalidated graphs, unknown kinds,
// malformed values, missing grounds, empty circuits. Every failure
// mode — including an unexpected internal fault — degrades to the
// physically-neutral all-zero result instead of surfacing an error.
//
// Steps:
//  1. Resolve pins and nets (netlist.Resolve).
//  2. Assemble the MNA system (mna.Build).
//  3. Solve it (gauss.Solve); a singular system zeroes floating nets.
//  4. Extract per-component voltage, current, power, and the powered
//     set from the solution vector.
//
// Passing a nil opts applies DefaultOptions.
//
// Complexity: O(dim³) time in the number of unknowns, O(dim²) memory.
func Analyze(c circuit.Circuit, opts *Options) (res *Result) {
	o := withDefaults(opts)

	// Last-resort boundary: an arithmetic fault anywhere below must
	// not crash the caller; "no solution" is the defined answer.
	defer func() {
		if recover() != nil {
			res = neutralResult(c)
		}
	}()

	// 1–2. Topology and system assembly.
	net := netlist.Resolve(c.Components, c.Wires)
	sys := mna.Build(c.Components, net)

	// 3. Solution vector; len(x) == sys.Dim() always.
	x := gauss.Solve(sys.A, sys.B)

	// 4. Extraction.
	res = emptyResult(len(c.Components))
	voltageAt := func(n netlist.NetID) float64 {
		// Ground and column-less nets sit at the reference potential.
		if i, ok := sys.NodeIndex(n); ok {
			return x[i]
		}

		return 0
	}

	for _, comp := range c.Components {
		pins, ok := net.PinNets(comp.ID)
		if !ok {
			continue
		}
		v1 := voltageAt(pins.P1)
		v2 := voltageAt(pins.P2)

		var current float64
		switch {
		case comp.Kind == circuit.KindVoltageSource:
			if si, ok := sys.SourceIndex(comp.ID); ok {
				current = x[si] // the solved branch unknown
			}
		case comp.Kind.Resistive():
			if r, ok := sys.Resistance(comp.ID); ok {
				current = (v1 - v2) / r // same R the stamp used
			}
		default:
			current = 0 // ground and unmodeled kinds carry none
		}

		res.Voltage[comp.ID] = v1
		res.Current[comp.ID] = current
		res.Power[comp.ID] = math.Abs(current * (v1 - v2))
		if comp.Kind == circuit.KindVoltageSource ||
			math.Abs(v1) > o.PoweredThreshold || math.Abs(v2) > o.PoweredThreshold {
			res.Powered[comp.ID] = true
		}
	}

	return res
}

// emptyResult allocates the four maps of a fresh Result.
func emptyResult(n int) *Result {
	return &Result{
		Voltage: make(map[string]float64, n),
		Current: make(map[string]float64, n),
		Power:   make(map[string]float64, n),
		Powered: make(map[string]bool),
	}
}

// neutralResult is the degrade target for internal faults: explicit
// zeros for every component, with only sources in the powered set
// (membership there is unconditional by rule).
func neutralResult(c circuit.Circuit) *Result {
	res := emptyResult(len(c.Components))
	for _, comp := range c.Components {
		res.Voltage[comp.ID] = 0
		res.Current[comp.ID] = 0
		res.Power[comp.ID] = 0
		if comp.Kind == circuit.KindVoltageSource {
			res.Powered[comp.ID] = true
		}
	}

	return res
}
